// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package receptive

import "errors"

var (
	// ErrInvalidAngle is returned for a shape segment angle above 180 degrees
	ErrInvalidAngle = errors.New("invalid angle")

	// ErrUnnormalized is returned for spatial values outside of [0, 1)
	ErrUnnormalized = errors.New("spatial value must be normalized")

	// ErrGridSize is returned when the cache grid of a spatial area is
	// finer than its output space
	ErrGridSize = errors.New("grid size must be less or equal to output space size")
)
