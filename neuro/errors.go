// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import "errors"

var (
	// ErrDuplicateConnection is returned when a wire or a learned pattern
	// connection that already exists is added again.
	ErrDuplicateConnection = errors.New("duplicate connection")

	// ErrDuplicateArea is returned when an area name is registered twice
	ErrDuplicateArea = errors.New("duplicate area name")

	// ErrAreaNotFound is returned by name lookups
	ErrAreaNotFound = errors.New("area not found")

	// ErrMinInputs is returned by Build when an encoder requires more alive
	// inputs than it has input slots, so it could never fire.
	ErrMinInputs = errors.New("min inputs exceeds number of input slots")
)
