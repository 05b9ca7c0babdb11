// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package receptive provides the areas that translate perceptual data into
sdr patterns: scalar values (SpatialArea), body shapes (PrimitivesArea),
hand state (TactileArea), and the rising edge of a body shape distortion
(DistortionArea).

Receptive areas do not compute anything on Update: their output is set by
the Activate methods before the network steps, and cleared by
Network.ResetPerception.
*/
package receptive
