// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import "github.com/goki/mat32"

// VisualParams are the geometry parameters of the visual zones
type VisualParams struct {
	Room        mat32.Vec2 `desc:"size of the room in pixels"`
	MaxVelocity float32    `def:"5" desc:"body offset per environment step encoded as the top velocity"`
	DistGain    float32    `def:"5" desc:"gain of the change of normalized distance around the 0.5 midpoint of distance change"`
	Proximity   float32    `def:"60" desc:"hand to body distance in pixels within which a change of shape counts as a distortion"`
}

func (vp *VisualParams) Defaults() {
	vp.Room = mat32.Vec2{X: 640, Y: 480}
	vp.MaxVelocity = 5
	vp.DistGain = 5
	vp.Proximity = 60
}

// Diagonal returns the length of the room diagonal
func (vp *VisualParams) Diagonal() float32 {
	return vp.Room.Length()
}

// unitClamp clamps a value to the range a SpatialArea encodes
func unitClamp(v float32) float32 {
	return mat32.Clamp(v, 0, 0.99)
}
