// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"encoding/json"

	"github.com/emer/reflex/receptive"
	"github.com/goki/mat32"
)

// HandName is the name of the body that is the agent's own hand
const HandName = "hand"

// Body is a body tracked in the environment
type Body struct {
	Name         string                 `json:"name" desc:"unique name of the body -- hand is the agent's own"`
	Center       mat32.Vec2             `json:"center" desc:"center in room pixels"`
	Offset       mat32.Vec2             `json:"offset" desc:"motion since the previous environment step, in pixels"`
	Presentation receptive.Presentation `json:"general_presentation" desc:"shape primitives seen for the body"`
}

// IsHand returns true if this is the agent's hand
func (bd *Body) IsHand() bool { return bd.Name == HandName }

// Moving returns true if the body moved since the previous step
func (bd *Body) Moving() bool { return bd.Offset.X != 0 || bd.Offset.Y != 0 }

// InRoom returns true if the center is within a room of given size
func (bd *Body) InRoom(room mat32.Vec2) bool {
	return bd.Center.X >= 0 && bd.Center.X <= room.X && bd.Center.Y >= 0 && bd.Center.Y <= room.Y
}

// Mode is the state of the hand
type Mode struct {
	Clenched bool `json:"is_clenched"`
	Holding  bool `json:"is_holding"`
}

// FindBody returns the body of given name, nil if none
func FindBody(bodies []Body, name string) *Body {
	for i := range bodies {
		if bodies[i].Name == name {
			return &bodies[i]
		}
	}
	return nil
}

// bodyJSON is the wire form of a Body, with points as [x, y] pairs
type bodyJSON struct {
	Name         string                 `json:"name"`
	Center       [2]float32             `json:"center"`
	Offset       [2]float32             `json:"offset"`
	Presentation receptive.Presentation `json:"general_presentation"`
}

func (bd Body) MarshalJSON() ([]byte, error) {
	return json.Marshal(bodyJSON{
		Name:         bd.Name,
		Center:       [2]float32{bd.Center.X, bd.Center.Y},
		Offset:       [2]float32{bd.Offset.X, bd.Offset.Y},
		Presentation: bd.Presentation,
	})
}

func (bd *Body) UnmarshalJSON(b []byte) error {
	var bj bodyJSON
	if err := json.Unmarshal(b, &bj); err != nil {
		return err
	}
	bd.Name = bj.Name
	bd.Center = mat32.Vec2{X: bj.Center[0], Y: bj.Center[1]}
	bd.Offset = mat32.Vec2{X: bj.Offset[0], Y: bj.Offset[1]}
	bd.Presentation = bj.Presentation
	return nil
}
