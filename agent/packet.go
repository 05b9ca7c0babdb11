// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agent

import "github.com/emer/reflex/zones"

// Body and Mode are defined with the zones that perceive them
type (
	Body = zones.Body
	Mode = zones.Mode
)

// Actions of the hand reported to the environment
const (
	MoveLeft  = "move_left"
	MoveRight = "move_right"
	MoveUp    = "move_up"
	MoveDown  = "move_down"
	Grab      = "grab"
)

// Actions are all the actions reported to the environment, in order
var Actions = []string{MoveLeft, MoveRight, MoveUp, MoveDown, Grab}

// Packet is what the environment sends on each step
type Packet struct {
	Bodies []Body `json:"data"`
	Mode   Mode   `json:"mode"`
}

// Spot is a point of the room in pixels, -1 if undefined
type Spot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Result is what the agent returns to the environment on each step
type Result struct {
	CurrentTick   int            `json:"current_tick"`
	Surprise      int            `json:"surprise"`
	Actions       map[string]int `json:"actions"`
	AttentionSpot Spot           `json:"attention-spot"`
}
