// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

import (
	"fmt"

	"github.com/emer/reflex/sdr"
)

// macro actions driven by reflex areas
const (
	MoveAction = "move"
	GrabAction = "grab"
)

// MoveData returns the semantics of a move action pattern: the speed of
// the hand in each direction, 0 to 2.
func MoveData(left, right, up, down int) sdr.Data {
	return sdr.Data{"left": left, "right": right, "up": up, "down": down}
}

// GrabData returns the semantics of a grab action pattern
func GrabData(grab int) sdr.Data {
	return sdr.Data{"grab": grab}
}

// MoveCatalogue returns the semantics of all move actions: no move, or
// speed 1 or 2 in one horizontal direction, combined with the same for the
// vertical directions.  The first one, no move at all, is the standby.
func MoveCatalogue() []sdr.Data {
	hor := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}}
	cat := make([]sdr.Data, 0, len(hor)*len(hor))
	for _, h := range hor {
		for _, v := range hor {
			cat = append(cat, MoveData(h[0], h[1], v[0], v[1]))
		}
	}
	return cat
}

// GrabCatalogue returns the semantics of the grab actions: release, grab
func GrabCatalogue() []sdr.Data {
	return []sdr.Data{GrabData(0), GrabData(1)}
}

// ScriptStep is one move of a predefined motion, held for Steps
// environment steps
type ScriptStep struct {
	Steps int `desc:"number of environment steps the move is held"`
	Left  int
	Right int
	Up    int
	Down  int
	Grab  int
}

// Data returns the semantics of this step for given macro action
func (ss *ScriptStep) Data(actionID string) sdr.Data {
	if actionID == GrabAction {
		return GrabData(ss.Grab)
	}
	return MoveData(ss.Left, ss.Right, ss.Up, ss.Down)
}

func (ss *ScriptStep) String() string {
	return fmt.Sprintf("%d steps: left %d right %d up %d down %d grab %d", ss.Steps, ss.Left, ss.Right, ss.Up, ss.Down, ss.Grab)
}

// Script is a predefined sequence of moves that overrides learned and
// random reflexes until it is done.  Used to drive the hand through a
// known trajectory when debugging an environment.
type Script struct {
	Steps []ScriptStep `desc:"moves in order"`
	Cur   int          `desc:"index of the current move"`
	Start int          `desc:"tick the current move started, -1 before the first call"`
}

// NewScript returns a script for given moves
func NewScript(steps ...ScriptStep) *Script {
	return &Script{Steps: steps, Start: -1}
}

// PredefinedMotion returns the standard test trajectory: sweeps of the
// hand across the room with a grab near the end.
func PredefinedMotion() *Script {
	return NewScript(
		ScriptStep{Steps: 16, Left: 2},
		ScriptStep{Steps: 10, Down: 2},
		ScriptStep{Steps: 35, Right: 1},
		ScriptStep{Steps: 10, Left: 2, Up: 2},
		ScriptStep{Steps: 11, Right: 2, Down: 2},
		ScriptStep{Steps: 10, Left: 1, Up: 2},
		ScriptStep{Steps: 5, Right: 2},
		ScriptStep{Steps: 10, Down: 2},
		ScriptStep{Steps: 10, Up: 2},
		ScriptStep{Steps: 10, Right: 2},
		ScriptStep{Steps: 10, Left: 2, Down: 2},
		ScriptStep{Steps: 10, Up: 2, Grab: 1},
	)
}

// Done returns true once all moves were played
func (sc *Script) Done() bool {
	return sc.Cur >= len(sc.Steps)
}

// Reset restarts the script from its first move
func (sc *Script) Reset() {
	sc.Cur = 0
	sc.Start = -1
}

// Step returns the move for given tick, nil once the script is done.
// Each move lasts Steps * stepsPerEnv ticks from the first tick it is
// asked for.
func (sc *Script) Step(tick, stepsPerEnv int) *ScriptStep {
	if sc.Done() {
		return nil
	}
	if sc.Start < 0 {
		sc.Start = tick
	}
	for !sc.Done() && tick-sc.Start >= sc.Steps[sc.Cur].Steps*stepsPerEnv {
		sc.Start += sc.Steps[sc.Cur].Steps * stepsPerEnv
		sc.Cur++
	}
	if sc.Done() {
		return nil
	}
	return &sc.Steps[sc.Cur]
}
