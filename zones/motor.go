// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/rl"
	"github.com/emer/reflex/sdr"
)

// MacroActions are the macro actions of the hand, in the order of their
// action areas
var MacroActions = []string{rl.MoveAction, rl.GrabAction}

// Catalogue returns the action values of a macro action, nil if unknown
func Catalogue(actionID string) []sdr.Data {
	switch actionID {
	case rl.MoveAction:
		return rl.MoveCatalogue()
	case rl.GrabAction:
		return rl.GrabCatalogue()
	}
	return nil
}

// MotorZone (MO) has one action area per macro action
type MotorZone struct {
	neuro.ZoneStru
	Actions []*neuro.HandMotionArea `desc:"action areas, in the order of MacroActions"`
}

// AddMotorZone adds the motor zone and its action areas to the network
func AddMotorZone(nt *neuro.Network, name string) (*MotorZone, error) {
	mz := &MotorZone{}
	b := newBuilder(nt, mz, name)
	for _, id := range MacroActions {
		hm := neuro.NewHandMotionArea(ActionAreaName(id), id, Catalogue(id))
		mz.Actions = append(mz.Actions, hm)
		b.add(hm)
	}
	return mz, b.err()
}

// Action returns the action area of a macro action, nil if none
func (mz *MotorZone) Action(actionID string) *neuro.HandMotionArea {
	for _, hm := range mz.Actions {
		if hm.ActionID == actionID {
			return hm
		}
	}
	return nil
}
