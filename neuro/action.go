// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"

	"github.com/emer/reflex/sdr"
)

// ActionArea turns the pattern it receives into a HandMove event.  Its
// catalogue holds one random pattern per possible action value; the first
// catalogue entry is the standby action, sent when no input arrives.
type ActionArea struct {
	AreaStru
	ActionID string         `desc:"macro action sent in HandMove events"`
	Values   []sdr.Data     `desc:"action semantics of each catalogue pattern -- the first is the standby action"`
	Actions  []*sdr.Pattern `desc:"catalogue of action patterns, created on Build"`
}

// NewActionArea returns a new action area for given macro action and values
func NewActionArea(name, actionID string, values []sdr.Data) *ActionArea {
	aa := &ActionArea{}
	aa.InitAction(name, actionID, values)
	return aa
}

// InitAction initializes the action fields, for types embedding ActionArea
func (aa *ActionArea) InitAction(name, actionID string, values []sdr.Data) {
	aa.InitName(name, AreaAction)
	aa.ActionID = actionID
	aa.Values = values
}

func (aa *ActionArea) AsAction() *ActionArea { return aa }

func (aa *ActionArea) Build() error {
	if len(aa.Values) == 0 {
		return fmt.Errorf("ActionArea %v: no action values", aa.Nm)
	}
	pr := aa.Params()
	if aa.OutSpace == 0 {
		aa.OutSpace = pr.ActionSpace
	}
	if aa.OutNorm == 0 {
		aa.OutNorm = pr.ActionNorm
	}
	st := aa.Store()
	aa.Actions = make([]*sdr.Pattern, len(aa.Values))
	for i, vl := range aa.Values {
		aa.Actions[i] = st.NewRandom(aa.OutSpace, aa.OutNorm, vl, aa.ID, aa.Rand())
	}
	aa.ResetInputs()
	return nil
}

// Standby returns the standby action pattern
func (aa *ActionArea) Standby() *sdr.Pattern {
	return aa.Actions[0]
}

// ActionFor returns the catalogue pattern with given semantics, nil if none
func (aa *ActionArea) ActionFor(vl sdr.Data) *sdr.Pattern {
	for _, pt := range aa.Actions {
		if pt.Data.Equal(vl) {
			return pt
		}
	}
	return nil
}

// IsAction returns true if pt is in the catalogue
func (aa *ActionArea) IsAction(pt *sdr.Pattern) bool {
	for _, ap := range aa.Actions {
		if ap == pt {
			return true
		}
	}
	return false
}

func (aa *ActionArea) Update() error {
	in := aa.FirstAlive()
	if in == nil {
		in = aa.Standby()
	}
	aa.act(in)
	return nil
}

func (aa *ActionArea) act(pt *sdr.Pattern) {
	aa.SetOutput(pt)
	aa.Emit(HandMove{ActionID: aa.ActionID, Value: pt.Data})
	aa.ResetInputs()
}

// HandMotionArea is an ActionArea that babbles when no input arrives:
// it picks a random catalogue action and holds it for Longevity ticks.
type HandMotionArea struct {
	ActionArea
	Longevity int          `def:"4" desc:"number of ticks a babbled action is held"`
	Babble    *sdr.Pattern `desc:"current babbled action"`
	Start     int          `desc:"tick the current babbled action started"`
}

// NewHandMotionArea returns a new babbling action area
func NewHandMotionArea(name, actionID string, values []sdr.Data) *HandMotionArea {
	hm := &HandMotionArea{}
	hm.InitAction(name, actionID, values)
	hm.Longevity = 4
	return hm
}

func (hm *HandMotionArea) Update() error {
	in := hm.FirstAlive()
	if in == nil {
		tick := hm.Tick()
		if hm.Babble == nil || tick-hm.Start > hm.Longevity {
			hm.Start = tick
			hm.Babble = hm.Actions[hm.Rand().Intn(len(hm.Actions))]
		}
		in = hm.Babble
	}
	hm.act(in)
	return nil
}
