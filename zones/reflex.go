// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/rl"
)

// ReflexZone (RE) has the reflexes driving the action areas, their dopamine
// predictors, and the dopamine anticipator.  A combiner sends the
// combinations of perceived patterns to the reflexes and the anticipator.
//
// The self-induced dopamine released by the anticipator during a tick is
// accumulated, and delivered to the reflexes at the end of the tick.
type ReflexZone struct {
	neuro.ZoneStru
	Reflexes    []*rl.ReflexArea    `desc:"reflexes, in the order of the action areas"`
	Predictors  []*rl.PredictorArea `desc:"dopamine predictors of the reflexes"`
	Combiner    *neuro.Combiner     `desc:"combines the perceived patterns"`
	Anticipator *rl.AnticipatorArea `desc:"dopamine anticipator"`
	SelfDope    int                 `inactive:"+" desc:"self-induced dopamine accumulated during the current tick"`
	SendTo      rl.SendDope         `desc:"areas that receive the accumulated self-induced dopamine"`
}

// AddReflexZone adds the reflex zone to the network: a reflex per action
// area of the motor zone, fed with the perception of the visual and
// tactile zones.
func AddReflexZone(nt *neuro.Network, name string, mo *MotorZone, vr *VisualZone, ta *TactileZone) (*ReflexZone, error) {
	rz := &ReflexZone{}
	b := newBuilder(nt, rz, name)
	for _, act := range mo.Actions {
		id := act.ActionID
		pred := rl.NewPredictorArea(PredictorAreaName(id))
		ra := rl.NewReflexArea(ReflexAreaName(id), &act.ActionArea, pred, Accepts(id)...)
		b.add(pred, ra)
		b.connect(ra, act, "")
		rz.Predictors = append(rz.Predictors, pred)
		rz.Reflexes = append(rz.Reflexes, ra)
		rz.SendTo.Add(ra.Nm)
	}

	rz.Combiner = neuro.NewCombiner("Combiner: " + name)
	b.add(rz.Combiner)
	b.connect(ta.Touch, rz.Combiner, "")
	b.connect(vr.ShapeShift, rz.Combiner, "")
	b.connect(vr.Distance, rz.Combiner, "")
	b.connect(vr.DistChange, rz.Combiner, "")
	b.connect(vr.BodyVel, rz.Combiner, "")
	for _, ra := range rz.Reflexes {
		rz.Combiner.AddOutput(ra)
	}

	rz.Anticipator = rl.NewAnticipatorArea(AreaAnticipator)
	b.add(rz.Anticipator)
	rz.Combiner.AddOutput(rz.Anticipator)
	return rz, b.err()
}

// Accepts returns the names of the areas the reflex of a macro action
// takes into account
func Accepts(actionID string) []string {
	switch actionID {
	case rl.MoveAction:
		return MoveAccepts
	case rl.GrabAction:
		return GrabAccepts
	}
	return nil
}

// Reflex returns the reflex of a macro action, nil if none
func (rz *ReflexZone) Reflex(actionID string) *rl.ReflexArea {
	for _, ra := range rz.Reflexes {
		if ra.Action.ActionID == actionID {
			return ra
		}
	}
	return nil
}

// ReceiveSelfInducedDope accumulates self-induced dopamine
func (rz *ReflexZone) ReceiveSelfInducedDope(value int) {
	rz.SelfDope += value
}

func (rz *ReflexZone) OnStepBegin() {
	rz.SelfDope = 0
	rz.Combiner.CombineTransfer()
}

func (rz *ReflexZone) OnStepEnd() {
	if rz.SelfDope <= 0 {
		return
	}
	rz.SendTo.SendDope(rz.Net, []neuro.Portion{{Value: rz.SelfDope, Source: rz.Anticipator.ID}})
}
