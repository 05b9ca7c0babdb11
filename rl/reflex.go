// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

import (
	"fmt"
	"log"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
)

// ActiveReflexProp is the name of the property output of a ReflexArea
// that sends its currently active action pattern.
const ActiveReflexProp = "active_reflex"

// ReflexParams are the parameters of reflex selection and learning
type ReflexParams struct {
	MinWeight float32      `def:"0.15" desc:"learned connections weaker than this are never selected"`
	Longevity int          `def:"8" desc:"number of environment steps a selected action is held before a new selection"`
	CoolTicks int          `def:"8" desc:"a learned connection is only selected once it is older than this many ticks, so that it does not immediately reinforce itself"`
	WtStep    float32      `def:"0.15" desc:"initial weight of a new connection per tick of distance from the start of the credit window"`
	Credit    CreditParams `view:"inline" desc:"window of ticks credited with a dopamine release"`
}

func (rp *ReflexParams) Defaults() {
	rp.MinWeight = 0.15
	rp.Longevity = 8
	rp.CoolTicks = 8
	rp.WtStep = 0.15
	rp.Credit.Defaults()
}

// ReflexRecord is what a reflex saw and did on one tick
type ReflexRecord struct {
	Inputs []*sdr.Pattern
	Output *sdr.Pattern
}

// ReflexArea selects an action pattern of its ActionArea every tick, and
// learns PatternsConnections from its input patterns to the action
// patterns that were followed by dopamine.
//
// Selection goes through three tiers: the Script if there is one and it
// is not done, the strongest learned connection from an alive input, or
// a random action.  Learned and random selections are held for
// Longevity environment steps.
type ReflexArea struct {
	neuro.AreaStru
	Rp        ReflexParams         `view:"inline" desc:"selection and learning parameters"`
	Accepts   map[string]bool      `desc:"names of the areas whose patterns and dopamine this reflex takes into account"`
	Action    *neuro.ActionArea    `view:"-" desc:"action area whose catalogue this reflex selects from"`
	Predictor *PredictorArea       `view:"-" desc:"predictor that traces the learned connections this reflex activates, may be nil"`
	Script    *Script              `desc:"optional predefined motion, played before anything else"`
	Active    *sdr.Pattern         `desc:"currently held action pattern"`
	Start     int                  `desc:"tick the active pattern was selected, -1 if never"`
	LongTicks int                  `inactive:"+" desc:"Longevity in ticks"`
	History   map[int]ReflexRecord `view:"-" desc:"inputs and output of recent ticks, by tick"`
	Verbose   bool                 `desc:"log connections created and selected"`
}

// NewReflexArea returns a reflex for given action area, taking into
// account patterns and dopamine from the named areas.
func NewReflexArea(name string, action *neuro.ActionArea, pred *PredictorArea, accepts ...string) *ReflexArea {
	ra := &ReflexArea{}
	ra.InitName(name, neuro.AreaReflex)
	ra.Rp.Defaults()
	ra.Action = action
	ra.Predictor = pred
	ra.Accepts = make(map[string]bool, len(accepts))
	for _, nm := range accepts {
		ra.Accepts[nm] = true
	}
	ra.Start = -1
	return ra
}

func (ra *ReflexArea) Build() error {
	if ra.Action == nil {
		return fmt.Errorf("ReflexArea %v: no action area", ra.Nm)
	}
	pr := ra.Params()
	ra.LongTicks = pr.Ticks(ra.Rp.Longevity)
	ra.OutSpace = ra.Action.OutSpace
	if ra.OutSpace == 0 {
		ra.OutSpace = pr.ActionSpace
	}
	ra.OutNorm = ra.Action.OutNorm
	ra.History = make(map[int]ReflexRecord)
	return nil
}

// PropOutput returns the active pattern for ActiveReflexProp
func (ra *ReflexArea) PropOutput(prop string) *sdr.Pattern {
	if prop == ActiveReflexProp {
		return ra.Active
	}
	return nil
}

// acceptsArea returns true if patterns of given area are taken into account
func (ra *ReflexArea) acceptsArea(id sdr.AreaID) bool {
	return ra.Accepts[ra.Net.AreaName(id)]
}

// AcceptsPattern returns true if the pattern comes from an accepted area.
// A pattern with no area of its own (a combination) is accepted only if
// all of its sources are.
func (ra *ReflexArea) AcceptsPattern(pt *sdr.Pattern) bool {
	if pt == nil {
		return false
	}
	if pt.Area != sdr.NoArea {
		return ra.acceptsArea(pt.Area)
	}
	if len(pt.Sources) == 0 {
		return false
	}
	st := ra.Store()
	for _, sid := range pt.Sources {
		if !ra.AcceptsPattern(st.ByID(sid)) {
			return false
		}
	}
	return true
}

// AcceptsDopamine returns true if the portion was released by an accepted area
func (ra *ReflexArea) AcceptsDopamine(p neuro.Portion) bool {
	return ra.acceptsArea(p.Source)
}

// ReceiveInputs keeps the accepted patterns among pats as the inputs
// of this tick.
func (ra *ReflexArea) ReceiveInputs(pats []*sdr.Pattern) {
	ra.Inputs = ra.Inputs[:0:0]
	for _, pt := range pats {
		if ra.AcceptsPattern(pt) {
			ra.Inputs = append(ra.Inputs, pt)
		}
	}
}

func (ra *ReflexArea) Update() error {
	tick := ra.Tick()
	var out *sdr.Pattern
	if ra.Script != nil {
		if st := ra.Script.Step(tick, ra.Params().StepsPerEnv); st != nil {
			out = ra.Action.ActionFor(st.Data(ra.Action.ActionID))
			if out == nil {
				return fmt.Errorf("ReflexArea %v: no action for script step: %v", ra.Nm, st)
			}
		}
	}
	if out == nil {
		out = ra.selectLearned(tick)
	}
	if out == nil {
		out = ra.selectRandom(tick)
	}
	ra.History[tick] = ReflexRecord{Inputs: ra.Inputs, Output: out}
	ra.pruneHistory(tick)
	ra.SetOutput(out)
	return nil
}

// selectLearned selects the target of the best learned connection when
// the active pattern expired, and holds it otherwise.
func (ra *ReflexArea) selectLearned(tick int) *sdr.Pattern {
	if ra.Active != nil && tick-ra.Start < ra.LongTicks {
		return ra.Active
	}
	pc := ra.BestConnection(ra.AliveInputs(), tick)
	if pc == nil {
		return nil
	}
	if ra.Predictor != nil {
		ra.Predictor.OnConnectionActivated(pc)
	}
	if ra.Verbose {
		log.Printf("%v: tick: %d selected: %v\n", ra.Nm, tick, pc)
	}
	ra.Start = tick
	ra.Active = ra.Store().ByID(pc.Target)
	return ra.Active
}

// selectRandom picks a new random action once the active one is older
// than LongTicks, and holds the active one otherwise.
func (ra *ReflexArea) selectRandom(tick int) *sdr.Pattern {
	if ra.Active == nil || ra.Start < 0 || tick-ra.Start > ra.LongTicks {
		acts := ra.Action.Actions
		ra.Start = tick
		ra.Active = acts[ra.Rand().Intn(len(acts))]
	}
	return ra.Active
}

// BestConnection returns the strongest connection of this area from one
// of the inputs, among those older than CoolTicks.  Ties are broken at
// random.  Returns nil if there is none at least MinWeight strong.
func (ra *ReflexArea) BestConnection(inputs []*sdr.Pattern, tick int) *neuro.PatternsConnection {
	var top []*neuro.PatternsConnection
	for _, pc := range ra.Conns().BySources(ra.ID, inputs) {
		if tick-pc.Tick <= ra.Rp.CoolTicks {
			continue
		}
		if len(top) > 0 && pc.Weight < top[0].Weight {
			break
		}
		top = append(top, pc)
	}
	if len(top) == 0 || top[0].Weight < ra.Rp.MinWeight {
		return nil
	}
	if len(top) == 1 {
		return top[0]
	}
	return top[ra.Rand().Intn(len(top))]
}

// ReceiveDope credits the dopamine accepted by this area to the (input,
// action) pairs of the ticks in the credit window: a missing connection
// is created with a weight growing with its tick, an existing one is
// strengthened once per release.  Self-induced portions are always
// accepted.
func (ra *ReflexArea) ReceiveDope(portions []neuro.Portion, selfInduced bool) {
	var filt neuro.DopeFilter
	if !selfInduced {
		filt = ra
	}
	dope := neuro.SumAccepted(portions, filt)
	if dope < ra.Rp.Credit.DopeMin {
		return
	}
	tick := ra.Tick()
	cs := ra.Conns()
	lr := ra.Params().Lrate
	done := make(map[int]bool)
	start, end := ra.Rp.Credit.Range(tick, selfInduced)
	for t := start; t < end; t++ {
		rec, has := ra.History[t]
		if !has || rec.Output == nil {
			continue
		}
		wt := ra.Rp.WtStep * float32(t-start+1)
		for _, in := range rec.Inputs {
			if in == nil {
				continue
			}
			pc := cs.Find(ra.ID, in.ID, rec.Output.ID)
			if pc == nil {
				var err error
				pc, err = cs.Add(ra.ID, in.ID, rec.Output.ID, wt, t, float32(dope))
				if err != nil {
					log.Println(err)
					continue
				}
				done[pc.ID] = true
				if ra.Verbose {
					log.Printf("%v: tick: %d created: %v\n", ra.Nm, tick, pc)
				}
				continue
			}
			if !done[pc.ID] {
				done[pc.ID] = true
				cs.UpdateWeight(pc, float32(dope)*lr)
			}
		}
	}
}

func (ra *ReflexArea) pruneHistory(tick int) {
	old := ra.Rp.Credit.Oldest(tick)
	for t := range ra.History {
		if t < old {
			delete(ra.History, t)
		}
	}
}
