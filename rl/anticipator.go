// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
)

// SelfDopeSink receives the self-induced dopamine released by an
// AnticipatorArea.  Implemented by the zone of the anticipator.
type SelfDopeSink interface {
	ReceiveSelfInducedDope(value int)
}

// AnticipatorParams are the parameters of dopamine anticipation
type AnticipatorParams struct {
	MinEnergy  float32      `def:"0.9" desc:"a pattern releases dopamine only when its energy is at least this"`
	Charge     float32      `def:"0.03" desc:"energy regained per tick"`
	Trace      int          `def:"6" desc:"number of environment steps after a burst within which the actual dopamine is expected"`
	Lookback   int          `def:"8" desc:"a pattern only bursts once it was first credited more than this many environment steps ago"`
	ChainLen   int          `def:"3" desc:"number of consecutive bursts forming a chain"`
	ChainHits  int          `def:"5" desc:"a chain seen more than this many times is a loop"`
	ChainTicks int          `def:"200" desc:"a chain is a loop only if it was seen within this many ticks"`
	ChainDrain float32      `def:"-3" desc:"energy of a pattern after a burst that closes a loop"`
	Credit     CreditParams `view:"inline" desc:"window of ticks credited with a dopamine release"`
}

func (ap *AnticipatorParams) Defaults() {
	ap.MinEnergy = 0.9
	ap.Charge = 0.03
	ap.Trace = 6
	ap.Lookback = 8
	ap.ChainLen = 3
	ap.ChainHits = 5
	ap.ChainTicks = 200
	ap.ChainDrain = -3
	ap.Credit.Defaults()
}

// DopeEnergy is the dopamine a pattern is expected to be followed by, and
// the energy it has to release it in anticipation.
type DopeEnergy struct {
	Pattern *sdr.Pattern `desc:"anticipating pattern"`
	Value   int          `desc:"dopamine released on a burst, never negative"`
	Tick    int          `desc:"tick the pattern was first credited"`
	Last    int          `desc:"tick of the last burst"`
	Control int          `desc:"tick by which the actual dopamine is expected after a burst, 0 if not traced"`
	Energy  float32      `desc:"recharges every tick, a burst needs MinEnergy"`
}

// SetValue sets the value, floored at 0
func (de *DopeEnergy) SetValue(v int) {
	if v < 0 {
		v = 0
	}
	de.Value = v
}

func (de *DopeEnergy) String() string {
	return fmt.Sprintf("(%v) value: %d last: %d energy: %.2f", de.Pattern, de.Value, de.Last, de.Energy)
}

// Burst is a release of self-induced dopamine by a pattern
type Burst struct {
	Tick    int
	Pattern *sdr.Pattern
}

// BurstChain is a sequence of patterns that burst one after the other
type BurstChain struct {
	Hash string `desc:"ids of the patterns in order, joined by |"`
	Hits int    `desc:"number of times the sequence occurred"`
	Last int    `desc:"tick of the last occurrence"`
}

// ChainHash returns the hash of a sequence of patterns
func ChainHash(pats []*sdr.Pattern) string {
	ids := make([]string, len(pats))
	for i, pt := range pats {
		ids[i] = strconv.Itoa(int(pt.ID))
	}
	return strings.Join(ids, "|")
}

// AnticipatorArea learns which input patterns are followed by dopamine.
// When such a pattern shows up again and has enough energy, it bursts:
// it releases its expected dopamine as self-induced dopamine through the
// SelfDopeSink of its zone.  If the actual dopamine does not follow
// within Trace, the expected value is decreased.  Patterns repeatedly
// bursting in the same sequence are drained, so the agent does not
// reward itself in a loop.
type AnticipatorArea struct {
	neuro.AreaStru
	Ap       AnticipatorParams      `view:"inline" desc:"parameters"`
	Energies []*DopeEnergy          `desc:"anticipating patterns, in order of first credit"`
	Bursts   []Burst                `desc:"recent bursts, most recent last"`
	Chains   map[string]*BurstChain `desc:"burst sequences seen, by hash"`
	History  map[int][]*sdr.Pattern `view:"-" desc:"alive inputs of recent ticks, by tick"`
	LastDope int                    `inactive:"+" desc:"self-induced dopamine released on the last update"`
	energies map[sdr.PatternID]*DopeEnergy
}

// NewAnticipatorArea returns a new anticipator
func NewAnticipatorArea(name string) *AnticipatorArea {
	an := &AnticipatorArea{}
	an.InitName(name, neuro.AreaAnticipator)
	an.Ap.Defaults()
	return an
}

func (an *AnticipatorArea) Build() error {
	an.Energies = nil
	an.Bursts = nil
	an.Chains = make(map[string]*BurstChain)
	an.History = make(map[int][]*sdr.Pattern)
	an.energies = make(map[sdr.PatternID]*DopeEnergy)
	return nil
}

// EnergyOf returns the record of given pattern, nil if none
func (an *AnticipatorArea) EnergyOf(pt *sdr.Pattern) *DopeEnergy {
	return an.energies[pt.ID]
}

// ReceiveInputs sets the inputs of this tick
func (an *AnticipatorArea) ReceiveInputs(pats []*sdr.Pattern) {
	an.Inputs = pats
}

func (an *AnticipatorArea) Update() error {
	an.LastDope = 0
	alive := an.AliveInputs()
	if len(alive) == 0 {
		return nil
	}
	tick := an.Tick()
	an.History[tick] = alive
	old := an.Ap.Credit.Oldest(tick)
	for t := range an.History {
		if t < old {
			delete(an.History, t)
		}
	}

	dope := 0
	for _, pt := range alive {
		dope += an.burst(pt, tick)
	}
	avg := dope / len(alive)
	if avg > 0 {
		an.LastDope = avg
		if sk, ok := an.Zone().(SelfDopeSink); ok {
			sk.ReceiveSelfInducedDope(avg)
		}
	}
	an.distress(tick)
	an.recharge()
	return nil
}

// burst releases the value of the pattern if it was credited long enough
// ago and has the energy, returning the dopamine released.
func (an *AnticipatorArea) burst(pt *sdr.Pattern, tick int) int {
	de := an.energies[pt.ID]
	if de == nil || de.Value <= 0 || de.Tick >= tick-an.Params().Ticks(an.Ap.Lookback) {
		return 0
	}
	if de.Energy < an.Ap.MinEnergy {
		return 0
	}
	de.Last = tick
	de.Control = tick + an.Params().Ticks(an.Ap.Trace)
	de.Energy = 0
	if an.chained(pt, tick) {
		de.Energy = an.Ap.ChainDrain
	}
	an.Bursts = append(an.Bursts, Burst{Tick: tick, Pattern: pt})
	if n := len(an.Bursts); n > an.Ap.ChainLen {
		an.Bursts = append(an.Bursts[:0], an.Bursts[n-an.Ap.ChainLen:]...)
	}
	return de.Value
}

// chained records the chain formed by the last bursts and pt, and
// returns true if it is a loop.
func (an *AnticipatorArea) chained(pt *sdr.Pattern, tick int) bool {
	prev := an.Ap.ChainLen - 1
	if len(an.Bursts) < prev {
		return false
	}
	pats := make([]*sdr.Pattern, 0, an.Ap.ChainLen)
	for _, bs := range an.Bursts[len(an.Bursts)-prev:] {
		pats = append(pats, bs.Pattern)
	}
	pats = append(pats, pt)
	hash := ChainHash(pats)
	ch, has := an.Chains[hash]
	if !has {
		an.Chains[hash] = &BurstChain{Hash: hash, Hits: 1, Last: tick}
		return false
	}
	ch.Hits++
	loop := ch.Hits > an.Ap.ChainHits && ch.Last > tick-an.Ap.ChainTicks
	ch.Last = tick
	return loop
}

// distress decreases the value of the patterns whose expected dopamine
// did not arrive in time
func (an *AnticipatorArea) distress(tick int) {
	for _, de := range an.Energies {
		if de.Control != 0 && de.Control <= tick {
			de.SetValue(de.Value - 1)
			de.Control = 0
		}
	}
}

func (an *AnticipatorArea) recharge() {
	for _, de := range an.Energies {
		if de.Energy < an.Ap.MinEnergy {
			de.Energy += an.Ap.Charge
		}
	}
}

// ReceiveDope first stops the traces that the portions fulfill, then
// credits each portion to the patterns of the window that originate
// from its source area.  Dopamine from surprise also fully recharges
// the credited patterns.
func (an *AnticipatorArea) ReceiveDope(portions []neuro.Portion, selfInduced bool) {
	tick := an.Tick()
	nt := an.Net
	trace := an.Params().Ticks(an.Ap.Trace)
	for _, de := range an.Energies {
		for _, p := range portions {
			if de.Control != 0 && de.Control < tick+trace && de.Value <= p.Value && nt.PatternAccepts(de.Pattern, p) {
				de.Control = 0
			}
		}
	}

	for _, p := range portions {
		if p.Value < an.Ap.Credit.DopeMin {
			continue
		}
		done := make(map[sdr.PatternID]bool)
		start, end := an.Ap.Credit.Range(tick, selfInduced)
		for t := start; t < end; t++ {
			for _, pt := range an.History[t] {
				if done[pt.ID] || !nt.PatternAccepts(pt, p) {
					continue
				}
				done[pt.ID] = true
				if de := an.energies[pt.ID]; de != nil {
					de.SetValue(p.Value)
					if !selfInduced {
						de.Energy = 1
					}
					continue
				}
				de := &DopeEnergy{Pattern: pt, Value: p.Value, Tick: t}
				an.Energies = append(an.Energies, de)
				an.energies[pt.ID] = de
			}
		}
	}
}
