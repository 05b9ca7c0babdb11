// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package receptive

import (
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
)

// TactileArea encodes the state of the hand: one random sub-pattern for
// each value of clenched and of holding, combined side by side.
type TactileArea struct {
	neuro.AreaStru
	SubSpace int             `def:"100" desc:"space of each sub-pattern"`
	Clenched [2]*sdr.Pattern `desc:"sub-patterns for not clenched / clenched"`
	Holding  [2]*sdr.Pattern `desc:"sub-patterns for not holding / holding"`
}

// NewTactileArea returns a new tactile area
func NewTactileArea(name string) *TactileArea {
	ta := &TactileArea{}
	ta.InitName(name, neuro.AreaReceptive)
	ta.SubSpace = 100
	ta.OutSpace = 2 * ta.SubSpace
	ta.OutNorm = 20
	return ta
}

func (ta *TactileArea) Build() error {
	st := ta.Store()
	rnd := ta.Rand()
	sz := ta.OutNorm / 2
	for i, on := range []bool{false, true} {
		ta.Clenched[i] = st.NewRandom(ta.SubSpace, sz, sdr.Data{"clenched": on}, ta.ID, rnd)
		ta.Holding[i] = st.NewRandom(ta.SubSpace, sz, sdr.Data{"holding": on}, ta.ID, rnd)
	}
	return nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Activate sets the output to the code of given hand state
func (ta *TactileArea) Activate(clenched, holding bool) {
	pt := ta.Store().Combine([]*sdr.Pattern{ta.Clenched[b2i(clenched)], ta.Holding[b2i(holding)]}, []int{ta.SubSpace, ta.SubSpace})
	if pt.Area == sdr.NoArea {
		pt.Area = ta.ID
	}
	ta.SetOutput(pt)
}
