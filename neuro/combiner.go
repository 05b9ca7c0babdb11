// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import "github.com/emer/reflex/sdr"

// Combiner gathers the patterns arriving on its slots and sends every
// relevant combination of them to its outputs in one batch: the full set
// of alive inputs plus all of its subsets of size up to MaxSub.
// It is registered as an area only so that wires can target its slots;
// the owning zone calls CombineTransfer.
type Combiner struct {
	AreaStru
	Outputs    []InputReceiver `desc:"areas receiving the combinations"`
	ResetTicks int             `desc:"inputs are cleared when more than this many ticks passed since the last clear"`
	MaxSub     int             `desc:"largest subset size sent in addition to the full set"`
	LastReset  int             `desc:"tick of the last clear of the inputs"`
}

// NewCombiner returns a new combiner with parameters taken from the network on Build
func NewCombiner(name string) *Combiner {
	cb := &Combiner{}
	cb.InitName(name, AreaCombiner)
	return cb
}

func (cb *Combiner) Build() error {
	pr := cb.Params()
	if cb.ResetTicks == 0 {
		cb.ResetTicks = pr.CombineReset
	}
	if cb.MaxSub == 0 {
		cb.MaxSub = pr.CombineSub
	}
	cb.ResetInputs()
	return nil
}

// AddOutput adds a receiver of the combinations
func (cb *Combiner) AddOutput(rc InputReceiver) {
	cb.Outputs = append(cb.Outputs, rc)
}

// CombineTransfer sends the combinations of the current inputs to all
// outputs, and returns them.  With no alive input every output receives a
// single nil pattern, so it sees an empty input set.  Inputs persist until
// ResetTicks passed since the last clear.
func (cb *Combiner) CombineTransfer() []*sdr.Pattern {
	pats := cb.Combinations(cb.AliveInputs())
	if len(pats) == 0 {
		pats = []*sdr.Pattern{nil}
		for _, rc := range cb.Outputs {
			rc.ReceiveInputs(pats)
		}
		return pats
	}
	for _, rc := range cb.Outputs {
		rc.ReceiveInputs(pats)
	}
	tick := cb.Tick()
	if tick-cb.LastReset > cb.ResetTicks {
		cb.ResetInputs()
		cb.LastReset = tick
	}
	return pats
}

// Combinations returns the full set of alive patterns (combined into one,
// or as-is when there is only one), followed by all subsets of sizes
// 1..MaxSub smaller than the full set.  Singletons are sent as-is.
func (cb *Combiner) Combinations(alive []*sdr.Pattern) []*sdr.Pattern {
	k := len(alive)
	if k == 0 {
		return nil
	}
	st := cb.Store()
	pats := []*sdr.Pattern{cb.combine(st, alive)}
	for sz := 1; sz < k && sz <= cb.MaxSub; sz++ {
		Subsets(k, sz, func(idxs []int) {
			sub := make([]*sdr.Pattern, len(idxs))
			for i, ix := range idxs {
				sub[i] = alive[ix]
			}
			pats = append(pats, cb.combine(st, sub))
		})
	}
	return pats
}

func (cb *Combiner) combine(st *sdr.Store, pats []*sdr.Pattern) *sdr.Pattern {
	if len(pats) == 1 {
		return pats[0]
	}
	sizes := make([]int, len(pats))
	for i, pt := range pats {
		sizes[i] = pt.Space
	}
	return st.Combine(pats, sizes)
}

// Subsets calls fun with the indexes of every subset of size sz of n
// items, in lexicographic order.  The slice is reused between calls.
func Subsets(n, sz int, fun func(idxs []int)) {
	if sz <= 0 || sz > n {
		return
	}
	idxs := make([]int, sz)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		fun(idxs)
		i := sz - 1
		for i >= 0 && idxs[i] == n-sz+i {
			i--
		}
		if i < 0 {
			return
		}
		idxs[i]++
		for j := i + 1; j < sz; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}
