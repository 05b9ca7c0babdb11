// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdr

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/goki/ki/ints"
)

// ErrNoConvergence is returned when the processor fails to find a valid
// output set within MaxTries sampling passes.
var ErrNoConvergence = errors.New("sdr: projection did not converge")

// Processor turns a combined input pattern into a sparse output pattern
// through a fixed random projection that is sampled stochastically on each
// pass.  Output indices receiving the most votes win.  The (input, output)
// index pairs behind each selected output become highways, which always
// fire on later passes.
type Processor struct {
	OutSpace  int     `desc:"size of the output space"`
	OutNorm   int     `desc:"number of active indices in every output pattern"`
	FanOut    float32 `def:"0.12" desc:"projection density: each input index projects to FanOut * OutSpace * OutNorm / input size output indices"`
	ActivePct int     `def:"10" min:"1" max:"100" desc:"percent chance that a given projection fires on a sampling pass"`
	Votes     int     `def:"2" desc:"vote count separating strong (> Votes) from weak (== Votes) output candidates"`
	MaxTries  int     `def:"10000" desc:"maximum number of sampling passes before giving up"`

	Proj     [][]int             `view:"-" desc:"projection table: input index -> output indices, built lazily on first input"`
	Highways map[int][]int       `view:"-" desc:"reinforced shortcuts: input index -> output indices"`
	hwSet    map[[2]int]struct{} `desc:"set of highway pairs"`
	fan      int                 `desc:"number of outputs per input index, computed on first input"`
}

// NewProcessor returns a processor with default parameters for given output size
func NewProcessor(outSpace, outNorm int) *Processor {
	sp := &Processor{OutSpace: outSpace, OutNorm: outNorm}
	sp.Defaults()
	return sp
}

func (sp *Processor) Defaults() {
	sp.FanOut = 0.12
	sp.ActivePct = 10
	sp.Votes = 2
	sp.MaxTries = 10000
}

// NHighways returns the number of highway (input, output) pairs
func (sp *Processor) NHighways() int {
	return len(sp.hwSet)
}

// Process computes the output pattern for given input, registering it in
// the store as produced by area.  The output always has exactly OutNorm
// sorted indices in [0, OutSpace).
func (sp *Processor) Process(st *Store, in *Pattern, area AreaID, rnd *rand.Rand) (*Pattern, error) {
	if in == nil || in.Size() == 0 {
		return nil, fmt.Errorf("sdr Process: empty input pattern")
	}
	sp.build(in, rnd)
	for try := 0; try < sp.MaxTries; try++ {
		out, acts := sp.sample(in, rnd)
		if out == nil {
			continue
		}
		if len(out) > sp.OutNorm {
			pick := rnd.Perm(len(out))[:sp.OutNorm]
			sel := make([]int, sp.OutNorm)
			for i, pi := range pick {
				sel[i] = out[pi]
			}
			out = sel
		}
		sort.Ints(out)
		pt := st.FindOrCreate(sp.OutSpace, out, nil, area)
		sp.addHighways(pt, acts)
		return pt, nil
	}
	return nil, fmt.Errorf("%w: input %d of size %d after %d tries", ErrNoConvergence, in.ID, in.Size(), sp.MaxTries)
}

// build makes the projection rows needed for the input space
func (sp *Processor) build(in *Pattern, rnd *rand.Rand) {
	if sp.fan == 0 {
		fan := int(sp.FanOut * float32(sp.OutSpace*sp.OutNorm) / float32(in.Size()))
		sp.fan = ints.MaxInt(ints.MinInt(fan, sp.OutSpace), 1)
	}
	if sp.Highways == nil {
		sp.Highways = make(map[int][]int)
		sp.hwSet = make(map[[2]int]struct{})
	}
	for len(sp.Proj) < in.Space {
		sp.Proj = append(sp.Proj, rnd.Perm(sp.OutSpace)[:sp.fan])
	}
}

// sample runs one stochastic pass, returning the candidate output indices
// (nil if the pass did not produce enough winners) and the activated
// (input, output) pairs.
func (sp *Processor) sample(in *Pattern, rnd *rand.Rand) ([]int, [][2]int) {
	votes := make(map[int]int)
	var order []int
	var acts [][2]int
	vote := func(ii, oi int) {
		if votes[oi] == 0 {
			order = append(order, oi)
		}
		votes[oi]++
		acts = append(acts, [2]int{ii, oi})
	}
	for _, ii := range in.Value {
		for _, oi := range sp.Proj[ii] {
			if rnd.Intn(100) < sp.ActivePct {
				vote(ii, oi)
			}
		}
		for _, oi := range sp.Highways[ii] {
			vote(ii, oi)
		}
	}
	if len(order) == 0 {
		return nil, nil
	}
	sort.SliceStable(order, func(i, j int) bool {
		return votes[order[i]] > votes[order[j]]
	})
	if votes[order[0]] > sp.Votes {
		var res []int
		for _, oi := range order {
			if votes[oi] > sp.Votes {
				res = append(res, oi)
			}
		}
		if len(res) >= sp.OutNorm {
			return res[:sp.OutNorm], acts
		}
		var weak []int
		for _, oi := range order {
			if votes[oi] == sp.Votes {
				weak = append(weak, oi)
			}
		}
		need := sp.OutNorm - len(res)
		if len(weak) < need {
			return nil, nil
		}
		for _, wi := range rnd.Perm(len(weak))[:need] {
			res = append(res, weak[wi])
		}
		return res, acts
	}
	var res []int
	for _, oi := range order {
		if votes[oi] > 1 {
			res = append(res, oi)
		}
	}
	if len(res) >= sp.OutNorm {
		return res, acts
	}
	return nil, nil
}

// addHighways records the activated pairs leading to the selected outputs
func (sp *Processor) addHighways(out *Pattern, acts [][2]int) {
	for _, ac := range acts {
		if !out.Contains(ac[1]) {
			continue
		}
		if _, has := sp.hwSet[ac]; has {
			continue
		}
		sp.hwSet[ac] = struct{}{}
		sp.Highways[ac[0]] = append(sp.Highways[ac[0]], ac[1])
	}
}
