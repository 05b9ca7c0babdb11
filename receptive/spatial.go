// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package receptive

import (
	"fmt"
	"sort"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
	"github.com/goki/ki/ints"
)

// NoValue is the spatial value meaning "nothing to encode"
const NoValue = -1

// SpatialArea encodes a scalar in [0, 1) as a pattern centered on the
// index proportional to the value, with the remaining active indices
// scattered around it, denser close to the center.  Nearby values thus
// share many indices.  Encodings are cached on a grid of Grid cells.
type SpatialArea struct {
	neuro.AreaStru
	Grid  int `desc:"number of cache cells over [0, 1) -- 0 means one per output index"`
	cache map[int][]int
}

// NewSpatialArea returns a new spatial area.  Zero sizes take the network
// defaults on Build.
func NewSpatialArea(name string, space, norm, grid int) *SpatialArea {
	sa := &SpatialArea{}
	sa.InitName(name, neuro.AreaReceptive)
	sa.OutSpace = space
	sa.OutNorm = norm
	sa.Grid = grid
	return sa
}

func (sa *SpatialArea) Build() error {
	pr := sa.Params()
	if sa.OutSpace == 0 {
		sa.OutSpace = pr.SpatialSpace
	}
	if sa.OutNorm == 0 {
		sa.OutNorm = pr.SpatialNorm
	}
	if sa.Grid == 0 {
		sa.Grid = sa.OutSpace
	}
	if sa.Grid > sa.OutSpace {
		return fmt.Errorf("SpatialArea %v: grid: %d space: %d: %w", sa.Nm, sa.Grid, sa.OutSpace, ErrGridSize)
	}
	sa.cache = make(map[int][]int)
	return nil
}

// Encode returns the sorted active indices for v, nil for NoValue.
// Values above 0.99 are encoded as 0.99.
func (sa *SpatialArea) Encode(v float32) ([]int, error) {
	if v == NoValue {
		return nil, nil
	}
	if v > 0.99 {
		v = 0.99
	}
	if v < 0 || v >= 1 {
		return nil, fmt.Errorf("SpatialArea %v: value: %v: %w", sa.Nm, v, ErrUnnormalized)
	}
	key := int(v * float32(sa.Grid))
	if idxs, has := sa.cache[key]; has {
		return idxs, nil
	}
	space := sa.OutSpace
	ctr := int(float32(space) * v)
	maxd := ctr
	if ctr <= space/2 {
		maxd = space - ctr
	}
	// cumulative weights of all indices beyond the immediate neighbors
	cum := make([]int, space)
	tot := 0
	npos := 0
	for i := 0; i < space; i++ {
		d := i - ctr
		if d < 0 {
			d = -d
		}
		if d > 1 {
			w := (maxd - d) * (maxd - d)
			if w > 0 {
				npos++
			}
			tot += w
		}
		cum[i] = tot
	}
	idxs := []int{ctr}
	if ctr > 0 {
		idxs = append(idxs, ctr-1)
	}
	if ctr < space-1 {
		idxs = append(idxs, ctr+1)
	}
	norm := ints.MinInt(sa.OutNorm, len(idxs)+npos)
	has := make(map[int]bool, norm)
	for _, ix := range idxs {
		has[ix] = true
	}
	rnd := sa.Rand()
	for len(idxs) < norm {
		r := rnd.Intn(tot)
		ix := sort.Search(space, func(i int) bool { return cum[i] > r })
		if !has[ix] {
			has[ix] = true
			idxs = append(idxs, ix)
		}
	}
	sort.Ints(idxs)
	sa.cache[key] = idxs
	return idxs, nil
}

// Activate sets the output to the encoding of v, or to nothing for NoValue
func (sa *SpatialArea) Activate(v float32) error {
	idxs, err := sa.Encode(v)
	if err != nil {
		return err
	}
	if idxs == nil {
		sa.Output = nil
		return nil
	}
	sa.SetOutput(sa.Store().FindOrCreate(sa.OutSpace, idxs, sdr.Data{sa.Nm: v}, sa.ID))
	return nil
}
