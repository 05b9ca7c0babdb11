// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"
	"sort"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/reflex/sdr"
	"github.com/goki/mat32"
)

// PatternsConnection is a learned, weighted link from a source pattern to
// a target pattern, owned by the area that learned it.
type PatternsConnection struct {
	ID        int           `desc:"index in the ConnStore"`
	Source    sdr.PatternID `desc:"source pattern"`
	Target    sdr.PatternID `desc:"target pattern"`
	Area      sdr.AreaID    `desc:"area that owns this connection"`
	Weight    float32       `desc:"strength, kept within the ConnStore weight range"`
	Tick      int           `desc:"tick the connection was created on"`
	DopeValue float32       `desc:"expected dopamine following activation of this connection"`
}

func (pc *PatternsConnection) String() string {
	return fmt.Sprintf("%d -> %d wt: %.3f dope: %.3f", pc.Source, pc.Target, pc.Weight, pc.DopeValue)
}

type connKey struct {
	area     sdr.AreaID
	src, tgt sdr.PatternID
}

// ConnStore holds all PatternsConnections of a network
type ConnStore struct {
	Conns   []*PatternsConnection `desc:"all connections in creation order"`
	Wts     minmax.F32            `desc:"allowed range of weights"`
	Verbose bool                  `desc:"log every weight change"`
	index   map[connKey]int
}

// Init sets the weight range and clears the store
func (cs *ConnStore) Init(minWt, maxWt float32) {
	cs.Wts.Set(minWt, maxWt)
	cs.Conns = nil
	cs.index = make(map[connKey]int)
}

// Len returns the number of connections
func (cs *ConnStore) Len() int {
	return len(cs.Conns)
}

// Add creates a new connection owned by area, with weight clipped to
// the allowed range.  A second connection for the same area, source and
// target is an ErrDuplicateConnection.
func (cs *ConnStore) Add(area sdr.AreaID, src, tgt sdr.PatternID, wt float32, tick int, dope float32) (*PatternsConnection, error) {
	key := connKey{area, src, tgt}
	if cs.index == nil {
		cs.index = make(map[connKey]int)
	}
	if _, has := cs.index[key]; has {
		return nil, fmt.Errorf("pattern connection %d -> %d in area %d: %w", src, tgt, area, ErrDuplicateConnection)
	}
	pc := &PatternsConnection{ID: len(cs.Conns), Source: src, Target: tgt, Area: area, Weight: cs.ClipWt(wt), Tick: tick, DopeValue: dope}
	cs.Conns = append(cs.Conns, pc)
	cs.index[key] = pc.ID
	return pc, nil
}

// ClipWt returns wt clipped to the allowed weight range
func (cs *ConnStore) ClipWt(wt float32) float32 {
	return mat32.Clamp(wt, cs.Wts.Min, cs.Wts.Max)
}

// Find returns the connection for given area, source and target, nil if none
func (cs *ConnStore) Find(area sdr.AreaID, src, tgt sdr.PatternID) *PatternsConnection {
	ci, has := cs.index[connKey{area, src, tgt}]
	if !has {
		return nil
	}
	return cs.Conns[ci]
}

// UpdateWeight adds delta to the weight of pc, clipped to the allowed range
func (cs *ConnStore) UpdateWeight(pc *PatternsConnection, delta float32) {
	pc.Weight = cs.ClipWt(pc.Weight + delta)
	if cs.Verbose {
		fmt.Printf("conn: %v delta: %.3f\n", pc, delta)
	}
}

// ByArea returns the connections owned by area, in creation order
func (cs *ConnStore) ByArea(area sdr.AreaID) []*PatternsConnection {
	var pcs []*PatternsConnection
	for _, pc := range cs.Conns {
		if pc.Area == area {
			pcs = append(pcs, pc)
		}
	}
	return pcs
}

// BySources returns the connections owned by area whose source is one
// of the given patterns, sorted by decreasing weight.
func (cs *ConnStore) BySources(area sdr.AreaID, srcs []*sdr.Pattern) []*PatternsConnection {
	ids := make(map[sdr.PatternID]struct{}, len(srcs))
	for _, pt := range srcs {
		if pt != nil {
			ids[pt.ID] = struct{}{}
		}
	}
	var pcs []*PatternsConnection
	for _, pc := range cs.Conns {
		if pc.Area != area {
			continue
		}
		if _, ok := ids[pc.Source]; ok {
			pcs = append(pcs, pc)
		}
	}
	sort.SliceStable(pcs, func(i, j int) bool {
		return pcs[i].Weight > pcs[j].Weight
	})
	return pcs
}
