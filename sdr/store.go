// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdr

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
)

// Store is the arena of all patterns created during a run.
// Patterns are deduplicated by (Space, index set) and are never removed.
type Store struct {
	Pats  []*Pattern           `desc:"all patterns, indexed by PatternID"`
	index map[string]PatternID `desc:"key of space + index set -> pattern"`
}

// NewStore returns a new empty Store
func NewStore() *Store {
	return &Store{index: make(map[string]PatternID)}
}

// Len returns the number of patterns in the store
func (ps *Store) Len() int {
	return len(ps.Pats)
}

// ByID returns the pattern for given id, nil if invalid
func (ps *Store) ByID(id PatternID) *Pattern {
	if id < 0 || int(id) >= len(ps.Pats) {
		return nil
	}
	return ps.Pats[id]
}

// Key returns the identity key for a sorted index set in given space
func Key(space int, sorted []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(space))
	b.WriteByte(':')
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// FindOrCreate returns the existing pattern with the same space and index
// set (regardless of the order of value), or creates and registers a new one.
// An existing pattern keeps its data and area, except that missing ones
// are filled in from the arguments.
func (ps *Store) FindOrCreate(space int, value []int, data Data, area AreaID) *Pattern {
	sv := sortedSet(value)
	key := Key(space, sv)
	if id, ok := ps.index[key]; ok {
		pt := ps.Pats[id]
		if pt.Data == nil && data != nil {
			pt.Data = data
		}
		if pt.Area == NoArea {
			pt.Area = area
		}
		return pt
	}
	pt := &Pattern{ID: PatternID(len(ps.Pats)), Space: space, Value: sv, Data: data, Area: area}
	ps.Pats = append(ps.Pats, pt)
	if ps.index == nil {
		ps.index = make(map[string]PatternID)
	}
	ps.index[key] = pt.ID
	return pt
}

// NewRandom returns a pattern with size distinct random indices in space
func (ps *Store) NewRandom(space, size int, data Data, area AreaID, rnd *rand.Rand) *Pattern {
	vals := rnd.Perm(space)[:size]
	return ps.FindOrCreate(space, vals, data, area)
}

// Combine makes the combined pattern of given input slots: each alive
// input's indices are shifted by the total size of the slots before it,
// data is merged in slot order (later slots win), and the result lives
// in a space that is the sum of sizes.  The combined pattern records the
// alive inputs as its sources.  Returns nil if no input is alive.
func (ps *Store) Combine(inputs []*Pattern, sizes []int) *Pattern {
	var idxs []int
	var data Data
	var srcs []PatternID
	shift := 0
	space := 0
	for i, in := range inputs {
		if in != nil {
			for _, v := range in.Value {
				idxs = append(idxs, v+shift)
			}
			srcs = append(srcs, in.ID)
			data = data.Merge(in.Data)
		}
		shift += sizes[i]
	}
	for _, sz := range sizes {
		space += sz
	}
	if len(idxs) == 0 {
		return nil
	}
	pt := ps.FindOrCreate(space, idxs, data, NoArea)
	pt.Sources = srcs
	return pt
}

// OriginatesFrom returns true if the pattern was produced by given area,
// directly or through any of its source patterns.
func (ps *Store) OriginatesFrom(pt *Pattern, area AreaID) bool {
	if pt == nil {
		return false
	}
	if pt.Area == area {
		return true
	}
	for _, sid := range pt.Sources {
		if sid == pt.ID {
			continue
		}
		if ps.OriginatesFrom(ps.ByID(sid), area) {
			return true
		}
	}
	return false
}

// SizeReport returns a string reporting the number of patterns and the
// approximate memory they use.  There is no eviction: this only grows.
func (ps *Store) SizeReport() string {
	var b strings.Builder
	mem := 0
	nidx := 0
	hist := 0
	spaces := make(map[int]int)
	for _, pt := range ps.Pats {
		nidx += len(pt.Value)
		hist += len(pt.History)
		mem += int(unsafe.Sizeof(Pattern{})) + 8*len(pt.Value) + 4*len(pt.Sources) + 16*len(pt.History)
		spaces[pt.Space]++
	}
	mem += len(ps.index) * 32
	fmt.Fprintf(&b, "Patterns: %d\t Indexes: %d\t History: %d\t Mem: %v\n", len(ps.Pats), nidx, hist, (datasize.ByteSize)(mem).HumanReadable())
	sps := make([]int, 0, len(spaces))
	for sp := range spaces {
		sps = append(sps, sp)
	}
	sort.Ints(sps)
	for _, sp := range sps {
		fmt.Fprintf(&b, "\tSpace: %6d\t Patterns: %d\n", sp, spaces[sp])
	}
	return b.String()
}
