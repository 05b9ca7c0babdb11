// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdr

import (
	"fmt"
	"sort"
	"strings"
)

// PatternID is a handle to a Pattern in a Store
type PatternID int32

// NoPattern is the PatternID of a missing pattern
const NoPattern PatternID = -1

// AreaID is a handle to the area that produced a pattern.
// Areas are owned by the network, so patterns only keep the handle.
type AreaID int32

// NoArea marks a pattern that was not produced by any area
// (e.g., combined patterns)
const NoArea AreaID = -1

// Data is the payload carried by a pattern: perceptual context
// (area name -> encoded value) or action semantics (e.g., "left" -> 1).
type Data map[string]interface{}

// Clone returns a shallow copy of the data (nil stays nil)
func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	cp := make(Data, len(d))
	for k, v := range d {
		cp[k] = v
	}
	return cp
}

// Merge copies all keys of o into d, overwriting existing ones,
// allocating d if needed.  Returns the merged map.
func (d Data) Merge(o Data) Data {
	if len(o) == 0 {
		return d
	}
	if d == nil {
		d = make(Data, len(o))
	}
	for k, v := range o {
		d[k] = v
	}
	return d
}

// Equal returns true if both maps have the same keys and values
func (d Data) Equal(o Data) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		ov, ok := o[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Float returns the value of given key as a float32, if it is numeric
func (d Data) Float(key string) (float32, bool) {
	switch v := d[key].(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	}
	return 0, false
}

// Int returns the value of given key as an int, if it is numeric or bool
func (d Data) Int(key string) (int, bool) {
	switch v := d[key].(type) {
	case int:
		return v, true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// String returns the data with keys in sorted order
func (d Data) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, d[k])
	}
	b.WriteString("}")
	return b.String()
}

// Pattern is a sparse binary code: a sorted set of active indices
// within a space of Space indices.
type Pattern struct {
	ID      PatternID        `desc:"index of this pattern in its Store -- monotonically increasing"`
	Space   int              `desc:"total number of addressable indices"`
	Value   []int            `desc:"sorted, distinct active indices"`
	Data    Data             `desc:"payload merged from source patterns, or action semantics"`
	Area    AreaID           `desc:"area that produced this pattern, NoArea if none"`
	Sources []PatternID      `desc:"patterns this one was derived from"`
	History map[int][]AreaID `view:"-" desc:"tick -> areas that saw this pattern on that tick"`
}

// Size returns the number of active indices
func (pt *Pattern) Size() int {
	return len(pt.Value)
}

// Overlap returns the number of active indices shared with other
func (pt *Pattern) Overlap(o *Pattern) int {
	n := 0
	i, j := 0, 0
	for i < len(pt.Value) && j < len(o.Value) {
		switch {
		case pt.Value[i] == o.Value[j]:
			n++
			i++
			j++
		case pt.Value[i] < o.Value[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// Equal returns true if o has the same space, size and index set.
func (pt *Pattern) Equal(o *Pattern) bool {
	if o == nil {
		return false
	}
	if pt.Space != o.Space || pt.Size() != o.Size() {
		return false
	}
	return pt.Overlap(o) == pt.Size()
}

// Similarity returns the fraction of this pattern's indices that are also
// active in o, or 0 if the spaces or sizes differ.
func (pt *Pattern) Similarity(o *Pattern) float32 {
	if o == nil || pt.Space != o.Space || pt.Size() != o.Size() || pt.Size() == 0 {
		return 0
	}
	return float32(pt.Overlap(o)) / float32(pt.Size())
}

// Contains returns true if idx is active
func (pt *Pattern) Contains(idx int) bool {
	i := sort.SearchInts(pt.Value, idx)
	return i < len(pt.Value) && pt.Value[i] == idx
}

// Log records that given area saw this pattern on given tick
func (pt *Pattern) Log(tick int, area AreaID) {
	if pt.History == nil {
		pt.History = make(map[int][]AreaID)
	}
	pt.History[tick] = append(pt.History[tick], area)
}

func (pt *Pattern) String() string {
	return fmt.Sprintf("(%d) %v %v", pt.ID, pt.Value, pt.Data)
}

// sortedSet returns a sorted copy of vals without duplicates
func sortedSet(vals []int) []int {
	sv := make([]int, len(vals))
	copy(sv, vals)
	sort.Ints(sv)
	n := 0
	for i, v := range sv {
		if i > 0 && v == sv[n-1] {
			continue
		}
		sv[n] = v
		n++
	}
	return sv[:n]
}
