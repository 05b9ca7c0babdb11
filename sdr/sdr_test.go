// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdr

import (
	"math/rand"
	"testing"
)

const difTol = float32(1.0e-6)

func TestFindOrCreateIdentity(t *testing.T) {
	st := NewStore()
	a := st.FindOrCreate(100, []int{5, 1, 42, 7}, nil, NoArea)
	b := st.FindOrCreate(100, []int{42, 7, 5, 1}, nil, 3)
	if a != b {
		t.Errorf("same index set in different order must return same pattern: %v vs %v\n", a, b)
	}
	if b.Area != 3 {
		t.Errorf("missing area should be filled in, got: %v\n", b.Area)
	}
	c := st.FindOrCreate(200, []int{1, 5, 7, 42}, nil, NoArea)
	if c == a {
		t.Errorf("different space must make a different pattern\n")
	}
	d := st.FindOrCreate(100, []int{1, 5, 7, 43}, nil, NoArea)
	if d == a {
		t.Errorf("different index set must make a different pattern\n")
	}
	if st.Len() != 3 {
		t.Errorf("store len: %v != 3\n", st.Len())
	}
	if st.ByID(a.ID) != a || st.ByID(NoPattern) != nil {
		t.Errorf("ByID lookup failed\n")
	}
	e := st.FindOrCreate(100, []int{3, 3, 9}, nil, NoArea)
	if e.Size() != 2 {
		t.Errorf("duplicate indexes must collapse, size: %v\n", e.Size())
	}
}

func TestSimilarity(t *testing.T) {
	st := NewStore()
	a := st.FindOrCreate(100, []int{1, 2, 3, 4}, nil, NoArea)
	b := st.FindOrCreate(100, []int{1, 2, 3, 5}, nil, NoArea)
	c := st.FindOrCreate(100, []int{1, 2, 3}, nil, NoArea)
	d := st.FindOrCreate(50, []int{1, 2, 3, 4}, nil, NoArea)

	tests := []struct {
		p, o *Pattern
		sim  float32
		eq   bool
	}{
		{a, a, 1, true},
		{a, b, 0.75, false},
		{a, c, 0, false},
		{a, d, 0, false},
	}
	for i, ts := range tests {
		sim := ts.p.Similarity(ts.o)
		dif := sim - ts.sim
		if dif < -difTol || dif > difTol {
			t.Errorf("sim err: idx: %v, sim: %v, exp: %v\n", i, sim, ts.sim)
		}
		if ts.p.Equal(ts.o) != ts.eq {
			t.Errorf("equal err: idx: %v, exp: %v\n", i, ts.eq)
		}
	}
}

func TestCombine(t *testing.T) {
	st := NewStore()
	a := st.FindOrCreate(10, []int{1, 2}, Data{"a": 1, "x": 1}, 0)
	b := st.FindOrCreate(20, []int{0, 19}, Data{"b": 2, "x": 2}, 1)

	if cp := st.Combine([]*Pattern{nil, nil}, []int{10, 20}); cp != nil {
		t.Errorf("combine of no alive inputs must be nil, got: %v\n", cp)
	}
	cp := st.Combine([]*Pattern{a, nil, b}, []int{10, 5, 20})
	exp := []int{1, 2, 15, 34}
	if cp.Space != 35 {
		t.Errorf("combined space: %v != 35\n", cp.Space)
	}
	for i, v := range exp {
		if cp.Value[i] != v {
			t.Errorf("combined value err: idx: %v, val: %v, exp: %v\n", i, cp.Value[i], v)
		}
	}
	if x, _ := cp.Data.Int("x"); x != 2 {
		t.Errorf("later slot data must win, x: %v\n", x)
	}
	if len(cp.Sources) != 2 || cp.Sources[0] != a.ID || cp.Sources[1] != b.ID {
		t.Errorf("combined sources: %v\n", cp.Sources)
	}
	if !st.OriginatesFrom(cp, 1) || st.OriginatesFrom(cp, 5) {
		t.Errorf("OriginatesFrom err\n")
	}
	if _, has := a.Data["b"]; has {
		t.Errorf("combine must not mutate input data\n")
	}
}

func TestProcessorOutputSize(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	st := NewStore()
	sp := NewProcessor(1000, 20)
	for i := 0; i < 20; i++ {
		in := st.NewRandom(200, 20, nil, NoArea, rnd)
		out, err := sp.Process(st, in, 7, rnd)
		if err != nil {
			t.Fatal(err)
		}
		if out.Size() != 20 {
			t.Errorf("output size: %v != 20\n", out.Size())
		}
		if out.Space != 1000 || out.Area != 7 {
			t.Errorf("output space / area: %v %v\n", out.Space, out.Area)
		}
		for j, v := range out.Value {
			if v < 0 || v >= 1000 {
				t.Errorf("output index out of range: %v\n", v)
			}
			if j > 0 && out.Value[j-1] >= v {
				t.Errorf("output not sorted: %v\n", out.Value)
			}
		}
	}
	if sp.NHighways() == 0 {
		t.Errorf("highways must be recorded for selected outputs\n")
	}
}

func TestProcessorHighwayRecall(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	st := NewStore()
	sp := NewProcessor(1000, 20)
	in := st.NewRandom(200, 20, nil, NoArea, rnd)
	first, err := sp.Process(st, in, 0, rnd)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sp.Process(st, in, 0, rnd)
	if err != nil {
		t.Fatal(err)
	}
	// highways give every first-pass winner at least 2 votes again, while
	// two unrelated outputs would share less than one index on average
	if ov := first.Overlap(second); ov < 4 {
		t.Errorf("highways should bias recall toward the first output, overlap: %v\n", ov)
	}
}
