// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"errors"
	"testing"

	"github.com/emer/reflex/sdr"
)

func newEncoderNet(t *testing.T) (*Network, *testInput, *EncoderArea, *[]Event) {
	t.Helper()
	nt, zn := newTestNet(t)
	events := &[]Event{}
	nt.Sink = EventSinkFunc(func(ev Event) { *events = append(*events, ev) })
	src := newTestInput("src", 100)
	enc := NewEncoderArea("enc", 0, 0)
	mustAdd(t, nt, zn, src, enc)
	mustConnect(t, nt, src, enc)
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	return nt, src, enc, events
}

// similarTo returns a copy of pt with n indices replaced by inactive ones
func similarTo(st *sdr.Store, pt *sdr.Pattern, n int) *sdr.Pattern {
	vals := append([]int(nil), pt.Value...)
	rep := 0
	for idx := 0; idx < pt.Space && rep < n; idx++ {
		if !pt.Contains(idx) {
			vals[rep] = idx
			rep++
		}
	}
	return st.FindOrCreate(pt.Space, vals, nil, pt.Area)
}

func TestEncoderIdempotence(t *testing.T) {
	nt, src, enc, events := newEncoderNet(t)
	if enc.OutSpace != 1000 || enc.OutNorm != 20 || enc.RecogThr != 0.7 {
		t.Errorf("defaults not applied: %v %v %v\n", enc.OutSpace, enc.OutNorm, enc.RecogThr)
	}
	pt := nt.Store.NewRandom(100, 20, sdr.Data{"x": 1}, src.ID, nt.Rand)

	nt.Time.Tick = 1
	enc.Inputs[0] = pt
	if err := enc.Update(); err != nil {
		t.Fatal(err)
	}
	if enc.Output != nil {
		t.Errorf("new pattern conveyed: %v\n", enc.Output)
	}
	if len(enc.PatConns) != 1 || len(*events) != 1 {
		t.Fatalf("new pattern not learned: conns: %v events: %v\n", len(enc.PatConns), len(*events))
	}
	learned := nt.Store.ByID(enc.PatConns[0].Target)
	if learned.Size() != 20 || learned.Area != enc.ID || !learned.Data.Equal(pt.Data) {
		t.Errorf("learned pattern: %v area: %v\n", learned, learned.Area)
	}
	if pc, ok := (*events)[0].(PatternCreated); !ok || pc.Surprise != 1 || pc.Pattern != learned.ID {
		t.Errorf("event: %v\n", (*events)[0])
	}
	if nt.PendingDope() != 1 {
		t.Errorf("surprise not queued as dopamine: %v\n", nt.PendingDope())
	}

	inputs := []*sdr.Pattern{pt, pt, similarTo(nt.Store, pt, 2)}
	for i, in := range inputs {
		nt.Time.Tick = 2 + i
		enc.Inputs[0] = in
		if err := enc.Update(); err != nil {
			t.Fatal(err)
		}
		if enc.Output != learned {
			t.Errorf("recognition err: idx: %v, got: %v, trg: %v\n", i, enc.Output, learned)
		}
	}
	if len(enc.PatConns) != 1 || len(*events) != 1 {
		t.Errorf("recognized input was learned again: conns: %v\n", len(enc.PatConns))
	}

	other := nt.Store.NewRandom(100, 20, nil, src.ID, nt.Rand)
	out, isNew, err := enc.RecognizeProcess(other)
	if err != nil {
		t.Fatal(err)
	}
	if !isNew || out == learned {
		t.Errorf("unrelated input recognized: %v\n", out)
	}
}

func TestEncoderCache(t *testing.T) {
	nt, src, enc, _ := newEncoderNet(t)
	enc.CacheTicks = 3
	enc.ConveyNew = true
	pt := nt.Store.NewRandom(100, 20, nil, src.ID, nt.Rand)
	nt.Time.Tick = 1
	enc.Inputs[0] = pt
	if err := enc.Update(); err != nil {
		t.Fatal(err)
	}
	first := enc.Output
	if first == nil {
		t.Fatalf("new pattern not conveyed\n")
	}
	trg := []*sdr.Pattern{first, first, nil}
	for i, tr := range trg {
		nt.Time.Tick = 2 + i
		if err := enc.Update(); err != nil {
			t.Fatal(err)
		}
		if enc.Output != tr {
			t.Errorf("cache err: tick: %v, got: %v, trg: %v\n", nt.Time.Tick, enc.Output, tr)
		}
	}
}

func TestMinInputs(t *testing.T) {
	nt, zn := newTestNet(t)
	src := newTestInput("src", 100)
	ca := NewConfluenceArea("confluence")
	mustAdd(t, nt, zn, src, ca)
	mustConnect(t, nt, src, ca)
	if err := nt.Build(); !errors.Is(err, ErrMinInputs) {
		t.Errorf("build with too few slots: got: %v\n", err)
	}
}
