// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/emer/reflex/sdr"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

// testInput is a receptive area whose output is set by the test
type testInput struct {
	AreaStru
}

func newTestInput(name string, space int) *testInput {
	ti := &testInput{}
	ti.InitName(name, AreaReceptive)
	ti.OutSpace = space
	ti.OutNorm = 10
	return ti
}

// testDope records the dopamine it receives
type testDope struct {
	AreaStru
	Got  []Portion
	Self []bool
}

func (td *testDope) ReceiveDope(portions []Portion, selfInduced bool) {
	td.Got = append(td.Got, portions...)
	td.Self = append(td.Self, selfInduced)
}

// testEmitter sends a PatternCreated event on given tick
type testEmitter struct {
	AreaStru
	OnTick   int
	Surprise int
}

func (te *testEmitter) Update() error {
	if te.Tick() == te.OnTick {
		te.Emit(PatternCreated{Surprise: te.Surprise, Area: te.ID, Pattern: sdr.NoPattern})
	}
	return nil
}

// failArea returns an error on every update
type failArea struct {
	AreaStru
}

var errTestFail = errors.New("test failure")

func (fa *failArea) Update() error { return errTestFail }

func newTestNet(t *testing.T) (*Network, Zone) {
	t.Helper()
	nt := NewNetwork("test", 42)
	zn := nt.AddZone(&ZoneStru{}, "zone")
	return nt, zn
}

func mustAdd(t *testing.T, nt *Network, zn Zone, ars ...Area) {
	t.Helper()
	for _, ar := range ars {
		if err := nt.AddArea(zn, ar); err != nil {
			t.Fatal(err)
		}
	}
}

func mustConnect(t *testing.T, nt *Network, src, tgt Area) *Connection {
	t.Helper()
	cn, err := nt.Connect(src, tgt, "")
	if err != nil {
		t.Fatal(err)
	}
	return cn
}

func TestNextTickVisibility(t *testing.T) {
	nt, zn := newTestNet(t)
	src := newTestInput("src", 100)
	wm1 := NewWorkingMemoryCell("wm1")
	wm2 := NewWorkingMemoryCell("wm2")
	mustAdd(t, nt, zn, src, wm1, wm2)
	mustConnect(t, nt, src, wm1)
	mustConnect(t, nt, wm1, wm2)
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	if wm1.InSizes[0] != 100 {
		t.Errorf("slot size: got: %v, trg: 100\n", wm1.InSizes[0])
	}
	pt := nt.Store.NewRandom(100, 10, nil, src.ID, nt.Rand)
	src.SetOutput(pt)

	trg := []struct{ wm1, wm2 *sdr.Pattern }{{nil, nil}, {pt, nil}, {pt, pt}}
	for i, tr := range trg {
		if err := nt.Step(); err != nil {
			t.Fatal(err)
		}
		if wm1.Output != tr.wm1 || wm2.Output != tr.wm2 {
			t.Errorf("tick: %v wm1: %v (trg %v) wm2: %v (trg %v)\n", i+1, wm1.Output, tr.wm1, wm2.Output, tr.wm2)
		}
	}
	if nt.Time.Tick != 3 {
		t.Errorf("tick: got: %v, trg: 3\n", nt.Time.Tick)
	}

	nt.ResetPerception()
	if src.Output != nil {
		t.Errorf("receptive output not cleared\n")
	}
	if wm2.Output != pt {
		t.Errorf("non receptive output cleared\n")
	}
	if err := nt.Run(6); err != nil {
		t.Fatal(err)
	}
	if wm2.Output != nil {
		t.Errorf("absence did not propagate through memory cells: %v\n", wm2.Output)
	}
}

func TestAddAreaErrors(t *testing.T) {
	nt, zn := newTestNet(t)
	a := newTestInput("a", 10)
	mustAdd(t, nt, zn, a)
	if err := nt.AddArea(zn, newTestInput("a", 10)); !errors.Is(err, ErrDuplicateArea) {
		t.Errorf("duplicate area: got: %v\n", err)
	}
	if _, err := nt.AreaByName("nope"); !errors.Is(err, ErrAreaNotFound) {
		t.Errorf("missing area: got: %v\n", err)
	}
	ar, err := nt.AreaByName("a")
	if err != nil || ar != Area(a) {
		t.Errorf("AreaByName: got: %v, %v\n", ar, err)
	}
	b := NewWorkingMemoryCell("b")
	mustAdd(t, nt, zn, b)
	mustConnect(t, nt, a, b)
	if _, err := nt.Connect(a, b, ""); !errors.Is(err, ErrDuplicateConnection) {
		t.Errorf("duplicate wire: got: %v\n", err)
	}
	if _, err := nt.Connect(a, b, "active_reflex"); err == nil {
		t.Errorf("property wire from area without property outputs was accepted\n")
	}
	if nt.AreaByID(b.ID) != Area(b) || nt.AreaName(b.ID) != "b" || nt.AreaByID(5) != nil {
		t.Errorf("AreaByID mismatch\n")
	}
}

func TestDopamineSpread(t *testing.T) {
	nt, zn := newTestNet(t)
	var events []Event
	nt.Sink = EventSinkFunc(func(ev Event) { events = append(events, ev) })
	em := &testEmitter{OnTick: 2, Surprise: 3}
	em.InitName("emitter", AreaEncoder)
	td := &testDope{}
	td.InitName("dope", AreaReflex)
	mustAdd(t, nt, zn, em, td)
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	if err := nt.Step(); err != nil {
		t.Fatal(err)
	}
	if len(td.Got) != 0 || len(events) != 0 {
		t.Errorf("dopamine before any event: %v %v\n", td.Got, events)
	}
	if err := nt.Step(); err != nil {
		t.Fatal(err)
	}
	if len(td.Got) != 1 || td.Got[0].Value != 3 || td.Got[0].Source != em.ID || td.Self[0] {
		t.Errorf("dopamine not spread on the tick of the event: %v\n", td.Got)
	}
	if len(events) != 1 {
		t.Fatalf("events: got: %v, trg: 1\n", len(events))
	}
	if pc, ok := events[0].(PatternCreated); !ok || pc.Surprise != 3 {
		t.Errorf("event: got: %v\n", events[0])
	}
	if len(nt.Flow) != 0 {
		t.Errorf("flow not consumed: %v\n", nt.Flow)
	}
	if err := nt.Step(); err != nil {
		t.Fatal(err)
	}
	if len(td.Got) != 1 {
		t.Errorf("dopamine spread twice: %v\n", td.Got)
	}
}

func TestStepError(t *testing.T) {
	nt, zn := newTestNet(t)
	fa := &failArea{}
	fa.InitName("broken", AreaEncoder)
	mustAdd(t, nt, zn, fa)
	err := nt.Step()
	if !errors.Is(err, errTestFail) {
		t.Fatalf("error not propagated: %v\n", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error does not name the area: %v\n", err)
	}
}

func TestWeightBounds(t *testing.T) {
	cs := &ConnStore{}
	cs.Init(0.1, 1)
	pc, err := cs.Add(0, 1, 2, 5, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pc.Weight != 1 {
		t.Errorf("weight not clipped on creation: %v\n", pc.Weight)
	}
	if _, err := cs.Add(0, 1, 2, 0.5, 1, 0); !errors.Is(err, ErrDuplicateConnection) {
		t.Errorf("duplicate: got: %v\n", err)
	}
	if _, err := cs.Add(1, 1, 2, 0.5, 1, 0); err != nil {
		t.Errorf("same patterns in another area must be allowed: %v\n", err)
	}
	deltas := []float32{-0.3, -10, 0.25, 10, -0.05}
	trg := []float32{0.7, 0.1, 0.35, 1, 0.95}
	for i, dl := range deltas {
		cs.UpdateWeight(pc, dl)
		dif := pc.Weight - trg[i]
		if dif < 0 {
			dif = -dif
		}
		if dif > difTol {
			t.Errorf("weight err: idx: %v, delta: %v, wt: %v, trg: %v\n", i, dl, pc.Weight, trg[i])
		}
	}
	if cs.Find(0, 1, 2) != pc || cs.Find(0, 2, 1) != nil {
		t.Errorf("Find mismatch\n")
	}
	if len(cs.ByArea(1)) != 1 {
		t.Errorf("ByArea: got: %v, trg: 1\n", len(cs.ByArea(1)))
	}
}

func TestConnsJSON(t *testing.T) {
	nt, zn := newTestNet(t)
	a := newTestInput("a", 10)
	mustAdd(t, nt, zn, a)
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	nt.Conns.Add(a.ID, 0, 1, 0.5, 3, 2)
	var b bytes.Buffer
	if err := nt.WriteConnsJSON(&b); err != nil {
		t.Fatal(err)
	}
	js := b.String()
	for _, s := range []string{`"Network": "test"`, `"Area": "a"`, `"Wt": 0.5`} {
		if !strings.Contains(js, s) {
			t.Errorf("json missing %v:\n%v\n", s, js)
		}
	}
	if rep := nt.SizeReport(); !strings.Contains(rep, "Pattern Connections: 1") {
		t.Errorf("size report: %v\n", rep)
	}
}
