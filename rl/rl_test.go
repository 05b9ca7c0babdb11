// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

import (
	"math"
	"testing"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

func cmpWt(t *testing.T, what string, got, trg float32) {
	t.Helper()
	if math.Abs(float64(got-trg)) > float64(difTol) {
		t.Errorf("%v: got: %v, trg: %v\n", what, got, trg)
	}
}

// testZone collects the self-induced dopamine of its anticipator
type testZone struct {
	neuro.ZoneStru
	Self []int
}

func (tz *testZone) ReceiveSelfInducedDope(v int) {
	tz.Self = append(tz.Self, v)
}

type reflexNet struct {
	nt    *neuro.Network
	zn    *testZone
	touch *neuro.WorkingMemoryCell
	other *neuro.WorkingMemoryCell
	act   *neuro.ActionArea
	pred  *PredictorArea
	ra    *ReflexArea
}

func newReflexNet(t *testing.T) *reflexNet {
	t.Helper()
	rn := &reflexNet{}
	rn.nt = neuro.NewNetwork("test", 3)
	rn.zn = &testZone{}
	rn.nt.AddZone(rn.zn, "zone")
	rn.touch = neuro.NewWorkingMemoryCell("touch")
	rn.other = neuro.NewWorkingMemoryCell("other")
	rn.act = neuro.NewActionArea("Action: move", MoveAction, MoveCatalogue())
	rn.pred = NewPredictorArea("Dope predictor: move")
	rn.ra = NewReflexArea("Reflex: move", rn.act, rn.pred, "touch")
	for _, ar := range []neuro.Area{rn.touch, rn.other, rn.act, rn.pred, rn.ra} {
		if err := rn.nt.AddArea(rn.zn, ar); err != nil {
			t.Fatal(err)
		}
	}
	if err := rn.nt.Build(); err != nil {
		t.Fatal(err)
	}
	return rn
}

func (rn *reflexNet) pattern(ar neuro.Area) *sdr.Pattern {
	return rn.nt.Store.NewRandom(100, 10, sdr.Data{ar.Name(): 1}, ar.AsArea().ID, rn.nt.Rand)
}

func (rn *reflexNet) run(t *testing.T, ticks int) {
	t.Helper()
	for i := 0; i < ticks; i++ {
		if err := rn.nt.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMoveCatalogue(t *testing.T) {
	cat := MoveCatalogue()
	if len(cat) != 25 {
		t.Fatalf("move actions: got: %v, trg: 25\n", len(cat))
	}
	if !cat[0].Equal(MoveData(0, 0, 0, 0)) {
		t.Errorf("standby is not the null move: %v\n", cat[0])
	}
	for i := range cat {
		l, _ := cat[i].Int("left")
		r, _ := cat[i].Int("right")
		if l > 0 && r > 0 {
			t.Errorf("opposite directions in one move: %v\n", cat[i])
		}
		for j := i + 1; j < len(cat); j++ {
			if cat[i].Equal(cat[j]) {
				t.Errorf("duplicate moves %v and %v: %v\n", i, j, cat[i])
			}
		}
	}
}

func TestReflexPersistence(t *testing.T) {
	rn := newReflexNet(t)
	ra := rn.ra
	if ra.LongTicks != 16 || ra.OutSpace != 100 {
		t.Errorf("build: longevity: %v space: %v\n", ra.LongTicks, ra.OutSpace)
	}
	rn.run(t, 1)
	first := ra.Output
	if first == nil || !rn.act.IsAction(first) {
		t.Fatalf("no random action: %v\n", first)
	}
	for tick := 2; tick <= 17; tick++ {
		rn.run(t, 1)
		if ra.Output != first {
			t.Errorf("action not held: tick: %v\n", tick)
		}
	}
	rn.run(t, 1)
	if ra.Start != 18 {
		t.Errorf("no new selection after longevity: start: %v\n", ra.Start)
	}
	if ra.PropOutput(ActiveReflexProp) != ra.Active || ra.PropOutput("other") != nil {
		t.Errorf("property output mismatch\n")
	}
	if len(ra.History) > 9 {
		t.Errorf("history not pruned: %v\n", len(ra.History))
	}
}

func TestReflexInputs(t *testing.T) {
	rn := newReflexNet(t)
	st := rn.nt.Store
	tc1 := rn.pattern(rn.touch)
	tc2 := rn.pattern(rn.touch)
	ot := rn.pattern(rn.other)
	both := st.Combine([]*sdr.Pattern{tc1, tc2}, []int{100, 100})
	mixed := st.Combine([]*sdr.Pattern{tc1, ot}, []int{100, 100})
	rn.ra.ReceiveInputs([]*sdr.Pattern{tc1, ot, both, mixed, nil})
	if len(rn.ra.Inputs) != 2 || rn.ra.Inputs[0] != tc1 || rn.ra.Inputs[1] != both {
		t.Errorf("filtered inputs: %v\n", rn.ra.Inputs)
	}
	rn.ra.ReceiveInputs([]*sdr.Pattern{nil})
	if len(rn.ra.Inputs) != 0 {
		t.Errorf("empty set gave inputs: %v\n", rn.ra.Inputs)
	}
	if !rn.ra.AcceptsDopamine(neuro.Portion{Value: 3, Source: rn.touch.ID}) || rn.ra.AcceptsDopamine(neuro.Portion{Value: 3, Source: rn.other.ID}) {
		t.Errorf("dopamine filter mismatch\n")
	}
}

func TestReflexLearning(t *testing.T) {
	rn := newReflexNet(t)
	ra := rn.ra
	cs := &rn.nt.Conns
	in := rn.pattern(rn.touch)
	ra.ReceiveInputs([]*sdr.Pattern{in})
	rn.run(t, 10)
	out := ra.Output

	ra.ReceiveDope([]neuro.Portion{{Value: 1, Source: rn.touch.ID}}, false)
	ra.ReceiveDope([]neuro.Portion{{Value: 3, Source: rn.other.ID}}, false)
	if cs.Len() != 0 {
		t.Fatalf("ignored dopamine created connections: %v\n", cs.Len())
	}

	ra.ReceiveDope([]neuro.Portion{{Value: 3, Source: rn.touch.ID}}, false)
	pc := cs.Find(ra.ID, in.ID, out.ID)
	if pc == nil || cs.Len() != 1 {
		t.Fatalf("credit did not create one connection: %v\n", cs.Len())
	}
	if pc.Tick != 2 || pc.DopeValue != 3 {
		t.Errorf("connection: %v tick: %v\n", pc, pc.Tick)
	}
	cmpWt(t, "new connection", pc.Weight, 0.15)

	ra.ReceiveDope([]neuro.Portion{{Value: 3, Source: rn.touch.ID}}, false)
	cmpWt(t, "strengthened once per release", pc.Weight, 0.3)
	ra.ReceiveDope([]neuro.Portion{{Value: 2, Source: rn.other.ID}}, true)
	cmpWt(t, "self-induced", pc.Weight, 0.4)

	if ra.BestConnection(ra.AliveInputs(), 10) != nil {
		t.Errorf("connection selected before cooling down\n")
	}
	if ra.BestConnection(ra.AliveInputs(), 11) != pc {
		t.Errorf("learned connection not selected\n")
	}
	if ra.BestConnection([]*sdr.Pattern{rn.pattern(rn.touch)}, 11) != nil {
		t.Errorf("connection selected for another input\n")
	}

	ra.Active = nil
	rn.run(t, 1)
	if ra.Output != out || ra.Start != 11 {
		t.Errorf("learned selection: got: %v, trg: %v\n", ra.Output, out)
	}
	if len(rn.pred.Traces) != 1 || rn.pred.Traces[0].Conn != pc {
		t.Errorf("predictor not tracing the selected connection: %v\n", rn.pred.Traces)
	}
}

func TestReflexScript(t *testing.T) {
	rn := newReflexNet(t)
	rn.ra.Script = PredefinedMotion()
	rn.run(t, 1)
	if !rn.ra.Output.Data.Equal(MoveData(2, 0, 0, 0)) {
		t.Errorf("first scripted move: %v\n", rn.ra.Output.Data)
	}
	rn.run(t, 32)
	if !rn.ra.Output.Data.Equal(MoveData(0, 0, 0, 2)) {
		t.Errorf("second scripted move: %v\n", rn.ra.Output.Data)
	}
}

func TestScript(t *testing.T) {
	sc := PredefinedMotion()
	total := 0
	for _, st := range sc.Steps {
		total += st.Steps
	}
	if total != 147 {
		t.Errorf("script length: got: %v, trg: 147\n", total)
	}
	if st := sc.Step(1, 2); st != &sc.Steps[0] {
		t.Errorf("first step: %v\n", st)
	}
	sc.Step(32, 2)
	if sc.Cur != 0 {
		t.Errorf("step ended early: %v\n", sc.Cur)
	}
	sc.Step(33, 2)
	if sc.Cur != 1 {
		t.Errorf("step not ended: %v\n", sc.Cur)
	}
	if st := sc.Step(1+2*total, 2); st != nil || !sc.Done() {
		t.Errorf("script not done: %v\n", st)
	}
	sc.Reset()
	if sc.Done() || sc.Step(5, 2) != &sc.Steps[0] {
		t.Errorf("reset\n")
	}
	if gd := sc.Steps[len(sc.Steps)-1].Data(GrabAction); !gd.Equal(GrabData(1)) {
		t.Errorf("grab data: %v\n", gd)
	}
}

func TestPredictor(t *testing.T) {
	rn := newReflexNet(t)
	in := rn.pattern(rn.touch)
	pc, err := rn.nt.Conns.Add(rn.ra.ID, in.ID, rn.act.Actions[1].ID, 0.5, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	pa := rn.pred
	touch := neuro.Portion{Value: 4, Source: rn.touch.ID}
	other := neuro.Portion{Value: 4, Source: rn.other.ID}

	rn.nt.Time.Tick = 5
	pa.OnConnectionActivated(pc)
	if pa.Traces[0].Control != 45 {
		t.Errorf("control tick: got: %v, trg: 45\n", pa.Traces[0].Control)
	}
	pa.ReceiveDope([]neuro.Portion{touch}, false)
	rn.nt.Time.Tick = 10
	pa.ReceiveDope([]neuro.Portion{touch, other}, false)
	pa.ReceiveDope([]neuro.Portion{touch}, true)
	rn.nt.Time.Tick = 45
	pa.ReceiveDope([]neuro.Portion{{Value: 2, Source: rn.touch.ID}}, false)
	if err := pa.Update(); err != nil {
		t.Fatal(err)
	}
	if pa.Traces[0].Acc != 6 || pa.Traces[0].Updated {
		t.Errorf("trace: %v\n", pa.Traces[0])
	}
	rn.nt.Time.Tick = 46
	pa.ReceiveDope([]neuro.Portion{touch}, false)
	if err := pa.Update(); err != nil {
		t.Fatal(err)
	}
	cmpWt(t, "corrected weight", pc.Weight, 0.7)
	cmpWt(t, "expected dopamine", pc.DopeValue, 2.2)
	if len(pa.Traces) != 0 {
		t.Errorf("finished trace kept: %v\n", pa.Traces)
	}
}

func newAnticipatorNet(t *testing.T) (*neuro.Network, *testZone, *AnticipatorArea, *sdr.Pattern) {
	t.Helper()
	nt := neuro.NewNetwork("test", 5)
	tz := &testZone{}
	nt.AddZone(tz, "zone")
	touch := neuro.NewWorkingMemoryCell("touch")
	an := NewAnticipatorArea("dope anticipator")
	for _, ar := range []neuro.Area{touch, an} {
		if err := nt.AddArea(tz, ar); err != nil {
			t.Fatal(err)
		}
	}
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	in := nt.Store.NewRandom(100, 10, nil, touch.ID, nt.Rand)
	an.ReceiveInputs([]*sdr.Pattern{in})
	if err := nt.Run(10); err != nil {
		t.Fatal(err)
	}
	surprise := []neuro.Portion{{Value: 3, Source: touch.ID}}
	an.ReceiveDope(surprise, false)
	an.ReceiveDope(surprise, false)
	return nt, tz, an, in
}

func TestAnticipatorBurstFloor(t *testing.T) {
	nt, tz, an, in := newAnticipatorNet(t)
	de := an.EnergyOf(in)
	if de == nil || de.Value != 3 || de.Tick != 2 || de.Energy != 1 {
		t.Fatalf("credited record: %v\n", de)
	}
	if err := nt.Run(18); err != nil {
		t.Fatal(err)
	}
	if len(tz.Self) != 0 {
		t.Errorf("burst within lookback: %v\n", tz.Self)
	}

	// no actual dopamine follows: every burst lowers the value by one
	trg := []int{3, 2, 1}
	for i, tr := range trg {
		de.Energy = 1
		if err := nt.Step(); err != nil {
			t.Fatal(err)
		}
		if len(tz.Self) != i+1 || tz.Self[i] != tr || an.LastDope != tr {
			t.Fatalf("burst %v: got: %v, trg: %v\n", i, tz.Self, tr)
		}
		if err := nt.Run(nt.Time.Tick + 12); err != nil {
			t.Fatal(err)
		}
		if de.Value != tr-1 || de.Control != 0 {
			t.Errorf("distress %v: value: %v control: %v\n", i, de.Value, de.Control)
		}
	}
	de.Energy = 1
	if err := nt.Run(nt.Time.Tick + 20); err != nil {
		t.Fatal(err)
	}
	if len(tz.Self) != 3 || de.Value != 0 {
		t.Errorf("burst below floor: %v value: %v\n", tz.Self, de.Value)
	}
	de.SetValue(-5)
	if de.Value != 0 {
		t.Errorf("negative value: %v\n", de.Value)
	}
}

func TestAnticipatorUntrace(t *testing.T) {
	nt, tz, an, in := newAnticipatorNet(t)
	if err := nt.Run(20); err != nil {
		t.Fatal(err)
	}
	de := an.EnergyOf(in)
	if len(tz.Self) != 1 || de.Control != 31 {
		t.Fatalf("burst: %v control: %v\n", tz.Self, de.Control)
	}
	an.ReceiveDope([]neuro.Portion{{Value: 3, Source: in.Area}}, false)
	if de.Control != 0 || de.Value != 3 {
		t.Errorf("actual dopamine did not end the trace: %v\n", de)
	}
}

func TestBurstChain(t *testing.T) {
	nt := neuro.NewNetwork("test", 1)
	pats := make([]*sdr.Pattern, 3)
	for i := range pats {
		pats[i] = nt.Store.NewRandom(50, 5, nil, sdr.NoArea, nt.Rand)
	}
	an := NewAnticipatorArea("anticipator")
	an.Chains = make(map[string]*BurstChain)
	for i := 0; i < 2; i++ {
		an.Bursts = append(an.Bursts, Burst{Tick: i, Pattern: pats[i]})
	}
	for hit := 1; hit <= 7; hit++ {
		loop := an.chained(pats[2], 100+hit)
		if loop != (hit > 5) {
			t.Errorf("hit %v: loop: %v\n", hit, loop)
		}
	}
	if an.chained(pats[2], 400) {
		t.Errorf("stale chain is a loop\n")
	}
	hash := ChainHash(pats)
	if ch := an.Chains[hash]; ch == nil || ch.Hits != 8 || ch.Last != 400 {
		t.Errorf("chain record: %v\n", ch)
	}
}
