// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agent

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/receptive"
	"github.com/emer/reflex/rl"
	"github.com/emer/reflex/sdr"
	"github.com/emer/reflex/zones"
	"github.com/goki/mat32"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func square(angle float32) receptive.Presentation {
	qs := make([][]receptive.Segment, receptive.NSectors)
	for i := range qs {
		qs[i] = []receptive.Segment{{Angle: angle, Mass: 1}}
	}
	return receptive.Presentation{Quadrants: qs}
}

// packet returns the bodies of step i: the hand moving right, a box at rest
func packet(i int) *Packet {
	return &Packet{
		Bodies: []Body{
			{Name: zones.HandName, Center: mat32.Vec2{X: float32(100 + 3*i), Y: 200}, Offset: mat32.Vec2{X: 3}, Presentation: square(45)},
			{Name: "box", Center: mat32.Vec2{X: 400, Y: 300}, Presentation: square(90)},
		},
	}
}

func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	cfg := &Config{}
	cfg.Defaults()
	cfg.Seed = 3
	cfg.ReportInterval = 0
	ag, err := NewAgent(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return ag
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "agent.toml")
	if err := os.WriteFile(fn, []byte("seed = 3\nattention_span = 4\nscript = true\nlrate = 0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cf, err := LoadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	if cf.Seed != 3 || cf.AttnSpan != 4 || !cf.Script || cf.Lrate != 0.1 {
		t.Errorf("loaded: %+v\n", cf)
	}
	if cf.RoomWidth != 640 || cf.MaxBodies != 5 || cf.StepsPerEnv != 2 {
		t.Errorf("defaults not kept: %+v\n", cf)
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("attention_spam = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil || !strings.Contains(err.Error(), "attention_spam") {
		t.Errorf("unknown key: got: %v\n", err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "none.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got: %v\n", err)
	}
}

func TestEnvStep(t *testing.T) {
	ag := newTestAgent(t)
	focus := 0
	for i := 0; i < 40; i++ {
		res, err := ag.EnvStep(packet(i))
		if err != nil {
			t.Fatal(err)
		}
		if res.CurrentTick != ag.Tick()+1 || ag.Tick() != 2*(i+1) {
			t.Fatalf("step %d: current tick: %v net tick: %v\n", i, res.CurrentTick, ag.Tick())
		}
		if len(res.Actions) != len(Actions) {
			t.Errorf("actions: %v\n", res.Actions)
		}
		for _, act := range []string{MoveLeft, MoveRight, MoveUp, MoveDown} {
			if v := res.Actions[act]; v < 0 || v > 2 {
				t.Errorf("%v: %v\n", act, v)
			}
		}
		if g := res.Actions[Grab]; g != 0 && g != 1 {
			t.Errorf("grab: %v\n", g)
		}
		if ag.Strategy == neuro.FocusStrategy {
			focus++
		}
	}
	if focus == 0 {
		t.Errorf("moving hand never focused\n")
	}
	if ag.Log.Table.Rows != 40 {
		t.Errorf("log rows: got: %v, trg: 40\n", ag.Log.Table.Rows)
	}
	var b bytes.Buffer
	if err := ag.Log.WriteCSV(&b); err != nil {
		t.Fatal(err)
	}
	if hdr := strings.SplitN(b.String(), "\n", 2)[0]; !strings.Contains(hdr, "Tick") || !strings.Contains(hdr, MoveLeft) {
		t.Errorf("csv header: %v\n", hdr)
	}
}

func TestEmptyPacket(t *testing.T) {
	ag := newTestAgent(t)
	res, err := ag.EnvStep(&Packet{})
	if err != nil {
		t.Fatal(err)
	}
	if ag.Tick() != 0 || res.CurrentTick != 1 {
		t.Errorf("network stepped without bodies: %v\n", ag.Tick())
	}
	if res.AttentionSpot != (Spot{-1, -1}) {
		t.Errorf("spot: %v\n", res.AttentionSpot)
	}
	js, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"current_tick":1`, `"attention-spot":{"x":-1,"y":-1}`, `"move_left":0`} {
		if !strings.Contains(string(js), key) {
			t.Errorf("json: %s missing: %s\n", js, key)
		}
	}
}

func TestActions(t *testing.T) {
	ag := newTestAgent(t)
	ag.Macro = map[string]sdr.Data{
		rl.MoveAction: rl.MoveData(0, 2, 1, 0),
		rl.GrabAction: rl.GrabData(1),
	}
	acts := ag.actions()
	trg := map[string]int{MoveLeft: 0, MoveRight: 2, MoveUp: 1, MoveDown: 0, Grab: 1}
	for act, v := range trg {
		if acts[act] != v {
			t.Errorf("%v: got: %v, trg: %v\n", act, acts[act], v)
		}
	}
}

func TestNearestNeighbor(t *testing.T) {
	ag := newTestAgent(t)
	bodies := []Body{
		{Name: zones.HandName},
		{Name: "far", Center: mat32.Vec2{X: 100, Y: 100}},
		{Name: "near", Center: mat32.Vec2{X: 50, Y: 20}},
	}
	if nb := ag.NearestNeighbor(bodies, &bodies[0]); nb == nil || nb.Name != "near" {
		t.Errorf("nearest: %v\n", nb)
	}
	ag.Cfg.MaxAttnDist = 60
	if nb := ag.NearestNeighbor(bodies, &bodies[0]); nb != nil {
		t.Errorf("beyond max distance: %v\n", nb)
	}
	if nb := ag.NearestNeighbor(bodies[:1], &bodies[0]); nb != nil {
		t.Errorf("alone: %v\n", nb)
	}
}

func TestMovingBody(t *testing.T) {
	ag := newTestAgent(t)
	hand := Body{Name: zones.HandName, Center: mat32.Vec2{X: 10, Y: 10}, Offset: mat32.Vec2{Y: 1}}
	out := Body{Name: "out", Center: mat32.Vec2{X: 700, Y: 10}, Offset: mat32.Vec2{X: 2}}
	box := Body{Name: "box", Center: mat32.Vec2{X: 300, Y: 10}, Offset: mat32.Vec2{X: -2}}
	rest := Body{Name: "rest", Center: mat32.Vec2{X: 200, Y: 10}}
	if mb := ag.MovingBody([]Body{hand, out, rest}); mb == nil || !mb.IsHand() {
		t.Errorf("only the hand moves in the room: %v\n", mb)
	}
	if mb := ag.MovingBody([]Body{hand, out, box}); mb == nil || mb.Name != "box" {
		t.Errorf("moving box: %v\n", mb)
	}
	hand.Offset = mat32.Vec2{}
	if mb := ag.MovingBody([]Body{hand, rest}); mb != nil {
		t.Errorf("nothing moves: %v\n", mb)
	}
}

func TestAttentionSpot(t *testing.T) {
	ag := newTestAgent(t)
	if sp := ag.attentionSpot(); sp != (Spot{-1, -1}) {
		t.Errorf("no attention: %v\n", sp)
	}
	ag.AttnLoc = sdr.Data{zones.AreaAttnHoriz: float32(0.5), zones.AreaAttnVert: float32(0.25)}
	if sp := ag.attentionSpot(); sp != (Spot{320, 120}) {
		t.Errorf("location: %v\n", sp)
	}
	bodies := []Body{{Name: "a", Center: mat32.Vec2{X: 300, Y: 100}}, {Name: "b", Center: mat32.Vec2{X: 10, Y: 400}}}
	if bd := ag.BodyAtSpot(bodies); bd == nil || bd.Name != "a" {
		t.Errorf("body at spot: %v\n", bd)
	}
	ag.LastBody = &Body{Name: "c", Center: mat32.Vec2{X: 10, Y: 20}}
	if sp := ag.attentionSpot(); sp != (Spot{10, 20}) {
		t.Errorf("attended body: %v\n", sp)
	}
}

func TestOnEvent(t *testing.T) {
	ag := newTestAgent(t)
	ag.OnEvent(neuro.PatternCreated{Surprise: 2})
	ag.OnEvent(neuro.PatternCreated{Surprise: 3})
	if ag.Surprise != 5 {
		t.Errorf("surprise: got: %v, trg: 5\n", ag.Surprise)
	}
	ag.OnEvent(neuro.AttentionStrategy{Mode: neuro.FocusStrategy})
	if ag.Strategy != neuro.FocusStrategy {
		t.Errorf("strategy: %v\n", ag.Strategy)
	}
	ag.OnEvent(neuro.HandMove{ActionID: rl.GrabAction, Value: rl.GrabData(1)})
	if g, _ := ag.Macro[rl.GrabAction].Int(rl.GrabAction); g != 1 {
		t.Errorf("hand move: %v\n", ag.Macro)
	}
}

func TestMetrics(t *testing.T) {
	ag := newTestAgent(t)
	reg := prometheus.NewRegistry()
	ag.Metrics = NewMetrics(reg)
	for i := 0; i < 3; i++ {
		if _, err := ag.EnvStep(packet(i)); err != nil {
			t.Fatal(err)
		}
	}
	if n := testutil.ToFloat64(ag.Metrics.EnvSteps); n != 3 {
		t.Errorf("env steps: got: %v, trg: 3\n", n)
	}
	if tk := testutil.ToFloat64(ag.Metrics.Ticks); tk != float64(ag.Tick()+1) {
		t.Errorf("tick: got: %v, trg: %v\n", tk, ag.Tick()+1)
	}
	if n := testutil.ToFloat64(ag.Metrics.Patterns); n != float64(ag.Net.Store.Len()) {
		t.Errorf("patterns: got: %v, trg: %v\n", n, ag.Net.Store.Len())
	}
	if n := testutil.ToFloat64(ag.Metrics.Events.WithLabelValues("hand_move")); n == 0 {
		t.Errorf("no hand move events counted\n")
	}
}
