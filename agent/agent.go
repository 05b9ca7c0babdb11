// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agent

import (
	"fmt"
	"log"

	"github.com/emer/emergent/v2/timer"
	"github.com/emer/empi/v2/mpi"
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/receptive"
	"github.com/emer/reflex/rl"
	"github.com/emer/reflex/sdr"
	"github.com/emer/reflex/zones"
	"github.com/google/uuid"
	"github.com/goki/mat32"
)

// Agent perceives the bodies of its environment through the zones of its
// network, and acts on it with the reflexes the network learns.
type Agent struct {
	Cfg      Config              `view:"inline" desc:"parameters"`
	RunID    string              `desc:"unique id of this run"`
	Net      *neuro.Network      `view:"-" desc:"the network"`
	Zones    *zones.Zones        `view:"-" desc:"zones of the network"`
	Metrics  *Metrics            `view:"-" desc:"prometheus metrics, nil if not used"`
	Log      *TickLog            `view:"-" desc:"per environment step log"`
	Strategy neuro.Strategies    `desc:"current attention strategy"`
	Surprise int                 `inactive:"+" desc:"surprise of the current tick"`
	Macro    map[string]sdr.Data `desc:"value of each macro action selected during the current environment step"`
	AttnLoc  sdr.Data            `desc:"data of the last attention location pattern"`
	Attended string              `inactive:"+" desc:"name of the body attended on the last environment step"`

	FocusIdx    int                               `inactive:"+" desc:"index of the attended body in the loop strategy, -1 if none yet"`
	LoopSwitch  int                               `inactive:"+" desc:"tick of the last body switch of the loop strategy"`
	LastMotion  int                               `inactive:"+" desc:"tick motion was last recognized"`
	FocusStart  int                               `inactive:"+" desc:"tick of the last body switch of the focus strategy"`
	LastBody    *Body                             `desc:"last body attended by the focus strategy, nil if none"`
	LastReport  int                               `inactive:"+" desc:"tick of the last timer report"`
	BodyCache   map[string]receptive.Presentation `view:"-" desc:"presentation of each body when first seen in focus"`
	ReportTimer timer.Time                        `view:"-" desc:"time since the last report"`
}

// NewAgent returns a new agent with a built network
func NewAgent(cfg *Config) (*Agent, error) {
	ag := &Agent{Cfg: *cfg}
	ag.RunID = uuid.NewString()
	ag.Net = neuro.NewNetwork("agent", cfg.Seed)
	ag.Net.Verbose = cfg.Verbose
	cfg.SetParams(&ag.Net.Params)
	zs, err := zones.AddAll(ag.Net)
	if err != nil {
		return nil, err
	}
	zs.SetVisual(cfg.Visual())
	if cfg.Script {
		zs.RE.Reflex(rl.MoveAction).Script = rl.PredefinedMotion()
	}
	ag.Zones = zs
	ag.Net.Sink = ag
	if err := ag.Net.Build(); err != nil {
		return nil, err
	}
	ag.Log = NewTickLog(ag.RunID)
	ag.Init()
	return ag, nil
}

// Init resets the state of attention
func (ag *Agent) Init() {
	ag.Strategy = neuro.LoopStrategy
	ag.Macro = make(map[string]sdr.Data)
	ag.BodyCache = make(map[string]receptive.Presentation)
	ag.FocusIdx = -1
	ag.LastBody = nil
	ag.AttnLoc = nil
	ag.ReportTimer.Start()
}

// Tick returns the current network tick
func (ag *Agent) Tick() int { return ag.Net.Tick() }

// OnEvent handles the events of the network
func (ag *Agent) OnEvent(ev neuro.Event) {
	if ag.Metrics != nil {
		ag.Metrics.CountEvent(ev)
	}
	switch ev := ev.(type) {
	case neuro.PatternCreated:
		ag.Surprise += ev.Surprise
	case neuro.HandMove:
		ag.Macro[ev.ActionID] = ev.Value
	case neuro.AttentionStrategy:
		if ev.Mode == neuro.FocusStrategy {
			ag.Strategy = neuro.FocusStrategy
			ag.LastMotion = ag.Tick()
		}
	case neuro.AttentionLocation:
		ag.AttnLoc = ev.Loc
	}
}

// EnvStep processes one environment step
func (ag *Agent) EnvStep(pk *Packet) (*Result, error) {
	tick := ag.Tick() + 1
	if ag.Cfg.ReportInterval > 0 && tick-ag.LastReport >= ag.Cfg.ReportInterval {
		ag.Report(tick)
	}
	ag.Macro = make(map[string]sdr.Data)
	if err := ag.activate(pk); err != nil {
		return nil, err
	}
	if ag.Net.Verbose {
		mpi.Printf("Surprise: %d\n", ag.Surprise)
	}
	res := &Result{
		CurrentTick:   ag.Tick() + 1,
		Surprise:      ag.Surprise,
		Actions:       ag.actions(),
		AttentionSpot: ag.attentionSpot(),
	}
	if ag.Log != nil {
		ag.Log.Log(ag, pk, res)
	}
	if ag.Metrics != nil {
		ag.Metrics.Observe(ag, res)
	}
	return res, nil
}

// Report prints the time spent since the last report
func (ag *Agent) Report(tick int) {
	ag.ReportTimer.Stop()
	mpi.Printf("current_tick x100: %d, last %d ticks: %.3f secs\n", (tick+1)/100, tick-ag.LastReport, ag.ReportTimer.TotalSecs())
	ag.LastReport = tick
	ag.ReportTimer.ResetStart()
}

func (ag *Agent) activate(pk *Packet) error {
	tick := ag.Tick()
	if tick-ag.LastMotion > ag.Net.Params.Ticks(ag.Cfg.FocusHold) || tick < ag.Cfg.LoopWarmup {
		ag.Strategy = neuro.LoopStrategy
	}
	if ag.Strategy == neuro.LoopStrategy {
		return ag.loopStrategy(pk)
	}
	return ag.focusStrategy(pk)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Attention strategies

// loopStrategy attends to each body in turn, switching every AttnSpan ticks
func (ag *Agent) loopStrategy(pk *Packet) error {
	n := len(pk.Bodies)
	if n == 0 || n > ag.Cfg.MaxBodies {
		return nil
	}
	tick := ag.Tick()
	if tick == 0 || ag.FocusIdx < 0 {
		ag.switchFocus(n)
	} else if tick-ag.LoopSwitch > ag.Cfg.AttnSpan {
		ag.switchFocus(n)
		ag.LoopSwitch = tick
	}
	if ag.FocusIdx >= n {
		ag.FocusIdx = n - 1
	}
	if ag.Net.Verbose {
		mpi.Printf("body #%d\n", ag.FocusIdx+1)
	}
	return ag.attend(&pk.Bodies[ag.FocusIdx], nil, pk)
}

func (ag *Agent) switchFocus(n int) {
	if ag.FocusIdx < 0 || ag.FocusIdx >= n-1 {
		ag.FocusIdx = 0
		return
	}
	ag.FocusIdx++
}

// focusStrategy alternates attention between the hand and the body
// moving, or else its nearest neighbor, every FocusSwitch environment
// steps.
func (ag *Agent) focusStrategy(pk *Packet) error {
	n := len(pk.Bodies)
	if n == 0 || n > ag.Cfg.MaxBodies {
		return nil
	}
	if len(ag.BodyCache) == 0 {
		for _, bd := range pk.Bodies {
			ag.BodyCache[bd.Name] = bd.Presentation
		}
	}
	hand := zones.FindBody(pk.Bodies, zones.HandName)
	if hand == nil {
		return ag.loopStrategy(pk)
	}
	moving := ag.MovingBody(pk.Bodies)
	if moving != nil && moving.IsHand() {
		moving = nil
	}

	tick := ag.Tick()
	var attended, prev *Body
	if tick-ag.FocusStart > ag.Net.Params.Ticks(ag.Cfg.FocusSwitch) {
		switch {
		case ag.LastBody == nil || !ag.LastBody.IsHand():
			attended = hand
		case moving != nil:
			attended = moving
		default:
			attended = ag.NearestNeighbor(pk.Bodies, hand)
		}
		ag.FocusStart = tick
		if attended != nil {
			prev = ag.LastBody
			cp := *attended
			ag.LastBody = &cp
		}
	}
	if attended == nil {
		attended = ag.LastBody
	}
	if attended == nil {
		return nil
	}
	body := ag.current(attended, pk)
	if pres, has := ag.BodyCache[body.Name]; has {
		body.Presentation = pres
	}
	if prev != nil {
		prev = ag.current(prev, pk)
	}
	return ag.attend(body, prev, pk)
}

// current returns a copy of the body of the same name in the packet, or
// of the body itself if it is gone
func (ag *Agent) current(bd *Body, pk *Packet) *Body {
	cp := *bd
	if cur := zones.FindBody(pk.Bodies, bd.Name); cur != nil {
		cp = *cur
	}
	return &cp
}

// MovingBody returns the first moving body in the room other than the
// hand, else the hand if it moves, nil if nothing moves
func (ag *Agent) MovingBody(bodies []Body) *Body {
	room := ag.Cfg.Room()
	for i := range bodies {
		bd := &bodies[i]
		if bd.Moving() && !bd.IsHand() && bd.InRoom(room) {
			return bd
		}
	}
	for i := range bodies {
		bd := &bodies[i]
		if bd.Moving() && bd.IsHand() {
			return bd
		}
	}
	return nil
}

// NearestNeighbor returns the body closest to the given one in manhattan
// distance, nil if none is within MaxAttnDist
func (ag *Agent) NearestNeighbor(bodies []Body, body *Body) *Body {
	var near *Body
	var best float32
	for i := range bodies {
		bd := &bodies[i]
		if bd.Name == body.Name {
			continue
		}
		d := manhattan(bd.Center, body.Center)
		if near == nil || d < best {
			near, best = bd, d
		}
	}
	if near == nil || best > ag.Cfg.MaxAttnDist {
		return nil
	}
	return near
}

// BodyAtSpot returns the body closest to the attention location, nil if
// there is no attention location or no body
func (ag *Agent) BodyAtSpot(bodies []Body) *Body {
	sp, ok := ag.locationSpot()
	if !ok {
		return nil
	}
	pt := mat32.Vec2{X: float32(sp.X), Y: float32(sp.Y)}
	var near *Body
	var best float32
	for i := range bodies {
		d := manhattan(bodies[i].Center, pt)
		if near == nil || d < best {
			near, best = &bodies[i], d
		}
	}
	return near
}

func manhattan(a, b mat32.Vec2) float32 {
	return mat32.Abs(a.X-b.X) + mat32.Abs(a.Y-b.Y)
}

// attend activates the receptive areas on the body and runs the network
// for one environment step
func (ag *Agent) attend(body, prev *Body, pk *Packet) error {
	zs := ag.Zones
	if err := zs.VR.ActivateOnBody(body, prev, pk.Bodies); err != nil {
		return fmt.Errorf("agent: body %v: %w", body.Name, err)
	}
	if err := zs.VA.ActivateOnBody(body); err != nil {
		return fmt.Errorf("agent: body %v: %w", body.Name, err)
	}
	zs.TA.Activate(pk.Mode)
	ag.Attended = body.Name
	for i := 0; i < ag.Net.Params.StepsPerEnv; i++ {
		ag.Surprise = 0
		if err := ag.Net.Step(); err != nil {
			log.Println(err)
			return err
		}
	}
	ag.Net.ResetPerception()
	return nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  Result

// actions converts the macro actions of this step into the actions
// reported to the environment
func (ag *Agent) actions() map[string]int {
	acts := make(map[string]int, len(Actions))
	for _, act := range Actions {
		acts[act] = 0
	}
	if mv, has := ag.Macro[rl.MoveAction]; has {
		acts[MoveLeft], _ = mv.Int("left")
		acts[MoveRight], _ = mv.Int("right")
		acts[MoveUp], _ = mv.Int("up")
		acts[MoveDown], _ = mv.Int("down")
	}
	if gr, has := ag.Macro[rl.GrabAction]; has {
		acts[Grab], _ = gr.Int(rl.GrabAction)
	}
	return acts
}

// locationSpot returns the attention location in pixels
func (ag *Agent) locationSpot() (Spot, bool) {
	if ag.AttnLoc == nil {
		return Spot{-1, -1}, false
	}
	x, okx := ag.AttnLoc.Float(zones.AreaAttnHoriz)
	y, oky := ag.AttnLoc.Float(zones.AreaAttnVert)
	if !okx || !oky {
		return Spot{-1, -1}, false
	}
	return Spot{X: int(x * ag.Cfg.RoomWidth), Y: int(y * ag.Cfg.RoomHeight)}, true
}

// attentionSpot returns the center of the last body attended by the focus
// strategy, else the attention location, else (-1, -1)
func (ag *Agent) attentionSpot() Spot {
	if ag.LastBody != nil {
		return Spot{X: int(ag.LastBody.Center.X), Y: int(ag.LastBody.Center.Y)}
	}
	sp, _ := ag.locationSpot()
	return sp
}
