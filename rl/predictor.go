// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

import (
	"fmt"

	"github.com/emer/reflex/neuro"
)

// PredictorParams are the parameters of the dopamine predictor
type PredictorParams struct {
	Trace int `def:"20" desc:"number of environment steps after its activation that the dopamine following a connection is accumulated"`
}

func (pp *PredictorParams) Defaults() {
	pp.Trace = 20
}

// TracedConn is a learned connection being traced after its activation
type TracedConn struct {
	Conn    *neuro.PatternsConnection `desc:"traced connection"`
	Start   int                       `desc:"tick of the activation"`
	Control int                       `desc:"last tick dopamine is accumulated"`
	Updated bool                      `desc:"weight was corrected, trace is finished"`
	Acc     int                       `desc:"dopamine accumulated since the activation"`
}

func (tc *TracedConn) String() string {
	return fmt.Sprintf("%v start: %d control: %d acc: %d", tc.Conn, tc.Start, tc.Control, tc.Acc)
}

// PredictorArea corrects learned reflex connections by their outcome:
// once the trace of an activated connection ends, its weight moves by the
// difference between the dopamine accumulated during the trace and the
// dopamine the connection expects, and the expectation moves the same way.
type PredictorArea struct {
	neuro.AreaStru
	Pp     PredictorParams `view:"inline" desc:"parameters"`
	Traces []*TracedConn   `desc:"connections currently traced"`
}

// NewPredictorArea returns a new predictor
func NewPredictorArea(name string) *PredictorArea {
	pa := &PredictorArea{}
	pa.InitName(name, neuro.AreaPredictor)
	pa.Pp.Defaults()
	return pa
}

// TraceTicks returns the duration of traces in ticks
func (pa *PredictorArea) TraceTicks() int {
	return pa.Params().Ticks(pa.Pp.Trace)
}

// OnConnectionActivated starts tracing given connection
func (pa *PredictorArea) OnConnectionActivated(pc *neuro.PatternsConnection) {
	tick := pa.Tick()
	pa.Traces = append(pa.Traces, &TracedConn{Conn: pc, Start: tick, Control: tick + pa.TraceTicks()})
}

func (pa *PredictorArea) Update() error {
	tick := pa.Tick()
	cs := pa.Conns()
	lr := pa.Params().Lrate
	live := pa.Traces[:0]
	for _, tc := range pa.Traces {
		if !tc.Updated && tick > tc.Control {
			step := (float32(tc.Acc) - tc.Conn.DopeValue) * lr
			cs.UpdateWeight(tc.Conn, step)
			tc.Conn.DopeValue += step
			tc.Updated = true
		}
		if !tc.Updated {
			live = append(live, tc)
		}
	}
	for i := len(live); i < len(pa.Traces); i++ {
		pa.Traces[i] = nil
	}
	pa.Traces = live
	return nil
}

// ReceiveDope accumulates, for each running trace, the portions its
// connection's owning area accepts.  Self-induced dopamine is not an
// outcome and is ignored.
func (pa *PredictorArea) ReceiveDope(portions []neuro.Portion, selfInduced bool) {
	if selfInduced {
		return
	}
	tick := pa.Tick()
	for _, tc := range pa.Traces {
		if tc.Updated || tick <= tc.Start || tick > tc.Control {
			continue
		}
		filt, _ := pa.Net.AreaByID(tc.Conn.Area).(neuro.DopeFilter)
		tc.Acc += neuro.SumAccepted(portions, filt)
	}
}
