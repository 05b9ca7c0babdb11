// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/emer/reflex/neuro"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "reflex"

// Metrics are the prometheus metrics of an agent
type Metrics struct {
	EnvSteps prometheus.Counter
	Ticks    prometheus.Gauge
	Surprise prometheus.Counter
	Patterns prometheus.Gauge
	Conns    prometheus.Gauge
	Focus    prometheus.Gauge
	Actions  *prometheus.CounterVec
	Events   *prometheus.CounterVec
}

// NewMetrics returns the metrics of an agent, registered with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	mt := &Metrics{
		EnvSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "env_steps_total",
			Help:      "Environment steps processed.",
		}),
		Ticks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tick",
			Help:      "Current network tick.",
		}),
		Surprise: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "surprise_total",
			Help:      "Surprise of the last tick of each environment step.",
		}),
		Patterns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "patterns",
			Help:      "Patterns in the store.",
		}),
		Conns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "pattern_connections",
			Help:      "Learned pattern connections.",
		}),
		Focus: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "attention_focus",
			Help:      "1 when the focus attention strategy is active, 0 when looping.",
		}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "actions_total",
			Help:      "Environment steps with a nonzero action, by action.",
		}, []string{"action"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_total",
			Help:      "Events sent by the areas of the network, by type.",
		}, []string{"event"}),
	}
	reg.MustRegister(mt.EnvSteps, mt.Ticks, mt.Surprise, mt.Patterns, mt.Conns, mt.Focus, mt.Actions, mt.Events)
	return mt
}

// CountEvent counts an event by type
func (mt *Metrics) CountEvent(ev neuro.Event) {
	var nm string
	switch ev.(type) {
	case neuro.PatternCreated:
		nm = "pattern_created"
	case neuro.HandMove:
		nm = "hand_move"
	case neuro.AttentionStrategy:
		nm = "attention_strategy"
	case neuro.AttentionLocation:
		nm = "attention_location"
	}
	mt.Events.WithLabelValues(nm).Inc()
}

// Observe records the state after an environment step
func (mt *Metrics) Observe(ag *Agent, res *Result) {
	mt.EnvSteps.Inc()
	mt.Ticks.Set(float64(res.CurrentTick))
	mt.Surprise.Add(float64(res.Surprise))
	mt.Patterns.Set(float64(ag.Net.Store.Len()))
	mt.Conns.Set(float64(ag.Net.Conns.Len()))
	focus := 0.0
	if ag.Strategy == neuro.FocusStrategy {
		focus = 1
	}
	mt.Focus.Set(focus)
	for _, act := range Actions {
		if res.Actions[act] != 0 {
			mt.Actions.WithLabelValues(act).Inc()
		}
	}
}
