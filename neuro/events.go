// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"

	"github.com/emer/reflex/sdr"
	"github.com/goki/ki/kit"
)

// Event is a message from an area to the outside of the network.
// The set of events is closed: only the types in this file implement it.
type Event interface {
	event()
}

// PatternCreated is sent when an area learned a new pattern, or detected
// something surprising.  Surprise is also queued as a dopamine portion.
type PatternCreated struct {
	Surprise int           `desc:"surprise level, also the value of the dopamine portion"`
	Area     sdr.AreaID    `desc:"area that sent the event"`
	Pattern  sdr.PatternID `desc:"new pattern, NoPattern if the event has none"`
}

// HandMove is sent by action areas on every update
type HandMove struct {
	ActionID string   `desc:"macro action, e.g. move or grab"`
	Value    sdr.Data `desc:"action semantics, e.g. left: 1, up: 2"`
}

// AttentionStrategy requests a change of the attention strategy
type AttentionStrategy struct {
	Mode Strategies
}

// AttentionLocation reports the recognized attention location
type AttentionLocation struct {
	Loc sdr.Data `desc:"data of the attention location pattern"`
}

func (PatternCreated) event()    {}
func (HandMove) event()          {}
func (AttentionStrategy) event() {}
func (AttentionLocation) event() {}

func (ev PatternCreated) String() string {
	return fmt.Sprintf("pattern_created: surprise: %d area: %d pattern: %d", ev.Surprise, ev.Area, ev.Pattern)
}

func (ev HandMove) String() string {
	return fmt.Sprintf("hand_move: %s %v", ev.ActionID, ev.Value)
}

// EventSink receives the events of a network
type EventSink interface {
	OnEvent(ev Event)
}

// EventSinkFunc adapts a function to an EventSink
type EventSinkFunc func(ev Event)

func (fn EventSinkFunc) OnEvent(ev Event) { fn(ev) }

// Strategies are the attention strategies of the agent
type Strategies int32

//go:generate stringer -type=Strategies

var KiT_Strategies = kit.Enums.AddEnum(StrategiesN, kit.NotBitFlag, nil)

func (ev Strategies) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Strategies) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// LoopStrategy cycles attention through all visible bodies
	LoopStrategy Strategies = iota

	// FocusStrategy keeps attention on the hand and what it interacts with
	FocusStrategy

	StrategiesN
)
