// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import "github.com/goki/ki/kit"

// AreaTypes enumerates the kinds of areas in a network
type AreaTypes int32

//go:generate stringer -type=AreaTypes

var KiT_AreaTypes = kit.Enums.AddEnum(AreaTypesN, kit.NotBitFlag, nil)

func (ev AreaTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *AreaTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The area types
const (
	// AreaReceptive areas have their output set directly from external data
	AreaReceptive AreaTypes = iota

	// AreaEncoder areas recognize or learn a code for their combined inputs
	AreaEncoder

	// AreaConfluence areas are encoders requiring at least two alive inputs
	AreaConfluence

	// AreaMemory areas hold the last pattern they received
	AreaMemory

	// AreaAction areas turn their input into a HandMove event
	AreaAction

	// AreaCombiner is the combiner feeding the reflex areas
	AreaCombiner

	// AreaReflex areas select an action for their inputs
	AreaReflex

	// AreaAnticipator areas produce self-induced dopamine bursts
	AreaAnticipator

	// AreaPredictor areas adjust weights of activated reflex connections
	AreaPredictor

	AreaTypesN
)
