// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

// names of the areas other parts of the network refer to
const (
	AreaPrimitives     = "primitives"
	AreaShiftRight     = "shift-right"
	AreaShiftLeft      = "shift-left"
	AreaShiftUp        = "shift-up"
	AreaShiftDown      = "shift-down"
	AreaShape          = "shape representations"
	AreaPlace          = "place representations"
	AreaShapeShift     = "shape and place"
	AreaDistance       = "distance"
	AreaDistanceChange = "distance change"
	AreaBodyVelocity   = "body velocity"
	AreaDistortion     = "distortion"

	AreaAttnHoriz    = "attention-horizontal"
	AreaAttnVert     = "attention-vertical"
	AreaAttnLocation = "attention location"
	AreaVelocity     = "velocity"
	AreaVelLeft      = "velocity-left"
	AreaVelRight     = "velocity-right"
	AreaVelUp        = "velocity-up"
	AreaVelDown      = "velocity-down"

	AreaTactile = "tactile perception"
	AreaTouch   = "touch"

	AreaAnticipator = "dope anticipator"
)

// MoveAccepts are the areas whose patterns and dopamine the move reflex
// takes into account
var MoveAccepts = []string{AreaVelocity, AreaBodyVelocity, AreaDistortion, AreaShape, AreaShapeShift, AreaDistance, AreaDistanceChange}

// GrabAccepts are the areas whose patterns and dopamine the grab reflex
// takes into account
var GrabAccepts = []string{AreaTouch, AreaDistance}

// ActionAreaName returns the name of the action area of a macro action
func ActionAreaName(actionID string) string { return "Action: " + actionID }

// ReflexAreaName returns the name of the reflex area of a macro action
func ReflexAreaName(actionID string) string { return "Reflex: " + actionID }

// PredictorAreaName returns the name of the predictor of a macro action
func PredictorAreaName(actionID string) string { return "Dope predictor: " + actionID }
