// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

// neuro.Time holds the counters of a running network
type Time struct {
	Tick    int `desc:"network tick counter -- incremented at the start of each Step, so the first tick is 1"`
	EnvStep int `desc:"external environment step counter -- incremented by the driver of the network"`
}

// NewTime returns a new Time struct, reset to zero
func NewTime() *Time {
	tm := &Time{}
	tm.Reset()
	return tm
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Tick = 0
	tm.EnvStep = 0
}

// TickInc increments the tick counter
func (tm *Time) TickInc() {
	tm.Tick++
}

// EnvStepInc increments the environment step counter
func (tm *Time) EnvStepInc() {
	tm.EnvStep++
}
