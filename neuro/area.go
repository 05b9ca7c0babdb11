// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"
	"math/rand"

	"github.com/emer/reflex/sdr"
)

// Area is the interface that all areas of a network implement.
// Concrete areas embed AreaStru, and add optional capabilities through
// the Builder, PropOutput, InputReceiver, DopeReceiver and DopeFilter
// interfaces.
type Area interface {
	// Name returns the unique name of the area
	Name() string

	// AsArea returns the embedded AreaStru, for access to the common state
	AsArea() *AreaStru

	// Update computes the output of the area from its current inputs.
	// Called once per tick in registration order.
	Update() error
}

// Builder is implemented by areas that need to allocate state once all
// areas and connections have been added.
type Builder interface {
	Build() error
}

// PropOutput is implemented by areas that expose an alternate output,
// selected by the Prop of a Connection.
type PropOutput interface {
	PropOutput(prop string) *sdr.Pattern
}

// InputReceiver is implemented by areas fed by the combiner, which sends
// a whole set of patterns at once instead of filling a slot.
type InputReceiver interface {
	ReceiveInputs(pats []*sdr.Pattern)
}

// AreaStru contains the basic structural state of an area
type AreaStru struct {
	Nm           string         `desc:"unique name of the area"`
	ID           sdr.AreaID     `desc:"index of the area in the Network, in registration order"`
	Typ          AreaTypes      `desc:"type of area"`
	Net          *Network       `copy:"-" json:"-" view:"-" desc:"network that owns this area, set by AddArea"`
	ZoneIdx      int            `desc:"index of the zone this area belongs to"`
	Inputs       []*sdr.Pattern `desc:"input slots -- one per incoming connection, nil if nothing arrived"`
	InSizes      []int          `desc:"space size of each input slot"`
	Output       *sdr.Pattern   `desc:"current output, nil if none"`
	OutSpace     int            `desc:"space size of the output"`
	OutNorm      int            `desc:"number of active indices of the output"`
	AcceptsEmpty bool           `desc:"incoming connections overwrite the input slot even when the source has no output"`
}

func (as *AreaStru) Name() string      { return as.Nm }
func (as *AreaStru) AsArea() *AreaStru { return as }
func (as *AreaStru) Type() AreaTypes   { return as.Typ }
func (as *AreaStru) IsReceptive() bool { return as.Typ == AreaReceptive }
func (as *AreaStru) Update() error     { return nil }
func (as *AreaStru) Label() string     { return as.Nm }
func (as *AreaStru) NInputs() int      { return len(as.InSizes) }
func (as *AreaStru) Zone() Zone        { return as.Net.Zones[as.ZoneIdx] }
func (as *AreaStru) Store() *sdr.Store { return as.Net.Store }
func (as *AreaStru) Rand() *rand.Rand  { return as.Net.Rand }
func (as *AreaStru) Params() *Params   { return &as.Net.Params }
func (as *AreaStru) Conns() *ConnStore { return &as.Net.Conns }
func (as *AreaStru) Tick() int         { return as.Net.Time.Tick }
func (as *AreaStru) Emit(ev Event)     { as.Net.Emit(ev) }
func (as *AreaStru) String() string    { return fmt.Sprintf("%s (%v)", as.Nm, as.Typ) }

// InitName sets the name and type, and marks the area as unregistered.
// Called by constructors of concrete areas.
func (as *AreaStru) InitName(name string, typ AreaTypes) {
	as.Nm = name
	as.Typ = typ
	as.ID = sdr.NoArea
}

// AddSlot adds an input slot of given space size, returning its index
func (as *AreaStru) AddSlot(size int) int {
	as.InSizes = append(as.InSizes, size)
	as.Inputs = append(as.Inputs, nil)
	return len(as.InSizes) - 1
}

// ResetInputs clears all input slots
func (as *AreaStru) ResetInputs() {
	if len(as.Inputs) != len(as.InSizes) {
		as.Inputs = make([]*sdr.Pattern, len(as.InSizes))
		return
	}
	for i := range as.Inputs {
		as.Inputs[i] = nil
	}
}

// ResetOutput clears the output
func (as *AreaStru) ResetOutput() {
	as.Output = nil
}

// AliveInputs returns the non-nil inputs, in slot order
func (as *AreaStru) AliveInputs() []*sdr.Pattern {
	var alive []*sdr.Pattern
	for _, in := range as.Inputs {
		if in != nil {
			alive = append(alive, in)
		}
	}
	return alive
}

// NAlive returns the number of non-nil inputs
func (as *AreaStru) NAlive() int {
	n := 0
	for _, in := range as.Inputs {
		if in != nil {
			n++
		}
	}
	return n
}

// FirstAlive returns the first non-nil input, nil if none
func (as *AreaStru) FirstAlive() *sdr.Pattern {
	for _, in := range as.Inputs {
		if in != nil {
			return in
		}
	}
	return nil
}

// SetOutput sets the output, logging that this area produced it
func (as *AreaStru) SetOutput(pt *sdr.Pattern) {
	as.Output = pt
	if pt != nil && as.Net != nil {
		pt.Log(as.Net.Time.Tick, as.ID)
	}
}
