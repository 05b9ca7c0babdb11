// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import "github.com/emer/reflex/sdr"

// Zone is a group of areas that share step hooks and dopamine handling.
// Concrete zones embed ZoneStru and override the hooks they need.
type Zone interface {
	// Name returns the name of the zone
	Name() string

	// AsZone returns the embedded ZoneStru
	AsZone() *ZoneStru

	// OnStepBegin is called at the start of every tick, before areas update
	OnStepBegin()

	// OnStepEnd is called at the end of every tick
	OnStepEnd()

	// OnAreaUpdated is called right after each area of this zone updated
	OnAreaUpdated(ar Area)

	// SpreadDope delivers the dopamine portions released on this tick
	SpreadDope(portions []Portion)
}

// ZoneStru contains the basic structural state of a zone
type ZoneStru struct {
	Nm    string       `desc:"name of the zone"`
	Idx   int          `desc:"index of the zone in the Network"`
	Net   *Network     `copy:"-" json:"-" view:"-"`
	Areas []sdr.AreaID `desc:"areas of this zone, in registration order"`
}

func (zs *ZoneStru) Name() string          { return zs.Nm }
func (zs *ZoneStru) AsZone() *ZoneStru     { return zs }
func (zs *ZoneStru) OnStepBegin()          {}
func (zs *ZoneStru) OnStepEnd()            {}
func (zs *ZoneStru) OnAreaUpdated(ar Area) {}

// SpreadDope delivers the portions to every area of the zone that
// receives dopamine.
func (zs *ZoneStru) SpreadDope(portions []Portion) {
	for _, id := range zs.Areas {
		if dr, ok := zs.Net.Areas[id].(DopeReceiver); ok {
			dr.ReceiveDope(portions, false)
		}
	}
}

// AreaList returns the areas of the zone
func (zs *ZoneStru) AreaList() []Area {
	ars := make([]Area, len(zs.Areas))
	for i, id := range zs.Areas {
		ars[i] = zs.Net.Areas[id]
	}
	return ars
}
