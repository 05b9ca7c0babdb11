// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"errors"
	"fmt"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/receptive"
	"github.com/emer/reflex/sdr"
)

// NWorkMem is the number of working memory cells fed by attention location
const NWorkMem = 3

// AttentionZone (VA) encodes where attention is and how fast the attended
// body moves.  It tells the agent to focus when it sees motion, and where
// its attention is.
type AttentionZone struct {
	neuro.ZoneStru
	Vp        VisualParams               `view:"inline" desc:"geometry parameters"`
	Horiz     *receptive.SpatialArea     `desc:"horizontal attention location"`
	Vert      *receptive.SpatialArea     `desc:"vertical attention location"`
	Location  *neuro.EncoderArea         `desc:"attention location"`
	VelLeft   *receptive.SpatialArea     `desc:"velocity to the left"`
	VelRight  *receptive.SpatialArea     `desc:"velocity to the right"`
	VelUp     *receptive.SpatialArea     `desc:"velocity up"`
	VelDown   *receptive.SpatialArea     `desc:"velocity down"`
	Velocity  *neuro.EncoderArea         `desc:"velocity"`
	WorkMem   []*neuro.WorkingMemoryCell `desc:"working memory of the attention location"`
	Locations map[int]sdr.Data           `view:"-" desc:"attention locations of recent ticks, by tick"`
}

// AddAttentionZone adds the visual attention zone and its areas to the network
func AddAttentionZone(nt *neuro.Network, name string) (*AttentionZone, error) {
	az := &AttentionZone{}
	az.Vp.Defaults()
	az.Locations = make(map[int]sdr.Data)
	b := newBuilder(nt, az, name)

	az.Horiz = receptive.NewSpatialArea(AreaAttnHoriz, 0, 0, 20)
	az.Vert = receptive.NewSpatialArea(AreaAttnVert, 0, 0, 20)
	az.Location = neuro.NewEncoderArea(AreaAttnLocation, 0, 0)
	az.Location.MinInputs = 2
	az.Location.Surprise = 0
	az.Location.RecogThr = 0.99
	b.add(az.Horiz, az.Vert, az.Location)
	b.connect(az.Horiz, az.Location, "")
	b.connect(az.Vert, az.Location, "")

	az.VelLeft = receptive.NewSpatialArea(AreaVelLeft, 0, 0, 10)
	az.VelRight = receptive.NewSpatialArea(AreaVelRight, 0, 0, 10)
	az.VelUp = receptive.NewSpatialArea(AreaVelUp, 0, 0, 10)
	az.VelDown = receptive.NewSpatialArea(AreaVelDown, 0, 0, 10)
	az.Velocity = neuro.NewEncoderArea(AreaVelocity, 0, 0)
	b.add(az.VelLeft, az.VelRight, az.VelUp, az.VelDown, az.Velocity)
	for _, sa := range az.Velocities() {
		b.connect(sa, az.Velocity, "")
	}

	for i := 0; i < NWorkMem; i++ {
		wm := neuro.NewWorkingMemoryCell(fmt.Sprintf("working memory %d", i))
		az.WorkMem = append(az.WorkMem, wm)
		b.add(wm)
		b.connect(az.Location, wm, "")
	}
	return az, b.err()
}

// Velocities returns the velocity areas: left, right, up, down
func (az *AttentionZone) Velocities() []*receptive.SpatialArea {
	return []*receptive.SpatialArea{az.VelLeft, az.VelRight, az.VelUp, az.VelDown}
}

// ActivateOnBody activates the attention location and velocity areas on
// the attended body
func (az *AttentionZone) ActivateOnBody(body *Body) error {
	var errs []error
	if err := az.Horiz.Activate(unitClamp(body.Center.X / az.Vp.Room.X)); err != nil {
		errs = append(errs, err)
	}
	if err := az.Vert.Activate(unitClamp(body.Center.Y / az.Vp.Room.Y)); err != nil {
		errs = append(errs, err)
	}
	l, r := SplitVelocity(body.Offset.X / az.Vp.MaxVelocity)
	u, d := SplitVelocity(body.Offset.Y / az.Vp.MaxVelocity)
	for i, v := range []float32{l, r, u, d} {
		if err := az.Velocities()[i].Activate(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SplitVelocity splits a signed velocity into its negative and positive
// direction magnitudes, NoValue for the direction not taken.
func SplitVelocity(v float32) (neg, pos float32) {
	switch {
	case v > 0:
		return receptive.NoValue, unitClamp(v)
	case v < 0:
		return unitClamp(-v), receptive.NoValue
	}
	return receptive.NoValue, receptive.NoValue
}

func (az *AttentionZone) OnAreaUpdated(ar neuro.Area) {
	as := ar.AsArea()
	if as.Output == nil {
		return
	}
	switch as.ID {
	case az.Velocity.ID:
		az.Net.Emit(neuro.AttentionStrategy{Mode: neuro.FocusStrategy})
	case az.Location.ID:
		tick := az.Net.Tick()
		az.Locations[tick] = as.Output.Data
		delete(az.Locations, tick-az.Net.Params.HistTicks)
		az.Net.Emit(neuro.AttentionLocation{Loc: as.Output.Data})
	}
}
