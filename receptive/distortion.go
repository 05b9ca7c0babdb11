// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package receptive

import (
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
)

// DistortionParams control when a body shape distortion is surprising
type DistortionParams struct {
	Surprise    int     `def:"3" desc:"surprise level of the PatternCreated event"`
	Cooldown    int     `def:"20" desc:"initial number of ticks after the end of a distortion during which a new one is not surprising -- 10 env steps"`
	Growth      float32 `def:"1.5" desc:"factor by which the cooldown grows after each surprise -- habituation"`
	MaxCooldown int     `def:"160" desc:"maximum cooldown"`
	MaxTick     int     `def:"20000" desc:"no surprise is sent after this tick -- 0 for no limit"`
}

func (dp *DistortionParams) Defaults() {
	dp.Surprise = 3
	dp.Cooldown = 20
	dp.Growth = 1.5
	dp.MaxCooldown = 160
	dp.MaxTick = 20000
}

// DistortionArea sends a surprise on the first tick a body shape gets
// distorted (e.g., by the hand pushing it), unless the previous distortion
// ended less than the current cooldown ago.
type DistortionArea struct {
	neuro.AreaStru
	Dist      DistortionParams `view:"inline"`
	Distorted bool             `desc:"current state, set by Activate"`
	Counter   int              `desc:"number of consecutive updates in the distorted state"`
	LastReset int              `desc:"tick the last distortion ended"`
	CurCool   int              `desc:"current cooldown"`
}

// NewDistortionArea returns a new distortion area with default params
func NewDistortionArea(name string) *DistortionArea {
	da := &DistortionArea{}
	da.InitName(name, neuro.AreaReceptive)
	da.Dist.Defaults()
	return da
}

func (da *DistortionArea) Build() error {
	da.CurCool = da.Dist.Cooldown
	return nil
}

// Activate sets the distortion state
func (da *DistortionArea) Activate(distorted bool) {
	da.Distorted = distorted
}

func (da *DistortionArea) Update() error {
	tick := da.Tick()
	if da.Distorted {
		da.Counter++
	} else {
		if da.Counter > 0 {
			da.LastReset = tick
		}
		da.Counter = 0
	}
	if da.Dist.MaxTick > 0 && tick > da.Dist.MaxTick {
		return nil
	}
	if da.Counter == 1 && tick-da.LastReset > da.CurCool {
		da.Emit(neuro.PatternCreated{Surprise: da.Dist.Surprise, Area: da.ID, Pattern: sdr.NoPattern})
		da.CurCool = int(float32(da.CurCool) * da.Dist.Growth)
		if da.CurCool > da.Dist.MaxCooldown {
			da.CurCool = da.Dist.MaxCooldown
		}
	}
	return nil
}
