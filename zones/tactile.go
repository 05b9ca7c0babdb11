// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/receptive"
)

// TactileZone (TA) perceives the state of the hand
type TactileZone struct {
	neuro.ZoneStru
	Tactile *receptive.TactileArea `desc:"tactile perception"`
	Touch   *neuro.EncoderArea     `desc:"touch"`
}

// AddTactileZone adds the tactile zone and its areas to the network
func AddTactileZone(nt *neuro.Network, name string) (*TactileZone, error) {
	tz := &TactileZone{}
	b := newBuilder(nt, tz, name)
	tz.Tactile = receptive.NewTactileArea(AreaTactile)
	tz.Touch = neuro.NewEncoderArea(AreaTouch, 0, 0)
	tz.Touch.Surprise = 2
	tz.Touch.RecogThr = 0.9
	b.add(tz.Tactile, tz.Touch)
	b.connect(tz.Tactile, tz.Touch, "")
	return tz, b.err()
}

// Activate activates tactile perception on the state of the hand
func (tz *TactileZone) Activate(md Mode) {
	tz.Tactile.Activate(md.Clenched, md.Holding)
}
