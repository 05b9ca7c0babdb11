// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"errors"

	"github.com/emer/reflex/neuro"
)

// Zones are all the zones of the agent's network
type Zones struct {
	VR *VisualZone
	VA *AttentionZone
	TA *TactileZone
	MO *MotorZone
	RE *ReflexZone
	CO *ConfluenceZone
}

// AddAll adds all the zones to the network, in update order, without
// building it
func AddAll(nt *neuro.Network) (*Zones, error) {
	zs := &Zones{}
	var errs []error
	var err error
	if zs.VR, err = AddVisualZone(nt, "VR"); err != nil {
		errs = append(errs, err)
	}
	if zs.VA, err = AddAttentionZone(nt, "VA"); err != nil {
		errs = append(errs, err)
	}
	if zs.TA, err = AddTactileZone(nt, "TA"); err != nil {
		errs = append(errs, err)
	}
	if zs.MO, err = AddMotorZone(nt, "MO"); err != nil {
		errs = append(errs, err)
	}
	if zs.RE, err = AddReflexZone(nt, "RE", zs.MO, zs.VR, zs.TA); err != nil {
		errs = append(errs, err)
	}
	if zs.CO, err = AddConfluenceZone(nt, "CO", zs.VR, zs.RE); err != nil {
		errs = append(errs, err)
	}
	return zs, errors.Join(errs...)
}

// SetVisual sets the geometry parameters of the visual zones
func (zs *Zones) SetVisual(vp VisualParams) {
	zs.VR.Vp = vp
	zs.VA.Vp = vp
}
