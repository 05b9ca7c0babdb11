// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"

	"github.com/emer/reflex/sdr"
)

// Connection is a fixed wire from the output of one area into an input
// slot of another.  Wires are created by Network.Connect and propagated
// once per tick, after all areas updated.
type Connection struct {
	Source sdr.AreaID `desc:"sending area"`
	Target sdr.AreaID `desc:"receiving area"`
	Slot   int        `desc:"index of the input slot in the target"`
	Open   bool       `desc:"closed wires do not propagate"`
	Prop   string     `desc:"if set, the source's PropOutput of this name is sent instead of its Output"`
}

func (cn *Connection) String() string {
	if cn.Prop != "" {
		return fmt.Sprintf("%d.%s -> %d[%d]", cn.Source, cn.Prop, cn.Target, cn.Slot)
	}
	return fmt.Sprintf("%d -> %d[%d]", cn.Source, cn.Target, cn.Slot)
}

// Propagate copies the current output of the source into the target slot.
// A missing output only clears the slot if the target accepts empty inputs.
func (cn *Connection) Propagate(nt *Network) {
	if !cn.Open {
		return
	}
	src := nt.Areas[cn.Source]
	var out *sdr.Pattern
	if cn.Prop != "" {
		if po, ok := src.(PropOutput); ok {
			out = po.PropOutput(cn.Prop)
		}
	} else {
		out = src.AsArea().Output
	}
	tgt := nt.Areas[cn.Target].AsArea()
	if out == nil && !tgt.AcceptsEmpty {
		return
	}
	if len(tgt.Inputs) != len(tgt.InSizes) {
		tgt.ResetInputs()
	}
	tgt.Inputs[cn.Slot] = out
}
