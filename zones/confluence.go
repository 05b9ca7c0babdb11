// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"fmt"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/rl"
)

// ConfluenceZone (CO) learns the coincidences of the visual
// representations with the active reflexes
type ConfluenceZone struct {
	neuro.ZoneStru
	Confluences []*neuro.ConfluenceArea
}

// AddConfluenceZone adds a confluence area for each pair of visual encoder
// and reflex
func AddConfluenceZone(nt *neuro.Network, name string, vr *VisualZone, re *ReflexZone) (*ConfluenceZone, error) {
	cz := &ConfluenceZone{}
	b := newBuilder(nt, cz, name)
	for _, enc := range vr.Encoders() {
		for _, ra := range re.Reflexes {
			ca := neuro.NewConfluenceArea(fmt.Sprintf("confluence %s + %s", enc.Nm, ra.Nm))
			b.add(ca)
			b.connect(enc, ca, "")
			b.connect(ra, ca, rl.ActiveReflexProp)
			cz.Confluences = append(cz.Confluences, ca)
		}
	}
	return cz, b.err()
}
