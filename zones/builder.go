// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"errors"

	"github.com/emer/reflex/neuro"
)

// builder adds the areas and wires of one zone, collecting errors
type builder struct {
	nt   *neuro.Network
	zn   neuro.Zone
	errs []error
}

func newBuilder(nt *neuro.Network, zn neuro.Zone, name string) *builder {
	nt.AddZone(zn, name)
	return &builder{nt: nt, zn: zn}
}

func (b *builder) add(ars ...neuro.Area) {
	for _, ar := range ars {
		if err := b.nt.AddArea(b.zn, ar); err != nil {
			b.errs = append(b.errs, err)
		}
	}
}

func (b *builder) connect(src, tgt neuro.Area, prop string) {
	if _, err := b.nt.Connect(src, tgt, prop); err != nil {
		b.errs = append(b.errs, err)
	}
}

func (b *builder) err() error {
	return errors.Join(b.errs...)
}
