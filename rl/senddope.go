// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

import (
	"errors"
	"fmt"

	"github.com/emer/reflex/neuro"
)

// SendDope is a list of areas to send self-induced dopamine to
type SendDope []string

// SendDope sends the portions, as self-induced, to every listed area that
// implements neuro.DopeReceiver
func (sd *SendDope) SendDope(net *neuro.Network, portions []neuro.Portion) {
	for _, anm := range *sd {
		ar, err := net.AreaByName(anm)
		if err != nil {
			continue
		}
		if dr, ok := ar.(neuro.DopeReceiver); ok {
			dr.ReceiveDope(portions, true)
		}
	}
}

// Validate ensures that the listed areas exist and receive dopamine.
// ctxt is string for error message to provide context.
func (sd *SendDope) Validate(net *neuro.Network, ctxt string) error {
	var errs []error
	for _, anm := range *sd {
		ar, err := net.AreaByName(anm)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ctxt, err))
			continue
		}
		if _, ok := ar.(neuro.DopeReceiver); !ok {
			errs = append(errs, fmt.Errorf("%s: area: %v does not receive dopamine", ctxt, anm))
		}
	}
	return errors.Join(errs...)
}

// Add adds given area name(s) to list
func (sd *SendDope) Add(areanm ...string) {
	*sd = append(*sd, areanm...)
}

// AddType adds all areas of the network of given type
func (sd *SendDope) AddType(net *neuro.Network, typ neuro.AreaTypes) {
	for _, ar := range net.Areas {
		if ar.AsArea().Type() == typ {
			*sd = append(*sd, ar.Name())
		}
	}
}
