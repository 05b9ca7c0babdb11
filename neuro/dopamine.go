// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import "github.com/emer/reflex/sdr"

// Portion is a quantum of dopamine, tagged with the area that caused it
type Portion struct {
	Value  int        `desc:"amount of dopamine"`
	Source sdr.AreaID `desc:"area whose event released it"`
}

// DopeReceiver is implemented by areas that learn from dopamine.
// selfInduced portions come from the anticipator rather than from surprise.
type DopeReceiver interface {
	ReceiveDope(portions []Portion, selfInduced bool)
}

// DopeFilter is implemented by areas that only accept dopamine
// from some sources.
type DopeFilter interface {
	AcceptsDopamine(p Portion) bool
}

// SumAccepted returns the total value of the portions accepted by filt.
// A nil filter accepts everything.
func SumAccepted(portions []Portion, filt DopeFilter) int {
	sum := 0
	for _, p := range portions {
		if filt == nil || filt.AcceptsDopamine(p) {
			sum += p.Value
		}
	}
	return sum
}
