// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rl

// CreditParams define which past ticks get the credit for a dopamine release
type CreditParams struct {
	DopeMin    int `def:"2" desc:"releases smaller than this are ignored"`
	SelfWindow int `def:"4" desc:"number of ticks back the window starts, for self-induced dopamine"`
	Window     int `def:"8" desc:"number of ticks back the window starts, for dopamine from surprise"`
	Gap        int `def:"2" desc:"most recent ticks excluded from the window, as they cannot have caused the release"`
}

func (cp *CreditParams) Defaults() {
	cp.DopeMin = 2
	cp.SelfWindow = 4
	cp.Window = 8
	cp.Gap = 2
}

// Range returns the window of credited ticks [start, end) for a release on tick
func (cp *CreditParams) Range(tick int, selfInduced bool) (start, end int) {
	if selfInduced {
		start = tick - cp.SelfWindow
	} else {
		start = tick - cp.Window
	}
	return start, tick - cp.Gap
}

// Oldest returns the oldest tick that any window of a release on tick covers
func (cp *CreditParams) Oldest(tick int) int {
	if cp.SelfWindow > cp.Window {
		return tick - cp.SelfWindow
	}
	return tick - cp.Window
}
