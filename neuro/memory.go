// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

// WorkingMemoryCell echoes its first input.  It accepts empty inputs, so
// the absence of a pattern propagates through it too.
type WorkingMemoryCell struct {
	AreaStru
}

// NewWorkingMemoryCell returns a new memory cell
func NewWorkingMemoryCell(name string) *WorkingMemoryCell {
	wm := &WorkingMemoryCell{}
	wm.InitName(name, AreaMemory)
	wm.AcceptsEmpty = true
	return wm
}

func (wm *WorkingMemoryCell) Update() error {
	if len(wm.Inputs) > 0 {
		wm.SetOutput(wm.Inputs[0])
	}
	return nil
}
