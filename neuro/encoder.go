// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"
	"log"

	"github.com/emer/reflex/sdr"
)

// EncoderArea learns a stable output code for each distinct combination of
// its inputs.  A combined input similar enough to one seen before is
// recognized and mapped to the same output; otherwise the sdr.Processor
// produces a new output, and a PatternsConnection from the input to it is
// recorded.
type EncoderArea struct {
	AreaStru
	MinInputs  int                   `desc:"minimum number of alive inputs needed to process them"`
	Surprise   int                   `desc:"surprise level of the PatternCreated event sent for a new pattern -- 0 sends no event"`
	RecogThr   float32               `desc:"similarity at or above which an input is recognized -- 0 takes the network default"`
	ConveyNew  bool                  `desc:"output new patterns on the tick they were created -- otherwise only recognized ones are output"`
	CacheTicks int                   `desc:"when inputs are insufficient, keep outputting the last output for this many ticks"`
	Proc       *sdr.Processor        `desc:"processor producing new output patterns"`
	PatConns   []*PatternsConnection `desc:"learned input -> output connections, in creation order"`
	History    map[int]*sdr.Pattern  `view:"-" desc:"tick -> output, for the last HistTicks ticks"`

	cached     *sdr.Pattern
	cacheStart int
}

// NewEncoderArea returns a new encoder with given output size (0 takes the
// network defaults), requiring one alive input and sending surprise 1.
func NewEncoderArea(name string, outSpace, outNorm int) *EncoderArea {
	ea := &EncoderArea{}
	ea.InitEncoder(name, AreaEncoder, outSpace, outNorm)
	return ea
}

// InitEncoder initializes the encoder fields, for types embedding EncoderArea
func (ea *EncoderArea) InitEncoder(name string, typ AreaTypes, outSpace, outNorm int) {
	ea.InitName(name, typ)
	ea.OutSpace = outSpace
	ea.OutNorm = outNorm
	ea.MinInputs = 1
	ea.Surprise = 1
}

func (ea *EncoderArea) AsEncoder() *EncoderArea { return ea }

func (ea *EncoderArea) Build() error {
	pr := ea.Params()
	if ea.OutSpace == 0 {
		ea.OutSpace = pr.EncoderSpace
	}
	if ea.OutNorm == 0 {
		ea.OutNorm = pr.EncoderNorm
	}
	if ea.RecogThr == 0 {
		ea.RecogThr = pr.RecogThr
	}
	if ea.MinInputs > len(ea.InSizes) {
		return fmt.Errorf("EncoderArea %v: MinInputs %d with %d inputs: %w", ea.Nm, ea.MinInputs, len(ea.InSizes), ErrMinInputs)
	}
	if ea.Proc == nil {
		ea.Proc = sdr.NewProcessor(ea.OutSpace, ea.OutNorm)
	}
	ea.History = make(map[int]*sdr.Pattern)
	ea.ResetInputs()
	return nil
}

func (ea *EncoderArea) Update() error {
	tick := ea.Tick()
	ea.Output = nil
	if ea.NAlive() < ea.MinInputs {
		ea.ResetInputs()
		if ea.CacheTicks > 0 && ea.cached != nil && tick-ea.cacheStart < ea.CacheTicks {
			ea.Output = ea.cached
			ea.record(tick)
		}
		return nil
	}
	in := ea.Store().Combine(ea.Inputs, ea.InSizes)
	if in != nil {
		if err := ea.ProcessInput(in); err != nil {
			return err
		}
	}
	ea.record(tick)
	ea.cached = ea.Output
	ea.cacheStart = tick
	ea.ResetInputs()
	return nil
}

func (ea *EncoderArea) record(tick int) {
	ea.History[tick] = ea.Output
	delete(ea.History, tick-ea.Params().HistTicks)
}

// ProcessInput recognizes or encodes the combined input, setting the output.
// A new pattern records the current inputs as its sources and sends a
// PatternCreated event if Surprise > 0.
func (ea *EncoderArea) ProcessInput(in *sdr.Pattern) error {
	out, isNew, err := ea.RecognizeProcess(in)
	if err != nil {
		return err
	}
	if !isNew {
		ea.Output = out
		if ea.Net.Verbose {
			log.Printf("[%v]: existing pattern recognized %v\n", ea.Nm, out)
		}
		return nil
	}
	out.Sources = out.Sources[:0]
	for _, pt := range ea.Inputs {
		if pt != nil {
			out.Sources = append(out.Sources, pt.ID)
		}
	}
	if ea.Net.Verbose {
		log.Printf("[%v]: new pattern created %v\n", ea.Nm, out)
	}
	if ea.Surprise > 0 {
		ea.Emit(PatternCreated{Surprise: ea.Surprise, Area: ea.ID, Pattern: out.ID})
	}
	if ea.ConveyNew {
		ea.Output = out
	}
	return nil
}

// Recognize returns the output of the first learned connection whose source
// is at least RecogThr similar to in, nil if none.
func (ea *EncoderArea) Recognize(in *sdr.Pattern) *sdr.Pattern {
	st := ea.Store()
	for _, pc := range ea.PatConns {
		if st.ByID(pc.Source).Similarity(in) >= ea.RecogThr {
			return st.ByID(pc.Target)
		}
	}
	return nil
}

// RecognizeProcess returns the recognized output for in, or processes it
// into a new output pattern and learns the connection to it.
// isNew is true in the latter case.
func (ea *EncoderArea) RecognizeProcess(in *sdr.Pattern) (out *sdr.Pattern, isNew bool, err error) {
	if out = ea.Recognize(in); out != nil {
		return out, false, nil
	}
	out, err = ea.Proc.Process(ea.Store(), in, ea.ID, ea.Rand())
	if err != nil {
		return nil, false, fmt.Errorf("EncoderArea %v: %w", ea.Nm, err)
	}
	out.Data = in.Data
	out.Log(ea.Tick(), ea.ID)
	pc, err := ea.Conns().Add(ea.ID, in.ID, out.ID, 1, ea.Tick(), 0)
	if err != nil {
		return nil, false, fmt.Errorf("EncoderArea %v: %w", ea.Nm, err)
	}
	ea.PatConns = append(ea.PatConns, pc)
	return out, true, nil
}

// ConfluenceArea is an encoder of coincident inputs: it needs at least two
// of them alive at once.
type ConfluenceArea struct {
	EncoderArea
}

// NewConfluenceArea returns a new confluence area with default output size
func NewConfluenceArea(name string) *ConfluenceArea {
	ca := &ConfluenceArea{}
	ca.InitEncoder(name, AreaConfluence, 0, 0)
	ca.MinInputs = 2
	return ca
}
