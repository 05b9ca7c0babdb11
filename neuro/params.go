// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

// Params are the network-wide hyper-parameters.  Values are empirically
// chosen; all of them can be overridden from config.
type Params struct {
	EncoderSpace int     `def:"1000" desc:"default output space size of encoder areas"`
	EncoderNorm  int     `def:"20" desc:"default number of active indices of encoder outputs"`
	SpatialSpace int     `def:"100" desc:"default output space size of spatial receptive areas"`
	SpatialNorm  int     `def:"20" desc:"default number of active indices of spatial receptive outputs"`
	RecogThr     float32 `def:"0.7" min:"0" max:"1" desc:"default similarity at which an encoder recognizes a previously seen input"`
	Lrate        float32 `def:"0.05" desc:"learning rate applied to dopamine-driven weight changes"`
	StepsPerEnv  int     `def:"2" min:"1" desc:"network ticks per external environment step"`
	MinWt        float32 `def:"0.1" desc:"floor of PatternsConnection weights -- learned reflexes are never fully extinguished"`
	MaxWt        float32 `def:"1" desc:"ceiling of PatternsConnection weights"`
	CombineReset int     `def:"10" desc:"combiner inputs are cleared when more than this many ticks passed since the last clear"`
	CombineSub   int     `def:"2" desc:"largest subset size the combiner enumerates below the full set of alive inputs"`
	ActionSpace  int     `def:"100" desc:"output space size of action areas"`
	ActionNorm   int     `def:"10" desc:"number of active indices of action patterns"`
	HistTicks    int     `def:"100" desc:"number of ticks of per-area history retained"`
}

func (pr *Params) Defaults() {
	pr.EncoderSpace = 1000
	pr.EncoderNorm = 20
	pr.SpatialSpace = 100
	pr.SpatialNorm = 20
	pr.RecogThr = 0.7
	pr.Lrate = 0.05
	pr.StepsPerEnv = 2
	pr.MinWt = 0.1
	pr.MaxWt = 1
	pr.CombineReset = 10
	pr.CombineSub = 2
	pr.ActionSpace = 100
	pr.ActionNorm = 10
	pr.HistTicks = 100
	pr.Update()
}

// Update must be called after any changes to parameters
func (pr *Params) Update() {
	if pr.StepsPerEnv < 1 {
		pr.StepsPerEnv = 1
	}
	if pr.MinWt > pr.MaxWt {
		pr.MinWt, pr.MaxWt = pr.MaxWt, pr.MinWt
	}
	if pr.CombineSub < 1 {
		pr.CombineSub = 1
	}
}

// Ticks converts a number of environment steps into network ticks
func (pr *Params) Ticks(envSteps int) int {
	return envSteps * pr.StepsPerEnv
}
