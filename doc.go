// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package reflex is the overall repository for an embodied agent that learns
from sparse distributed representations (SDRs) and dopamine.

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* sdr: sparse patterns, the pattern store, and the processor that turns an
input pattern into a new stable output code.

* neuro: the core substrate -- areas, zones, connections between them, the
pattern combiner, encoders, action areas, dopamine portions and events, and
the network that steps them all on every tick.

* receptive: areas turning raw perception (spatial values, shape primitives,
touch, body distortion) into patterns.

* rl: reflex areas learning actions from dopamine, and the anticipator and
predictor areas that release and correct expected dopamine.

* zones: the standard zones of the agent -- visual, attention, tactile, motor,
reflex and confluence -- and their wiring.

* agent: the agent driven by environment packets, with its attention
strategies, configuration, metrics and tick log.

* examples: runnable programs.  examples/sandbox runs an agent in a synthetic
room, examples/sdrbench measures encoder recognition.
*/
package reflex
