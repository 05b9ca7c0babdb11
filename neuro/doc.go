// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuro is the core of the reflex substrate: areas that exchange sdr
patterns over fixed wires, learned PatternsConnections between specific
patterns, zones that group areas, and the Network that steps all of it one
tick at a time.

A tick runs in a fixed order:

	zones OnStepBegin
	areas Update (registration order)
	wires propagate outputs into input slots
	dopamine portions queued on this tick spread to every zone
	zones OnStepEnd

An area's output is therefore only visible to downstream areas on the next
tick.  Everything is single threaded and deterministic given the seed of
the Network's random source.

Areas report to the outside through a closed set of Events (PatternCreated,
HandMove, AttentionStrategy, AttentionLocation) delivered to the Network's
EventSink.
*/
package neuro
