// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package agent drives the reflex network from the bodies perceived in an
environment.  Each environment step, the Agent picks the body to attend to
according to its attention strategy, activates the receptive areas of the
zones on it, runs the network for StepsPerEnv ticks, and returns the
actions its motor areas selected.

Two attention strategies alternate:

	loop   attention cycles through all bodies, one every AttnSpan ticks
	focus  attention alternates between the hand and what it interacts with

The agent switches to focus whenever the velocity area recognizes motion,
and back to loop when nothing moved for FocusHold environment steps.
*/
package agent
