// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package zones assembles the areas of the neuro, receptive and rl packages
into the functional zones of the agent's network, and translates the
bodies perceived by the agent into activations of their receptive areas.

The zones must be added in dependency order, which is also the update
order of their areas:

	VR  visual recognition: shapes, eye shifts, distances, distortion
	VA  visual attention: attention location, velocity, working memory
	TA  tactile: touch
	MO  motor: one HandMotionArea per macro action
	RE  reflex: reflexes, dopamine predictors, the combiner and the anticipator
	CO  confluence: coincidences of visual representations and active reflexes
*/
package zones
