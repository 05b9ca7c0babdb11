// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rl provides the dopamine-driven reflex learning of the substrate:
reflex areas that learn which action to take for a given perceived
situation, and the dopamine anticipator and predictor areas around them.

* `reflex.go` defines the `ReflexArea`: it selects an action pattern for
  its action area, from an optional predefined `Script`, from its learned
  connections, or at random.  Dopamine arriving a few ticks later is
  credited to the (input, action) pairs of the preceding ticks.

* `credit.go` defines the `CreditParams` window of past ticks that a
  dopamine release is credited to, shared by reflexes and the anticipator.

* `anticipator.go` defines the `AnticipatorArea`, which learns which input
  patterns are followed by dopamine and later releases self-induced
  dopamine when they show up again, before the actual release.

* `predictor.go` defines the `PredictorArea`, which traces the learned
  connections a reflex activates and corrects their weight by the
  difference between the dopamine that actually followed and the expected
  one.

* `senddope.go` defines `SendDope`, a list of area names to deliver
  self-induced dopamine to.

Dopamine from surprise reaches the areas through their zone at the end
of the tick it is released, see neuro.Network.Step.
*/
package rl
