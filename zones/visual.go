// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zones

import (
	"errors"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/receptive"
	"github.com/goki/mat32"
)

// VisualZone (VR) recognizes the shape of the attended body and the
// shift of the eye from the previously attended one, and perceives the
// distance of the body from the hand, its velocity and distortions of
// its shape.
type VisualZone struct {
	neuro.ZoneStru
	Vp         VisualParams                       `view:"inline" desc:"geometry parameters"`
	Primitives *receptive.PrimitivesArea          `desc:"shape primitives of the attended body"`
	ShiftRight *receptive.SpatialArea             `desc:"eye shift to the right"`
	ShiftLeft  *receptive.SpatialArea             `desc:"eye shift to the left"`
	ShiftUp    *receptive.SpatialArea             `desc:"eye shift up"`
	ShiftDown  *receptive.SpatialArea             `desc:"eye shift down"`
	Shape      *neuro.EncoderArea                 `desc:"shape representations"`
	Place      *neuro.EncoderArea                 `desc:"place representations, from the eye shift"`
	ShapeShift *neuro.EncoderArea                 `desc:"shape and place"`
	Distance   *receptive.SpatialArea             `desc:"distance of the body from the hand"`
	DistChange *receptive.SpatialArea             `desc:"change of the distance since the body was last attended"`
	BodyVel    *receptive.SpatialArea             `desc:"speed of the body"`
	Distortion *receptive.DistortionArea          `desc:"distortion of the shape of the body"`
	Shapes     map[string]*receptive.Presentation `view:"-" desc:"first presentation seen of each body"`
	Dists      map[string]float32                 `view:"-" desc:"last normalized distance of each body from the hand"`
}

// AddVisualZone adds the visual recognition zone and its areas to the network
func AddVisualZone(nt *neuro.Network, name string) (*VisualZone, error) {
	vz := &VisualZone{}
	vz.Vp.Defaults()
	vz.Shapes = make(map[string]*receptive.Presentation)
	vz.Dists = make(map[string]float32)
	b := newBuilder(nt, vz, name)

	vz.Primitives = receptive.NewPrimitivesArea(AreaPrimitives)
	vz.ShiftRight = receptive.NewSpatialArea(AreaShiftRight, 0, 0, 0)
	vz.ShiftLeft = receptive.NewSpatialArea(AreaShiftLeft, 0, 0, 0)
	vz.ShiftUp = receptive.NewSpatialArea(AreaShiftUp, 0, 0, 0)
	vz.ShiftDown = receptive.NewSpatialArea(AreaShiftDown, 0, 0, 0)

	vz.Shape = neuro.NewEncoderArea(AreaShape, 0, 0)
	vz.Shape.Surprise = 2
	vz.Place = neuro.NewEncoderArea(AreaPlace, 0, 0)
	vz.Place.MinInputs = 2
	vz.Place.Surprise = 0
	vz.ShapeShift = neuro.NewEncoderArea(AreaShapeShift, 0, 0)
	vz.ShapeShift.MinInputs = 2
	vz.ShapeShift.Surprise = 0

	vz.Distance = receptive.NewSpatialArea(AreaDistance, 0, 0, 20)
	vz.DistChange = receptive.NewSpatialArea(AreaDistanceChange, 0, 0, 20)
	vz.BodyVel = receptive.NewSpatialArea(AreaBodyVelocity, 0, 0, 10)
	vz.Distortion = receptive.NewDistortionArea(AreaDistortion)

	b.add(vz.Primitives, vz.ShiftRight, vz.ShiftLeft, vz.ShiftUp, vz.ShiftDown)
	b.add(vz.Shape, vz.Place, vz.ShapeShift)
	b.add(vz.Distance, vz.DistChange, vz.BodyVel, vz.Distortion)

	b.connect(vz.Primitives, vz.Shape, "")
	for _, sa := range vz.Shifts() {
		b.connect(sa, vz.Place, "")
	}
	b.connect(vz.Place, vz.ShapeShift, "")
	b.connect(vz.Shape, vz.ShapeShift, "")
	return vz, b.err()
}

// Shifts returns the eye shift areas: right, left, up, down
func (vz *VisualZone) Shifts() []*receptive.SpatialArea {
	return []*receptive.SpatialArea{vz.ShiftRight, vz.ShiftLeft, vz.ShiftUp, vz.ShiftDown}
}

// Encoders returns the encoder areas of the zone, whose representations
// meet the reflexes in the confluence zone
func (vz *VisualZone) Encoders() []*neuro.EncoderArea {
	return []*neuro.EncoderArea{vz.Shape, vz.Place, vz.ShapeShift}
}

// ActivateOnBody activates the receptive areas on the attended body.
// prev is the previously attended body, nil if none, and bodies are all
// the bodies of the current environment step.
func (vz *VisualZone) ActivateOnBody(body, prev *Body, bodies []Body) error {
	var errs []error
	if prev != nil {
		l, r, u, d := EyeShift(body.Center, prev.Center, vz.Vp.Room)
		vals := []float32{r, l, u, d}
		for i, sa := range vz.Shifts() {
			if err := sa.Activate(vals[i]); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := vz.Primitives.Activate(&body.Presentation, body.Name); err != nil {
		errs = append(errs, err)
	}
	dist, chg := vz.distances(body, FindBody(bodies, HandName))
	if err := vz.Distance.Activate(dist); err != nil {
		errs = append(errs, err)
	}
	if err := vz.DistChange.Activate(chg); err != nil {
		errs = append(errs, err)
	}
	vel := float32(receptive.NoValue)
	if body.Moving() {
		vel = unitClamp(body.Offset.Length() / vz.Vp.MaxVelocity)
	}
	if err := vz.BodyVel.Activate(vel); err != nil {
		errs = append(errs, err)
	}
	vz.Distortion.Activate(vz.Distorted(body, bodies))
	return errors.Join(errs...)
}

// distances returns the normalized distance of the body from the hand and
// its change since the body was last attended, NoValue when not defined.
func (vz *VisualZone) distances(body, hand *Body) (dist, chg float32) {
	dist, chg = receptive.NoValue, receptive.NoValue
	if hand == nil || body.IsHand() {
		return
	}
	d := body.Center.Sub(hand.Center).Length() / vz.Vp.Diagonal()
	dist = unitClamp(d)
	if prev, has := vz.Dists[body.Name]; has {
		chg = unitClamp(0.5 + (d-prev)*vz.Vp.DistGain)
	}
	vz.Dists[body.Name] = d
	return
}

// Distorted returns true if the shape of the body changed while the hand
// is close to it, or if a body seen before is gone.  It records the
// bodies seen.
func (vz *VisualZone) Distorted(body *Body, bodies []Body) bool {
	distorted := false
	for nm := range vz.Shapes {
		if FindBody(bodies, nm) == nil {
			delete(vz.Shapes, nm)
			distorted = true
		}
	}
	for i := range bodies {
		bd := &bodies[i]
		if _, has := vz.Shapes[bd.Name]; !has {
			pres := bd.Presentation
			vz.Shapes[bd.Name] = &pres
		}
	}
	hand := FindBody(bodies, HandName)
	if hand == nil || body.IsHand() {
		return distorted
	}
	if body.Center.Sub(hand.Center).Length() > vz.Vp.Proximity {
		return distorted
	}
	return distorted || !vz.Shapes[body.Name].Equal(&body.Presentation)
}

// EyeShift returns the encoded eye shift from prev to cur in each
// direction: left, right, up, down.  The direction opposite to the shift
// gets NoValue.  The magnitude only encodes the proportion between the
// horizontal and vertical shift.
func EyeShift(cur, prev, room mat32.Vec2) (left, right, up, down float32) {
	half := room.MulScalar(0.5)
	sx := (cur.X - prev.X) / half.X
	sy := (cur.Y - prev.Y) / half.Y

	left, right = -sx, receptive.NoValue
	if sx > 0 {
		left, right = receptive.NoValue, sx
	}
	up, down = -sy, receptive.NoValue
	if sy > 0 {
		up, down = receptive.NoValue, sy
	}
	hor := right
	if left > 0 {
		hor = left
	}
	vert := up
	if down > 0 {
		vert = down
	}
	ratio := float32(10)
	if vert > 0 {
		ratio = hor / vert
	}

	var henc, venc float32
	switch {
	case ratio >= 0.66 && ratio <= 1.66:
		henc, venc = 1, 1
	case ratio > 1.66 && ratio <= 3:
		henc, venc = 1, 0.5
	case ratio > 3:
		henc, venc = 1, 0
	case ratio >= 0.33 && ratio < 0.66:
		henc, venc = 0.5, 1
	default:
		henc, venc = 0, 1
	}
	enc := func(v, e float32) float32 {
		if v >= 0 {
			return unitClamp(e)
		}
		return receptive.NoValue
	}
	return enc(left, henc), enc(right, henc), enc(up, venc), enc(down, venc)
}
