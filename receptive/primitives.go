// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package receptive

import (
	"fmt"

	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/sdr"
)

// AngleMargins are the upper bounds, in degrees, of the angle categories
var AngleMargins = []float32{22.5, 45, 67.5, 90, 110.5, 135, 157.5, 180}

const (
	// NSectors is the number of quadrants of a shape presentation
	NSectors = 4

	// MaxMass is the maximum mass counted per angle category
	MaxMass = 2

	// PrimitivesSpace is the output space size of a PrimitivesArea
	PrimitivesSpace = 8 * (MaxMass + 1) * NSectors
)

// Segment is a contour segment of a body shape
type Segment struct {
	Angle float32 `json:"angle" desc:"angle of the segment in degrees, in [0, 180]"`
	Mass  int     `json:"mass" desc:"relative length of the segment"`
}

// Presentation is the shape of a body as seen from its center: the contour
// segments falling in each of its quadrants.
type Presentation struct {
	Quadrants [][]Segment `json:"quadrants"`
}

// Equal returns true if both presentations have the same segments
func (pr *Presentation) Equal(o *Presentation) bool {
	if pr == nil || o == nil {
		return pr == o
	}
	if len(pr.Quadrants) != len(o.Quadrants) {
		return false
	}
	for qi, q := range pr.Quadrants {
		oq := o.Quadrants[qi]
		if len(q) != len(oq) {
			return false
		}
		for si := range q {
			if q[si] != oq[si] {
				return false
			}
		}
	}
	return true
}

// AngleCategory returns the index of the first margin at or above angle
func AngleCategory(angle float32) (int, error) {
	for i, mg := range AngleMargins {
		if angle <= mg {
			return i, nil
		}
	}
	return 0, fmt.Errorf("angle: %v: %w", angle, ErrInvalidAngle)
}

// PrimitivesArea encodes a body shape as, for each quadrant and angle
// category, the total mass of segments with that angle, capped at MaxMass.
// Every presentation thus has one active index per (quadrant, category).
type PrimitivesArea struct {
	neuro.AreaStru
}

// NewPrimitivesArea returns a new primitives area
func NewPrimitivesArea(name string) *PrimitivesArea {
	pa := &PrimitivesArea{}
	pa.InitName(name, neuro.AreaReceptive)
	pa.OutSpace = PrimitivesSpace
	pa.OutNorm = len(AngleMargins) * NSectors
	return pa
}

// Encode returns the active indices of given presentation
func (pa *PrimitivesArea) Encode(pres *Presentation) ([]int, error) {
	if len(pres.Quadrants) > NSectors {
		return nil, fmt.Errorf("PrimitivesArea %v: %d quadrants, max %d", pa.Nm, len(pres.Quadrants), NSectors)
	}
	qspace := PrimitivesSpace / NSectors
	nang := len(AngleMargins)
	idxs := make([]int, 0, nang*len(pres.Quadrants))
	for qi, q := range pres.Quadrants {
		mass := make([]int, nang)
		for _, sg := range q {
			cat, err := AngleCategory(sg.Angle)
			if err != nil {
				return nil, fmt.Errorf("PrimitivesArea %v: %w", pa.Nm, err)
			}
			if mass[cat] < MaxMass {
				mass[cat] += sg.Mass
				if mass[cat] > MaxMass {
					mass[cat] = MaxMass
				}
			}
		}
		for ai, ms := range mass {
			idxs = append(idxs, qi*qspace+ai*(MaxMass+1)+ms)
		}
	}
	return idxs, nil
}

// Activate sets the output to the encoding of the presentation of a body
func (pa *PrimitivesArea) Activate(pres *Presentation, body string) error {
	idxs, err := pa.Encode(pres)
	if err != nil {
		return err
	}
	if len(idxs) == 0 {
		pa.Output = nil
		return nil
	}
	pt := pa.Store().FindOrCreate(PrimitivesSpace, idxs, nil, pa.ID)
	pt.Data = sdr.Data{pa.Nm: body}
	pa.SetOutput(pt)
	return nil
}
