// Copyright 2010-2011 Anders Wallin (anders.e.e.wallin "at" gmail.com)
//
// This file is part of OpenCAMlib
// (see https://github.com/aewallin/opencamlib).
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 2.1 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package ocl

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoIntersection is returned by a HeightSampler when no surface
// contact exists above the query point. It marks a recoverable
// sampling-domain miss: the vertex stays unsampled and the pass
// continues.
var ErrNoIntersection = errors.New("ocl: no intersection")

// HeightSampler computes the cutter contact height above a point in
// the xy-plane. Implementations are typically drop-cutter algorithms
// projecting a tool shape onto a model surface; the surface core
// depends only on this signature.
type HeightSampler interface {
	// Sample returns the contact height z above (x, y), or
	// ErrNoIntersection when the surface has no contact point there.
	Sample(x, y float64) (float64, error)
}

// HeightSamplerFunc adapts an ordinary function to the HeightSampler
// interface.
type HeightSamplerFunc func(x, y float64) (float64, error)

// Sample calls fn(x, y).
func (fn HeightSamplerFunc) Sample(x, y float64) (float64, error) {
	return fn(x, y)
}

// SphereSampler samples the upper hemisphere of a sphere. Queries
// outside the sphere's footprint miss with ErrNoIntersection. It
// stands in for a real drop-cutter projection in tests and examples.
type SphereSampler struct {
	Center Point
	Radius float64
}

// Sample returns the height of the upper hemisphere above (x, y).
func (s SphereSampler) Sample(x, y float64) (float64, error) {
	dx := x - s.Center.X
	dy := y - s.Center.Y
	rr := s.Radius*s.Radius - dx*dx - dy*dy
	if rr < 0 {
		return 0, ErrNoIntersection
	}
	return s.Center.Z + math.Sqrt(rr), nil
}

// SampleHeights projects every vertex of the surface onto the sampled
// geometry: each vertex at (x, y) is moved to z = h.Sample(x, y). A
// vertex whose sample misses keeps its current z and the pass
// continues with the remaining vertices; the number of misses is
// returned. Any error other than ErrNoIntersection aborts the pass.
//
// The mesh topology is unaffected; only vertex z-coordinates change.
func (s *CutterLocationSurface) SampleHeights(h HeightSampler) (int, error) {
	misses := 0
	for _, v := range s.g.Vertices() {
		p := s.g.Position(v)
		z, err := h.Sample(p.X, p.Y)
		if err != nil {
			if errors.Is(err, ErrNoIntersection) {
				misses++
				continue
			}
			return misses, fmt.Errorf("ocl: sampling vertex %d at (%g, %g): %w", s.g.VertexIndex(v), p.X, p.Y, err)
		}
		s.g.SetPosition(v, Pt(p.X, p.Y, z))
	}
	return misses, nil
}
