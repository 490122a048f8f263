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
	"fmt"
	"math"
)

func assert(cond bool) {
	if !cond {
		panic("ocl: assertion error")
	}
}

// collinearEps bounds the normalized xy cross product below which
// three consecutive boundary vertices count as collinear.
const collinearEps = 1e-9

// Subdivide refines every inner face of the surface into four
// sub-quads. The face list is snapshotted before the pass, so faces
// created by the pass are not split again within it. The outer face is
// never subdivided. When a minimum sampling length is set, faces whose
// edges are already shorter are left alone.
//
// Returns the number of faces subdivided.
func (s *CutterLocationSurface) Subdivide() int {
	n := 0
	for _, f := range s.g.Faces() {
		if f == s.outFace {
			continue
		}
		if s.minSampling > 0 && s.longestEdge(f) < s.minSampling {
			continue
		}
		s.SubdivideFace(f)
		n++
	}
	return n
}

// SubdivideFace splits the quadrilateral inner face f into four
// sub-quads:
//
//	c2 --- m1 --- c1          c2 --- m1 --- c1
//	|             |           |  f2  |  f1  |
//	m2     z      m0    ->    m2 --- z ---- m0
//	|             |           |  f3  |  f   |
//	c3 --- m3 --- c0          c3 --- m3 --- c0
//
// A midpoint vertex is inserted in each of the four sides, a center
// vertex z is created at the mean of the four corners, and z is
// connected to the midpoints with four new half-edge pairs. f keeps
// one sub-quad; three new faces are registered for the others. Every
// resulting half-edge has its face updated so that all four sub-quads
// are valid quads.
//
// Subdividing a face splits the edges it shares with its neighbors, so
// a neighboring quad temporarily carries extra boundary vertices
// (T-vertices) until its own subdivision. f is therefore required to
// have exactly four corners, where a corner is a boundary vertex at
// which the boundary turns in the xy-plane; midpoints already present
// on a side are reused instead of inserted. Passing the outer face or
// a face without exactly four corners is a programming error and
// panics before any mutation.
func (s *CutterLocationSurface) SubdivideFace(f FaceID) {
	s.subdivideFace(f)
}

// subdivideFace returns the four sub-quads: f itself and the three new
// faces. Refine uses these to requeue refinement candidates.
func (s *CutterLocationSurface) subdivideFace(f FaceID) [4]FaceID {
	g := s.g
	if f == s.outFace {
		panic("ocl: SubdivideFace: cannot subdivide the outer face")
	}
	boundary := g.FaceEdges(f)
	if len(boundary) < 4 || len(boundary) > 8 {
		panic(fmt.Sprintf("ocl: SubdivideFace: face %d has %d sides, want a quadrilateral", f, len(boundary)))
	}
	isCorner := s.faceCorners(boundary)
	if len(isCorner) != 4 {
		panic(fmt.Sprintf("ocl: SubdivideFace: face %d has %d corners, want 4", f, len(isCorner)))
	}

	// The center is the mean of the four corners.
	var center Point
	for c := range isCorner {
		center = center.Add(g.Position(c).Mul(0.25))
	}

	// Insert a midpoint vertex in every side that does not have one
	// yet. A side already split by a neighboring subdivision keeps its
	// existing midpoint.
	for _, e := range boundary {
		src := g.Source(e)
		trg := g.Target(e)
		if isCorner[src] && isCorner[trg] {
			m := g.AddVertex(g.Position(src).Mid(g.Position(trg)))
			g.InsertVertexInEdge(m, e)
		}
	}

	// The boundary now alternates corner->midpoint and
	// midpoint->corner half-edges. Rotate the ring to start at a
	// corner.
	ring := g.FaceEdges(f)
	assert(len(ring) == 8)
	start := -1
	for i, e := range ring {
		if isCorner[g.Source(e)] {
			start = i
			break
		}
	}
	assert(start >= 0)
	ring = append(ring[start:], ring[:start]...)
	z := g.AddVertex(center)

	// Connect the center to the four midpoints.
	var spokeIn, spokeOut [4]EdgeID // m[i] -> z and z -> m[i]
	for i := 0; i < 4; i++ {
		m := g.Target(ring[2*i])
		assert(!isCorner[m])
		spokeIn[i] = g.AddEdge(m, z)
		spokeOut[i] = g.AddEdge(z, m)
		g.TwinEdges(spokeIn[i], spokeOut[i])
	}

	// Close the four sub-quads. Sub-quad i is bounded by the two
	// half-sides meeting at corner i plus one spoke in each direction:
	// m[i-1] -> c[i] -> m[i] -> z -> m[i-1].
	var faces [4]FaceID
	faces[0] = f
	for i := 1; i < 4; i++ {
		faces[i] = g.AddFace()
	}
	for i := 0; i < 4; i++ {
		eIn := ring[(2*i+7)%8]  // m[i-1] -> c[i]
		eOut := ring[2*i]       // c[i] -> m[i]
		back := spokeOut[(i+3)%4]

		g.SetNext(eIn, eOut)
		g.SetNext(eOut, spokeIn[i])
		g.SetNext(spokeIn[i], back)
		g.SetNext(back, eIn)

		g.SetFace(eIn, faces[i])
		g.SetFace(eOut, faces[i])
		g.SetFace(spokeIn[i], faces[i])
		g.SetFace(back, faces[i])
		g.SetFaceEdge(faces[i], eOut)
	}
	return faces
}

// faceCorners classifies the boundary vertices of a face. A vertex is
// a corner when the boundary turns at it in the xy-plane; T-vertices
// left by neighboring subdivisions are collinear with their boundary
// neighbors and are excluded. Classification ignores z so that sampled
// heights do not affect it.
func (s *CutterLocationSurface) faceCorners(boundary []EdgeID) map[VertexID]bool {
	g := s.g
	corners := make(map[VertexID]bool)
	n := len(boundary)
	for i, e := range boundary {
		prev := g.Position(g.Source(e))
		cur := g.Position(g.Target(e))
		next := g.Position(g.Target(boundary[(i+1)%n]))

		ax := cur.X - prev.X
		ay := cur.Y - prev.Y
		bx := next.X - cur.X
		by := next.Y - cur.Y
		cross := ax*by - ay*bx
		if math.Abs(cross) > collinearEps*math.Hypot(ax, ay)*math.Hypot(bx, by) {
			corners[g.Target(e)] = true
		}
	}
	return corners
}

// longestEdge returns the length of the longest boundary edge of f,
// measured in the xy-plane so that sampled heights do not influence
// refinement.
func (s *CutterLocationSurface) longestEdge(f FaceID) float64 {
	longest := 0.0
	for _, e := range s.g.FaceEdges(f) {
		src := s.g.Position(s.g.Source(e))
		trg := s.g.Position(s.g.Target(e))
		if l := src.XYDistance(trg); l > longest {
			longest = l
		}
	}
	return longest
}
