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

import "fmt"

// CutterLocationSurface is an adaptively refined planar quad mesh whose
// vertices serve as (x, y) sample points for drop-cutter height queries.
//
// The surface starts as a single square of half-width far in the z=0
// plane, with one bounded inner face and one unbounded outer face.
// Subdivision refines inner faces only; the outer face is never split.
//
// A surface exclusively owns its diagram. All operations are
// single-threaded; no method may be called concurrently with a
// mutation.
type CutterLocationSurface struct {
	g           *Diagram
	far         float64
	minSampling float64
	outFace     FaceID
}

// Option configures a CutterLocationSurface during creation.
type Option func(*CutterLocationSurface)

// WithFar sets the half-width of the initial square. The default is 1.0.
func WithFar(far float64) Option {
	return func(s *CutterLocationSurface) {
		s.far = far
	}
}

// WithMinSampling sets the minimum sampling edge length. See
// SetMinSampling.
func WithMinSampling(minSampling float64) Option {
	return func(s *CutterLocationSurface) {
		s.minSampling = minSampling
	}
}

// NewCutterLocationSurface creates the initial bounded square:
// 4 corner vertices at (±far, ±far, 0), 8 half-edges and 2 faces.
func NewCutterLocationSurface(opts ...Option) *CutterLocationSurface {
	s := &CutterLocationSurface{
		g:   NewDiagram(),
		far: 1.0,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.far <= 0 {
		panic(fmt.Sprintf("ocl: NewCutterLocationSurface: far must be positive, got %g", s.far))
	}
	s.init()
	return s
}

// init builds the initial square.
//
//	b  e1  a
//	e2     e4
//	c  e3  d
//
// The inner ring a-b-c-d runs counterclockwise, the outer ring is its
// mirror. Each corner is assigned exactly once.
func (s *CutterLocationSurface) init() {
	g := s.g
	a := g.AddVertex(Pt(s.far, s.far, 0))
	b := g.AddVertex(Pt(-s.far, s.far, 0))
	c := g.AddVertex(Pt(-s.far, -s.far, 0))
	d := g.AddVertex(Pt(s.far, -s.far, 0))

	fInner := g.AddFace()
	fOuter := g.AddFace()
	s.outFace = fOuter

	e1 := g.AddEdge(a, b)
	e1t := g.AddEdge(b, a)
	e2 := g.AddEdge(b, c)
	e2t := g.AddEdge(c, b)
	e3 := g.AddEdge(c, d)
	e3t := g.AddEdge(d, c)
	e4 := g.AddEdge(d, a)
	e4t := g.AddEdge(a, d)

	g.TwinEdges(e1, e1t)
	g.TwinEdges(e2, e2t)
	g.TwinEdges(e3, e3t)
	g.TwinEdges(e4, e4t)

	g.SetFaceEdge(fInner, e1)
	g.SetFaceEdge(fOuter, e1t)

	// inner face
	g.SetFace(e1, fInner)
	g.SetFace(e2, fInner)
	g.SetFace(e3, fInner)
	g.SetFace(e4, fInner)
	g.SetNext(e1, e2)
	g.SetNext(e2, e3)
	g.SetNext(e3, e4)
	g.SetNext(e4, e1)

	// outer face, reverse orientation
	g.SetFace(e1t, fOuter)
	g.SetFace(e2t, fOuter)
	g.SetFace(e3t, fOuter)
	g.SetFace(e4t, fOuter)
	g.SetNext(e1t, e4t)
	g.SetNext(e4t, e3t)
	g.SetNext(e3t, e2t)
	g.SetNext(e2t, e1t)
}

// SetMinSampling sets the target minimum edge length. Subdivide skips
// faces whose edges are already shorter than this, and Refine stops
// refining a face once its edges fall below it.
func (s *CutterLocationSurface) SetMinSampling(minSampling float64) {
	s.minSampling = minSampling
}

// MinSampling returns the configured minimum sampling edge length.
// Zero means no limit is set.
func (s *CutterLocationSurface) MinSampling() float64 {
	return s.minSampling
}

// Far returns the half-width of the initial square.
func (s *CutterLocationSurface) Far() float64 {
	return s.far
}

// Diagram exposes the underlying half-edge diagram for read-only
// traversal. Mutating it directly bypasses the surface invariants.
func (s *CutterLocationSurface) Diagram() *Diagram {
	return s.g
}

// OuterFace returns the unbounded outer face. It is never subdivided.
func (s *CutterLocationSurface) OuterFace() FaceID {
	return s.outFace
}

// Vertices returns the positions of all vertices. Existing vertices
// keep their relative order across mutations; new vertices appear at
// the end.
func (s *CutterLocationSurface) Vertices() []Point {
	ids := s.g.Vertices()
	pts := make([]Point, len(ids))
	for i, v := range ids {
		pts[i] = s.g.Position(v)
	}
	return pts
}

// Edges returns the endpoint positions of every half-edge, one pair
// per half-edge. Both directions of an undirected edge appear; callers
// that need one entry per undirected edge can deduplicate via twin
// identity on the diagram.
func (s *CutterLocationSurface) Edges() [][2]Point {
	ids := s.g.Edges()
	segs := make([][2]Point, len(ids))
	for i, e := range ids {
		segs[i] = [2]Point{
			s.g.Position(s.g.Source(e)),
			s.g.Position(s.g.Target(e)),
		}
	}
	return segs
}

// String returns a diagnostics summary of the surface.
func (s *CutterLocationSurface) String() string {
	return fmt.Sprintf("%d vertices, %d edges", s.g.NumVertices(), s.g.NumEdges())
}
