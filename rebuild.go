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

// segmentKey identifies a directed segment by its exact endpoint
// positions.
type segmentKey struct {
	a, b Point
}

// edgeTable maps directed endpoint pairs to half-edges, so that a
// half-edge can be paired with its opposite direction as soon as both
// have been seen.
type edgeTable map[segmentKey]EdgeID

// ReconstructDiagram rebuilds a diagram from exported edge segments,
// as produced by CutterLocationSurface.Edges. Vertices are deduplicated
// by exact position, one half-edge is created per segment, and
// half-edges with mirrored endpoints are twinned.
//
// The result carries the full twin adjacency of the original diagram
// but no face structure: next pointers and faces are left unset.
func ReconstructDiagram(segments [][2]Point) *Diagram {
	d := NewDiagram()
	verts := make(map[Point]VertexID)
	vertexOf := func(p Point) VertexID {
		if v, ok := verts[p]; ok {
			return v
		}
		v := d.AddVertex(p)
		verts[p] = v
		return v
	}

	table := make(edgeTable)
	for _, seg := range segments {
		src := vertexOf(seg[0])
		trg := vertexOf(seg[1])
		e := d.AddEdge(src, trg)
		table[segmentKey{a: seg[0], b: seg[1]}] = e
		if t, ok := table[segmentKey{a: seg[1], b: seg[0]}]; ok && d.Twin(t) == NoEdge {
			d.TwinEdges(e, t)
		}
	}
	return d
}
