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

// VertexID identifies a vertex in a Diagram.
type VertexID int

// EdgeID identifies a directed half-edge in a Diagram.
type EdgeID int

// FaceID identifies a face in a Diagram.
type FaceID int

// NoVertex, NoEdge and NoFace mark unset references.
const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

type vertexRecord struct {
	position Point
	index    int
	alive    bool
}

// edgeRecord is one directed half-edge. Following next traverses the
// boundary of face counterclockwise; twin is the half-edge with the
// same endpoints and opposite direction, owned by the adjacent face.
type edgeRecord struct {
	src, trg VertexID
	next     EdgeID
	twin     EdgeID
	face     FaceID
	alive    bool
}

type faceRecord struct {
	edge  EdgeID // anchor half-edge, traversal starts here
	alive bool
}

// Diagram is a half-edge diagram (doubly connected edge list).
//
// Vertices, half-edges and faces live in index-stable arenas and are
// addressed by integer handles. Slots of removed half-edges are
// recycled through a free-list, so handles stay valid across mutations
// except for the elements a mutation explicitly removes. Vertex
// indices come from a counter scoped to the diagram instance.
type Diagram struct {
	vertices []vertexRecord
	edges    []edgeRecord
	faces    []faceRecord

	freeEdges []EdgeID

	numVertices int
	numEdges    int
	numFaces    int

	vertexCount int
}

// NewDiagram creates an empty diagram with no vertices, no half-edges
// and no faces.
func NewDiagram() *Diagram {
	return &Diagram{}
}

// AddVertex creates an isolated vertex at position p. No topology is
// implied; the vertex is connected by subsequent AddEdge calls.
func (d *Diagram) AddVertex(p Point) VertexID {
	v := VertexID(len(d.vertices))
	d.vertices = append(d.vertices, vertexRecord{
		position: p,
		index:    d.vertexCount,
		alive:    true,
	})
	d.vertexCount++
	d.numVertices++
	return v
}

// AddEdge creates one directed half-edge from src to trg. The caller
// must separately create the opposite half-edge and link the two with
// TwinEdges before the current edge operation is completed.
func (d *Diagram) AddEdge(src, trg VertexID) EdgeID {
	assert(d.vertexAlive(src) && d.vertexAlive(trg))
	rec := edgeRecord{
		src:   src,
		trg:   trg,
		next:  NoEdge,
		twin:  NoEdge,
		face:  NoFace,
		alive: true,
	}
	d.numEdges++
	if n := len(d.freeEdges); n > 0 {
		e := d.freeEdges[n-1]
		d.freeEdges = d.freeEdges[:n-1]
		d.edges[e] = rec
		return e
	}
	e := EdgeID(len(d.edges))
	d.edges = append(d.edges, rec)
	return e
}

// AddFace creates a face with no boundary. The anchor half-edge is
// assigned with SetFaceEdge once the boundary exists.
func (d *Diagram) AddFace() FaceID {
	f := FaceID(len(d.faces))
	d.faces = append(d.faces, faceRecord{edge: NoEdge, alive: true})
	d.numFaces++
	return f
}

// TwinEdges records e and et as mutual twins. The two half-edges must
// share endpoints in opposite directions and must not be twinned
// already; a violation is a programming error and panics.
func (d *Diagram) TwinEdges(e, et EdgeID) {
	assert(d.edgeAlive(e) && d.edgeAlive(et))
	if d.edges[e].twin != NoEdge || d.edges[et].twin != NoEdge {
		panic(fmt.Sprintf("ocl: TwinEdges: edge %d or %d already has a twin", e, et))
	}
	assert(d.edges[e].src == d.edges[et].trg && d.edges[e].trg == d.edges[et].src)
	d.edges[e].twin = et
	d.edges[et].twin = e
}

// Source returns the origin vertex of half-edge e.
func (d *Diagram) Source(e EdgeID) VertexID {
	assert(d.edgeAlive(e))
	return d.edges[e].src
}

// Target returns the destination vertex of half-edge e.
func (d *Diagram) Target(e EdgeID) VertexID {
	assert(d.edgeAlive(e))
	return d.edges[e].trg
}

// Twin returns the twin of half-edge e, or NoEdge if not yet linked.
func (d *Diagram) Twin(e EdgeID) EdgeID {
	assert(d.edgeAlive(e))
	return d.edges[e].twin
}

// Next returns the half-edge following e counterclockwise around its face.
func (d *Diagram) Next(e EdgeID) EdgeID {
	assert(d.edgeAlive(e))
	return d.edges[e].next
}

// Face returns the face that half-edge e bounds.
func (d *Diagram) Face(e EdgeID) FaceID {
	assert(d.edgeAlive(e))
	return d.edges[e].face
}

// SetNext links n as the next half-edge after e around their common face.
func (d *Diagram) SetNext(e, n EdgeID) {
	assert(d.edgeAlive(e) && d.edgeAlive(n))
	d.edges[e].next = n
}

// SetFace assigns half-edge e to face f.
func (d *Diagram) SetFace(e EdgeID, f FaceID) {
	assert(d.edgeAlive(e) && d.faceAlive(f))
	d.edges[e].face = f
}

// SetFaceEdge assigns e as the anchor half-edge of face f.
func (d *Diagram) SetFaceEdge(f FaceID, e EdgeID) {
	assert(d.faceAlive(f) && d.edgeAlive(e))
	d.faces[f].edge = e
}

// FaceEdge returns the anchor half-edge of face f.
func (d *Diagram) FaceEdge(f FaceID) EdgeID {
	assert(d.faceAlive(f))
	return d.faces[f].edge
}

// Position returns the position of vertex v.
func (d *Diagram) Position(v VertexID) Point {
	assert(d.vertexAlive(v))
	return d.vertices[v].position
}

// SetPosition moves vertex v to position p. The diagram topology is
// unaffected.
func (d *Diagram) SetPosition(v VertexID, p Point) {
	assert(d.vertexAlive(v))
	d.vertices[v].position = p
}

// VertexIndex returns the creation index of vertex v. Indices increase
// monotonically per diagram.
func (d *Diagram) VertexIndex(v VertexID) int {
	assert(d.vertexAlive(v))
	return d.vertices[v].index
}

// NumVertices returns the number of vertices in the diagram.
func (d *Diagram) NumVertices() int { return d.numVertices }

// NumEdges returns the number of half-edges in the diagram.
func (d *Diagram) NumEdges() int { return d.numEdges }

// NumFaces returns the number of faces in the diagram.
func (d *Diagram) NumFaces() int { return d.numFaces }

// Vertices returns the vertices of the diagram. Existing vertices keep
// their relative order across mutations; new vertices appear at the end.
func (d *Diagram) Vertices() []VertexID {
	vs := make([]VertexID, 0, d.numVertices)
	for i := range d.vertices {
		if d.vertices[i].alive {
			vs = append(vs, VertexID(i))
		}
	}
	return vs
}

// Edges returns the half-edges of the diagram in arena slot order.
// Slots of removed half-edges may be reused, so no global ordering is
// guaranteed across mutations.
func (d *Diagram) Edges() []EdgeID {
	es := make([]EdgeID, 0, d.numEdges)
	for i := range d.edges {
		if d.edges[i].alive {
			es = append(es, EdgeID(i))
		}
	}
	return es
}

// Faces returns the faces of the diagram in creation order.
func (d *Diagram) Faces() []FaceID {
	fs := make([]FaceID, 0, d.numFaces)
	for i := range d.faces {
		if d.faces[i].alive {
			fs = append(fs, FaceID(i))
		}
	}
	return fs
}

// FaceEdges returns the boundary half-edges of face f in order,
// starting from the anchor and following next until the cycle closes.
// The length of the result is the side count of f. Panics if the cycle
// does not close within the number of half-edges in the diagram, which
// means the topology is corrupt.
func (d *Diagram) FaceEdges(f FaceID) []EdgeID {
	assert(d.faceAlive(f))
	start := d.faces[f].edge
	assert(d.edgeAlive(start))

	var out []EdgeID
	e := start
	for {
		if d.edges[e].face != f {
			panic(fmt.Sprintf("ocl: FaceEdges: half-edge %d on face %d boundary belongs to face %d", e, f, d.edges[e].face))
		}
		out = append(out, e)
		e = d.edges[e].next
		if e == start {
			return out
		}
		if !d.edgeAlive(e) || len(out) > d.numEdges {
			panic(fmt.Sprintf("ocl: FaceEdges: next-cycle of face %d does not close", f))
		}
	}
}

// InsertVertexInEdge splits the undirected edge represented by e and
// its twin at vertex v. The pair (e, twin) is removed and two new
// half-edge pairs take its place: src-v and v-trg on e's face, and the
// mirrored pair on the twin's face. The next pointers of the
// neighboring half-edges that referenced e or its twin are rewired,
// and face anchors that pointed at the removed pair are moved to the
// replacements.
//
// The split is atomic: all preconditions are checked and the complete
// rewiring is computed before the first write, so a panic on corrupt
// input leaves the diagram untouched.
func (d *Diagram) InsertVertexInEdge(v VertexID, e EdgeID) {
	// Stage: collect the whole neighborhood, validating as we go.
	assert(d.vertexAlive(v))
	assert(d.edgeAlive(e))
	et := d.edges[e].twin
	if et == NoEdge {
		panic(fmt.Sprintf("ocl: InsertVertexInEdge: half-edge %d has no twin", e))
	}
	assert(d.edgeAlive(et) && d.edges[et].twin == e)

	f1 := d.edges[e].face
	f2 := d.edges[et].face
	assert(d.faceAlive(f1) && d.faceAlive(f2))

	src := d.edges[e].src
	trg := d.edges[e].trg
	eNext := d.edges[e].next
	etNext := d.edges[et].next
	ePrev := d.facePredecessor(e)   // panics if the f1 cycle is corrupt
	etPrev := d.facePredecessor(et) // panics if the f2 cycle is corrupt

	// Commit: nothing below can fail on a diagram that passed staging.
	d.removeEdge(e)
	d.removeEdge(et)

	e1 := d.AddEdge(src, v) // src -> v on f1
	e2 := d.AddEdge(v, trg) // v -> trg on f1
	t1 := d.AddEdge(trg, v) // trg -> v on f2
	t2 := d.AddEdge(v, src) // v -> src on f2
	d.TwinEdges(e1, t2)
	d.TwinEdges(e2, t1)

	d.edges[e1].face = f1
	d.edges[e2].face = f1
	d.edges[t1].face = f2
	d.edges[t2].face = f2

	d.edges[e1].next = e2
	d.edges[e2].next = eNext
	d.edges[t1].next = t2
	d.edges[t2].next = etNext
	if ePrev == et {
		// Degenerate two-sided face: the predecessor was the twin we
		// just replaced.
		d.edges[t2].next = e1
	} else {
		d.edges[ePrev].next = e1
	}
	if etPrev == e {
		d.edges[e2].next = t1
	} else {
		d.edges[etPrev].next = t1
	}

	if d.faces[f1].edge == e {
		d.faces[f1].edge = e1
	}
	if d.faces[f2].edge == et {
		d.faces[f2].edge = t1
	}
}

// facePredecessor returns the half-edge whose next pointer is e,
// walking the boundary of e's face.
func (d *Diagram) facePredecessor(e EdgeID) EdgeID {
	p := e
	for n := 0; ; n++ {
		next := d.edges[p].next
		if next == e {
			return p
		}
		if !d.edgeAlive(next) || n > d.numEdges {
			panic(fmt.Sprintf("ocl: next-cycle through half-edge %d does not close", e))
		}
		p = next
	}
}

// removeEdge marks a half-edge slot dead and recycles it.
func (d *Diagram) removeEdge(e EdgeID) {
	assert(d.edgeAlive(e))
	d.edges[e] = edgeRecord{next: NoEdge, twin: NoEdge, face: NoFace}
	d.freeEdges = append(d.freeEdges, e)
	d.numEdges--
}

// Check verifies the diagram for self-consistency and panics on the
// first violation. For every half-edge, twin(twin(e)) == e with
// mirrored endpoints, the next half-edge continues from the target and
// stays on the same face; every face boundary closes back on its
// anchor; the side counts of all faces sum to the number of
// half-edges.
func (d *Diagram) Check() {
	edges := 0
	for i := range d.edges {
		if !d.edges[i].alive {
			continue
		}
		edges++
		e := EdgeID(i)
		et := d.edges[e].twin
		assert(et != NoEdge && et != e)
		assert(d.edgeAlive(et))
		assert(d.edges[et].twin == e)
		assert(d.edges[e].src == d.edges[et].trg)
		assert(d.edges[e].trg == d.edges[et].src)

		next := d.edges[e].next
		assert(next != NoEdge)
		assert(d.edgeAlive(next))
		assert(d.edges[next].src == d.edges[e].trg)
		assert(d.edges[next].face == d.edges[e].face)
		assert(d.faceAlive(d.edges[e].face))
		assert(d.vertexAlive(d.edges[e].src))
		assert(d.vertexAlive(d.edges[e].trg))
	}
	assert(edges == d.numEdges)

	sides := 0
	faces := 0
	for i := range d.faces {
		if !d.faces[i].alive {
			continue
		}
		faces++
		f := FaceID(i)
		boundary := d.FaceEdges(f)
		assert(d.edges[d.faces[f].edge].face == f)
		sides += len(boundary)
	}
	assert(faces == d.numFaces)
	assert(sides == d.numEdges)

	verts := 0
	for i := range d.vertices {
		if d.vertices[i].alive {
			verts++
		}
	}
	assert(verts == d.numVertices)
}

func (d *Diagram) vertexAlive(v VertexID) bool {
	return v >= 0 && int(v) < len(d.vertices) && d.vertices[v].alive
}

func (d *Diagram) edgeAlive(e EdgeID) bool {
	return e >= 0 && int(e) < len(d.edges) && d.edges[e].alive
}

func (d *Diagram) faceAlive(f FaceID) bool {
	return f >= 0 && int(f) < len(d.faces) && d.faces[f].alive
}
