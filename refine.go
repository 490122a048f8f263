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

import "container/heap"

type faceQueueItem struct {
	face    FaceID
	longest float64 // longest xy edge length when queued
}

// faceQueue is a max-heap of refinement candidates ordered
// longest-edge-first.
type faceQueue []faceQueueItem

func (q faceQueue) Len() int {
	return len(q)
}

func (q faceQueue) Less(i, j int) bool {
	return q[i].longest > q[j].longest
}

func (q faceQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *faceQueue) Push(x interface{}) {
	*q = append(*q, x.(faceQueueItem))
}

func (q *faceQueue) Pop() interface{} {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]
	return x
}

// Refine subdivides inner faces until every inner face's edges are
// shorter than the minimum sampling length. Faces are processed
// longest-edge-first through a priority queue, and each subdivision
// requeues the four resulting sub-quads, so refinement stops per face
// exactly when it falls below the threshold.
//
// A positive minimum sampling length must be configured first;
// refining without one is a programming error and panics.
//
// Returns the number of faces subdivided.
func (s *CutterLocationSurface) Refine() int {
	if s.minSampling <= 0 {
		panic("ocl: Refine: minimum sampling length not set")
	}

	q := &faceQueue{}
	for _, f := range s.g.Faces() {
		if f == s.outFace {
			continue
		}
		if l := s.longestEdge(f); l >= s.minSampling {
			*q = append(*q, faceQueueItem{face: f, longest: l})
		}
	}
	heap.Init(q)

	n := 0
	for q.Len() > 0 {
		it := heap.Pop(q).(faceQueueItem)
		// The queue may hold stale entries for faces that were already
		// split; re-measure before committing to a subdivision.
		if s.longestEdge(it.face) < s.minSampling {
			continue
		}
		for _, f := range s.subdivideFace(it.face) {
			if l := s.longestEdge(f); l >= s.minSampling {
				heap.Push(q, faceQueueItem{face: f, longest: l})
			}
		}
		n++
	}
	return n
}
