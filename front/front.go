// Copyright 2026 The mesh2d Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package front

import (
	"sort"

	"github.com/pkg/errors"
)

// Front is the advancing boundary of a mesh generation run: an edge
// loop seeded from a domain's boundaries and consumed edge by edge by an
// external advancement algorithm. The front keeps the loop topologically
// consistent across mutations; deciding where to advance is the caller's
// job, via the base cursor and the sorting protocol.
//
// The base cursor is a non-owning reference into the loop. Removing the
// edge it points at revalidates it, so the cursor never dangles.
type Front struct {
	*EdgeLoop
	base *Edge
}

// NewFront builds the advancing front from the domain's boundary loops
// and immediately refines it once against the domain's size field, so
// that long boundary segments are densified before any advancement
// begins. Vertices created by refinement go into the supplied store.
//
// The first vertex of every copied boundary edge is fixed, so later
// smoothing passes cannot move the original geometry, and both endpoints
// are tagged as boundary vertices.
//
// A valid domain encloses a positive net area: a counter-clockwise
// exterior with clockwise holes. NewFront fails with ErrBadOrientation
// when the copied boundaries wind a non-positive net area; that is a
// caller bug in the supplied domain, not a recoverable condition.
func NewFront(domain *Domain, vertices *Vertices) (*Front, error) {
	f := &Front{}
	f.EdgeLoop = NewEdgeLoop(LoopOptions{
		Orientation: OrientationNone,
		OnInsert:    f.markOnFront,
	})

	for _, b := range domain.Boundaries() {
		for _, e := range b.Edges() {
			e.V1.Fixed = true

			eNew, err := f.Add(e.V1, e.V2, e.Marker)
			if err != nil {
				return nil, err
			}
			eNew.V1.OnBoundary = true
			eNew.V2.OnBoundary = true
		}
	}

	f.ComputeArea()
	if f.Area() <= 0 {
		return nil, errors.Wrap(ErrBadOrientation, "domain boundaries enclose a non-positive net area")
	}

	added := f.Refine(domain, vertices)
	logger().Debug("front constructed", "edges", f.Len(), "refined", added, "area", f.Area())
	return f, nil
}

// markOnFront is the loop insertion hook: every vertex entering the
// front is tagged as part of it.
func (f *Front) markOnFront(v1, v2 *Vertex, e *Edge) {
	v1.OnFront = true
	v2.OnFront = true
}

// Base returns the current edge of interest, or nil when unset.
func (f *Front) Base() *Edge { return f.base }

// SetBase points the cursor at e, which should be owned by the front.
func (f *Front) SetBase(e *Edge) { f.base = e }

// SetBaseFirst points the cursor at the first edge in container order.
// No-op on an empty front.
func (f *Front) SetBaseFirst() {
	if f.Len() == 0 {
		return
	}
	f.base = f.Edge(0)
}

// SetBaseNext advances the cursor to the next edge in container order,
// wrapping past the last edge back to the first: the front is a closed
// loop and so is its cursor. No-op on an empty front.
func (f *Front) SetBaseNext() {
	if f.Len() == 0 {
		return
	}
	i := f.indexOf(f.base)
	if i < 0 || i == f.Len()-1 {
		f.base = f.Edge(0)
		return
	}
	f.base = f.Edge(i + 1)
}

// Remove detaches e from the front and revalidates the base cursor: a
// cursor on the removed edge moves to the edge that followed it,
// wrapping, or becomes nil when the front empties.
func (f *Front) Remove(e *Edge) {
	i := f.indexOf(e)
	if i < 0 {
		return
	}
	if f.base == e {
		switch {
		case f.Len() == 1:
			f.base = nil
		case i == f.Len()-1:
			f.base = f.Edge(0)
		default:
			f.base = f.Edge(i + 1)
		}
	}
	f.EdgeLoop.Remove(e)
}

// SortEdges reorders all edges by length and resets the cursor to the
// new first edge. Generators that want to keep the advancing boundary
// roughly uniform process the shortest edges first (ascending=true).
//
// The sort key is the squared length from the batch kernel; squared
// lengths order the same way and skip the square root.
func (f *Front) SortEdges(ascending bool) {
	n := f.Len()
	if n > 1 {
		x1, y1, x2, y2 := f.endpointCoords()
		keys := make([]float64, n)
		BaseBatchLengthSq(x1, y1, x2, y2, keys)

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			if ascending {
				return keys[order[a]] < keys[order[b]]
			}
			return keys[order[a]] > keys[order[b]]
		})

		sorted := make([]*Edge, n)
		for i, j := range order {
			sorted[i] = f.edges[j]
		}
		f.edges = sorted
	}

	f.SetBaseFirst()
}
