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
	"slices"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Orientation declares the expected winding of a closed edge loop.
type Orientation int

const (
	// OrientationNone disables winding checks. Used by the advancing
	// front, which aggregates loops of both windings and checks net area
	// positivity itself.
	OrientationNone Orientation = iota
	// OrientationCCW expects a positive signed area (exterior boundaries).
	OrientationCCW
	// OrientationCW expects a negative signed area (interior boundaries).
	OrientationCW
)

// InsertHook is invoked for every edge added to a loop, before the
// mutation returns. Loops take the hook as a capability at construction
// so that a wrapper type (the Front) can tag vertices and edges with
// role flags without subclassing.
type InsertHook func(v1, v2 *Vertex, e *Edge)

// LoopOptions configures an EdgeLoop.
type LoopOptions struct {
	Orientation Orientation
	OnInsert    InsertHook
}

// NewLoopOptions returns the defaults: no winding check, no insert hook.
func NewLoopOptions() LoopOptions { return LoopOptions{} }

// EdgeLoop is an ordered, owned sequence of edges forming one or more
// closed polygons. Once a loop is closed, every vertex it references has
// exactly two incident loop edges; Add and InsertBefore refuse mutations
// that would exceed that bound.
//
// Loops own their edges exclusively. Vertices are shared with the store
// that created them and survive edge removal.
type EdgeLoop struct {
	opts   LoopOptions
	edges  []*Edge
	degree map[*Vertex]int
	area   float64
}

// NewEdgeLoop creates an empty loop with the given options.
func NewEdgeLoop(opts LoopOptions) *EdgeLoop {
	return &EdgeLoop{opts: opts, degree: make(map[*Vertex]int)}
}

// Len returns the number of edges in the loop.
func (l *EdgeLoop) Len() int { return len(l.edges) }

// Edge returns the edge at position i in container order.
func (l *EdgeLoop) Edge(i int) *Edge { return l.edges[i] }

// Edges returns the edge sequence in container order. The slice is the
// loop's backing storage; callers must not modify it.
func (l *EdgeLoop) Edges() []*Edge { return l.edges }

// Degree returns the number of live loop edges incident to v.
func (l *EdgeLoop) Degree(v *Vertex) int { return l.degree[v] }

// Add appends a new owned edge from v1 to v2 at the end of the
// sequence. It fails with ErrInvalidTopology if either endpoint already
// has two incident loop edges.
func (l *EdgeLoop) Add(v1, v2 *Vertex, marker int) (*Edge, error) {
	if err := l.checkDegree(v1, v2); err != nil {
		return nil, err
	}
	e := newEdge(v1, v2, marker)
	l.edges = append(l.edges, e)
	l.attach(e)
	return e, nil
}

// InsertBefore splices a new owned edge into the sequence immediately
// before pos, which must be owned by this loop. The same degree
// constraint as Add applies.
func (l *EdgeLoop) InsertBefore(pos *Edge, v1, v2 *Vertex, marker int) (*Edge, error) {
	i := l.indexOf(pos)
	if i < 0 {
		return nil, errors.Wrap(ErrInvalidTopology, "insert position not owned by loop")
	}
	if err := l.checkDegree(v1, v2); err != nil {
		return nil, err
	}
	e := newEdge(v1, v2, marker)
	l.edges = slices.Insert(l.edges, i, e)
	l.attach(e)
	return e, nil
}

// Remove detaches and destroys an owned edge. The endpoint vertices
// survive; no loop operation ever removes a vertex. Removing an edge
// not owned by the loop is a no-op.
func (l *EdgeLoop) Remove(e *Edge) {
	i := l.indexOf(e)
	if i < 0 {
		return
	}
	l.edges = slices.Delete(l.edges, i, i+1)
	l.release(e)
}

func (l *EdgeLoop) checkDegree(v1, v2 *Vertex) error {
	if l.degree[v1] >= 2 {
		return errors.Wrapf(ErrInvalidTopology, "vertex %v already has two incident edges", v1)
	}
	if l.degree[v2] >= 2 {
		return errors.Wrapf(ErrInvalidTopology, "vertex %v already has two incident edges", v2)
	}
	return nil
}

func (l *EdgeLoop) attach(e *Edge) {
	l.degree[e.V1]++
	l.degree[e.V2]++
	if l.opts.OnInsert != nil {
		l.opts.OnInsert(e.V1, e.V2, e)
	}
}

// release drops e's vertex degree contributions without touching the
// edge sequence. Refinement retires an edge this way first, so that the
// replacement chain can be spliced in around it before it is purged.
func (l *EdgeLoop) release(e *Edge) {
	for _, v := range [2]*Vertex{e.V1, e.V2} {
		l.degree[v]--
		if l.degree[v] <= 0 {
			delete(l.degree, v)
		}
	}
}

func (l *EdgeLoop) indexOf(e *Edge) int {
	return slices.Index(l.edges, e)
}

// Area returns the cached signed shoelace area. It is only as fresh as
// the last ComputeArea call.
func (l *EdgeLoop) Area() float64 { return l.area }

// ComputeArea recomputes and caches the signed shoelace area of the
// loop. Call it after any batch of insertions or removals; mutating
// operations that run in bulk (refinement) call it once at the end
// rather than per edge.
func (l *EdgeLoop) ComputeArea() {
	n := len(l.edges)
	if n == 0 {
		l.area = 0
		return
	}
	x1, y1, x2, y2 := l.endpointCoords()
	l.area = 0.5 * BaseBatchCrossSum(x1, y1, x2, y2)
}

// CheckOrientation recomputes the signed area and reports whether its
// sign matches the declared winding. Loops declared OrientationNone
// always pass.
func (l *EdgeLoop) CheckOrientation() bool {
	l.ComputeArea()
	switch l.opts.Orientation {
	case OrientationCCW:
		return l.area > 0
	case OrientationCW:
		return l.area < 0
	default:
		return true
	}
}

// Bounds returns the axis-aligned bounding rectangle of the loop's
// vertices, or the canonical empty rectangle for an empty loop. Each
// edge's second endpoint is the first endpoint of its successor, so the
// first endpoints alone cover every vertex of a closed loop.
func (l *EdgeLoop) Bounds() r2.Rect {
	n := len(l.edges)
	if n == 0 {
		return r2.EmptyRect()
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, e := range l.edges {
		xs[i] = e.V1.Pos.X
		ys[i] = e.V1.Pos.Y
	}
	minX, maxX := BaseBatchMinMax(xs)
	minY, maxY := BaseBatchMinMax(ys)
	return r2.Rect{
		X: r1.Interval{Lo: minX, Hi: maxX},
		Y: r1.Interval{Lo: minY, Hi: maxY},
	}
}

// endpointCoords gathers the edge endpoints into SoA slices for the
// batch kernels.
func (l *EdgeLoop) endpointCoords() (x1, y1, x2, y2 []float64) {
	n := len(l.edges)
	x1 = make([]float64, n)
	y1 = make([]float64, n)
	x2 = make([]float64, n)
	y2 = make([]float64, n)
	for i, e := range l.edges {
		x1[i] = e.V1.Pos.X
		y1[i] = e.V1.Pos.Y
		x2[i] = e.V2.Pos.X
		y2[i] = e.V2.Pos.Y
	}
	return x1, y1, x2, y2
}
