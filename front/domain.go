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
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// SizeFunction gives the desired local edge length at a point. It must
// be finite and strictly positive everywhere the refinement samples it;
// behavior is undefined otherwise.
type SizeFunction func(p r2.Point) float64

// Boundary is one closed loop of a domain's boundary with a declared
// winding: counter-clockwise for the exterior, clockwise for holes.
// Edges are added in walking order with a marker identifying the
// boundary segment they belong to.
type Boundary struct {
	*EdgeLoop
	exterior bool
}

// Exterior reports whether this is the domain's exterior boundary.
func (b *Boundary) Exterior() bool { return b.exterior }

// Domain describes the region to be meshed: an exterior boundary,
// optional interior boundaries (holes) and a scalar size field. The
// domain owns the vertex store its boundary vertices live in; fronts
// built from the domain share that store.
type Domain struct {
	sizeFn     SizeFunction
	vertices   *Vertices
	boundaries []*Boundary
}

// NewDomain creates a domain with the given size field. A nil sizeFn
// defaults to a constant unit size.
func NewDomain(sizeFn SizeFunction) *Domain {
	if sizeFn == nil {
		sizeFn = func(r2.Point) float64 { return 1 }
	}
	return &Domain{
		sizeFn:   sizeFn,
		vertices: NewVertices(),
	}
}

// Vertices returns the domain's vertex store.
func (d *Domain) Vertices() *Vertices { return d.vertices }

// SizeAt evaluates the size field at p.
func (d *Domain) SizeAt(p r2.Point) float64 { return d.sizeFn(p) }

// AddVertex creates a boundary vertex at pos with unit weight.
func (d *Domain) AddVertex(pos r2.Point) *Vertex {
	return d.vertices.Append(pos, 1.0)
}

// AddExteriorBoundary creates the counter-clockwise exterior boundary
// loop. A domain has exactly one; Verify rejects extras.
func (d *Domain) AddExteriorBoundary() *Boundary {
	b := &Boundary{
		EdgeLoop: NewEdgeLoop(LoopOptions{Orientation: OrientationCCW}),
		exterior: true,
	}
	d.boundaries = append(d.boundaries, b)
	return b
}

// AddInteriorBoundary creates a clockwise hole boundary loop.
func (d *Domain) AddInteriorBoundary() *Boundary {
	b := &Boundary{
		EdgeLoop: NewEdgeLoop(LoopOptions{Orientation: OrientationCW}),
	}
	d.boundaries = append(d.boundaries, b)
	return b
}

// Boundaries returns the boundary loops in insertion order.
func (d *Domain) Boundaries() []*Boundary { return d.boundaries }

// Bounds returns the bounding rectangle of all boundary loops.
func (d *Domain) Bounds() r2.Rect {
	bounds := r2.EmptyRect()
	for _, b := range d.boundaries {
		r := b.Bounds()
		bounds = r2.Rect{
			X: bounds.X.Union(r.X),
			Y: bounds.Y.Union(r.Y),
		}
	}
	return bounds
}

// Verify checks that every boundary loop winds the declared way and
// that every interior boundary lies inside the exterior one. Malformed
// boundaries are caller bugs; Verify gives callers a way to fail fast
// with a diagnosable error before front construction.
func (d *Domain) Verify() error {
	var exterior *Boundary
	for i, b := range d.boundaries {
		if !b.CheckOrientation() {
			return errors.Wrapf(ErrBadOrientation, "boundary %d winds against its declared orientation", i)
		}
		if !b.exterior {
			continue
		}
		if exterior != nil {
			return errors.Wrap(ErrBadNesting, "multiple exterior boundaries")
		}
		exterior = b
	}
	if exterior == nil {
		if len(d.boundaries) == 0 {
			return nil
		}
		return errors.Wrap(ErrBadNesting, "no exterior boundary")
	}
	for i, b := range d.boundaries {
		if b == exterior || b.Len() == 0 {
			continue
		}
		p := b.Edge(0).V1.Pos
		if !exterior.Contains(p) {
			return errors.Wrapf(ErrBadNesting, "interior boundary %d lies outside the exterior", i)
		}
	}
	return nil
}
