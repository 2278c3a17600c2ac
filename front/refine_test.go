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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/golang/geo/r2"
)

// horizontalEdge builds a standalone edge from (0,0) to (length,0).
func horizontalEdge(length float64) *Edge {
	va := &Vertex{Pos: r2.Point{X: 0, Y: 0}}
	vb := &Vertex{Pos: r2.Point{X: length, Y: 0}}
	return newEdge(va, vb, 0)
}

func TestSubVertexCoordsConstantField(t *testing.T) {
	const rho = 0.5
	d := NewDomain(func(r2.Point) float64 { return rho })
	e := horizontalEdge(10)

	xy := subVertexCoords(e, true, rho, rho, d)

	if got, want := xy[0], e.V1.Pos; got != want {
		t.Errorf("first sample = %v, want start %v", got, want)
	}
	if got, want := xy[len(xy)-1], e.V2.Pos; got != want {
		t.Errorf("last sample = %v, want snapped end %v", got, want)
	}

	// Arc lengths from the start must strictly increase and the spacing
	// must track the constant field.
	var spacing []float64
	sPrev := -1.0
	for i := 1; i < len(xy); i++ {
		s := xy[i].Sub(xy[0]).Norm()
		if s <= sPrev {
			t.Fatalf("sample %d arc length %v not strictly increasing (prev %v)", i, s, sPrev)
		}
		spacing = append(spacing, xy[i].Sub(xy[i-1]).Norm())
		sPrev = s
	}

	want := make([]float64, len(spacing))
	for i := range want {
		want[i] = rho
	}
	if diff := cmp.Diff(want, spacing, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("spacing mismatch (-want +got):\n%s", diff)
	}
}

func TestSubVertexCoordsMarchedBackward(t *testing.T) {
	// Field shrinks toward V2, so the march starts there; the result
	// must still run V1 -> V2.
	d := NewDomain(func(p r2.Point) float64 { return 0.5 + 0.1*(10-p.X) })
	e := horizontalEdge(10)

	rho1 := d.SizeAt(e.V1.Pos)
	rho2 := d.SizeAt(e.V2.Pos)
	if rho1 < rho2 {
		t.Fatalf("test field broken: rho1 %v < rho2 %v", rho1, rho2)
	}

	xy := subVertexCoords(e, false, rho1, rho2, d)

	if len(xy) < 3 {
		t.Fatalf("expected refinement samples, got %d points", len(xy))
	}
	if xy[0] != e.V1.Pos || xy[len(xy)-1] != e.V2.Pos {
		t.Errorf("samples run %v -> %v, want %v -> %v",
			xy[0], xy[len(xy)-1], e.V1.Pos, e.V2.Pos)
	}
	for i := 1; i < len(xy); i++ {
		if xy[i].X <= xy[i-1].X {
			t.Fatalf("sample %d X=%v not monotonic along the edge", i, xy[i].X)
		}
	}
}

func TestSubVertexCoordsGrowingFieldSpacing(t *testing.T) {
	// With a field growing along the march, the spacing must grow too.
	d := NewDomain(func(p r2.Point) float64 { return 0.5 + 0.1*p.X })
	e := horizontalEdge(10)

	xy := subVertexCoords(e, true, d.SizeAt(e.V1.Pos), d.SizeAt(e.V2.Pos), d)
	if len(xy) < 4 {
		t.Fatalf("expected several samples, got %d", len(xy))
	}
	// Ignore the final snapped interval; redistribution keeps interior
	// spacing ordered but the last interval is the cropped remainder.
	for i := 2; i < len(xy)-1; i++ {
		prev := xy[i-1].Sub(xy[i-2]).Norm()
		cur := xy[i].Sub(xy[i-1]).Norm()
		if cur <= prev {
			t.Errorf("interval %d = %v not larger than %v under a growing field", i, cur, prev)
		}
	}
}

func TestRefineSkipsShortEdge(t *testing.T) {
	// Triangle sides all shorter than half the target size: nothing to do.
	d := triangleDomain(t, [3]r2.Point{{X: 0, Y: 0}, {X: 0.4, Y: 0}, {X: 0.2, Y: 0.3}},
		func(r2.Point) float64 { return 1.0 })
	f := mustFront(t, d)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (edges below target size stay)", f.Len())
	}

	edges := append([]*Edge(nil), f.Edges()...)
	if added := f.Refine(d, d.Vertices()); added != 0 {
		t.Errorf("Refine on fine front added %d edges, want 0", added)
	}
	for i, e := range f.Edges() {
		if e != edges[i] {
			t.Errorf("edge %d replaced by a no-op refinement", i)
		}
	}
}

func TestRefineConverges(t *testing.T) {
	d := squareDomain(t, 10, func(r2.Point) float64 { return 1.0 })
	f := mustFront(t, d)

	// NewFront already ran one pass; the next must add nothing.
	if added := f.Refine(d, d.Vertices()); added != 0 {
		t.Errorf("second Refine added %d edges, want 0", added)
	}
	if added := f.Refine(d, d.Vertices()); added != 0 {
		t.Errorf("third Refine added %d edges, want 0", added)
	}
}

func TestRefineInsertsVerticesNearFarEndpoint(t *testing.T) {
	d := squareDomain(t, 10, func(r2.Point) float64 { return 1.0 })
	before := d.Vertices().Len()
	f := mustFront(t, d)

	created := d.Vertices().Len() - before
	// 36 interior vertices: 9 per side.
	if created != 36 {
		t.Errorf("refinement created %d vertices, want 36", created)
	}
	if got, want := f.Len(), 40; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestRedistributeCropUniformFallback(t *testing.T) {
	// A size field that is zero at every interior sample would divide by
	// zero under proportional weights; the fallback distributes evenly.
	d := NewDomain(func(r2.Point) float64 { return 0 })

	xy := []r2.Point{
		{X: 0, Y: 0},
		{X: 0.3, Y: 0},
		{X: 0.6, Y: 0},
		{X: 1, Y: 0},
	}
	redistributeCrop(xy, 0.9, 1.0, r2.Point{X: 1, Y: 0}, d)

	want := []r2.Point{
		{X: 0, Y: 0},
		{X: 0.35, Y: 0},
		{X: 0.65, Y: 0},
		{X: 1, Y: 0},
	}
	if diff := cmp.Diff(want, xy, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("fallback redistribution mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateMonotonicPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("validateMonotonic did not panic on reordered samples")
		}
	}()
	validateMonotonic([]r2.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 0},
	})
}

func TestRefineAreaPreservedUnderFineField(t *testing.T) {
	d := squareDomain(t, 10, func(r2.Point) float64 { return 0.25 })
	f := mustFront(t, d)

	if got := f.Area(); math.Abs(got-100) > 1e-9 {
		t.Errorf("Area() = %v, want 100", got)
	}
	// 40 edges per side at quarter spacing.
	if f.Len() != 160 {
		t.Errorf("Len() = %d, want 160", f.Len())
	}
}
