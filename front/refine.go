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

	"github.com/golang/geo/r2"
)

// Refine resamples every front edge that is long relative to the local
// target of the domain's size field, replacing it with a chain of
// shorter edges whose spacing tracks the field. New vertices enter the
// shared store next to the edge's far endpoint, fixed and tagged as
// boundary vertices; the loop's insertion hook tags them as front
// vertices. Edges already at or below the local target are left alone.
//
// Refine only considers edges present when the pass starts; edges it
// creates are not reconsidered until the next call. It returns the net
// change in edge count, so a caller can iterate to convergence:
//
//	for f.Refine(domain, vertices) > 0 {
//	}
//
// Refinement is deterministic, and re-running it on an already fine
// front adds nothing.
func (f *Front) Refine(domain *Domain, vertices *Vertices) int {
	before := f.Len()

	// Splicing must not feed new edges back into the running pass, and
	// removal while iterating would invalidate the iteration, so the
	// pass walks a snapshot and purges retired edges at the end.
	snapshot := slices.Clone(f.edges)

	var retired []*Edge
	for _, e := range snapshot {
		rho1 := domain.SizeAt(e.V1.Pos)
		rho2 := domain.SizeAt(e.V2.Pos)

		// March from the endpoint with the smaller target size toward
		// the larger one, so the spacing grows into the coarse region
		// instead of overshooting it from the coarse side.
		forward := rho1 < rho2

		xy := subVertexCoords(e, forward, rho1, rho2, domain)

		// Start and end alone: the edge already meets the local target.
		if len(xy) < 3 {
			continue
		}

		f.release(e)
		retired = append(retired, e)
		f.spliceSubEdges(e, xy, vertices)
	}

	for _, e := range retired {
		f.purge(e)
	}

	f.ComputeArea()

	added := f.Len() - before
	if added != 0 {
		logger().Debug("front refined", "edges", f.Len(), "added", added)
	}
	return added
}

// subVertexCoords samples new vertex positions along e according to the
// size field, marching with a predictor-corrector step from the fine
// endpoint toward the coarse one. The returned positions run from e.V1
// to e.V2 regardless of march direction and include both endpoints; a
// result of fewer than three positions means the edge needs no
// refinement.
func subVertexCoords(e *Edge, forward bool, rho1, rho2 float64, domain *Domain) []r2.Point {
	va, vb := e.V2, e.V1
	tang := e.Tangent().Mul(-1)
	rhoB := rho1
	if forward {
		va, vb = e.V1, e.V2
		tang = e.Tangent()
		rhoB = rho2
	}

	length := e.Length()

	// Stop half a target step short of the far endpoint, so the march
	// never leaves a final micro segment.
	sEnd := 1.0 - 0.5*rhoB/length

	xyNew := []r2.Point{va.Pos}
	sLast := 0.0
	xy := va.Pos

	for {
		// Predictor: step by the local target size.
		rho := domain.SizeAt(xy)
		xyP := xy.Add(tang.Mul(rho))

		// Corrector: re-evaluate at the trial point and step by the
		// average of the two sizes, which tracks a varying field far
		// better than the one-sided step.
		rhoP := domain.SizeAt(xyP)
		xyC := xy.Add(tang.Mul(0.5 * (rho + rhoP)))

		s := xyC.Sub(va.Pos).Norm() / length

		xyNew = append(xyNew, xyC)
		sLast = s
		xy = xyC

		if s > sEnd {
			break
		}
	}

	// Snap the final sample onto the far endpoint so floating point
	// drift never opens a gap.
	xyNew[len(xyNew)-1] = vb.Pos

	if len(xyNew) >= 3 {
		redistributeCrop(xyNew, sLast, length, tang, domain)
		validateMonotonic(xyNew)
	}

	if !forward {
		slices.Reverse(xyNew)
	}

	return xyNew
}

// redistributeCrop spreads the leftover signed distance between the last
// marched sample and the snapped endpoint across the interior samples,
// proportionally to each sample's local target size: coarse regions
// absorb more of the correction and dense regions less, so the relative
// spacing stays smooth.
func redistributeCrop(xy []r2.Point, sLast, length float64, tang r2.Point, domain *Domain) {
	dCr := tang.Mul((1.0 - sLast) * length)

	interior := xy[1 : len(xy)-1]
	rho := make([]float64, len(interior))
	rhoTot := 0.0
	for i, p := range interior {
		rho[i] = domain.SizeAt(p)
		rhoTot += rho[i]
	}

	if rhoTot <= 0 {
		// Degenerate size field at every interior sample. Fall back to
		// uniform weights rather than dividing by zero.
		w := 1.0 / float64(len(interior))
		for i := range interior {
			interior[i] = interior[i].Add(dCr.Mul(w))
		}
		return
	}

	for i := range interior {
		interior[i] = interior[i].Add(dCr.Mul(rho[i] / rhoTot))
	}
}

// validateMonotonic panics when the redistributed samples stop strictly
// increasing in arc length from the march start. That only happens with
// a numerically degenerate size field, and it would leave the loop
// geometrically inconsistent, so it is an internal-consistency failure
// rather than an error value.
func validateMonotonic(xy []r2.Point) {
	sPrev := 0.0
	for i := 1; i < len(xy); i++ {
		s := xy[i].Sub(xy[0]).Norm()
		if s <= sPrev {
			panic("front: refinement produced non-monotonic samples")
		}
		sPrev = s
	}
}

// spliceSubEdges materializes the interior samples as store vertices and
// splices the chain e.V1 -> s1 -> ... -> e.V2 into the loop at e's
// position. e must already be released; it keeps its slot in the
// sequence until the caller purges it.
func (f *Front) spliceSubEdges(e *Edge, xy []r2.Point, vertices *Vertices) {
	vCur := e.V1

	for _, p := range xy[1 : len(xy)-1] {
		vNew := vertices.Insert(e.V2, p, 1.0)

		// Front vertices keep their position during later smoothing.
		vNew.Fixed = true

		f.spliceEdge(e, vCur, vNew)
		vCur = vNew
	}

	f.spliceEdge(e, vCur, e.V2)
}

func (f *Front) spliceEdge(pos *Edge, v1, v2 *Vertex) {
	eNew, err := f.InsertBefore(pos, v1, v2, pos.Marker)
	if err != nil {
		// The released original no longer counts toward its endpoint
		// degrees and chain-interior vertices are fresh, so the degree
		// check cannot fire here.
		panic(err)
	}
	eNew.V1.OnBoundary = true
	eNew.V2.OnBoundary = true
}

// purge removes a released edge from the sequence, revalidating the
// base cursor if it pointed at the purged edge.
func (f *Front) purge(e *Edge) {
	i := f.indexOf(e)
	if i < 0 {
		return
	}
	f.edges = slices.Delete(f.edges, i, i+1)
	if f.base == e {
		f.base = nil
		f.SetBaseFirst()
	}
}
