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
	"fmt"

	"github.com/golang/geo/r2"
)

// Edge is an oriented segment between two vertices of a loop; its
// direction runs from V1 to V2. Marker identifies the original domain
// boundary the edge descends from.
//
// Geometry derived from the endpoints is computed once at creation.
// Loop vertices are fixed and never move, so the cache cannot go stale.
type Edge struct {
	V1, V2 *Vertex
	Marker int

	length  float64
	tangent r2.Point
}

func newEdge(v1, v2 *Vertex, marker int) *Edge {
	d := v2.Pos.Sub(v1.Pos)
	e := &Edge{V1: v1, V2: v2, Marker: marker, length: d.Norm()}
	if e.length > 0 {
		e.tangent = d.Mul(1 / e.length)
	}
	return e
}

// Length returns the Euclidean length of the edge.
func (e *Edge) Length() float64 { return e.length }

// Tangent returns the unit direction vector from V1 to V2.
func (e *Edge) Tangent() r2.Point { return e.tangent }

// crossTerm is this edge's contribution to the loop's doubled shoelace
// area.
func (e *Edge) crossTerm() float64 {
	return e.V1.Pos.Cross(e.V2.Pos)
}

func (e *Edge) String() string {
	return fmt.Sprintf("[%v -> %v]", e.V1, e.V2)
}
