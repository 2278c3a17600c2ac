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
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/golang/geo/r2"
)

// Vertices is the shared vertex store for a mesh generation run. It
// supports positional insertion near a hint vertex, so that vertices
// created by refinement end up close to their loop neighbors in store
// order, which keeps later per-vertex passes cache friendly and the
// output ordering stable.
//
// The store only grows. Fronts and loops remove edges, never vertices;
// every *Vertex returned here stays valid until the store is discarded.
type Vertices struct {
	list *doublylinkedlist.List
}

// NewVertices creates an empty vertex store.
func NewVertices() *Vertices {
	return &Vertices{list: doublylinkedlist.New()}
}

// Append creates a vertex at the end of the store.
func (vs *Vertices) Append(pos r2.Point, weight float64) *Vertex {
	v := &Vertex{Pos: pos, Weight: weight}
	vs.list.Append(v)
	return v
}

// Insert creates a vertex immediately before hint in store order.
// A nil hint, or a hint not present in this store, appends instead.
func (vs *Vertices) Insert(hint *Vertex, pos r2.Point, weight float64) *Vertex {
	v := &Vertex{Pos: pos, Weight: weight}
	if hint == nil {
		vs.list.Append(v)
		return v
	}
	idx := vs.list.IndexOf(hint)
	if idx < 0 {
		vs.list.Append(v)
		return v
	}
	vs.list.Insert(idx, v)
	return v
}

// Len returns the number of stored vertices.
func (vs *Vertices) Len() int { return vs.list.Size() }

// Each calls fn for every vertex in store order.
func (vs *Vertices) Each(fn func(*Vertex)) {
	vs.list.Each(func(_ int, value interface{}) {
		fn(value.(*Vertex))
	})
}
