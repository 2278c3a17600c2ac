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

// Package front implements the advancing-front boundary representation
// used by planar mesh generators: construction of a closed oriented edge
// loop from a domain's boundaries, adaptive refinement of that loop
// against a scalar size field, and the cursor/sorting protocol a
// generator uses to decide where to advance next.
//
// The package does not generate mesh elements. A generator owns a Front,
// reads its base edge, emits elements externally and mutates the loop
// through Add, InsertBefore and Remove; the front guarantees that the
// loop remains a set of simple closed polygons with every vertex on
// exactly two live edges.
//
// Coordinates use r2.Point from github.com/golang/geo/r2. Hot batch
// computations (signed areas, bounds, sort keys) run through SIMD
// kernels in the *_hwy.go files.
package front
