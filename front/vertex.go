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

// Vertex is a single mesh point. Vertices are created through a Vertices
// store and referenced by edges; the store keeps them alive for the
// whole mesh generation run, so *Vertex references are stable. Loops
// never destroy vertices, only edges.
type Vertex struct {
	Pos r2.Point

	// Weight is a placement weight carried for later smoothing passes.
	Weight float64

	// Fixed vertices keep their position during later mesh smoothing.
	Fixed bool

	// OnBoundary marks vertices lying on an original domain boundary.
	OnBoundary bool

	// OnFront marks vertices currently referenced by the advancing front.
	OnFront bool
}

func (v *Vertex) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", v.Pos.X, v.Pos.Y)
}
