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
)

// Contains reports whether p lies inside the closed polygon formed by
// the loop's edges, by counting crossings of a ray cast from p in the +X
// direction (even-odd rule). The result is independent of the loop's
// winding.
//
// Points exactly on an edge are not guaranteed a stable answer. Domain
// nesting checks only sample vertices of other, non-touching loops, so
// that case does not arise there.
func (l *EdgeLoop) Contains(p r2.Point) bool {
	inside := false
	for _, e := range l.edges {
		a, b := e.V1.Pos, e.V2.Pos
		if (a.Y > p.Y) == (b.Y > p.Y) {
			// Edge entirely above or below the ray.
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x > p.X {
			inside = !inside
		}
	}
	return inside
}
