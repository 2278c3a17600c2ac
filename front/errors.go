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
	"github.com/pkg/errors"
)

var (
	// ErrInvalidTopology reports a mutation that would give a vertex more
	// than two incident loop edges.
	ErrInvalidTopology = errors.New("front: invalid loop topology")

	// ErrBadOrientation reports a boundary supplied with the wrong winding.
	ErrBadOrientation = errors.New("front: invalid boundary orientation")

	// ErrBadNesting reports interior boundaries that do not lie inside the
	// exterior boundary.
	ErrBadNesting = errors.New("front: invalid boundary nesting")
)
