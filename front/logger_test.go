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
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
)

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	if logger() == nil {
		t.Fatal("logger() = nil, want nop logger")
	}
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should report disabled at every level")
	}
}

func TestSetLoggerCapturesRefinement(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	d := squareDomain(t, 10, func(r2.Point) float64 { return 1.0 })
	mustFront(t, d)

	out := buf.String()
	if !strings.Contains(out, "front refined") {
		t.Errorf("log output missing refinement record:\n%s", out)
	}
	if !strings.Contains(out, "front constructed") {
		t.Errorf("log output missing construction record:\n%s", out)
	}
}
