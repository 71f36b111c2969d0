// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	if d := Diff("same", []byte("a\nb\n"), []byte("a\nb\n")); d != "" {
		t.Errorf("equal inputs: got %q", d)
	}

	d := Diff("x.stdout", []byte("a\nb\n"), []byte("a\nc\n"))
	if !strings.Contains(d, "x.stdout") {
		t.Errorf("diff does not name its input:\n%s", d)
	}
	if !strings.Contains(d, "b") || !strings.Contains(d, "c") {
		t.Errorf("diff is missing changed lines:\n%s", d)
	}
}
