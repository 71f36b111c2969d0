// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports differences between expected and actual
// command output in tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a unified diff from want to got, labelled with name.
// It returns "" if they are equal. If the diff command cannot be run,
// it falls back to printing both inputs in full.
func Diff(name string, want, got []byte) string {
	if string(want) == string(got) {
		return ""
	}
	fallback := func(why error) string {
		return fmt.Sprintf("%s: %v\nwant:\n%sgot:\n%s", name, why, want, got)
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fallback(err)
	}

	dir, err := os.MkdirTemp("", "lutstat-diff")
	if err != nil {
		return fallback(err)
	}
	defer os.RemoveAll(dir)
	for file, data := range map[string][]byte{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, file), data, 0666); err != nil {
			return fallback(err)
		}
	}

	cmd := exec.Command("diff", "-Nu", "--label", name, "--label", name+" (got)", "want", "got")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if len(out) == 0 {
		// diff exits 1 when the inputs differ; only a silent
		// failure is a real one.
		if err == nil {
			err = fmt.Errorf("diff reported no differences")
		}
		return fallback(err)
	}
	return string(out)
}
