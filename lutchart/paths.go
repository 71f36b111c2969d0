// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutchart

import (
	"path/filepath"
	"strings"
)

// Ext is the file extension of rendered charts.
const Ext = "png"

// Paths holds the output file of each chart.
type Paths struct {
	Time, Size, Speed string
}

// OutputPaths returns the chart files for the results table at input.
// They sit next to input and are named after its base name without
// extension, so "out/bench.csv" yields "out/bench_time.png" and so on.
func OutputPaths(input string) Paths {
	dir, file := filepath.Split(input)
	base := file
	if ext := filepath.Ext(file); ext != file {
		base = strings.TrimSuffix(file, ext)
	}
	name := func(kind string) string {
		return filepath.Join(dir, base+"_"+kind+"."+Ext)
	}
	return Paths{name("time"), name("size"), name("speed")}
}
