// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutmath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the distribution of one throughput metric
// across all records.
type Summary struct {
	Metric Metric

	Mean     float64
	Min, Max float64

	// GeoMean is the geometric mean, or NaN if some value is not
	// positive. In that case Warnings explains why.
	GeoMean float64

	Warnings []error
}

// Summarize returns one Summary per Metric, in Metrics order. It
// returns nil if speeds is empty.
func Summarize(speeds []SpeedRecord) []Summary {
	if len(speeds) == 0 {
		return nil
	}
	out := make([]Summary, 0, len(Metrics))
	xs := make([]float64, len(speeds))
	for _, m := range Metrics {
		for i, s := range speeds {
			xs[i] = s.Get(m)
		}
		sum := Summary{Metric: m, Mean: stats.Mean(xs)}
		sum.Min, sum.Max = stats.Bounds(xs)
		sum.GeoMean = stats.GeoMean(xs)
		if math.IsNaN(sum.GeoMean) {
			sum.Warnings = append(sum.Warnings, fmt.Errorf("%s: speeds must be >0 to compute geomean", m))
		}
		out = append(out, sum)
	}
	return out
}
