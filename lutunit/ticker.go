// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutunit

import "gonum.org/v1/plot"

// maxPrec bounds the digits Ticks adds to tell adjacent labels apart.
const maxPrec = 15

// A Ticker labels axis ticks with a common unit prefix, so an axis of
// durations reads "250ms, 500ms, 750ms" rather than "0.25, 0.5, 0.75".
// It implements plot.Ticker.
type Ticker struct {
	Unit  string // appended to every label, e.g. "s" or "B"
	Class Class

	// Ticker chooses tick positions. If nil, ticks are placed by
	// plot.DefaultTicks at round values of the prefixed unit, so a
	// Binary axis reads "256KiB, 512KiB" and never "0.98KiB".
	Ticker plot.Ticker
}

// Ticks returns the ticks of t.Ticker relabelled with a common scale.
// Minor ticks, which have no label, are left unlabelled. Labels carry
// enough digits that no two adjacent major ticks read the same.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	if t.Ticker != nil {
		ticks = append([]plot.Tick(nil), t.Ticker.Ticks(min, max)...)
	} else {
		s := CommonScale([]float64{min, max}, t.Class)
		ticks = plot.DefaultTicks{}.Ticks(min/s.Factor, max/s.Factor)
		for i := range ticks {
			ticks[i].Value *= s.Factor
		}
	}

	var major []float64
	for _, tick := range ticks {
		if tick.Label != "" {
			major = append(major, tick.Value)
		}
	}
	s := CommonScale(major, t.Class)
	for s.Prec < maxPrec && !distinct(s, major) {
		s.Prec++
	}
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = s.Format(ticks[i].Value) + t.Unit
		}
	}
	return ticks
}

// distinct reports whether s formats each adjacent pair of vals
// differently.
func distinct(s Scaler, vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[i-1] && s.Format(vals[i]) == s.Format(vals[i-1]) {
			return false
		}
	}
	return true
}
