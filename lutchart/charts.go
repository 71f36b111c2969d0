// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutchart

import (
	"github.com/aclements/go-gg/table"

	"github.com/rsonpath/lutstat/lutfmt"
	"github.com/rsonpath/lutstat/lutmath"
	"github.com/rsonpath/lutstat/lutunit"
)

const xLabel = "Test Data Sets"

// TimeNote explains the cumulative time series of a TimeChart.
const TimeNote = "Build: Build time of the hashtable.\n" +
	"CBOR_SER: Build + time to serialize it to CBOR format\n" +
	"CBOR_DE: CBOR_SER + deserialize time of the saved file\n" +
	"JSON_SER: Build + time to serialize it to JSON format\n" +
	"JSON_DE: JSON_SER + deserialize time of the saved file"

// TimeChart plots the build, serialize and deserialize durations of
// every record, ordered by ascending build time.
func TimeChart(ds lutfmt.Dataset) *Chart {
	perm := order(ds, func(r lutfmt.Record) float64 { return r.Build })
	return &Chart{
		Title:  "Build, CBOR, and JSON Times",
		XLabel: xLabel,
		YLabel: "Time in Seconds",
		Names:  pick(ds, perm, func(r lutfmt.Record) string { return r.Name }),
		Series: []Series{
			{"Build", pick(ds, perm, func(r lutfmt.Record) float64 { return r.Build })},
			{"CBOR_SER", pick(ds, perm, func(r lutfmt.Record) float64 { return r.CBORSerialize })},
			{"CBOR_DE", pick(ds, perm, func(r lutfmt.Record) float64 { return r.CBORDeserialize })},
			{"JSON_SER", pick(ds, perm, func(r lutfmt.Record) float64 { return r.JSONSerialize })},
			{"JSON_DE", pick(ds, perm, func(r lutfmt.Record) float64 { return r.JSONDeserialize })},
		},
		YTicks: lutunit.Ticker{Unit: "s", Class: lutunit.Decimal},
		Note:   TimeNote,
	}
}

// SizeChart plots the CBOR and JSON encoded sizes of every record,
// ordered by ascending CBOR size.
func SizeChart(ds lutfmt.Dataset) *Chart {
	perm := order(ds, func(r lutfmt.Record) float64 { return float64(r.CBORSize) })
	return &Chart{
		Title:  "CBOR Size and JSON Size",
		XLabel: xLabel,
		YLabel: "Size in Bytes",
		Names:  pick(ds, perm, func(r lutfmt.Record) string { return r.Name }),
		Series: []Series{
			{"CBOR Size", pick(ds, perm, func(r lutfmt.Record) float64 { return float64(r.CBORSize) })},
			{"JSON Size", pick(ds, perm, func(r lutfmt.Record) float64 { return float64(r.JSONSize) })},
		},
		YTicks: lutunit.Ticker{Unit: "B", Class: lutunit.Binary},
	}
}

// SpeedChart plots every throughput metric of speeds, ordered by
// ascending build speed. Because speed is inversely related to time,
// this puts the fastest build first, the reverse of TimeChart.
func SpeedChart(speeds []lutmath.SpeedRecord) *Chart {
	perm := order(speeds, func(s lutmath.SpeedRecord) float64 { return s.Build })
	c := &Chart{
		Title:  "Processing Speed (GB/s)",
		XLabel: xLabel,
		YLabel: "Speed in GB/s",
		Names:  pick(speeds, perm, func(s lutmath.SpeedRecord) string { return s.Name }),
	}
	for _, m := range lutmath.Metrics {
		m := m
		c.Series = append(c.Series, Series{m.String(), pick(speeds, perm, func(s lutmath.SpeedRecord) float64 { return s.Get(m) })})
	}
	return c
}

// order returns the permutation that stably sorts rows by key.
func order[T any](rows []T, key func(T) float64) []int {
	if len(rows) == 0 {
		return nil
	}
	keys := make([]float64, len(rows))
	idx := make([]int, len(rows))
	for i, r := range rows {
		keys[i] = key(r)
		idx[i] = i
	}
	t := new(table.Builder).Add("key", keys).Add("row", idx).Done()
	sorted := table.Flatten(table.SortBy(t, "key"))
	return sorted.MustColumn("row").([]int)
}

// pick returns get of each row of rows, in the order given by perm.
func pick[T, V any](rows []T, perm []int, get func(T) V) []V {
	out := make([]V, len(perm))
	for i, j := range perm {
		out[i] = get(rows[j])
	}
	return out
}
