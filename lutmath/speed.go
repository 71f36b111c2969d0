// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lutmath derives throughput figures from lookup-table
// benchmark results.
//
// Throughput is measured in gigabytes of raw input per second, where
// a gigabyte is 2^30 bytes. Derivation never modifies its input.
package lutmath

import (
	"fmt"
	"math"

	"github.com/rsonpath/lutstat/lutfmt"
)

// BytesPerGB is the number of bytes in the gigabyte used for
// throughput figures.
const BytesPerGB = 1 << 30

// A Metric identifies one of the throughput figures of a SpeedRecord.
type Metric int

const (
	BuildSpeed Metric = iota
	CBORSerializeSpeed
	CBORDeserializeSpeed
	JSONSerializeSpeed
	JSONDeserializeSpeed
)

// Metrics lists every Metric in presentation order.
var Metrics = []Metric{
	BuildSpeed,
	CBORSerializeSpeed,
	CBORDeserializeSpeed,
	JSONSerializeSpeed,
	JSONDeserializeSpeed,
}

var metricNames = [...]string{
	BuildSpeed:           "Build Speed",
	CBORSerializeSpeed:   "CBOR Serialize Speed",
	CBORDeserializeSpeed: "CBOR Deserialize Speed",
	JSONSerializeSpeed:   "JSON Serialize Speed",
	JSONDeserializeSpeed: "JSON Deserialize Speed",
}

// source maps each metric to the duration column it divides by.
var source = [...]string{
	BuildSpeed:           lutfmt.ColBuild,
	CBORSerializeSpeed:   lutfmt.ColCBORSerialize,
	CBORDeserializeSpeed: lutfmt.ColCBORDeserialize,
	JSONSerializeSpeed:   lutfmt.ColJSONSerialize,
	JSONDeserializeSpeed: lutfmt.ColJSONDeserialize,
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// Source returns the name of the duration column m is derived from.
func (m Metric) Source() string {
	return source[m]
}

// A SpeedRecord holds the throughput figures, in GB/s, derived from
// one lutfmt.Record.
type SpeedRecord struct {
	Name string

	Build           float64
	CBORSerialize   float64
	CBORDeserialize float64
	JSONSerialize   float64
	JSONDeserialize float64
}

// Get returns the value of metric m.
func (s SpeedRecord) Get(m Metric) float64 {
	switch m {
	case BuildSpeed:
		return s.Build
	case CBORSerializeSpeed:
		return s.CBORSerialize
	case CBORDeserializeSpeed:
		return s.CBORDeserialize
	case JSONSerializeSpeed:
		return s.JSONSerialize
	case JSONDeserializeSpeed:
		return s.JSONDeserialize
	}
	panic(fmt.Sprintf("bad Metric %d", int(m)))
}

// A DomainError reports a duration that cannot be used as a divisor.
type DomainError struct {
	Name  string  // record name
	Row   int     // index of the record in its Dataset
	Field string  // duration column
	Value float64 // offending duration
}

func (e *DomainError) Error() string {
	if e.Value > 0 {
		return fmt.Sprintf("record %d (%s): %s duration %v is too small; throughput overflows", e.Row+1, e.Name, e.Field, e.Value)
	}
	return fmt.Sprintf("record %d (%s): %s duration %v is not positive; throughput is undefined", e.Row+1, e.Name, e.Field, e.Value)
}

// DeriveSpeeds computes the throughput figures of every record in ds.
// The result is parallel to ds.
//
// Every duration must be strictly positive and large enough that the
// throughput it yields is finite. If one is not, DeriveSpeeds returns
// a *DomainError for the first such duration and no records.
func DeriveSpeeds(ds lutfmt.Dataset) ([]SpeedRecord, error) {
	out := make([]SpeedRecord, len(ds))
	for i, rec := range ds {
		durs := [...]float64{
			BuildSpeed:           rec.Build,
			CBORSerializeSpeed:   rec.CBORSerialize,
			CBORDeserializeSpeed: rec.CBORDeserialize,
			JSONSerializeSpeed:   rec.JSONSerialize,
			JSONDeserializeSpeed: rec.JSONDeserialize,
		}
		gb := float64(rec.InputSize) / BytesPerGB
		for m, d := range durs {
			if !(d > 0) || math.IsInf(gb/d, 0) {
				return nil, &DomainError{rec.Name, i, Metric(m).Source(), d}
			}
		}
		out[i] = SpeedRecord{
			Name:            rec.Name,
			Build:           gb / durs[BuildSpeed],
			CBORSerialize:   gb / durs[CBORSerializeSpeed],
			CBORDeserialize: gb / durs[CBORDeserializeSpeed],
			JSONSerialize:   gb / durs[JSONSerializeSpeed],
			JSONDeserialize: gb / durs[JSONDeserializeSpeed],
		}
	}
	return out, nil
}
