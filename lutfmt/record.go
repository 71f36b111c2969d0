// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lutfmt reads lookup-table benchmark results tables.
//
// A results table is a comma-separated file with a header row. Each
// data row describes one test data set: the size of the raw input,
// the time taken to build the lookup table, the cumulative times to
// serialize and deserialize it in CBOR and JSON form, and the size
// of each encoded artifact. Columns are matched by header name, so
// their order is not significant and unknown columns are ignored.
package lutfmt

// Column names recognized in the header of a results table.
const (
	ColName            = "name"
	ColInputSize       = "input_size"
	ColBuild           = "build"
	ColCBORSerialize   = "cbor_serialize"
	ColCBORDeserialize = "cbor_deserialize"
	ColJSONSerialize   = "json_serialize"
	ColJSONDeserialize = "json_deserialize"
	ColCBORSize        = "cbor_size"
	ColJSONSize        = "json_size"
)

// Columns lists every column a results table must carry.
var Columns = []string{
	ColName,
	ColInputSize,
	ColBuild,
	ColCBORSerialize,
	ColCBORDeserialize,
	ColJSONSerialize,
	ColJSONDeserialize,
	ColCBORSize,
	ColJSONSize,
}

// A Record is one row of a results table.
//
// Durations are in seconds and sizes are in bytes. The serialize and
// deserialize durations are cumulative: CBORSerialize includes Build,
// and CBORDeserialize includes CBORSerialize (likewise for JSON).
type Record struct {
	Name      string
	InputSize int64

	Build           float64
	CBORSerialize   float64
	CBORDeserialize float64
	JSONSerialize   float64
	JSONDeserialize float64

	CBORSize int64
	JSONSize int64
}

// A Dataset is the sequence of records read from one results table,
// in file order. Names are not required to be unique.
type Dataset []Record

// Names returns the name of every record in d, in order.
func (d Dataset) Names() []string {
	names := make([]string, len(d))
	for i, rec := range d {
		names[i] = rec.Name
	}
	return names
}
