// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutmath

import (
	"errors"
	"math"
	"testing"

	"github.com/rsonpath/lutstat/lutfmt"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var twoRecords = lutfmt.Dataset{
	{Name: "A", InputSize: 1073741824, Build: 1.0, CBORSerialize: 1.2, CBORDeserialize: 1.5,
		JSONSerialize: 1.3, JSONDeserialize: 1.8, CBORSize: 500, JSONSize: 900},
	{Name: "B", InputSize: 2147483648, Build: 2.0, CBORSerialize: 2.5, CBORDeserialize: 3.0,
		JSONSerialize: 2.7, JSONDeserialize: 3.5, CBORSize: 1000, JSONSize: 1800},
}

func TestDeriveSpeeds(t *testing.T) {
	chk := require.New(t)

	speeds, err := DeriveSpeeds(twoRecords)
	chk.NoError(err)
	chk.Len(speeds, 2)

	chk.Equal("A", speeds[0].Name)
	chk.Equal(1.0, speeds[0].Build)
	chk.InDelta(1/1.2, speeds[0].CBORSerialize, 1e-12)
	chk.InDelta(1/1.8, speeds[0].JSONDeserialize, 1e-12)

	chk.Equal("B", speeds[1].Name)
	chk.Equal(1.0, speeds[1].Build)
	chk.InDelta(2/3.5, speeds[1].JSONDeserialize, 1e-12)
}

func TestDeriveSpeedsDoesNotMutate(t *testing.T) {
	chk := require.New(t)

	ds := append(lutfmt.Dataset(nil), twoRecords...)
	_, err := DeriveSpeeds(ds)
	chk.NoError(err)
	chk.Equal(twoRecords, ds)
}

func TestDomainError(t *testing.T) {
	for _, m := range Metrics {
		t.Run(m.String(), func(t *testing.T) {
			chk := require.New(t)

			ds := append(lutfmt.Dataset(nil), twoRecords...)
			rec := &ds[1]
			switch m {
			case BuildSpeed:
				rec.Build = 0
			case CBORSerializeSpeed:
				rec.CBORSerialize = 0
			case CBORDeserializeSpeed:
				rec.CBORDeserialize = 0
			case JSONSerializeSpeed:
				rec.JSONSerialize = -1
			case JSONDeserializeSpeed:
				rec.JSONDeserialize = 0
			}

			speeds, err := DeriveSpeeds(ds)
			chk.Nil(speeds)
			var de *DomainError
			chk.True(errors.As(err, &de))
			chk.Equal("B", de.Name)
			chk.Equal(1, de.Row)
			chk.Equal(m.Source(), de.Field)
			chk.Contains(de.Error(), "record 2 (B)")
		})
	}
}

func TestDomainErrorOverflow(t *testing.T) {
	chk := require.New(t)

	ds := append(lutfmt.Dataset(nil), twoRecords...)
	ds[0].CBORDeserialize = 1e-308

	speeds, err := DeriveSpeeds(ds)
	chk.Nil(speeds)
	var de *DomainError
	chk.True(errors.As(err, &de))
	chk.Equal(0, de.Row)
	chk.Equal(lutfmt.ColCBORDeserialize, de.Field)
	chk.Equal(1e-308, de.Value)
	chk.Contains(de.Error(), "overflows")

	// Tiny but representable quotients still derive.
	ds[0].CBORDeserialize = 1e-300
	speeds, err = DeriveSpeeds(ds)
	chk.NoError(err)
	chk.False(math.IsInf(speeds[0].CBORDeserialize, 0))
}

func TestMetricNames(t *testing.T) {
	chk := require.New(t)

	var names []string
	for _, m := range Metrics {
		names = append(names, m.String())
	}
	chk.Equal([]string{"Build Speed", "CBOR Serialize Speed", "CBOR Deserialize Speed",
		"JSON Serialize Speed", "JSON Deserialize Speed"}, names)
	chk.Equal("Metric(9)", Metric(9).String())
}

func TestSpeedIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		dur := rapid.Float64Range(1e-6, 1e4)
		ds := make(lutfmt.Dataset, n)
		for i := range ds {
			ds[i] = lutfmt.Record{
				Name:            rapid.StringN(1, 8, -1).Draw(t, "name"),
				InputSize:       rapid.Int64Range(0, 1<<40).Draw(t, "input_size"),
				Build:           dur.Draw(t, "build"),
				CBORSerialize:   dur.Draw(t, "cbor_serialize"),
				CBORDeserialize: dur.Draw(t, "cbor_deserialize"),
				JSONSerialize:   dur.Draw(t, "json_serialize"),
				JSONDeserialize: dur.Draw(t, "json_deserialize"),
			}
		}

		speeds, err := DeriveSpeeds(ds)
		if err != nil {
			t.Fatal(err)
		}
		if len(speeds) != len(ds) {
			t.Fatalf("got %d speed records for %d records", len(speeds), len(ds))
		}
		for i, rec := range ds {
			gb := float64(rec.InputSize) / (1 << 30)
			want := map[Metric]float64{
				BuildSpeed:           gb / rec.Build,
				CBORSerializeSpeed:   gb / rec.CBORSerialize,
				CBORDeserializeSpeed: gb / rec.CBORDeserialize,
				JSONSerializeSpeed:   gb / rec.JSONSerialize,
				JSONDeserializeSpeed: gb / rec.JSONDeserialize,
			}
			if speeds[i].Name != rec.Name {
				t.Fatalf("record %d: got name %q, want %q", i, speeds[i].Name, rec.Name)
			}
			for m, w := range want {
				got := speeds[i].Get(m)
				if math.Abs(got-w) > 1e-9*math.Abs(w) {
					t.Fatalf("record %d %s: got %v, want %v", i, m, got, w)
				}
			}
		}
	})
}
