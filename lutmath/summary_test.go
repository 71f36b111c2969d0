// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	chk := require.New(t)

	speeds := []SpeedRecord{
		{Name: "a", Build: 1, CBORSerialize: 2, CBORDeserialize: 1, JSONSerialize: 1, JSONDeserialize: 1},
		{Name: "b", Build: 4, CBORSerialize: 8, CBORDeserialize: 1, JSONSerialize: 1, JSONDeserialize: 1},
	}
	sums := Summarize(speeds)
	chk.Len(sums, len(Metrics))

	build := sums[0]
	chk.Equal(BuildSpeed, build.Metric)
	chk.InDelta(2.5, build.Mean, 1e-12)
	chk.InDelta(2.0, build.GeoMean, 1e-12)
	chk.Equal(1.0, build.Min)
	chk.Equal(4.0, build.Max)
	chk.Empty(build.Warnings)

	cser := sums[1]
	chk.Equal(CBORSerializeSpeed, cser.Metric)
	chk.InDelta(4.0, cser.GeoMean, 1e-12)
}

func TestSummarizeZeroInput(t *testing.T) {
	chk := require.New(t)

	sums := Summarize([]SpeedRecord{{Name: "empty"}, {Name: "x", Build: 1, CBORSerialize: 1, CBORDeserialize: 1, JSONSerialize: 1, JSONDeserialize: 1}})
	chk.True(math.IsNaN(sums[0].GeoMean))
	chk.Len(sums[0].Warnings, 1)
	chk.Contains(sums[0].Warnings[0].Error(), "Build Speed")
	chk.Nil(Summarize(nil))
}
