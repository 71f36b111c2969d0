// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lutunit formats benchmark quantities with unit prefixes.
package lutunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal scales by powers of 1000 using SI prefixes, such
	// as "m" and "k". Durations in seconds use Decimal.
	Decimal Class = iota
	// Binary scales by powers of 1024 using IEC prefixes, such
	// as "Ki" and "Mi". Sizes in bytes use Binary.
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to s.
// For example, with a Scaler of {1, 1e6, "M"}, Format(123456789)
// returns "123.5M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	return string(append(buf, s.Prefix...))
}

type prefix struct {
	factor float64
	name   string
}

// Prefixes from largest to smallest. Binary prefixes stop at the unit
// because fractional bytes are not meaningful.
var (
	siPrefixes = []prefix{
		{1e12, "T"}, {1e9, "G"}, {1e6, "M"}, {1e3, "k"}, {1, ""},
		{1e-3, "m"}, {1e-6, "µ"}, {1e-9, "n"},
	}
	iecPrefixes = []prefix{
		{1 << 40, "Ti"}, {1 << 30, "Gi"}, {1 << 20, "Mi"}, {1 << 10, "Ki"}, {1, ""},
	}
)

// CommonScale returns a Scaler that renders every value in vals with
// the same prefix. The prefix is the largest one that keeps the value
// of largest magnitude at or above 1, and the precision shows three
// significant digits of that value.
func CommonScale(vals []float64, cls Class) Scaler {
	var prefixes []prefix
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		prefixes = siPrefixes
	case Binary:
		prefixes = iecPrefixes
	}

	var largest float64
	for _, v := range vals {
		if v = math.Abs(v); v > largest && !math.IsInf(v, 0) {
			largest = v
		}
	}
	if largest == 0 {
		return Scaler{0, 1, ""}
	}

	p := prefixes[len(prefixes)-1]
	for _, cand := range prefixes {
		if largest >= cand.factor {
			p = cand
			break
		}
	}
	prec := 2 - int(math.Floor(math.Log10(largest/p.factor)))
	if prec < 0 {
		prec = 0
	}
	return Scaler{prec, p.factor, p.name}
}

// Scale formats val using three significant digits and a unit prefix
// of class cls.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}
