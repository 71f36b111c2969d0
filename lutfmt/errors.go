// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutfmt

import "fmt"

// A FormatError reports a results table that does not conform to the
// expected shape: a missing column, a malformed row, or a value that
// cannot be parsed as its column's type.
type FormatError struct {
	FileName string
	Line     int
	Column   string // empty if the error is not about one column
	Msg      string
}

func (e *FormatError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: column %s: %s", e.FileName, e.Line, e.Column, e.Msg)
}

// An AccessError reports a results table that could not be opened or
// read.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
