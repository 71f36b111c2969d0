// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lutfmt

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// A Reader parses a results table.
type Reader struct {
	in       *bufio.Reader
	csv      *csv.Reader
	fileName string

	// index maps each required column to its field index.
	index map[string]int
}

// NewReader constructs a reader to parse a results table from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	in := bufio.NewReader(r)
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{in: in, csv: cr, fileName: fileName}
}

// Load reads the results table at path.
//
// If path cannot be opened or read, Load returns an *AccessError. If
// the table is malformed, it returns a *FormatError.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{"open", path, err}
	}
	defer f.Close()
	return NewReader(f, path).ReadAll()
}

// ReadAll reads every record of the table. It fails on the first row
// that does not conform; no partial Dataset is returned.
func (r *Reader) ReadAll() (Dataset, error) {
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	var ds Dataset
	for {
		fields, err := r.csv.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, r.wrapErr(err)
		}
		line, _ := r.csv.FieldPos(0)
		rec, err := r.parseRow(fields, line)
		if err != nil {
			return nil, err
		}
		ds = append(ds, rec)
	}
	if len(ds) == 0 {
		return nil, &FormatError{r.fileName, 1, "", "no benchmark records"}
	}
	return ds, nil
}

func (r *Reader) readHeader() error {
	// Spreadsheet exports often start with a UTF-8 byte order mark.
	if b, err := r.in.Peek(len(bom)); err == nil && string(b) == bom {
		r.in.Discard(len(bom))
	}
	header, err := r.csv.Read()
	if err == io.EOF {
		return &FormatError{r.fileName, 1, "", "missing header row"}
	} else if err != nil {
		return r.wrapErr(err)
	}
	r.index = make(map[string]int, len(Columns))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := r.index[name]; ok {
			return &FormatError{r.fileName, 1, name, "duplicate column"}
		}
		r.index[name] = i
	}
	for _, col := range Columns {
		if _, ok := r.index[col]; !ok {
			return &FormatError{r.fileName, 1, col, "missing column"}
		}
	}
	return nil
}

const bom = "\ufeff"

// wrapErr converts an error from the CSV layer into a *FormatError if
// it concerns the table's syntax, or an *AccessError otherwise.
func (r *Reader) wrapErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &FormatError{r.fileName, pe.Line, "", pe.Err.Error()}
	}
	return &AccessError{"read", r.fileName, err}
}

func (r *Reader) parseRow(fields []string, line int) (Record, error) {
	p := rowParser{fields: fields, index: r.index}
	rec := Record{
		Name:            p.field(ColName),
		InputSize:       p.size(ColInputSize),
		Build:           p.duration(ColBuild),
		CBORSerialize:   p.duration(ColCBORSerialize),
		CBORDeserialize: p.duration(ColCBORDeserialize),
		JSONSerialize:   p.duration(ColJSONSerialize),
		JSONDeserialize: p.duration(ColJSONDeserialize),
		CBORSize:        p.size(ColCBORSize),
		JSONSize:        p.size(ColJSONSize),
	}
	if p.col != "" {
		return Record{}, &FormatError{r.fileName, line, p.col, p.msg}
	}
	return rec, nil
}

// rowParser extracts typed values from a row. It records only the
// first failure; later calls after a failure return zero values.
type rowParser struct {
	fields []string
	index  map[string]int

	col, msg string
}

func (p *rowParser) fail(col, msg string) {
	if p.col == "" {
		p.col, p.msg = col, msg
	}
}

func (p *rowParser) field(col string) string {
	return strings.TrimSpace(p.fields[p.index[col]])
}

func (p *rowParser) size(col string) int64 {
	s := p.field(col)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail(col, "invalid integer "+strconv.Quote(s))
		return 0
	}
	if v < 0 {
		p.fail(col, "negative size "+s)
		return 0
	}
	return v
}

func (p *rowParser) duration(col string) float64 {
	s := p.field(col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(col, "invalid number "+strconv.Quote(s))
		return 0
	}
	if v < 0 {
		p.fail(col, "negative duration "+s)
		return 0
	}
	return v
}
