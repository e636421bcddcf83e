// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads JMH CSV results.
//
// Its API is modeled on bufio.Scanner. The header row is read by the
// first call to Scan; a header that lacks any of the required columns
// is reported as a *SyntaxError from Err.
type Reader struct {
	r        *csv.Reader
	fileName string
	err      error

	header  bool
	cols    columns
	params  []string
	result  *Record
	line    int
	dropped int
}

// columns holds the indexes of the interesting columns of the header.
type columns struct {
	benchmark, mode, score int
	params                 []int
}

// Required columns. A missing one is a fatal syntax error; otherwise
// rows would be grouped under empty or wrong names.
const (
	ColBenchmark = "Benchmark"
	ColMode      = "Mode"
	ColScore     = "Score"
)

// A SyntaxError represents a syntax error on a particular line of a
// JMH results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader to parse JMH CSV results from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{r: cr, fileName: fileName}
}

func (r *Reader) newSyntaxError(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, line, fmt.Sprintf(format, args...)}
}

// Scan advances the reader to the next record and reports whether a
// record was read. Rows whose Benchmark is empty or whose Score is
// not a number are skipped and counted by Dropped. If Scan reaches
// EOF or an error occurs, it returns false, in which case the caller
// should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.header {
		if err := r.readHeader(); err != nil {
			r.err = err
			return false
		}
	}
	for {
		row, err := r.r.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			r.err = r.wrapErr(err)
			return false
		}
		r.line, _ = r.r.FieldPos(0)
		if rec, ok := r.parseRow(row); ok {
			r.result = rec
			return true
		}
		r.dropped++
	}
}

func (r *Reader) readHeader() error {
	row, err := r.r.Read()
	if err == io.EOF {
		return r.newSyntaxError(1, "missing header row")
	}
	if err != nil {
		return r.wrapErr(err)
	}
	r.header = true
	r.cols = columns{benchmark: -1, mode: -1, score: -1}
	for i, name := range row {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch {
		case name == ColBenchmark:
			r.cols.benchmark = i
		case name == ColMode:
			r.cols.mode = i
		case name == ColScore:
			r.cols.score = i
		case IsParamColumn(name):
			r.cols.params = append(r.cols.params, i)
			r.params = append(r.params, name)
		}
	}
	var missing []string
	if r.cols.benchmark < 0 {
		missing = append(missing, ColBenchmark)
	}
	if r.cols.mode < 0 {
		missing = append(missing, ColMode)
	}
	if r.cols.score < 0 {
		missing = append(missing, ColScore)
	}
	if len(missing) > 0 {
		return r.newSyntaxError(1, "missing required column(s) %s", strings.Join(missing, ", "))
	}
	return nil
}

// parseRow converts one data row to a Record. It returns false if the
// row must be dropped.
func (r *Reader) parseRow(row []string) (*Record, bool) {
	id := strings.TrimSpace(row[r.cols.benchmark])
	if id == "" {
		return nil, false
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(row[r.cols.score]), 64)
	if err != nil || math.IsNaN(score) {
		return nil, false
	}
	rec := &Record{
		Benchmark: id,
		Mode:      strings.TrimSpace(row[r.cols.mode]),
		Score:     score,
		line:      r.line,
	}
	if len(r.cols.params) > 0 {
		rec.Params = make([]Param, len(r.cols.params))
		for i, col := range r.cols.params {
			raw := strings.TrimSpace(row[col])
			rec.Params[i] = NewParam(r.params[i], raw)
		}
	}
	return rec, true
}

func (r *Reader) wrapErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return r.newSyntaxError(pe.Line, "%v", pe.Err)
	}
	return fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
}

// Result returns the record that was just read by Scan. The Reader
// does not reuse Records, so callers may retain it.
func (r *Reader) Result() *Record {
	return r.result
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ParamColumns returns the headers of the parameter columns, in
// input order. It is only valid after the first call to Scan.
func (r *Reader) ParamColumns() []string {
	return r.params
}

// Dropped returns the number of rows skipped so far because they had
// no benchmark identifier or a non-numeric score.
func (r *Reader) Dropped() int {
	return r.dropped
}
