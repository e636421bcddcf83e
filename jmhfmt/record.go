// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhfmt reads benchmark results in the CSV format written by
// JMH (the Java Microbenchmark Harness) with "-rf csv".
//
// A JMH CSV file has one row per benchmark invocation. The columns
// this package cares about are "Benchmark" (the fully qualified
// benchmark method), "Mode" (avgt, thrpt, sample, ss, ...), "Score",
// and any number of parameter columns, whose header contains "Param"
// (JMH writes them as "Param: name"). Other columns, such as
// "Threads", "Samples", "Score Error (99.9%)" and "Unit", are ignored.
package jmhfmt

import (
	"math"
	"strconv"
	"strings"
)

// A Record is a single benchmark measurement.
type Record struct {
	// Benchmark is the fully qualified benchmark identifier, such
	// as "org.labubus.benchmarks.DatabaseBenchmark.selectAllBooks".
	// It is never empty.
	Benchmark string

	// Mode is the JMH measurement mode, e.g. "avgt" or "thrpt".
	Mode string

	// Score is the measured value.
	Score float64

	// Params holds this record's parameter cells, in the order of
	// the parameter columns in the input header.
	Params []Param

	// line is the input line this Record was read from.
	line int
}

// A Param is one parameter cell of a Record.
type Param struct {
	// Column is the header of the parameter column.
	Column string

	// Raw is the cell exactly as it appeared in the input.
	Raw string

	// Value is Raw coerced to a number, or NaN if Raw is not
	// numeric (including when it is empty).
	Value float64
}

// NewParam returns the Param for the cell raw in column col, coercing
// raw to a number.
func NewParam(col, raw string) Param {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v = math.NaN()
	}
	return Param{Column: col, Raw: raw, Value: v}
}

// Name returns the display name of r. See ShortName.
func (r *Record) Name() string {
	return ShortName(r.Benchmark)
}

// Param returns r's cell in parameter column col.
func (r *Record) Param(col string) (Param, bool) {
	for _, p := range r.Params {
		if p.Column == col {
			return p, true
		}
	}
	return Param{Column: col, Value: math.NaN()}, false
}

// ParamValue returns the numeric value of r's cell in parameter column
// col, or NaN if r has no such cell or it is not numeric.
func (r *Record) ParamValue(col string) float64 {
	p, _ := r.Param(col)
	return p.Value
}

// Line returns the input line number r was read from, or 0 if r was
// not read by a Reader.
func (r *Record) Line() int {
	return r.line
}

// Throughput is the JMH mode in which higher scores are better.
const Throughput = "thrpt"

// ShortName derives a short display name from a fully qualified
// benchmark identifier: the part after the last ".", or id itself if
// it has no ".".
//
// Distinct identifiers that share a final segment map to the same
// display name. Callers that group by display name therefore merge
// such benchmarks, which is intentional.
func ShortName(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// IsParamColumn reports whether header names a JMH parameter column.
func IsParamColumn(header string) bool {
	return strings.Contains(header, "Param")
}
