// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhproc

import (
	"math"
	"strings"

	"github.com/labubus/jmhreport/jmhfmt"
)

// A Filter selects Records.
type Filter func(r *jmhfmt.Record) bool

// Apply returns the Records of rs matched by every filter in fs, in
// their original order. rs is not modified.
func Apply(rs []*jmhfmt.Record, fs ...Filter) []*jmhfmt.Record {
	var out []*jmhfmt.Record
next:
	for _, r := range rs {
		for _, f := range fs {
			if !f(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// ModeIs matches Records measured in mode.
func ModeIs(mode string) Filter {
	return func(r *jmhfmt.Record) bool {
		return r.Mode == mode
	}
}

// NameIn matches Records whose display name is one of names.
func NameIn(names ...string) Filter {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(r *jmhfmt.Record) bool {
		return set[r.Name()]
	}
}

// BenchmarkContains matches Records whose fully qualified identifier
// contains substr.
func BenchmarkContains(substr string) Filter {
	return func(r *jmhfmt.Record) bool {
		return strings.Contains(r.Benchmark, substr)
	}
}

// HasParam matches Records with a numeric value in parameter column
// col.
func HasParam(col string) Filter {
	return func(r *jmhfmt.Record) bool {
		return !math.IsNaN(r.ParamValue(col))
	}
}
