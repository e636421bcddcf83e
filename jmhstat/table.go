// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhstat

import (
	"sort"
	"strings"

	"github.com/labubus/jmhreport/jmhmath"
)

// A Table is a list of summarized groups.
type Table struct {
	Rows []*Row
}

// A Row is the summary of one group of records.
type Row struct {
	// Key holds the projected group key, one element per
	// projection passed to Aggregate.
	Key []string

	jmhmath.Summary
}

// Label returns the key of r as a single string, with multiple key
// elements separated by " / ".
func (r *Row) Label() string {
	return strings.Join(r.Key, " / ")
}

// Labels returns the label of each row of t.
func (t *Table) Labels() []string {
	ls := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ls[i] = r.Label()
	}
	return ls
}

// Summaries returns the summary of each row of t.
func (t *Table) Summaries() []jmhmath.Summary {
	ss := make([]jmhmath.Summary, len(t.Rows))
	for i, r := range t.Rows {
		ss[i] = r.Summary
	}
	return ss
}

// Head returns a Table holding the first n rows of t, or all of t if
// it has fewer than n rows. The rows are shared with t.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Rows: t.Rows[:n]}
}

// Tail returns a Table holding the last n rows of t, or all of t if
// it has fewer than n rows. The rows are shared with t.
func (t *Table) Tail(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Rows: t.Rows[len(t.Rows)-n:]}
}

// A SortFunc reports whether row i of t sorts before row j.
type SortFunc func(t *Table, i, j int) bool

// ByMean sorts rows by ascending mean.
func ByMean(t *Table, i, j int) bool {
	return t.Rows[i].Mean < t.Rows[j].Mean
}

// ByLabel sorts rows by label.
func ByLabel(t *Table, i, j int) bool {
	return t.Rows[i].Label() < t.Rows[j].Label()
}

// Reverse returns a SortFunc that orders rows opposite to sortFunc.
// Rows that sortFunc considers equal remain equal.
func Reverse(sortFunc SortFunc) SortFunc {
	return func(t *Table, i, j int) bool { return sortFunc(t, j, i) }
}

// Sort sorts t in place by sortFunc. The sort is stable.
func Sort(t *Table, sortFunc SortFunc) {
	sort.SliceStable(t.Rows, func(i, j int) bool { return sortFunc(t, i, j) })
}
