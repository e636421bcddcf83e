// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhproc classifies, projects, and filters JMH records.
//
// A Projection extracts a grouping key from a Record; the aggregation
// in package jmhstat groups records by one or more projections.
// Categorize maps a display name to one of a fixed set of component
// buckets.
package jmhproc

import "strings"

// A Component is a coarse bucket of related benchmarks.
type Component string

const (
	Database        Component = "Database"
	IndexOperations Component = "Index Operations"
	SearchService   Component = "Search Service"
	DataProcessing  Component = "Data Processing"
	EndToEnd        Component = "End-to-End"
)

// A rule assigns component to any name containing one of keywords.
type rule struct {
	component Component
	keywords  []string
}

// rules is consulted in order; the first match wins. A name such as
// "selectAllBooksIndex" matches both Database and IndexOperations and
// is therefore a Database benchmark.
var rules = []rule{
	{Database, []string{"database", "insert", "select", "query", "count"}},
	{IndexOperations, []string{"index", "serialize", "deserialize", "word"}},
	{SearchService, []string{"search", "filter", "rank"}},
	{DataProcessing, []string{"tokenize", "extract", "metadata"}},
}

// Categorize returns the component of the benchmark with display name
// name. Keywords are matched as case-insensitive substrings. Names
// that match no rule are EndToEnd.
func Categorize(name string) Component {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.component
			}
		}
	}
	return EndToEnd
}

// Components returns every Component in rule order, ending with the
// default.
func Components() []Component {
	cs := make([]Component, 0, len(rules)+1)
	for _, r := range rules {
		cs = append(cs, r.component)
	}
	return append(cs, EndToEnd)
}
