// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhproc

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labubus/jmhreport/jmhfmt"
)

func TestCategorize(t *testing.T) {
	check := func(name string, want Component) {
		t.Helper()
		if got := Categorize(name); got != want {
			t.Errorf("Categorize(%q) = %q, want %q", name, got, want)
		}
	}
	check("selectAllBooks", Database)
	check("insertBookMetadata", Database)
	check("countAllBooks", Database)
	check("DatabaseQuery", Database)
	check("selectAllBooksIndex", Database)
	check("buildInMemoryInvertedIndex", IndexOperations)
	check("serializeIndex", IndexOperations)
	check("WORDFrequency", IndexOperations)
	check("fullSearchPipeline", SearchService)
	check("rankResults", SearchService)
	check("filterByAuthor", SearchService)
	check("tokenizeText", DataProcessing)
	check("extractBookMetadata", DataProcessing)
	check("completePipeline", EndToEnd)
	check("", EndToEnd)
}

func TestCategorizeTotal(t *testing.T) {
	valid := make(map[Component]bool)
	for _, c := range Components() {
		valid[c] = true
	}
	if len(valid) != 5 {
		t.Fatalf("Components() = %q, want 5 distinct", Components())
	}
	for _, name := range []string{"x", "completeIndexingPipeline", strings.Repeat("z", 100), "ñandú"} {
		c1, c2 := Categorize(name), Categorize(name)
		if c1 != c2 {
			t.Errorf("Categorize(%q) not deterministic: %q vs %q", name, c1, c2)
		}
		if !valid[c1] {
			t.Errorf("Categorize(%q) = %q, not a known component", name, c1)
		}
	}
}

func records() []*jmhfmt.Record {
	p := func(v float64) []jmhfmt.Param {
		return []jmhfmt.Param{{Column: "Param: n", Value: v}}
	}
	return []*jmhfmt.Record{
		{Benchmark: "o.DatabaseBenchmark.selectAllBooks", Mode: "avgt", Score: 1, Params: p(10)},
		{Benchmark: "o.SearchBenchmark.fullSearchPipeline", Mode: "avgt", Score: 2, Params: p(math.NaN())},
		{Benchmark: "o.DatabaseBenchmark.insertBookMetadata", Mode: "thrpt", Score: 3, Params: p(50)},
		{Benchmark: "plain", Mode: "thrpt", Score: 4},
	}
}

func names(rs []*jmhfmt.Record) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Name())
	}
	return out
}

func TestFilters(t *testing.T) {
	rs := records()
	check := func(name string, got []*jmhfmt.Record, want ...string) {
		t.Helper()
		if diff := cmp.Diff(want, names(got)); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", name, diff)
		}
	}
	check("ModeIs", Apply(rs, ModeIs("thrpt")), "insertBookMetadata", "plain")
	check("NameIn", Apply(rs, NameIn("plain", "selectAllBooks", "missing")), "selectAllBooks", "plain")
	check("BenchmarkContains", Apply(rs, BenchmarkContains("DatabaseBenchmark")), "selectAllBooks", "insertBookMetadata")
	check("HasParam", Apply(rs, HasParam("Param: n")), "selectAllBooks", "insertBookMetadata")
	check("combined", Apply(rs, BenchmarkContains("Database"), ModeIs("avgt")), "selectAllBooks")
	check("none", Apply(rs, ModeIs("ss")))
	check("all", Apply(rs), "selectAllBooks", "fullSearchPipeline", "insertBookMetadata", "plain")
	if len(rs) != 4 {
		t.Errorf("Apply modified its input")
	}
}

func TestProjections(t *testing.T) {
	rs := records()
	check := func(name string, p Projection, want ...string) {
		t.Helper()
		var got []string
		for _, r := range rs {
			got = append(got, p(r))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", name, diff)
		}
	}
	check("ByName", ByName, "selectAllBooks", "fullSearchPipeline", "insertBookMetadata", "plain")
	check("ByComponent", ByComponent, "Database", "Search Service", "Database", "End-to-End")
	check("ByMode", ByMode, "avgt", "avgt", "thrpt", "thrpt")
	check("ByParam", ByParam("Param: n"), "10", "NaN", "50", "NaN")
}
