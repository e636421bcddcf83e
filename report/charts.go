// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/labubus/jmhreport/jmhchart"
	"github.com/labubus/jmhreport/jmhfmt"
	"github.com/labubus/jmhreport/jmhproc"
	"github.com/labubus/jmhreport/jmhstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Benchmarks charted by Scalability, in legend order.
var scalabilityBenchmarks = []string{
	"completeIndexingPipeline",
	"buildInMemoryInvertedIndex",
	"selectAllBooks",
	"fullSearchPipeline",
}

// Database benchmarks are identified by this substring of their fully
// qualified name.
const databaseBenchmark = "DatabaseBenchmark"

var (
	databaseReads  = []string{"selectBookById", "selectAllBooks", "countAllBooks"}
	databaseWrites = []string{"insertBookMetadata"}
)

// writePNG renders plots side by side into the file dir/file.
func writePNG(dir, file string, w, h vg.Length, plots ...*plot.Plot) error {
	data, err := jmhchart.Render(w, h, plots...)
	if err != nil {
		return err
	}
	return jmhchart.WriteFile(filepath.Join(dir, file), data)
}

// barHeight returns a chart height that fits n horizontal bars.
func barHeight(least vg.Length, n int) vg.Length {
	if h := vg.Length(n) * vg.Inch / 4; h > least {
		return h
	}
	return least
}

// paramPoints returns the (parameter, score) points of the records in
// rs named name, in ascending parameter order. Records with no numeric
// value in col are omitted.
func paramPoints(rs []*jmhfmt.Record, name, col string) plotter.XYs {
	var xys plotter.XYs
	for _, r := range jmhproc.Apply(rs, jmhproc.NameIn(name), jmhproc.HasParam(col)) {
		xys = append(xys, plotter.XY{X: r.ParamValue(col), Y: r.Score})
	}
	sort.SliceStable(xys, func(i, j int) bool { return xys[i].X < xys[j].X })
	return xys
}

// paramSeries returns one Series per name, with points taken from rs,
// and the total number of points.
func paramSeries(rs []*jmhfmt.Record, col string, names []string) ([]jmhchart.Series, int) {
	var ss []jmhchart.Series
	n := 0
	for _, name := range names {
		xys := paramPoints(rs, name, col)
		ss = append(ss, jmhchart.Series{Label: name, Points: xys})
		n += len(xys)
	}
	return ss, n
}

// OperationComparison charts the mean score of every benchmark.
type OperationComparison struct{}

func (OperationComparison) Name() string { return "operation comparison chart" }
func (OperationComparison) File() string { return "operation_comparison.png" }

func (e OperationComparison) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	if len(set.Records) == 0 {
		return skipf("no benchmark results")
	}
	t := jmhstat.Aggregate(set.Records, jmhproc.ByName)
	c := &jmhchart.BarChart{
		Title:      "Benchmark Operations Comparison\n(Lower is Better)",
		ValueLabel: "Average Time (ms)",
		Labels:     t.Labels(),
		Rows:       t.Summaries(),
		Horizontal: true,
		Color:      jmhchart.SteelBlue,
	}
	p, err := c.Plot()
	if err != nil {
		return err
	}
	return writePNG(dir, e.File(), 14*vg.Inch, barHeight(8*vg.Inch, len(t.Rows)), p)
}

// Scalability charts how a few key benchmarks scale with the first
// benchmark parameter.
type Scalability struct{}

func (Scalability) Name() string { return "scalability analysis" }
func (Scalability) File() string { return "scalability_analysis.png" }

func (e Scalability) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	col := set.FirstParam()
	if col == "" {
		return skipf("no parameter column")
	}
	rs := jmhproc.Apply(set.Records, jmhproc.NameIn(scalabilityBenchmarks...))
	if len(rs) == 0 {
		return skipf("no scalability benchmarks found")
	}
	series, n := paramSeries(rs, col, scalabilityBenchmarks)
	if n == 0 {
		return skipf("no numeric values in %q", col)
	}
	c := &jmhchart.LineChart{
		Title:  "Scalability Analysis\nHow Performance Changes with Dataset Size",
		XLabel: "Dataset Size (number of books)",
		YLabel: "Time (ms)",
		Series: series,
	}
	p, err := c.Plot()
	if err != nil {
		return err
	}
	return writePNG(dir, e.File(), 12*vg.Inch, 7*vg.Inch, p)
}

// ComponentBreakdown charts the mean score of each component bucket.
type ComponentBreakdown struct{}

func (ComponentBreakdown) Name() string { return "component breakdown" }
func (ComponentBreakdown) File() string { return "component_breakdown.png" }

func (e ComponentBreakdown) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	if len(set.Records) == 0 {
		return skipf("no benchmark results")
	}
	t := jmhstat.Aggregate(set.Records, jmhproc.ByComponent)
	c := &jmhchart.BarChart{
		Title:      "Performance by Component\n(Lower is Better)",
		ValueLabel: "Average Time (ms)",
		Labels:     t.Labels(),
		Rows:       t.Summaries(),
		Horizontal: true,
		Colors:     jmhchart.Palette(len(t.Rows)),
		Width:      vg.Points(24),
	}
	p, err := c.Plot()
	if err != nil {
		return err
	}
	return writePNG(dir, e.File(), 10*vg.Inch, 6*vg.Inch, p)
}

// DatabaseScaling charts database read and write benchmarks against
// the first benchmark parameter, side by side.
type DatabaseScaling struct{}

func (DatabaseScaling) Name() string { return "database scaling analysis" }
func (DatabaseScaling) File() string { return "database_scaling.png" }

func (e DatabaseScaling) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	rs := jmhproc.Apply(set.Records, jmhproc.BenchmarkContains(databaseBenchmark))
	if len(rs) == 0 {
		return skipf("no database benchmarks found")
	}
	col := set.FirstParam()
	if col == "" {
		return skipf("no parameter data for database benchmarks")
	}

	reads, _ := paramSeries(rs, col, databaseReads)
	writes, _ := paramSeries(rs, col, databaseWrites)
	for i := range writes {
		writes[i].Color = jmhchart.Orange
		writes[i].Shape = draw.SquareGlyph{}
	}
	var plots []*plot.Plot
	for _, c := range []*jmhchart.LineChart{
		{Title: "Database Read Operations", Series: reads},
		{Title: "Database Write Operations", Series: writes},
	} {
		c.XLabel = "Database Size (books)"
		c.YLabel = "Time (ms)"
		p, err := c.Plot()
		if err != nil {
			return err
		}
		plots = append(plots, p)
	}
	return writePNG(dir, e.File(), 16*vg.Inch, 6*vg.Inch, plots...)
}

// Throughput charts the mean score of every throughput benchmark,
// highest first.
type Throughput struct{}

func (Throughput) Name() string { return "throughput analysis" }
func (Throughput) File() string { return "throughput_analysis.png" }

func (e Throughput) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	rs := jmhproc.Apply(set.Records, jmhproc.ModeIs(jmhfmt.Throughput))
	if len(rs) == 0 {
		return skipf("no throughput benchmarks found")
	}
	t := jmhstat.Aggregate(rs, jmhproc.ByName)
	jmhstat.Sort(t, jmhstat.Reverse(jmhstat.ByMean))
	c := &jmhchart.BarChart{
		Title:      "Throughput Analysis\n(Higher is Better)",
		ValueLabel: "Operations per Second",
		Labels:     t.Labels(),
		Rows:       t.Summaries(),
		Color:      jmhchart.Green,
		Width:      vg.Points(24),
	}
	p, err := c.Plot()
	if err != nil {
		return err
	}
	return writePNG(dir, e.File(), 10*vg.Inch, 6*vg.Inch, p)
}
