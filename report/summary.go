// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/labubus/jmhreport/jmhchart"
	"github.com/labubus/jmhreport/jmhfmt"
	"github.com/labubus/jmhreport/jmhproc"
	"github.com/labubus/jmhreport/jmhstat"
)

// SummaryTable summarizes set by benchmark display name, in ascending
// order of mean score.
func SummaryTable(set *jmhfmt.Set) *jmhstat.Table {
	return jmhstat.Aggregate(set.Records, jmhproc.ByName)
}

// Summary writes the summary table as CSV and prints the Top fastest
// and slowest benchmarks. It never skips: an empty set produces a
// header-only file.
type Summary struct {
	Top int
}

func (Summary) Name() string { return "summary statistics" }
func (Summary) File() string { return "summary_statistics.csv" }

func (e Summary) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	t := SummaryTable(set)
	var buf bytes.Buffer
	if err := jmhstat.FormatCSV(&buf, t); err != nil {
		return err
	}
	if err := jmhchart.WriteFile(filepath.Join(dir, e.File()), buf.Bytes()); err != nil {
		return err
	}
	if len(t.Rows) == 0 {
		return nil
	}

	fastest := t.Head(e.Top)
	fmt.Fprintln(w)
	if err := jmhstat.FormatText(w, fmt.Sprintf("Top %d fastest operations:", len(fastest.Rows)), fastest); err != nil {
		return err
	}
	slowest := &jmhstat.Table{Rows: append([]*jmhstat.Row(nil), t.Tail(e.Top).Rows...)}
	jmhstat.Sort(slowest, jmhstat.Reverse(jmhstat.ByMean))
	fmt.Fprintln(w)
	return jmhstat.FormatText(w, fmt.Sprintf("Top %d slowest operations:", len(slowest.Rows)), slowest)
}

// SummaryHTML writes the summary table as HTML.
type SummaryHTML struct{}

func (SummaryHTML) Name() string { return "HTML summary" }
func (SummaryHTML) File() string { return "summary_statistics.html" }

func (e SummaryHTML) Emit(w io.Writer, dir string, set *jmhfmt.Set) error {
	var buf bytes.Buffer
	if err := jmhstat.FormatHTML(&buf, SummaryTable(set)); err != nil {
		return err
	}
	return jmhchart.WriteFile(filepath.Join(dir, e.File()), buf.Bytes())
}
