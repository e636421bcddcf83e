// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhstat

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/google/safehtml/template"
	"github.com/labubus/jmhreport/internal/texttab"
)

// csvHeader is the header row of FormatCSV.
var csvHeader = []string{"BenchmarkName", "Mean (ms)", "Std Dev", "Min (ms)", "Max (ms)", "Iterations"}

// FormatCSV writes t to w as CSV, one row per table row, under the
// header BenchmarkName, Mean (ms), Std Dev, Min (ms), Max (ms),
// Iterations. Undefined statistics are written as empty cells.
func FormatCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, row := range t.Rows {
		cw.Write([]string{
			row.Label(),
			formatValue(row.Mean),
			formatValue(row.StdDev),
			formatValue(row.Min),
			formatValue(row.Max),
			strconv.Itoa(row.Count),
		})
	}
	cw.Flush()
	return cw.Error()
}

// formatValue formats x in the shortest form that round trips, or ""
// if x is NaN.
func formatValue(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FormatText writes title followed by a text table of rows to w.
func FormatText(w io.Writer, title string, t *Table) error {
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	var tab texttab.Table
	tab.Row().Cell("benchmark").Cell("mean", texttab.Right).Cell("std dev", texttab.Right).Cell("n", texttab.Right)
	tab.Rule()
	for _, row := range t.Rows {
		sd := "-"
		if !math.IsNaN(row.StdDev) {
			sd = "±" + formatValue(row.StdDev)
		}
		tab.Row().
			Cell(row.Label()).
			Cell(formatValue(row.Mean), texttab.Right).
			Cell(sd, texttab.Right).
			Cell(strconv.Itoa(row.Count), texttab.Right)
	}
	return tab.Format(w)
}

const htmlText = `<table class="jmhreport">
<thead>
<tr><th>Benchmark<th>Mean (ms)<th>Std Dev<th>Min (ms)<th>Max (ms)<th>Iterations
</thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Label}}<td>{{fmtValue .Mean}}<td>{{fmtValue .StdDev}}<td>{{fmtValue .Min}}<td>{{fmtValue .Max}}<td>{{.Count}}
{{- end}}
</tbody>
</table>
`

var htmlTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"fmtValue": formatValue,
}).Parse(htmlText))

// FormatHTML writes t to w as an HTML table with the same columns as
// FormatCSV.
func FormatHTML(w io.Writer, t *Table) error {
	return htmlTemplate.Execute(w, t)
}
