// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhstat groups JMH records and summarizes the scores of each
// group into a Table, which it can format as CSV, text, or HTML.
package jmhstat

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/labubus/jmhreport/jmhfmt"
	"github.com/labubus/jmhreport/jmhmath"
	"github.com/labubus/jmhreport/jmhproc"
)

const scoreCol = "score"

func keyCol(i int) string {
	return fmt.Sprintf("key%d", i)
}

// Aggregate groups rs by the keys extracted by projs and summarizes
// the scores of each group. Every summary statistic is rounded to 3
// decimal places. The rows of the result are in ascending order of
// mean; rows with equal means keep the order in which their key first
// appeared in rs.
//
// If rs is empty, Aggregate returns an empty Table.
func Aggregate(rs []*jmhfmt.Record, projs ...jmhproc.Projection) *Table {
	if len(rs) == 0 {
		return new(Table)
	}

	var b table.Builder
	keys := make([]string, len(projs))
	for i, proj := range projs {
		col := make([]string, len(rs))
		for j, r := range rs {
			col[j] = proj(r)
		}
		keys[i] = keyCol(i)
		b.Add(keys[i], col)
	}
	scores := make([]float64, len(rs))
	for i, r := range rs {
		scores[i] = r.Score
	}
	b.Add(scoreCol, scores)

	agg := ggstat.Agg(keys...)(
		ggstat.AggMean(scoreCol),
		aggStdDev(scoreCol),
		ggstat.AggMin(scoreCol),
		ggstat.AggMax(scoreCol),
		ggstat.AggCount(""),
	)
	res := table.Flatten(agg.F(b.Done()))

	keyVals := make([][]string, len(keys))
	for i, k := range keys {
		keyVals[i] = res.MustColumn(k).([]string)
	}
	var (
		means  = res.MustColumn("mean " + scoreCol).([]float64)
		sds    = res.MustColumn("stddev " + scoreCol).([]float64)
		mins   = res.MustColumn("min " + scoreCol).([]float64)
		maxes  = res.MustColumn("max " + scoreCol).([]float64)
		counts = res.MustColumn("count").([]int)
	)

	t := &Table{Rows: make([]*Row, res.Len())}
	for i := range t.Rows {
		key := make([]string, len(keys))
		for k := range keys {
			key[k] = keyVals[k][i]
		}
		sum := jmhmath.Summary{
			Mean:   means[i],
			StdDev: sds[i],
			Min:    mins[i],
			Max:    maxes[i],
			Count:  counts[i],
		}
		t.Rows[i] = &Row{Key: key, Summary: sum.Rounded()}
	}
	Sort(t, ByMean)
	return t
}

// aggStdDev returns an aggregate function that computes the sample
// standard deviation of col, in a column named "stddev <col>". Groups
// with fewer than two rows get NaN.
func aggStdDev(col string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		sds := make([]float64, 0, len(input.Tables()))
		var xs []float64
		for _, gid := range input.Tables() {
			slice.Convert(&xs, input.Table(gid).MustColumn(col))
			sds = append(sds, jmhmath.StdDev(xs))
		}
		b.Add("stddev "+col, sds)
	}
}
