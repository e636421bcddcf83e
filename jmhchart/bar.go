// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhchart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/labubus/jmhreport/jmhmath"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A BarChart shows one bar per summary, at the summary's mean, with an
// error bar of one standard deviation.
type BarChart struct {
	Title string

	// ValueLabel labels the value axis.
	ValueLabel string

	// Labels names each bar. It must be the same length as Rows.
	Labels []string
	Rows   []jmhmath.Summary

	// Horizontal draws the bars left to right, with the first bar
	// at the bottom.
	Horizontal bool

	// Color fills every bar, unless Colors is non-nil, in which
	// case Colors[i] fills bar i.
	Color  color.Color
	Colors []color.Color

	// Width is the width of each bar. If zero, it defaults to 12
	// points.
	Width vg.Length
}

// Plot builds the chart.
func (c *BarChart) Plot() (*plot.Plot, error) {
	if len(c.Labels) != len(c.Rows) {
		return nil, fmt.Errorf("%d labels for %d bars", len(c.Labels), len(c.Rows))
	}
	if c.Colors != nil && len(c.Colors) < len(c.Rows) {
		return nil, fmt.Errorf("%d colors for %d bars", len(c.Colors), len(c.Rows))
	}
	if len(c.Rows) == 0 {
		return nil, fmt.Errorf("no bars")
	}
	width := c.Width
	if width == 0 {
		width = vg.Points(12)
	}

	p := newPlot(c.Title)
	addGrid(p, c.Horizontal)

	means := make(plotter.Values, len(c.Rows))
	for i, r := range c.Rows {
		means[i] = r.Mean
	}

	// A plotter.BarChart has a single fill color, so per-bar
	// colors need one BarChart per bar.
	var bars []plot.Plotter
	if c.Colors == nil {
		b, err := c.newBars(means, width, c.Color)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	} else {
		for i, mean := range means {
			b, err := c.newBars(plotter.Values{mean}, width, c.Colors[i])
			if err != nil {
				return nil, err
			}
			b.XMin = float64(i)
			bars = append(bars, b)
		}
	}
	p.Add(bars...)

	errs := errorPoints{rows: c.Rows, horizontal: c.Horizontal}
	if c.Horizontal {
		eb, err := plotter.NewXErrorBars(errs)
		if err != nil {
			return nil, err
		}
		eb.CapWidth = width / 2
		p.Add(eb)
		p.NominalY(c.Labels...)
		p.X.Label.Text = c.ValueLabel
		p.X.Min = math.Min(0, p.X.Min)
	} else {
		eb, err := plotter.NewYErrorBars(errs)
		if err != nil {
			return nil, err
		}
		eb.CapWidth = width / 2
		p.Add(eb)
		p.NominalX(c.Labels...)
		p.Y.Label.Text = c.ValueLabel
		p.Y.Min = math.Min(0, p.Y.Min)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YTop
	}
	return p, nil
}

func (c *BarChart) newBars(vs plotter.Values, width vg.Length, fill color.Color) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(vs, width)
	if err != nil {
		return nil, err
	}
	b.Horizontal = c.Horizontal
	b.LineStyle.Width = 0
	if fill == nil {
		fill = SteelBlue
	}
	b.Color = fill
	return b, nil
}

// errorPoints places an error bar at the end of each bar. It
// implements plotter.XYer, plotter.XErrorer, and plotter.YErrorer.
type errorPoints struct {
	rows       []jmhmath.Summary
	horizontal bool
}

func (e errorPoints) Len() int { return len(e.rows) }

func (e errorPoints) XY(i int) (x, y float64) {
	if e.horizontal {
		return e.rows[i].Mean, float64(i)
	}
	return float64(i), e.rows[i].Mean
}

func (e errorPoints) XError(i int) (float64, float64) {
	b := e.rows[i].ErrorBar()
	return b, b
}

func (e errorPoints) YError(i int) (float64, float64) {
	b := e.rows[i].ErrorBar()
	return b, b
}
