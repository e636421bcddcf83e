// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A LineChart shows one line with point markers per Series.
type LineChart struct {
	Title          string
	XLabel, YLabel string
	Series         []Series
}

// A Series is one line of a LineChart.
type Series struct {
	Label  string
	Points plotter.XYs

	// Color and Shape style the line and its markers. A nil Color
	// picks a palette color by series index and a nil Shape draws
	// circles.
	Color color.Color
	Shape draw.GlyphDrawer
}

// Plot builds the chart. Series with no points are omitted from the
// chart and its legend; a chart with no points has empty axes.
func (c *LineChart) Plot() (*plot.Plot, error) {
	p := newPlot(c.Title)
	addGrid(p, false)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	p.Legend.Left = true

	colors := Palette(len(c.Series))
	for i, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(s.Points)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		clr := s.Color
		if clr == nil {
			clr = colors[i]
		}
		shape := s.Shape
		if shape == nil {
			shape = draw.CircleGlyph{}
		}
		line.Color = clr
		line.Width = vg.Points(1.5)
		points.Color = clr
		points.Shape = shape
		points.Radius = vg.Points(3)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	return p, nil
}
