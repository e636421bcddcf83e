// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhchart

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/labubus/jmhreport/jmhmath"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func summaries() []jmhmath.Summary {
	return []jmhmath.Summary{
		{Mean: 1, StdDev: math.NaN(), Min: 1, Max: 1, Count: 1},
		{Mean: 5, StdDev: 2, Min: 3, Max: 7, Count: 2},
	}
}

func checkPNG(t *testing.T, data []byte, wantW, wantH int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestBarChart(t *testing.T) {
	for _, horizontal := range []bool{false, true} {
		c := &BarChart{
			Title:      "bars",
			ValueLabel: "Time (ms)",
			Labels:     []string{"a", "b"},
			Rows:       summaries(),
			Horizontal: horizontal,
		}
		p, err := c.Plot()
		if err != nil {
			t.Fatalf("horizontal=%v: %v", horizontal, err)
		}
		data, err := Render(2*vg.Inch, 1.5*vg.Inch, p)
		if err != nil {
			t.Fatal(err)
		}
		checkPNG(t, data, 2*DPI, 1.5*DPI)
	}
}

func TestBarChartColors(t *testing.T) {
	c := &BarChart{
		Labels:     []string{"a", "b"},
		Rows:       summaries(),
		Horizontal: true,
		Colors:     Palette(2),
	}
	if _, err := c.Plot(); err != nil {
		t.Fatal(err)
	}

	c.Colors = Palette(1)
	if _, err := c.Plot(); err == nil {
		t.Errorf("want error for too few colors")
	}
	c.Colors = nil
	c.Labels = c.Labels[:1]
	if _, err := c.Plot(); err == nil {
		t.Errorf("want error for mismatched labels")
	}
	if _, err := (&BarChart{}).Plot(); err == nil {
		t.Errorf("want error for empty chart")
	}
}

func TestLineChart(t *testing.T) {
	c := &LineChart{
		Title:  "lines",
		XLabel: "Dataset Size",
		YLabel: "Time (ms)",
		Series: []Series{
			{Label: "one", Points: plotter.XYs{{X: 10, Y: 1}, {X: 50, Y: 3}}},
			{Label: "empty"},
			{Label: "two", Points: plotter.XYs{{X: 10, Y: 2}}, Color: Orange, Shape: draw.SquareGlyph{}},
		},
	}
	left, err := c.Plot()
	if err != nil {
		t.Fatal(err)
	}
	right, err := (&LineChart{Series: []Series{{Label: "w", Points: plotter.XYs{{X: 1, Y: 1}}}}}).Plot()
	if err != nil {
		t.Fatal(err)
	}
	data, err := Render(3*vg.Inch, 1.5*vg.Inch, left, right)
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, data, 3*DPI, 1.5*DPI)

	empty, err := (&LineChart{Title: "empty", Series: []Series{{Label: "empty"}}}).Plot()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render(vg.Inch, vg.Inch, empty); err != nil {
		t.Errorf("rendering empty chart: %v", err)
	}
	bad := &LineChart{Series: []Series{{Label: "nan", Points: plotter.XYs{{X: math.NaN(), Y: 1}}}}}
	if _, err := bad.Plot(); err == nil {
		t.Errorf("want error for NaN point")
	}
}

func TestRenderNothing(t *testing.T) {
	if _, err := Render(vg.Inch, vg.Inch, []*plot.Plot{}...); err == nil {
		t.Errorf("want error rendering no plots")
	}
}

func TestPalette(t *testing.T) {
	for _, n := range []int{0, 1, 5, 8, 11} {
		cs := Palette(n)
		if len(cs) != n {
			t.Errorf("Palette(%d) has %d colors", n, len(cs))
		}
		for i, c := range cs {
			if c == nil {
				t.Errorf("Palette(%d)[%d] is nil", n, i)
			}
		}
	}
	if cs := Palette(9); cs[0] != cs[8] {
		t.Errorf("Palette(9) does not cycle")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("file contains %q, want %q", got, "second")
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Errorf("directory has %d entries, want only out.png", len(ents))
	}

	if err := WriteFile(filepath.Join(dir, "missing", "x.png"), nil); err == nil {
		t.Errorf("want error writing into a missing directory")
	}
}
