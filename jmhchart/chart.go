// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhchart builds bar and line charts of benchmark summaries
// and renders them as PNG images.
package jmhchart

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of rendered images.
const DPI = 300

var (
	SteelBlue = color.RGBA{70, 130, 180, 255}
	Green     = color.RGBA{0, 128, 0, 255}
	Orange    = color.RGBA{255, 165, 0, 255}
)

// Palette returns n distinguishable colors from the ColorBrewer
// "Set2" palette. Colors repeat if n exceeds the palette size.
func Palette(n int) []color.Color {
	const minColors, maxColors = 3, 8
	k := n
	if k < minColors {
		k = minColors
	}
	if k > maxColors {
		k = maxColors
	}
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set2", k)
	if err != nil {
		// Set2 is defined for every size in [minColors, maxColors].
		panic(err)
	}
	base := p.Colors()
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = base[i%len(base)]
	}
	return cs
}

// newPlot returns a plot with a title and background grid.
func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = 14
	p.X.Label.TextStyle.Font.Size = 12
	p.Y.Label.TextStyle.Font.Size = 12
	p.X.Tick.Label.Font.Size = 9
	p.Y.Tick.Label.Font.Size = 9
	return p
}

// Render draws plots side by side on a white w×h canvas and returns
// the PNG encoding of the result.
func Render(w, h vg.Length, plots ...*plot.Plot) ([]byte, error) {
	if len(plots) == 0 {
		return nil, fmt.Errorf("no plots to render")
	}
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))
	dc := draw.New(c)
	if len(plots) == 1 {
		plots[0].Draw(dc)
	} else {
		tiles := draw.Tiles{
			Rows:      1,
			Cols:      len(plots),
			PadX:      vg.Centimeter,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		}
		canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
		for j, p := range plots {
			p.Draw(canvases[0][j])
		}
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to the file path. The data is first written to
// a temporary file in the same directory, which is then renamed to
// path, so path is never left partially written.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// addGrid adds a grid to p with lines only across the value axis.
func addGrid(p *plot.Plot, horizontal bool) {
	grid := plotter.NewGrid()
	if horizontal {
		grid.Horizontal.Color = nil
	} else {
		grid.Vertical.Color = nil
	}
	p.Add(grid)
}
