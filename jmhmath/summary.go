// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhmath computes descriptive statistics over groups of
// benchmark scores.
package jmhmath

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes a group of scores.
type Summary struct {
	Mean float64

	// StdDev is the sample standard deviation (n-1 denominator).
	// It is NaN if Count < 2.
	StdDev float64

	Min, Max float64

	Count int
}

// Summarize computes the Summary of xs. If xs is empty, every float
// field of the result is NaN.
func Summarize(xs []float64) Summary {
	s := Summary{
		Mean:   stats.Mean(xs),
		StdDev: StdDev(xs),
		Count:  len(xs),
	}
	s.Min, s.Max = stats.Bounds(xs)
	return s
}

// StdDev returns the sample standard deviation of xs, or NaN if xs
// has fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stats.StdDev(xs)
}

// Rounded returns s with every float field rounded by Round.
func (s Summary) Rounded() Summary {
	s.Mean = Round(s.Mean)
	s.StdDev = Round(s.StdDev)
	s.Min = Round(s.Min)
	s.Max = Round(s.Max)
	return s
}

// ErrorBar returns the half-width of the error bar to draw for s:
// its standard deviation, or 0 if that is undefined.
func (s Summary) ErrorBar() float64 {
	if math.IsNaN(s.StdDev) {
		return 0
	}
	return s.StdDev
}

// Round rounds x to 3 decimal places, with halves rounded away from
// zero. NaN and infinities are returned unchanged.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*1000) / 1000
}
