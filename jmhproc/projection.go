// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhproc

import (
	"strconv"

	"github.com/labubus/jmhreport/jmhfmt"
)

// A Projection extracts a grouping key from a Record.
type Projection func(r *jmhfmt.Record) string

// ByName projects a Record to its display name.
func ByName(r *jmhfmt.Record) string {
	return r.Name()
}

// ByComponent projects a Record to the component of its display name.
func ByComponent(r *jmhfmt.Record) string {
	return string(Categorize(r.Name()))
}

// ByMode projects a Record to its measurement mode.
func ByMode(r *jmhfmt.Record) string {
	return r.Mode
}

// ByParam returns a Projection that extracts the numeric value of
// parameter column col, formatted in the shortest form that round
// trips. Records with no numeric value project to "NaN".
func ByParam(col string) Projection {
	return func(r *jmhfmt.Record) string {
		return strconv.FormatFloat(r.ParamValue(col), 'g', -1, 64)
	}
}
