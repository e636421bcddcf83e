// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report turns a set of JMH results into chart and table files.
//
// Each artifact is produced by an Emitter. Run creates the output
// directory and runs a list of Emitters in order. A failing Emitter
// does not stop the others: an Emitter whose input data is absent
// returns a *SkipError, and any other error is reported as a failure.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labubus/jmhreport/jmhfmt"
)

// An Emitter produces one artifact from a set of results.
type Emitter interface {
	// Name describes the artifact, for progress messages.
	Name() string

	// File is the base name of the file Emit writes.
	File() string

	// Emit writes the artifact to filepath.Join(dir, File()).
	// It may write progress or report text to w. If the data
	// the artifact needs is absent from set, Emit returns a
	// *SkipError and writes nothing to dir.
	Emit(w io.Writer, dir string, set *jmhfmt.Set) error
}

// A SkipError reports that an Emitter had nothing to emit.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return e.Reason
}

func skipf(format string, args ...interface{}) error {
	return &SkipError{fmt.Sprintf(format, args...)}
}

// Options configures the Emitters returned by Default.
type Options struct {
	// Top is the number of rows in the fastest and slowest
	// operation reports. If zero, it defaults to 5.
	Top int

	// HTML adds an HTML rendering of the summary table.
	HTML bool
}

// Default returns the standard Emitters, in the order they run.
func Default(opts Options) []Emitter {
	top := opts.Top
	if top == 0 {
		top = 5
	}
	es := []Emitter{
		OperationComparison{},
		Scalability{},
		ComponentBreakdown{},
		DatabaseScaling{},
		Throughput{},
		Summary{Top: top},
	}
	if opts.HTML {
		es = append(es, SummaryHTML{})
	}
	return es
}

// A Result records the outcome of Run.
type Result struct {
	// Written lists the paths of the files written, in order.
	Written []string

	// Skipped lists the Emitters that had nothing to emit.
	Skipped []Emitter

	// Failed lists the Emitters that returned an error other than
	// a *SkipError.
	Failed []Failure
}

// A Failure is an Emitter and the error it returned.
type Failure struct {
	Emitter Emitter
	Err     error
}

// Run creates dir if necessary and runs each Emitter in es. It reports
// progress to w. The returned error is non-nil only if dir cannot be
// created; Emitter errors are collected in the Result.
func Run(w io.Writer, dir string, set *jmhfmt.Set, es []Emitter) (*Result, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	res := new(Result)
	for _, e := range es {
		fmt.Fprintf(w, "\nGenerating %s...\n", e.Name())
		err := e.Emit(w, dir, set)
		var skip *SkipError
		switch {
		case errors.As(err, &skip):
			fmt.Fprintf(w, "  skipped: %s\n", skip.Reason)
			res.Skipped = append(res.Skipped, e)
		case err != nil:
			fmt.Fprintf(w, "  warning: %s failed: %v\n", e.Name(), err)
			res.Failed = append(res.Failed, Failure{e, err})
		default:
			path := filepath.Join(dir, e.File())
			fmt.Fprintf(w, "  saved: %s\n", path)
			res.Written = append(res.Written, path)
		}
	}
	return res, nil
}
