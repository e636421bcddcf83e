// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"io"
	"os"
)

// A Set is the complete contents of one JMH results file.
type Set struct {
	// Source is the file name the Set was read from.
	Source string

	// Records are the usable rows, in input order.
	Records []*Record

	// ParamColumns are the parameter column headers, in input
	// order. It is empty if the input declares no parameters.
	ParamColumns []string

	// Dropped is the number of rows that were skipped because they
	// had no benchmark identifier or a non-numeric score.
	Dropped int
}

// FirstParam returns the first parameter column of s, or "" if s has
// none.
func (s *Set) FirstParam() string {
	if len(s.ParamColumns) == 0 {
		return ""
	}
	return s.ParamColumns[0]
}

// Load reads the JMH CSV results file at path.
//
// If the file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist). A malformed file yields a
// *SyntaxError.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads a complete Set from r. fileName is used for diagnostics
// and as the Set's Source.
func Read(r io.Reader, fileName string) (*Set, error) {
	reader := NewReader(r, fileName)
	set := &Set{Source: fileName}
	for reader.Scan() {
		set.Records = append(set.Records, reader.Result())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	set.ParamColumns = reader.ParamColumns()
	set.Dropped = reader.Dropped()
	return set, nil
}
