// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package publish

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type object struct {
	ContentType string
	Data        string
}

type memBucket map[string]object

type memWriter struct {
	bytes.Buffer
	b           memBucket
	name, ctype string
}

func (w *memWriter) Close() error {
	w.b[w.name] = object{w.ctype, w.String()}
	return nil
}

func (b memBucket) NewWriter(ctx context.Context, name, contentType string) io.WriteCloser {
	return &memWriter{b: b, name: name, ctype: contentType}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for name, data := range map[string]string{
		"summary_statistics.csv": "BenchmarkName\n",
		"throughput_analysis.png": "\x89PNG",
	} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	b := make(memBucket)
	names, err := Files(context.Background(), b, "runs/42", paths)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Errorf("Files returned %q", names)
	}
	want := memBucket{
		"runs/42/summary_statistics.csv":  {ContentType("x.csv"), "BenchmarkName\n"},
		"runs/42/throughput_analysis.png": {"image/png", "\x89PNG"},
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("bucket (-want +got):\n%s", diff)
	}
}

func TestFilesMissing(t *testing.T) {
	b := make(memBucket)
	_, err := Files(context.Background(), b, "", []string{filepath.Join(t.TempDir(), "missing.png")})
	if err == nil || !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("Files = %v, want error naming the file", err)
	}
	if len(b) != 0 {
		t.Errorf("bucket has %d objects", len(b))
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType("chart.png"); got != "image/png" {
		t.Errorf("png: got %q", got)
	}
	if got := ContentType("noext"); got != "application/octet-stream" {
		t.Errorf("no extension: got %q", got)
	}
}
