// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"context"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/labubus/jmhreport/jmhmath"
	"github.com/labubus/jmhreport/jmhstat"
)

var when = time.Unix(1700000000, 0)

func table() *jmhstat.Table {
	return &jmhstat.Table{Rows: []*jmhstat.Row{
		{Key: []string{"selectAllBooks"}, Summary: jmhmath.Summary{Mean: 3, StdDev: 2.546, Min: 1.2, Max: 4.8, Count: 2}},
		{Key: []string{"tokenizeText"}, Summary: jmhmath.Summary{Mean: 0.05, StdDev: math.NaN(), Min: 0.05, Max: 0.05, Count: 1}},
	}}
}

func TestPoints(t *testing.T) {
	ps := Points(table(), Measurement, "results.csv", when)
	if len(ps) != 2 {
		t.Fatalf("got %d points, want 2", len(ps))
	}
	want := []string{
		`jmh,benchmark=selectAllBooks,component=Database,source=results.csv count=2i,max=4.8,mean=3,min=1.2,stddev=2.546 1700000000000000000`,
		`jmh,benchmark=tokenizeText,component=Data\ Processing,source=results.csv count=1i,max=0.05,mean=0.05,min=0.05 1700000000000000000`,
	}
	for i, p := range ps {
		got := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
		if got != want[i] {
			t.Errorf("point %d:\ngot  %s\nwant %s", i, got, want[i])
		}
	}
}

func TestWrite(t *testing.T) {
	var body, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	i := &Influx{URL: srv.URL, Token: "t", Org: "o", Bucket: "b"}
	if err := i.Write(context.Background(), Points(table(), Measurement, "results.csv", when)); err != nil {
		t.Fatal(err)
	}
	if path != "/api/v2/write" {
		t.Errorf("request path = %q", path)
	}
	if !strings.Contains(body, "benchmark=tokenizeText") {
		t.Errorf("request body missing point:\n%s", body)
	}
}

func TestWriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"unauthorized","message":"bad token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	i := &Influx{URL: srv.URL, Org: "o", Bucket: "b"}
	if err := i.Write(context.Background(), Points(table(), Measurement, "x", when)); err == nil {
		t.Error("want error from unauthorized write")
	}
}
