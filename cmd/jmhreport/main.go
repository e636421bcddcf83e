// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jmhreport summarizes JMH benchmark results as charts and tables.
//
// Usage:
//
//	jmhreport [flags] [results.csv]
//
// The input is a CSV file written by JMH with "-rf csv". If no file is
// given, jmhreport reads results.csv in the current directory.
//
// Jmhreport writes these files to the output directory (-o):
//
//	operation_comparison.png  mean time of every benchmark
//	scalability_analysis.png  key benchmarks against the first parameter
//	component_breakdown.png   mean time per component
//	database_scaling.png      database reads and writes against the first parameter
//	throughput_analysis.png   throughput-mode benchmarks
//	summary_statistics.csv    per-benchmark mean, std dev, min, max and count
//
// and prints the fastest and slowest benchmarks. A chart whose data is
// absent from the input is skipped with a warning.
//
// # Optional outputs
//
// With -archive, the loaded results are stored in a SQL database
// (sqlite3 by default; see -archive-driver). A mysql data source name
// may address a Cloud SQL instance as "user:pass@cloudsql(instance)/db".
//
// With -gcs bucket[/prefix], the written files are uploaded to Google
// Cloud Storage.
//
// With -influx url, the summary statistics are written to an InfluxDB
// v2 bucket. The token can be given directly or read from Google Secret
// Manager with -influx-token-secret.
//
// Jmhreport exits with status 1 if the input cannot be loaded or an
// optional output fails, and 2 for invalid flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labubus/jmhreport/export"
	"github.com/labubus/jmhreport/jmhfmt"
	"github.com/labubus/jmhreport/jmhstore"
	_ "github.com/labubus/jmhreport/jmhstore/mysql"
	_ "github.com/labubus/jmhreport/jmhstore/sqlite3"
	"github.com/labubus/jmhreport/publish"
	"github.com/labubus/jmhreport/report"
)

var exit = os.Exit // replaced during testing

// defaultInput is read when no input file is named.
const defaultInput = "results.csv"

func main() {
	log.SetPrefix("jmhreport: ")
	log.SetFlags(0)
	err := jmhreport(os.Stdout, os.Stderr, os.Args[1:])
	var uerr *usageError
	switch {
	case err == nil:
	case errors.As(err, &uerr):
		exit(2)
	default:
		log.Print(err)
		exit(1)
	}
}

// A usageError reports invalid command-line arguments. The usage
// message has already been printed.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type config struct {
	out  string
	top  int
	html bool

	archive, archiveDriver string

	gcs, gcsCredentials string

	influx, influxOrg, influxBucket string
	influxToken, influxTokenSecret  string
}

func parseFlags(wErr io.Writer, args []string) (*config, []string, error) {
	var c config
	flags := flag.NewFlagSet("jmhreport", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: jmhreport [flags] [results.csv]\n")
		flags.PrintDefaults()
	}
	flags.StringVar(&c.out, "o", "benchmark-results", "write report files to `dir`")
	flags.IntVar(&c.top, "top", 5, "print the `n` fastest and slowest benchmarks")
	flags.BoolVar(&c.html, "html", false, "also write the summary as an HTML table")
	flags.StringVar(&c.archive, "archive", "", "store the results in the SQL database `dsn`")
	flags.StringVar(&c.archiveDriver, "archive-driver", "sqlite3", "SQL `driver` for -archive: sqlite3 or mysql")
	flags.StringVar(&c.gcs, "gcs", "", "upload report files to Cloud Storage `bucket[/prefix]`")
	flags.StringVar(&c.gcsCredentials, "gcs-credentials", "", "service account key `file` for -gcs")
	flags.StringVar(&c.influx, "influx", "", "write summary statistics to the InfluxDB server at `url`")
	flags.StringVar(&c.influxOrg, "influx-org", "", "InfluxDB `organization`")
	flags.StringVar(&c.influxBucket, "influx-bucket", "", "InfluxDB `bucket`")
	flags.StringVar(&c.influxToken, "influx-token", "", "InfluxDB API `token`")
	flags.StringVar(&c.influxTokenSecret, "influx-token-secret", "", "read the InfluxDB token from the Secret Manager secret version `name`")

	if err := flags.Parse(args); err != nil {
		return nil, nil, &usageError{err}
	}
	bad := func(format string, args ...interface{}) (*config, []string, error) {
		err := fmt.Errorf(format, args...)
		fmt.Fprintf(wErr, "jmhreport: %v\n", err)
		flags.Usage()
		return nil, nil, &usageError{err}
	}
	if flags.NArg() > 1 {
		return bad("at most one input file may be given")
	}
	if c.top < 1 {
		return bad("-top must be positive")
	}
	if c.archive != "" && c.archiveDriver != "sqlite3" && c.archiveDriver != "mysql" {
		return bad("unknown -archive-driver %q", c.archiveDriver)
	}
	if c.influx != "" && (c.influxOrg == "" || c.influxBucket == "") {
		return bad("-influx requires -influx-org and -influx-bucket")
	}
	if c.influxToken != "" && c.influxTokenSecret != "" {
		return bad("-influx-token and -influx-token-secret are mutually exclusive")
	}
	return &c, flags.Args(), nil
}

func jmhreport(w, wErr io.Writer, args []string) error {
	c, args, err := parseFlags(wErr, args)
	if err != nil {
		return err
	}
	input := defaultInput
	if len(args) == 1 {
		input = args[0]
	}

	fmt.Fprintf(w, "JMH benchmark results analysis\n\n")
	set, err := jmhfmt.Load(input)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s not found: run the benchmarks with -rf csv first", input)
	} else if err != nil {
		return err
	}
	fmt.Fprintf(w, "Loaded %d benchmark results from %s\n", len(set.Records), input)
	if set.Dropped > 0 {
		fmt.Fprintf(wErr, "warning: ignored %d rows with no benchmark name or a non-numeric score\n", set.Dropped)
	}
	fmt.Fprintf(w, "Output directory: %s\n", c.out)

	res, err := report.Run(w, c.out, set, report.Default(report.Options{Top: c.top, HTML: c.html}))
	if err != nil {
		return err
	}

	ctx := context.Background()
	var failed []string
	sink := func(name string, err error) {
		if err != nil {
			fmt.Fprintf(wErr, "warning: %s: %v\n", name, err)
			failed = append(failed, name)
		}
	}
	if c.archive != "" {
		sink("archive", archive(ctx, w, c, set))
	}
	if c.gcs != "" {
		sink("upload", upload(ctx, w, c, res.Written))
	}
	if c.influx != "" {
		sink("influx", influx(ctx, w, c, set))
	}

	plots := 0
	for _, p := range res.Written {
		if filepath.Ext(p) == ".png" {
			plots++
		}
	}
	fmt.Fprintf(w, "\nAnalysis complete: %d plots written to %s\n", plots, c.out)
	if len(failed) > 0 {
		return fmt.Errorf("failed outputs: %s", strings.Join(failed, ", "))
	}
	return nil
}

func archive(ctx context.Context, w io.Writer, c *config, set *jmhfmt.Set) error {
	db, err := jmhstore.OpenSQL(c.archiveDriver, c.archive)
	if err != nil {
		return err
	}
	defer db.Close()
	id, err := db.InsertRun(ctx, set, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Archived %d results as run %d\n", len(set.Records), id)
	return nil
}

func upload(ctx context.Context, w io.Writer, c *config, paths []string) error {
	bucket, prefix, _ := strings.Cut(c.gcs, "/")
	gcs, err := publish.NewGCS(ctx, bucket, c.gcsCredentials)
	if err != nil {
		return err
	}
	defer gcs.Close()
	names, err := publish.Files(ctx, gcs, prefix, paths)
	for _, name := range names {
		fmt.Fprintf(w, "Uploaded gs://%s/%s\n", bucket, name)
	}
	return err
}

func influx(ctx context.Context, w io.Writer, c *config, set *jmhfmt.Set) error {
	token := c.influxToken
	if c.influxTokenSecret != "" {
		var err error
		if token, err = export.TokenFromSecret(ctx, c.influxTokenSecret); err != nil {
			return err
		}
	}
	points := export.Points(report.SummaryTable(set), export.Measurement, set.Source, time.Now())
	db := &export.Influx{URL: c.influx, Token: token, Org: c.influxOrg, Bucket: c.influxBucket}
	if err := db.Write(ctx, points); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d points to %s\n", len(points), c.influx)
	return nil
}
