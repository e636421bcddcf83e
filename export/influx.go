// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export sends summary statistics to InfluxDB.
package export

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/labubus/jmhreport/jmhproc"
	"github.com/labubus/jmhreport/jmhstat"
)

// Measurement is the default InfluxDB measurement for summary rows.
const Measurement = "jmh"

// Points returns one point per row of t, timestamped when. Each point
// is tagged with the row label as "benchmark", its component, and
// source. NaN statistics are omitted, since InfluxDB cannot store them.
func Points(t *jmhstat.Table, measurement, source string, when time.Time) []*write.Point {
	var ps []*write.Point
	for _, row := range t.Rows {
		tags := map[string]string{
			"benchmark": row.Label(),
			"component": string(jmhproc.Categorize(row.Label())),
			"source":    source,
		}
		fields := map[string]interface{}{
			"count": row.Count,
		}
		for name, v := range map[string]float64{
			"mean":   row.Mean,
			"stddev": row.StdDev,
			"min":    row.Min,
			"max":    row.Max,
		} {
			if !math.IsNaN(v) {
				fields[name] = v
			}
		}
		ps = append(ps, write.NewPoint(measurement, tags, fields, when))
	}
	return ps
}

// Influx identifies an InfluxDB v2 bucket.
type Influx struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Write writes points to the bucket, blocking until the server has
// accepted them.
func (i *Influx) Write(ctx context.Context, points []*write.Point) error {
	if len(points) == 0 {
		return nil
	}
	client := influxdb2.NewClient(i.URL, i.Token)
	defer client.Close()
	if err := client.WriteAPIBlocking(i.Org, i.Bucket).WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("writing to %s: %w", i.URL, err)
	}
	return nil
}

// TokenFromSecret reads an InfluxDB token from Secret Manager. name is
// the full resource name of a secret version, such as
// "projects/p/secrets/influx-token/versions/latest".
func TokenFromSecret(ctx context.Context, name string) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("accessing secret %s: %w", name, err)
	}
	return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
}
