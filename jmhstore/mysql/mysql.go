// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mysql registers the mysql driver for use with
// jmhstore.OpenSQL. Data source names may address a Cloud SQL
// instance with the "cloudsql" network, as in
// "user:password@cloudsql(project:region:instance)/dbname".
package mysql

import (
	"database/sql"
	"time"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/go-sql-driver/mysql"

	"github.com/labubus/jmhreport/jmhstore"
)

func init() {
	jmhstore.RegisterOpenHook("mysql", func(db *sql.DB) error {
		// Cloud SQL closes idle connections after a few minutes.
		db.SetConnMaxLifetime(3 * time.Minute)
		return db.Ping()
	})
}
