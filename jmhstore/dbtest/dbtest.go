// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dbtest opens empty archives for tests.
//
// By default each archive is an in-memory SQLite database. With
// -mysql, tests instead run against a MySQL server, which may be a
// Cloud SQL instance, in a database created for the test and dropped
// when it finishes:
//
//	go test ./... -mysql 'root@cloudsql(project:region:instance)/'
package dbtest

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"flag"
	"fmt"
	"strings"
	"testing"

	"github.com/labubus/jmhreport/jmhstore"
	_ "github.com/labubus/jmhreport/jmhstore/mysql"
	_ "github.com/labubus/jmhreport/jmhstore/sqlite3"
)

var mysqlServer = flag.String("mysql", "", "run archive tests on the MySQL server `dsn`, which must end in \"/\"")

// dbName returns a database name unique to this run of t.
func dbName(t *testing.T) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatal(err)
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			return r
		}
		return '_'
	}, t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return "jmh_" + name + "_" + hex.EncodeToString(suffix)
}

// mysqlDSN creates an empty database on the -mysql server and returns
// its data source name. The database is dropped when t finishes.
func mysqlDSN(t *testing.T) string {
	if !strings.HasSuffix(*mysqlServer, "/") {
		t.Fatalf("-mysql %q must end in \"/\"", *mysqlServer)
	}
	server, err := sql.Open("mysql", *mysqlServer)
	if err != nil {
		t.Fatal(err)
	}
	name := dbName(t)
	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE `%s`", name)); err != nil {
		server.Close()
		t.Fatal(err)
	}
	t.Logf("using database %s", name)
	t.Cleanup(func() {
		if _, err := server.Exec(fmt.Sprintf("DROP DATABASE `%s`", name)); err != nil {
			t.Error(err)
		}
		server.Close()
	})
	return *mysqlServer + name
}

// NewDB returns an empty archive that is closed when t finishes.
func NewDB(t *testing.T) *jmhstore.DB {
	t.Helper()
	driver, dsn := "sqlite3", ":memory:"
	if *mysqlServer != "" {
		driver, dsn = "mysql", mysqlDSN(t)
	}
	db, err := jmhstore.OpenSQL(driver, dsn)
	if err != nil {
		t.Fatalf("open %s archive: %v", driver, err)
	}
	// Registered after the DROP cleanup, so it runs first.
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Error(err)
		}
	})

	if n, err := db.CountRuns(context.Background()); err != nil {
		t.Fatal(err)
	} else if n != 0 {
		t.Fatalf("new archive has %d runs", n)
	}
	return db
}
