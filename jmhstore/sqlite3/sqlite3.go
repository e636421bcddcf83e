// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 registers the sqlite3 driver for use with
// jmhstore.OpenSQL.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/labubus/jmhreport/jmhstore"
)

func init() {
	jmhstore.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// Each connection to ":memory:" is a separate database,
		// and SQLite allows only one writer at a time anyway.
		db.SetMaxOpenConns(1)
		return nil
	})
}
