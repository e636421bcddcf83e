// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhstore archives JMH result sets in a SQL database.
package jmhstore

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/labubus/jmhreport/jmhfmt"
)

// DB is an archive of result sets backed by a SQL database. It's safe
// for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
	insertParam  *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Source VARCHAR(1024),
	Created BIGINT
);
CREATE TABLE IF NOT EXISTS Results (
	RunID BIGINT UNSIGNED,
	ResultID BIGINT UNSIGNED,
	Benchmark VARCHAR(1024),
	Name VARCHAR(255),
	Mode VARCHAR(32),
	Score DOUBLE,
	PRIMARY KEY (RunID, ResultID),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS ResultParams (
	RunID BIGINT UNSIGNED,
	ResultID BIGINT UNSIGNED,
	Position INT,
	Name VARCHAR(255),
	Value VARCHAR(1024),
{{if not .sqlite3}}
	Index (Name(100)),
{{end}}
	FOREIGN KEY (RunID, ResultID) REFERENCES Results(RunID, ResultID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS ResultParamsName ON ResultParams(Name);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Source, Created) VALUES (?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare("INSERT INTO Results(RunID, ResultID, Benchmark, Name, Mode, Score) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertParam, err = db.sql.Prepare("INSERT INTO ResultParams(RunID, ResultID, Position, Name, Value) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// InsertRun stores every record of set as a new run, in a single
// transaction, and returns the new run's ID.
func (db *DB) InsertRun(ctx context.Context, set *jmhfmt.Set, created time.Time) (id int64, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, set.Source, created.Unix())
	if err != nil {
		return 0, err
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, err
	}
	insertResult := tx.StmtContext(ctx, db.insertResult)
	insertParam := tx.StmtContext(ctx, db.insertParam)
	for i, r := range set.Records {
		if _, err := insertResult.ExecContext(ctx, id, i, r.Benchmark, r.Name(), r.Mode, r.Score); err != nil {
			return 0, err
		}
		for j, p := range r.Params {
			if _, err := insertParam.ExecContext(ctx, id, i, j, p.Column, p.Raw); err != nil {
				return 0, err
			}
		}
	}
	return id, nil
}

// CountRuns returns the number of runs stored in db.
func (db *DB) CountRuns(ctx context.Context) (int, error) {
	var count int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Runs").Scan(&count)
	return count, err
}

// Results returns the records of run id, in their original order.
// Parameter values are parsed again from their stored text.
func (db *DB) Results(ctx context.Context, id int64) ([]*jmhfmt.Record, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT ResultID, Benchmark, Mode, Score FROM Results WHERE RunID = ? ORDER BY ResultID", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rs []*jmhfmt.Record
	byID := make(map[int64]*jmhfmt.Record)
	for rows.Next() {
		var rid int64
		r := new(jmhfmt.Record)
		if err := rows.Scan(&rid, &r.Benchmark, &r.Mode, &r.Score); err != nil {
			return nil, err
		}
		rs = append(rs, r)
		byID[rid] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := db.sql.QueryContext(ctx, "SELECT ResultID, Name, Value FROM ResultParams WHERE RunID = ? ORDER BY ResultID, Position", id)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var rid int64
		var col, raw string
		if err := prows.Scan(&rid, &col, &raw); err != nil {
			return nil, err
		}
		if r := byID[rid]; r != nil {
			r.Params = append(r.Params, jmhfmt.NewParam(col, raw))
		}
	}
	return rs, prows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertRun, db.insertResult, db.insertParam} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
