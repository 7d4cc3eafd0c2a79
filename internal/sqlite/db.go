// Package sqlite opens the proompt database file and introspects its schema.
// The maintenance tools never create or migrate the schema; they only read
// sqlite_master to find out what the server created.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"

	"github.com/dikkadev/proompt-dbtools/internal/paths"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is a single-connection handle on an existing database file.
type DB struct {
	*sql.DB
	Path string
}

// Open verifies that path names an existing file and opens it with foreign
// keys enabled. It returns types.ErrDatabaseNotFound without connecting when
// the file is missing. The pool is capped at one connection so every
// statement of a run goes through the same connection.
func Open(ctx context.Context, path string) (*DB, error) {
	return open(ctx, path, false)
}

// OpenReadOnly is Open for callers that only read. Any write through the
// returned handle fails.
func OpenReadOnly(ctx context.Context, path string) (*DB, error) {
	return open(ctx, path, true)
}

func open(ctx context.Context, path string, readOnly bool) (*DB, error) {
	if err := paths.CheckDatabaseFile(path); err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn(path, readOnly))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &DB{DB: db, Path: path}, nil
}

// dsn builds a file URI for path with foreign key enforcement turned on for
// every connection the pool creates.
func dsn(path string, readOnly bool) string {
	u := url.URL{Scheme: "file", Path: path}
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	if readOnly {
		q.Add("mode", "ro")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
