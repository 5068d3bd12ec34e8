// Package db runs SQL queries against SQLite databases.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQL driver registration.

	"github.com/negz/boxtable/internal/output"
)

// Store is a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at the given path. Use ":memory:"
// for a transient in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// An in-memory database only lives as long as its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close() //nolint:errcheck // Already returning an error.
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for direct queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// A Result is the outcome of a query, formatted as table cells.
type Result struct {
	Labels []string
	Rows   [][]string
}

// Query runs the supplied SQL and returns its column names and rows. Every
// value is formatted as a single line cell. NULL values are empty cells.
func (s *Store) Query(ctx context.Context, query string, args ...any) (Result, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return Result{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Only reads; errors surface via rows.Err.

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("get columns: %w", err)
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	r := Result{Labels: cols}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}

		strs := make([]string, len(cols))
		for i, v := range values {
			strs[i] = output.FormatValue(v)
		}
		r.Rows = append(r.Rows, strs)
	}

	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterate rows: %w", err)
	}

	return r, nil
}

// Exec runs SQL that returns no rows, such as a schema or seed script.
func (s *Store) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}
