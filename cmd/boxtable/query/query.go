// Package query implements the query command.
package query

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/negz/boxtable/internal/db"
	"github.com/negz/boxtable/internal/output"
)

// Command runs a SQL query against a SQLite database. A query that returns
// no rows prints nothing.
type Command struct {
	Init []string `help:"SQL script to run before the query. May be repeated." type:"existingfile"`

	Database string `arg:"" help:"Path to the SQLite database. Use ':memory:' for an empty in-memory database."`
	SQL      string `arg:"" help:"SQL query to execute."`
}

// Run executes the query command.
func (c *Command) Run(w io.Writer, f *output.Flags, log *slog.Logger) error {
	ctx := context.Background()

	store, err := db.Open(ctx, c.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close() //nolint:errcheck // Nothing to do with error on program exit.

	for _, path := range c.Init {
		script, err := os.ReadFile(path) //nolint:gosec // Reading user supplied scripts is the point.
		if err != nil {
			return fmt.Errorf("read init script: %w", err)
		}
		log.Debug("Running init script", "path", path)
		if err := store.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("run init script %s: %w", path, err)
		}
	}

	r, err := store.Query(ctx, c.SQL)
	if err != nil {
		return err
	}
	log.Debug("Ran query", "columns", len(r.Labels), "rows", len(r.Rows))

	if len(r.Rows) == 0 {
		log.Info("Query returned no rows")
		return nil
	}

	return f.Write(w, r.Labels, r.Rows)
}
