// Package gitlog implements the log command.
package gitlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/negz/boxtable/internal/history"
	"github.com/negz/boxtable/internal/output"
)

// Command shows the commit history of a git repository. A repository with no
// commits prints nothing.
type Command struct {
	Limit int `default:"20"  help:"Maximum number of commits to show. Zero shows all." short:"n"`
	Depth int `default:"100" help:"Number of commits to fetch when cloning a remote repository." hidden:""`

	Source string `arg:"" default:"." help:"Local path or URL of the git repository." optional:""`
}

// Run executes the log command.
func (c *Command) Run(w io.Writer, f *output.Flags, log *slog.Logger) error {
	ctx := context.Background()

	r, err := history.Open(ctx, c.Source,
		history.WithLogger(log),
		history.WithDepth(c.Depth),
	)
	if err != nil {
		return err
	}

	commits, err := r.Commits(c.Limit)
	if err != nil {
		return fmt.Errorf("list commits: %w", err)
	}
	if len(commits) == 0 {
		log.Info("Repository has no commits", "source", c.Source)
		return nil
	}

	return f.Write(w, history.Labels(), history.Rows(commits, time.Now()))
}
