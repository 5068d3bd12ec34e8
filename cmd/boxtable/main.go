// Package main implements the boxtable CLI for drawing tables in the terminal.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/negz/boxtable/cmd/boxtable/demo"
	"github.com/negz/boxtable/cmd/boxtable/gitlog"
	"github.com/negz/boxtable/cmd/boxtable/query"
	"github.com/negz/boxtable/cmd/boxtable/render"
	"github.com/negz/boxtable/internal/output"
	"github.com/negz/boxtable/internal/version"
)

type cli struct {
	output.Flags `embed:""`

	Debug   bool             `help:"Log debug output."          short:"d"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Demo   demo.Command   `cmd:"" help:"Print sample tables."`
	Render render.Command `cmd:"" help:"Render CSV as a table."`
	Query  query.Command  `cmd:"" help:"Run a SQL query against a SQLite database."`
	Log    gitlog.Command `cmd:"" help:"Show the commit history of a git repository."`
}

func main() {
	c := &cli{}
	ctx := kong.Parse(c,
		kong.Name("boxtable"),
		kong.Description("Draw tables with box-drawing characters."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
	)

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.FatalIfErrorf(ctx.Run(&c.Flags, log))
}
