// Package demo implements the demo command.
package demo

import (
	"fmt"
	"io"

	"github.com/negz/boxtable/internal/output"
)

type sample struct {
	title  string
	labels []string
	rows   [][]string
}

var samples = []sample{ //nolint:gochecknoglobals // Read-only sample data.
	{
		title:  "Labelled",
		labels: []string{"boss", "baby"},
		rows:   [][]string{{"hello", "there"}, {"obi", "wan"}, {"ooga", "boogachooga"}},
	},
	{
		title: "Single column",
		rows:  [][]string{{"Lemon"}, {"Sebastiaan"}, {"KutieKatj9"}, {"Jake"}, {"Not Joe"}},
	},
}

// Command prints sample tables.
type Command struct{}

// Run executes the demo command.
func (c *Command) Run(w io.Writer, f *output.Flags) error {
	for i, s := range samples {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("write separator: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, s.title+":"); err != nil {
			return fmt.Errorf("write %s title: %w", s.title, err)
		}
		if err := f.Write(w, s.labels, s.rows); err != nil {
			return fmt.Errorf("write %s table: %w", s.title, err)
		}
	}
	return nil
}
