// Package render implements the render command.
package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/negz/boxtable/internal/output"
)

// Command renders CSV as a table. Input with no rows prints nothing.
type Command struct {
	Header    bool   `help:"Treat the first record as column labels." short:"H"`
	Delimiter string `default:","                                     help:"Field delimiter. Use '\\t' for tabs."`

	File string `arg:"" default:"-" help:"CSV file to render. Reads stdin when '-'." optional:""`
}

// Run executes the render command.
func (c *Command) Run(in io.Reader, w io.Writer, f *output.Flags, log *slog.Logger) error {
	if c.File != "" && c.File != "-" {
		file, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close() //nolint:errcheck // Only reads.
		in = file
	}

	comma, err := delimiter(c.Delimiter)
	if err != nil {
		return err
	}

	r := csv.NewReader(in)
	r.Comma = comma
	// Let the table report ragged rows.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read CSV: %w", err)
	}
	log.Debug("Read CSV", "file", c.File, "records", len(records))

	var labels []string
	if c.Header && len(records) > 0 {
		labels, records = records[0], records[1:]
	}
	if len(records) == 0 {
		log.Info("Input has no rows", "file", c.File)
		return nil
	}

	for _, rec := range records {
		for i, v := range rec {
			rec[i] = output.SingleLine(v)
		}
	}
	for i, v := range labels {
		labels[i] = output.SingleLine(v)
	}

	return f.Write(w, labels, records)
}

func delimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.New("delimiter must be a single character")
	}
	return r, nil
}
