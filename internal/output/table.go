// Package output writes tables to the terminal in one of several formats.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/negz/boxtable/internal/table"
)

// A Format is a way of drawing a table.
type Format string

// Supported formats.
const (
	// FormatBox draws a box-drawing character grid.
	FormatBox Format = "box"
	// FormatASCII draws a bordered table using tablewriter.
	FormatASCII Format = "ascii"
	// FormatTSV writes tab aligned columns with no borders.
	FormatTSV Format = "tsv"
)

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{string(FormatBox), string(FormatASCII), string(FormatTSV)}
}

// ParseFormat returns the Format with the supplied name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatBox, FormatASCII, FormatTSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(Formats(), ", "))
	}
}

type options struct {
	centered bool
}

// An Option configures how a table is written.
type Option func(*options)

// WithCentered centers cells within their columns.
func WithCentered(c bool) Option {
	return func(o *options) {
		o.centered = c
	}
}

// Write writes rows to w in the supplied format. Labels may be empty, in
// which case no header is written. Every format rejects ragged rows, or
// labels that don't match the rows, with a *table.ShapeError.
func Write(w io.Writer, f Format, labels []string, rows [][]string, opts ...Option) error {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}

	if err := table.Validate(table.Strings(rows), table.WithLabels(table.Labels(labels...)...)); err != nil {
		return err
	}

	switch f {
	case FormatBox:
		return writeBox(w, labels, rows, o)
	case FormatASCII:
		return writeASCII(w, labels, rows, o)
	case FormatTSV:
		return writeTSV(w, labels, rows)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func writeBox(w io.Writer, labels []string, rows [][]string, o *options) error {
	out, err := table.Render(table.Strings(rows),
		table.WithLabels(table.Labels(labels...)...),
		table.WithCentered(o.centered),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func writeASCII(w io.Writer, labels []string, rows [][]string, o *options) error {
	align := tw.AlignLeft
	if o.centered {
		align = tw.AlignCenter
	}
	t := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(align),
		tablewriter.WithRowAlignment(align),
	)
	if len(labels) > 0 {
		t.Header(toAny(labels)...)
	}
	if err := t.Bulk(rows); err != nil {
		return err
	}
	return t.Render()
}

func writeTSV(w io.Writer, labels []string, rows [][]string) error {
	tab := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(labels) > 0 {
		fmt.Fprintln(tab, strings.Join(labels, "\t")) //nolint:errcheck // Errors surface in Flush.
	}
	for _, r := range rows {
		fmt.Fprintln(tab, strings.Join(r, "\t")) //nolint:errcheck // Errors surface in Flush.
	}
	return tab.Flush()
}

// toAny converts a string slice to an any slice for tablewriter.Header.
func toAny(s []string) []any {
	result := make([]any, len(s))
	for i, v := range s {
		result[i] = v
	}
	return result
}
