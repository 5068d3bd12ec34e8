// Package table renders rows of values as a box-drawing character grid.
package table

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Box drawing characters.
const (
	topLeft     = "┌"
	topMid      = "┬"
	topRight    = "┐"
	midLeft     = "├"
	midMid      = "┼"
	midRight    = "┤"
	bottomLeft  = "└"
	bottomMid   = "┴"
	bottomRight = "┘"
	horizontal  = "─"
	vertical    = "│"

	// separator follows every cell in a row line. It's a plain bar, not the
	// box drawing vertical used for the left border.
	separator = "|"
)

// Text is a cell whose textual form is the string itself.
type Text string

// String returns the text.
func (t Text) String() string {
	return string(t)
}

// Strings converts rows of strings to rows of Text cells.
func Strings(rows [][]string) [][]Text {
	out := make([][]Text, len(rows))
	for i, r := range rows {
		out[i] = Labels(r...)
	}
	return out
}

// Labels converts strings to Text cells.
func Labels(s ...string) []Text {
	out := make([]Text, len(s))
	for i, v := range s {
		out[i] = Text(v)
	}
	return out
}

// A ShapeError is returned when rows are empty, ragged, or don't match the
// number of labels.
type ShapeError struct {
	msg string
}

func (e *ShapeError) Error() string {
	return "invalid table shape: " + e.msg
}

func shapeErrorf(format string, args ...any) *ShapeError {
	return &ShapeError{msg: fmt.Sprintf(format, args...)}
}

type options struct {
	labels   []fmt.Stringer
	centered bool
}

// An Option configures rendering.
type Option func(*options)

// WithLabels renders a header row of labels above the data rows. There must
// be one label per column. Passing no labels renders no header.
func WithLabels[C fmt.Stringer](labels ...C) Option {
	return func(o *options) {
		o.labels = make([]fmt.Stringer, len(labels))
		for i, l := range labels {
			o.labels[i] = l
		}
	}
}

// WithCentered centers every cell, labels included, within its column.
// Cells are left aligned by default.
func WithCentered(c bool) Option {
	return func(o *options) {
		o.centered = c
	}
}

// Validate returns a ShapeError unless every row has the same, non-zero
// number of cells and any labels match that number.
func Validate[C fmt.Stringer](rows [][]C, opts ...Option) error {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}
	return validate(rows, o)
}

func validate[C fmt.Stringer](rows [][]C, o *options) error {
	if len(rows) == 0 {
		return shapeErrorf("no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return shapeErrorf("no columns")
	}
	for i, r := range rows {
		if len(r) != cols {
			return shapeErrorf("row %d has %d cells, want %d", i, len(r), cols)
		}
	}
	if len(o.labels) > 0 && len(o.labels) != cols {
		return shapeErrorf("%d labels, want %d", len(o.labels), cols)
	}
	return nil
}

// Render returns rows drawn as a box grid. Every row must have the same,
// non-zero number of cells. The last line has no trailing newline.
func Render[C fmt.Stringer](rows [][]C, opts ...Option) (string, error) {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}

	if err := validate(rows, o); err != nil {
		return "", err
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = make([]string, len(r))
		for j, c := range r {
			cells[i][j] = c.String()
		}
	}

	var labels []string
	if len(o.labels) > 0 {
		labels = make([]string, len(o.labels))
		for j, l := range o.labels {
			labels[j] = l.String()
		}
	}

	widths := measure(cells, labels)

	b := &strings.Builder{}
	border(b, widths, topLeft, topMid, topRight)
	b.WriteString("\n")
	if labels != nil {
		row(b, labels, widths, o.centered)
		b.WriteString("\n")
		border(b, widths, midLeft, midMid, midRight)
		b.WriteString("\n")
	}
	for _, r := range cells {
		row(b, r, widths, o.centered)
		b.WriteString("\n")
	}
	border(b, widths, bottomLeft, bottomMid, bottomRight)

	return b.String(), nil
}

// measure returns the width of each column: the longest cell in the column,
// counting the label if there is one.
func measure(cells [][]string, labels []string) []int {
	widths := make([]int, len(cells[0]))
	grow := func(r []string) {
		for j, c := range r {
			widths[j] = max(widths[j], utf8.RuneCountInString(c))
		}
	}
	for _, r := range cells {
		grow(r)
	}
	if labels != nil {
		grow(labels)
	}
	return widths
}

func border(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for j, w := range widths {
		b.WriteString(strings.Repeat(horizontal, w))
		if j == len(widths)-1 {
			b.WriteString(right)
			continue
		}
		b.WriteString(mid)
	}
}

func row(b *strings.Builder, cells []string, widths []int, centered bool) {
	b.WriteString(vertical)
	for j, c := range cells {
		b.WriteString(pad(c, widths[j], centered))
		b.WriteString(separator)
	}
}

// pad pads s with spaces to width characters. Centered text gets the odd
// space on the right.
func pad(s string, width int, centered bool) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if !centered {
		return s + strings.Repeat(" ", n)
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}
