package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/negz/boxtable/internal/table"
)

func TestParseFormat(t *testing.T) {
	type want struct {
		f   Format
		err error
	}
	cases := map[string]struct {
		reason string
		s      string
		want   want
	}{
		"Box": {
			reason: "The box format should parse.",
			s:      "box",
			want:   want{f: FormatBox},
		},
		"UpperCase": {
			reason: "Format names should be case-insensitive.",
			s:      "ASCII",
			want:   want{f: FormatASCII},
		},
		"Unknown": {
			reason: "Unknown format names should return an error.",
			s:      "html",
			want:   want{err: cmpopts.AnyError},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFormat(tc.s)
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nParseFormat(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.f, got); diff != "" {
				t.Errorf("\n%s\nParseFormat(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	labels := []string{"Key", "Name"}
	rows := [][]string{{"TAF", "The Addams Family"}, {"MM", "Medieval Madness"}}

	type args struct {
		f      Format
		labels []string
		rows   [][]string
		opts   []Option
	}
	type want struct {
		out string
		err error
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"Box": {
			reason: "The box format should write the rendered grid followed by a newline.",
			args:   args{f: FormatBox, labels: labels, rows: rows},
			want: want{out: strings.Join([]string{
				"┌───┬─────────────────┐",
				"│Key|Name             |",
				"├───┼─────────────────┤",
				"│TAF|The Addams Family|",
				"│MM |Medieval Madness |",
				"└───┴─────────────────┘",
			}, "\n") + "\n"},
		},
		"BoxCentered": {
			reason: "The box format should honour centering.",
			args:   args{f: FormatBox, rows: [][]string{{"a"}, {"bbb"}}, opts: []Option{WithCentered(true)}},
			want: want{out: strings.Join([]string{
				"┌───┐",
				"│ a |",
				"│bbb|",
				"└───┘",
			}, "\n") + "\n"},
		},
		"TSV": {
			reason: "The TSV format should write aligned columns without borders.",
			args:   args{f: FormatTSV, labels: labels, rows: rows},
			want: want{out: strings.Join([]string{
				"Key  Name",
				"TAF  The Addams Family",
				"MM   Medieval Madness",
			}, "\n") + "\n"},
		},
		"BoxNoRows": {
			reason: "The box format should return an error when there are no rows.",
			args:   args{f: FormatBox, labels: labels},
			want:   want{err: cmpopts.AnyError},
		},
		"UnknownFormat": {
			reason: "An unknown format should return an error.",
			args:   args{f: Format("html"), rows: rows},
			want:   want{err: cmpopts.AnyError},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			b := &bytes.Buffer{}
			err := Write(b, tc.args.f, tc.args.labels, tc.args.rows, tc.args.opts...)
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nWrite(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.out, b.String()); diff != "" {
				t.Errorf("\n%s\nWrite(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestWriteASCII(t *testing.T) {
	rows := [][]string{{"TAF", "The Addams Family"}, {"MM", "Medieval Madness"}}

	b := &bytes.Buffer{}
	if err := Write(b, FormatASCII, []string{"Key", "Name"}, rows); err != nil {
		t.Fatalf("Write(...): unexpected error: %v", err)
	}

	// tablewriter owns the exact layout. Just check every cell and label made
	// it through unchanged.
	for _, c := range []string{"Key", "Name", "TAF", "The Addams Family", "MM", "Medieval Madness"} {
		if !strings.Contains(b.String(), c) {
			t.Errorf("Write(...): output missing cell %q:\n%s", c, b.String())
		}
	}
	if strings.Contains(b.String(), "KEY") {
		t.Errorf("Write(...): labels should not be reformatted:\n%s", b.String())
	}
}

func TestWriteShapeError(t *testing.T) {
	type args struct {
		labels []string
		rows   [][]string
	}
	cases := map[string]struct {
		reason string
		args   args
	}{
		"Ragged": {
			reason: "Rows of different lengths should be rejected.",
			args:   args{rows: [][]string{{"a", "b"}, {"c"}}},
		},
		"LabelMismatch": {
			reason: "Labels that don't match the number of columns should be rejected.",
			args:   args{labels: []string{"boss"}, rows: [][]string{{"a", "b"}}},
		},
		"NoRows": {
			reason: "No rows should be rejected.",
			args:   args{labels: []string{"boss"}},
		},
	}

	for name, tc := range cases {
		for _, f := range []Format{FormatBox, FormatASCII, FormatTSV} {
			t.Run(name+"/"+string(f), func(t *testing.T) {
				b := &bytes.Buffer{}
				err := Write(b, f, tc.args.labels, tc.args.rows)
				se := &table.ShapeError{}
				if !errors.As(err, &se) {
					t.Errorf("\n%s\nWrite(...): want *table.ShapeError, got %T: %v", tc.reason, err, err)
				}
				if diff := cmp.Diff("", b.String()); diff != "" {
					t.Errorf("\n%s\nWrite(...): want no output, -want, +got:\n%s", tc.reason, diff)
				}
			})
		}
	}
}
