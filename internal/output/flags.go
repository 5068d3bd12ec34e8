package output

import (
	"io"
)

// UnmarshalText parses a Format name, so it can be used as a flag.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Flags configure how commands write tables.
type Flags struct {
	Format   Format `default:"box" env:"BOXTABLE_FORMAT"   help:"Output format. One of box, ascii, or tsv." short:"f"`
	Centered bool   `env:"BOXTABLE_CENTERED" help:"Center cells within their columns."              short:"c"`
}

// Write writes rows to w using the configured format and alignment.
func (f *Flags) Write(w io.Writer, labels []string, rows [][]string) error {
	format := f.Format
	if format == "" {
		format = FormatBox
	}
	return Write(w, format, labels, rows, WithCentered(f.Centered))
}
