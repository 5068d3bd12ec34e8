package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue formats a value, typically one scanned from a SQL row, as a
// single line table cell. Nil formats as an empty cell.
func FormatValue(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		s = v
	case []byte:
		s = string(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		s = v.Format(time.RFC3339)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprintf("%v", v)
	}
	return SingleLine(s)
}

// SingleLine replaces line breaks and tabs with spaces, so s renders on one
// line of a table.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\v', '\f':
			return ' '
		default:
			return r
		}
	}, s)
}
