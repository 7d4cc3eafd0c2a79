// Package format turns raw column values into display strings. Every helper
// accepts empty or malformed input and never fails.
package format

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Ellipsis marks text cut by Truncate.
const Ellipsis = "..."

// TimestampLayout is the display pattern for parsed timestamps.
const TimestampLayout = "2006-01-02 15:04"

// Truncate shortens s to at most limit characters. When s is longer, the
// first limit-3 characters are kept and Ellipsis is appended. Lengths are
// counted in runes so multi-byte text is never split mid-character.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= len(Ellipsis) {
		return Ellipsis[:limit]
	}
	runes := []rune(s)
	return string(runes[:limit-len(Ellipsis)]) + Ellipsis
}

// timestampLayouts are tried in order when parsing stored timestamps. They
// cover RFC 3339, Python's isoformat() output and SQLite's own formats.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Timestamp reformats s with TimestampLayout when it parses as a timestamp
// and returns it unchanged otherwise. Empty input yields "".
func Timestamp(s string) string {
	if s == "" {
		return ""
	}
	if t, ok := ParseTimestamp(s); ok {
		return t.Format(TimestampLayout)
	}
	return s
}

// ParseTimestamp parses s with any of the accepted layouts.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ShortID abbreviates an identifier to its first eight characters.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8] + Ellipsis
	}
	return id
}

// Cell renders a value scanned into any from a generic query. NULL becomes
// "", byte slices are treated as text and times use TimestampLayout.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(TimestampLayout)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// OrNA returns s, or "N/A" when s is empty.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
