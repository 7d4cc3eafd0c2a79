package format

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "empty", input: "", limit: 10, want: ""},
		{name: "shorter than limit", input: "hello", limit: 10, want: "hello"},
		{name: "exactly limit", input: "hello", limit: 5, want: "hello"},
		{name: "one over limit", input: "hello!", limit: 5, want: "he..."},
		{name: "long text", input: strings.Repeat("a", 200), limit: 100, want: strings.Repeat("a", 97) + "..."},
		{name: "multi-byte runes", input: "héllo wörld", limit: 8, want: "héllo..."},
		{name: "limit smaller than marker", input: "hello", limit: 2, want: ".."},
		{name: "zero limit", input: "hello", limit: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.limit))
		})
	}
}

func TestTruncateProperties(t *testing.T) {
	inputs := []string{
		"",
		"short",
		"You are an expert code reviewer for {{language:Python}}.",
		strings.Repeat("x", 500),
		"日本語のテキストはマルチバイトです",
	}

	for _, input := range inputs {
		for limit := 4; limit <= 160; limit += 7 {
			got := Truncate(input, limit)
			n := utf8.RuneCountInString(got)
			assert.LessOrEqual(t, n, limit)

			if utf8.RuneCountInString(input) > limit {
				assert.True(t, strings.HasSuffix(got, Ellipsis), "%q truncated to %d should end with marker", input, limit)
				prefix := string([]rune(input)[:limit-3])
				assert.True(t, strings.HasPrefix(got, prefix))
			} else {
				assert.Equal(t, input, got)
			}
		}
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "RFC 3339 UTC", input: "2025-01-15T10:30:00Z", want: "2025-01-15 10:30"},
		{name: "RFC 3339 offset", input: "2025-01-15T10:30:45+02:00", want: "2025-01-15 10:30"},
		{name: "isoformat with micros", input: "2025-01-15T10:30:45.123456", want: "2025-01-15 10:30"},
		{name: "sqlite datetime", input: "2025-01-15 10:30:45", want: "2025-01-15 10:30"},
		{name: "date only", input: "2025-01-15", want: "2025-01-15 00:00"},
		{name: "unparseable echoed", input: "last tuesday", want: "last tuesday"},
		{name: "numeric echoed", input: "1736937000", want: "1736937000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Timestamp(tt.input))
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0190a1b2...", ShortID("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "12345678", ShortID("12345678"))
	assert.Equal(t, "", ShortID(""))
}

func TestCell(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: ""},
		{name: "string", input: "text", want: "text"},
		{name: "bytes", input: []byte("blob"), want: "blob"},
		{name: "time", input: ts, want: "2025-01-15 10:30"},
		{name: "float", input: 0.3, want: "0.3"},
		{name: "int", input: int64(42), want: "42"},
		{name: "bool", input: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cell(tt.input))
		})
	}
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "code_review", OrNA("code_review"))
}
