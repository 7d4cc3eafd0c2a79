package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// StructuredKind says what a structured field decoded to.
type StructuredKind int

// Structured field kinds.
const (
	KindEmpty  StructuredKind = iota // no content
	KindRaw                          // not valid JSON, kept as text
	KindList                         // JSON array
	KindObject                       // JSON object
	KindScalar                       // JSON string, number, bool or null
)

// Structured is the result of decoding a JSON column such as
// model_compatibility_tags or other_parameters. Decode failures are not
// errors: they produce KindRaw with the original text in Raw.
type Structured struct {
	Kind   StructuredKind
	Raw    string
	List   []any
	Object map[string]any
	Scalar any
}

// Decoded reports whether the field held valid JSON.
func (s Structured) Decoded() bool {
	return s.Kind == KindList || s.Kind == KindObject || s.Kind == KindScalar
}

// DecodeStructured decodes raw leniently. Numbers keep their textual form.
func DecodeStructured(raw string) Structured {
	if strings.TrimSpace(raw) == "" {
		return Structured{Kind: KindEmpty, Raw: raw}
	}

	if !json.Valid([]byte(raw)) {
		return Structured{Kind: KindRaw, Raw: raw}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Structured{Kind: KindRaw, Raw: raw}
	}

	switch x := v.(type) {
	case []any:
		return Structured{Kind: KindList, Raw: raw, List: x}
	case map[string]any:
		return Structured{Kind: KindObject, Raw: raw, Object: x}
	default:
		return Structured{Kind: KindScalar, Raw: raw, Scalar: x}
	}
}

// String renders lists as "a, b", objects as "k: v, ..." with sorted keys,
// scalars as their value and raw fallbacks verbatim.
func (s Structured) String() string {
	switch s.Kind {
	case KindEmpty:
		return ""
	case KindList:
		parts := make([]string, 0, len(s.List))
		for _, item := range s.List {
			parts = append(parts, jsonValue(item))
		}
		return strings.Join(parts, ", ")
	case KindObject:
		keys := make([]string, 0, len(s.Object))
		for k := range s.Object {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+jsonValue(s.Object[k]))
		}
		return strings.Join(parts, ", ")
	case KindScalar:
		return jsonValue(s.Scalar)
	default:
		return s.Raw
	}
}

func jsonValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return fmt.Sprint(x)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(x); err != nil {
			return fmt.Sprint(x)
		}
		return strings.TrimSpace(buf.String())
	}
}

// LooksStructured reports whether a column name suggests JSON content.
func LooksStructured(column string) bool {
	lower := strings.ToLower(column)
	return strings.Contains(lower, "json") ||
		lower == "model_compatibility_tags" ||
		lower == "other_parameters"
}

// LooksLikeTimestamp reports whether a column name suggests a timestamp.
func LooksLikeTimestamp(column string) bool {
	lower := strings.ToLower(column)
	return strings.HasSuffix(lower, "_at") ||
		strings.Contains(lower, "created_at") ||
		strings.Contains(lower, "updated_at") ||
		strings.Contains(lower, "timestamp")
}
