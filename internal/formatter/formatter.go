// Package formatter is the entry point that turns one Markdown text into
// its normalized form plus an advisory diagnostic report.
package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/dgallion1/mdfmtr/internal/diagnose"
	"github.com/dgallion1/mdfmtr/internal/normalize"
)

// Options controls a single Format call.
type Options struct {
	// MaxLineLength is the line-length diagnostic threshold (default 80).
	MaxLineLength int
	// CollapseCRLF treats "\r\n" as one line break. When false, "\r" and
	// "\n" each end a line, so "\r\n" produces an extra empty line.
	CollapseCRLF bool
}

// Result holds the two outputs of a Format call.
type Result struct {
	FixedText string `json:"fixed_text"`
	// Errors is keyed by index into Lines, the input as split before any
	// normalization.
	Errors diagnose.Report `json:"errors"`
	Lines  []string        `json:"-"`
}

// SplitLines splits text on every "\n" and every "\r".
func SplitLines(text string, collapseCRLF bool) []string {
	if collapseCRLF {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return strings.Split(strings.ReplaceAll(text, "\r", "\n"), "\n")
}

// Format normalizes text and scans the original lines for mistakes.
// Diagnostics always describe the input lines, not the fixed output.
func Format(text string, opts Options) *Result {
	lines := SplitLines(text, opts.CollapseCRLF)
	report := diagnose.Scan(lines, diagnose.Options{MaxLineLength: opts.MaxLineLength})
	fixed := normalize.Apply(lines)
	return &Result{
		FixedText: strings.Join(fixed, "\n"),
		Errors:    report,
		Lines:     lines,
	}
}

// FormatValue formats a dynamically typed input. Strings, byte slices,
// JSON strings and fmt.Stringer values are accepted; anything else fails
// with ErrInvalidInputKind and no partial result.
func FormatValue(v any, opts Options) (*Result, error) {
	var text string
	switch t := v.(type) {
	case nil:
		return nil, invalidKind("nil")
	case string:
		text = t
	case json.RawMessage:
		// Unmarshal accepts null into a string, so check the kind first.
		if kind := jsonKind(t); kind != "string" {
			return nil, invalidKind(kind)
		}
		if err := json.Unmarshal(t, &text); err != nil {
			return nil, invalidKind("invalid JSON")
		}
	case []byte:
		text = string(t)
	case fmt.Stringer:
		if isNilRef(v) {
			return nil, invalidKind(fmt.Sprintf("nil %T", v))
		}
		text = t.String()
	default:
		return nil, invalidKind(fmt.Sprintf("%T", v))
	}
	return Format(text, opts), nil
}

// isNilRef reports whether v is a typed nil, which would panic inside a
// String method.
func isNilRef(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
