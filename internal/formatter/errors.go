package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInputKind is returned when the input is not text.
var ErrInvalidInputKind = errors.New("invalid input kind")

func invalidKind(kind string) error {
	return fmt.Errorf("%w: expected text, got %s", ErrInvalidInputKind, kind)
}

// jsonKind names the JSON value type held by raw.
func jsonKind(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "empty JSON"
	}
	switch c := s[0]; {
	case c == '"':
		return "string"
	case c == 'n':
		return "null"
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == 't' || c == 'f':
		return "boolean"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	}
	return "invalid JSON"
}
