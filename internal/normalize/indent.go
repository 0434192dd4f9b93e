package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/mdfmtr/internal/lineclass"
)

// indentState tracks list nesting across consecutive list lines.
type indentState struct {
	level int
	// Raw leading-space counts of earlier list lines, most recent first.
	// Adjacent duplicates are never stored since they cannot change a
	// comparison outcome.
	seen []int
}

func (s *indentState) reset() {
	s.level = 0
	s.seen = s.seen[:0]
}

// IndentLists recomputes the nesting level of every list item from its raw
// leading whitespace and re-indents it with two spaces per level. Other
// lines lose their leading whitespace. Blank lines and any non-list line
// end the current list context.
func IndentLists(lines []string) []string {
	out := make([]string, len(lines))
	var st indentState
	for i, line := range lines {
		out[i] = st.next(line)
	}
	return out
}

func (s *indentState) next(line string) string {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" {
		s.reset()
		return ""
	}
	if lineclass.IsEmphasisStart(trimmed) || lineclass.IsHorizontalRule(trimmed) || lineclass.HasMarkerRun(trimmed) {
		return trimmed
	}
	if !lineclass.IsListPrefix(trimmed) {
		s.reset()
		return trimmed
	}

	lead := utf8.RuneCountInString(line[:len(line)-len(trimmed)])
	prev, havePrev := 0, false
	for _, pre := range s.seen {
		if lead-pre >= 2 {
			s.level++
			break
		}
		if (!havePrev || prev-pre >= 2) && s.level > 0 {
			s.level--
		}
		prev, havePrev = pre, true
	}
	if len(s.seen) == 0 || s.seen[0] != lead {
		s.seen = append([]int{lead}, s.seen...)
	}
	return strings.Repeat("  ", s.level) + trimmed
}
