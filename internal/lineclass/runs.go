package lineclass

import (
	"unicode"
	"unicode/utf8"
)

// Run is a maximal sequence of a single marker character within a line.
type Run struct {
	Start int // byte offset of the first marker
	Len   int
}

// End returns the byte offset just past the run.
func (r Run) End() int { return r.Start + r.Len }

// Runs returns the emphasis-capable runs of marker in line, left to right.
// Runs inside inline code spans, escaped runs and runs with whitespace on
// both sides are skipped. For '_' a run inside a word (snake_case) is
// skipped too.
func Runs(line string, marker byte) []Run {
	spans := codeSpans(line)
	var runs []Run
	for i := 0; i < len(line); {
		if line[i] != marker {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] == marker {
			j++
		}
		if !inSpans(spans, i) && emphasisCapable(line, i, j, marker) {
			runs = append(runs, Run{Start: i, Len: j - i})
		}
		i = j
	}
	return runs
}

// Balanced reports whether every run of marker in line is closed by an
// identical run. A run pops the stack when it matches the top entry and is
// pushed otherwise; anything left over is unbalanced.
func Balanced(line string, marker byte) bool {
	var stack []int
	for _, r := range Runs(line, marker) {
		if n := len(stack); n > 0 && stack[n-1] == r.Len {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, r.Len)
	}
	return len(stack) == 0
}

func emphasisCapable(line string, start, end int, marker byte) bool {
	if start > 0 && line[start-1] == '\\' {
		return false
	}
	before, after := ' ', ' '
	if start > 0 {
		before, _ = utf8.DecodeLastRuneInString(line[:start])
	}
	if end < len(line) {
		after, _ = utf8.DecodeRuneInString(line[end:])
	}
	if unicode.IsSpace(before) && unicode.IsSpace(after) {
		return false
	}
	if marker == '_' && isWordRune(before) && isWordRune(after) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// codeSpans returns the [start, end) byte ranges of closed inline code
// spans. A span opened by n backticks closes at the next run of exactly n.
func codeSpans(line string) [][2]int {
	var spans [][2]int
	open, openLen := -1, 0
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] == '`' {
			j++
		}
		switch {
		case open < 0:
			open, openLen = i, j-i
		case j-i == openLen:
			spans = append(spans, [2]int{open, j})
			open = -1
		}
		i = j
	}
	return spans
}

func inSpans(spans [][2]int, pos int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
