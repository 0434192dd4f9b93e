// Package lineclass answers syntactic questions about single Markdown lines.
// Every predicate is stateless and looks at one line in isolation.
package lineclass

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bulletRe     = regexp.MustCompile(`^\s*[-*+](\s|$)`)
	orderedRe    = regexp.MustCompile(`^\s*\d+\.(\s|$)`)
	listPrefixRe = regexp.MustCompile(`^\s*(\d+\.|[*+-])`)
	markerRunRe  = regexp.MustCompile(`^\s*[*+-]{2,}`)
	quoteRe      = regexp.MustCompile(`^\s*>`)
	headingRe    = regexp.MustCompile(`^\s*#{1,6}(\s|$)`)
)

// IsBlank reports whether the line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsEmphasisStart reports whether the line, ignoring leading blanks, opens
// with an emphasis span: a run of '*' or '_' directly followed by a
// non-space, non-marker character, with a later run of the same character
// closing it on the same line.
func IsEmphasisStart(line string) bool {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	if s == "" {
		return false
	}
	c := s[0]
	if c != '*' && c != '_' {
		return false
	}
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	if n == len(s) {
		return false
	}
	switch s[n] {
	case ' ', '\t', '*', '_':
		return false
	}
	rest := s[n:]
	for i := 1; i < len(rest); i++ {
		if rest[i] == c && rest[i-1] != ' ' && rest[i-1] != '\t' {
			return true
		}
	}
	return false
}

// IsHorizontalRule reports whether the line, with all whitespace removed,
// is three or more repetitions of one of '-', '*' or '_'.
func IsHorizontalRule(line string) bool {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	return strings.Count(s, string(c)) == len(s)
}

// HasMarkerRun reports whether the line opens with two or more list/rule
// symbols, such as "**" or "--". Such lines are emphasis or rules, never
// list items.
func HasMarkerRun(line string) bool {
	return markerRunRe.MatchString(line)
}

// IsListPrefix reports whether the line starts with a list marker as
// written by an author, before any spacing is enforced ("-3", "2.b").
func IsListPrefix(line string) bool {
	return listPrefixRe.MatchString(line)
}

// IsBullet reports whether the line is a bullet list item with a space
// after its marker. Horizontal rules are never bullets.
func IsBullet(line string) bool {
	return bulletRe.MatchString(line) && !IsHorizontalRule(line)
}

// IsOrdered reports whether the line is an ordered list item ("3. text").
func IsOrdered(line string) bool {
	return orderedRe.MatchString(line)
}

// IsList reports whether the line is a bullet or ordered list item.
func IsList(line string) bool {
	return IsBullet(line) || IsOrdered(line)
}

// IsBlockquote reports whether the line starts with a '>' chevron.
func IsBlockquote(line string) bool {
	return quoteRe.MatchString(line)
}

// IsHeading reports whether the line is a spaced ATX heading ("## Title").
func IsHeading(line string) bool {
	return headingRe.MatchString(line)
}

// IsFence reports whether the line opens or closes a fenced code block,
// with either backticks or tildes.
func IsFence(line string) bool {
	_, ok := fenceChar(line)
	return ok
}

func fenceChar(line string) (byte, bool) {
	s := strings.TrimLeft(line, " ")
	switch {
	case strings.HasPrefix(s, "```"):
		return '`', true
	case strings.HasPrefix(s, "~~~"):
		return '~', true
	}
	return 0, false
}

// FencedLines marks fence lines and every line between an opening fence
// and its closing fence. A block only closes on the character that opened
// it, and an unclosed block runs to the end of the document.
func FencedLines(lines []string) []bool {
	code := make([]bool, len(lines))
	var open byte
	for i, line := range lines {
		c, ok := fenceChar(line)
		switch {
		case open != 0:
			code[i] = true
			if ok && c == open {
				open = 0
			}
		case ok:
			code[i] = true
			open = c
		}
	}
	return code
}

// IsIndented reports whether the line has leading whitespace.
func IsIndented(line string) bool {
	return line != "" && unicode.IsSpace(rune(line[0]))
}

// ParseHeading extracts the level and trimmed title of an ATX heading.
// Missing space after the hashes is tolerated ("##Title").
func ParseHeading(line string) (level int, title string, ok bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	return level, strings.TrimSpace(s[level:]), true
}
