package normalize

import (
	"regexp"
	"unicode/utf8"

	"github.com/dgallion1/mdfmtr/internal/lineclass"
)

type spacingRule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// First match wins.
var spacingRules = []spacingRule{
	{"marker-run", regexp.MustCompile(`^([-*+]{2,})( *)(\S)`), "${1}${3}"},
	{"bullet", regexp.MustCompile(`^( *)([-*+])( *)(\S)`), "${1}${2} ${4}"},
	{"ordered", regexp.MustCompile(`^( *)(\d+\.)( *)(\S)`), "${1}${2} ${4}"},
	{"heading", regexp.MustCompile(`^(#{1,6})( *)([^#\s])`), "${1} ${3}"},
	{"blockquote", regexp.MustCompile(`^(>+)( *)(\S)`), "${1} ${3}"},
}

// SpaceSymbols enforces exactly one space between a markup prefix (bullet,
// ordered marker, heading hashes, quote chevrons) and the content after it.
// A run of two or more marker symbols ("** bold**") is closed up against
// its content instead. Fenced code is left as written.
func SpaceSymbols(lines []string) []string {
	code := lineclass.FencedLines(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		if code[i] {
			out[i] = line
			continue
		}
		out[i] = spaceSymbols(line)
	}
	return out
}

func spaceSymbols(line string) string {
	if utf8.RuneCountInString(line) <= 1 ||
		lineclass.IsEmphasisStart(line) ||
		lineclass.IsHorizontalRule(line) {
		return line
	}
	for _, r := range spacingRules {
		if r.re.MatchString(line) {
			return r.re.ReplaceAllString(line, r.repl)
		}
	}
	return line
}
