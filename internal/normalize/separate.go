package normalize

import "github.com/dgallion1/mdfmtr/internal/lineclass"

type blockKind int

const (
	kindBlank blockKind = iota
	kindProse
	kindHeading
	kindBullet
	kindOrdered
	kindRule
	kindQuote
)

func classify(line string) blockKind {
	switch {
	case lineclass.IsBlank(line):
		return kindBlank
	case lineclass.IsHorizontalRule(line):
		return kindRule
	case lineclass.IsHeading(line):
		return kindHeading
	case lineclass.IsBullet(line):
		return kindBullet
	case lineclass.IsOrdered(line):
		return kindOrdered
	case lineclass.IsBlockquote(line):
		return kindQuote
	}
	return kindProse
}

func (k blockKind) isList() bool { return k == kindBullet || k == kindOrdered }

// continues reports whether cur belongs to the same block as prev, in which
// case no blank separator goes between them.
func continues(prev, cur string) bool {
	a, b := classify(prev), classify(cur)
	switch {
	case a == kindBlank || b == kindBlank:
		return true
	case a == b && a != kindHeading:
		return true
	case a.isList() && b.isList() && lineclass.IsIndented(cur):
		return true
	}
	return false
}

// Separate inserts a blank line between adjacent lines that belong to
// different blocks (prose before a heading, a heading before a list, a list
// before prose...) and makes sure the document ends with a newline. A
// fenced code block is never split.
func Separate(lines []string) []string {
	code := lineclass.FencedLines(lines)
	out := make([]string, 0, len(lines)+len(lines)/2+1)
	for i, line := range lines {
		if i > 0 && !(code[i-1] && code[i]) && !continues(lines[i-1], line) {
			out = append(out, "")
		}
		out = append(out, line)
	}
	if n := len(out); n > 0 && !lineclass.IsBlank(out[n-1]) {
		out = append(out, "")
	}
	return out
}
