package normalize

import (
	"regexp"

	"github.com/dgallion1/mdfmtr/internal/lineclass"
)

// CanonicalRule replaces every horizontal rule.
const CanonicalRule = "---"

var altBulletRe = regexp.MustCompile(`^(\s*)[*+](\s)`)

// UnifyRules rewrites every horizontal rule outside fenced code to
// CanonicalRule.
func UnifyRules(lines []string) []string {
	code := lineclass.FencedLines(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		if !code[i] && lineclass.IsHorizontalRule(line) {
			line = CanonicalRule
		}
		out[i] = line
	}
	return out
}

// UnifyBullets rewrites '*' and '+' bullet markers to '-'.
func UnifyBullets(lines []string) []string {
	code := lineclass.FencedLines(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		if !code[i] && !lineclass.IsEmphasisStart(line) && !lineclass.IsHorizontalRule(line) {
			line = altBulletRe.ReplaceAllString(line, "${1}-${2}")
		}
		out[i] = line
	}
	return out
}

// UnifyEmphasis rewrites underscore emphasis to asterisk emphasis where the
// spans on a line can be paired up. Fenced code is left as written.
func UnifyEmphasis(lines []string) []string {
	code := lineclass.FencedLines(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		if code[i] {
			out[i] = line
			continue
		}
		out[i] = unifyUnderscores(line)
	}
	return out
}

// unifyUnderscores pushes a run when the stack is empty or its top is the
// same run, and pops on a differing run. An odd leftover means the last
// pushed run is dangling, so it stays as written.
func unifyUnderscores(line string) string {
	var stack []lineclass.Run
	for _, r := range lineclass.Runs(line, '_') {
		if n := len(stack); n == 0 || stack[n-1].Len == r.Len {
			stack = append(stack, r)
			continue
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack)%2 == 1 {
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return line
	}
	b := []byte(line)
	for _, r := range stack {
		for k := r.Start; k < r.End(); k++ {
			b[k] = '*'
		}
	}
	return string(b)
}
