// Package normalize rewrites loosely formatted Markdown lines into a
// consistent form. Each pass takes the full line sequence and returns a new
// one; passes never reorder lines.
package normalize

// Pass is a single whole-document rewrite.
type Pass func(lines []string) []string

// Passes is the normalization pipeline in execution order.
var Passes = []Pass{
	IndentLists,
	SpaceSymbols,
	UnifyRules,
	UnifyBullets,
	UnifyEmphasis,
	RenumberLists,
	Separate,
}

// Apply runs every pass over lines. The input slice is not modified.
func Apply(lines []string) []string {
	out := append([]string(nil), lines...)
	for _, p := range Passes {
		out = p(out)
	}
	return out
}
