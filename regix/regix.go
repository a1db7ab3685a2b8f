// Package regix is a small regex engine that matches whole strings against a
// compiled pattern, recording capturing-group substrings.
//
// The grammar is deliberately tiny: literals, '.', escapes (\l letter, \d
// digit, \w whitespace), capturing groups '(...)', non-capturing groups
// '[...]', alternation '|', quantifiers '? * +' and negation '^term'. There
// is no searching at offsets, no bounded repetition and no character-class
// ranges. Repeat and alternation are greedy and never backtrack, so e.g.
// "a*a" matches nothing: the star swallows every 'a' and keeps none back.
package regix

import "strings"

// Pattern is a compiled pattern. It is immutable and may be matched from
// many goroutines at once; every match call allocates its own capture table.
type Pattern struct {
	root *sequence
}

// Compile parses a pattern into a Pattern. A malformed pattern yields a
// *PatternError.
func Compile(pattern string) (Pattern, error) {
	p := &parser{cur: newCursor(pattern)}
	terms, err := p.parseTerms(0)
	if err != nil {
		return Pattern{}, err
	}
	if len(terms) == 0 {
		return Pattern{}, newPatternError(0, "empty pattern")
	}
	return Pattern{root: &sequence{Children: terms}}, nil
}

// FullMatch reports whether s matches the pattern in its entirety. Matching
// is anchored: it starts at offset 0 and must consume every byte of s.
func (p Pattern) FullMatch(s string) bool {
	matched, _ := p.FullMatchWithCaptures(s)
	return matched
}

// FullMatchWithCaptures is FullMatch exposing the capture table. The table
// maps each capture id to the substrings the group recorded, in match order.
// If matched is false the table may still hold entries written by groups that
// succeeded before a later sibling failed; only a matched=true table is
// meaningful.
func (p Pattern) FullMatchWithCaptures(s string) (matched bool, caps Captures) {
	caps = make(Captures)
	consumed, ok := p.root.match(s, caps)
	return ok && consumed == len(s), caps
}

// Describe returns an indented tree dump of the compiled AST, one node per
// line. Diagnostic only; the wording is stable but not a contract.
func (p Pattern) Describe() string {
	var sb strings.Builder
	p.root.dump(&sb, 0)
	return sb.String()
}
