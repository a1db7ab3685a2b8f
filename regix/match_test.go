package regix

import "testing"

func TestFullMatch(t *testing.T) {
	tests := map[string]struct {
		givenPattern string
		wantMatch    []string
		wantNoMatch  []string
	}{
		"plain literal": {
			givenPattern: "uwu",
			wantMatch:    []string{"uwu"},
			wantNoMatch:  []string{"", "uw", "wu", "uwuu", "xuwu", "uwux"},
		},
		"wildcard is exactly one char": {
			givenPattern: ".",
			wantMatch:    []string{"a", "0", " ", "."},
			wantNoMatch:  []string{"", "ab"},
		},
		"star zero or more": {
			givenPattern: "a*",
			wantMatch:    []string{"", "a", "aaa"},
			wantNoMatch:  []string{"b", "ab", "ba"},
		},
		"plus one or more": {
			givenPattern: "a+",
			wantMatch:    []string{"a", "aa", "aaaa"},
			wantNoMatch:  []string{"", "b", "ab"},
		},
		"optional": {
			givenPattern: "ab?",
			wantMatch:    []string{"a", "ab"},
			wantNoMatch:  []string{"", "b", "abb"},
		},
		"alternation": {
			givenPattern: "a|b",
			wantMatch:    []string{"a", "b"},
			wantNoMatch:  []string{"", "c", "ab"},
		},
		"alternation over runs": {
			givenPattern: "foo|bar",
			wantMatch:    []string{"foo", "bar"},
			wantNoMatch:  []string{"foobar", "fo", "ba"},
		},
		"digit class": {
			givenPattern: `\d+`,
			wantMatch:    []string{"0", "42", "00123"},
			wantNoMatch:  []string{"", "a", "4a2"},
		},
		"whitespace class": {
			givenPattern: `a\wb`,
			wantMatch:    []string{"a b", "a\tb", "a\nb"},
			wantNoMatch:  []string{"ab", "a_b", "aXb"},
		},
		"letter class": {
			givenPattern: `\l\l`,
			wantMatch:    []string{"ab", "XY", "aZ"},
			wantNoMatch:  []string{"a1", "12", "a", "abc"},
		},
		"escaped metachar": {
			givenPattern: `\+\*`,
			wantMatch:    []string{"+*"},
			wantNoMatch:  []string{"", "+", "**"},
		},
		"capturing group matches like sequence": {
			givenPattern: "(ab)c",
			wantMatch:    []string{"abc"},
			wantNoMatch:  []string{"ab", "c", "abcc"},
		},
		"bracket group": {
			givenPattern: "[ab]+",
			wantMatch:    []string{"ab", "abab"},
			wantNoMatch:  []string{"", "a", "aba"},
		},
		"group alternation": {
			givenPattern: "(ab|a)c",
			wantMatch:    []string{"abc", "ac"},
			wantNoMatch:  []string{"c", "abac"},
		},
		"star is greedy without backtracking": {
			givenPattern: "a*a",
			// the star swallows every 'a' and never gives one back
			wantNoMatch: []string{"a", "aa", "aaa"},
		},
		"wildcard star swallows the rest": {
			givenPattern: ".*b",
			wantNoMatch:  []string{"b", "ab", "aab"},
		},
		"alternation commits to the left branch": {
			givenPattern: "(a|ab)c",
			wantMatch:    []string{"ac"},
			// left branch "a" succeeds on "abc", so "ab" is never tried
			wantNoMatch: []string{"abc"},
		},
		"negation matches a fixed one-char token": {
			givenPattern: "^a",
			wantMatch:    []string{"b", "x", "7"},
			wantNoMatch:  []string{"a", "", "bb"},
		},
		"negation of a group": {
			givenPattern: "^(ab)",
			wantMatch:    []string{"x"},
			wantNoMatch:  []string{"", "ab", "xy"},
		},
		"negation binds to the whole run": {
			givenPattern: "^ab",
			wantMatch:    []string{"x", "b"},
			wantNoMatch:  []string{"ab", "ax", "xy", ""},
		},
		"negation inside a sequence": {
			givenPattern: "^[a]b",
			wantMatch:    []string{"xb", "bb"},
			// the empty input must fail, not crash: negation has nothing to consume
			wantNoMatch: []string{"", "ab", "b", "x"},
		},
		"starred negation": {
			givenPattern: "^a*",
			wantMatch:    []string{"", "b", "bbb", "xyz"},
			wantNoMatch:  []string{"a", "ab", "ba"},
		},
		"plus negation": {
			givenPattern: "^a+",
			wantMatch:    []string{"b", "bb"},
			wantNoMatch:  []string{"", "a", "ba"},
		},
		"quantified group": {
			givenPattern: "(ab)+",
			wantMatch:    []string{"ab", "abab", "ababab"},
			wantNoMatch:  []string{"", "a", "aba"},
		},
		"optional group then literal": {
			givenPattern: "(ab)?c",
			wantMatch:    []string{"c", "abc"},
			wantNoMatch:  []string{"ab", "ababc"},
		},
		"starred optional terminates": {
			givenPattern: "(a?)*b",
			wantMatch:    []string{"b", "ab", "aaab"},
			wantNoMatch:  []string{"", "a"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Compile(tt.givenPattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.givenPattern, err)
			}

			for _, s := range tt.wantMatch {
				if !p.FullMatch(s) {
					t.Errorf("FullMatch(%q) = false, want true", s)
				}
			}
			for _, s := range tt.wantNoMatch {
				if p.FullMatch(s) {
					t.Errorf("FullMatch(%q) = true, want false", s)
				}
			}
		})
	}
}
