package regix

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Suite is a batch of match cases loaded from a TOML file:
//
//	[[case]]
//	pattern = "a*b"
//	input   = "aab"
//	want    = true
type Suite struct {
	Cases []Case `toml:"case"`
}

// Case is one pattern/input pair with the expected full-match verdict.
// An empty input is a valid case (e.g. "a*" fully matches "").
type Case struct {
	Pattern string `toml:"pattern"`
	Input   string `toml:"input"`
	Want    bool   `toml:"want"`
}

// CaseResult is the outcome of running one case.
type CaseResult struct {
	Case Case
	Err  error // compile error, nil otherwise
	Got  bool
	Pass bool
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	var s Suite
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("failed to load suite %q: %w", path, err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite %q has no cases", path)
	}
	for i, c := range s.Cases {
		if c.Pattern == "" {
			return nil, fmt.Errorf("suite %q: case %d has no pattern", path, i+1)
		}
	}
	return &s, nil
}

// Run compiles and evaluates every case. Each pattern is compiled once; a
// compile failure fails the case without aborting the rest of the suite.
func (s *Suite) Run() []CaseResult {
	results := make([]CaseResult, len(s.Cases))
	compiled := make(map[string]Pattern)
	failed := make(map[string]error)
	for i, c := range s.Cases {
		res := CaseResult{Case: c}
		p, ok := compiled[c.Pattern]
		if !ok {
			if err, bad := failed[c.Pattern]; bad {
				res.Err = err
				results[i] = res
				continue
			}
			var err error
			p, err = Compile(c.Pattern)
			if err != nil {
				failed[c.Pattern] = err
				res.Err = err
				results[i] = res
				continue
			}
			compiled[c.Pattern] = p
		}
		res.Got = p.FullMatch(c.Input)
		res.Pass = res.Got == c.Want
		results[i] = res
	}
	return results
}
