package regix

import "fmt"

// PatternError reports a malformed pattern, with the byte offset at which
// compilation gave up.
type PatternError struct {
	Pos     int
	Message string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern at %d: %s", e.Pos, e.Message)
}

func newPatternError(pos int, msg string) *PatternError {
	return &PatternError{Pos: pos, Message: msg}
}

// parser holds the compilation state: the cursor over the pattern text and
// the capture-id counter. The counter is bumped when a group node is actually
// constructed, which happens when its ')' is consumed, so nested groups get
// lower ids than the groups enclosing them.
type parser struct {
	cur    *cursor
	groups int
}

// isMeta reports whether c is reserved by the grammar. '\' is not listed:
// it is consumed inside literal runs as the escape prefix.
func isMeta(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '|', '?', '*', '+', '.', '^':
		return true
	}
	return false
}

// parseTerms parses sibling terms until the closing byte is consumed, or, for
// close == 0, until the pattern is exhausted.
func (p *parser) parseTerms(close byte) ([]node, error) {
	var terms []node
	for !p.cur.done() {
		if close != 0 && p.cur.peek() == close {
			p.cur.next()
			return terms, nil
		}
		var err error
		terms, err = p.parseTerm(terms)
		if err != nil {
			return nil, err
		}
	}
	if close != 0 {
		return nil, newPatternError(p.cur.pos, fmt.Sprintf("unterminated group, expected %q", close))
	}
	return terms, nil
}

// parseTerm parses one term and returns the updated sibling list. The postfix
// operators '?', '*', '+' and the infix '|' rewrite the list in place by
// popping the most recently parsed sibling.
func (p *parser) parseTerm(terms []node) ([]node, error) {
	pos := p.cur.pos
	switch c := p.cur.peek(); c {
	case '(':
		p.cur.next()
		children, err := p.parseTerms(')')
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, newPatternError(pos, "empty group")
		}
		id := p.groups
		p.groups++
		return append(terms, &capture{ID: id, Children: children}), nil
	case '[':
		p.cur.next()
		children, err := p.parseTerms(']')
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, newPatternError(pos, "empty bracket group")
		}
		return append(terms, &sequence{Children: children}), nil
	case ')', ']':
		return nil, newPatternError(pos, fmt.Sprintf("unexpected %q", c))
	case '|':
		p.cur.next()
		if len(terms) == 0 {
			return nil, newPatternError(pos, "'|' with no left operand")
		}
		right, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		left := terms[len(terms)-1]
		terms[len(terms)-1] = &alternation{Left: left, Right: right}
		return terms, nil
	case '?':
		p.cur.next()
		if len(terms) == 0 {
			return nil, newPatternError(pos, "'?' with nothing to repeat")
		}
		terms[len(terms)-1] = &optional{Child: terms[len(terms)-1]}
		return terms, nil
	case '*':
		p.cur.next()
		if len(terms) == 0 {
			return nil, newPatternError(pos, "'*' with nothing to repeat")
		}
		terms[len(terms)-1] = &repeat{Child: terms[len(terms)-1], Min: 0}
		return terms, nil
	case '+':
		p.cur.next()
		if len(terms) == 0 {
			return nil, newPatternError(pos, "'+' with nothing to repeat")
		}
		terms[len(terms)-1] = &repeat{Child: terms[len(terms)-1], Min: 1}
		return terms, nil
	case '.':
		p.cur.next()
		return append(terms, anyChar{}), nil
	case '^':
		p.cur.next()
		child, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		return append(terms, &negation{Child: child}), nil
	default:
		run, err := p.parseRun()
		if err != nil {
			return nil, err
		}
		return append(terms, run), nil
	}
}

// parseSingle parses exactly one following term, for operators that take a
// single operand ('|' right side, '^' child).
func (p *parser) parseSingle() (node, error) {
	pos := p.cur.pos
	if p.cur.done() {
		return nil, newPatternError(pos, "expected a term")
	}
	terms, err := p.parseTerm(nil)
	if err != nil {
		return nil, err
	}
	if len(terms) != 1 {
		return nil, newPatternError(pos, "expected exactly one term")
	}
	return terms[0], nil
}

// parseRun consumes a maximal run of non-metacharacters into one sequence.
// Escapes: \l letter class, \d digit class, \w whitespace class (historical,
// not "word"), any other \X the literal X.
func (p *parser) parseRun() (node, error) {
	start := p.cur.pos
	var children []node
	for !p.cur.done() && !isMeta(p.cur.peek()) {
		c := p.cur.next()
		if c != '\\' {
			children = append(children, literal{Char: c})
			continue
		}
		if p.cur.done() {
			return nil, newPatternError(p.cur.pos, "pattern ends in escape")
		}
		switch e := p.cur.next(); e {
		case 'l':
			children = append(children, letterClass{})
		case 'd':
			children = append(children, digitClass{})
		case 'w':
			children = append(children, spaceClass{})
		default:
			children = append(children, literal{Char: e})
		}
	}
	if len(children) == 0 {
		return nil, newPatternError(start, "empty literal run")
	}
	return &sequence{Children: children}, nil
}
