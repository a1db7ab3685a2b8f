package regix

import "strings"

// Captures maps a capture id to the substrings recorded for it, in the order
// the group matched. Ids are assigned at compile time and need not be
// contiguous, hence a map rather than a slice.
type Captures map[int][]string

func (c Captures) add(id int, s string) {
	c[id] = append(c[id], s)
}

// node is one element of the compiled AST. match evaluates the node against
// the remaining input and returns how many bytes it consumed; ok is false if
// the node did not match. A failed match never has side effects on the input,
// but capture writes made by already-succeeded siblings stay in caps.
type node interface {
	match(in string, caps Captures) (consumed int, ok bool)
	dump(sb *strings.Builder, depth int)
}

type literal struct {
	Char byte
}

func (n literal) match(in string, caps Captures) (int, bool) {
	if len(in) > 0 && in[0] == n.Char {
		return 1, true
	}
	return 0, false
}

type anyChar struct{}

func (n anyChar) match(in string, caps Captures) (int, bool) {
	if len(in) > 0 {
		return 1, true
	}
	return 0, false
}

type digitClass struct{}

func (n digitClass) match(in string, caps Captures) (int, bool) {
	if len(in) > 0 && isDigit(in[0]) {
		return 1, true
	}
	return 0, false
}

type spaceClass struct{}

func (n spaceClass) match(in string, caps Captures) (int, bool) {
	if len(in) > 0 && isSpace(in[0]) {
		return 1, true
	}
	return 0, false
}

type letterClass struct{}

func (n letterClass) match(in string, caps Captures) (int, bool) {
	if len(in) > 0 && isLetter(in[0]) {
		return 1, true
	}
	return 0, false
}

// sequence matches its children in order over successively sliced input.
type sequence struct {
	Children []node
}

func (n *sequence) match(in string, caps Captures) (int, bool) {
	total := 0
	for _, c := range n.Children {
		adv, ok := c.match(in[total:], caps)
		if !ok {
			return 0, false
		}
		total += adv
	}
	return total, true
}

// capture behaves like sequence and additionally records the substring it
// consumed under its id.
type capture struct {
	ID       int
	Children []node
}

func (n *capture) match(in string, caps Captures) (int, bool) {
	total := 0
	for _, c := range n.Children {
		adv, ok := c.match(in[total:], caps)
		if !ok {
			return 0, false
		}
		total += adv
	}
	caps.add(n.ID, in[:total])
	return total, true
}

// repeat matches its child greedily. Min is 0 for '*' and 1 for '+'.
// No backtracking: repetitions are never given back to later siblings.
type repeat struct {
	Child node
	Min   int
}

func (n *repeat) match(in string, caps Captures) (int, bool) {
	count := 0
	total := 0
	for {
		adv, ok := n.Child.match(in[total:], caps)
		if !ok {
			break
		}
		count++
		total += adv
		// a zero-width child would repeat forever; one repetition is enough
		if adv == 0 {
			break
		}
	}
	if count < n.Min {
		return 0, false
	}
	return total, true
}

type optional struct {
	Child node
}

func (n *optional) match(in string, caps Captures) (int, bool) {
	if adv, ok := n.Child.match(in, caps); ok {
		return adv, true
	}
	return 0, true
}

// alternation commits to Left if it matches at all; Right is only tried after
// Left fails. No backtracking into the other branch.
type alternation struct {
	Left  node
	Right node
}

func (n *alternation) match(in string, caps Captures) (int, bool) {
	if adv, ok := n.Left.match(in, caps); ok {
		return adv, true
	}
	return n.Right.match(in, caps)
}

// negation succeeds iff its child fails, consuming a fixed length of 1
// regardless of what the child would have consumed. It needs a character to
// consume, so it fails on empty input; otherwise it would report more than
// the remaining input holds and siblings would slice past the end.
type negation struct {
	Child node
}

func (n *negation) match(in string, caps Captures) (int, bool) {
	if len(in) == 0 {
		return 0, false
	}
	if _, ok := n.Child.match(in, caps); ok {
		return 0, false
	}
	return 1, true
}
