package regix

// cursor is a read-only view over the pattern text used during compilation.
// Positions are byte offsets; the grammar is 8-bit, so no rune decoding.
type cursor struct {
	input string
	pos   int
}

func newCursor(s string) *cursor { return &cursor{input: s} }

func (c *cursor) done() bool { return c.pos >= len(c.input) }

// peek returns the byte at the current position without consuming it.
// Only valid if !done().
func (c *cursor) peek() byte { return c.input[c.pos] }

// next consumes and returns the byte at the current position.
// Only valid if !done().
func (c *cursor) next() byte {
	b := c.input[c.pos]
	c.pos++
	return b
}
