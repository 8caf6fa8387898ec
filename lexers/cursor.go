package lexers

import "unicode/utf8"

// Pos is 0-based. Offset counts runes, not bytes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

type Cursor struct {
	input      string
	byteOffset int
	pos        Pos
}

func NewCursor(input string) *Cursor {
	return &Cursor{
		input: input,
	}
}

func (c *Cursor) Peek() (rune, bool) {
	if c.byteOffset >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.byteOffset:])
	return r, true
}

func (c *Cursor) Advance() (rune, bool) {
	if c.byteOffset >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.byteOffset:])
	c.byteOffset += size
	c.pos.Offset++
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 0
	} else {
		c.pos.Column++
	}
	return r, true
}

// ConsumeWhile consumes runes as long as pred holds for the next one.
// The first rune failing pred is left in place.
// The returned string shares memory with the input.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.byteOffset
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Advance()
	}
	return c.input[start:c.byteOffset]
}

func (c *Cursor) AtEnd() bool {
	return c.byteOffset >= len(c.input)
}

func (c *Cursor) Pos() Pos {
	return c.pos
}
