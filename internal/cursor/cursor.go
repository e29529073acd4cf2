// Package cursor provides a forward-only byte reader over an in-memory YAML buffer.
//
// The cursor never copies the input. It tracks the read offset together with the
// 1-based line and column of that offset, so the scanner can report precise
// positions and hand out byte spans instead of materialized strings.
//
// Line terminators are "\n", "\r\n" and a lone "\r".
package cursor

import (
	"bytes"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Mark is a position in the input.
// Offset is 0-based in bytes; Line and Column are 1-based (Column counts bytes).
type Mark struct {
	Offset int
	Line   int
	Column int
}

// Position converts the mark to a shape-core AST position.
func (m Mark) Position() ast.Position {
	return ast.NewPosition(m.Offset, m.Line, m.Column)
}

// Cursor reads an immutable byte buffer from front to back.
type Cursor struct {
	data   []byte
	pos    int
	length int
	line   int
	column int
}

// New creates a cursor positioned at the first byte of data.
// The caller must not modify data while the cursor is in use.
func New(data []byte) *Cursor {
	return &Cursor{
		data:   data,
		pos:    0,
		length: len(data),
		line:   1,
		column: 1,
	}
}

// Peek returns the byte at the current offset without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= c.length {
		return 0, false
	}
	return c.data[c.pos], true
}

// PeekAt returns the byte n positions ahead of the current offset.
// PeekAt(0) is equivalent to Peek.
func (c *Cursor) PeekAt(n int) (byte, bool) {
	i := c.pos + n
	if n < 0 || i >= c.length {
		return 0, false
	}
	return c.data[i], true
}

// PeekIs reports whether the current byte is b.
func (c *Cursor) PeekIs(b byte) bool {
	return c.pos < c.length && c.data[c.pos] == b
}

// HasPrefix reports whether the unread input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	if c.length-c.pos < len(s) {
		return false
	}
	return string(c.data[c.pos:c.pos+len(s)]) == s
}

// Advance consumes one byte. It is a no-op at end of input.
func (c *Cursor) Advance() {
	if c.pos >= c.length {
		return
	}
	switch c.data[c.pos] {
	case '\n':
		c.line++
		c.column = 1
	case '\r':
		// "\r\n" counts as a single break; the '\n' moves the line.
		if c.pos+1 < c.length && c.data[c.pos+1] == '\n' {
			c.column++
		} else {
			c.line++
			c.column = 1
		}
	default:
		c.column++
	}
	c.pos++
}

// AdvanceN consumes up to n bytes.
func (c *Cursor) AdvanceN(n int) {
	for i := 0; i < n && c.pos < c.length; i++ {
		c.Advance()
	}
}

// SkipWhile consumes bytes as long as pred holds and returns how many were skipped.
func (c *Cursor) SkipWhile(pred func(byte) bool) int {
	start := c.pos
	for c.pos < c.length && pred(c.data[c.pos]) {
		c.Advance()
	}
	return c.pos - start
}

// SkipSpaceTab consumes spaces and tabs.
func (c *Cursor) SkipSpaceTab() int {
	return c.SkipWhile(IsBlank)
}

// SkipLineBreak consumes a single line terminator if one is at the cursor.
func (c *Cursor) SkipLineBreak() bool {
	b, ok := c.Peek()
	if !ok {
		return false
	}
	switch b {
	case '\n':
		c.Advance()
		return true
	case '\r':
		c.Advance()
		if c.PeekIs('\n') {
			c.Advance()
		}
		return true
	}
	return false
}

// ReadLine consumes the rest of the current line including its terminator and
// returns the span [start, end) of the consumed content without the terminator.
// At end of input without a terminator it consumes to the end.
func (c *Cursor) ReadLine() (start, end int) {
	start = c.pos
	rest := c.data[c.pos:]
	n := bytes.IndexAny(rest, "\r\n")
	if n < 0 {
		n = len(rest)
	}
	// Content bytes never contain a break, so the column moves linearly.
	c.pos += n
	c.column += n
	end = c.pos
	c.SkipLineBreak()
	return start, end
}

// Position returns the current byte offset.
func (c *Cursor) Position() int {
	return c.pos
}

// Mark returns the current offset with its line and column.
func (c *Cursor) Mark() Mark {
	return Mark{Offset: c.pos, Line: c.line, Column: c.column}
}

// AtEnd reports whether all input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= c.length
}

// AtLineStart reports whether the cursor sits in the first column of a line.
func (c *Cursor) AtLineStart() bool {
	return c.column == 1
}

// Slice returns data[start:end] without copying.
func (c *Cursor) Slice(start, end int) []byte {
	return c.data[start:end]
}

// Len returns the total input length.
func (c *Cursor) Len() int {
	return c.length
}

// IsBlank reports whether b is a space or a tab.
func IsBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsBreak reports whether b starts a line terminator.
func IsBreak(b byte) bool {
	return b == '\n' || b == '\r'
}
