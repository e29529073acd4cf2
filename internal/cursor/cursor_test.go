package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_PeekAndAdvance(t *testing.T) {
	c := New([]byte("ab"))

	b, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.True(t, c.PeekIs('a'))
	assert.False(t, c.PeekIs('b'))

	c.Advance()
	b, ok = c.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)
	assert.Equal(t, 1, c.Position())

	c.Advance()
	assert.True(t, c.AtEnd())
	_, ok = c.Peek()
	assert.False(t, ok)

	// Advancing past the end is a no-op.
	c.Advance()
	assert.Equal(t, 2, c.Position())
}

func TestCursor_PeekAt(t *testing.T) {
	c := New([]byte("---x"))

	for i, want := range []byte("---x") {
		b, ok := c.PeekAt(i)
		require.True(t, ok)
		assert.Equal(t, want, b)
	}
	_, ok := c.PeekAt(4)
	assert.False(t, ok)
	_, ok = c.PeekAt(-1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Position(), "lookahead must not consume")
}

func TestCursor_HasPrefix(t *testing.T) {
	c := New([]byte("--- doc"))
	assert.True(t, c.HasPrefix("---"))
	assert.True(t, c.HasPrefix("--- doc"))
	assert.False(t, c.HasPrefix("--- doc!"))
	assert.False(t, c.HasPrefix("..."))
}

func TestCursor_SkipWhile(t *testing.T) {
	c := New([]byte(" \t  value"))
	assert.Equal(t, 4, c.SkipSpaceTab())
	assert.True(t, c.PeekIs('v'))
	assert.Equal(t, 0, c.SkipSpaceTab())

	n := c.SkipWhile(func(b byte) bool { return b >= 'a' && b <= 'z' })
	assert.Equal(t, 5, n)
	assert.True(t, c.AtEnd())
}

func TestCursor_ReadLine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  string
		wantAfter int
	}{
		{name: "lf", input: "# comment\nnext", wantLine: "# comment", wantAfter: 10},
		{name: "crlf", input: "abc\r\nnext", wantLine: "abc", wantAfter: 5},
		{name: "lone cr", input: "abc\rnext", wantLine: "abc", wantAfter: 4},
		{name: "no terminator", input: "last line", wantLine: "last line", wantAfter: 9},
		{name: "empty line", input: "\nx", wantLine: "", wantAfter: 1},
		{name: "empty input", input: "", wantLine: "", wantAfter: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]byte(tt.input))
			start, end := c.ReadLine()
			assert.Equal(t, tt.wantLine, string(c.Slice(start, end)))
			assert.Equal(t, tt.wantAfter, c.Position())
		})
	}
}

func TestCursor_MarkTracksLinesAndColumns(t *testing.T) {
	c := New([]byte("ab\ncd\r\nef\rg"))

	assert.Equal(t, Mark{Offset: 0, Line: 1, Column: 1}, c.Mark())
	c.AdvanceN(2)
	assert.Equal(t, Mark{Offset: 2, Line: 1, Column: 3}, c.Mark())

	require.True(t, c.SkipLineBreak())
	assert.Equal(t, Mark{Offset: 3, Line: 2, Column: 1}, c.Mark())
	assert.True(t, c.AtLineStart())

	c.ReadLine()
	assert.Equal(t, Mark{Offset: 7, Line: 3, Column: 1}, c.Mark())

	c.ReadLine()
	assert.Equal(t, Mark{Offset: 10, Line: 4, Column: 1}, c.Mark())

	c.Advance()
	assert.Equal(t, Mark{Offset: 11, Line: 4, Column: 2}, c.Mark())
	assert.False(t, c.AtLineStart())
}

func TestCursor_SkipLineBreak(t *testing.T) {
	c := New([]byte("x\r\n"))
	assert.False(t, c.SkipLineBreak())
	c.Advance()
	assert.True(t, c.SkipLineBreak())
	assert.True(t, c.AtEnd())
	assert.False(t, c.SkipLineBreak())
}

func TestMark_Position(t *testing.T) {
	pos := Mark{Offset: 12, Line: 3, Column: 4}.Position()
	assert.EqualValues(t, 3, pos.Line)
}
