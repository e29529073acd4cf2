package scanner

import (
	"github.com/shapestone/shape-yaml-scanner/internal/cursor"
)

// scanPlainScalar delimits a single-line plain scalar.
//
// The scalar ends at a line break, end of input, ": " (or ':' before a break),
// a '#' preceded by a blank, or a flow indicator. Trailing blanks are not part
// of the span.
func (s *Scanner) scanPlainScalar(c *cursor.Cursor) {
	mark := c.Mark()
	end := mark.Offset
	prevBlank := false

	for {
		b, ok := c.Peek()
		if !ok || cursor.IsBreak(b) {
			break
		}
		if b == ':' && blankOrEndAt(c, 1) {
			break
		}
		if b == '#' && prevBlank {
			break
		}
		if isFlowIndicator(b) {
			break
		}
		if s.lineExceeds(c.Mark().Column) {
			s.emitError(LineTooLong, c.Mark())
			return
		}

		c.Advance()
		prevBlank = cursor.IsBlank(b)
		if !prevBlank {
			end = c.Position()
		}
	}

	s.emit(Token{Kind: Scalar, Style: Plain, Start: mark.Offset, End: end, Mark: mark})
}

// scanQuotedScalar delimits a single or double quoted scalar, which may span lines.
// The span excludes the quotes; escapes are left for the consumer to interpret.
//
// Single quoted: '' is an escaped quote.
// Double quoted: a backslash escapes the following byte.
func (s *Scanner) scanQuotedScalar(c *cursor.Cursor, quote byte) {
	mark := c.Mark()
	style := SingleQuoted
	if quote == '"' {
		style = DoubleQuoted
	}

	c.Advance() // opening quote
	start := c.Position()

	for {
		b, ok := c.Peek()
		if !ok {
			s.emitError(UnterminatedQuotedScalar, mark)
			return
		}
		if s.lineExceeds(c.Mark().Column) {
			s.emitError(LineTooLong, c.Mark())
			return
		}

		switch {
		case quote == '\'' && b == '\'':
			if next, ok := c.PeekAt(1); ok && next == '\'' {
				c.AdvanceN(2)
				continue
			}
			s.closeQuoted(c, style, start, mark)
			return
		case quote == '"' && b == '\\':
			c.AdvanceN(2)
			continue
		case quote == '"' && b == '"':
			s.closeQuoted(c, style, start, mark)
			return
		}
		c.Advance()
	}
}

func (s *Scanner) closeQuoted(c *cursor.Cursor, style ScalarStyle, start int, mark Mark) {
	end := c.Position()
	c.Advance() // closing quote
	s.emit(Token{Kind: Scalar, Style: style, Start: start, End: end, Mark: mark})
}
