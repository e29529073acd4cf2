package scanner

import (
	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/shapestone/shape-yaml-scanner/internal/cursor"
)

// Scanner is the YAML scanning state machine.
//
// A Scanner holds the current state and the queue of tokens produced but not
// yet consumed. It does not own its input: every Step reads from the cursor it
// is given. One Step processes one state's worth of grammar and always either
// queues at least one token or changes state.
type Scanner struct {
	state  State
	tokens *arrayqueue.Queue[Token]
	logger log.Logger
	cfg    config
}

// New creates a scanner in the StreamStart state.
func New(opts ...Option) *Scanner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scanner{
		state:  StateStreamStart,
		tokens: arrayqueue.New[Token](),
		logger: cfg.logger,
		cfg:    cfg,
	}
}

// State returns the current state.
func (s *Scanner) State() State {
	return s.state
}

// Done reports whether the machine has reached its terminal state.
func (s *Scanner) Done() bool {
	return s.state.Terminal()
}

// Pending returns the number of queued tokens.
func (s *Scanner) Pending() int {
	return s.tokens.Size()
}

// Pop removes and returns the oldest queued token.
func (s *Scanner) Pop() (Token, bool) {
	return s.tokens.Dequeue()
}

// Step performs a single state transition, reading from c.
func (s *Scanner) Step(c *cursor.Cursor) {
	from := s.state

	switch s.state {
	case StateStreamStart:
		s.scanStreamStart(c)
	case StateDirectiveOrDocument:
		s.scanDirectiveOrDocument(c)
	case StateDocumentContent:
		s.scanDocumentContent(c)
	case StateError:
		s.emit(Token{Kind: StreamEnd, Mark: c.Mark()})
		s.state = StateStreamEnd
	case StateStreamEnd:
		return
	}

	if s.state != from {
		level.Debug(s.logger).Log("msg", "state transition", "from", from, "to", s.state, "offset", c.Position())
	}
}

func (s *Scanner) emit(tok Token) {
	s.tokens.Enqueue(tok)
}

// emitError queues an Error token and moves to the Error state.
// Nothing but StreamEnd follows it.
func (s *Scanner) emitError(kind ErrorKind, mark Mark) {
	level.Debug(s.logger).Log("msg", "scan error", "kind", kind, "line", mark.Line, "column", mark.Column, "offset", mark.Offset)
	s.emit(Token{Kind: Error, Err: kind, Mark: mark})
	s.state = StateError
}

// scanStreamStart skips leading blanks and a leading comment line, then opens the stream.
func (s *Scanner) scanStreamStart(c *cursor.Cursor) {
	s.emit(Token{Kind: StreamStart, Mark: c.Mark()})
	s.state = StateDirectiveOrDocument

	c.SkipSpaceTab()
	if c.PeekIs('#') {
		s.skipComment(c)
	}
}

// scanDirectiveOrDocument handles the directive section in front of a document.
// A directive must be followed by another directive or by "---".
func (s *Scanner) scanDirectiveOrDocument(c *cursor.Cursor) {
	if !s.skipBlankLines(c) {
		return
	}
	if !atDirective(c) {
		s.state = StateDocumentContent
		return
	}

	if !s.scanDirective(c) {
		return
	}
	if !s.skipBlankLines(c) {
		return
	}

	switch {
	case atDirective(c):
		// Next step scans the following directive.
	case c.AtLineStart() && atDocumentIndicator(c, "---"):
		s.state = StateDocumentContent
	default:
		s.emitError(MissingDocumentMarker, c.Mark())
	}
}

// scanDocumentContent scans until it has queued one token or the input is exhausted.
// Structural indicators and comments are boundaries only and produce no tokens.
func (s *Scanner) scanDocumentContent(c *cursor.Cursor) {
	for {
		c.SkipWhile(isBlankOrBreak)

		b, ok := c.Peek()
		if !ok {
			s.emit(Token{Kind: StreamEnd, Mark: c.Mark()})
			s.state = StateStreamEnd
			return
		}

		if c.AtLineStart() {
			switch {
			case atDocumentIndicator(c, "---"):
				s.emitMarker(c, DocumentStart)
				return
			case atDocumentIndicator(c, "..."):
				s.emitMarker(c, DocumentEnd)
				s.state = StateDirectiveOrDocument
				return
			}
		}
		if s.lineExceeds(c.Mark().Column) {
			s.emitError(LineTooLong, c.Mark())
			return
		}

		switch {
		case b == '#':
			if !s.skipComment(c) {
				return
			}
		case isFlowIndicator(b):
			c.Advance()
		case (b == ':' || b == '-' || b == '?') && blankOrEndAt(c, 1):
			c.Advance()
		case b == '\'' || b == '"':
			s.scanQuotedScalar(c, b)
			return
		case isUnsupportedIndicator(b):
			s.emitError(UnsupportedSyntax, c.Mark())
			return
		case isReservedIndicator(b):
			s.emitError(DisallowedCharacter, c.Mark())
			return
		default:
			s.scanPlainScalar(c)
			return
		}
	}
}

// emitMarker consumes a three-byte document marker and queues its token.
func (s *Scanner) emitMarker(c *cursor.Cursor, kind Kind) {
	mark := c.Mark()
	c.AdvanceN(3)
	s.emit(Token{Kind: kind, Start: mark.Offset, End: c.Position(), Mark: mark})
}

// skipBlankLines consumes lines holding only blanks or a comment and stops at the
// first byte of the next content line, or at end of input. The cursor is left
// at the start of that line so column-sensitive checks still apply.
func (s *Scanner) skipBlankLines(c *cursor.Cursor) bool {
	for {
		n := 0
		for {
			b, ok := c.PeekAt(n)
			if !ok || !cursor.IsBlank(b) {
				break
			}
			n++
		}
		if s.lineExceeds(c.Mark().Column - 1 + n) {
			c.AdvanceN(n)
			s.emitError(LineTooLong, c.Mark())
			return false
		}

		b, ok := c.PeekAt(n)
		switch {
		case !ok:
			c.AdvanceN(n)
			return true
		case cursor.IsBreak(b):
			c.AdvanceN(n)
			c.SkipLineBreak()
		case b == '#':
			c.AdvanceN(n)
			if !s.skipComment(c) {
				return false
			}
		default:
			return true
		}
	}
}

// skipComment discards a comment through the end of its line.
func (s *Scanner) skipComment(c *cursor.Cursor) bool {
	mark := c.Mark()
	start, end := c.ReadLine()
	if s.lineExceeds(mark.Column - 1 + end - start) {
		s.emitError(LineTooLong, mark)
		return false
	}
	return true
}

// lineExceeds reports whether a line of n bytes is over the configured limit.
func (s *Scanner) lineExceeds(n int) bool {
	return s.cfg.maxLineLength > 0 && n > s.cfg.maxLineLength
}

func atDirective(c *cursor.Cursor) bool {
	return c.AtLineStart() && c.PeekIs('%')
}

// atDocumentIndicator reports whether marker starts at the cursor and is
// followed by a blank, a break or end of input.
func atDocumentIndicator(c *cursor.Cursor, marker string) bool {
	return c.HasPrefix(marker) && blankOrEndAt(c, len(marker))
}

// blankOrEndAt reports whether the byte n ahead is a blank, a break or past the end.
func blankOrEndAt(c *cursor.Cursor, n int) bool {
	b, ok := c.PeekAt(n)
	return !ok || isBlankOrBreak(b)
}

func isBlankOrBreak(b byte) bool {
	return cursor.IsBlank(b) || cursor.IsBreak(b)
}

func isFlowIndicator(b byte) bool {
	switch b {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// isUnsupportedIndicator matches node properties and block scalar headers.
func isUnsupportedIndicator(b byte) bool {
	switch b {
	case '&', '*', '!', '|', '>':
		return true
	}
	return false
}

// isReservedIndicator matches indicators that cannot start a plain scalar.
func isReservedIndicator(b byte) bool {
	return b == '@' || b == '`' || b == '%'
}
