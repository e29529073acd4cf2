package scanner

import (
	"iter"

	"github.com/shapestone/shape-yaml-scanner/internal/cursor"
)

// Iterator pulls tokens out of a Scanner lazily.
//
// Nothing is scanned until Next is called. Each call drains the queue first and
// only steps the state machine when the queue is empty. The sequence is single
// pass; scanning the input again requires a new Iterator.
type Iterator struct {
	cursor  *cursor.Cursor
	scanner *Scanner
}

// NewIterator creates an iterator over input. The input is not copied and must
// not change while the iterator is in use.
func NewIterator(input []byte, opts ...Option) *Iterator {
	return &Iterator{
		cursor:  cursor.New(input),
		scanner: New(opts...),
	}
}

// Next returns the next token, or false once StreamEnd has been consumed.
func (it *Iterator) Next() (Token, bool) {
	for {
		if tok, ok := it.scanner.Pop(); ok {
			return tok, true
		}
		if it.scanner.Done() {
			return Token{}, false
		}
		it.scanner.Step(it.cursor)
	}
}

// All returns the remaining tokens as a sequence.
func (it *Iterator) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := it.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iterator) Collect() []Token {
	var tokens []Token
	for tok := range it.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// State returns the scanner's current state.
func (it *Iterator) State() State {
	return it.scanner.State()
}

// Scan tokenizes input completely.
func Scan(input []byte, opts ...Option) []Token {
	return NewIterator(input, opts...).Collect()
}
