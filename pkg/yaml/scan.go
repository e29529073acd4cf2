// Package yaml provides lazy lexical scanning of YAML streams.
//
// The scanner turns YAML source into a sequence of structural tokens: stream
// boundaries, directives, document markers, scalar spans and error markers. It
// does not build a document tree, resolve tags or interpret scalar content;
// "null" is a three byte span, not a nil value.
//
// Tokens carry half-open byte spans into the caller's buffer. Nothing is copied,
// so the buffer must stay unchanged for as long as tokens are in use.
//
// # Thread Safety
//
// A Tokens value is single pass and must be consumed by one goroutine. Separate
// calls to Scan share no state and may run concurrently over the same buffer.
//
// # Scanning APIs
//
//   - Scan([]byte) - scans an in-memory buffer lazily
//   - ScanString(string) - scans a string lazily
//   - ScanReader(io.Reader) - reads everything, then scans lazily
//   - Render(string) - conformance rendering of a complete scan
//   - Validate(string) - reports the first lexical error
//
// # Example usage with Scan:
//
//	data := []byte("%YAML 1.2\n---\nname: Alice\n")
//	toks := yaml.Scan(data)
//	for tok := range toks.All() {
//	    if tok.Kind == yaml.Scalar {
//	        fmt.Println(toks.Text(tok)) // "name", then "Alice"
//	    }
//	}
package yaml

import (
	"io"
	"iter"

	"github.com/pkg/errors"

	"github.com/shapestone/shape-yaml-scanner/internal/scanner"
)

// Token is a single lexical unit with a byte span into the scanned input.
type Token = scanner.Token

// Kind identifies a token.
type Kind = scanner.Kind

// Mark is a position in the scanned input.
type Mark = scanner.Mark

// ErrorKind classifies a lexical error.
type ErrorKind = scanner.ErrorKind

// Option configures scanning.
type Option = scanner.Option

// Token kinds.
const (
	StreamStart   = scanner.StreamStart
	StreamEnd     = scanner.StreamEnd
	Directive     = scanner.Directive
	DocumentStart = scanner.DocumentStart
	DocumentEnd   = scanner.DocumentEnd
	Scalar        = scanner.Scalar
	Error         = scanner.Error
)

// Error kinds.
const (
	MissingDocumentMarker    = scanner.MissingDocumentMarker
	InvalidDirective         = scanner.InvalidDirective
	UnterminatedQuotedScalar = scanner.UnterminatedQuotedScalar
	DisallowedCharacter      = scanner.DisallowedCharacter
	UnsupportedSyntax        = scanner.UnsupportedSyntax
	LineTooLong              = scanner.LineTooLong
)

var (
	// WithLogger traces scanner state transitions at debug level.
	WithLogger = scanner.WithLogger
	// WithMaxLineLength bounds the length of a single line; <= 0 disables the check.
	WithMaxLineLength = scanner.WithMaxLineLength
)

// Tokens is a lazy, single-pass token sequence over one input.
type Tokens struct {
	input []byte
	it    *scanner.Iterator
}

// Scan returns a lazy token sequence over data.
// No scanning happens until the first token is requested.
//
// Example:
//
//	toks := yaml.Scan([]byte("null  # comment\n"))
//	for {
//	    tok, ok := toks.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(tok.Render(toks.Input())) // +STR, +VAL null, -STR
//	}
func Scan(data []byte, opts ...Option) *Tokens {
	return &Tokens{
		input: data,
		it:    scanner.NewIterator(data, opts...),
	}
}

// ScanString returns a lazy token sequence over s.
func ScanString(s string, opts ...Option) *Tokens {
	return Scan([]byte(s), opts...)
}

// ScanReader reads r to the end and returns a lazy token sequence over the
// bytes read. Spans refer to Tokens.Input().
//
// Example:
//
//	file, err := os.Open("config.yaml")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	toks, err := yaml.ScanReader(file)
//	if err != nil {
//	    return err
//	}
func ScanReader(r io.Reader, opts ...Option) (*Tokens, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading yaml input")
	}
	return Scan(data, opts...), nil
}

// Next returns the next token, or false after StreamEnd.
func (t *Tokens) Next() (Token, bool) {
	return t.it.Next()
}

// All returns the remaining tokens as a range-able sequence.
func (t *Tokens) All() iter.Seq[Token] {
	return t.it.All()
}

// Collect drains the remaining tokens into a slice.
func (t *Tokens) Collect() []Token {
	return t.it.Collect()
}

// Input returns the buffer that token spans refer to.
func (t *Tokens) Input() []byte {
	return t.input
}

// Text returns the content of tok's span.
func (t *Tokens) Text(tok Token) string {
	return tok.Text(t.input)
}

// Render scans input completely and returns one line per token:
//
//	+STR
//	#YAML 1.3
//	ERR
//	-STR
//
// The first line is always +STR and the last -STR.
func Render(input string, opts ...Option) string {
	data := []byte(input)
	return scanner.Render(data, scanner.Scan(data, opts...))
}
