// Package scanner implements the YAML lexical scanner.
//
// The scanner is a deterministic state machine driven one transition at a time
// against a cursor. Each transition appends zero or more tokens to a FIFO queue;
// the Iterator drains that queue lazily, stepping the machine only when the
// consumer asks for the next token.
//
// Tokens carry byte spans into the original input rather than copies, so a
// consumer can slice scalar content out of its own buffer.
package scanner

import (
	"fmt"

	"github.com/shapestone/shape-yaml-scanner/internal/cursor"
)

// Mark is a position in the scanned input.
type Mark = cursor.Mark

// Kind identifies the lexical unit a Token represents.
type Kind uint8

// Token kinds.
const (
	StreamStart   Kind = iota + 1 // beginning of the stream, always first
	StreamEnd                     // end of the stream, always last
	Directive                     // %YAML, %TAG or a reserved directive
	DocumentStart                 // ---
	DocumentEnd                   // ...
	Scalar                        // scalar content span
	Error                         // terminal diagnostic
)

var kindNames = [...]string{
	StreamStart:   "StreamStart",
	StreamEnd:     "StreamEnd",
	Directive:     "Directive",
	DocumentStart: "DocumentStart",
	DocumentEnd:   "DocumentEnd",
	Scalar:        "Scalar",
	Error:         "Error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// DirectiveKind classifies a directive by its name.
type DirectiveKind uint8

const (
	NoDirective       DirectiveKind = iota
	VersionDirective                // %YAML
	TagDirective                    // %TAG
	ReservedDirective               // any other name
)

func (k DirectiveKind) String() string {
	switch k {
	case VersionDirective:
		return "YAML"
	case TagDirective:
		return "TAG"
	case ReservedDirective:
		return "Reserved"
	}
	return "None"
}

// ScalarStyle records how a scalar was written.
type ScalarStyle uint8

const (
	NoStyle ScalarStyle = iota
	Plain
	SingleQuoted
	DoubleQuoted
)

func (s ScalarStyle) String() string {
	switch s {
	case Plain:
		return "Plain"
	case SingleQuoted:
		return "SingleQuoted"
	case DoubleQuoted:
		return "DoubleQuoted"
	}
	return "None"
}

// ErrorKind classifies a lexical violation.
type ErrorKind uint8

const (
	NoError ErrorKind = iota
	// MissingDocumentMarker: a directive was not followed by "---".
	MissingDocumentMarker
	// InvalidDirective: empty directive name or malformed %YAML/%TAG parameters.
	InvalidDirective
	// UnterminatedQuotedScalar: end of input inside a quoted scalar.
	UnterminatedQuotedScalar
	// DisallowedCharacter: a reserved indicator where a plain scalar would start.
	DisallowedCharacter
	// UnsupportedSyntax: anchors, aliases, tags and block scalars are not scanned.
	UnsupportedSyntax
	// LineTooLong: a line exceeded the configured maximum length.
	LineTooLong
)

var errorKindNames = [...]string{
	NoError:                  "NoError",
	MissingDocumentMarker:    "MissingDocumentMarker",
	InvalidDirective:         "InvalidDirective",
	UnterminatedQuotedScalar: "UnterminatedQuotedScalar",
	DisallowedCharacter:      "DisallowedCharacter",
	UnsupportedSyntax:        "UnsupportedSyntax",
	LineTooLong:              "LineTooLong",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Token is a single lexical unit.
//
// Start and End delimit the half-open byte span [Start, End) of the token's
// content in the input; they are zero for tokens without content. Mark is the
// position where the token begins (for Error, where the violation was found).
type Token struct {
	Kind      Kind
	Directive DirectiveKind
	Style     ScalarStyle
	Err       ErrorKind
	Start     int
	End       int
	Mark      Mark
}

// HasSpan reports whether the token refers to input bytes.
func (t Token) HasSpan() bool {
	switch t.Kind {
	case Directive, DocumentStart, DocumentEnd, Scalar:
		return true
	}
	return false
}

// Bytes returns the token's span in input. The result aliases input.
func (t Token) Bytes(input []byte) []byte {
	if !t.HasSpan() {
		return nil
	}
	return input[t.Start:t.End]
}

// Text returns the token's span in input as a string.
func (t Token) Text(input []byte) string {
	return string(t.Bytes(input))
}

// DirectiveName returns the name part of a directive body ("YAML" in "%YAML 1.2").
func (t Token) DirectiveName(input []byte) string {
	if t.Kind != Directive {
		return ""
	}
	name, _ := splitDirective(t.Bytes(input))
	return string(name)
}

// DirectiveParams returns the whitespace separated parameters of a directive.
func (t Token) DirectiveParams(input []byte) []string {
	if t.Kind != Directive {
		return nil
	}
	_, params := splitDirective(t.Bytes(input))
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = string(p)
	}
	return out
}

func (t Token) String() string {
	switch t.Kind {
	case Directive:
		return fmt.Sprintf("%s(%s)[%d:%d]", t.Kind, t.Directive, t.Start, t.End)
	case Scalar:
		return fmt.Sprintf("%s(%s)[%d:%d]", t.Kind, t.Style, t.Start, t.End)
	case DocumentStart, DocumentEnd:
		return fmt.Sprintf("%s[%d:%d]", t.Kind, t.Start, t.End)
	case Error:
		return fmt.Sprintf("%s(%s)@%d:%d", t.Kind, t.Err, t.Mark.Line, t.Mark.Column)
	}
	return t.Kind.String()
}
