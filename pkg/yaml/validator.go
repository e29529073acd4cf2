package yaml

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shapestone/shape-core/pkg/ast"
)

// ScanError describes the first lexical error in a YAML stream.
type ScanError struct {
	Kind     ErrorKind
	Mark     Mark
	Position ast.Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("invalid YAML: %s at line %d, column %d", describe(e.Kind), e.Mark.Line, e.Mark.Column)
}

func describe(kind ErrorKind) string {
	switch kind {
	case MissingDocumentMarker:
		return "directive not followed by document start marker \"---\""
	case InvalidDirective:
		return "malformed directive"
	case UnterminatedQuotedScalar:
		return "unterminated quoted scalar"
	case DisallowedCharacter:
		return "reserved indicator cannot start a plain scalar"
	case UnsupportedSyntax:
		return "anchors, aliases, tags and block scalars are not supported"
	case LineTooLong:
		return "line exceeds maximum length"
	}
	return kind.String()
}

// Validate scans content and reports the first lexical error.
// Returns nil if the scan finishes without an Error token.
//
// The returned error wraps a *ScanError:
//
//	err := yaml.Validate("%YAML 1.2\nkey: value\n")
//	var scanErr *yaml.ScanError
//	if errors.As(err, &scanErr) {
//	    fmt.Println(scanErr.Kind, scanErr.Mark.Line) // MissingDocumentMarker 2
//	}
//
// Validation is lexical only. Structure (indentation, mapping shape) is a
// concern of the consumer building documents from the tokens.
func Validate(content string, opts ...Option) error {
	toks := ScanString(content, opts...)
	for tok := range toks.All() {
		if tok.Kind == Error {
			return errors.WithStack(&ScanError{
				Kind:     tok.Err,
				Mark:     tok.Mark,
				Position: tok.Mark.Position(),
			})
		}
	}
	return nil
}
