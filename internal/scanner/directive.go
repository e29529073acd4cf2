package scanner

import (
	"bytes"

	"github.com/shapestone/shape-yaml-scanner/internal/cursor"
)

// scanDirective consumes one directive line starting at '%'.
//
// Grammar:
//
//	DirectiveLine = "%" DirectiveName { Blank DirectiveParameter } [ Comment ] Break ;
//
// Recognized directives:
//
//	%YAML 1.2                  - version directive, exactly one major.minor parameter
//	%TAG !e! tag:example.com:  - tag directive, a handle and a prefix
//
// Any other name is a reserved directive and is passed through unchecked.
// The emitted span covers the body after '%' without trailing blanks or comment.
func (s *Scanner) scanDirective(c *cursor.Cursor) bool {
	mark := c.Mark()
	c.Advance() // '%'

	start, lineEnd := c.ReadLine()
	if s.lineExceeds(mark.Column + lineEnd - start) {
		s.emitError(LineTooLong, mark)
		return false
	}

	body := trimDirectiveBody(c.Slice(start, lineEnd))
	name, params := splitDirective(body)

	kind, ok := classifyDirective(name, params)
	if !ok {
		s.emitError(InvalidDirective, mark)
		return false
	}

	s.emit(Token{
		Kind:      Directive,
		Directive: kind,
		Start:     start,
		End:       start + len(body),
		Mark:      mark,
	})
	return true
}

// trimDirectiveBody drops a trailing comment and trailing blanks.
func trimDirectiveBody(line []byte) []byte {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && cursor.IsBlank(line[i-1]) {
			line = line[:i]
			break
		}
	}
	return bytes.TrimRight(line, " \t")
}

// splitDirective splits a directive body into its name and parameters.
// A body starting with a blank has no name.
func splitDirective(body []byte) (name []byte, params [][]byte) {
	fields := bytes.FieldsFunc(body, func(r rune) bool { return r == ' ' || r == '\t' })
	if len(body) == 0 || cursor.IsBlank(body[0]) {
		return nil, fields
	}
	return fields[0], fields[1:]
}

func classifyDirective(name []byte, params [][]byte) (DirectiveKind, bool) {
	switch {
	case len(name) == 0:
		return NoDirective, false
	case string(name) == "YAML":
		if len(params) != 1 || !isVersion(params[0]) {
			return VersionDirective, false
		}
		return VersionDirective, true
	case string(name) == "TAG":
		if len(params) != 2 || !isTagHandle(params[0]) {
			return TagDirective, false
		}
		return TagDirective, true
	default:
		return ReservedDirective, true
	}
}

// isVersion matches major.minor with decimal digits on both sides.
func isVersion(v []byte) bool {
	dot := bytes.IndexByte(v, '.')
	if dot <= 0 || dot == len(v)-1 {
		return false
	}
	return allDigits(v[:dot]) && allDigits(v[dot+1:])
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(b) > 0
}

// isTagHandle matches "!", "!!" and "!name!".
func isTagHandle(h []byte) bool {
	return len(h) > 0 && h[0] == '!' && h[len(h)-1] == '!'
}
