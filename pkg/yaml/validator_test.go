package yaml

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestValidate_ValidYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "simple key-value",
			yaml: `host: localhost
port: 8080`,
		},
		{
			name: "with list",
			yaml: `items:
- apple
- banana
- cherry`,
		},
		{
			name: "with comments",
			yaml: `# Configuration file
host: localhost  # server host
port: 8080       # server port`,
		},
		{
			name: "empty",
			yaml: ``,
		},
		{
			name: "whitespace only",
			yaml: `

`,
		},
		{
			name: "null values",
			yaml: `value1: null
value2: ~`,
		},
		{
			name: "quoted strings",
			yaml: `name: "John Doe"
city: 'New York'`,
		},
		{
			name: "document separator",
			yaml: `---
key: value
...`,
		},
		{
			name: "directives",
			yaml: `%YAML 1.2
%TAG !e! tag:example.com,2000:
---
key: value`,
		},
		{
			name: "flow collections",
			yaml: `{a: [1, 2], b: c}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.yaml); err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		kind    ErrorKind
		line    int
		column  int
		errText string
	}{
		{
			name:    "directive without document marker",
			yaml:    "%YAML 1.2\nkey: value\n",
			kind:    MissingDocumentMarker,
			line:    2,
			column:  1,
			errText: "document start marker",
		},
		{
			name:    "malformed version",
			yaml:    "%YAML x\n---\n",
			kind:    InvalidDirective,
			line:    1,
			column:  1,
			errText: "malformed directive",
		},
		{
			name:    "unclosed double quote",
			yaml:    "name: \"John",
			kind:    UnterminatedQuotedScalar,
			line:    1,
			column:  7,
			errText: "unterminated quoted scalar",
		},
		{
			name:    "alias",
			yaml:    "base: *ref",
			kind:    UnsupportedSyntax,
			line:    1,
			column:  7,
			errText: "not supported",
		},
		{
			name:    "reserved indicator",
			yaml:    "key: @value",
			kind:    DisallowedCharacter,
			line:    1,
			column:  6,
			errText: "reserved indicator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.yaml)
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}

			var scanErr *ScanError
			if !errors.As(err, &scanErr) {
				t.Fatalf("Validate() error %T does not wrap *ScanError", err)
			}
			if scanErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", scanErr.Kind, tt.kind)
			}
			if scanErr.Mark.Line != tt.line || scanErr.Mark.Column != tt.column {
				t.Errorf("Mark = %d:%d, want %d:%d", scanErr.Mark.Line, scanErr.Mark.Column, tt.line, tt.column)
			}
			if int(scanErr.Position.Line) != tt.line {
				t.Errorf("Position.Line = %v, want %d", scanErr.Position.Line, tt.line)
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.errText)
			}
		})
	}
}

func TestValidate_LineLimit(t *testing.T) {
	long := "key: " + strings.Repeat("x", 64)

	if err := Validate(long); err != nil {
		t.Errorf("Validate() with default limit error = %v", err)
	}

	err := Validate(long, WithMaxLineLength(32))
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Kind != LineTooLong {
		t.Errorf("Validate() with limit 32 = %v, want LineTooLong", err)
	}
}
