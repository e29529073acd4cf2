package scanner

import "strings"

// Render returns the one-line textual form of a token used by conformance tests:
//
//	StreamStart  +STR
//	StreamEnd    -STR
//	Directive    #YAML 1.3
//	DocumentStart +DOC ---
//	DocumentEnd  -DOC ...
//	Scalar       +VAL content ('content or "content when quoted)
//	Error        ERR
func (t Token) Render(input []byte) string {
	switch t.Kind {
	case StreamStart:
		return "+STR"
	case StreamEnd:
		return "-STR"
	case Directive:
		return "#" + t.Text(input)
	case DocumentStart:
		return "+DOC " + t.Text(input)
	case DocumentEnd:
		return "-DOC " + t.Text(input)
	case Scalar:
		switch t.Style {
		case SingleQuoted:
			return "+VAL '" + t.Text(input)
		case DoubleQuoted:
			return "+VAL \"" + t.Text(input)
		}
		return "+VAL " + t.Text(input)
	case Error:
		return "ERR"
	}
	return t.Kind.String()
}

// Render joins the renderings of tokens with newlines.
func Render(input []byte, tokens []Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(tok.Render(input))
	}
	return sb.String()
}
