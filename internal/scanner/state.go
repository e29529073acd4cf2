package scanner

// State selects the grammar rule governing the next transition.
type State uint8

const (
	// StateStreamStart is the initial state.
	StateStreamStart State = iota
	// StateDirectiveOrDocument expects optional directives, then a document.
	StateDirectiveOrDocument
	// StateDocumentContent scans document nodes.
	StateDocumentContent
	// StateError is terminal apart from closing the stream.
	StateError
	// StateStreamEnd is terminal.
	StateStreamEnd
)

func (s State) String() string {
	switch s {
	case StateStreamStart:
		return "StreamStart"
	case StateDirectiveOrDocument:
		return "DirectiveOrDocument"
	case StateDocumentContent:
		return "DocumentContent"
	case StateError:
		return "Error"
	case StateStreamEnd:
		return "StreamEnd"
	}
	return "Unknown"
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateStreamEnd
}
