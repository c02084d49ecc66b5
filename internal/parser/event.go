package parser

import "gopkg.driplang.org/parser.go/internal/syntax"

type EventKind uint8

const (
	EventPlaceholder EventKind = 0
	EventStartNode   EventKind = 1
	EventAddToken    EventKind = 2
	EventFinishNode  EventKind = 3
	EventError       EventKind = 4
)

func (k EventKind) String() string {
	switch k {
	case EventPlaceholder:
		return "Placeholder"
	case EventStartNode:
		return "StartNode"
	case EventAddToken:
		return "AddToken"
	case EventFinishNode:
		return "FinishNode"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is one entry of the parser's output log. Node and ForwardParent are
// only meaningful for StartNode and Err only for Error. ForwardParent is the
// distance to a later StartNode that must be opened around this one; zero
// means there is none.
type Event struct {
	Kind          EventKind
	Node          syntax.SyntaxKind
	ForwardParent int
	Err           *ParseError
}
