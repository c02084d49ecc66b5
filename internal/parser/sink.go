package parser

import (
	"fmt"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

// sink replays an event log against the full token stream, trivia included,
// and assembles the green tree.
type sink struct {
	builder *syntax.Builder
	tokens  []idl.Token
	cursor  int
	events  []Event
	errors  []ParseError
}

func newSink(tokens []idl.Token, events []Event) *sink {
	return &sink{
		builder: syntax.NewBuilder(),
		tokens:  tokens,
		events:  events,
	}
}

func (s *sink) finish() (*syntax.GreenNode, []ParseError) {
	for idx := range s.events {
		event := s.take(idx)
		switch event.Kind {
		case EventStartNode:
			s.startNodes(idx, event)
		case EventAddToken:
			s.token()
		case EventFinishNode:
			s.builder.FinishNode()
		case EventError:
			s.errors = append(s.errors, *event.Err)
		case EventPlaceholder:
		}
		s.eatTrivia()
	}
	return s.builder.Finish(), s.errors
}

// take returns the event at idx and leaves a Placeholder behind so that no
// event is replayed twice.
func (s *sink) take(idx int) Event {
	event := s.events[idx]
	s.events[idx] = Event{Kind: EventPlaceholder}
	return event
}

// startNodes follows the forward parent chain that begins at idx and opens
// the collected nodes outermost first.
func (s *sink) startNodes(idx int, event Event) {
	kinds := []syntax.SyntaxKind{event.Node}
	for event.ForwardParent != 0 {
		idx = idx + event.ForwardParent
		event = s.take(idx)
		if event.Kind != EventStartNode {
			panic(fmt.Sprintf("parser: forward parent of %s points at %s", kinds[len(kinds)-1], event.Kind))
		}
		kinds = append(kinds, event.Node)
	}
	for x := len(kinds) - 1; x >= 0; x = x - 1 {
		s.builder.StartNode(kinds[x])
	}
}

func (s *sink) eatTrivia() {
	for s.cursor < len(s.tokens) && s.tokens[s.cursor].Kind.IsTrivia() {
		s.token()
	}
}

func (s *sink) token() {
	token := s.tokens[s.cursor]
	s.builder.Token(syntax.FromToken(token.Kind), token.Text)
	s.cursor = s.cursor + 1
}
