package parser

import (
	"fmt"

	"gopkg.driplang.org/parser.go/internal/syntax"
)

// Marker reserves a slot in the event log for a node that is not yet known.
// Every Marker must be resolved exactly once with Complete or Abandon.
type Marker struct {
	pos  int
	bomb *markerBomb
}

type markerBomb struct {
	defused bool
}

func (m Marker) defuse(p *Parser, op string) {
	if m.bomb == nil || m.bomb.defused {
		panic(fmt.Sprintf("parser: %s of marker at event %d that was already resolved", op, m.pos))
	}
	m.bomb.defused = true
	p.open = p.open - 1
}

// Complete turns the reserved slot into a StartNode of the given kind and
// closes it at the current position.
func (m Marker) Complete(p *Parser, kind syntax.SyntaxKind) CompletedMarker {
	m.defuse(p, "complete")
	if p.events[m.pos].Kind != EventPlaceholder {
		panic(fmt.Sprintf("parser: marker slot %d holds %s", m.pos, p.events[m.pos].Kind))
	}
	p.events[m.pos] = Event{Kind: EventStartNode, Node: kind}
	p.events = append(p.events, Event{Kind: EventFinishNode})
	return CompletedMarker{pos: m.pos}
}

// Abandon gives up the reservation. The slot is removed when nothing was
// recorded after it, otherwise it stays behind as a Placeholder.
func (m Marker) Abandon(p *Parser) {
	m.defuse(p, "abandon")
	if m.pos == len(p.events)-1 {
		if p.events[m.pos].Kind != EventPlaceholder {
			panic(fmt.Sprintf("parser: abandoned slot %d holds %s", m.pos, p.events[m.pos].Kind))
		}
		p.events = p.events[:m.pos]
	}
}

type CompletedMarker struct {
	pos int
}

// Precede starts a new marker that, once completed, becomes the parent of
// the node this marker completed.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	m := p.Start()
	event := &p.events[cm.pos]
	if event.Kind != EventStartNode {
		panic(fmt.Sprintf("parser: precede on %s at event %d", event.Kind, cm.pos))
	}
	event.ForwardParent = m.pos - cm.pos
	return m
}
