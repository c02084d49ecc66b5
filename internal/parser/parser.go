package parser

import (
	"fmt"
	"slices"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

// recoverySet holds the tokens that start a declaration. Error never
// swallows them so that the enclosing loop can resynchronize.
var recoverySet = []idl.TokenKind{
	idl.TokenKindIdent,
	idl.TokenKindUseKw,
	idl.TokenKindExternKw,
}

// Parser records grammar decisions as events. Grammar rules are free
// functions that drive it through Start, Bump, At, Expect, PeekNth and
// Error.
type Parser struct {
	source   *Source
	events   []Event
	expected []idl.TokenKind
	open     int
}

func newParser(tokens []idl.Token) *Parser {
	return &Parser{source: NewSource(tokens)}
}

func (p *Parser) run(rule func(*Parser)) []Event {
	rule(p)
	if p.open != 0 {
		panic(fmt.Sprintf("parser: %d markers were never completed or abandoned", p.open))
	}
	return p.events
}

func (p *Parser) Start() Marker {
	pos := len(p.events)
	p.events = append(p.events, Event{Kind: EventPlaceholder})
	p.open = p.open + 1
	return Marker{pos: pos, bomb: &markerBomb{}}
}

// Bump consumes the current token. Calling it at the end of input is a
// grammar bug.
func (p *Parser) Bump() {
	if !p.source.Next().IsPresent() {
		panic("parser: bump at end of input")
	}
	p.expected = p.expected[:0]
	p.events = append(p.events, Event{Kind: EventAddToken})
}

// At reports whether the current token has the given kind and remembers the
// kind for the next diagnostic.
func (p *Parser) At(kind idl.TokenKind) bool {
	if !slices.Contains(p.expected, kind) {
		p.expected = append(p.expected, kind)
	}
	current := p.source.Peek()
	return current.IsPresent() && current.Value() == kind
}

func (p *Parser) Expect(kind idl.TokenKind) {
	if p.At(kind) {
		p.Bump()
		return
	}
	p.Error()
}

// Error records a diagnostic for the current position. Unless input has
// ended or the current token is in the recovery set, the offending token is
// consumed into an Error node.
func (p *Parser) Error() {
	p.ErrorRecover()
}

// ErrorRecover is Error with additional kinds that must not be consumed,
// typically the closing bracket of the list being parsed.
func (p *Parser) ErrorRecover(extra ...idl.TokenKind) {
	p.report(ParseError{
		Expected: slices.Clone(p.expected),
		Found:    p.Current(),
	})
	p.expected = p.expected[:0]
	if p.AtEnd() || p.atRecovery() || p.AtSet(extra...) {
		return
	}
	m := p.Start()
	p.Bump()
	m.Complete(p, syntax.SyntaxKindError)
}

// Unsupported records that the current token starts a construct the parser
// does not handle and consumes that token into an Error node. The caller may
// consume the rest of the construct into the same region.
func (p *Parser) Unsupported(construct string) Marker {
	p.report(ParseError{Unsupported: construct})
	p.expected = p.expected[:0]
	m := p.Start()
	if !p.AtEnd() {
		p.Bump()
	}
	return m
}

func (p *Parser) report(err ParseError) {
	token := p.source.PeekToken()
	if token.IsPresent() {
		err.Range = token.Value().Range
	} else {
		err.Range = p.source.LastTokenRange().ValueOr(idl.Range{})
	}
	p.events = append(p.events, Event{Kind: EventError, Err: &err})
}

func (p *Parser) PeekNth(n int) optional.Optional[idl.TokenKind] {
	return p.source.PeekNth(n)
}

func (p *Parser) PeekPastGroup(open idl.TokenKind, close idl.TokenKind) optional.Optional[idl.TokenKind] {
	return p.source.PeekPastGroup(open, close)
}

// Current is the kind of the current token. Unlike At it does not touch the
// expected set.
func (p *Parser) Current() optional.Optional[idl.TokenKind] {
	return p.source.Peek()
}

func (p *Parser) AtEnd() bool {
	return !p.source.Peek().IsPresent()
}

func (p *Parser) AtSet(kinds ...idl.TokenKind) bool {
	current := p.source.Peek()
	return current.IsPresent() && slices.Contains(kinds, current.Value())
}

func (p *Parser) atRecovery() bool {
	return p.AtSet(recoverySet...)
}
