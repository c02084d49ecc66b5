package parser

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
)

// Source is a cursor over the token stream that hides trivia from the
// grammar. The cursor only moves forward.
type Source struct {
	tokens []idl.Token
	cursor int
}

func NewSource(tokens []idl.Token) *Source {
	return &Source{tokens: tokens}
}

// Next consumes and returns the next structural token.
func (s *Source) Next() optional.Optional[idl.Token] {
	s.eatTrivia()
	if s.cursor >= len(s.tokens) {
		return optional.None[idl.Token]()
	}
	token := s.tokens[s.cursor]
	s.cursor = s.cursor + 1
	return optional.Some(token)
}

func (s *Source) Peek() optional.Optional[idl.TokenKind] {
	return s.PeekNth(0)
}

func (s *Source) PeekToken() optional.Optional[idl.Token] {
	s.eatTrivia()
	if s.cursor >= len(s.tokens) {
		return optional.None[idl.Token]()
	}
	return optional.Some(s.tokens[s.cursor])
}

// PeekNth returns the kind of the n'th structural token ahead of the cursor
// without consuming anything. PeekNth(0) is the current token.
func (s *Source) PeekNth(n int) optional.Optional[idl.TokenKind] {
	s.eatTrivia()
	seen := 0
	for offset := s.cursor; offset < len(s.tokens); offset = offset + 1 {
		kind := s.tokens[offset].Kind
		if kind.IsTrivia() {
			continue
		}
		if seen == n {
			return optional.Some(kind)
		}
		seen = seen + 1
	}
	return optional.None[idl.TokenKind]()
}

// PeekPastGroup requires the cursor to sit on an open bracket. It returns the
// kind of the first structural token after the matching close bracket, or
// nothing when the group is not closed before the end of input.
func (s *Source) PeekPastGroup(open idl.TokenKind, close idl.TokenKind) optional.Optional[idl.TokenKind] {
	s.eatTrivia()
	if s.cursor >= len(s.tokens) || s.tokens[s.cursor].Kind != open {
		return optional.None[idl.TokenKind]()
	}
	depth := 0
	closed := false
	for offset := s.cursor; offset < len(s.tokens); offset = offset + 1 {
		kind := s.tokens[offset].Kind
		if kind.IsTrivia() {
			continue
		}
		if closed {
			return optional.Some(kind)
		}
		switch kind {
		case open:
			depth = depth + 1
		case close:
			depth = depth - 1
			closed = depth == 0
		}
	}
	return optional.None[idl.TokenKind]()
}

// LastTokenRange is the range of the final token of the stream, trivia
// included. It is empty only when there are no tokens at all.
func (s *Source) LastTokenRange() optional.Optional[idl.Range] {
	if len(s.tokens) == 0 {
		return optional.None[idl.Range]()
	}
	return optional.Some(s.tokens[len(s.tokens)-1].Range)
}

func (s *Source) eatTrivia() {
	for s.cursor < len(s.tokens) && s.tokens[s.cursor].Kind.IsTrivia() {
		s.cursor = s.cursor + 1
	}
}
