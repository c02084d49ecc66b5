// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"maps"
	"slices"
	"unicode"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/iter"
	"gopkg.driplang.org/parser.go/internal/optional"
)

const (
	lexerLookahead = 3
)

var keywords = map[string]idl.TokenKind{
	"fn":     idl.TokenKindFnKw,
	"use":    idl.TokenKindUseKw,
	"extern": idl.TokenKindExternKw,
	"struct": idl.TokenKindStructKw,
	"trait":  idl.TokenKindTraitKw,
	"Type":   idl.TokenKindTypeKw,
	"self":   idl.TokenKindSelfVarKw,
	"Self":   idl.TokenKindSelfTypeKw,
}

var singles = map[rune]idl.TokenKind{
	'!':  idl.TokenKindBang,
	'?':  idl.TokenKindQuest,
	'+':  idl.TokenKindPlus,
	'*':  idl.TokenKindStar,
	'/':  idl.TokenKindSlash,
	'%':  idl.TokenKindPercent,
	'$':  idl.TokenKindDollar,
	'#':  idl.TokenKindHashtag,
	'@':  idl.TokenKindAt,
	'_':  idl.TokenKindUnderscore,
	'.':  idl.TokenKindDot,
	',':  idl.TokenKindComma,
	';':  idl.TokenKindSemicolon,
	'"':  idl.TokenKindQuote,
	'\'': idl.TokenKindSingleQuote,
	'`':  idl.TokenKindGrave,
	'{':  idl.TokenKindLCurlyBracket,
	'}':  idl.TokenKindRCurlyBracket,
	'(':  idl.TokenKindLRoundBracket,
	')':  idl.TokenKindRRoundBracket,
	'<':  idl.TokenKindLAngledBracket,
	'>':  idl.TokenKindRAngledBracket,
	'[':  idl.TokenKindLSquareBracket,
	']':  idl.TokenKindRSquareBracket,
}

// doubles holds punctuation that is either one rune or the same rune twice.
var doubles = map[rune][2]idl.TokenKind{
	'^': {idl.TokenKindCircumflex, idl.TokenKindCircumflex2},
	'&': {idl.TokenKindAnd, idl.TokenKindAnd2},
	'|': {idl.TokenKindPipe, idl.TokenKindPipe2},
	'=': {idl.TokenKindEquals, idl.TokenKindEquals2},
}

// Tokenize splits text into a gap-free sequence of tokens. It never fails:
// anything that is not part of the language becomes an Invalid token.
func Tokenize(text string) []idl.Token {
	return iter.Collect[idl.Token](New(text))
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}

// Lexer produces tokens on demand. It implements idl.Iterator.
type Lexer struct {
	text   string
	points idl.Lookahead[idl.CodePoint]
	end    int
}

func New(text string) *Lexer {
	return &Lexer{
		text:   text,
		points: iter.NewLookahead(iter.NewUnicodeString(text), lexerLookahead),
	}
}

func (self *Lexer) Next() optional.Optional[idl.Token] {
	point := self.next()
	if !point.IsPresent() {
		return optional.None[idl.Token]()
	}
	return optional.Some(self.scan(point.Value()))
}

func (self *Lexer) next() optional.Optional[idl.CodePoint] {
	point := self.points.Next()
	if point.IsPresent() {
		self.end = point.Value().End()
	}
	return point
}

// peek returns the rune n positions ahead of the current one or -1 at the
// end of input.
func (self *Lexer) peek(n uint8) rune {
	point := self.points.Lookahead(n)
	if !point.IsPresent() {
		return -1
	}
	return point.Value().Value
}

func (self *Lexer) token(kind idl.TokenKind, start int) idl.Token {
	return idl.Token{
		Kind:  kind,
		Text:  self.text[start:self.end],
		Range: idl.NewRange(start, self.end),
	}
}

func (self *Lexer) scan(point idl.CodePoint) idl.Token {
	start := point.Offset
	r := point.Value
	switch {
	case isWhitespace(r):
		for isWhitespace(self.peek(1)) {
			_ = self.next()
		}
		return self.token(idl.TokenKindWhitespace, start)
	case r == '/' && self.peek(1) == '/':
		for n := self.peek(1); n != -1 && n != '\n'; n = self.peek(1) {
			_ = self.next()
		}
		return self.token(idl.TokenKindComment, start)
	case unicode.IsLetter(r):
		for isIdentContinue(self.peek(1)) {
			_ = self.next()
		}
		if kind, ok := keywords[self.text[start:self.end]]; ok {
			return self.token(kind, start)
		}
		return self.token(idl.TokenKindIdent, start)
	case isDigit(r):
		self.readNumber(false)
		return self.token(idl.TokenKindNumber, start)
	case r == '.' && isDigit(self.peek(1)):
		self.readNumber(true)
		return self.token(idl.TokenKindNumber, start)
	case r == ':':
		switch self.peek(1) {
		case ':':
			_ = self.next()
			return self.token(idl.TokenKindConstKw, start)
		case '=':
			_ = self.next()
			return self.token(idl.TokenKindVariableKw, start)
		}
		return self.token(idl.TokenKindColon, start)
	case r == '-':
		if self.peek(1) == '>' {
			_ = self.next()
			return self.token(idl.TokenKindArrow, start)
		}
		return self.token(idl.TokenKindMinus, start)
	}
	if pair, ok := doubles[r]; ok {
		if self.peek(1) == r {
			_ = self.next()
			return self.token(pair[1], start)
		}
		return self.token(pair[0], start)
	}
	if kind, ok := singles[r]; ok {
		return self.token(kind, start)
	}
	return self.token(idl.TokenKindInvalid, start)
}

// readNumber consumes the remainder of a number whose first rune has already
// been read. The integer part is skipped when the number began with a dot.
func (self *Lexer) readNumber(fraction bool) {
	if !fraction {
		self.readDigits()
		if self.peek(1) == '.' && isDigit(self.peek(2)) {
			_ = self.next()
		}
	}
	self.readDigits()
	switch self.peek(1) {
	case 'e', 'E':
		switch n := self.peek(2); {
		case isDigit(n) || n == '_':
			_ = self.next()
			self.readDigits()
		case (n == '+' || n == '-') && (isDigit(self.peek(3)) || self.peek(3) == '_'):
			_ = self.next()
			_ = self.next()
			self.readDigits()
		}
	}
}

func (self *Lexer) readDigits() {
	for n := self.peek(1); isDigit(n) || n == '_'; n = self.peek(1) {
		_ = self.next()
	}
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentContinue(r rune) bool {
	return r != -1 && (unicode.IsLetter(r) || isDigit(r) || r == '_')
}
