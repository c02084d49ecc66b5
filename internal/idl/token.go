// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import "fmt"

type Token struct {
	Kind  TokenKind
	Text  string
	Range Range
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s %q", t.Kind, t.Range, t.Text)
}

type TokenKind uint8

const (
	TokenKindInvalid    TokenKind = 0
	TokenKindWhitespace TokenKind = 1
	TokenKindComment    TokenKind = 2
	TokenKindIdent      TokenKind = 3
	TokenKindNumber     TokenKind = 4

	TokenKindFnKw       TokenKind = 5
	TokenKindUseKw      TokenKind = 6
	TokenKindExternKw   TokenKind = 7
	TokenKindStructKw   TokenKind = 8
	TokenKindTraitKw    TokenKind = 9
	TokenKindTypeKw     TokenKind = 10
	TokenKindSelfVarKw  TokenKind = 11
	TokenKindSelfTypeKw TokenKind = 12
	TokenKindConstKw    TokenKind = 13 // ::
	TokenKindVariableKw TokenKind = 14 // :=
	TokenKindArrow      TokenKind = 15 // ->

	TokenKindBang        TokenKind = 16
	TokenKindQuest       TokenKind = 17
	TokenKindPlus        TokenKind = 18
	TokenKindMinus       TokenKind = 19
	TokenKindStar        TokenKind = 20
	TokenKindSlash       TokenKind = 21
	TokenKindCircumflex  TokenKind = 22
	TokenKindCircumflex2 TokenKind = 23
	TokenKindAnd         TokenKind = 24
	TokenKindAnd2        TokenKind = 25
	TokenKindPipe        TokenKind = 26
	TokenKindPipe2       TokenKind = 27
	TokenKindEquals      TokenKind = 28
	TokenKindEquals2     TokenKind = 29
	TokenKindPercent     TokenKind = 30
	TokenKindDollar      TokenKind = 31
	TokenKindHashtag     TokenKind = 32
	TokenKindAt          TokenKind = 33
	TokenKindUnderscore  TokenKind = 34
	TokenKindDot         TokenKind = 35
	TokenKindComma       TokenKind = 36
	TokenKindColon       TokenKind = 37
	TokenKindSemicolon   TokenKind = 38
	TokenKindQuote       TokenKind = 39
	TokenKindSingleQuote TokenKind = 40
	TokenKindGrave       TokenKind = 41

	TokenKindLCurlyBracket  TokenKind = 42
	TokenKindRCurlyBracket  TokenKind = 43
	TokenKindLRoundBracket  TokenKind = 44
	TokenKindRRoundBracket  TokenKind = 45
	TokenKindLAngledBracket TokenKind = 46
	TokenKindRAngledBracket TokenKind = 47
	TokenKindLSquareBracket TokenKind = 48
	TokenKindRSquareBracket TokenKind = 49
)

// TokenKindCount is one past the largest TokenKind value.
const TokenKindCount = int(TokenKindRSquareBracket) + 1

type tokenKindInfo struct {
	name    string
	display string
}

var tokenKindInfos = [TokenKindCount]tokenKindInfo{
	TokenKindInvalid:        {"Invalid", "unrecognized token"},
	TokenKindWhitespace:     {"Whitespace", "whitespace"},
	TokenKindComment:        {"Comment", "comment"},
	TokenKindIdent:          {"Ident", "identifier"},
	TokenKindNumber:         {"Number", "number"},
	TokenKindFnKw:           {"FnKw", "fn"},
	TokenKindUseKw:          {"UseKw", "use"},
	TokenKindExternKw:       {"ExternKw", "extern"},
	TokenKindStructKw:       {"StructKw", "struct"},
	TokenKindTraitKw:        {"TraitKw", "trait"},
	TokenKindTypeKw:         {"TypeKw", "Type"},
	TokenKindSelfVarKw:      {"SelfVarKw", "self"},
	TokenKindSelfTypeKw:     {"SelfTypeKw", "Self"},
	TokenKindConstKw:        {"ConstKw", "::"},
	TokenKindVariableKw:     {"VariableKw", ":="},
	TokenKindArrow:          {"Arrow", "->"},
	TokenKindBang:           {"Bang", "'!'"},
	TokenKindQuest:          {"Quest", "'?'"},
	TokenKindPlus:           {"Plus", "'+'"},
	TokenKindMinus:          {"Minus", "'-'"},
	TokenKindStar:           {"Star", "'*'"},
	TokenKindSlash:          {"Slash", "'/'"},
	TokenKindCircumflex:     {"Circumflex", "'^'"},
	TokenKindCircumflex2:    {"Circumflex2", "'^^'"},
	TokenKindAnd:            {"And", "'&'"},
	TokenKindAnd2:           {"And2", "'&&'"},
	TokenKindPipe:           {"Pipe", "'|'"},
	TokenKindPipe2:          {"Pipe2", "'||'"},
	TokenKindEquals:         {"Equals", "'='"},
	TokenKindEquals2:        {"Equals2", "'=='"},
	TokenKindPercent:        {"Percent", "'%'"},
	TokenKindDollar:         {"Dollar", "'$'"},
	TokenKindHashtag:        {"Hashtag", "'#'"},
	TokenKindAt:             {"At", "'@'"},
	TokenKindUnderscore:     {"Underscore", "'_'"},
	TokenKindDot:            {"Dot", "'.'"},
	TokenKindComma:          {"Comma", "','"},
	TokenKindColon:          {"Colon", "':'"},
	TokenKindSemicolon:      {"Semicolon", "';'"},
	TokenKindQuote:          {"Quote", "'\"'"},
	TokenKindSingleQuote:    {"SingleQuote", "'''"},
	TokenKindGrave:          {"Grave", "'`'"},
	TokenKindLCurlyBracket:  {"LCurlyBracket", "'{'"},
	TokenKindRCurlyBracket:  {"RCurlyBracket", "'}'"},
	TokenKindLRoundBracket:  {"LRoundBracket", "'('"},
	TokenKindRRoundBracket:  {"RRoundBracket", "')'"},
	TokenKindLAngledBracket: {"LAngledBracket", "'<'"},
	TokenKindRAngledBracket: {"RAngledBracket", "'>'"},
	TokenKindLSquareBracket: {"LSquareBracket", "'['"},
	TokenKindRSquareBracket: {"RSquareBracket", "']'"},
}

// String returns the Go-style name of the kind as used in tree dumps.
func (k TokenKind) String() string {
	if int(k) >= TokenKindCount {
		return fmt.Sprintf("TokenKind(%d)", k)
	}
	return tokenKindInfos[k].name
}

// Describe returns the human readable name of the kind as used in
// diagnostics.
func (k TokenKind) Describe() string {
	if int(k) >= TokenKindCount {
		return fmt.Sprintf("token kind %d", k)
	}
	return tokenKindInfos[k].display
}

func (k TokenKind) IsTrivia() bool {
	return k == TokenKindWhitespace || k == TokenKindComment
}

// TokenKinds returns every defined TokenKind in ascending order.
func TokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, TokenKindCount)
	for x := 0; x < TokenKindCount; x = x + 1 {
		kinds = append(kinds, TokenKind(x))
	}
	return kinds
}
