// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

func root(p *Parser) {
	m := p.Start()
	for !p.AtEnd() {
		decl(p)
	}
	m.Complete(p, syntax.SyntaxKindRoot)
}

// decl parses one declaration or expression. It consumes at least one token
// whenever input remains.
func decl(p *Parser) {
	switch {
	case p.At(idl.TokenKindExternKw):
		externDecl(p)
	case p.At(idl.TokenKindUseKw):
		useDecl(p)
	case p.At(idl.TokenKindIdent):
		identDecl(p)
	default:
		expr(p)
	}
}

func identDecl(p *Parser) {
	m := p.Start()
	switch p.PeekNth(1) {
	case optional.Some(idl.TokenKindEquals):
		ref := p.Start()
		p.Bump()
		ref.Complete(p, syntax.SyntaxKindVariableRef)
		p.Bump()
		expr(p)
		m.Complete(p, syntax.SyntaxKindAssignDef)
	case optional.Some(idl.TokenKindVariableKw):
		p.Bump()
		p.Bump()
		expr(p)
		m.Complete(p, syntax.SyntaxKindVariableDef)
	case optional.Some(idl.TokenKindConstKw):
		p.Bump()
		p.Bump()
		constDef(p, m)
	default:
		m.Abandon(p)
		expr(p)
	}
}

func constDef(p *Parser, m Marker) {
	switch {
	case p.At(idl.TokenKindStructKw):
		structDef(p)
		m.Complete(p, syntax.SyntaxKindStructDef)
	case p.At(idl.TokenKindTraitKw):
		traitDef(p)
		m.Complete(p, syntax.SyntaxKindTraitDef)
	case looksLikeFunction(p):
		fnDef(p)
		m.Complete(p, syntax.SyntaxKindFnDef)
	default:
		expr(p)
		m.Complete(p, syntax.SyntaxKindConstDef)
	}
}

// looksLikeFunction tells a signature apart from a parenthesized expression
// by the token that follows the closing bracket.
func looksLikeFunction(p *Parser) bool {
	switch p.PeekPastGroup(idl.TokenKindLRoundBracket, idl.TokenKindRRoundBracket) {
	case optional.Some(idl.TokenKindArrow), optional.Some(idl.TokenKindLCurlyBracket):
		return true
	default:
		return false
	}
}

func useDecl(p *Parser) {
	m := p.Start()
	p.Bump()
	path := p.Start()
	p.Expect(idl.TokenKindIdent)
	for p.At(idl.TokenKindDot) {
		p.Bump()
		p.Expect(idl.TokenKindIdent)
	}
	path.Complete(p, syntax.SyntaxKindPath)
	m.Complete(p, syntax.SyntaxKindUseDecl)
}

// externDecl reports extern blocks as unsupported and skips the header and
// an optional braced body.
func externDecl(p *Parser) {
	m := p.Unsupported("extern block")
	for !p.AtEnd() && !p.AtSet(idl.TokenKindLCurlyBracket, idl.TokenKindUseKw, idl.TokenKindExternKw) && !atDefinition(p) {
		p.Bump()
	}
	if p.AtSet(idl.TokenKindLCurlyBracket) {
		skipGroup(p, idl.TokenKindLCurlyBracket, idl.TokenKindRCurlyBracket)
	}
	m.Complete(p, syntax.SyntaxKindError)
}

func atDefinition(p *Parser) bool {
	if !p.AtSet(idl.TokenKindIdent) {
		return false
	}
	switch p.PeekNth(1) {
	case optional.Some(idl.TokenKindConstKw), optional.Some(idl.TokenKindVariableKw), optional.Some(idl.TokenKindEquals):
		return true
	default:
		return false
	}
}

// skipGroup consumes a bracket group starting at the current open bracket,
// stopping early at the end of input.
func skipGroup(p *Parser, open idl.TokenKind, close idl.TokenKind) {
	depth := 0
	for !p.AtEnd() {
		switch {
		case p.AtSet(open):
			depth = depth + 1
		case p.AtSet(close):
			depth = depth - 1
		}
		p.Bump()
		if depth == 0 {
			return
		}
	}
}

// expectIn is Expect for rules inside a delimited list. The given closers
// are never consumed as errors.
func expectIn(p *Parser, kind idl.TokenKind, closers ...idl.TokenKind) {
	if p.At(kind) {
		p.Bump()
		return
	}
	p.ErrorRecover(closers...)
}
