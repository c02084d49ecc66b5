package parser

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

// fnDef parses a signature and body. The caller wraps it in the FnDef node
// together with the name.
func fnDef(p *Parser) {
	p.Expect(idl.TokenKindLRoundBracket)
	if !p.At(idl.TokenKindRRoundBracket) && !p.AtEnd() {
		fnParamList(p)
	}
	expectIn(p, idl.TokenKindRRoundBracket, idl.TokenKindLCurlyBracket, idl.TokenKindArrow)
	if p.At(idl.TokenKindArrow) {
		p.Bump()
		fnReturn(p)
	}
	if !p.At(idl.TokenKindLCurlyBracket) {
		p.Error()
		return
	}
	p.Bump()
	if !p.At(idl.TokenKindRCurlyBracket) && !p.AtEnd() {
		fnBody(p)
	}
	p.Expect(idl.TokenKindRCurlyBracket)
}

func fnParamList(p *Parser) {
	m := p.Start()
	for !p.At(idl.TokenKindRRoundBracket) && !p.AtEnd() {
		if p.At(idl.TokenKindIdent) {
			fnParam(p)
			continue
		}
		if p.atRecovery() {
			break
		}
		p.ErrorRecover(idl.TokenKindRRoundBracket)
	}
	m.Complete(p, syntax.SyntaxKindFnParamListDef)
}

func fnParam(p *Parser) {
	m := p.Start()
	p.Bump()
	expectIn(p, idl.TokenKindColon, idl.TokenKindRRoundBracket, idl.TokenKindComma)
	typeRef(p, idl.TokenKindRRoundBracket, idl.TokenKindComma)
	if p.At(idl.TokenKindComma) {
		p.Bump()
	}
	m.Complete(p, syntax.SyntaxKindFnParamDef)
}

func fnReturn(p *Parser) {
	m := p.Start()
	if p.At(idl.TokenKindLRoundBracket) {
		p.Bump()
		fnReturnTypeList(p)
		expectIn(p, idl.TokenKindRRoundBracket, idl.TokenKindLCurlyBracket)
	} else {
		fnReturnType(p, idl.TokenKindLCurlyBracket)
	}
	m.Complete(p, syntax.SyntaxKindFnReturnDef)
}

func fnReturnTypeList(p *Parser) {
	m := p.Start()
	for !p.At(idl.TokenKindRRoundBracket) && !p.AtEnd() {
		if !atType(p) {
			if p.atRecovery() {
				break
			}
			p.ErrorRecover(idl.TokenKindRRoundBracket)
			continue
		}
		fnReturnType(p, idl.TokenKindRRoundBracket, idl.TokenKindComma)
		if p.At(idl.TokenKindComma) {
			p.Bump()
		}
	}
	m.Complete(p, syntax.SyntaxKindFnReturnTypeListDef)
}

func fnReturnType(p *Parser, closers ...idl.TokenKind) {
	m := p.Start()
	typeRef(p, closers...)
	m.Complete(p, syntax.SyntaxKindFnReturnTypeDef)
}

func fnBody(p *Parser) {
	m := p.Start()
	for !p.At(idl.TokenKindRCurlyBracket) && !p.AtEnd() {
		decl(p)
	}
	m.Complete(p, syntax.SyntaxKindFnBodyDef)
}
