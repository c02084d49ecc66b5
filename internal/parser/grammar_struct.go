package parser

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

func structDef(p *Parser) {
	p.Bump()
	if !p.At(idl.TokenKindLCurlyBracket) {
		p.Error()
		return
	}
	m := p.Start()
	p.Bump()
	for !p.At(idl.TokenKindRCurlyBracket) && !p.AtEnd() {
		if p.At(idl.TokenKindIdent) {
			structField(p)
			continue
		}
		if p.atRecovery() {
			break
		}
		p.ErrorRecover(idl.TokenKindRCurlyBracket)
	}
	p.Expect(idl.TokenKindRCurlyBracket)
	m.Complete(p, syntax.SyntaxKindStructFieldListDef)
}

func structField(p *Parser) {
	m := p.Start()
	p.Bump()
	expectIn(p, idl.TokenKindColon, idl.TokenKindRCurlyBracket, idl.TokenKindComma)
	typeRef(p, idl.TokenKindRCurlyBracket, idl.TokenKindComma)
	if p.At(idl.TokenKindComma) {
		p.Bump()
	}
	m.Complete(p, syntax.SyntaxKindStructFieldDef)
}

func traitDef(p *Parser) {
	p.Bump()
	if !p.At(idl.TokenKindLCurlyBracket) {
		p.Error()
		return
	}
	m := p.Start()
	p.Bump()
	if p.At(idl.TokenKindTypeKw) {
		traitTypeList(p)
	}
	if !p.At(idl.TokenKindRCurlyBracket) && !p.AtEnd() {
		traitFnList(p)
	}
	p.Expect(idl.TokenKindRCurlyBracket)
	m.Complete(p, syntax.SyntaxKindTraitListsDef)
}

// traitTypeList reports associated type lists as unsupported. The skipped
// tokens, up to the first declaration or the end of the trait, form an Error
// node inside the list.
func traitTypeList(p *Parser) {
	list := p.Start()
	m := p.Unsupported("associated type list")
	for !p.AtEnd() && !p.AtSet(idl.TokenKindRCurlyBracket) && !atDefinition(p) {
		p.Bump()
	}
	m.Complete(p, syntax.SyntaxKindError)
	list.Complete(p, syntax.SyntaxKindTraitTypeListDef)
}

func traitFnList(p *Parser) {
	m := p.Start()
	for !p.At(idl.TokenKindRCurlyBracket) && !p.AtEnd() {
		decl(p)
	}
	m.Complete(p, syntax.SyntaxKindTraitFnListDef)
}
