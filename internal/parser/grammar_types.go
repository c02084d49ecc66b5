package parser

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

// TODO: accept module paths once imports resolve to packages.
func atType(p *Parser) bool {
	return p.At(idl.TokenKindIdent) || p.At(idl.TokenKindSelfTypeKw)
}

func typeRef(p *Parser, closers ...idl.TokenKind) {
	if atType(p) {
		m := p.Start()
		p.Bump()
		m.Complete(p, syntax.SyntaxKindType)
		return
	}
	p.ErrorRecover(closers...)
}
