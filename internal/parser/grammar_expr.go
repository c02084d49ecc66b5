package parser

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

type binaryOp struct {
	kind  idl.TokenKind
	left  uint8
	right uint8
}

// binaryOps is checked in order. Higher powers bind tighter and a right
// power above the left power makes the operator left associative.
var binaryOps = []binaryOp{
	{kind: idl.TokenKindPlus, left: 1, right: 2},
	{kind: idl.TokenKindMinus, left: 1, right: 2},
	{kind: idl.TokenKindStar, left: 3, right: 4},
	{kind: idl.TokenKindSlash, left: 3, right: 4},
}

const negationPower = 5

func expr(p *Parser) (CompletedMarker, bool) {
	return exprBindingPower(p, 0)
}

func exprBindingPower(p *Parser, minPower uint8) (CompletedMarker, bool) {
	left, ok := lhs(p)
	if !ok {
		return CompletedMarker{}, false
	}
	for {
		op, ok := currentBinaryOp(p)
		if !ok || op.left < minPower {
			break
		}
		p.Bump()
		m := left.Precede(p)
		_, parsedRHS := exprBindingPower(p, op.right)
		left = m.Complete(p, syntax.SyntaxKindInfixExpr)
		if !parsedRHS {
			break
		}
	}
	return left, true
}

func currentBinaryOp(p *Parser) (binaryOp, bool) {
	for _, op := range binaryOps {
		if p.At(op.kind) {
			return op, true
		}
	}
	return binaryOp{}, false
}

func lhs(p *Parser) (CompletedMarker, bool) {
	switch {
	case p.At(idl.TokenKindNumber):
		return single(p, syntax.SyntaxKindLiteral), true
	case p.At(idl.TokenKindIdent):
		return single(p, syntax.SyntaxKindVariableRef), true
	case p.At(idl.TokenKindMinus):
		return prefixExpr(p), true
	case p.At(idl.TokenKindLRoundBracket):
		return roundBracketExpr(p), true
	default:
		p.Error()
		return CompletedMarker{}, false
	}
}

// single wraps the current token in a node of the given kind.
func single(p *Parser, kind syntax.SyntaxKind) CompletedMarker {
	m := p.Start()
	p.Bump()
	return m.Complete(p, kind)
}

func prefixExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Bump()
	_, _ = exprBindingPower(p, negationPower)
	return m.Complete(p, syntax.SyntaxKindPrefixExpr)
}

func roundBracketExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Bump()
	_, _ = exprBindingPower(p, 0)
	p.Expect(idl.TokenKindRRoundBracket)
	return m.Complete(p, syntax.SyntaxKindRoundBracketExpr)
}
