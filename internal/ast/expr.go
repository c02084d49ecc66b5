package ast

import (
	"strconv"
	"strings"

	"gopkg.driplang.org/parser.go/internal/syntax"
)

type Expr interface {
	Decl
	expr()
}

func CastExpr(node *syntax.Node) (Expr, bool) {
	switch node.Kind() {
	case syntax.SyntaxKindInfixExpr:
		return BinaryExpr{node: node}, true
	case syntax.SyntaxKindPrefixExpr:
		return UnaryExpr{node: node}, true
	case syntax.SyntaxKindLiteral:
		return Literal{node: node}, true
	case syntax.SyntaxKindRoundBracketExpr:
		return RoundBracketExpr{node: node}, true
	case syntax.SyntaxKindVariableRef:
		return VariableRef{node: node}, true
	default:
		return nil, false
	}
}

func nthExpr(node *syntax.Node, n int) (Expr, bool) {
	for child := range node.ChildNodes() {
		e, ok := CastExpr(child)
		if !ok {
			continue
		}
		if n == 0 {
			return e, true
		}
		n = n - 1
	}
	return nil, false
}

type BinaryExpr struct {
	node *syntax.Node
}

func (BinaryExpr) decl() {}
func (BinaryExpr) expr() {}
func (e BinaryExpr) Syntax() *syntax.Node { return e.node }

func (e BinaryExpr) Lhs() (Expr, bool) {
	return nthExpr(e.node, 0)
}

func (e BinaryExpr) Rhs() (Expr, bool) {
	return nthExpr(e.node, 1)
}

func (e BinaryExpr) Op() (*syntax.Token, bool) {
	return firstToken(e.node, syntax.SyntaxKindPlus, syntax.SyntaxKindMinus, syntax.SyntaxKindStar, syntax.SyntaxKindSlash)
}

type UnaryExpr struct {
	node *syntax.Node
}

func (UnaryExpr) decl() {}
func (UnaryExpr) expr() {}
func (e UnaryExpr) Syntax() *syntax.Node { return e.node }

func (e UnaryExpr) Op() (*syntax.Token, bool) {
	return firstToken(e.node, syntax.SyntaxKindMinus)
}

func (e UnaryExpr) Expr() (Expr, bool) {
	return nthExpr(e.node, 0)
}

type Literal struct {
	node *syntax.Node
}

func (Literal) decl() {}
func (Literal) expr() {}
func (e Literal) Syntax() *syntax.Node { return e.node }

// Value parses the number. Digit separators are ignored.
func (e Literal) Value() (float64, bool) {
	token, ok := firstToken(e.node, syntax.SyntaxKindNumber)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token.Text(), "_", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type RoundBracketExpr struct {
	node *syntax.Node
}

func (RoundBracketExpr) decl() {}
func (RoundBracketExpr) expr() {}
func (e RoundBracketExpr) Syntax() *syntax.Node { return e.node }

func (e RoundBracketExpr) Expr() (Expr, bool) {
	return nthExpr(e.node, 0)
}

type VariableRef struct {
	node *syntax.Node
}

func (VariableRef) decl() {}
func (VariableRef) expr() {}
func (e VariableRef) Syntax() *syntax.Node { return e.node }

func (e VariableRef) Name() (*syntax.Token, bool) {
	return firstToken(e.node, syntax.SyntaxKindIdent)
}
