// Package ast provides typed views over the lossless syntax tree. Views never
// copy or validate anything: accessors look for the expected children and
// report their absence, which is normal for trees built from broken input.
package ast

import (
	"iter"

	"gopkg.driplang.org/parser.go/internal/syntax"
)

type Root struct {
	node *syntax.Node
}

func CastRoot(node *syntax.Node) (Root, bool) {
	if node == nil || node.Kind() != syntax.SyntaxKindRoot {
		return Root{}, false
	}
	return Root{node: node}, true
}

func (r Root) Syntax() *syntax.Node {
	return r.node
}

// Decls yields the top level declarations. Error nodes are skipped.
func (r Root) Decls() iter.Seq[Decl] {
	return decls(r.node)
}

// Decl is any node that may appear in a declaration list. Every Expr is
// also a Decl.
type Decl interface {
	Syntax() *syntax.Node
	decl()
}

func CastDecl(node *syntax.Node) (Decl, bool) {
	switch node.Kind() {
	case syntax.SyntaxKindVariableDef:
		return VariableDef{node: node}, true
	case syntax.SyntaxKindConstDef:
		return ConstDef{node: node}, true
	case syntax.SyntaxKindAssignDef:
		return AssignDef{node: node}, true
	case syntax.SyntaxKindFnDef:
		return FnDef{node: node}, true
	case syntax.SyntaxKindStructDef:
		return StructDef{node: node}, true
	case syntax.SyntaxKindTraitDef:
		return TraitDef{node: node}, true
	case syntax.SyntaxKindUseDecl:
		return UseDecl{node: node}, true
	}
	e, ok := CastExpr(node)
	if !ok {
		return nil, false
	}
	return e, true
}

func decls(node *syntax.Node) iter.Seq[Decl] {
	return func(yield func(Decl) bool) {
		if node == nil {
			return
		}
		for child := range node.ChildNodes() {
			d, ok := CastDecl(child)
			if !ok {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

type VariableDef struct {
	node *syntax.Node
}

func (VariableDef) decl() {}
func (d VariableDef) Syntax() *syntax.Node { return d.node }

func (d VariableDef) Name() (*syntax.Token, bool) {
	return firstToken(d.node, syntax.SyntaxKindIdent)
}

func (d VariableDef) Value() (Expr, bool) {
	return nthExpr(d.node, 0)
}

type ConstDef struct {
	node *syntax.Node
}

func (ConstDef) decl() {}
func (d ConstDef) Syntax() *syntax.Node { return d.node }

func (d ConstDef) Name() (*syntax.Token, bool) {
	return firstToken(d.node, syntax.SyntaxKindIdent)
}

func (d ConstDef) Value() (Expr, bool) {
	return nthExpr(d.node, 0)
}

// AssignDef is an assignment to an existing variable. The target is kept in
// its own VariableRef node.
type AssignDef struct {
	node *syntax.Node
}

func (AssignDef) decl() {}
func (d AssignDef) Syntax() *syntax.Node { return d.node }

func (d AssignDef) Target() (VariableRef, bool) {
	node, ok := firstNode(d.node, syntax.SyntaxKindVariableRef)
	if !ok {
		return VariableRef{}, false
	}
	return VariableRef{node: node}, true
}

func (d AssignDef) Value() (Expr, bool) {
	return nthExpr(d.node, 1)
}

type UseDecl struct {
	node *syntax.Node
}

func (UseDecl) decl() {}
func (d UseDecl) Syntax() *syntax.Node { return d.node }

// Path returns the identifiers of the imported path in order. A path cut
// short by an error returns the segments that were present.
func (d UseDecl) Path() []string {
	path, ok := firstNode(d.node, syntax.SyntaxKindPath)
	if !ok {
		return nil
	}
	var segments []string
	for token := range path.ChildTokens() {
		if token.Kind() == syntax.SyntaxKindIdent {
			segments = append(segments, token.Text())
		}
	}
	return segments
}

func firstToken(node *syntax.Node, kinds ...syntax.SyntaxKind) (*syntax.Token, bool) {
	for token := range node.ChildTokens() {
		for _, kind := range kinds {
			if token.Kind() == kind {
				return token, true
			}
		}
	}
	return nil, false
}

func firstNode(node *syntax.Node, kind syntax.SyntaxKind) (*syntax.Node, bool) {
	for child := range node.ChildNodes() {
		if child.Kind() == kind {
			return child, true
		}
	}
	return nil, false
}

func nodesOf(node *syntax.Node, kind syntax.SyntaxKind) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		if node == nil {
			return
		}
		for child := range node.ChildNodes() {
			if child.Kind() == kind && !yield(child) {
				return
			}
		}
	}
}
