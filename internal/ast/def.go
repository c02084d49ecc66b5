package ast

import (
	"iter"

	"gopkg.driplang.org/parser.go/internal/syntax"
)

type FnDef struct {
	node *syntax.Node
}

func (FnDef) decl() {}
func (d FnDef) Syntax() *syntax.Node { return d.node }

func (d FnDef) Name() (*syntax.Token, bool) {
	return firstToken(d.node, syntax.SyntaxKindIdent)
}

func (d FnDef) Params() iter.Seq[Param] {
	return func(yield func(Param) bool) {
		list, ok := firstNode(d.node, syntax.SyntaxKindFnParamListDef)
		if !ok {
			return
		}
		for node := range nodesOf(list, syntax.SyntaxKindFnParamDef) {
			if !yield(Param{node: node}) {
				return
			}
		}
	}
}

// Returns yields the declared return types, whether written bare or as a
// parenthesized list.
func (d FnDef) Returns() iter.Seq[TypeRef] {
	return func(yield func(TypeRef) bool) {
		ret, ok := firstNode(d.node, syntax.SyntaxKindFnReturnDef)
		if !ok {
			return
		}
		parent := ret
		if list, ok := firstNode(ret, syntax.SyntaxKindFnReturnTypeListDef); ok {
			parent = list
		}
		for node := range nodesOf(parent, syntax.SyntaxKindFnReturnTypeDef) {
			t, ok := firstNode(node, syntax.SyntaxKindType)
			if !ok {
				continue
			}
			if !yield(TypeRef{node: t}) {
				return
			}
		}
	}
}

func (d FnDef) Body() iter.Seq[Decl] {
	body, _ := firstNode(d.node, syntax.SyntaxKindFnBodyDef)
	return decls(body)
}

type Param struct {
	node *syntax.Node
}

func (p Param) Syntax() *syntax.Node { return p.node }

func (p Param) Name() (*syntax.Token, bool) {
	return firstToken(p.node, syntax.SyntaxKindIdent)
}

func (p Param) Type() (TypeRef, bool) {
	return typeOf(p.node)
}

// TypeRef names a type, either an identifier or Self.
type TypeRef struct {
	node *syntax.Node
}

func (t TypeRef) Syntax() *syntax.Node { return t.node }

func (t TypeRef) Name() string {
	token, ok := firstToken(t.node, syntax.SyntaxKindIdent, syntax.SyntaxKindSelfTypeKw)
	if !ok {
		return ""
	}
	return token.Text()
}

func (t TypeRef) IsSelf() bool {
	_, ok := firstToken(t.node, syntax.SyntaxKindSelfTypeKw)
	return ok
}

func typeOf(node *syntax.Node) (TypeRef, bool) {
	t, ok := firstNode(node, syntax.SyntaxKindType)
	if !ok {
		return TypeRef{}, false
	}
	return TypeRef{node: t}, true
}

type StructDef struct {
	node *syntax.Node
}

func (StructDef) decl() {}
func (d StructDef) Syntax() *syntax.Node { return d.node }

func (d StructDef) Name() (*syntax.Token, bool) {
	return firstToken(d.node, syntax.SyntaxKindIdent)
}

func (d StructDef) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		list, ok := firstNode(d.node, syntax.SyntaxKindStructFieldListDef)
		if !ok {
			return
		}
		for node := range nodesOf(list, syntax.SyntaxKindStructFieldDef) {
			if !yield(Field{node: node}) {
				return
			}
		}
	}
}

type Field struct {
	node *syntax.Node
}

func (f Field) Syntax() *syntax.Node { return f.node }

func (f Field) Name() (*syntax.Token, bool) {
	return firstToken(f.node, syntax.SyntaxKindIdent)
}

func (f Field) Type() (TypeRef, bool) {
	return typeOf(f.node)
}

type TraitDef struct {
	node *syntax.Node
}

func (TraitDef) decl() {}
func (d TraitDef) Syntax() *syntax.Node { return d.node }

func (d TraitDef) Name() (*syntax.Token, bool) {
	return firstToken(d.node, syntax.SyntaxKindIdent)
}

// Fns yields the functions declared in the trait body. Other declarations
// are skipped.
func (d TraitDef) Fns() iter.Seq[FnDef] {
	return func(yield func(FnDef) bool) {
		lists, ok := firstNode(d.node, syntax.SyntaxKindTraitListsDef)
		if !ok {
			return
		}
		fns, ok := firstNode(lists, syntax.SyntaxKindTraitFnListDef)
		if !ok {
			return
		}
		for node := range nodesOf(fns, syntax.SyntaxKindFnDef) {
			if !yield(FnDef{node: node}) {
				return
			}
		}
	}
}
