package syntax

import (
	"iter"
	"strings"

	"gopkg.driplang.org/parser.go/internal/idl"
)

// GreenElement is an immutable, position independent tree element. Equal
// tokens are shared between trees built by the same Builder.
type GreenElement interface {
	Kind() SyntaxKind
	Width() int
}

type GreenToken struct {
	kind SyntaxKind
	text string
}

func (t *GreenToken) Kind() SyntaxKind { return t.kind }
func (t *GreenToken) Width() int { return len(t.text) }
func (t *GreenToken) Text() string { return t.text }

type GreenNode struct {
	kind     SyntaxKind
	width    int
	children []GreenElement
}

func (n *GreenNode) Kind() SyntaxKind { return n.kind }
func (n *GreenNode) Width() int { return n.width }

// Children returns the child elements. The slice must not be modified.
func (n *GreenNode) Children() []GreenElement { return n.children }

// Element is a positioned view of either a Node or a Token.
type Element interface {
	Kind() SyntaxKind
	Range() idl.Range
	Text() string
	Parent() *Node
}

var (
	_ Element = (*Node)(nil)
	_ Element = (*Token)(nil)
)

// Node is a positioned view over a GreenNode. Views are created on demand
// while walking and are cheap to discard.
type Node struct {
	green  *GreenNode
	offset int
	parent *Node
}

// NewRoot positions a green tree at offset zero.
func NewRoot(green *GreenNode) *Node {
	return &Node{green: green}
}

func (n *Node) Kind() SyntaxKind { return n.green.kind }
func (n *Node) Green() *GreenNode { return n.green }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) Range() idl.Range { return idl.NewRange(n.offset, n.offset+n.green.width) }

// Text reassembles the source text covered by the node.
func (n *Node) Text() string {
	var b strings.Builder
	b.Grow(n.green.width)
	writeText(&b, n.green)
	return b.String()
}

func writeText(b *strings.Builder, green *GreenNode) {
	for _, child := range green.children {
		switch c := child.(type) {
		case *GreenToken:
			b.WriteString(c.text)
		case *GreenNode:
			writeText(b, c)
		}
	}
}

// Children yields the direct children of the node in source order.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := n.offset
		for _, child := range n.green.children {
			var element Element
			switch c := child.(type) {
			case *GreenToken:
				element = &Token{green: c, offset: offset, parent: n}
			case *GreenNode:
				element = &Node{green: c, offset: offset, parent: n}
			}
			offset = offset + child.Width()
			if !yield(element) {
				return
			}
		}
	}
}

func (n *Node) ChildNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for child := range n.Children() {
			if node, ok := child.(*Node); ok && !yield(node) {
				return
			}
		}
	}
}

func (n *Node) ChildTokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for child := range n.Children() {
			if token, ok := child.(*Token); ok && !yield(token) {
				return
			}
		}
	}
}

// Descendants walks the subtree below n in preorder.
func (n *Node) Descendants() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		n.descend(yield)
	}
}

func (n *Node) descend(yield func(Element) bool) bool {
	for child := range n.Children() {
		if !yield(child) {
			return false
		}
		if node, ok := child.(*Node); ok && !node.descend(yield) {
			return false
		}
	}
	return true
}

// Tokens yields every token of the subtree in source order.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for element := range n.Descendants() {
			if token, ok := element.(*Token); ok && !yield(token) {
				return
			}
		}
	}
}

type Token struct {
	green  *GreenToken
	offset int
	parent *Node
}

func (t *Token) Kind() SyntaxKind { return t.green.kind }
func (t *Token) Green() *GreenToken { return t.green }
func (t *Token) Parent() *Node { return t.parent }
func (t *Token) Text() string { return t.green.text }
func (t *Token) Range() idl.Range { return idl.NewRange(t.offset, t.offset+len(t.green.text)) }
