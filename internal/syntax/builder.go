package syntax

import "fmt"

type tokenKey struct {
	kind SyntaxKind
	text string
}

// Builder assembles a green tree from a flat sequence of start, token and
// finish calls. Misuse is a programming error and panics.
type Builder struct {
	parents  []builderFrame
	children []GreenElement
	tokens   map[tokenKey]*GreenToken
}

type builderFrame struct {
	kind  SyntaxKind
	first int
}

func NewBuilder() *Builder {
	return &Builder{tokens: make(map[tokenKey]*GreenToken)}
}

func (b *Builder) StartNode(kind SyntaxKind) {
	if !kind.IsNode() {
		panic(fmt.Sprintf("syntax: %s is not a node kind", kind))
	}
	b.parents = append(b.parents, builderFrame{kind: kind, first: len(b.children)})
}

func (b *Builder) Token(kind SyntaxKind, text string) {
	if !kind.IsToken() {
		panic(fmt.Sprintf("syntax: %s is not a token kind", kind))
	}
	if len(b.parents) == 0 {
		panic("syntax: token added outside of any node")
	}
	key := tokenKey{kind: kind, text: text}
	token, ok := b.tokens[key]
	if !ok {
		token = &GreenToken{kind: kind, text: text}
		b.tokens[key] = token
	}
	b.children = append(b.children, token)
}

func (b *Builder) FinishNode() {
	if len(b.parents) == 0 {
		panic("syntax: finish without a matching start")
	}
	frame := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := make([]GreenElement, len(b.children)-frame.first)
	copy(children, b.children[frame.first:])
	width := 0
	for _, child := range children {
		width = width + child.Width()
	}
	b.children = append(b.children[:frame.first], &GreenNode{
		kind:     frame.kind,
		width:    width,
		children: children,
	})
}

// Finish returns the single completed root node.
func (b *Builder) Finish() *GreenNode {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("syntax: %d nodes left open", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("syntax: expected one root, found %d elements", len(b.children)))
	}
	root, ok := b.children[0].(*GreenNode)
	if !ok {
		panic("syntax: root element is a token")
	}
	return root
}
