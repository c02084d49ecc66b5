// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/lexer"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

// Parse tokenizes and parses text. It always produces a tree that covers
// every byte of the input, along with the diagnostics found on the way.
func Parse(text string) *Result {
	return ParseTokens(lexer.Tokenize(text))
}

// ParseTokens parses an already tokenized input. The tokens must be the
// gap-free output of the lexer for a single text.
func ParseTokens(tokens []idl.Token) *Result {
	events := newParser(tokens).run(root)
	green, errors := newSink(tokens, events).finish()
	return &Result{
		green:  green,
		errors: errors,
		events: len(events),
	}
}

type Result struct {
	green  *syntax.GreenNode
	errors []ParseError
	events int
}

// Tree returns a fresh positioned view of the root node.
func (r *Result) Tree() *syntax.Node {
	return syntax.NewRoot(r.green)
}

func (r *Result) Green() *syntax.GreenNode {
	return r.green
}

// Errors returns the diagnostics in source order.
func (r *Result) Errors() []ParseError {
	return r.errors
}

// EventCount is the length of the event log the tree was built from.
func (r *Result) EventCount() int {
	return r.events
}

// DebugTree renders the tree followed by one line per diagnostic.
func (r *Result) DebugTree() string {
	var b strings.Builder
	b.WriteString(syntax.Debug(r.Tree()))
	for _, err := range r.errors {
		b.WriteString("\n")
		b.WriteString(err.String())
	}
	return b.String()
}
