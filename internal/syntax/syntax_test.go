package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.driplang.org/parser.go/internal/idl"
)

func TestFromTokenIsTotalAndInjective(t *testing.T) {
	t.Parallel()

	seen := make(map[SyntaxKind]idl.TokenKind)
	for _, kind := range idl.TokenKinds() {
		mapped := FromToken(kind)
		prev, dup := seen[mapped]
		require.False(t, dup, "%s and %s map to the same syntax kind", kind, prev)
		seen[mapped] = kind

		require.True(t, mapped.IsToken())
		require.False(t, mapped.IsNode())
		require.Equal(t, kind.String(), mapped.String())
		require.Equal(t, kind.IsTrivia(), mapped.IsTrivia())
		back := mapped.Token()
		require.True(t, back.IsPresent())
		require.Equal(t, kind, back.Value())
	}
	require.Len(t, seen, idl.TokenKindCount)

	for _, kind := range NodeKinds() {
		_, clash := seen[kind]
		require.False(t, clash, "node kind %s overlaps a token kind", kind)
		require.False(t, kind.Token().IsPresent())
		require.NotEmpty(t, kind.String())
	}
}

func TestNamedTokenKinds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		syntax SyntaxKind
		token  idl.TokenKind
	}{
		{SyntaxKindInvalid, idl.TokenKindInvalid},
		{SyntaxKindNumber, idl.TokenKindNumber},
		{SyntaxKindLCurlyBracket, idl.TokenKindLCurlyBracket},
		{SyntaxKindRCurlyBracket, idl.TokenKindRCurlyBracket},
		{SyntaxKindLRoundBracket, idl.TokenKindLRoundBracket},
		{SyntaxKindRRoundBracket, idl.TokenKindRRoundBracket},
		{SyntaxKindLAngledBracket, idl.TokenKindLAngledBracket},
		{SyntaxKindRAngledBracket, idl.TokenKindRAngledBracket},
		{SyntaxKindLSquareBracket, idl.TokenKindLSquareBracket},
		{SyntaxKindRSquareBracket, idl.TokenKindRSquareBracket},
	}
	for _, testCase := range testCases {
		require.Equal(t, testCase.syntax, FromToken(testCase.token))
		require.Equal(t, testCase.token.String(), testCase.syntax.String())
	}
}

func buildSample() *Node {
	b := NewBuilder()
	b.StartNode(SyntaxKindRoot)
	b.StartNode(SyntaxKindInfixExpr)
	b.StartNode(SyntaxKindLiteral)
	b.Token(SyntaxKindNumber, "1")
	b.Token(SyntaxKindWhitespace, " ")
	b.FinishNode()
	b.Token(SyntaxKindPlus, "+")
	b.Token(SyntaxKindWhitespace, " ")
	b.StartNode(SyntaxKindLiteral)
	b.Token(SyntaxKindNumber, "1")
	b.FinishNode()
	b.FinishNode()
	b.Token(SyntaxKindWhitespace, "\n")
	b.FinishNode()
	return NewRoot(b.Finish())
}

func TestBuilderAndDebug(t *testing.T) {
	t.Parallel()

	root := buildSample()
	expected := `Root@0..6
  InfixExpr@0..5
    Literal@0..2
      Number@0..1 "1"
      Whitespace@1..2 " "
    Plus@2..3 "+"
    Whitespace@3..4 " "
    Literal@4..5
      Number@4..5 "1"
  Whitespace@5..6 "\n"`
	require.Equal(t, expected, Debug(root))
	require.Equal(t, "1 + 1\n", root.Text())
	require.Equal(t, idl.NewRange(0, 6), root.Range())
}

func TestTreeNavigation(t *testing.T) {
	t.Parallel()

	root := buildSample()
	var nodes []*Node
	for node := range root.ChildNodes() {
		nodes = append(nodes, node)
	}
	require.Len(t, nodes, 1)
	infix := nodes[0]
	require.Equal(t, SyntaxKindInfixExpr, infix.Kind())
	require.Same(t, root, infix.Parent())

	var tokens []*Token
	for token := range infix.ChildTokens() {
		tokens = append(tokens, token)
	}
	require.Len(t, tokens, 2)
	require.Equal(t, SyntaxKindPlus, tokens[0].Kind())
	require.Equal(t, idl.NewRange(2, 3), tokens[0].Range())

	var numbers []*Token
	for token := range root.Tokens() {
		if token.Kind() == SyntaxKindNumber {
			numbers = append(numbers, token)
		}
	}
	require.Len(t, numbers, 2)
	require.Same(t, numbers[0].Green(), numbers[1].Green(), "equal tokens are interned")
	require.Equal(t, idl.NewRange(4, 5), numbers[1].Range())

	count := 0
	for range root.Descendants() {
		count = count + 1
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestBuilderMisuse(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		b := NewBuilder()
		b.FinishNode()
	})
	require.Panics(t, func() {
		b := NewBuilder()
		b.Token(SyntaxKindNumber, "1")
	})
	require.Panics(t, func() {
		b := NewBuilder()
		b.StartNode(SyntaxKindRoot)
		_ = b.Finish()
	})
	require.Panics(t, func() {
		b := NewBuilder()
		b.StartNode(SyntaxKindNumber)
	})
}
