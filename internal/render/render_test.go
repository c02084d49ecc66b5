package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/lexer"
	"gopkg.driplang.org/parser.go/internal/parser"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected Format
		fails    bool
	}{
		{input: "", expected: FormatText},
		{input: "text", expected: FormatText},
		{input: "YAML", expected: FormatYAML},
		{input: "yml", expected: FormatYAML},
		{input: "json", expected: FormatJSON},
		{input: "xml", fails: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseFormat(testCase.input)
		if testCase.fails {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, testCase.expected, actual)
		require.Equal(t, actual, must(ParseFormat(actual.String())))
	}
}

func TestFormatExtension(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".tree", FormatText.Extension())
	require.Equal(t, ".yaml", FormatYAML.Extension())
	require.Equal(t, ".json", FormatJSON.Extension())
}

func must(f Format, err error) Format {
	if err != nil {
		panic(err)
	}
	return f
}

func TestTextMatchesDebugTree(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "1 + 2", "a :: (", "S :: struct { a: }"} {
		result := parser.Parse(input)
		var out bytes.Buffer
		require.NoError(t, New(&out, false).Result("", result, FormatText))
		require.Equal(t, result.DebugTree()+"\n", out.String())
	}
}

func TestTextWithColor(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, New(&out, true).Result("", parser.Parse("1 +"), FormatText))
	require.Contains(t, out.String(), "InfixExpr")
	require.Contains(t, out.String(), "expected number")
}

func TestYAML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, New(&out, false).Result("mem://a.drip", parser.Parse("1+"), FormatYAML))

	var doc Document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Equal(t, "mem://a.drip", doc.URI)
	require.Equal(t, "Root", doc.Tree.Kind)
	require.Equal(t, "0..2", doc.Tree.Span)
	require.Nil(t, doc.Tree.Text)
	require.Len(t, doc.Tree.Children, 1)
	infix := doc.Tree.Children[0]
	require.Equal(t, "InfixExpr", infix.Kind)
	require.Len(t, infix.Children, 2)
	plus := infix.Children[1]
	require.Equal(t, "Plus", plus.Kind)
	require.NotNil(t, plus.Text)
	require.Equal(t, "+", *plus.Text)
	require.Equal(t, []Diagnostic{{Span: "1..2", Message: "expected number, identifier, '-' or '('"}}, doc.Errors)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, New(&out, false).Result("", parser.Parse("x"), FormatJSON))

	var value structpb.Value
	require.NoError(t, protojson.Unmarshal(out.Bytes(), &value))
	expected := map[string]any{
		"tree": map[string]any{
			"kind": "Root",
			"span": "0..1",
			"children": []any{
				map[string]any{
					"kind": "VariableRef",
					"span": "0..1",
					"children": []any{
						map[string]any{"kind": "Ident", "span": "0..1", "text": "x"},
					},
				},
			},
		},
	}
	require.Equal(t, expected, value.AsInterface())
}

func TestInvalidUTF8(t *testing.T) {
	t.Parallel()

	result := parser.Parse("x := \xff")
	for _, format := range []Format{FormatText, FormatYAML, FormatJSON} {
		var out bytes.Buffer
		require.NoError(t, New(&out, false).Result("a.drip", result, format), format.String())
		require.NotEmpty(t, out.String(), format.String())
	}

	var out bytes.Buffer
	require.NoError(t, New(&out, false).Result("a.drip", result, FormatJSON))
	var value structpb.Value
	require.NoError(t, protojson.Unmarshal(out.Bytes(), &value))
	invalid := findKind(value.AsInterface().(map[string]any)["tree"], "Invalid")
	require.NotNil(t, invalid)
	require.Equal(t, "5..6", invalid["span"])
	require.Equal(t, "\uFFFD", invalid["text"])
}

// findKind returns the first element of the given kind in a decoded tree.
func findKind(element any, kind string) map[string]any {
	m, ok := element.(map[string]any)
	if !ok {
		return nil
	}
	if m["kind"] == kind {
		return m
	}
	children, _ := m["children"].([]any)
	for _, child := range children {
		if found := findKind(child, kind); found != nil {
			return found
		}
	}
	return nil
}

func TestTokens(t *testing.T) {
	t.Parallel()

	tokens := lexer.Tokenize("a := 1 // one")

	var out bytes.Buffer
	require.NoError(t, New(&out, false).Tokens(tokens, false))
	require.Equal(t, "Ident@0..1 \"a\"\nVariableKw@2..4 \":=\"\nNumber@5..6 \"1\"\n", out.String())

	out.Reset()
	require.NoError(t, New(&out, false).Tokens(tokens, true))
	var expected bytes.Buffer
	for _, token := range tokens {
		expected.WriteString(token.String())
		expected.WriteString("\n")
	}
	require.Equal(t, expected.String(), out.String())
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	excs := []exc.Exception{
		exc.New(exc.Location{URI: "/a.drip", Location: idl.Location{Line: 1, Column: 3}}, exc.CodeUnexpectedToken, "expected ')'"),
	}
	var out bytes.Buffer
	require.NoError(t, New(&out, false).Diagnostics(excs))
	require.Equal(t, "/a.drip:1:3 -- D0100: expected ')'\n", out.String())
}
