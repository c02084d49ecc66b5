package render

import (
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"gopkg.driplang.org/parser.go/internal/parser"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

// Document is the machine readable form of a parse result. The YAML and
// JSON outputs share this shape.
type Document struct {
	URI    string       `yaml:"uri,omitempty"`
	Tree   Element      `yaml:"tree"`
	Errors []Diagnostic `yaml:"errors,omitempty"`
}

type Element struct {
	Kind     string    `yaml:"kind"`
	Span     string    `yaml:"span"`
	Text     *string   `yaml:"text,omitempty"`
	Children []Element `yaml:"children,omitempty"`
}

type Diagnostic struct {
	Span    string `yaml:"span"`
	Message string `yaml:"message"`
}

func NewDocument(uri string, result *parser.Result) Document {
	doc := Document{
		URI:  uri,
		Tree: newElement(result.Tree()),
	}
	for _, err := range result.Errors() {
		doc.Errors = append(doc.Errors, Diagnostic{
			Span:    err.Range.String(),
			Message: err.Message(),
		})
	}
	return doc
}

func newElement(element syntax.Element) Element {
	result := Element{
		Kind: element.Kind().String(),
		Span: element.Range().String(),
	}
	node, ok := element.(*syntax.Node)
	if !ok {
		text := element.Text()
		result.Text = &text
		return result
	}
	for child := range node.Children() {
		result.Children = append(result.Children, newElement(child))
	}
	return result
}

func (r *Renderer) yaml(uri string, result *parser.Result) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(uri, result)); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) json(uri string, result *parser.Result) error {
	value, err := structpb.NewValue(NewDocument(uri, result).asMap())
	if err != nil {
		return err
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(value)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = r.w.Write(b)
	return err
}

// validUTF8 replaces byte sequences that protobuf strings cannot hold.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func (d Document) asMap() map[string]any {
	result := map[string]any{
		"tree": d.Tree.asMap(),
	}
	if d.URI != "" {
		result["uri"] = validUTF8(d.URI)
	}
	if len(d.Errors) > 0 {
		errors := make([]any, 0, len(d.Errors))
		for _, e := range d.Errors {
			errors = append(errors, map[string]any{
				"span":    e.Span,
				"message": validUTF8(e.Message),
			})
		}
		result["errors"] = errors
	}
	return result
}

func (e Element) asMap() map[string]any {
	result := map[string]any{
		"kind": e.Kind,
		"span": e.Span,
	}
	if e.Text != nil {
		result["text"] = validUTF8(*e.Text)
	}
	if len(e.Children) > 0 {
		children := make([]any, 0, len(e.Children))
		for _, child := range e.Children {
			children = append(children, child.asMap())
		}
		result["children"] = children
	}
	return result
}
