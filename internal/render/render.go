// Package render writes parse results, token streams and diagnostics for
// people and for other programs.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gopkg.driplang.org/parser.go/internal/exc"
	"gopkg.driplang.org/parser.go/internal/parser"
	"gopkg.driplang.org/parser.go/internal/syntax"
)

type Format uint8

const (
	FormatText Format = 0
	FormatYAML Format = 1
	FormatJSON Format = 2
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("unknown-%d", f)
	}
}

// Extension is the file suffix used when a result is written to disk.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatJSON:
		return ".json"
	default:
		return ".tree"
	}
}

func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(v) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q (want text, yaml or json)", v)
	}
}

var (
	colorNode  = lipgloss.Color("#8B5CF6")
	colorToken = lipgloss.Color("#06B6D4")
	colorText  = lipgloss.Color("#F59E0B")
	colorRange = lipgloss.Color("#6B7280")
	colorError = lipgloss.Color("#EF4444")
)

type styles struct {
	node  lipgloss.Style
	token lipgloss.Style
	text  lipgloss.Style
	span  lipgloss.Style
	err   lipgloss.Style
}

// Renderer writes to a single destination. Colour is applied only to the
// text formats and only when enabled.
type Renderer struct {
	w      io.Writer
	color  bool
	styles styles
}

func New(w io.Writer, color bool) *Renderer {
	r := &Renderer{w: w, color: color}
	if color {
		lr := lipgloss.NewRenderer(w)
		r.styles = styles{
			node:  lr.NewStyle().Foreground(colorNode).Bold(true),
			token: lr.NewStyle().Foreground(colorToken),
			text:  lr.NewStyle().Foreground(colorText),
			span:  lr.NewStyle().Foreground(colorRange),
			err:   lr.NewStyle().Foreground(colorError).Bold(true),
		}
	}
	return r
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// Result writes a parse result in the given format. The text format matches
// Result.DebugTree followed by a newline.
func (r *Renderer) Result(uri string, result *parser.Result, format Format) error {
	switch format {
	case FormatText:
		return r.text(result)
	case FormatYAML:
		return r.yaml(uri, result)
	case FormatJSON:
		return r.json(uri, result)
	default:
		return fmt.Errorf("unknown output format %s", format)
	}
}

func (r *Renderer) text(result *parser.Result) error {
	var b strings.Builder
	r.writeElement(&b, result.Tree(), 0)
	for _, err := range result.Errors() {
		b.WriteString(r.paint(r.styles.err, err.String()))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) writeElement(b *strings.Builder, element syntax.Element, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	span := r.paint(r.styles.span, "@"+element.Range().String())
	node, ok := element.(*syntax.Node)
	if !ok {
		b.WriteString(r.paint(r.styles.token, element.Kind().String()))
		b.WriteString(span)
		b.WriteString(" ")
		b.WriteString(r.paint(r.styles.text, strconv.Quote(element.Text())))
		b.WriteString("\n")
		return
	}
	b.WriteString(r.paint(r.styles.node, node.Kind().String()))
	b.WriteString(span)
	b.WriteString("\n")
	for child := range node.Children() {
		r.writeElement(b, child, depth+1)
	}
}

// Diagnostics writes one line per exception.
func (r *Renderer) Diagnostics(excs []exc.Exception) error {
	for _, e := range excs {
		if _, err := fmt.Fprintln(r.w, r.paint(r.styles.err, e.Error())); err != nil {
			return err
		}
	}
	return nil
}
