package repl

import (
	"fmt"
	"io"
	"strings"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/lexer"
	"gopkg.driplang.org/parser.go/internal/parser"
	"gopkg.driplang.org/parser.go/internal/render"
)

const helpText = `:tree           print the syntax tree of each input (default)
:tokens         print the token stream of each input
:format NAME    switch the tree format to text, yaml or json
:help           show this message
:quit           leave the session`

type Mode uint8

const (
	ModeTree   Mode = 0
	ModeTokens Mode = 1
)

// Session evaluates REPL input independently of the terminal. Input with
// unbalanced brackets is buffered until the brackets close.
type Session struct {
	out      io.Writer
	renderer *render.Renderer
	mode     Mode
	format   render.Format
	buffer   strings.Builder
}

func NewSession(out io.Writer, color bool) *Session {
	return &Session{
		out:      out,
		renderer: render.New(out, color),
	}
}

func (s *Session) Pending() bool {
	return s.buffer.Len() > 0
}

// Reset drops any buffered input.
func (s *Session) Reset() {
	s.buffer.Reset()
}

// Feed handles one line of input and reports whether the session should
// end. The complete input, once available, is returned for the history.
func (s *Session) Feed(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !s.Pending() {
		if trimmed == "" {
			return "", false
		}
		if strings.HasPrefix(trimmed, ":") {
			return trimmed, s.command(trimmed)
		}
	}
	if s.Pending() {
		s.buffer.WriteString("\n")
	}
	s.buffer.WriteString(line)
	input := s.buffer.String()
	tokens := lexer.Tokenize(input)
	if needsMoreInput(tokens) {
		return "", false
	}
	s.buffer.Reset()
	s.eval(tokens)
	return input, false
}

func (s *Session) eval(tokens []idl.Token) {
	var err error
	switch s.mode {
	case ModeTokens:
		err = s.renderer.Tokens(tokens, false)
	default:
		err = s.renderer.Result("", parser.ParseTokens(tokens), s.format)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *Session) command(input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":tree":
		s.mode = ModeTree
	case ":tokens":
		s.mode = ModeTokens
	case ":format":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: :format text|yaml|json")
			return false
		}
		format, err := render.ParseFormat(fields[1])
		if err != nil {
			fmt.Fprintln(s.out, err.Error())
			return false
		}
		s.format = format
		s.mode = ModeTree
	case ":help":
		fmt.Fprintln(s.out, helpText)
	default:
		fmt.Fprintf(s.out, "unknown command %s, try :help\n", fields[0])
	}
	return false
}

// needsMoreInput reports whether the input leaves a curly or round bracket
// open.
func needsMoreInput(tokens []idl.Token) bool {
	depth := 0
	for _, token := range tokens {
		switch token.Kind {
		case idl.TokenKindLCurlyBracket, idl.TokenKindLRoundBracket:
			depth = depth + 1
		case idl.TokenKindRCurlyBracket, idl.TokenKindRRoundBracket:
			depth = depth - 1
		}
	}
	return depth > 0
}
