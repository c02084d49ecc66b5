// Package repl implements the interactive drip prompt.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"gopkg.driplang.org/parser.go/internal/lexer"
)

const continuationPrompt = "… "

type Options struct {
	Prompt      string
	HistoryFile string
	Color       bool
}

// Start runs the prompt until end of input or :quit. Ctrl+C clears the
// current input instead of leaving.
func Start(out io.Writer, options Options) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	if options.HistoryFile != "" {
		if f, err := os.Open(options.HistoryFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(options.HistoryFile); err == nil {
				_, _ = line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	session := NewSession(out, options.Color)
	for {
		prompt := options.Prompt
		if session.Pending() {
			prompt = continuationPrompt
		}
		input, err := line.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			session.Reset()
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case err != nil:
			return err
		}
		entry, quit := session.Feed(input)
		if entry != "" {
			line.AppendHistory(entry)
		}
		if quit {
			return nil
		}
	}
}

var commands = []string{":tree", ":tokens", ":format", ":help", ":quit"}

// complete offers commands and keywords that extend the last word of the
// line.
func complete(line string) []string {
	start := strings.LastIndexAny(line, " \t(){}") + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}
	candidates := lexer.Keywords()
	if start == 0 && strings.HasPrefix(word, ":") {
		candidates = commands
	}
	var result []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, word) {
			result = append(result, prefix+candidate)
		}
	}
	return result
}
