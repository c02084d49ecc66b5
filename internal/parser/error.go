package parser

import (
	"fmt"
	"strings"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
)

type ParseError struct {
	Expected []idl.TokenKind
	Found    optional.Optional[idl.TokenKind]
	Range    idl.Range
	// Unsupported names a recognized construct that this parser does not
	// handle yet. Expected and Found are unused when it is set.
	Unsupported string
}

func (e ParseError) Message() string {
	if e.Unsupported != "" {
		return "unsupported " + e.Unsupported
	}
	var b strings.Builder
	if len(e.Expected) == 0 {
		b.WriteString("unexpected ")
		b.WriteString(describeFound(e.Found))
		return b.String()
	}
	b.WriteString("expected ")
	for idx, kind := range e.Expected {
		switch {
		case idx == 0:
		case idx == len(e.Expected)-1:
			b.WriteString(" or ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(kind.Describe())
	}
	if e.Found.IsPresent() {
		b.WriteString(", but found ")
		b.WriteString(e.Found.Value().Describe())
	}
	return b.String()
}

func (e ParseError) String() string {
	return fmt.Sprintf("error at %s: %s", e.Range, e.Message())
}

func describeFound(found optional.Optional[idl.TokenKind]) string {
	if !found.IsPresent() {
		return "end of input"
	}
	return found.Value().Describe()
}
