// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"context"
	"fmt"
	"io"

	"gopkg.driplang.org/parser.go/internal/optional"
)

// CodePoint is one decoded rune of source text along with the byte span it
// was decoded from. Invalid UTF-8 decodes to utf8.RuneError with a width of 1.
type CodePoint struct {
	Value  rune
	Offset int
	Width  int
}

func (c CodePoint) End() int {
	return c.Offset + c.Width
}

// Iterator produces values until it returns an empty optional. Iterators in
// this module operate on in-memory data and never block.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

// Lookahead is an Iterator that can also peek at upcoming values.
// Lookahead(0) is the value most recently returned by Next and Lookahead(n)
// is the value that the n'th following call to Next will return.
type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(n uint8) optional.Optional[T]
}

type Filter[T any] interface {
	Keep(v T) bool
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindDrip
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindDrip:
		return "drip"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (io.ReadCloser, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}
