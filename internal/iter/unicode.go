// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"unicode/utf8"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
)

// NewUnicodeString converts source text into an iterator of code points. Each
// code point carries its byte offset so that every byte of the input,
// including invalid UTF-8, is covered by exactly one code point.
func NewUnicodeString(text string) idl.Iterator[idl.CodePoint] {
	return &unicodeString{text: text}
}

type unicodeString struct {
	text   string
	offset int
}

func (self *unicodeString) Next() optional.Optional[idl.CodePoint] {
	if self.offset >= len(self.text) {
		return optional.None[idl.CodePoint]()
	}
	r, width := utf8.DecodeRuneInString(self.text[self.offset:])
	point := idl.CodePoint{Value: r, Offset: self.offset, Width: width}
	self.offset = self.offset + width
	return optional.Some(point)
}
