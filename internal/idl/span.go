package idl

import (
	"fmt"
	"sort"
)

// Range is a half-open byte range of source text.
type Range struct {
	Start int
	End   int
}

func NewRange(start int, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Location is a human oriented position. Line and Column are 1-based and
// Column counts bytes.
type Location struct {
	Line   int32
	Column int32
	Offset int64
}

// LineIndex converts byte offsets into line and column positions.
type LineIndex struct {
	starts []int
}

func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for offset := 0; offset < len(text); offset = offset + 1 {
		if text[offset] == '\n' {
			starts = append(starts, offset+1)
		}
	}
	return &LineIndex{starts: starts}
}

func (self *LineIndex) Location(offset int) Location {
	line := sort.Search(len(self.starts), func(i int) bool {
		return self.starts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Location{
		Line:   int32(line + 1),
		Column: int32(offset-self.starts[line]) + 1,
		Offset: int64(offset),
	}
}
