package iter

import (
	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
)

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) idl.Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next() optional.Optional[T] {
	if it.offset+1 >= len(it.slice) {
		it.offset = len(it.slice)
		return optional.None[T]()
	}
	it.offset = it.offset + 1
	return optional.Some(it.slice[it.offset])
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it idl.Iterator[T], f idl.Filter[T]) idl.Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   idl.Iterator[T]
	filter idl.Filter[T]
}

func (it *iteratorFilter[T]) Next() optional.Optional[T] {
	for {
		v := it.iter.Next()
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(v.Value()) {
			return v
		}
	}
}

// NewLookahead wraps an iterator in a Lookahead implementation to enable
// peeking at the next n values.
func NewLookahead[T any](it idl.Iterator[T], n uint8) idl.Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter  idl.Iterator[T]
	n     uint8
	peeks []optional.Optional[T]
}

// init fills the window. Slot zero holds the current value, which is empty
// until the first call to Next.
func (look *lookahead[T]) init() {
	if look.peeks == nil {
		look.peeks = make([]optional.Optional[T], look.n+1)
		for x := 1; x <= int(look.n); x = x + 1 {
			look.peeks[x] = look.iter.Next()
		}
	}
}

func (look *lookahead[T]) Next() optional.Optional[T] {
	look.init()
	copy(look.peeks, look.peeks[1:])
	look.peeks[len(look.peeks)-1] = look.iter.Next()
	return look.peeks[0]
}

func (look *lookahead[T]) Lookahead(n uint8) optional.Optional[T] {
	look.init()
	if n > look.n {
		return optional.None[T]()
	}
	return look.peeks[n]
}

// Collect drains an iterator into a slice.
func Collect[T any](it idl.Iterator[T]) []T {
	var result []T
	for v := it.Next(); v.IsPresent(); v = it.Next() {
		result = append(result, v.Value())
	}
	return result
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(val T) bool

func (f FilterFunc[T]) Keep(val T) bool {
	return f(val)
}
