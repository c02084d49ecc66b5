package iter

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"gopkg.driplang.org/parser.go/internal/idl"
)

type elem struct {
	value int
}

func TestLookahead(t *testing.T) {
	t.Parallel()

	numValues := 10

	for x := 0; x < numValues; x = x + 1 {
		t.Run(fmt.Sprintf("LA(%d)", x), func(t *testing.T) {
			elems := make([]*elem, 0, numValues)
			for y := 0; y < numValues; y = y + 1 {
				elems = append(elems, &elem{value: y})
			}
			iter := NewSlice(elems)
			look := NewLookahead(iter, uint8(x))
			for y := 0; y < numValues; y = y + 1 {
				val := look.Next()
				require.NotNil(t, val)
				require.True(t, val.IsPresent())
				expected := y
				require.Equal(t, expected, val.Value().value)

				expectedPeek := y + x
				expectedPeekOK := expectedPeek < numValues
				peek := look.Lookahead(uint8(x))
				if expectedPeekOK {
					require.True(t, peek.IsPresent())
					require.Equal(t, expectedPeek, peek.Value().value)
				} else {
					require.False(t, peek.IsPresent())
				}
			}
		})
	}
}

func TestLookaheadFilter(t *testing.T) {
	t.Parallel()

	numValues := 10
	filter := idl.Filter[*elem](FilterFunc[*elem](func(val *elem) bool {
		return val.value%2 == 0
	}))
	for x := 0; x < numValues/2; x = x + 1 {
		t.Run(fmt.Sprintf("LA(%d)", x), func(t *testing.T) {
			elems := make([]*elem, 0, numValues)
			for y := 0; y < numValues; y = y + 1 {
				elems = append(elems, &elem{value: y})
			}
			iter := NewSlice(elems)
			iter = NewIteratorFilter(iter, filter)
			look := NewLookahead(iter, uint8(x))
			for y := 0; y < numValues/2; y = y + 2 {
				val := look.Next()
				require.NotNil(t, val)
				require.True(t, val.IsPresent())
				expected := y
				require.Equal(t, expected, val.Value().value)

				expectedPeek := y + (x * 2)
				expectedPeekOK := expectedPeek < numValues
				peek := look.Lookahead(uint8(x))
				if expectedPeekOK {
					require.True(t, peek.IsPresent())
					require.Equal(t, expectedPeek, peek.Value().value)
				} else {
					require.False(t, peek.IsPresent())
				}
			}
		})
	}
}

var benchEscapeValue *elem
var benchEscapeValuePeek *elem

func BenchmarkLookahead(b *testing.B) {
	sliceSize := 1000
	slice := make([]*elem, sliceSize)
	for x := 0; x < sliceSize; x = x + 1 {
		slice[x] = &elem{value: x}
	}
	iter := NewSlice(slice)
	look := NewLookahead(iter, 1)

	var loopEscapeValue *elem
	var loopEscapeValuePeek *elem
	b.ResetTimer()
	for n := 0; n < b.N; n = n + 1 {
		for x := 0; x < sliceSize; x = x + 1 {
			loopEscapeValue = look.Next().Value()
			loopEscapeValuePeek = look.Lookahead(1).Value()
		}
	}
	benchEscapeValue = loopEscapeValue
	benchEscapeValuePeek = loopEscapeValuePeek
}

func TestLookaheadBeforeNext(t *testing.T) {
	t.Parallel()

	look := NewLookahead(NewSlice([]int{1, 2, 3}), 2)
	require.False(t, look.Lookahead(0).IsPresent())
	require.Equal(t, 1, look.Lookahead(1).Value())
	require.Equal(t, 2, look.Lookahead(2).Value())
	require.False(t, look.Lookahead(3).IsPresent())
	require.Equal(t, 1, look.Next().Value())
	require.Equal(t, 2, look.Next().Value())
	require.Equal(t, 3, look.Next().Value())
	require.False(t, look.Next().IsPresent())
	require.False(t, look.Next().IsPresent())
}

func TestCollect(t *testing.T) {
	t.Parallel()

	odd := FilterFunc[int](func(val int) bool { return val%2 == 1 })
	require.Equal(t, []int{1, 3, 5}, Collect(NewIteratorFilter(NewSlice([]int{1, 2, 3, 4, 5}), idl.Filter[int](odd))))
	require.Empty(t, Collect(NewSlice([]int{})))
}

func TestUnicodeString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []idl.CodePoint
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "ascii",
			input: "a+",
			expected: []idl.CodePoint{
				{Value: 'a', Offset: 0, Width: 1},
				{Value: '+', Offset: 1, Width: 1},
			},
		},
		{
			name:  "multibyte",
			input: "é1",
			expected: []idl.CodePoint{
				{Value: 'é', Offset: 0, Width: 2},
				{Value: '1', Offset: 2, Width: 1},
			},
		},
		{
			name:  "invalid utf8",
			input: "\xff1",
			expected: []idl.CodePoint{
				{Value: utf8.RuneError, Offset: 0, Width: 1},
				{Value: '1', Offset: 1, Width: 1},
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Collect(NewUnicodeString(testCase.input)))
		})
	}
}
