package render

import (
	"strconv"
	"strings"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/iter"
)

// Tokens writes one token per line as Kind@start..end "text". Trivia is
// dropped unless requested.
func (r *Renderer) Tokens(tokens []idl.Token, trivia bool) error {
	it := iter.NewSlice(tokens)
	if !trivia {
		it = iter.NewIteratorFilter(it, iter.FilterFunc[idl.Token](func(token idl.Token) bool {
			return !token.Kind.IsTrivia()
		}))
	}
	var b strings.Builder
	for token := it.Next(); token.IsPresent(); token = it.Next() {
		v := token.Value()
		b.WriteString(r.paint(r.styles.token, v.Kind.String()))
		b.WriteString(r.paint(r.styles.span, "@"+v.Range.String()))
		b.WriteString(" ")
		b.WriteString(r.paint(r.styles.text, strconv.Quote(v.Text)))
		b.WriteString("\n")
	}
	_, err := r.w.Write([]byte(b.String()))
	return err
}
