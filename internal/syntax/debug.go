package syntax

import (
	"strconv"
	"strings"
)

// Debug renders the subtree one element per line as Kind@start..end, with
// tokens followed by their quoted text and two spaces of indentation per
// level. The result has no trailing newline.
func Debug(n *Node) string {
	var b strings.Builder
	writeDebug(&b, n, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeDebug(b *strings.Builder, element Element, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(element.Kind().String())
	b.WriteString("@")
	b.WriteString(element.Range().String())
	node, ok := element.(*Node)
	if !ok {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(element.Text()))
		b.WriteString("\n")
		return
	}
	b.WriteString("\n")
	for child := range node.Children() {
		writeDebug(b, child, depth+1)
	}
}
