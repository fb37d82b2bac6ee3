package tree

import "strings"

// Describe renders one node's line content in the debug form used by
// outlines: "statement" or "directive" followed by the items, with the
// directive colon between signature and arguments.
func Describe(n Node) string {
	var b strings.Builder
	switch v := n.(type) {
	case *Statement:
		b.WriteString("statement")
		for _, it := range v.Items {
			b.WriteByte(' ')
			writeItem(&b, it)
		}
	case *Directive:
		b.WriteString("directive")
		for _, it := range v.Signature {
			b.WriteByte(' ')
			writeItem(&b, it)
		}
		b.WriteByte(':')
		for _, it := range v.Arguments {
			b.WriteByte(' ')
			writeItem(&b, it)
		}
	}
	return b.String()
}

// Outline renders the whole tree as an indented listing, one node per
// line, two spaces per depth level. Like Describe it is a debug form,
// not a reconstruction of the source.
func (t *Tree) Outline() string {
	var b strings.Builder
	t.Walk(func(n Node, depth int) bool {
		for i := 0; i < depth; i++ {
			b.WriteString("  ")
		}
		b.WriteString(Describe(n))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
