package tree

import "github.com/treelang/treelang/pkg/source"

// Node is one parsed line. The concrete types are *Statement and
// *Directive; the set is closed, so a type switch over them is
// exhaustive.
type Node interface {
	// Pos is the position of the first character of the line's content,
	// after its indentation.
	Pos() source.Offset

	node()
}

// Statement is a line without a top-level colon. Statements carry items
// and never have children.
type Statement struct {
	Items    []Item
	Location source.Offset
}

func (s *Statement) Pos() source.Offset { return s.Location }
func (*Statement) node()                {}

// Directive is a line with a top-level colon. The items before the colon
// form the signature, the items after it the arguments, and subsequent
// deeper lines attach as ordered children.
type Directive struct {
	Signature []Item
	Arguments []Item
	Children  []Node
	Location  source.Offset
}

func (d *Directive) Pos() source.Offset { return d.Location }
func (*Directive) node()                {}
