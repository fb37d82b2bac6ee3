// Package tree defines the parsed representation of an indentation-
// structured document: a forest of statements and directives whose line
// content is a sequence of words, numbers, and delimiter groups.
package tree

import (
	"strings"

	"github.com/treelang/treelang/pkg/source"
)

// Item is one element of a line's content. The concrete types are Word,
// Int, Float, and Group; the set is closed, so a type switch over them
// is exhaustive.
type Item interface {
	// Span covers the item's source text. For groups it covers the
	// opening delimiter.
	Span() source.Span

	item()
}

// Word is a maximal run of non-structural characters that does not parse
// as a number.
type Word struct {
	Text     string
	Location source.Span
}

func (w Word) Span() source.Span { return w.Location }
func (w Word) String() string    { return w.Text }
func (Word) item()               {}

// Int is a run that parses fully as a base-10 integer. Text keeps the
// literal exactly as written.
type Int struct {
	Text     string
	Value    int64
	Location source.Span
}

func (i Int) Span() source.Span { return i.Location }
func (i Int) String() string    { return i.Text }
func (Int) item()               {}

// Float is a run that parses fully under the sign/decimal/exponent
// grammar but not as an integer. Text keeps the literal exactly as
// written.
type Float struct {
	Text     string
	Value    float64
	Location source.Span
}

func (f Float) Span() source.Span { return f.Location }
func (f Float) String() string    { return f.Text }
func (Float) item()               {}

// Group is a delimited sequence of nested items. A group opens and
// closes on the same line.
type Group struct {
	Delim    Delim
	Items    []Item
	Location source.Span
}

func (g Group) Span() source.Span { return g.Location }
func (Group) item()               {}

// String renders the group with single spaces between items. It is a
// debug form, not a reconstruction of the source.
func (g Group) String() string {
	var b strings.Builder
	b.WriteByte(g.Delim.Open())
	for i, it := range g.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeItem(&b, it)
	}
	b.WriteByte(g.Delim.Close())
	return b.String()
}

func writeItem(b *strings.Builder, it Item) {
	switch v := it.(type) {
	case Word:
		b.WriteString(v.Text)
	case Int:
		b.WriteString(v.Text)
	case Float:
		b.WriteString(v.Text)
	case Group:
		b.WriteString(v.String())
	}
}

// Delim is the delimiter kind of a Group.
type Delim int

const (
	Parens Delim = iota
	Brackets
	Braces
)

// Open returns the opening delimiter character.
func (d Delim) Open() byte {
	switch d {
	case Brackets:
		return '['
	case Braces:
		return '{'
	default:
		return '('
	}
}

// Close returns the closing delimiter character.
func (d Delim) Close() byte {
	switch d {
	case Brackets:
		return ']'
	case Braces:
		return '}'
	default:
		return ')'
	}
}

func (d Delim) String() string {
	switch d {
	case Brackets:
		return "brackets"
	case Braces:
		return "braces"
	default:
		return "parens"
	}
}
