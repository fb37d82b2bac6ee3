package parser

import (
	"fmt"
	"strings"
)

// Indent is the indentation unit for one parse. One unit equals one
// depth level, and the unit is fixed for the whole document.
type Indent struct {
	unit string
}

// Spaces returns an indent of n spaces per level. n below one fails
// with ErrInvalidIndentUnit: a zero-width unit cannot measure depth.
func Spaces(n int) (Indent, error) {
	if n < 1 {
		return Indent{}, &ParseError{Kind: ErrInvalidIndentUnit}
	}
	return Indent{unit: strings.Repeat(" ", n)}, nil
}

// Tabs returns an indent of one tab per level.
func Tabs() Indent {
	return Indent{unit: "\t"}
}

// Width returns the byte width of one unit.
func (ind Indent) Width() int { return len(ind.unit) }

func (ind Indent) String() string {
	if ind.unit == "\t" {
		return "tabs"
	}
	return fmt.Sprintf("spaces(%d)", len(ind.unit))
}

// ParseIndent reads an indent spelled the way String renders it:
// "tabs" or "spaces(N)".
func ParseIndent(s string) (Indent, error) {
	if s == "tabs" {
		return Tabs(), nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "spaces(%d)", &n); err != nil {
		return Indent{}, fmt.Errorf("unknown indent %q", s)
	}
	return Spaces(n)
}

// extract measures a line's depth by stripping whole indent units, then
// rejects any leftover leading whitespace: a stray space, a tab under a
// spaces unit, or spaces under a tabs unit all read as misalignment.
func (ind Indent) extract(line cursor) (int, cursor, *ParseError) {
	depth := 0
	for {
		rest, ok := line.skipPrefix(ind.unit)
		if !ok {
			break
		}
		depth++
		line = rest
	}
	if span, ok := line.leadingSpaceSpan(); ok {
		return 0, cursor{}, &ParseError{Kind: ErrMisalignedIndentation, Span: span}
	}
	return depth, line, nil
}
