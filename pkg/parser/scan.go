package parser

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/treelang/treelang/pkg/source"
	"github.com/treelang/treelang/pkg/tree"
)

const (
	commentByte   = ';'
	directiveByte = ':'
)

var groupDelims = [...]struct {
	open, close byte
	delim       tree.Delim
}{
	{'(', ')', tree.Parens},
	{'[', ']', tree.Brackets},
	{'{', '}', tree.Braces},
}

// isStructureRune reports whether r can never be part of a word run.
// The colon is structural only at top level; inside a group it is
// ordinary content, so words like URLs survive grouping.
func isStructureRune(r rune, inGroup bool) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case commentByte, '(', ')', '[', ']', '{', '}':
		return true
	case directiveByte:
		return !inGroup
	}
	return false
}

// scanItem consumes one item: a group when a delimiter opens here, a
// word or number otherwise. Anything left is a closing delimiter with
// no open group of its kind.
func scanItem(cur cursor, inGroup bool) (tree.Item, cursor, *ParseError) {
	for _, g := range groupDelims {
		if rest, ok := cur.skipByte(g.open); ok {
			items, rest, err := scanGroupItems(rest, g.close, cur.offset())
			if err != nil {
				return nil, cursor{}, err
			}
			group := tree.Group{Delim: g.delim, Items: items, Location: cur.offset().Span(1)}
			return group, rest, nil
		}
	}

	if text, span, rest, ok := cur.takeWhile(func(r rune) bool { return !isStructureRune(r, inGroup) }); ok {
		return classifyRun(text, span), rest, nil
	}

	r, _ := cur.peek()
	return nil, cursor{}, &ParseError{
		Kind:  ErrMismatchedDelimiter,
		Span:  cur.offset().Span(1),
		Delim: byte(r),
	}
}

// scanGroupItems consumes items until the group's closer. Reaching end
// of line first fails at the opening delimiter: groups close on the
// line they open.
func scanGroupItems(cur cursor, close byte, open source.Offset) ([]tree.Item, cursor, *ParseError) {
	var items []tree.Item
	for {
		cur = cur.skipSpaceAndComments()
		if cur.empty() {
			return nil, cursor{}, &ParseError{
				Kind:  ErrUnterminatedGroup,
				Span:  open.Span(1),
				Delim: close,
			}
		}
		if rest, ok := cur.skipByte(close); ok {
			return items, rest, nil
		}

		item, rest, err := scanItem(cur, true)
		if err != nil {
			return nil, cursor{}, err
		}
		items = append(items, item)
		cur = rest
	}
}

// classifyRun decides whether a run is a number or a word. A run is a
// number only when the whole of it matches the sign/decimal/exponent
// grammar; anything else, including hex floats, digit separators, inf
// and nan spellings, is a word. Numbers never fail a parse.
func classifyRun(text string, span source.Span) tree.Item {
	numeric, integral := scanNumeric(text)
	if !numeric {
		return tree.Word{Text: text, Location: span}
	}

	if integral {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return tree.Int{Text: text, Value: v, Location: span}
		}
		// Magnitude beyond int64 still reads as a float literal.
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return tree.Word{Text: text, Location: span}
	}
	// Exponent overflow keeps the IEEE infinity ParseFloat handed back.
	return tree.Float{Text: text, Value: v, Location: span}
}

// scanNumeric matches s against [+-]? digits ['.' digits*] ( [eE] [+-]?
// digits )?, with the fraction-only form '.5' also allowed. integral is
// true when neither a decimal point nor an exponent appears.
func scanNumeric(s string) (numeric, integral bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	fractional := false
	if i < len(s) && s[i] == '.' {
		fractional = true
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		fractional = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false, false
		}
	}

	if i != len(s) {
		return false, false
	}
	return true, !fractional
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
