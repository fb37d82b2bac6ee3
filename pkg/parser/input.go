package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/treelang/treelang/pkg/source"
)

// cursor is an immutable position in an input's text. Every operation
// returns a new cursor; the offset tracks bytes and line numbers so
// spans fall out of the scan for free.
type cursor struct {
	text string
	off  source.Offset
}

func newCursor(in source.Input) cursor {
	return cursor{
		text: in.Text(),
		off:  source.Offset{Source: in.Index(), Byte: 0, Line: 1},
	}
}

func (c cursor) offset() source.Offset { return c.off }

func (c cursor) empty() bool { return c.text == "" }

// advance moves past the first n bytes, counting line breaks.
func (c cursor) advance(n int) cursor {
	skipped := c.text[:n]
	return cursor{
		text: c.text[n:],
		off: source.Offset{
			Source: c.off.Source,
			Byte:   c.off.Byte + n,
			Line:   c.off.Line + strings.Count(skipped, "\n"),
		},
	}
}

func (c cursor) toEnd() cursor {
	return c.advance(len(c.text))
}

// truncate bounds the cursor to its first n bytes.
func (c cursor) truncate(n int) cursor {
	return cursor{text: c.text[:n], off: c.off}
}

// splitLine cuts the cursor at the next line break. The first result is
// the current line, the second the rest; more is false once the last
// line has been handed out.
func (c cursor) splitLine() (line, rest cursor, more bool) {
	if i := strings.IndexByte(c.text, '\n'); i >= 0 {
		return c.truncate(i), c.advance(i + 1), true
	}
	return c, c.toEnd(), false
}

// peek decodes the next rune.
func (c cursor) peek() (rune, bool) {
	if c.text == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.text)
	return r, true
}

// skipByte moves past b when it is next.
func (c cursor) skipByte(b byte) (cursor, bool) {
	if c.text == "" || c.text[0] != b {
		return c, false
	}
	return c.advance(1), true
}

// skipPrefix moves past prefix when the text starts with it.
func (c cursor) skipPrefix(prefix string) (cursor, bool) {
	if prefix == "" || !strings.HasPrefix(c.text, prefix) {
		return c, false
	}
	return c.advance(len(prefix)), true
}

// skipSpaceAndComments moves past leading whitespace; a comment
// introducer after it consumes the rest of the cursor.
func (c cursor) skipSpaceAndComments() cursor {
	trimmed := strings.TrimLeftFunc(c.text, unicode.IsSpace)
	if strings.HasPrefix(trimmed, string(commentByte)) {
		return c.toEnd()
	}
	return c.advance(len(c.text) - len(trimmed))
}

// leadingSpaceSpan measures the whitespace run at the cursor, if any.
func (c cursor) leadingSpaceSpan() (source.Span, bool) {
	trimmed := strings.TrimLeftFunc(c.text, unicode.IsSpace)
	n := len(c.text) - len(trimmed)
	if n == 0 {
		return source.Span{}, false
	}
	return c.off.Span(n), true
}

// takeWhile consumes the maximal run of runes satisfying pred. It fails
// when the run would be empty.
func (c cursor) takeWhile(pred func(rune) bool) (text string, span source.Span, rest cursor, ok bool) {
	n := strings.IndexFunc(c.text, func(r rune) bool { return !pred(r) })
	if n < 0 {
		n = len(c.text)
	}
	if n == 0 {
		return "", source.Span{}, c, false
	}
	return c.text[:n], c.off.Span(n), c.advance(n), true
}
