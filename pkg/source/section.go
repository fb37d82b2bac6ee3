package source

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Section is a plain-text excerpt of registered source around one span,
// in the shape diagnostics print:
//
//	 2 | directive a:
//	 3 |   statement x
//	   |   ^^^^^^^^^^^
//
// It shows one preceding line of context when the span is not on the
// first line, and an elision row when lines before that are skipped.
// The library renders plain text; callers decide about color.
type Section struct {
	lineNumber int
	lineText   string
	before     string
	hasBefore  bool
	lead       string
	carets     int
}

// Section builds an excerpt for span. The caret row underlines the part
// of the span on its first line; a zero-length span renders a single
// caret, which marks end-of-line positions.
func (m *SourceMap) Section(span Span) (Section, error) {
	lineSpan, err := m.LineSpan(span.Start)
	if err != nil {
		return Section{}, err
	}
	lineText, err := m.Text(lineSpan)
	if err != nil {
		return Section{}, err
	}

	s := Section{
		lineNumber: span.Start.Line,
		lineText:   lineText,
	}

	// Tabs from the line survive into the caret lead so the carets line
	// up under tabbed text; everything else becomes a space.
	byteOn := span.Start.Byte - lineSpan.Start.Byte
	var lead strings.Builder
	for _, c := range lineText[:byteOn] {
		if c == '\t' {
			lead.WriteRune('\t')
		} else {
			lead.WriteRune(' ')
		}
	}
	s.lead = lead.String()

	end := span.End()
	if lineEnd := lineSpan.End(); end > lineEnd {
		end = lineEnd
	}
	s.carets = utf8.RuneCountInString(lineText[byteOn : end-lineSpan.Start.Byte])
	if s.carets == 0 {
		s.carets = 1
	}

	if prev, ok, err := m.lineSpanBefore(span.Start); err != nil {
		return Section{}, err
	} else if ok {
		before, err := m.Text(prev)
		if err != nil {
			return Section{}, err
		}
		s.before = before
		s.hasBefore = true
	}

	return s, nil
}

// Line returns the 1-based number of the underlined line.
func (s Section) Line() int { return s.lineNumber }

// String renders the excerpt. Every row ends with a newline.
func (s Section) String() string {
	firstShown := s.lineNumber
	if s.hasBefore {
		firstShown = s.lineNumber - 1
	}
	width := len(strconv.Itoa(s.lineNumber))

	var b strings.Builder
	if firstShown > 1 {
		fmt.Fprintf(&b, " %*d | ...\n", width, firstShown-1)
	}
	if s.hasBefore {
		fmt.Fprintf(&b, " %*d | %s\n", width, s.lineNumber-1, s.before)
	}
	fmt.Fprintf(&b, " %*d | %s\n", width, s.lineNumber, s.lineText)
	fmt.Fprintf(&b, " %*s | %s%s\n", width, "", s.lead, strings.Repeat("^", s.carets))
	return b.String()
}
