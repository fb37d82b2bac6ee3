package source

// Span resolution against registered text. Offsets record only byte and
// line; everything else (line content, columns) is derived here on
// demand so spans stay small.

import (
	"fmt"
	"strings"
)

// Text returns the exact source text the span covers.
func (m *SourceMap) Text(span Span) (string, error) {
	text, err := m.buffer(span.Start.Source)
	if err != nil {
		return "", err
	}
	if span.Start.Byte < 0 || span.Len < 0 || span.End() > len(text) {
		return "", fmt.Errorf("span %d..%d is outside source %d (%d bytes)",
			span.Start.Byte, span.End(), span.Start.Source, len(text))
	}
	return text[span.Start.Byte:span.End()], nil
}

// LineSpan returns the span of the whole line containing off, without
// its trailing newline. An offset sitting on a newline byte belongs to
// the line that newline ends.
func (m *SourceMap) LineSpan(off Offset) (Span, error) {
	text, err := m.buffer(off.Source)
	if err != nil {
		return Span{}, err
	}
	if off.Byte < 0 || off.Byte > len(text) {
		return Span{}, fmt.Errorf("offset %d is outside source %d (%d bytes)",
			off.Byte, off.Source, len(text))
	}

	start := 0
	if i := strings.LastIndexByte(text[:off.Byte], '\n'); i >= 0 {
		start = i + 1
	}
	end := len(text)
	if i := strings.IndexByte(text[off.Byte:], '\n'); i >= 0 {
		end = off.Byte + i
	}

	lineStart := Offset{Source: off.Source, Byte: start, Line: off.Line}
	return lineStart.Span(end - start), nil
}

// Line returns the content of the line containing off, without its
// trailing newline.
func (m *SourceMap) Line(off Offset) (string, error) {
	span, err := m.LineSpan(off)
	if err != nil {
		return "", err
	}
	return m.Text(span)
}

// Column returns the 1-based byte column of off on its line.
func (m *SourceMap) Column(off Offset) (int, error) {
	span, err := m.LineSpan(off)
	if err != nil {
		return 0, err
	}
	return off.Byte - span.Start.Byte + 1, nil
}

// Position resolves off to a 1-based line:column point.
func (m *SourceMap) Position(off Offset) (Point, error) {
	col, err := m.Column(off)
	if err != nil {
		return Point{}, err
	}
	return Point{Line: off.Line, Column: col}, nil
}

// lineSpanBefore returns the span of the line preceding the one
// containing off, when there is one.
func (m *SourceMap) lineSpanBefore(off Offset) (Span, bool, error) {
	span, err := m.LineSpan(off)
	if err != nil {
		return Span{}, false, err
	}
	if span.Start.Byte == 0 {
		return Span{}, false, nil
	}

	prev := Offset{Source: off.Source, Byte: span.Start.Byte - 1, Line: off.Line - 1}
	prevSpan, err := m.LineSpan(prev)
	if err != nil {
		return Span{}, false, err
	}
	return prevSpan, true, nil
}

// buffer fetches the text registered at idx.
func (m *SourceMap) buffer(idx Index) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, err := m.entry(idx)
	if err != nil {
		return "", err
	}
	return e.text, nil
}
