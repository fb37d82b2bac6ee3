package source

// Index identifies a registered buffer within the SourceMap that issued
// it. Indices are dense, stable, and assigned in insertion order.
type Index int

// Offset is a position in a registered buffer.
type Offset struct {
	Source Index `json:"source"` // which buffer the position belongs to
	Byte   int   `json:"byte"`   // 0-based byte offset
	Line   int   `json:"line"`   // 1-based line number
}

// Span is the byte range [Start.Byte, Start.Byte+Len) - half-open interval.
type Span struct {
	Start Offset `json:"start"`
	Len   int    `json:"len"`
}

// Point is a line:column position (1-based).
type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span returns the span of length n starting at o.
func (o Offset) Span(n int) Span {
	return Span{Start: o, Len: n}
}

// End returns the byte offset just past the span.
func (s Span) End() int {
	return s.Start.Byte + s.Len
}
