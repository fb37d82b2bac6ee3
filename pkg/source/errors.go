package source

import "fmt"

// DuplicateOriginError reports an Insert whose origin already owns a
// buffer. It carries the index of the existing buffer so callers that
// consider re-registration benign can keep using it.
type DuplicateOriginError struct {
	Origin   Origin
	Existing Index
}

func (e *DuplicateOriginError) Error() string {
	return fmt.Sprintf("origin %s is already registered as source %d", e.Origin, e.Existing)
}

// MarginError reports a non-blank line without a margin marker during
// Normalize. Line is 1-based within the literal as passed in, before any
// blank-line trimming.
type MarginError struct {
	Line int
	Text string
}

func (e *MarginError) Error() string {
	return fmt.Sprintf("line %d has no margin marker: %q", e.Line, e.Text)
}
