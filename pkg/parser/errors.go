package parser

import (
	"fmt"

	"github.com/treelang/treelang/pkg/source"
)

// ErrorKind is the closed set of parse failure classes.
type ErrorKind int

const (
	// ErrInvalidIndentUnit: Spaces was asked for a unit below one space.
	ErrInvalidIndentUnit ErrorKind = iota + 1
	// ErrMisalignedIndentation: leftover whitespace after whole indent
	// units at the start of a line.
	ErrMisalignedIndentation
	// ErrBaseIndentation: the first structural line is indented.
	ErrBaseIndentation
	// ErrUnmatchedDedent: a dedent exposes no frame at the line's depth.
	ErrUnmatchedDedent
	// ErrInconsistentIndentation: a line skips an indentation level.
	ErrInconsistentIndentation
	// ErrNestingUnderStatement: a line nests under a statement.
	ErrNestingUnderStatement
	// ErrUnterminatedGroup: a group is still open at end of line.
	ErrUnterminatedGroup
	// ErrMismatchedDelimiter: a closing delimiter matches no open group
	// of its kind.
	ErrMismatchedDelimiter
	// ErrAmbiguousDirective: a second top-level colon on one line.
	ErrAmbiguousDirective
	// ErrEmptySignature: a directive colon with nothing before it.
	ErrEmptySignature
	// ErrEmptyItemSequence: a structural line yields no items. Blank and
	// comment lines are skipped before scanning, so this is a guard.
	ErrEmptyItemSequence
)

var kindNames = map[ErrorKind]string{
	ErrInvalidIndentUnit:       "invalid_indent_unit",
	ErrMisalignedIndentation:   "misaligned_indentation",
	ErrBaseIndentation:         "base_indentation",
	ErrUnmatchedDedent:         "unmatched_dedent",
	ErrInconsistentIndentation: "inconsistent_indentation",
	ErrNestingUnderStatement:   "nesting_under_statement",
	ErrUnterminatedGroup:       "unterminated_group",
	ErrMismatchedDelimiter:     "mismatched_delimiter",
	ErrAmbiguousDirective:      "ambiguous_directive",
	ErrEmptySignature:          "empty_signature",
	ErrEmptyItemSequence:       "empty_item_sequence",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// LookupKind resolves the stable name of an error kind, as produced by
// ErrorKind.String.
func LookupKind(name string) (ErrorKind, bool) {
	for kind, n := range kindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// ParseError is the first failure encountered while parsing. Every
// error locates the offending text: Span carries the registry index,
// byte range, and line. A zero-length span marks a position, rendered
// as a single caret by source.Section.
type ParseError struct {
	Kind ErrorKind
	Span source.Span

	// Delim is the delimiter involved: the missing closer for
	// ErrUnterminatedGroup, the offending character for
	// ErrMismatchedDelimiter. Zero otherwise.
	Delim byte
}

func (e *ParseError) Error() string {
	line := e.Span.Start.Line
	switch e.Kind {
	case ErrInvalidIndentUnit:
		return "indent unit must be at least one space"
	case ErrMisalignedIndentation:
		return fmt.Sprintf("misaligned indentation on line %d", line)
	case ErrBaseIndentation:
		return fmt.Sprintf("line %d must start at the left margin", line)
	case ErrUnmatchedDedent:
		return fmt.Sprintf("dedent on line %d matches no enclosing level", line)
	case ErrInconsistentIndentation:
		return fmt.Sprintf("indentation on line %d skips a level", line)
	case ErrNestingUnderStatement:
		return fmt.Sprintf("line %d nests under a statement", line)
	case ErrUnterminatedGroup:
		return fmt.Sprintf("missing closing `%c` on line %d", e.Delim, line)
	case ErrMismatchedDelimiter:
		return fmt.Sprintf("unexpected `%c` on line %d", e.Delim, line)
	case ErrAmbiguousDirective:
		return fmt.Sprintf("second `:` on line %d", line)
	case ErrEmptySignature:
		return fmt.Sprintf("empty directive signature on line %d", line)
	case ErrEmptyItemSequence:
		return fmt.Sprintf("no items on line %d", line)
	default:
		return fmt.Sprintf("parse error on line %d", line)
	}
}

// positionError builds a ParseError marking a single position.
func positionError(kind ErrorKind, at source.Offset) *ParseError {
	return &ParseError{Kind: kind, Span: at.Span(0)}
}
