// Package treelang parses indentation-structured text into trees of
// statements and directives.
//
// A document is a sequence of lines. Indentation builds the tree: a
// line one level deeper than the previous becomes its child. A line
// with a top-level `:` is a directive and may have children; any other
// line is a statement and may not. Line content is scanned into words,
// numbers, and delimiter groups, and `;` starts a comment that runs to
// the end of the line.
//
// # Basic Usage
//
// Create a parser and hand it text:
//
//	p, err := treelang.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	t, err := p.ParseString("example", "server:\n  port 8080")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Print(t.Outline())
//
// # Diagnostics
//
// Parse failures are *ParseError values carrying a kind and the span of
// the offending text. The parser's SourceMap resolves spans and renders
// excerpts:
//
//	t, err := p.ParseFile("app.conf")
//	var perr *treelang.ParseError
//	if errors.As(err, &perr) {
//	    section, _ := p.SourceMap().Section(perr.Span)
//	    fmt.Printf("%v\n%s", perr, section)
//	}
package treelang

import (
	"fmt"
	"os"

	"github.com/treelang/treelang/pkg/parser"
	"github.com/treelang/treelang/pkg/source"
	"github.com/treelang/treelang/pkg/tree"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/treelang/treelang" without subpackages.
type (
	// Tree is the parsed forest of one input's top-level nodes.
	Tree = tree.Tree

	// Node is one parsed line: *Statement or *Directive.
	Node = tree.Node

	// Statement is a line without a top-level colon. It never has
	// children.
	Statement = tree.Statement

	// Directive is a line with a top-level colon: signature, arguments,
	// and ordered children.
	Directive = tree.Directive

	// Item is one element of a line: Word, Int, Float, or Group.
	Item = tree.Item

	// Word is an item that is neither a number nor a group.
	Word = tree.Word

	// Int is an integer item.
	Int = tree.Int

	// Float is a floating-point item.
	Float = tree.Float

	// Group is a delimited sequence of nested items.
	Group = tree.Group

	// Origin identifies a registered source buffer.
	Origin = source.Origin

	// SourceMap registers source buffers and resolves spans.
	SourceMap = source.SourceMap

	// Offset is a position in a registered source.
	Offset = source.Offset

	// Span is a byte range in a registered source.
	Span = source.Span

	// Indent is the indentation unit for one parse.
	Indent = parser.Indent

	// ParseError is the first failure encountered while parsing.
	ParseError = parser.ParseError

	// ErrorKind is the closed set of parse failure classes.
	ErrorKind = parser.ErrorKind
)

// Re-export the error kinds.
const (
	ErrInvalidIndentUnit       = parser.ErrInvalidIndentUnit
	ErrMisalignedIndentation   = parser.ErrMisalignedIndentation
	ErrBaseIndentation         = parser.ErrBaseIndentation
	ErrUnmatchedDedent         = parser.ErrUnmatchedDedent
	ErrInconsistentIndentation = parser.ErrInconsistentIndentation
	ErrNestingUnderStatement   = parser.ErrNestingUnderStatement
	ErrUnterminatedGroup       = parser.ErrUnterminatedGroup
	ErrMismatchedDelimiter     = parser.ErrMismatchedDelimiter
	ErrAmbiguousDirective      = parser.ErrAmbiguousDirective
	ErrEmptySignature          = parser.ErrEmptySignature
	ErrEmptyItemSequence       = parser.ErrEmptyItemSequence
)

// Parser registers source text and parses it into trees. The
// indentation unit and the source map are fixed at construction.
//
// A Parser is safe for concurrent use: registration is serialized by
// the source map and parsing itself is pure.
type Parser struct {
	indent  parser.Indent
	sources *source.SourceMap
}

// config holds parser construction settings.
type config struct {
	indent    parser.Indent
	indentErr error
	sources   *source.SourceMap
}

// Option configures a Parser.
type Option func(*config)

// WithIndent sets the indentation unit.
// If not specified, the parser indents with two spaces per level.
func WithIndent(indent Indent) Option {
	return func(c *config) {
		c.indent = indent
		c.indentErr = nil
	}
}

// WithSpaces sets an indentation unit of n spaces per level.
// n below one fails New with ErrInvalidIndentUnit.
func WithSpaces(n int) Option {
	return func(c *config) {
		c.indent, c.indentErr = parser.Spaces(n)
	}
}

// WithTabs sets an indentation unit of one tab per level.
func WithTabs() Option {
	return func(c *config) {
		c.indent = parser.Tabs()
		c.indentErr = nil
	}
}

// WithSourceMap parses into an existing source map instead of a fresh
// one, sharing registered buffers with the map's other users.
func WithSourceMap(m *source.SourceMap) Option {
	return func(c *config) {
		c.sources = m
	}
}

// New creates a Parser with the given options.
//
// By default, the parser:
//   - Indents with two spaces per level
//   - Registers sources in a fresh SourceMap
//
// Example:
//
//	// Default parser
//	p, err := treelang.New()
//
//	// Tab-indented documents
//	p, err := treelang.New(treelang.WithTabs())
//
//	// A shared registry across parsers
//	p, err := treelang.New(treelang.WithSourceMap(m))
func New(opts ...Option) (*Parser, error) {
	indent, err := parser.Spaces(2)
	if err != nil {
		return nil, err
	}
	config := &config{indent: indent}

	for _, opt := range opts {
		opt(config)
	}

	if config.indentErr != nil {
		return nil, fmt.Errorf("configuring indent: %w", config.indentErr)
	}
	if config.sources == nil {
		config.sources = source.NewMap()
	}

	return &Parser{
		indent:  config.indent,
		sources: config.sources,
	}, nil
}

// Parse registers text under origin and parses it. Registering an
// origin a second time fails with *source.DuplicateOriginError; use
// distinct origins, or source.Anonymous for throwaway buffers.
func (p *Parser) Parse(origin source.Origin, text string) (*tree.Tree, error) {
	idx, err := p.sources.Insert(origin, text)
	if err != nil {
		return nil, fmt.Errorf("registering %s: %w", origin, err)
	}
	in, err := p.sources.Input(idx)
	if err != nil {
		return nil, err
	}
	return parser.Parse(in, p.indent)
}

// ParseString parses text under a named origin.
//
// Example:
//
//	t, err := p.ParseString("inline", "task build:\n  run make")
func (p *Parser) ParseString(name, text string) (*tree.Tree, error) {
	return p.Parse(source.Named(name), text)
}

// ParseFile reads path and parses its contents under a file origin.
//
// Example:
//
//	t, err := p.ParseFile("/etc/app/app.conf")
func (p *Parser) ParseFile(path string) (*tree.Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return p.Parse(source.File(path), string(content))
}

// SourceMap returns the map holding every source this parser has
// registered. Use it to resolve spans and render excerpts.
func (p *Parser) SourceMap() *source.SourceMap {
	return p.sources
}

// Indent returns the parser's indentation unit.
func (p *Parser) Indent() Indent {
	return p.indent
}
