// Package parser turns registered source text into trees.
//
// Input is consumed line by line: blank and comment lines are skipped,
// the rest are measured against a fixed indent unit, scanned into
// items, classified as statements or directives, and attached through
// an explicit depth stack. The parser is pure and the first failure
// aborts it with a *ParseError carrying the offending span.
package parser

import (
	"github.com/treelang/treelang/pkg/source"
	"github.com/treelang/treelang/pkg/tree"
)

// Parse builds the tree for one registered input. Spans in the result
// and in any error carry the input's registry index, so they resolve
// against the map the input came from.
//
// Distinct inputs can be parsed concurrently; Parse never writes to
// shared state.
func Parse(in source.Input, indent Indent) (*tree.Tree, error) {
	if indent.unit == "" {
		return nil, &ParseError{Kind: ErrInvalidIndentUnit}
	}

	var stack depthStack
	cur := newCursor(in)
	for more := true; more; {
		var line cursor
		line, cur, more = cur.splitLine()

		// Blank and comment-only lines vanish before the indentation
		// check, so a comment can sit at any indentation.
		if line.skipSpaceAndComments().empty() {
			continue
		}

		depth, content, perr := indent.extract(line)
		if perr != nil {
			return nil, perr
		}
		node, perr := parseLine(content)
		if perr != nil {
			return nil, perr
		}
		if perr := stack.insert(depth, node); perr != nil {
			return nil, perr
		}
	}

	start := source.Offset{Source: in.Index(), Byte: 0, Line: 1}
	t, perr := stack.finish(start.Span(len(in.Text())))
	if perr != nil {
		return nil, perr
	}
	return t, nil
}
