package parser

import "github.com/treelang/treelang/pkg/tree"

// parseLine classifies one line's content, already stripped of its
// indentation. A bare top-level colon makes the line a directive and
// splits signature from arguments; without one the line is a statement.
// The colon itself is consumed here and never becomes an item.
func parseLine(line cursor) (tree.Node, *ParseError) {
	pos := line.offset()

	var items []tree.Item
	for {
		line = line.skipSpaceAndComments()

		if line.empty() {
			if len(items) == 0 {
				// Blank and comment lines are skipped before parseLine;
				// this guards the invariant rather than handling input.
				return nil, positionError(ErrEmptyItemSequence, pos)
			}
			return &tree.Statement{Items: items, Location: pos}, nil
		}

		if rest, ok := line.skipByte(directiveByte); ok {
			if len(items) == 0 {
				return nil, positionError(ErrEmptySignature, pos)
			}
			arguments, err := scanArguments(rest)
			if err != nil {
				return nil, err
			}
			return &tree.Directive{
				Signature: items,
				Arguments: arguments,
				Location:  pos,
			}, nil
		}

		item, rest, err := scanItem(line, false)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		line = rest
	}
}

// scanArguments consumes the items after a directive's colon. A second
// top-level colon has no meaning to split on and fails the line.
func scanArguments(cur cursor) ([]tree.Item, *ParseError) {
	var items []tree.Item
	for {
		cur = cur.skipSpaceAndComments()
		if cur.empty() {
			return items, nil
		}

		if _, ok := cur.skipByte(directiveByte); ok {
			return nil, &ParseError{Kind: ErrAmbiguousDirective, Span: cur.offset().Span(1)}
		}

		item, rest, err := scanItem(cur, false)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		cur = rest
	}
}
