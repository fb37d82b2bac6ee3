package parser

import (
	"github.com/treelang/treelang/pkg/source"
	"github.com/treelang/treelang/pkg/tree"
)

// frame is one open node on the depth stack, tagged with the depth it
// was inserted at.
type frame struct {
	depth int
	node  tree.Node
}

// depthStack builds the tree line by line. Every node is pushed when
// its line is read and attached to its parent when a later line closes
// it; no recursion over the input is involved.
type depthStack struct {
	roots  []tree.Node
	frames []frame
}

// insert places a node parsed at depth. The relation between depth and
// the top frame decides everything: same depth is a sibling, one deeper
// is a child, shallower closes frames back to the matching level, and
// anything deeper than one level is a skipped level.
func (s *depthStack) insert(depth int, n tree.Node) *ParseError {
	if len(s.frames) == 0 {
		if depth != 0 {
			return positionError(ErrBaseIndentation, n.Pos())
		}
		s.frames = append(s.frames, frame{depth: 0, node: n})
		return nil
	}

	top := s.frames[len(s.frames)-1]
	switch {
	case depth == top.depth+1:
		if _, ok := top.node.(*tree.Statement); ok {
			return positionError(ErrNestingUnderStatement, n.Pos())
		}
		s.frames = append(s.frames, frame{depth: depth, node: n})
		return nil
	case depth > top.depth+1:
		return positionError(ErrInconsistentIndentation, n.Pos())
	}

	// depth <= top.depth: close deeper frames, then the sibling itself.
	for len(s.frames) > 0 && s.frames[len(s.frames)-1].depth > depth {
		if err := s.pop(); err != nil {
			return err
		}
	}
	switch {
	case len(s.frames) == 0:
		if depth != 0 {
			return positionError(ErrUnmatchedDedent, n.Pos())
		}
	case s.frames[len(s.frames)-1].depth == depth:
		if err := s.pop(); err != nil {
			return err
		}
	default:
		// The exposed frame is shallower than the line: the dedent
		// landed between levels. Contiguous pushes cannot produce this,
		// but the stack does not assume contiguity.
		return positionError(ErrUnmatchedDedent, n.Pos())
	}
	s.frames = append(s.frames, frame{depth: depth, node: n})
	return nil
}

// pop closes the top frame, attaching its node to the frame below it or
// to the roots.
func (s *depthStack) pop() *ParseError {
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]

	if len(s.frames) == 0 {
		s.roots = append(s.roots, top.node)
		return nil
	}
	parent, ok := s.frames[len(s.frames)-1].node.(*tree.Directive)
	if !ok {
		// insert rejects children of statements eagerly; this covers
		// stacks assembled some other way.
		return positionError(ErrNestingUnderStatement, top.node.Pos())
	}
	parent.Children = append(parent.Children, top.node)
	return nil
}

// finish drains the stack and hands the completed tree over.
func (s *depthStack) finish(span source.Span) (*tree.Tree, *ParseError) {
	for len(s.frames) > 0 {
		if err := s.pop(); err != nil {
			return nil, err
		}
	}
	return &tree.Tree{Roots: s.roots, Span: span}, nil
}
