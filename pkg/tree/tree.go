package tree

import "github.com/treelang/treelang/pkg/source"

// Tree is the parsed forest of one input's top-level nodes, in source
// order. A tree is immutable after parsing; sharing it across goroutines
// needs no locks.
type Tree struct {
	Roots []Node      `json:"roots"`
	Span  source.Span `json:"span"` // the whole input
}

// Walk traverses the tree preorder, calling visit with each node and its
// depth (roots are depth 0). Returning false skips the node's children.
func (t *Tree) Walk(visit func(n Node, depth int) bool) {
	for _, root := range t.Roots {
		walkNode(root, 0, visit)
	}
}

// Walk traverses the subtree rooted at n preorder, calling visit with
// each node and its depth relative to n. Returning false skips a node's
// children.
func Walk(n Node, visit func(n Node, depth int) bool) {
	walkNode(n, 0, visit)
}

func walkNode(n Node, depth int, visit func(Node, int) bool) {
	if !visit(n, depth) {
		return
	}
	if d, ok := n.(*Directive); ok {
		for _, child := range d.Children {
			walkNode(child, depth+1, visit)
		}
	}
}

// Count returns the number of nodes in the tree, children included.
func (t *Tree) Count() int {
	n := 0
	t.Walk(func(Node, int) bool {
		n++
		return true
	})
	return n
}
