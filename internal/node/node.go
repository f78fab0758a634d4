// Package node implements the byte-keyed tree that backs the trie.
//
// Each Node owns a sorted list of (byte, child) edges and a terminal mark.
// Children are kept in ascending byte order so that every traversal in
// this package — insertion, lookup, and the prefix walk — is deterministic
// without an extra sort step at read time.
package node

import (
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"
)

// edge is one byte-labeled transition to a child Node.
type edge struct {
	b     byte
	child *Node
}

// Node is one vertex of the trie. The root Node has no incoming edge; its
// Terminal field is true iff the empty byte string was inserted.
type Node struct {
	edges    []edge
	Terminal bool
}

// New returns an empty, unterminated node.
func New() *Node {
	return &Node{}
}

// Child returns the child reached by b, or nil if no such edge exists.
func (n *Node) Child(b byte) *Node {
	i, ok := n.search(b)
	if !ok {
		return nil
	}
	return n.edges[i].child
}

// ChildOrCreate returns the child reached by b, creating it (and the edge)
// if it does not yet exist.
func (n *Node) ChildOrCreate(b byte) *Node {
	i, ok := n.search(b)
	if ok {
		return n.edges[i].child
	}
	child := New()
	n.edges = slices.Insert(n.edges, i, edge{b: b, child: child})
	return child
}

// search returns the index of the edge labeled b, and whether it exists.
// When it does not exist, the index is where such an edge would be
// inserted to keep n.edges sorted by byte.
func (n *Node) search(b byte) (int, bool) {
	return slices.BinarySearchFunc(n.edges, b, func(e edge, b byte) int {
		return int(e.b) - int(b)
	})
}

// Insert walks (or creates) the path for s and marks its terminal node.
// Idempotent: inserting the same byte string twice leaves the tree
// unchanged beyond the first insertion.
func (n *Node) Insert(s []byte) {
	cur := n
	for _, b := range s {
		cur = cur.ChildOrCreate(b)
	}
	cur.Terminal = true
}

// Contains reports whether s was inserted, i.e. whether the path for s
// exists and ends on a terminal node.
func (n *Node) Contains(s []byte) bool {
	cur := n
	for _, b := range s {
		cur = cur.Child(b)
		if cur == nil {
			return false
		}
	}
	return cur.Terminal
}

// Descend walks the path for p and returns the node reached, or nil if no
// such path exists. Used to find the subtree root for a prefix query.
func (n *Node) Descend(p []byte) *Node {
	cur := n
	for _, b := range p {
		cur = cur.Child(b)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// WalkPrefix performs the depth-first traversal of spec.md §4.1: at each
// node, emit the accumulator if the node is terminal, then recurse into
// each child in ascending byte order. acc is the bytes accumulated on the
// path from the traversal's starting node (not necessarily the trie root)
// down to n. Successive calls to visit may receive slices backed by the
// same growing array, so visit must not retain s past the call; copy it
// (e.g. via string(s)) if it needs to outlive the traversal.
func (n *Node) WalkPrefix(acc []byte, visit func(s []byte)) {
	if n.Terminal {
		visit(acc)
	}
	for _, e := range n.edges {
		e.child.WalkPrefix(append(acc, e.b), visit)
	}
}

// Range iterates over outgoing edges in ascending byte order, calling fn
// for each.
func (n *Node) Range(fn func(b byte, child *Node)) {
	for _, e := range n.edges {
		fn(e.b, e.child)
	}
}

// RangeIn iterates over outgoing edges whose byte is a member of set, in
// ascending byte order.
func (n *Node) RangeIn(set func(b byte) bool, fn func(b byte, child *Node)) {
	for _, e := range n.edges {
		if set(e.b) {
			fn(e.b, e.child)
		}
	}
}

// Len returns the number of outgoing edges (children) of n.
func (n *Node) Len() int {
	return len(n.edges)
}

// GoString formats n's own terminal mark and outgoing edge bytes for
// debug dumps (go-spew's %#v path). It deliberately does not recurse
// into children through spew — spew would call back into GoString on
// each child *Node and never terminate — so it only reports this node's
// immediate shape; Trie.Dump walks the full tree itself and calls
// GoString at each level it visits.
func (n *Node) GoString() string {
	children := make([]byte, len(n.edges))
	for i, e := range n.edges {
		children[i] = e.b
	}
	return spew.Sprintf("&node.Node{Terminal: %#v, children: %#v}", n.Terminal, children)
}
