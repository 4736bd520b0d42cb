/*
Package trie provides a generic, ordered rooted tree keyed by a finite
alphabet A, the C1 building block the rest of this module builds on:
github.com/ModelTC/general-sam/gsam extends a generalized suffix automaton
directly from one of these, and github.com/ModelTC/general-sam/triesort
walks one to produce a lexicographically sorted vocabulary order.

A node's children are kept in an internal/ordmap.Map, so Children and DFS
always observe them in natural A order (byte value, or codepoint value for
A = rune) — later components depend on that ordering to produce correct
lexicographic results.

Example usage:

	t := trie.New[byte]()
	id := t.Insert([]byte("gopher"))
	t.DFS(func(n, parent int) {}, func(n int) {})

Time Complexity:
  - Insert: O(n log Σ), n = length of the sequence, Σ = effective alphabet size
  - Child / Children: O(log Σ)
*/
package trie

import (
	"golang.org/x/exp/constraints"

	"github.com/ModelTC/general-sam/internal/collections/stack"
	"github.com/ModelTC/general-sam/internal/ordmap"
)

// node represents a single node in the trie.
//
// children maps each outgoing edge symbol to the child's node id, kept in
// ascending order by A's natural order. parent and edge describe the single
// incoming edge (both are meaningless for the root, id 0).
type node[A constraints.Ordered] struct {
	children *ordmap.Map[A, int]
	parent   int
	edge     A
	accept   bool
	depth    int
}

// Trie is a generic, ordered rooted tree keyed by alphabet A.
//
// Node id 0 is always the root. Node ids are dense and assigned in
// insertion order, so NumNodes is also the next id to be allocated.
type Trie[A constraints.Ordered] struct {
	nodes []node[A]
}

// New creates an empty Trie with just its root node (id 0).
func New[A constraints.Ordered]() *Trie[A] {
	t := &Trie[A]{}
	t.nodes = append(t.nodes, node[A]{children: ordmap.New[A, int](), parent: 0})
	return t
}

// NumNodes returns the number of nodes in the trie, including the root.
func (t *Trie[A]) NumNodes() int {
	return len(t.nodes)
}

// Insert walks seq from the root, creating children as needed, and marks
// the final node accepting. It is idempotent: inserting the same sequence
// twice returns the same node id both times and does not duplicate nodes.
// Inserting an empty sequence marks the root accepting and returns 0.
func (t *Trie[A]) Insert(seq []A) int {
	cur := 0
	for _, a := range seq {
		if next, ok := t.Child(cur, a); ok {
			cur = next
			continue
		}
		next := len(t.nodes)
		t.nodes = append(t.nodes, node[A]{
			children: ordmap.New[A, int](),
			parent:   cur,
			edge:     a,
			depth:    t.nodes[cur].depth + 1,
		})
		t.nodes[cur].children.Put(a, next)
		cur = next
	}
	t.nodes[cur].accept = true
	return cur
}

// Child returns the id of node n's child reached by symbol a, if any.
func (t *Trie[A]) Child(n int, a A) (int, bool) {
	return t.nodes[n].children.Get(a)
}

// Children returns the outgoing edge symbols of node n in natural A order.
func (t *Trie[A]) Children(n int) []A {
	return t.nodes[n].children.Keys()
}

// Len returns the depth of node n (the length of the path from the root).
func (t *Trie[A]) Len(n int) int {
	return t.nodes[n].depth
}

// IsAccept reports whether some inserted sequence terminates at node n.
func (t *Trie[A]) IsAccept(n int) bool {
	return t.nodes[n].accept
}

// Parent returns the parent of node n (0's own parent is itself).
func (t *Trie[A]) Parent(n int) int {
	return t.nodes[n].parent
}

// EdgeSymbol returns the symbol labeling the edge from n's parent to n. It
// is not meaningful for the root and returns false there.
func (t *Trie[A]) EdgeSymbol(n int) (A, bool) {
	if n == 0 {
		var zero A
		return zero, false
	}
	return t.nodes[n].edge, true
}

// DFS performs a depth-first traversal from the root, calling enter(node,
// parent) before descending into node's children and leave(node) after all
// of node's descendants have been visited. Children are visited in natural
// A order, which is essential for callers (such as triesort.Sort) that
// derive a lexicographic ordering from traversal order.
//
// The traversal is iterative, backed by an internal/collections/stack,
// rather than recursive, so trie depth is not limited by Go's call stack.
func (t *Trie[A]) DFS(enter func(node, parent int), leave func(node int)) {
	type frame struct {
		node      int
		childIdx  int
		childKeys []A
	}
	s := stack.New[*frame]()
	push := func(n, parent int) {
		f := &frame{node: n, childKeys: t.Children(n)}
		enter(n, parent)
		s.Push(f)
	}
	push(0, 0)
	for !s.IsEmpty() {
		f, _ := s.Peek()
		if f.childIdx >= len(f.childKeys) {
			leave(f.node)
			_, _ = s.Pop()
			continue
		}
		childSym := f.childKeys[f.childIdx]
		f.childIdx++
		childID, _ := t.Child(f.node, childSym)
		push(childID, f.node)
	}
}
