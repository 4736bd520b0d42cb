/*
Package gsam builds a Generalized Suffix Automaton (GSAM) directly from a
github.com/ModelTC/general-sam/trie.Trie: every node of the trie is extended
into the automaton in BFS order, using the classical online suffix-automaton
extension (new state / clone / suffix-link redirection) adapted so that
endpos-equivalence is preserved across branches shared by multiple trie
paths.

State id 0 is always the root (len 0). State id 1 is a reserved nil
sentinel (len -1) that every unresolved transition conceptually points to:
State.Feed moves a handle to it on the first symbol without a transition,
and IsNil checks for it.

github.com/ModelTC/general-sam/countprop walks the resulting automaton's
suffix-link tree, in reverse topological order, to attach sorted-vocabulary
intervals to each state.
*/
package gsam

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/ModelTC/general-sam/internal/collections/queue"
	"github.com/ModelTC/general-sam/trie"
)

// nilStateID is the reserved sentinel state id that unresolved transitions
// point to. It is always id 1.
const nilStateID = 1

type state[A constraints.Ordered] struct {
	length int
	link   int // -1 for the root, meaning "above root"
	trans  map[A]int
	accept bool
}

// GSAM is a generalized suffix automaton built from a trie over alphabet A.
type GSAM[A constraints.Ordered] struct {
	states    []state[A]
	topoOrder []int
}

// BuildFromTrie constructs a GSAM recognizing every substring of every
// sequence stored in t, via BFS over t combined with incremental suffix
// automaton extension.
func BuildFromTrie[A constraints.Ordered](t *trie.Trie[A]) *GSAM[A] {
	g := &GSAM[A]{
		states: []state[A]{
			{length: 0, link: -1, trans: map[A]int{}},  // id 0: root
			{length: -1, link: -1, trans: map[A]int{}}, // id 1: nil sentinel
		},
	}

	last := make([]int, t.NumNodes())
	last[0] = 0
	if t.IsAccept(0) {
		g.states[0].accept = true
	}

	q := queue.New[int]()
	q.Enqueue(0)
	for !q.IsEmpty() {
		n, _ := q.Dequeue()
		for _, a := range t.Children(n) {
			m, _ := t.Child(n, a)
			newLast := g.extend(last[n], a)
			last[m] = newLast
			if t.IsAccept(m) {
				g.states[newLast].accept = true
			}
			q.Enqueue(m)
		}
	}

	g.topoOrder = g.computeTopoOrder()
	for i := len(g.topoOrder) - 1; i >= 0; i-- {
		st := g.states[g.topoOrder[i]]
		if st.accept && st.link != -1 {
			g.states[st.link].accept = true
		}
	}
	return g
}

// BuildFromSequence is a convenience for building a GSAM over a single
// sequence: it inserts seq into a fresh trie and delegates to
// BuildFromTrie.
func BuildFromSequence[A constraints.Ordered](seq []A) *GSAM[A] {
	t := trie.New[A]()
	t.Insert(seq)
	return BuildFromTrie(t)
}

func (g *GSAM[A]) newState(length int) int {
	id := len(g.states)
	g.states = append(g.states, state[A]{length: length, link: -1, trans: map[A]int{}})
	return id
}

func (g *GSAM[A]) trans(u int, a A) (int, bool) {
	v, ok := g.states[u].trans[a]
	return v, ok
}

func (g *GSAM[A]) clone(v, length int) int {
	c := g.newState(length)
	g.states[c].link = g.states[v].link
	for a, target := range g.states[v].trans {
		g.states[c].trans[a] = target
	}
	return c
}

// extend is the classical suffix-automaton "add one symbol" step, starting
// from state last, generalized so that a transition landing on an already
// installed state (because another trie branch already produced the same
// string-from-root) is detected and handled without creating a new state.
func (g *GSAM[A]) extend(last int, a A) int {
	if v, ok := g.trans(last, a); ok {
		if g.states[v].length == g.states[last].length+1 {
			return v
		}
		return g.splitClone(last, a, v)
	}

	cur := g.newState(g.states[last].length + 1)
	p := last
	for p != -1 {
		if _, ok := g.trans(p, a); ok {
			break
		}
		g.states[p].trans[a] = cur
		p = g.states[p].link
	}
	if p == -1 {
		g.states[cur].link = 0
		return cur
	}

	v, _ := g.trans(p, a)
	if g.states[v].length == g.states[p].length+1 {
		g.states[cur].link = v
		return cur
	}

	clone := g.splitClone(p, a, v)
	g.states[cur].link = clone
	return cur
}

// splitClone clones v into a new state of length len(p)+1, makes the clone
// v's suffix link, redirects to the clone the a-transitions of p and of p's
// suffix-link ancestors that point to v, and returns the clone's id.
func (g *GSAM[A]) splitClone(p int, a A, v int) int {
	c := g.clone(v, g.states[p].length+1)
	g.states[v].link = c
	for p != -1 {
		if target, ok := g.trans(p, a); ok && target == v {
			g.states[p].trans[a] = c
			p = g.states[p].link
		} else {
			break
		}
	}
	return c
}

func (g *GSAM[A]) computeTopoOrder() []int {
	order := make([]int, 0, len(g.states)-1)
	for id := 0; id < len(g.states); id++ {
		if id == nilStateID {
			continue
		}
		order = append(order, id)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.states[order[i]].length < g.states[order[j]].length
	})
	return order
}

// NumNodes returns the number of states, including the root and the nil
// sentinel.
func (g *GSAM[A]) NumNodes() int {
	return len(g.states)
}

// RootState returns a handle to the root state.
func (g *GSAM[A]) RootState() State[A] {
	return State[A]{sam: g, id: 0}
}

// GetState returns a handle to the state with the given id. Passing
// nilStateID (1) yields a handle for which IsNil is true.
func (g *GSAM[A]) GetState(id int) State[A] {
	return State[A]{sam: g, id: id}
}

// TopoOrder returns every real state id (root included, nil sentinel
// excluded) in forward topological order: for every transition u -> v, u
// precedes v. Equivalently, non-decreasing len.
func (g *GSAM[A]) TopoOrder() []int {
	return g.topoOrder
}

// State is a lightweight handle into a GSAM: an automaton reference plus a
// state id. It is cheap to copy; Feed mutates only the id field.
type State[A constraints.Ordered] struct {
	sam *GSAM[A]
	id  int
}

// Feed walks the transitions for each symbol of seq in turn, starting from
// the handle's current state. As soon as a symbol has no transition, the
// handle becomes nil and stays nil for the remainder of seq and any future
// feeds.
func (s *State[A]) Feed(seq []A) {
	for _, a := range seq {
		if s.id == nilStateID {
			return
		}
		v, ok := s.sam.trans(s.id, a)
		if !ok {
			s.id = nilStateID
			return
		}
		s.id = v
	}
}

// IsRoot reports whether the handle is at the automaton's root.
func (s State[A]) IsRoot() bool {
	return s.id == 0
}

// IsNil reports whether the handle has fallen off the automaton.
func (s State[A]) IsNil() bool {
	return s.id == nilStateID
}

// IsAccepting reports whether some string of the state is a suffix of a
// sequence stored in the trie. The flag is set on each sequence's final
// state and then carried up its suffix-link chain, so the root is accepting
// too. A clone does not copy the flag when it is made; it is accepting only
// if it lies on the suffix-link chain of an accepting state.
func (s State[A]) IsAccepting() bool {
	return !s.IsNil() && s.sam.states[s.id].accept
}

// NodeID returns the handle's current state id.
func (s State[A]) NodeID() int {
	return s.id
}

// SuffixParentID returns the id of the state reached by this state's
// suffix link. It is only meaningful for non-root, non-nil states.
func (s State[A]) SuffixParentID() int {
	return s.sam.states[s.id].link
}

// Len returns the length of the longest string ending at this state.
func (s State[A]) Len() int {
	return s.sam.states[s.id].length
}
