/*
Package priorityqueue provides a generic, keyed binary min-heap.

Unlike a plain Ordered-element heap, each entry carries its own sort key
(constraints.Ordered) alongside an opaque payload, and insertion order is
remembered as a tiebreaker so that draining the heap is a stable sort by key.
This is what github.com/ModelTC/general-sam/triesort uses to turn per-node
tot_cnt_lower values into the vocabulary's sorted-order permutation.

Algorithm Notes:
  - Binary heap stored in a slice; parent = (k-1)/2, children = 2k+1, 2k+2.
  - Ties are broken by the sequence number assigned at push time, making
    drain order stable with respect to push order.

Time Complexity:
  - Push: O(log n)
  - Pop: O(log n)
*/
package priorityqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

type entry[K constraints.Ordered, V any] struct {
	val V
	seq int
	pri K
}

// Heap is a generic keyed min-heap with stable tie-breaking.
type Heap[K constraints.Ordered, V any] struct {
	items   []entry[K, V]
	nextSeq int
}

// New creates and returns an empty Heap.
func New[K constraints.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{}
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return len(h.items)
}

func (h *Heap[K, V]) less(i, j int) bool {
	if h.items[i].pri != h.items[j].pri {
		return h.items[i].pri < h.items[j].pri
	}
	return h.items[i].seq < h.items[j].seq
}

func (h *Heap[K, V]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push adds value with the given priority key.
func (h *Heap[K, V]) Push(priority K, value V) {
	h.items = append(h.items, entry[K, V]{val: value, pri: priority, seq: h.nextSeq})
	h.nextSeq++
	h.siftUp(len(h.items) - 1)
}

func (h *Heap[K, V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// Pop removes and returns the smallest-priority value. Returns an error if
// the heap is empty.
func (h *Heap[K, V]) Pop() (V, error) {
	var zero V
	if len(h.items) == 0 {
		return zero, errors.New("priorityqueue: pop from empty heap")
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top.val, nil
}

func (h *Heap[K, V]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
