/*
Package deque provides a generic queue backed by a DoublyLinkedList, with
O(1) insertion at the rear (OfferLast) and removal at the front
(PollFirst). Insertion at the front and removal at the rear are not
exposed.

The token-healing demo (cmd/tokenheal) uses it to keep a bounded ring of the
most recently prepended tokens for display.
*/
package deque

import "github.com/ModelTC/general-sam/internal/collections/linkedlist"

// Deque is a generic double-ended queue.
type Deque[T any] struct {
	data *linkedlist.DoublyLinkedList[T]
}

// New returns a new, empty Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{data: linkedlist.New[T]()}
}

// OfferLast inserts val at the rear of the deque.
func (d *Deque[T]) OfferLast(val T) {
	d.data.AddLast(val)
}

// PollFirst removes and returns the element at the front of the deque.
func (d *Deque[T]) PollFirst() (T, error) {
	return d.data.RemoveFirst()
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// ToSlice returns the deque's elements from front to rear.
func (d *Deque[T]) ToSlice() []T {
	return d.data.ToSlice()
}
