package linkedlist

import "testing"

func TestLinkedListAddAndRemove(t *testing.T) {
	l := New[int]()
	l.AddLast(2)
	l.AddLast(3)
	l.AddFirst(1)

	if l.Size() != 3 {
		t.Fatalf("expected size 3, got %d", l.Size())
	}

	got := l.ToSlice()
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice: got %v, want %v", got, want)
		}
	}

	first, err := l.RemoveFirst()
	if err != nil || first != 1 {
		t.Fatalf("expected RemoveFirst 1, got %v, %v", first, err)
	}
	last, err := l.RemoveLast()
	if err != nil || last != 3 {
		t.Fatalf("expected RemoveLast 3, got %v, %v", last, err)
	}
	if l.Size() != 1 {
		t.Fatalf("expected size 1, got %d", l.Size())
	}
}

func TestLinkedListEmptyErrors(t *testing.T) {
	l := New[int]()
	if _, err := l.RemoveFirst(); err == nil {
		t.Fatalf("expected error removing from empty list")
	}
	if _, err := l.RemoveLast(); err == nil {
		t.Fatalf("expected error removing from empty list")
	}
	if _, err := l.PeekFirst(); err == nil {
		t.Fatalf("expected error peeking empty list")
	}
	if _, err := l.PeekLast(); err == nil {
		t.Fatalf("expected error peeking empty list")
	}
}
