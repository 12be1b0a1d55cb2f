// Package deque provides a typed double-ended queue on top of the gods
// doubly linked list. Head and tail access are O(1); Get walks from the
// nearer end.
package deque

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Deque is a double-ended queue of T. The zero value is not usable; use New.
type Deque[T any] struct {
	list *doublylinkedlist.List
}

// New creates a deque holding values in order (values[0] at the head).
func New[T any](values ...T) *Deque[T] {
	d := &Deque[T]{list: doublylinkedlist.New()}
	for _, v := range values {
		d.list.Append(v)
	}
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.list.Size() }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.list.Empty() }

// PushBack appends v at the tail.
func (d *Deque[T]) PushBack(v T) { d.list.Append(v) }

// PushFront inserts v at the head.
func (d *Deque[T]) PushFront(v T) { d.list.Prepend(v) }

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, bool) { return d.Get(0) }

// Back returns the tail element without removing it.
func (d *Deque[T]) Back() (T, bool) { return d.Get(d.list.Size() - 1) }

// PopFront removes and returns the head element.
func (d *Deque[T]) PopFront() (T, bool) {
	v, ok := d.Front()
	if ok {
		d.list.Remove(0)
	}
	return v, ok
}

// PopBack removes and returns the tail element.
func (d *Deque[T]) PopBack() (T, bool) {
	v, ok := d.Back()
	if ok {
		d.list.Remove(d.list.Size() - 1)
	}
	return v, ok
}

// Get returns the element at index i (0 is the head).
func (d *Deque[T]) Get(i int) (T, bool) {
	var zero T
	raw, ok := d.list.Get(i)
	if !ok {
		return zero, false
	}
	return raw.(T), true
}

// All calls fn for each element from head to tail until fn returns false.
func (d *Deque[T]) All(fn func(i int, v T) bool) {
	it := d.list.Iterator()
	for it.Next() {
		if !fn(it.Index(), it.Value().(T)) {
			return
		}
	}
}

// Values returns a copy of the elements, head first.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.list.Size())
	d.All(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Clear removes every element.
func (d *Deque[T]) Clear() { d.list.Clear() }
