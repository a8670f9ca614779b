// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a fixed-size circular FIFO with two cursors and an explicit
// occupancy counter. Add on a full buffer evicts the oldest element.
// Implements api.Buffer for cross-package consistency.

package ring

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Buffer[any] = (*RingBuffer[any])(nil)

// slot holds one value; ok marks it occupied.
type slot[T any] struct {
	val T
	ok  bool
}

// RingBuffer is a fixed-capacity ring buffer (single goroutine only).
type RingBuffer[T any] struct {
	data  []slot[T]
	head  int // read cursor
	tail  int // write cursor
	count int
}

// New allocates a ring buffer holding up to capacity elements.
// A capacity below one is rejected with ErrInvalidCapacity.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &RingBuffer[T]{
		data: make([]slot[T], capacity),
	}, nil
}

// MustNew is like New but panics on invalid capacity.
func MustNew[T any](capacity int) *RingBuffer[T] {
	r, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// Add stores item at the write cursor. When the buffer is full the
// oldest element is overwritten and the read cursor follows the write cursor.
func (r *RingBuffer[T]) Add(item T) {
	r.data[r.tail] = slot[T]{val: item, ok: true}
	r.tail = r.next(r.tail)
	if r.count == len(r.data) {
		r.head = r.next(r.head)
		return
	}
	r.count++
}

// Remove takes the oldest element; ok is false if the buffer is empty.
func (r *RingBuffer[T]) Remove() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	s := r.data[r.head]
	r.data[r.head] = slot[T]{}
	r.head = r.next(r.head)
	r.count--
	return s.val, true
}

// Len returns number of elements currently held.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// Cap returns fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// IsEmpty reports whether Remove would return nothing.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the next Add will evict.
func (r *RingBuffer[T]) IsFull() bool {
	return r.count == len(r.data)
}

func (r *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(r.data)
}
