// File: ring/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex wrapper for sharing one RingBuffer between goroutines.
// Each call is atomic; nothing waits for data or space.

package ring

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

var _ api.Buffer[any] = (*Locked[any])(nil)

// Locked serializes access to a RingBuffer.
type Locked[T any] struct {
	mu sync.Mutex
	_  cpu.CacheLinePad // keep the lock off the buffer header's cache line
	rb *RingBuffer[T]
}

// NewLocked allocates a mutex-guarded ring buffer. See New for capacity rules.
func NewLocked[T any](capacity int) (*Locked[T], error) {
	rb, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{rb: rb}, nil
}

// Add stores item, evicting the oldest element if full.
func (l *Locked[T]) Add(item T) {
	l.mu.Lock()
	l.rb.Add(item)
	l.mu.Unlock()
}

// AddEvict stores item and reports whether an element was evicted.
// The full check and the write happen under one lock.
func (l *Locked[T]) AddEvict(item T) (evicted bool) {
	l.mu.Lock()
	evicted = l.rb.IsFull()
	l.rb.Add(item)
	l.mu.Unlock()
	return evicted
}

// Remove takes the oldest element; ok is false if empty.
func (l *Locked[T]) Remove() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rb.Remove()
}

// Len returns number of elements at the time of the call.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rb.Len()
}

// Cap returns fixed buffer capacity.
func (l *Locked[T]) Cap() int {
	return l.rb.Cap()
}
