// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer contract.

package api

// Buffer is a fixed-capacity FIFO that overwrites its oldest item when full.
type Buffer[T any] interface {
    // Add stores an item, evicting the oldest one if the buffer is full.
    Add(item T)
    // Remove takes the oldest item, returns false if empty.
    Remove() (T, bool)
    // Len returns current number of items.
    Len() int
    // Cap returns buffer capacity.
    Cap() int
}
