// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring provides a fixed-capacity circular buffer that overwrites its
// oldest element when full. Storage is allocated once in New and never grows.
//
// RingBuffer is for a single goroutine. Locked wraps it with a mutex for
// callers that share one buffer across goroutines; neither type blocks.
package ring
