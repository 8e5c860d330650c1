// SPDX-License-Identifier: EPL-2.0

package ring

import "sync/atomic"

// Buffer is a wait-free SPSC circular buffer of T.
//
// The read head is owned by the consumer side, the write head by the
// producer side. Both heads are kept in [0, capacity) and published
// atomically after the element copies they cover.
type Buffer[T any] struct {
	data      []T
	readHead  atomic.Uint64
	writeHead atomic.Uint64
}

// New creates a buffer whose capacity is NextPow2(capacity).
// Not safe to call while another goroutine uses the buffer.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, NextPow2(capacity))}
}

// Capacity returns the power-of-two size of the backing storage.
// One slot of it is permanently reserved, so at most Capacity()-1
// elements can be buffered.
func (b *Buffer[T]) Capacity() int {
	return len(b.data)
}

// ReadAvailable returns the number of elements ready to dequeue.
func (b *Buffer[T]) ReadAvailable() int {
	r := b.readHead.Load()
	w := b.writeHead.Load()
	return int(readAvailable(r, w, uint64(len(b.data))))
}

// WriteAvailable returns the number of elements that can be enqueued.
func (b *Buffer[T]) WriteAvailable() int {
	r := b.readHead.Load()
	w := b.writeHead.Load()
	return int(writeAvailable(r, w, uint64(len(b.data))))
}

// Enqueue copies min(len(src), WriteAvailable()) elements from src into
// the buffer and returns the count actually moved. Excess input is
// silently dropped. Producer side only.
func (b *Buffer[T]) Enqueue(src []T) int {
	r := b.readHead.Load()
	w := b.writeHead.Load()
	size := uint64(len(b.data))
	mask := size - 1

	n := uint64(len(src))
	if avail := writeAvailable(r, w, size); n > avail {
		n = avail
	}

	// The transfer is at most two contiguous segments: the run up to
	// the physical end of the storage, then the wrapped remainder.
	end := w + n
	if end > size {
		hi := size - w
		copy(b.data[w:], src[:hi])
		copy(b.data, src[hi:n])
	} else {
		copy(b.data[w:end], src[:n])
	}

	// Publish after the copies so the consumer never observes the new
	// head before the data it covers.
	b.writeHead.Store(end & mask)
	return int(n)
}

// Dequeue copies min(len(dst), ReadAvailable()) elements into dst and
// returns the count actually moved. Consumer side only.
func (b *Buffer[T]) Dequeue(dst []T) int {
	r := b.readHead.Load()
	w := b.writeHead.Load()
	size := uint64(len(b.data))
	mask := size - 1

	n := uint64(len(dst))
	if avail := readAvailable(r, w, size); n > avail {
		n = avail
	}

	end := r + n
	if end > size {
		hi := size - r
		copy(dst, b.data[r:])
		copy(dst[hi:n], b.data)
	} else {
		copy(dst[:n], b.data[r:end])
	}

	b.readHead.Store(end & mask)
	return int(n)
}

// Resize reallocates the backing storage to NextPow2(capacity) and
// discards all buffered elements. Not safe to call while either side
// is operating; intended for setup before a stream starts.
func (b *Buffer[T]) Resize(capacity int) {
	b.data = make([]T, NextPow2(capacity))
	b.readHead.Store(0)
	b.writeHead.Store(0)
}

// readAvailable is (write - read) mod capacity; the unsigned wrap keeps
// the result in [0, size-1] for any head pair in [0, size).
func readAvailable(read, write, size uint64) uint64 {
	return (write - read) & (size - 1)
}

func writeAvailable(read, write, size uint64) uint64 {
	return size - readAvailable(read, write, size) - 1
}
