// SPDX-License-Identifier: EPL-2.0

// Package ring provides a wait-free single-producer single-consumer
// circular buffer.
//
// The buffer is the bridge between a real-time audio callback and a
// blocking file I/O goroutine: one side enqueues, the other dequeues,
// and neither ever blocks or allocates.
//
// # Concurrency Contract
//
// Exactly one goroutine may call Enqueue and exactly one may call
// Dequeue. The two may run concurrently. Each head index is mutated
// only by its owning side and published through sync/atomic, whose
// sequentially consistent ordering is strictly stronger than the
// store-release/load-acquire the algorithm needs: data copied into the
// backing slice is visible to the other side once the corresponding
// head update is observed.
//
// New and Resize are NOT safe to call while either side is operating.
//
// # Capacity
//
// Capacity is always rounded up to a power of two (minimum 2) so that
// index wraparound is a bit-mask instead of a division. One slot is
// permanently reserved so that "empty" and "full" are distinguishable
// without a shared counter:
//
//	ReadAvailable() + WriteAvailable() + 1 == Capacity()
//
// # Saturation
//
// Enqueue and Dequeue never fail and never block. Each moves as many
// elements as space/data permits and returns the count actually moved;
// callers detect shortfall by comparing the count to the request.
//
// Usage:
//
//	rb := ring.New[float32](4096)
//	moved := rb.Enqueue(chunk)   // producer side
//	moved = rb.Dequeue(out)      // consumer side
package ring
