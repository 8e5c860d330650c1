// SPDX-License-Identifier: EPL-2.0

// Package stream implements directional streaming sessions that bridge
// a real-time audio callback with a blocking storage I/O worker.
//
// A session owns one SPSC ring buffer, one multi-tick scratch buffer
// and a mutex/condition-variable pair. The two directions are mirror
// images:
//
//   - Playback: the I/O worker pulls bulk chunks from an audio.Source
//     and enqueues them; the device callback dequeues one tick per call
//     via ReadTick.
//   - Capture: the device callback enqueues one tick per call via
//     WriteTick; the I/O worker dequeues bulk chunks and pushes them
//     into an audio.Sink.
//
// # Real-Time Contract
//
// ReadTick and WriteTick are safe to call from a hard real-time audio
// callback: they never block, never allocate and never wait on a lock.
// ReadTick always produces a full buffer; when the ring runs dry the
// unfilled tail is silence, not stale or uninitialized data. WriteTick
// drops excess input when the ring is full; buffered data is never
// overwritten.
//
// # Wake/Park Protocol
//
// The worker parks on the condition variable whenever the ring lacks
// room (playback) or data (capture) for a full scratch-sized transfer.
// The callback counts ticks and, past a configured threshold, attempts
// a non-blocking lock acquisition to signal the worker. If the lock is
// contended (the worker is mid-transfer) the signal is skipped and
// retried on the next tick. Blocking the callback would break the
// timing contract; liveness is preserved because the opportunity
// recurs every tick.
//
// # Termination
//
// The playback worker exits when the source reports end-of-stream (a
// short read or io.EOF); the capture worker exits when the sink
// reports a short write or an error. Close requests a cooperative stop
// and waits for the worker to exit; the capture direction drains
// residual ring data to the sink first. Wait returns the worker's
// terminal error, if any, and Frames reports how much data was
// actually moved to or from storage.
package stream
