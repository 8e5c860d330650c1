// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/ring"
)

// Capture streams a real-time producer into an audio.Sink. The device
// callback produces one tick per call through WriteTick; the I/O worker
// dequeues bulk chunks and writes them to the sink.
type Capture struct {
	sink audio.Sink

	buf     *ring.Buffer[float32]
	scratch []float32

	mu   sync.Mutex
	wake *sync.Cond
	stop bool

	// ticks belongs to the callback; see Playback.
	ticks     int
	threshold int

	channels int

	frames   atomic.Uint64
	overruns atomic.Uint64

	started sync.Once
	done    chan struct{}
	err     error
}

// NewCapture builds a capture session around sink. Missing Config
// fields take the capture defaults.
func NewCapture(sink audio.Sink, cfg Config) (*Capture, error) {
	cfg = cfg.captureDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Capture{
		sink:      sink,
		buf:       ring.New[float32](cfg.QueueFactor * cfg.tickSize()),
		scratch:   make([]float32, cfg.BufferFactor*cfg.tickSize()),
		threshold: cfg.WakeThreshold,
		channels:  cfg.Channels,
		done:      make(chan struct{}),
	}
	c.wake = sync.NewCond(&c.mu)
	return c, nil
}

// Start launches the I/O worker. Subsequent calls are no-ops.
func (c *Capture) Start() {
	c.started.Do(func() { go c.run() })
}

// Wait blocks until the worker exits and returns its terminal error.
func (c *Capture) Wait() error {
	<-c.done
	return c.err
}

// Close requests a cooperative stop and waits for the worker, which
// drains whatever the callback queued before the stop. Stop the device
// callback before closing so the drain has a fixed amount of work.
func (c *Capture) Close() error {
	c.mu.Lock()
	c.stop = true
	c.mu.Unlock()
	c.wake.Signal()
	c.Start()
	return c.Wait()
}

// run is the I/O worker: dequeue a bulk chunk, write it to the sink,
// repeat while a full chunk is buffered, park otherwise.
func (c *Capture) run() {
	defer close(c.done)

	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		for c.buf.ReadAvailable() >= len(c.scratch) {
			c.buf.Dequeue(c.scratch)
			if !c.flush(c.scratch) {
				return
			}
		}

		if c.stop {
			// Residual partial chunk queued before the stop.
			if n := c.buf.Dequeue(c.scratch); n > 0 {
				c.flush(c.scratch[:n])
			}
			return
		}

		c.wake.Wait()
	}
}

// flush pushes one chunk into the sink and reports whether the worker
// should keep running. A short write is fatal by contract.
func (c *Capture) flush(chunk []float32) bool {
	n, err := c.sink.WriteSamples(chunk)
	if n > 0 {
		c.frames.Add(uint64(n / c.channels))
	}
	if err != nil {
		c.err = err
		return false
	}
	if n < len(chunk) {
		c.err = ErrShortWrite
		return false
	}
	return true
}

// WriteTick enqueues one tick of captured samples. When the ring is
// full the excess is dropped; buffered data is never overwritten and
// the callback never blocks. Must only be called from the single
// producer (the device callback).
func (c *Capture) WriteTick(in []float32) {
	n := c.buf.Enqueue(in)
	if n < len(in) {
		c.overruns.Add(1)
	}
	c.maybeWake()
}

// maybeWake mirrors Playback.maybeWake.
func (c *Capture) maybeWake() {
	if c.ticks >= c.threshold && c.mu.TryLock() {
		c.ticks = 0
		c.wake.Signal()
		c.mu.Unlock()
		return
	}
	c.ticks++
}

// Frames returns the number of frames persisted to the sink so far.
func (c *Capture) Frames() uint64 {
	return c.frames.Load()
}

// Overruns returns how many ticks lost samples to a full ring.
func (c *Capture) Overruns() uint64 {
	return c.overruns.Load()
}

// Buffered returns the current ring fill level in samples.
func (c *Capture) Buffered() int {
	return c.buf.ReadAvailable()
}
