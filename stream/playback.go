// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/ring"
)

// Playback streams an audio.Source to a real-time consumer. The I/O
// worker produces into the ring; the device callback consumes one tick
// per call through ReadTick.
type Playback struct {
	src audio.Source

	buf     *ring.Buffer[float32]
	scratch []float32

	mu   sync.Mutex
	wake *sync.Cond
	stop bool

	// ticks belongs to the callback; the reset happens only while the
	// callback holds mu, so the worker never touches it.
	ticks     int
	threshold int

	channels int

	frames    atomic.Uint64
	underruns atomic.Uint64

	started sync.Once
	done    chan struct{}
	err     error // written by the worker before done closes
}

// NewPlayback builds a playback session around src. Missing Config
// fields take the playback defaults.
func NewPlayback(src audio.Source, cfg Config) (*Playback, error) {
	cfg = cfg.playbackDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := &Playback{
		src:       src,
		buf:       ring.New[float32](cfg.QueueFactor * cfg.tickSize()),
		scratch:   make([]float32, cfg.BufferFactor*cfg.tickSize()),
		threshold: cfg.WakeThreshold,
		channels:  cfg.Channels,
		done:      make(chan struct{}),
	}
	p.wake = sync.NewCond(&p.mu)
	return p, nil
}

// Start launches the I/O worker. Subsequent calls are no-ops.
func (p *Playback) Start() {
	p.started.Do(func() { go p.run() })
}

// Wait blocks until the worker exits and returns its terminal error.
// End-of-stream is a clean exit and yields nil.
func (p *Playback) Wait() error {
	<-p.done
	return p.err
}

// Close requests a cooperative stop, waits for the worker to exit and
// returns its terminal error. ReadTick keeps yielding silence after
// the session is closed.
func (p *Playback) Close() error {
	p.mu.Lock()
	p.stop = true
	p.mu.Unlock()
	p.wake.Signal()
	p.Start()
	return p.Wait()
}

// run is the I/O worker: pull a bulk chunk from the source, enqueue,
// repeat while a full chunk fits, park otherwise. The mutex is held for
// the worker's whole life except inside the condition wait; the
// callback side never blocks on it.
func (p *Playback) run() {
	defer close(p.done)

	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		if p.stop {
			return
		}

		for p.buf.WriteAvailable() >= len(p.scratch) {
			n, err := p.src.ReadSamples(p.scratch)
			if n > 0 {
				p.buf.Enqueue(p.scratch[:n])
				p.frames.Add(uint64(n / p.channels))
			}
			if err != nil || n < len(p.scratch) {
				if err != nil && err != io.EOF {
					p.err = err
				}
				return
			}
			if p.stop {
				return
			}
		}

		p.wake.Wait()
	}
}

// ReadTick fills out with the next samples, padding the tail with
// silence when the ring holds fewer than len(out) elements. It never
// blocks, never allocates, and must only be called from the single
// consumer (the device callback).
func (p *Playback) ReadTick(out []float32) {
	n := p.buf.Dequeue(out)
	if n < len(out) {
		clear(out[n:])
		p.underruns.Add(1)
	}
	p.maybeWake()
}

// maybeWake signals the worker at most once per threshold ticks, and
// only if the lock is free right now. A contended lock means the worker
// is mid-transfer and needs no wake; the attempt recurs next tick.
func (p *Playback) maybeWake() {
	if p.ticks >= p.threshold && p.mu.TryLock() {
		p.ticks = 0
		p.wake.Signal()
		p.mu.Unlock()
		return
	}
	p.ticks++
}

// Frames returns the number of frames pulled from the source so far.
func (p *Playback) Frames() uint64 {
	return p.frames.Load()
}

// Underruns returns how many ticks were padded with silence.
func (p *Playback) Underruns() uint64 {
	return p.underruns.Load()
}

// Buffered returns the current ring fill level in samples.
func (p *Playback) Buffered() int {
	return p.buf.ReadAvailable()
}
