// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"testing"

	"github.com/ik5/audstream/internal/audiotest"
)

func TestNewCapture_ConfigValidation(t *testing.T) {
	t.Parallel()

	sink := audiotest.NewMockSink(8000, 1)

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing channels", Config{FramesPerTick: 64}, ErrInvalidConfig},
		{"missing frames", Config{Channels: 1}, ErrInvalidConfig},
		{"queue below slack", Config{Channels: 1, FramesPerTick: 64, BufferFactor: 8, QueueFactor: 8}, ErrQueueTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCapture(sink, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewCapture() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCapture_RoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	const total = 200 // fits in the ring even if the worker never runs

	sink := audiotest.NewMockSink(8000, 1)
	c, err := NewCapture(sink, Config{
		Channels:      1,
		FramesPerTick: 4,
		BufferFactor:  2,
		QueueFactor:   64, // ring 256
	})
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}
	c.Start()

	tick := make([]float32, 4)
	for base := 0; base < total; base += len(tick) {
		for i := range tick {
			tick[i] = float32(base+i+1) / 32768.0
		}
		c.WriteTick(tick)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if c.Overruns() != 0 {
		t.Errorf("Overruns() = %d, want 0", c.Overruns())
	}

	if len(sink.Samples) != total {
		t.Fatalf("sink received %d samples, want %d", len(sink.Samples), total)
	}
	for i, v := range sink.Samples {
		want := float32(i+1) / 32768.0
		if v != want {
			t.Fatalf("sample %d = %v, want %v (ordering broken)", i, v, want)
		}
	}

	if c.Frames() != total {
		t.Errorf("Frames() = %d, want %d", c.Frames(), total)
	}
}

func TestCapture_OverrunDropsExcess(t *testing.T) {
	t.Parallel()

	// Worker not started: the ring (capacity 8, 7 usable) must saturate.
	sink := audiotest.NewMockSink(8000, 1)
	c, err := NewCapture(sink, Config{
		Channels:      1,
		FramesPerTick: 2,
		BufferFactor:  2,
		QueueFactor:   4,
	})
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}

	tick := make([]float32, 2)
	for base := 0; base < 10; base += len(tick) {
		for i := range tick {
			tick[i] = float32(base+i+1) / 100.0
		}
		c.WriteTick(tick)
	}

	if c.Overruns() == 0 {
		t.Error("Overruns() = 0 after flooding a stopped ring, want > 0")
	}

	// Close drains what survived: the oldest 7 samples, in order.
	// Buffered data is never overwritten by later ticks.
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if len(sink.Samples) != 7 {
		t.Fatalf("sink received %d samples, want 7", len(sink.Samples))
	}
	for i, v := range sink.Samples {
		want := float32(i+1) / 100.0
		if v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestCapture_ShortWriteStopsWorker(t *testing.T) {
	t.Parallel()

	// Sink accepts exactly 32 samples, then reports a bare short write.
	sink := audiotest.NewFailingSink(8000, 1, 32, nil)
	c, err := NewCapture(sink, Config{
		Channels:      1,
		FramesPerTick: 4,
		BufferFactor:  2, // scratch 8
		QueueFactor:   16,
	})
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}
	c.Start()

	tick := make([]float32, 4)
	waitFor(t, func() bool {
		c.WriteTick(tick)
		select {
		case <-c.done:
			return true
		default:
			return false
		}
	})

	if err := c.Wait(); !errors.Is(err, ErrShortWrite) {
		t.Errorf("Wait() error = %v, want %v", err, ErrShortWrite)
	}

	if c.Frames() != 32 {
		t.Errorf("Frames() = %d, want 32 (persisted count must survive the failure)", c.Frames())
	}
}

func TestCapture_SinkErrorSurfaces(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("disk full")
	sink := audiotest.NewFailingSink(8000, 1, 8, wantErr)
	c, err := NewCapture(sink, Config{
		Channels:      1,
		FramesPerTick: 4,
		BufferFactor:  2,
		QueueFactor:   16,
	})
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}
	c.Start()

	tick := make([]float32, 4)
	waitFor(t, func() bool {
		c.WriteTick(tick)
		select {
		case <-c.done:
			return true
		default:
			return false
		}
	})

	if err := c.Wait(); !errors.Is(err, wantErr) {
		t.Errorf("Wait() error = %v, want %v", err, wantErr)
	}
}

func TestCapture_WakeLiveness(t *testing.T) {
	t.Parallel()

	sink := audiotest.NewMockSink(8000, 1)
	c, err := NewCapture(sink, Config{
		Channels:      1,
		FramesPerTick: 4,
		BufferFactor:  2, // scratch 8, wake threshold 2
		QueueFactor:   8,
	})
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}
	c.Start()

	// The worker parks immediately (nothing to drain). Feeding ticks
	// past the threshold must wake it and move data into the sink.
	tick := []float32{0.1, 0.2, 0.3, 0.4}
	waitFor(t, func() bool {
		c.WriteTick(tick)
		return c.Frames() > 0
	})

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}
