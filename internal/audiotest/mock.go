// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
	"sync/atomic"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	reads atomic.Int64 // ReadSamples invocations, for wake-liveness tests
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource creates a mock source whose samples count upward from 0
// in steps of 1/32768, one step per interleaved value. Useful for
// asserting ordering across a round trip.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample*channels+channel) / 32768.0
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reads returns how many times ReadSamples was called. Safe to poll
// while a worker goroutine is reading.
func (m *MockSource) Reads() int { return int(m.reads.Load()) }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	m.reads.Add(1)

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// MockSink collects written samples in memory. It implements the
// audio.Sink interface. An accept limit can simulate the short write
// that terminates a capture worker.
type MockSink struct {
	sampleRate int
	channels   int

	// Samples holds everything accepted so far. Only inspect it after
	// the writing worker has exited.
	Samples []float32

	acceptLimit int   // samples to accept before failing; <0 = unlimited
	failErr     error // error returned at the limit; nil = bare short write
}

// NewMockSink creates a sink that accepts everything.
func NewMockSink(sampleRate, channels int) *MockSink {
	return &MockSink{
		sampleRate:  sampleRate,
		channels:    channels,
		acceptLimit: -1,
	}
}

// NewFailingSink creates a sink that accepts acceptLimit samples and
// then reports a short write, returning err alongside it (err may be
// nil to exercise the bare-shortfall path).
func NewFailingSink(sampleRate, channels, acceptLimit int, err error) *MockSink {
	return &MockSink{
		sampleRate:  sampleRate,
		channels:    channels,
		acceptLimit: acceptLimit,
		failErr:     err,
	}
}

func (m *MockSink) SampleRate() int { return m.sampleRate }
func (m *MockSink) Channels() int   { return m.channels }
func (m *MockSink) Close() error    { return nil }

func (m *MockSink) WriteSamples(src []float32) (int, error) {
	n := len(src)
	if m.acceptLimit >= 0 {
		room := m.acceptLimit - len(m.Samples)
		if room < 0 {
			room = 0
		}
		if n > room {
			m.Samples = append(m.Samples, src[:room]...)
			return room, m.failErr
		}
	}

	m.Samples = append(m.Samples, src...)
	return n, nil
}
