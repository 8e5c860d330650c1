// SPDX-License-Identifier: EPL-2.0

package stream

// Tuning defaults. The queue and wake values were hand-tuned against
// real hardware; they are starting points, not derived constants, which
// is why Config exposes all of them.
const (
	// DefaultBufferFactor sizes the scratch buffer in ticks: one bulk
	// transfer moves BufferFactor ticks worth of samples.
	DefaultBufferFactor = 4

	// DefaultPlaybackQueueFactor sizes the playback ring generously so
	// that storage-latency spikes are absorbed without underrun.
	DefaultPlaybackQueueFactor = 128 * DefaultBufferFactor

	// DefaultCaptureQueueFactor keeps the capture ring small; the sink
	// drains continuously, so only modest jitter headroom is needed.
	DefaultCaptureQueueFactor = 4 * DefaultBufferFactor
)

// Config describes the geometry of a streaming session.
//
// The ring buffer holds QueueFactor ticks and the scratch buffer
// BufferFactor ticks, where one tick is Channels × FramesPerTick
// samples. The ring capacity is rounded up to a power of two.
type Config struct {
	// Channels is the interleaved channel count. Required.
	Channels int

	// FramesPerTick is the fixed number of frames the device callback
	// moves per invocation. Required.
	FramesPerTick int

	// BufferFactor is the bulk-transfer size in ticks.
	// Zero selects DefaultBufferFactor.
	BufferFactor int

	// QueueFactor is the ring capacity in ticks. Must leave slack above
	// BufferFactor so a full bulk transfer always fits.
	// Zero selects the direction's default.
	QueueFactor int

	// WakeThreshold is the number of silent ticks the callback tolerates
	// before it attempts to wake the worker. Zero selects the
	// direction's default (¾·BufferFactor for playback, BufferFactor
	// for capture).
	WakeThreshold int
}

func (c Config) playbackDefaults() Config {
	if c.BufferFactor <= 0 {
		c.BufferFactor = DefaultBufferFactor
	}
	if c.QueueFactor <= 0 {
		c.QueueFactor = DefaultPlaybackQueueFactor
	}
	if c.WakeThreshold <= 0 {
		c.WakeThreshold = c.BufferFactor * 3 / 4
	}
	return c
}

func (c Config) captureDefaults() Config {
	if c.BufferFactor <= 0 {
		c.BufferFactor = DefaultBufferFactor
	}
	if c.QueueFactor <= 0 {
		c.QueueFactor = DefaultCaptureQueueFactor
	}
	if c.WakeThreshold <= 0 {
		c.WakeThreshold = c.BufferFactor
	}
	return c
}

func (c Config) validate() error {
	if c.Channels <= 0 || c.FramesPerTick <= 0 {
		return ErrInvalidConfig
	}
	if c.QueueFactor < 2*c.BufferFactor {
		return ErrQueueTooSmall
	}
	return nil
}

// tickSize is the element count one callback invocation moves.
func (c Config) tickSize() int {
	return c.Channels * c.FramesPerTick
}
