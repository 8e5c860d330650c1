// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/ik5/audstream/utils"
)

var (
	// ErrInvalidStreamConfig indicates a StreamConfig with a
	// non-positive sample rate, channel count or tick size
	ErrInvalidStreamConfig = errors.New("invalid stream config")

	// ErrNilTick indicates OpenPlayback/OpenCapture was given a nil
	// tick callback
	ErrNilTick = errors.New("tick callback must not be nil")
)

// Info identifies an audio device reported by the backend.
type Info struct {
	id malgo.DeviceID

	// Name is the backend-reported device name
	Name string

	// IsDefault reports whether the backend considers this the
	// default device of its kind
	IsDefault bool
}

// Context owns the backend audio context. All devices opened through it
// must be closed before the context itself.
type Context struct {
	ctx *malgo.AllocatedContext

	mu     sync.Mutex
	closed bool
}

// NewContext initializes the platform audio backend.
func NewContext() (*Context, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}

	return &Context{ctx: ctx}, nil
}

// Close tears down the backend context. Safe to call more than once.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	err := c.ctx.Uninit()
	c.ctx.Free()

	if err != nil {
		return fmt.Errorf("closing audio context: %w", err)
	}
	return nil
}

// Playbacks lists the available playback devices.
func (c *Context) Playbacks() ([]Info, error) {
	return c.devices(malgo.Playback)
}

// Captures lists the available capture devices.
func (c *Context) Captures() ([]Info, error) {
	return c.devices(malgo.Capture)
}

func (c *Context) devices(kind malgo.DeviceType) ([]Info, error) {
	infos, err := c.ctx.Devices(kind)
	if err != nil {
		return nil, fmt.Errorf("enumerating devices: %w", err)
	}

	out := make([]Info, 0, len(infos))
	for _, info := range infos {
		out = append(out, Info{
			id:        info.ID,
			Name:      info.Name(),
			IsDefault: info.IsDefault != 0,
		})
	}
	return out, nil
}

// StreamConfig describes the stream geometry for an opened device.
// Device selects a specific device from Playbacks/Captures; nil means
// the backend default.
type StreamConfig struct {
	Device        *Info
	SampleRate    int
	Channels      int
	FramesPerTick int
}

func (cfg StreamConfig) validate() error {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 || cfg.FramesPerTick <= 0 {
		return ErrInvalidStreamConfig
	}
	return nil
}

// Device is an opened backend device feeding a tick callback.
type Device struct {
	dev   *malgo.Device
	frame []float32

	mu     sync.Mutex
	closed bool
}

// OpenPlayback opens an output device. Every period the backend asks
// for cfg.FramesPerTick frames; tick must fill its argument with
// interleaved samples, padding with silence if it has fewer. tick runs
// on the backend's audio thread and must not block.
func (c *Context) OpenPlayback(cfg StreamConfig, tick func(out []float32)) (*Device, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if tick == nil {
		return nil, ErrNilTick
	}

	devConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	devConfig.SampleRate = uint32(cfg.SampleRate)
	devConfig.PeriodSizeInFrames = uint32(cfg.FramesPerTick)
	devConfig.Playback.Format = malgo.FormatF32
	devConfig.Playback.Channels = uint32(cfg.Channels)
	devConfig.Alsa.NoMMap = 1
	if cfg.Device != nil {
		devConfig.Playback.DeviceID = cfg.Device.id.Pointer()
	}

	d := &Device{frame: make([]float32, cfg.FramesPerTick*cfg.Channels)}

	dev, err := malgo.InitDevice(c.ctx.Context, devConfig, malgo.DeviceCallbacks{
		Data: func(out, _ []byte, framecount uint32) {
			samples := int(framecount) * cfg.Channels
			if cap(d.frame) < samples {
				d.frame = make([]float32, samples)
			}
			d.frame = d.frame[:samples]

			tick(d.frame)
			utils.Float32ToLeBytes(out, d.frame)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening playback device: %w", err)
	}

	d.dev = dev
	return d, nil
}

// OpenCapture opens an input device. Every period tick receives
// cfg.FramesPerTick frames of interleaved samples from the backend.
// tick runs on the backend's audio thread and must not block.
func (c *Context) OpenCapture(cfg StreamConfig, tick func(in []float32)) (*Device, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if tick == nil {
		return nil, ErrNilTick
	}

	devConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	devConfig.SampleRate = uint32(cfg.SampleRate)
	devConfig.PeriodSizeInFrames = uint32(cfg.FramesPerTick)
	devConfig.Capture.Format = malgo.FormatF32
	devConfig.Capture.Channels = uint32(cfg.Channels)
	devConfig.Alsa.NoMMap = 1
	if cfg.Device != nil {
		devConfig.Capture.DeviceID = cfg.Device.id.Pointer()
	}

	d := &Device{frame: make([]float32, cfg.FramesPerTick*cfg.Channels)}

	dev, err := malgo.InitDevice(c.ctx.Context, devConfig, malgo.DeviceCallbacks{
		Data: func(_, in []byte, framecount uint32) {
			samples := int(framecount) * cfg.Channels
			if cap(d.frame) < samples {
				d.frame = make([]float32, samples)
			}
			d.frame = d.frame[:samples]

			utils.LeBytesToFloat32(d.frame, in)
			tick(d.frame)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening capture device: %w", err)
	}

	d.dev = dev
	return d, nil
}

// Start begins the backend's period callbacks.
func (d *Device) Start() error {
	if err := d.dev.Start(); err != nil {
		return fmt.Errorf("starting device: %w", err)
	}
	return nil
}

// Close stops the device and releases it. Safe to call more than once.
// After Close returns no further tick callbacks run.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true

	d.dev.Uninit()
}
