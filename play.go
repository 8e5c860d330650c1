// SPDX-License-Identifier: EPL-2.0

package audstream

import (
	"fmt"
	"time"

	"github.com/ik5/audstream/device"
	"github.com/ik5/audstream/stream"
)

// DefaultFramesPerTick is the tick geometry used by PlayFile and
// RecordFile when the options leave it unset.
const DefaultFramesPerTick = 512

// PlayOptions tunes PlayFile. The zero value uses the default output
// device and the default tick geometry.
type PlayOptions struct {
	// Device selects an output device from Context.Playbacks; nil
	// means the backend default
	Device *device.Info

	// FramesPerTick overrides DefaultFramesPerTick when positive
	FramesPerTick int

	// Progress, when non-nil, is invoked periodically with the number
	// of frames decoded so far
	Progress func(frames uint64)
}

// PlayFile decodes path and streams it to an output device, blocking
// until the file has fully played or an error occurs.
func PlayFile(ctx *device.Context, path string, opts PlayOptions) error {
	framesPerTick := opts.FramesPerTick
	if framesPerTick <= 0 {
		framesPerTick = DefaultFramesPerTick
	}

	src, err := DecodeFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	session, err := stream.NewPlayback(src, stream.Config{
		Channels:      src.Channels(),
		FramesPerTick: framesPerTick,
	})
	if err != nil {
		return fmt.Errorf("creating playback session: %w", err)
	}

	dev, err := ctx.OpenPlayback(device.StreamConfig{
		Device:        opts.Device,
		SampleRate:    src.SampleRate(),
		Channels:      src.Channels(),
		FramesPerTick: framesPerTick,
	}, session.ReadTick)
	if err != nil {
		session.Close()
		return err
	}
	defer dev.Close()

	session.Start()
	if err := dev.Start(); err != nil {
		session.Close()
		return err
	}

	// The worker exits once the source is exhausted; the device keeps
	// draining the ring after that.
	if opts.Progress != nil {
		workerDone := make(chan struct{})
		go func() {
			session.Wait()
			close(workerDone)
		}()
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					opts.Progress(session.Frames())
				case <-workerDone:
					return
				}
			}
		}()
	}

	if err := session.Wait(); err != nil {
		session.Close()
		return fmt.Errorf("playback: %w", err)
	}

	// Let the device play out what is still buffered.
	tick := time.Duration(framesPerTick) * time.Second / time.Duration(src.SampleRate())
	for session.Buffered() > 0 {
		time.Sleep(tick)
	}

	return session.Close()
}
