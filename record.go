// SPDX-License-Identifier: EPL-2.0

package audstream

import (
	"fmt"
	"os"

	"github.com/ik5/audstream/device"
	"github.com/ik5/audstream/formats/wav"
	"github.com/ik5/audstream/stream"
)

// RecordOptions tunes RecordFile. The zero value records mono 16kHz
// from the default input device.
type RecordOptions struct {
	// Device selects an input device from Context.Captures; nil means
	// the backend default
	Device *device.Info

	// Channels defaults to 1
	Channels int

	// SampleRate defaults to 16000
	SampleRate int

	// FramesPerTick overrides DefaultFramesPerTick when positive
	FramesPerTick int
}

// RecordFile captures from an input device into a 16-bit PCM WAV file
// at path, blocking until stop is closed or the storage fails. The
// samples buffered at the moment of the stop are drained into the file
// before it is finalized.
func RecordFile(ctx *device.Context, path string, stop <-chan struct{}, opts RecordOptions) error {
	channels := opts.Channels
	if channels <= 0 {
		channels = 1
	}
	sampleRate := opts.SampleRate
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	framesPerTick := opts.FramesPerTick
	if framesPerTick <= 0 {
		framesPerTick = DefaultFramesPerTick
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	sink := wav.NewSink(f, sampleRate, channels)

	session, err := stream.NewCapture(sink, stream.Config{
		Channels:      channels,
		FramesPerTick: framesPerTick,
	})
	if err != nil {
		f.Close()
		return fmt.Errorf("creating capture session: %w", err)
	}

	dev, err := ctx.OpenCapture(device.StreamConfig{
		Device:        opts.Device,
		SampleRate:    sampleRate,
		Channels:      channels,
		FramesPerTick: framesPerTick,
	}, session.WriteTick)
	if err != nil {
		f.Close()
		return err
	}

	session.Start()
	if err := dev.Start(); err != nil {
		dev.Close()
		session.Close()
		f.Close()
		return err
	}

	workerDone := make(chan struct{})
	go func() {
		session.Wait()
		close(workerDone)
	}()

	// Run until the caller stops the take or the sink fails.
	select {
	case <-stop:
	case <-workerDone:
	}

	// Stop the callback first so the drain has a fixed amount of work.
	dev.Close()

	err = session.Close()

	if cerr := sink.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("finalizing %s: %w", path, cerr)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	return nil
}
