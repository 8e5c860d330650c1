// SPDX-License-Identifier: EPL-2.0

// Package device opens platform audio devices through
// github.com/gen2brain/malgo (miniaudio) and drives a fixed-size tick
// callback per backend period.
//
// A Context wraps the backend's audio context and enumerates devices:
//
//	ctx, err := device.NewContext()
//	if err != nil {
//	    // Handle error
//	}
//	defer ctx.Close()
//
//	outs, _ := ctx.Playbacks()
//	for _, info := range outs {
//	    fmt.Println(info.Name)
//	}
//
// Opened devices invoke the tick callback from the backend's audio
// thread. The callback receives interleaved float32 samples and must
// not block or allocate; pair it with a stream session's ReadTick or
// WriteTick, which are written for exactly that contract:
//
//	dev, err := ctx.OpenPlayback(device.StreamConfig{
//	    SampleRate:    src.SampleRate(),
//	    Channels:      src.Channels(),
//	    FramesPerTick: 512,
//	}, session.ReadTick)
//
// The byte conversion between the backend's little-endian f32 frames
// and []float32 reuses a preallocated buffer, so steady-state ticks do
// not allocate.
package device
