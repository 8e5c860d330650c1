// SPDX-License-Identifier: EPL-2.0

// Package audstream streams audio files to and from real-time devices
// through lock-free single-producer single-consumer rings.
//
// The library is split in layers:
//
//   - ring: the wait-free SPSC ring buffer underneath everything
//   - stream: playback and capture sessions pairing a bulk I/O worker
//     with a non-blocking per-tick callback
//   - audio: the Source/Sink/Decoder contracts and the format registry
//   - formats/{wav,mp3,vorbis,aiff}: file decoders, plus a streaming
//     WAV sink for capture
//   - device: platform audio devices via miniaudio (malgo)
//
// # Playing a file
//
// The one-call path detects the format by extension, decodes, and
// streams to an output device until the file ends:
//
//	ctx, err := device.NewContext()
//	if err != nil {
//	    // Handle error
//	}
//	defer ctx.Close()
//
//	err = audstream.PlayFile(ctx, "song.ogg", audstream.PlayOptions{})
//
// # Recording
//
//	stop := make(chan struct{})
//	go func() {
//	    time.Sleep(5 * time.Second)
//	    close(stop)
//	}()
//	err = audstream.RecordFile(ctx, "take.wav", stop, audstream.RecordOptions{})
//
// # Custom pipelines
//
// For anything beyond files and default devices, wire the layers
// directly: decode with a formats decoder (or any audio.Source), build
// a stream.Playback or stream.Capture, and drive its ReadTick or
// WriteTick from your own real-time callback. The sessions never block
// or allocate on the callback side.
//
// Supported formats: WAV (PCM 16-bit), MP3, Ogg Vorbis, AIFF (PCM
// 16-bit). Recording always produces 16-bit PCM WAV.
package audstream
