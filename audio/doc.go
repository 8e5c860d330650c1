// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contracts between the streaming core and
// its storage collaborators.
//
// # Source and Sink
//
// The Source interface is the bulk-read boundary:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders implement Source. The streaming playback worker
// pulls multi-tick chunks through it; a short read or io.EOF is the
// end-of-stream signal that terminates the worker.
//
// The Sink interface is the mirrored bulk-write boundary used by the
// capture direction. A short write is a fatal storage failure.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as interleaved float32 in the range
// [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to move audio between decoders,
// devices and encoders without worrying about bit depths.
//
// # Error Handling
//
// Read loops follow the usual shape:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
