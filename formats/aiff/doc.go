// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files and
// exposes them as an audio.Source.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is currently supported
//   - ErrUnsupportedAiffLayout: unsupported AIFF file structure
//
// # Limitations
//
//   - AIFF writing is not supported (decoding only)
//   - Only 16-bit PCM is supported (no 8-bit, 24-bit, or compressed
//     formats)
//
// go-audio needs an io.ReadSeeker; inputs that are plain readers are
// buffered in memory first.
package aiff
