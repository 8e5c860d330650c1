// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files
// and exposes them as an audio.Source suitable for feeding a playback
// session.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo, go-mp3 upmixes mono files)
//   - Sample rate: depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// MP3 writing is not supported (decoding only).
package mp3
