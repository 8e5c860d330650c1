// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files and exposes them as an audio.Source.
//
// # Decoding Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
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
//   - Channels: depends on file (mono or stereo typically)
//   - Sample rate: depends on file (commonly 44.1kHz or 48kHz)
//
// For stereo files samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Vorbis encoding is not supported (decoding only).
package vorbis
