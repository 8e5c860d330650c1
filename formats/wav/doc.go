// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// The Decoder reads canonical PCM 16-bit WAV files and exposes them as
// an audio.Source; the Sink streams captured samples into a 16-bit PCM
// WAV file through github.com/go-audio/wav, finalizing the header on
// Close.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// # Capturing to a file
//
//	file, _ := os.Create("take.wav")
//	sink := wav.NewSink(file, 48000, 2)
//	// hand sink to a stream.Capture session
//	sink.Close() // finalizes the RIFF header
//
// WriteWAV16 remains for one-shot writes of an in-memory sample slice.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM decoding is supported
//   - ErrUnsupportedWavLayout / ErrUnsupportedWavChunks: non-canonical
//     chunk layouts the minimal parser does not handle
package wav
