// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audstream/utils"
)

// Sink streams interleaved float32 samples into a 16-bit PCM WAV file.
// It implements the audio.Sink interface and is the storage end of a
// capture session. The RIFF header is finalized by Close, which is why
// the destination must be an io.WriteSeeker.
type Sink struct {
	enc        *gowav.Encoder
	buf        *goaudio.IntBuffer
	sampleRate int
	channels   int
}

// NewSink creates a WAV sink writing to ws at the given rate and
// channel count.
func NewSink(ws io.WriteSeeker, sampleRate, channels int) *Sink {
	return &Sink{
		enc:        gowav.NewEncoder(ws, sampleRate, 16, channels, 1),
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *Sink) SampleRate() int { return s.sampleRate }
func (s *Sink) Channels() int   { return s.channels }

// WriteSamples converts src to 16-bit PCM and appends it to the file.
// Returns the number of samples accepted; fewer than len(src) means the
// underlying write failed.
func (s *Sink) WriteSamples(src []float32) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(src) {
		s.buf = &goaudio.IntBuffer{
			Data: make([]int, len(src)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
			SourceBitDepth: 16,
		}
	}
	s.buf.Data = s.buf.Data[:len(src)]

	for i, v := range src {
		s.buf.Data[i] = int(utils.Float32ToInt16(v))
	}

	if err := s.enc.Write(s.buf); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return len(src), nil
}

// Close finalizes the WAV header. Must be called after the capture
// worker has exited; the file is not a valid WAV until then.
func (s *Sink) Close() error {
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
