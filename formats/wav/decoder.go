// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	// assume PCM 16-bit
	buf []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	// Read frames of int16 interleaved, convert to float32
	if len(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	n, err := io.ReadFull(s.r, s.buf[:len(dst)*2])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if samples == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
		return 0, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// Minimal WAV header parse: RIFF/WAVE + fmt/data chunks
	header := make([]byte, 44)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	// Parse fmt chunk at 12.., assuming canonical layout
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return nil, ErrUnsupportedWavLayout
	}

	audioFormat := binary.LittleEndian.Uint16(header[20:22])
	channels := int(binary.LittleEndian.Uint16(header[22:24]))
	sampleRate := int(binary.LittleEndian.Uint32(header[24:28]))
	bitsPerSample := int(binary.LittleEndian.Uint16(header[34:36]))

	if audioFormat != 1 || bitsPerSample != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	// Assume the canonical 44-byte header with the data chunk right after fmt
	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return nil, ErrUnsupportedWavChunks
	}

	return &wavSource{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		buf:        make([]byte, 4096),
	}, nil
}
