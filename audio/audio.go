// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is the bulk-pull side of the storage contract: the streaming
// worker asks it for a chunk of interleaved samples per transfer.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1]
	// and returns the number of values written. A count lower than
	// len(dst), or io.EOF, means the stream is exhausted; any other
	// error means the read failed.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Sink is the bulk-push side of the storage contract: the streaming
// worker hands it one chunk of interleaved samples per transfer.
type Sink interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count.
	Channels() int
	// WriteSamples persists interleaved float32 samples and returns the
	// number of values accepted. A count lower than len(src) reports a
	// fatal storage problem, with or without an accompanying error.
	WriteSamples(src []float32) (n int, err error)

	// Close flushes and releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry holds decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
