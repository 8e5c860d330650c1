// SPDX-License-Identifier: EPL-2.0

package audstream

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/aiff"
	"github.com/ik5/audstream/formats/mp3"
	"github.com/ik5/audstream/formats/vorbis"
	"github.com/ik5/audstream/formats/wav"
)

// DefaultRegistry returns a registry with all built-in decoders
// registered under their format keys: "wav", "mp3", "ogg", "aiff".
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// DetectFormat maps a file path to a registry format key by extension.
// Returns ErrUnknownFormat for extensions with no registered decoder.
func DetectFormat(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "wav":
		return "wav", nil
	case "mp3":
		return "mp3", nil
	case "ogg", "oga":
		return "ogg", nil
	case "aif", "aiff":
		return "aiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// closerSource closes the backing file together with the decoded
// source.
type closerSource struct {
	audio.Source
	f *os.File
}

func (s *closerSource) Close() error {
	err := s.Source.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// DecodeFile opens path, picks a decoder by extension and returns the
// decoded source. Closing the source also closes the file.
func DecodeFile(path string) (audio.Source, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &closerSource{Source: src, f: f}, nil
}
