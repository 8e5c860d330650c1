// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return &nullSource{sampleRate: 44100, channels: 2}, nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

// nullSource yields silence forever; just enough to satisfy Source.
type nullSource struct {
	sampleRate int
	channels   int
}

func (s *nullSource) SampleRate() int { return s.sampleRate }
func (s *nullSource) Channels() int   { return s.channels }
func (s *nullSource) Close() error    { return nil }

func (s *nullSource) ReadSamples(dst []float32) (int, error) {
	clear(dst)
	return len(dst), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the most recently registered decoder")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDec := &mockDecoder{name: "wav"}
	mp3Dec := &failingDecoder{}

	registry.Register("wav", wavDec)
	registry.Register("mp3", mp3Dec)

	if got, _ := registry.Get("wav"); got != wavDec {
		t.Error("Registry.Get(\"wav\") returned wrong decoder")
	}

	if got, _ := registry.Get("mp3"); got != mp3Dec {
		t.Error("Registry.Get(\"mp3\") returned wrong decoder")
	}
}
