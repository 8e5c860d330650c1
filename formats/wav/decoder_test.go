// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// Helper function to create a minimal valid WAV file
func createWAVFile(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	// Write samples
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	wavData := createWAVFile(8000, 1, 16, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf := make([]float32, len(samples))
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(samples) {
		t.Fatalf("ReadSamples() = %d samples, want %d", n, len(samples))
	}

	for i, want := range samples {
		got := buf[i] * 32768.0
		if math.Abs(float64(got-float32(want))) > 1 {
			t.Errorf("sample %d = %v (scaled %v), want %d", i, buf[i], got, want)
		}
	}
}

func TestDecoder_NotWAV(t *testing.T) {
	t.Parallel()

	junk := bytes.Repeat([]byte("definitely not a wav file chunk "), 4)

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader(junk)); err != ErrNotWavFile {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotWavFile)
	}
}

func TestDecoder_Unsupported8Bit(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 8, []int16{1, 2, 3})

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader(wavData)); err != ErrOnlyPCM16bitSupported {
		t.Errorf("Decode() error = %v, want %v", err, ErrOnlyPCM16bitSupported)
	}
}

func TestDecoder_TruncatedHeader(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader([]byte("RIFF"))); err == nil {
		t.Error("Decode() of truncated header succeeded, want error")
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10000) // forces chunked writing paths
	for i := range samples {
		samples[i] = int16(i % 2000)
	}

	out := new(bytes.Buffer)
	if err := WriteWAV16(out, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if out.Len() != 44+len(samples)*2 {
		t.Errorf("output size = %d, want %d", out.Len(), 44+len(samples)*2)
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode() of written file error = %v", err)
	}

	buf := make([]float32, len(samples))
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(samples) {
		t.Fatalf("read back %d samples, want %d", n, len(samples))
	}

	for i, want := range samples {
		got := buf[i] * 32768.0
		if math.Abs(float64(got-float32(want))) > 1 {
			t.Fatalf("sample %d drifted: got %v, want %d", i, got, want)
		}
	}
}
