// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32LeBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	src := []float32{0, 1, -1, 0.25, -0.75, 3.14159}
	raw := make([]byte, 4*len(src))
	Float32ToLeBytes(raw, src)

	got := make([]float32, len(src))
	LeBytesToFloat32(got, raw)

	for i := range src {
		if got[i] != src[i] {
			t.Errorf("sample %d: round trip = %v, want %v", i, got[i], src[i])
		}
	}
}

func TestFloat32ToLeBytes_Layout(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 4)
	Float32ToLeBytes(raw, []float32{1.0})

	// 1.0 is 0x3F800000, little-endian on the wire.
	want := [4]byte{0x00, 0x00, 0x80, 0x3F}
	if [4]byte(raw) != want {
		t.Errorf("encoded 1.0 as % X, want % X", raw, want[:])
	}
}
