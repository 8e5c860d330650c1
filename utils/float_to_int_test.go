// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"silence", 0, 0},
		{"positive max", 1, 32767},
		{"negative max", -1, -32767},
		{"clamped above", 2.5, 32767},
		{"clamped below", -2.5, -32767},
		{"half", 0.5, 16383},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{0, 1, -1, 100, -100, 16384, -16384, 32767, -32768} {
		f := Int16ToFloat32(v)
		if f > 1 || f < -1 {
			t.Errorf("Int16ToFloat32(%d) = %v, outside [-1, 1]", v, f)
		}

		back := Float32ToInt16(f)
		if diff := int(back) - int(v); diff > 1 || diff < -1 {
			t.Errorf("round trip of %d drifted to %d", v, back)
		}
	}
}
