// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// Float32ToLeBytes encodes samples as little-endian IEEE 754 words into
// dst, which must hold at least 4*len(src) bytes. No allocations, so it
// is safe inside a device callback.
func Float32ToLeBytes(dst []byte, src []float32) {
	for i, s := range src {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(s))
	}
}

// LeBytesToFloat32 decodes little-endian IEEE 754 words from src into
// dst, which determines how many samples are converted. src must hold
// at least 4*len(dst) bytes.
func LeBytesToFloat32(dst []float32, src []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))
	}
}
