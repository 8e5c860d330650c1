// SPDX-License-Identifier: EPL-2.0

package ring

import "math/bits"

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPow2 returns the smallest power of two >= max(n, 2).
// It is branch- and allocation-free so it can run on the real-time path.
func NextPow2(n int) int {
	if n <= 2 {
		return 2
	}
	if IsPow2(n) {
		return n
	}
	return 1 << bits.Len(uint(n))
}
