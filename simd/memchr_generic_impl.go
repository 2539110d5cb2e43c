package simd

import (
	"encoding/binary"
	"math/bits"
)

// memchrGeneric implements pure Go byte search using the SWAR (SIMD Within A
// Register) technique. It processes 8 bytes at a time using uint64 bitwise
// operations.
//
// This function is used as a fallback on all platforms:
//   - On amd64: for small inputs (< 32 bytes) or when AVX2 is not available
//   - On other platforms: primary implementation
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. Read 8 haystack bytes as a little-endian uint64
//  3. XOR with the mask (matching bytes become 0x00)
//  4. Apply the zero-byte detection formula to find the first zero
//  5. Extract the position with a trailing zero count
func memchrGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// Byte-by-byte is faster for very small inputs (no setup overhead).
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// Broadcast needle to all 8 bytes: needle=0x42 -> 0x4242424242424242.
	needleMask := uint64(needle) * 0x0101010101010101

	idx := 0

	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask

		// Zero-byte detection (Hacker's Delight): subtracting 0x01 from each
		// byte borrows only where the byte was 0x00; masking with ^xor and
		// the high bits isolates those positions.
		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) & ^xor & hi8

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}

		idx += 8
	}

	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}
