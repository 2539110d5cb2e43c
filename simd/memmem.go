package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index but is tuned for the matcher's substring
// prefilter, where the needle is a short folded query and the haystack is a
// short folded candidate. The implementation anchors on the needle's first
// byte via Memchr (SIMD-accelerated where available), probes the last byte
// before committing to a full comparison, and only then verifies the middle.
//
// The last-byte probe makes candidates cheap to discard for needles with a
// common first byte, e.g. searching "get" in "granularTotals".
//
// Example:
//
//	haystack := []byte("getuserbyid")
//	pos := simd.Memmem(haystack, []byte("user"))
//	// pos == 3
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at the start (mimics bytes.Index).
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	first := needle[0]
	last := needle[needleLen-1]

	searchStart := 0
	limit := haystackLen - needleLen
	for searchStart <= limit {
		idx := Memchr(haystack[searchStart:limit+1], first)
		if idx == -1 {
			return -1
		}
		pos := searchStart + idx

		// Probe the last byte before paying for a full comparison.
		if haystack[pos+needleLen-1] == last &&
			bytes.Equal(haystack[pos:pos+needleLen], needle) {
			return pos
		}

		searchStart = pos + 1
	}

	return -1
}
