//go:build amd64

// Package simd provides SIMD-accelerated byte search primitives for the
// matcher's hot paths. The package automatically selects the best
// implementation based on available CPU features (AVX2 on x86-64) and falls
// back to an optimized pure Go implementation on other platforms.
//
// The primary use cases are the substring prefilter (Memmem over folded
// candidate bytes) and the one-character query fast path (Memchr), both of
// which run once per candidate and dominate short-query benchmarks.
package simd

import "golang.org/x/sys/cpu"

// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit
// SIMD). Set once at package initialization and used to dispatch to the
// fastest available implementation.
var hasAVX2 = cpu.X86.HasAVX2

// memchrAVX2 is implemented in memchr_amd64.s using 256-bit vector compares.
//
//go:noescape
func memchrAVX2(haystack []byte, needle byte) int

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but dispatches to an AVX2
// kernel when available. For candidate strings shorter than one vector the
// SWAR fallback is used directly, since the SIMD setup cost outweighs the
// benefit.
//
// Example:
//
//	folded := []byte("bristol-myers squibb")
//	pos := simd.Memchr(folded, 'm')
//	// pos == 8
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	// Use the AVX2 kernel only when the input is large enough to amortize
	// vector setup. Typical catalog entries (tickers, identifiers) are
	// short, so the threshold matters in benchmarks.
	if hasAVX2 && len(haystack) >= 32 {
		return memchrAVX2(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}
