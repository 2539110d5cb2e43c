//go:build !amd64

// Package simd provides SIMD-accelerated byte search primitives for the
// matcher's hot paths. On non-AMD64 platforms the primitives use an
// optimized pure Go implementation with the SWAR (SIMD Within A Register)
// technique, which processes 8 bytes at a time using uint64 bitwise
// operations.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// On non-AMD64 platforms this delegates to the SWAR implementation. See
// memchrGeneric for details.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}
