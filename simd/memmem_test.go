package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// TestMemmemBasic tests basic functionality and edge cases.
func TestMemmemBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_both", "", "", 0},
		{"empty_haystack", "", "x", -1},
		{"needle_longer", "ab", "abc", -1},

		{"single_byte", "getuser", "u", 3},
		{"at_start", "getuserbyid", "get", 0},
		{"in_middle", "getuserbyid", "user", 3},
		{"at_end", "getuserbyid", "byid", 7},
		{"whole", "aapl", "aapl", 0},
		{"absent", "getuserbyid", "fetch", -1},

		// Common first byte forces the last-byte probe to do the work.
		{"repeated_prefix", "aaaaaabaaaa", "aab", 4},
		{"common_first_byte", "granulartotals", "get", -1},
		{"overlapping", "abababc", "ababc", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memmem([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}

			// Verify against stdlib.
			stdGot := bytes.Index([]byte(tt.haystack), []byte(tt.needle))
			if got != stdGot {
				t.Errorf("Memmem != stdlib: got %d, stdlib %d", got, stdGot)
			}
		})
	}
}

// TestMemmemSizes sweeps haystack sizes with the needle planted at the end,
// covering the SIMD dispatch boundaries of the underlying Memchr.
func TestMemmemSizes(t *testing.T) {
	needle := []byte("xyz")
	sizes := []int{3, 4, 7, 8, 9, 16, 31, 32, 33, 64, 100, 1024}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			haystack := make([]byte, size)
			for i := range haystack {
				haystack[i] = 'a'
			}
			copy(haystack[size-3:], needle)

			got := Memmem(haystack, needle)
			want := bytes.Index(haystack, needle)
			if got != want {
				t.Errorf("Memmem = %d, want %d", got, want)
			}
		})
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := bytes.Repeat([]byte("abcdefgh"), 128)
	haystack = append(haystack, []byte("needle")...)
	needle := []byte("needle")

	b.SetBytes(int64(len(haystack)))
	for i := 0; i < b.N; i++ {
		Memmem(haystack, needle)
	}
}
