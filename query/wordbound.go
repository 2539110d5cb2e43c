package query

import "github.com/coregx/fuzzmatch/internal/conv"

// Word boundaries drive bonus scoring in both engines and the acronym
// recognizer. The rule is defined once here; the edit-distance and
// Smith-Waterman engines must consume the same positions or the two
// algorithms would rank the same candidate inconsistently.

// IsWordStart reports whether position i begins a word. A position is a
// word start iff i == 0, the previous byte is a separator (space,
// underscore, hyphen, dot, slash, comma), the original bytes show a
// camelCase transition (lowercase then uppercase), or a letter/digit
// transition occurs in the folded bytes. Separator bytes never begin a word
// themselves, so consecutive separators contribute at most one boundary.
//
// The camelCase test uses the original (un-folded) bytes; everything else
// uses the folded bytes.
func IsWordStart(original, folded []byte, i int) bool {
	if i >= len(folded) {
		return false
	}
	// A separator byte never begins a word itself.
	if separator(folded[i]) {
		return false
	}
	if i == 0 {
		return true
	}
	prev := folded[i-1]
	if separator(prev) {
		return true
	}
	if asciiLower(original[i-1]) && asciiUpper(original[i]) {
		return true
	}
	cur := folded[i]
	if asciiLower(prev) && asciiDigit(cur) {
		return true
	}
	if asciiDigit(prev) && asciiLower(cur) {
		return true
	}
	return false
}

// AppendWordStarts appends the word-start positions of the byte sequence to
// dst and returns the extended slice. dst is typically a reused scratch
// slice with len 0.
func AppendWordStarts(dst []int32, original, folded []byte) []int32 {
	for i := range folded {
		if IsWordStart(original, folded, i) {
			dst = append(dst, conv.IntToInt32(i))
		}
	}
	return dst
}
