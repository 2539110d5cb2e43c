// Package query builds the immutable, metadata-rich representation of a
// user query that the scoring pipeline consumes.
//
// A Query is prepared once and then shared freely: all fields are read-only
// after New returns, so a single Query can score candidates from many
// goroutines as long as each goroutine owns its own scratch buffer.
//
// The package also owns the two byte-level utilities the rest of the module
// agrees on: ASCII case folding (fold.go) and the word-boundary rule
// (wordbound.go).
package query

import (
	"math/bits"

	"github.com/coregx/fuzzmatch/internal/conv"
)

// Bitmap is a 256-bit presence set over byte values.
type Bitmap [4]uint64

// Set marks byte b as present.
func (m *Bitmap) Set(b byte) {
	m[b>>6] |= 1 << (b & 63)
}

// Has reports whether byte b is present.
func (m *Bitmap) Has(b byte) bool {
	return m[b>>6]&(1<<(b&63)) != 0
}

// MissingFrom returns the number of distinct bytes present in m but absent
// from other.
func (m *Bitmap) MissingFrom(other *Bitmap) int {
	n := 0
	for i := range m {
		n += bits.OnesCount64(m[i] &^ other[i])
	}
	return n
}

// Query is the prepared, immutable form of a user query: case-folded bytes,
// the original bytes, a character-presence bitmap, word-start positions,
// space-split sub-query ranges, and the scoring configuration.
//
// A Query owns its byte buffers; preparing copies the input exactly once.
type Query struct {
	original   []byte
	folded     []byte
	bitmap     Bitmap
	wordStarts []int32
	subqueries [][2]int32
	cfg        Config
}

// New prepares a query under the given configuration. The configuration is
// validated here, once, so per-candidate scoring never re-checks it.
func New(q string, cfg Config) (*Query, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	original := []byte(q)
	folded := AppendFolded(make([]byte, 0, len(original)), original)

	pq := &Query{
		original: original,
		folded:   folded,
		cfg:      cfg,
	}
	for _, b := range folded {
		pq.bitmap.Set(b)
	}
	pq.wordStarts = AppendWordStarts(nil, original, folded)
	if cfg.Algorithm == AlgoSmithWaterman && cfg.SW.SplitSpaces {
		pq.subqueries = splitSpaces(folded)
	}
	return pq, nil
}

// splitSpaces returns the [start, end) ranges of the space-separated terms
// of folded. Runs of spaces count as a single separator. A query with fewer
// than two terms yields nil, which callers treat as "align whole query".
func splitSpaces(folded []byte) [][2]int32 {
	var ranges [][2]int32
	start := -1
	for i, b := range folded {
		if b == ' ' {
			if start >= 0 {
				ranges = append(ranges, [2]int32{conv.IntToInt32(start), conv.IntToInt32(i)})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		ranges = append(ranges, [2]int32{conv.IntToInt32(start), conv.IntToInt32(len(folded))})
	}
	if len(ranges) < 2 {
		return nil
	}
	return ranges
}

// Len returns the query length in bytes.
func (q *Query) Len() int { return len(q.folded) }

// Folded returns the ASCII-lowercased query bytes. Borrowed; do not mutate.
func (q *Query) Folded() []byte { return q.folded }

// Original returns the query bytes as given. Borrowed; do not mutate.
func (q *Query) Original() []byte { return q.original }

// Bitmap returns the character-presence bitmap over the folded bytes.
func (q *Query) Bitmap() *Bitmap { return &q.bitmap }

// WordStarts returns the word-start positions of the query.
func (q *Query) WordStarts() []int32 { return q.wordStarts }

// Subqueries returns the [start, end) folded-byte ranges of the
// space-separated terms, or nil when the query is aligned whole (single
// term, or splitting disabled, or edit-distance mode).
func (q *Query) Subqueries() [][2]int32 { return q.subqueries }

// Config returns the scoring configuration the query was prepared with.
func (q *Query) Config() *Config { return &q.cfg }
