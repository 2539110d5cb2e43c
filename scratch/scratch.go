// Package scratch provides the reusable per-caller scoring buffer.
//
// A Buffer owns every piece of mutable state the scoring pipeline needs:
// the folded candidate bytes, the banded DP matrix for edit distance, the
// rolling Smith-Waterman rows, recovered match positions, and candidate
// word-start data. Capacity grows monotonically and never shrinks within a
// session, so after the first call that saw the largest query/candidate
// pair the hot path performs no heap allocation.
//
// Contents are logically invalidated between calls; Reset re-arms the
// buffer without releasing capacity. A Buffer must not be shared between
// concurrent calls — each goroutine owns its own.
package scratch

import "github.com/coregx/fuzzmatch/query"

// Buffer is the caller-owned scratch area threaded through one scoring
// call. Create one per working goroutine with New.
type Buffer struct {
	// Folded holds the ASCII-lowercased candidate bytes for the current
	// call. Always re-filled by the controller before anything reads it.
	Folded []byte

	// DP is the banded edit-distance matrix, row-major with DPWidth columns
	// per candidate row. The band bounds the row count by q+k+1, so keeping
	// every row is O(q·k) and makes match-position traceback possible
	// without a second alignment pass.
	DP      []uint16
	DPWidth int

	// MatchPos receives the candidate positions matched to query characters
	// during traceback, in ascending order. Length never exceeds the query
	// length plus one transposition partner.
	MatchPos []int32

	// WordStarts and WordStartAt describe the current candidate's word
	// boundaries: the former as a position list (acronym recognition), the
	// latter as a per-byte lookup (alignment bonuses).
	WordStarts  []int32
	WordStartAt []bool

	// HPrev, HCurr and FRow are the rolling Smith-Waterman rows: two H rows
	// plus the vertical-gap row F carried across query rows.
	HPrev, HCurr, FRow []int32

	// MaxScore, MaxI and MaxJ track the best Smith-Waterman cell, the
	// traceback anchor of the local alignment.
	MaxScore, MaxI, MaxJ int32

	wordsDone bool
}

// New returns an empty buffer. Capacities are allocated lazily on first
// use and retained afterwards.
func New() *Buffer {
	return &Buffer{}
}

// Reset invalidates per-call state while keeping capacity. The controller
// calls it at the start of every scoring call, which is what makes buffer
// reuse observationally identical to using a fresh buffer.
func (b *Buffer) Reset() {
	b.Folded = b.Folded[:0]
	b.MatchPos = b.MatchPos[:0]
	b.WordStarts = b.WordStarts[:0]
	b.MaxScore, b.MaxI, b.MaxJ = 0, 0, 0
	b.wordsDone = false
}

// GrowDP sizes the DP matrix to rows×cols cells and records the row width.
// Cell contents are left stale; the engine initializes the band it uses.
func (b *Buffer) GrowDP(rows, cols int) []uint16 {
	need := rows * cols
	if cap(b.DP) < need {
		b.DP = make([]uint16, need)
	}
	b.DP = b.DP[:need]
	b.DPWidth = cols
	return b.DP
}

// GrowSWRows sizes the three Smith-Waterman rows to n cells each.
func (b *Buffer) GrowSWRows(n int) {
	b.HPrev = growInt32(b.HPrev, n)
	b.HCurr = growInt32(b.HCurr, n)
	b.FRow = growInt32(b.FRow, n)
}

// SwapSWRows exchanges HPrev and HCurr after a completed query row.
func (b *Buffer) SwapSWRows() {
	b.HPrev, b.HCurr = b.HCurr, b.HPrev
}

// EnsureWordStarts computes the candidate's word-boundary data once per
// call. original are the candidate bytes as given, folded the buffer's
// folded copy. Subsequent calls within the same scoring call are no-ops.
func (b *Buffer) EnsureWordStarts(original, folded []byte) {
	if b.wordsDone {
		return
	}
	b.WordStarts = query.AppendWordStarts(b.WordStarts[:0], original, folded)
	b.WordStartAt = growBool(b.WordStartAt, len(folded))
	for i := range b.WordStartAt {
		b.WordStartAt[i] = false
	}
	for _, p := range b.WordStarts {
		b.WordStartAt[p] = true
	}
	b.wordsDone = true
}

func growInt32(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	return s[:n]
}

func growBool(s []bool, n int) []bool {
	if cap(s) < n {
		return make([]bool, n)
	}
	return s[:n]
}
