// Package prefilter rejects non-matching candidates in O(|candidate|) time
// before any alignment DP runs.
//
// The cascade is fixed and cumulative: empty-query short-circuit, length
// gate, fast exact, fast prefix, fast substring, and (edit-distance mode
// only) a character-set bitmap gate. For interactive search over large
// catalogs the cascade decides the overwhelming majority of candidates;
// only survivors pay for the configured engine.
//
// The character-bitmap gate runs last among the cheap checks: it is the
// only one with a non-trivial constant factor, and moving it earlier slows
// workloads in which most candidates already survive the length and prefix
// gates.
package prefilter

import (
	"bytes"

	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/simd"
)

// Verdict is the cascade's decision for a candidate.
type Verdict int

const (
	// Reject means the candidate cannot match; stop immediately.
	Reject Verdict = iota

	// Exact means the folded candidate equals the folded query.
	Exact

	// Prefix means the folded candidate starts with the folded query.
	Prefix

	// Substring means the folded query occurs inside the candidate at a
	// non-zero position.
	Substring

	// Engine means no fast path applies; run the configured engine.
	Engine
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case Reject:
		return "Reject"
	case Exact:
		return "Exact"
	case Prefix:
		return "Prefix"
	case Substring:
		return "Substring"
	case Engine:
		return "Engine"
	default:
		return "Verdict(?)"
	}
}

// Result carries the cascade outcome. Pos is the substring start position
// when Verdict is Substring, -1 otherwise.
type Result struct {
	Verdict Verdict
	Pos     int
}

// Run executes the cascade for one candidate. candFolded must be the
// ASCII-folded candidate bytes (the controller folds into the scratch
// buffer before calling).
func Run(q *query.Query, candFolded []byte) Result {
	qf := q.Folded()
	qlen := len(qf)
	clen := len(candFolded)
	cfg := q.Config()

	// Empty query matches everything exactly.
	if qlen == 0 {
		return Result{Verdict: Exact, Pos: -1}
	}

	// Length gate. Prefix edit distance lets the candidate run past the
	// query, so only a candidate shorter than q-k is hopeless. Local
	// alignment needs at least one candidate byte.
	if cfg.Algorithm == query.AlgoEditDistance {
		if qlen > clen+cfg.Edit.MaxEditDistance {
			return Result{Verdict: Reject, Pos: -1}
		}
	} else if clen == 0 {
		return Result{Verdict: Reject, Pos: -1}
	}

	// Fast exact.
	if qlen == clen && bytes.Equal(candFolded, qf) {
		return Result{Verdict: Exact, Pos: -1}
	}

	// Fast prefix.
	if qlen <= clen && bytes.Equal(candFolded[:qlen], qf) {
		return Result{Verdict: Prefix, Pos: -1}
	}

	// Fast substring. A hit at position 0 would have been a prefix, so any
	// hit here is interior.
	if p := simd.Memmem(candFolded, qf); p >= 0 {
		return Result{Verdict: Substring, Pos: p}
	}

	// Character-set gate (edit-distance only). Every query byte missing
	// from the candidate costs at least one edit.
	if cfg.Algorithm == query.AlgoEditDistance {
		var cm query.Bitmap
		for _, b := range candFolded {
			cm.Set(b)
		}
		if q.Bitmap().MissingFrom(&cm) > cfg.Edit.MaxEditDistance {
			return Result{Verdict: Reject, Pos: -1}
		}
	}

	return Result{Verdict: Engine, Pos: -1}
}
