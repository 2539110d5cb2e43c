// Package swalign implements the Smith-Waterman local-alignment engine:
// the best-scoring local alignment between query and candidate under
// affine gap penalties, with position-dependent bonuses for consecutive
// matches, word starts, and preserved case.
//
// Unlike the edit-distance engine this is bonus-driven: a longer run of
// consecutive or word-aligned matches outscores an alignment with fewer
// gaps. Storage is two rolling H rows plus the vertical-gap row F; no full
// matrix is retained. The best cell is tracked as the traceback anchor.
//
// When the query contains spaces and splitting is enabled, each
// space-separated term is aligned independently against the full candidate
// and the raw scores are summed. Summing rather than concatenating lets
// "get user" match both segments of getUserById without paying gap
// penalties for the bytes in between; a term scoring zero disqualifies the
// candidate outright.
package swalign

import (
	"math"

	"github.com/coregx/fuzzmatch/internal/bytesview"
	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
)

// negInf is a safe "unreachable" score: low enough to never win, high
// enough that subtracting gap penalties cannot underflow int32.
const negInf = math.MinInt32 / 4

// Result carries the raw outcome of the engine.
type Result struct {
	// OK reports whether every aligned term scored above zero.
	OK bool

	// Raw is the summed raw alignment score across terms.
	Raw int

	// QEff is the number of query bytes that were aligned: the sum of term
	// lengths, excluding separator spaces in split mode. The scorer
	// normalizes Raw against the theoretical per-byte maximum times QEff.
	QEff int
}

// Run aligns the prepared query against one folded candidate (buf.Folded).
// cand holds the candidate bytes as given, used for the case-preservation
// bonus and word boundaries.
func Run(q *query.Query, cand []byte, buf *scratch.Buffer) Result {
	qf := q.Folded()
	if len(qf) == 0 || len(buf.Folded) == 0 {
		return Result{}
	}

	buf.EnsureWordStarts(cand, buf.Folded)

	cfg := &q.Config().SW
	folded := bytesview.Of(qf)
	original := bytesview.Of(q.Original())

	subs := q.Subqueries()
	if subs == nil {
		raw := alignTerm(folded, original, cand, cfg, buf)
		if raw <= 0 {
			return Result{}
		}
		return Result{OK: true, Raw: raw, QEff: folded.Len()}
	}

	total, qeff := 0, 0
	for _, r := range subs {
		lo, hi := int(r[0]), int(r[1])
		raw := alignTerm(folded.Sub(lo, hi), original.Sub(lo, hi), cand, cfg, buf)
		if raw <= 0 {
			return Result{}
		}
		total += raw
		qeff += hi - lo
	}
	return Result{OK: true, Raw: total, QEff: qeff}
}

// alignTerm runs one local alignment of term against the candidate and
// returns the best cell's raw score. The best cell across terms is
// recorded in the buffer as the traceback anchor.
func alignTerm(term, termOrig bytesview.View, cand []byte, cfg *query.SmithWatermanConfig, buf *scratch.Buffer) int {
	m := term.Len()
	c := buf.Folded
	n := len(c)
	if m == 0 {
		return 0
	}

	matchScore := int32(cfg.MatchScore)
	mismatch := int32(cfg.MismatchPenalty)
	gapStart := int32(cfg.GapStartPenalty)
	gapExt := int32(cfg.GapExtendPenalty)
	consec := int32(cfg.BonusConsecutive)
	wordStart := int32(cfg.BonusWordStart)
	caseMatch := int32(cfg.BonusCaseMatch)

	buf.GrowSWRows(n + 1)
	for j := 0; j <= n; j++ {
		buf.HPrev[j] = 0
		buf.FRow[j] = negInf
	}

	var best, bestI, bestJ int32
	for i := 1; i <= m; i++ {
		hp := buf.HPrev
		hc := buf.HCurr
		fr := buf.FRow
		hc[0] = 0
		e := int32(negInf)
		qb := term.At(i - 1)

		for j := 1; j <= n; j++ {
			// Diagonal step: match with bonuses, or mismatch penalty.
			diag := hp[j-1]
			if qb == c[j-1] {
				s := matchScore
				if i >= 2 && j >= 2 && term.At(i-2) == c[j-2] {
					s += consec
				}
				if buf.WordStartAt[j-1] {
					s += wordStart
				}
				if termOrig.At(i-1) == cand[j-1] {
					s += caseMatch
				}
				diag += s
			} else {
				diag -= mismatch
			}

			// E: best score ending with a gap over candidate bytes.
			if v := hc[j-1] - gapStart; v > e-gapExt {
				e = v
			} else {
				e -= gapExt
			}

			// F: best score ending with a gap over query bytes.
			f := hp[j] - gapStart
			if v := fr[j] - gapExt; v > f {
				f = v
			}
			fr[j] = f

			h := diag
			if e > h {
				h = e
			}
			if f > h {
				h = f
			}
			if h < 0 {
				h = 0
			}
			hc[j] = h
			if h > best {
				best, bestI, bestJ = h, int32(i), int32(j)
			}
		}
		buf.SwapSWRows()
	}

	if best > buf.MaxScore {
		buf.MaxScore, buf.MaxI, buf.MaxJ = best, bestI, bestJ
	}
	return int(best)
}
