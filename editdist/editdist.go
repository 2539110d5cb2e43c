// Package editdist implements the bounded prefix-edit-distance engine:
// the minimum number of single-character insertions, deletions,
// substitutions, or adjacent transpositions needed to transform the query
// into some prefix of the candidate, capped at the configured bound.
//
// The DP is banded: within candidate row j only columns i with |i-j| <= k
// can hold a cost <= k, so the matrix is (q+k+1) rows by (q+1) columns at
// most, independent of candidate length. Keeping the whole banded matrix in
// the scratch buffer costs O(q·k) and lets the engine walk back from the
// best final cell to recover which candidate positions matched which query
// characters; those positions drive the word-start and consecutive-match
// bonuses.
//
// Two fast paths precede the DP: a one-character query path (the DP is
// near-useless for q == 1 and the hot loop dominates short-query
// benchmarks) and an acronym recognizer over candidate word initials.
package editdist

import (
	"math"

	"github.com/coregx/fuzzmatch/internal/conv"
	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
)

// Bonus constants for the fuzzy score. The edit-distance engine shares the
// word-boundary rule with the Smith-Waterman engine but keeps its own fixed
// bonus weights; the fuzzy normalization in the scorer divides by
// MaxPositionBonus.
const (
	BonusWordStart   = 8
	BonusConsecutive = 4

	// MaxPositionBonus is the largest bonus a single matched position can
	// collect.
	MaxPositionBonus = BonusWordStart + BonusConsecutive
)

// Result carries the raw outcome of the engine. Exactly one of the three
// shapes is populated: the one-character fast path, the full-acronym hit,
// or the DP outcome (optionally tagged with partial-acronym initials).
type Result struct {
	// OK reports whether the candidate survived the engine.
	OK bool

	// OneChar marks the one-character fast path; Pos is the first
	// occurrence of the query byte and PosWordStart whether that position
	// begins a word.
	OneChar      bool
	Pos          int
	PosWordStart bool

	// AcronymFull marks a candidate whose first word initials spell the
	// query exactly.
	AcronymFull bool

	// AcronymInitials is the number of query characters matched in order
	// against candidate word initials when the partial-acronym path fed
	// into the DP; zero otherwise.
	AcronymInitials int

	// Distance is the bounded prefix edit distance, End the exclusive end
	// of the best-matching candidate prefix (the DP argmin, ties toward
	// the shorter prefix).
	Distance int
	End      int

	// BonusSum and GapRuns summarize the recovered match positions:
	// accumulated word-start/consecutive bonuses and the number of skipped
	// candidate runs inside the alignment.
	BonusSum int
	GapRuns  int
}

// Run scores one folded candidate (buf.Folded) against the prepared query.
// cand holds the candidate bytes as given, used for word-boundary and
// case-sensitive checks. The controller has already run the prefilter, so
// exact, prefix and substring shapes never reach the engine.
func Run(q *query.Query, cand []byte, buf *scratch.Buffer) Result {
	qf := q.Folded()
	qlen := len(qf)
	c := buf.Folded
	k := q.Config().Edit.MaxEditDistance

	if qlen == 1 {
		return oneChar(qf[0], cand, buf)
	}

	buf.EnsureWordStarts(cand, c)

	initials := 0
	if qlen <= len(buf.WordStarts) {
		full, n := acronym(qf, c, buf.WordStarts)
		if full {
			return Result{OK: true, AcronymFull: true}
		}
		// Partial acronyms sweeten the DP outcome; below the threshold
		// they are ignored.
		if n >= (qlen+1)/2 {
			initials = n
		}
	}

	dist, end, ok := runDP(qf, c, k, buf)
	if !ok {
		return Result{}
	}

	bonus, gaps := recoverMatches(qf, c, k, end, buf)

	return Result{
		OK:              true,
		AcronymInitials: initials,
		Distance:        dist,
		End:             end,
		BonusSum:        bonus,
		GapRuns:         gaps,
	}
}

// runDP fills the banded matrix and returns the bounded distance and the
// best prefix end. ok is false when every prefix is more than k edits away.
func runDP(qf, c []byte, k int, buf *scratch.Buffer) (dist, end int, ok bool) {
	qlen := len(qf)
	clen := len(c)

	inf := k + 1
	if inf > math.MaxUint16 {
		// Distances saturate here; with such a bound everything matches.
		inf = math.MaxUint16
	}
	infCell := conv.IntToUint16(inf)

	jmax := qlen + k
	if jmax > clen {
		jmax = clen
	}
	w := qlen + 1
	dp := buf.GrowDP(jmax+1, w)

	// Row 0: transforming the query prefix into the empty candidate prefix
	// costs one deletion per character. Values saturate at inf.
	hi0 := qlen
	if hi0 > k {
		hi0 = k
	}
	for i := 0; i <= hi0; i++ {
		v := i
		if v > inf {
			v = inf
		}
		dp[i] = uint16(v)
	}

	prevMin := 0
	jstop := jmax
	for j := 1; j <= jmax; j++ {
		row := dp[j*w:]
		prev := dp[(j-1)*w:]

		lo := j - k
		if lo < 1 {
			lo = 1
		}
		hi := j + k
		if hi > qlen {
			hi = qlen
		}

		rowMin := inf
		if j <= k {
			v := j
			if v > inf {
				v = inf
			}
			row[0] = uint16(v)
			rowMin = v
		} else {
			// Sentinel so the deletion read at the band's left edge sees
			// an unreachable cost.
			row[lo-1] = infCell
		}

		cb := c[j-1]
		for i := lo; i <= hi; i++ {
			best := int(prev[i-1])
			if qf[i-1] != cb {
				best++
			}
			// Insertion: candidate byte j-1 is skipped. The source cell is
			// outside row j-1's band at the right edge.
			if i <= j-1+k {
				if v := int(prev[i]) + 1; v < best {
					best = v
				}
			}
			// Deletion: query byte i-1 is dropped.
			if v := int(row[i-1]) + 1; v < best {
				best = v
			}
			// Adjacent transposition, the Damerau extension.
			if i >= 2 && j >= 2 && qf[i-1] == c[j-2] && qf[i-2] == cb {
				if v := int(dp[(j-2)*w+i-2]) + 1; v < best {
					best = v
				}
			}
			if best > inf {
				best = inf
			}
			row[i] = uint16(best)
			if best < rowMin {
				rowMin = best
			}
		}

		// Once two consecutive row minima exceed the bound, no later row
		// can recover: every recurrence source is at least one of those
		// minima.
		if rowMin > k && prevMin > k {
			jstop = j
			break
		}
		prevMin = rowMin
	}

	// The final cost is the minimum over all candidate prefixes long
	// enough to be within k edits; ties break toward the shorter prefix.
	best := inf
	end = -1
	jlo := qlen - k
	if jlo < 0 {
		jlo = 0
	}
	for j := jlo; j <= jstop; j++ {
		if v := int(dp[j*w+qlen]); v < best {
			best = v
			end = j
		}
	}
	if best > k {
		return 0, 0, false
	}
	return best, end, true
}

// recoverMatches walks back from the best final cell, recording the
// candidate positions matched to query characters into buf.MatchPos, and
// returns the accumulated bonuses and gap-run count.
func recoverMatches(qf, c []byte, k, end int, buf *scratch.Buffer) (bonusSum, gapRuns int) {
	qlen := len(qf)
	w := qlen + 1
	dp := buf.DP

	inf := k + 1
	if inf > math.MaxUint16 {
		inf = math.MaxUint16
	}

	// at reads a cell, treating everything outside the band as
	// unreachable.
	at := func(j, i int) int {
		if i < 0 || j < 0 || i > qlen {
			return inf + 1
		}
		if i > j+k || i < j-k {
			return inf + 1
		}
		if j == 0 {
			// Row 0 is only filled up to min(qlen, k).
			if i > k {
				return inf + 1
			}
			return i
		}
		return int(dp[j*w+i])
	}

	buf.MatchPos = buf.MatchPos[:0]
	i, j := qlen, end
	lastWasIns := false
	for i > 0 && j > 0 {
		cur := at(j, i)
		// Prefer the match predecessor: it yields the bonus-richest
		// position set among cost-equal paths.
		if qf[i-1] == c[j-1] && at(j-1, i-1) == cur {
			buf.MatchPos = append(buf.MatchPos, int32(j-1))
			i--
			j--
			lastWasIns = false
			continue
		}
		if i >= 2 && j >= 2 && qf[i-1] == c[j-2] && qf[i-2] == c[j-1] && at(j-2, i-2)+1 == cur {
			// Both swapped candidate positions count as matched.
			buf.MatchPos = append(buf.MatchPos, int32(j-1), int32(j-2))
			i -= 2
			j -= 2
			lastWasIns = false
			continue
		}
		if at(j-1, i-1)+1 == cur {
			i--
			j--
			lastWasIns = false
			continue
		}
		if at(j-1, i)+1 == cur {
			if !lastWasIns {
				gapRuns++
			}
			lastWasIns = true
			j--
			continue
		}
		// Deletion is the only remaining predecessor.
		i--
		lastWasIns = false
	}
	// Candidate bytes left before the alignment start form one more
	// skipped run.
	if j > 0 && !lastWasIns {
		gapRuns++
	}

	// Traceback emits positions in descending order; flip to ascending for
	// the consecutive-match scan.
	pos := buf.MatchPos
	for a, b := 0, len(pos)-1; a < b; a, b = a+1, b-1 {
		pos[a], pos[b] = pos[b], pos[a]
	}

	for t, p := range pos {
		if buf.WordStartAt[p] {
			bonusSum += BonusWordStart
		}
		if t > 0 && pos[t-1] == p-1 {
			bonusSum += BonusConsecutive
		}
	}
	return bonusSum, gapRuns
}
