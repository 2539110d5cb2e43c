// Package meta implements the controller that wires a prepared query, a
// scratch buffer and one candidate through the scoring pipeline:
// fold → prefilter → engine → scorer.
//
// The controller guarantees:
//   - no heap allocation on the hot path once the buffer has grown to
//     sufficient capacity;
//   - the same (candidate, query, config) tuple yields the same result
//     regardless of buffer state, because the buffer is re-armed at the
//     start of every call;
//   - neither the candidate nor the prepared query is ever mutated.
package meta

import (
	"github.com/coregx/fuzzmatch/editdist"
	"github.com/coregx/fuzzmatch/prefilter"
	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
	"github.com/coregx/fuzzmatch/swalign"
)

// Kind classifies how a candidate matched, in ranking order: exact beats
// prefix beats substring beats acronym beats alignment beats fuzzy.
type Kind int

const (
	// KindExact: the folded candidate equals the folded query.
	KindExact Kind = iota

	// KindPrefix: the folded candidate starts with the folded query.
	KindPrefix

	// KindSubstring: the folded query occurs inside the candidate.
	KindSubstring

	// KindAcronym: the query spells the candidate's word initials.
	KindAcronym

	// KindAlignment: a Smith-Waterman local alignment won.
	KindAlignment

	// KindFuzzy: the edit-distance fallback when no other kind applies.
	KindFuzzy
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindPrefix:
		return "prefix"
	case KindSubstring:
		return "substring"
	case KindAcronym:
		return "acronym"
	case KindAlignment:
		return "alignment"
	case KindFuzzy:
		return "fuzzy"
	default:
		return "kind(?)"
	}
}

// Match is the outcome of a successful scoring call: a normalized score in
// [0, 1] and its classification.
type Match struct {
	Score float64
	Kind  Kind
}

// Score runs the pipeline for one candidate. The boolean is false when the
// candidate does not match or scores below the configured minimum.
//
// The candidate is borrowed for the duration of the call; the buffer must
// be exclusively owned by the caller.
func Score(candidate []byte, q *query.Query, buf *scratch.Buffer) (Match, bool) {
	buf.Reset()
	buf.Folded = query.AppendFolded(buf.Folded[:0], candidate)

	pre := prefilter.Run(q, buf.Folded)
	cfg := q.Config()

	switch pre.Verdict {
	case prefilter.Reject:
		return Match{}, false

	case prefilter.Exact:
		return gate(Match{Score: 1.0, Kind: KindExact}, cfg)

	case prefilter.Prefix:
		return gate(scorePrefix(q, len(buf.Folded)), cfg)

	case prefilter.Substring:
		sub := scoreSubstring(q, candidate, buf, pre.Pos)
		if cfg.Algorithm == query.AlgoEditDistance {
			// The DP cannot beat a verbatim occurrence; substring is
			// terminal in edit-distance mode.
			return gate(sub, cfg)
		}
		// In alignment mode a bonus-heavy local alignment may outrank the
		// plain substring score; the max across kinds wins.
		res := swalign.Run(q, candidate, buf)
		if !res.OK {
			return gate(sub, cfg)
		}
		al := scoreAlignment(res, &cfg.SW)
		if al.Score > sub.Score {
			return gate(al, cfg)
		}
		return gate(sub, cfg)

	default: // prefilter.Engine
	}

	if cfg.Algorithm == query.AlgoSmithWaterman {
		res := swalign.Run(q, candidate, buf)
		if !res.OK {
			return Match{}, false
		}
		return gate(scoreAlignment(res, &cfg.SW), cfg)
	}

	res := editdist.Run(q, candidate, buf)
	if !res.OK {
		return Match{}, false
	}
	return gate(scoreEditDistance(q, res, len(buf.Folded)), cfg)
}

// gate enforces the minimum-score invariant: no emitted match scores below
// MinScore.
func gate(m Match, cfg *query.Config) (Match, bool) {
	if m.Score < cfg.MinScore {
		return Match{}, false
	}
	return m, true
}
