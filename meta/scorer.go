package meta

import (
	"github.com/coregx/fuzzmatch/editdist"
	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
	"github.com/coregx/fuzzmatch/swalign"
)

// Normalization maps each engine's raw output into [0, 1] per kind. The
// per-kind bands: exact (1.0) above prefix ([0.9, 1)); substring scores at
// most 0.9 and full acronyms sit at 0.85, so a substring hit with a low
// covered fraction or a late start ranks below a full acronym; alignment
// and fuzzy are capped at 0.95 so neither ever beats a clean prefix.

const (
	// prefixEpsilon spreads prefix scores by remaining candidate length:
	// a prefix of the entire string converges to 1.0, a prefix of a much
	// longer string approaches 1 - prefixEpsilon.
	prefixEpsilon = 0.0012

	prefixFloor = 0.9

	// fuzzyBonusScale caps the contribution of word-start and consecutive
	// bonuses to the fuzzy score.
	fuzzyBonusScale = 0.15

	engineCeil = 0.95
)

// scorePrefix maps a fast-prefix hit. c is the candidate length; the query
// is strictly shorter (equal lengths are exact). PrefixWeight skews the
// length ratio in edit-distance mode.
func scorePrefix(q *query.Query, c int) Match {
	ratio := float64(q.Len()) / float64(c)
	if q.Config().Algorithm == query.AlgoEditDistance {
		ratio *= q.Config().Edit.PrefixWeight
	}
	if ratio > 1 {
		ratio = 1
	}
	s := 1 - prefixEpsilon + prefixEpsilon*ratio
	if s >= 1 {
		s = 1 - prefixEpsilon/1000
	}
	if s < prefixFloor {
		s = prefixFloor
	}
	return Match{Score: s, Kind: KindPrefix}
}

// scoreSubstring maps a fast-substring hit at start position p: a base
// driven by the covered fraction, a positional penalty (earlier is
// better), and a word-start bonus.
func scoreSubstring(q *query.Query, cand []byte, buf *scratch.Buffer, p int) Match {
	c := float64(len(buf.Folded))
	ratio := float64(q.Len()) / c
	if q.Config().Algorithm == query.AlgoEditDistance {
		ratio *= q.Config().Edit.SubstringWeight
	}
	if ratio > 1 {
		ratio = 1
	}
	s := 0.7 + 0.2*ratio - 0.1*float64(p)/c
	if query.IsWordStart(cand, buf.Folded, p) {
		s += 0.05
	}
	if s > prefixFloor {
		s = prefixFloor
	}
	if s < 0 {
		s = 0
	}
	return Match{Score: s, Kind: KindSubstring}
}

// acronymFullScore sits below any prefix and above typical substring hits.
const acronymFullScore = 0.85

// acronymPartialCeil keeps partial acronyms below the prefix floor.
const acronymPartialCeil = 0.88

// scoreEditDistance maps the edit-distance engine's raw result: the
// one-character fast path, the full-acronym score, or the fuzzy formula
// with the optional partial-acronym bonus.
func scoreEditDistance(q *query.Query, res editdist.Result, c int) Match {
	if res.OneChar {
		s := 0.75 - 0.25*float64(res.Pos)/float64(c)
		if res.PosWordStart {
			s += 0.1
		}
		if s > acronymFullScore {
			s = acronymFullScore
		}
		return Match{Score: s, Kind: KindFuzzy}
	}
	if res.AcronymFull {
		return Match{Score: acronymFullScore, Kind: KindAcronym}
	}

	qlen := q.Len()
	denom := qlen
	if c > denom {
		denom = c
	}
	s := 1 - float64(res.Distance)/float64(denom)
	s -= 0.05 * float64(res.GapRuns)
	s += fuzzyBonusScale * float64(res.BonusSum) / float64(qlen*editdist.MaxPositionBonus)
	if s > engineCeil {
		s = engineCeil
	}
	if s < 0 {
		s = 0
	}
	m := Match{Score: s, Kind: KindFuzzy}

	// A partial acronym sweetens the fuzzy score; when the sweetened value
	// wins it also claims the kind.
	if res.AcronymInitials > 0 {
		a := s + 0.1*float64(res.AcronymInitials)/float64(qlen)
		if a > acronymPartialCeil {
			a = acronymPartialCeil
		}
		if a > m.Score {
			m = Match{Score: a, Kind: KindAcronym}
		}
	}
	return m
}

// scoreAlignment normalizes a raw Smith-Waterman score against the
// theoretical maximum: every aligned query byte collecting the match score
// plus all three bonuses.
func scoreAlignment(res swalign.Result, cfg *query.SmithWatermanConfig) Match {
	perByte := cfg.MatchScore + cfg.BonusConsecutive + cfg.BonusWordStart + cfg.BonusCaseMatch
	s := float64(res.Raw) / float64(res.QEff*perByte)
	if s > engineCeil {
		s = engineCeil
	}
	if s < 0 {
		s = 0
	}
	return Match{Score: s, Kind: KindAlignment}
}
