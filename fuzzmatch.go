// Package fuzzmatch provides a high-throughput fuzzy string matcher for
// interactive search over large catalogs of short strings: tickers,
// identifiers, product names, file paths.
//
// Given a prepared query and a stream of candidates, fuzzmatch decides
// whether each candidate matches, classifies the match, and returns a
// normalized score in [0, 1]. Ranking is intuitive:
// exact > prefix > substring > acronym > alignment > fuzzy.
//
// Per candidate, a multi-stage prefilter rejects most non-matches in
// O(|candidate|) before one of two alignment engines runs: a bounded
// Damerau-Levenshtein prefix-edit engine (the default) or a Smith-Waterman
// local-alignment engine, both bonus-aware around word boundaries.
//
// Basic usage:
//
//	q := fuzzmatch.Prepare("getUser")
//	buf := fuzzmatch.NewBuffer()
//
//	if m, ok := fuzzmatch.Score([]byte("getUserById"), q, buf); ok {
//	    fmt.Printf("%v %.4f\n", m.Kind, m.Score) // "prefix 0.9996"
//	}
//
// Advanced usage:
//
//	cfg := fuzzmatch.DefaultConfig()
//	cfg.Algorithm = fuzzmatch.AlgoSmithWaterman
//	cfg.MinScore = 0.5
//	q, err := fuzzmatch.PrepareWithConfig("get user", cfg)
//
// Concurrency: a prepared Query is immutable and freely shared across
// goroutines. A Buffer is exclusively owned by its caller for the duration
// of a call; concurrent callers must each hold their own. The core is
// synchronous and single-threaded per call — callers parallelize by
// sharding candidates.
//
// Performance characteristics:
//   - Prefilter-decided candidates (the vast majority): O(|candidate|)
//   - Edit-distance survivors: O(q·k) with k = MaxEditDistance
//   - Smith-Waterman survivors: O(q·c)
//   - Zero heap allocation per call once the buffer has grown
package fuzzmatch

import (
	"github.com/coregx/fuzzmatch/meta"
	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
)

// Query is the prepared, immutable form of a user query. See Prepare.
type Query = query.Query

// Buffer is the reusable per-caller scratch area. See NewBuffer.
type Buffer = scratch.Buffer

// Config selects the algorithm, its tuning, and the minimum-score gate.
type Config = query.Config

// EditDistanceConfig tunes the bounded prefix-edit-distance engine.
type EditDistanceConfig = query.EditDistanceConfig

// SmithWatermanConfig tunes the local-alignment engine.
type SmithWatermanConfig = query.SmithWatermanConfig

// Algorithm selects the scoring engine.
type Algorithm = query.Algorithm

// Algorithm variants.
const (
	AlgoEditDistance  = query.AlgoEditDistance
	AlgoSmithWaterman = query.AlgoSmithWaterman
)

// Match is a successful scoring outcome: a score in [0, 1] and its kind.
type Match = meta.Match

// Kind classifies a match.
type Kind = meta.Kind

// Match kinds, in ranking order.
const (
	KindExact     = meta.KindExact
	KindPrefix    = meta.KindPrefix
	KindSubstring = meta.KindSubstring
	KindAcronym   = meta.KindAcronym
	KindAlignment = meta.KindAlignment
	KindFuzzy     = meta.KindFuzzy
)

// CandidateMatch pairs a matching candidate with its score and kind, as
// returned by the bulk helpers.
type CandidateMatch = meta.CandidateMatch

// DefaultConfig returns the default configuration: edit-distance scoring
// with bound 2 and no minimum-score gate.
func DefaultConfig() Config {
	return query.DefaultConfig()
}

// Prepare builds an immutable query under the default configuration.
//
// Example:
//
//	q := fuzzmatch.Prepare("bms")
func Prepare(q string) *Query {
	pq, err := query.New(q, query.DefaultConfig())
	if err != nil {
		// The default configuration always validates.
		panic("fuzzmatch: " + err.Error())
	}
	return pq
}

// PrepareWithConfig builds an immutable query under a custom
// configuration. Returns an error when the configuration violates its
// preconditions (MinScore outside [0, 1], negative penalties, ...).
//
// Example:
//
//	cfg := fuzzmatch.DefaultConfig()
//	cfg.Edit.MaxEditDistance = 1
//	q, err := fuzzmatch.PrepareWithConfig("getUser", cfg)
func PrepareWithConfig(q string, cfg Config) (*Query, error) {
	return query.New(q, cfg)
}

// MustPrepare is like PrepareWithConfig but panics on an invalid
// configuration. Useful for configurations known valid at compile time.
func MustPrepare(q string, cfg Config) *Query {
	pq, err := query.New(q, cfg)
	if err != nil {
		panic("fuzzmatch: MustPrepare(" + q + "): " + err.Error())
	}
	return pq
}

// NewBuffer returns an empty scoring buffer. Create one per working
// goroutine; capacity grows monotonically with the largest query and
// candidate seen and is never released until the buffer is dropped.
func NewBuffer() *Buffer {
	return scratch.New()
}

// Score runs the scoring pipeline for one candidate. The boolean is false
// when the candidate does not match or scores below the configured
// minimum. The candidate is never mutated.
//
// Example:
//
//	m, ok := fuzzmatch.Score([]byte("setUser"), q, buf)
//	// ok == true, m.Kind == KindFuzzy
func Score(candidate []byte, q *Query, buf *Buffer) (Match, bool) {
	return meta.Score(candidate, q, buf)
}

// Matches scores every candidate and returns the matches sorted by
// descending score. Equal scores keep input order. Not concurrent; shard
// candidates for parallelism.
func Matches(candidates []string, q *Query) []CandidateMatch {
	return meta.Matches(candidates, q)
}

// TopMatches returns the limit best matches sorted by descending score,
// keeping memory at O(limit) via a bounded min-heap.
func TopMatches(candidates []string, q *Query, limit int) []CandidateMatch {
	return meta.TopMatches(candidates, q, limit)
}
