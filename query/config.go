package query

import "fmt"

// Algorithm selects the scoring engine a prepared query dispatches to.
type Algorithm int

const (
	// AlgoEditDistance scores candidates with bounded prefix edit distance
	// (insertions, deletions, substitutions, adjacent transpositions).
	AlgoEditDistance Algorithm = iota

	// AlgoSmithWaterman scores candidates with local alignment using affine
	// gap penalties and position-dependent bonuses.
	AlgoSmithWaterman
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoEditDistance:
		return "EditDistance"
	case AlgoSmithWaterman:
		return "SmithWaterman"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// EditDistanceConfig tunes the bounded prefix-edit-distance engine.
type EditDistanceConfig struct {
	// MaxEditDistance is the inclusive bound on edit operations. Candidates
	// whose distance to every prefix exceeds it are rejected.
	MaxEditDistance int

	// PrefixWeight scales the length ratio in the prefix score. 1.0 leaves
	// the default ranking untouched.
	PrefixWeight float64

	// SubstringWeight scales the length ratio in the substring score.
	SubstringWeight float64
}

// SmithWatermanConfig tunes the local-alignment engine.
type SmithWatermanConfig struct {
	// MatchScore is awarded per folded-equal byte pair.
	MatchScore int

	// MismatchPenalty is subtracted per unequal byte pair on the diagonal.
	MismatchPenalty int

	// GapStartPenalty is subtracted when a gap opens.
	GapStartPenalty int

	// GapExtendPenalty is subtracted per additional gapped position.
	GapExtendPenalty int

	// SplitSpaces aligns each space-separated term of the query
	// independently against the candidate and sums the raw scores. A term
	// scoring zero disqualifies the candidate.
	SplitSpaces bool

	// BonusConsecutive is added when the previous diagonal step was also a
	// match.
	BonusConsecutive int

	// BonusWordStart is added when the candidate position begins a word.
	BonusWordStart int

	// BonusCaseMatch is added when the candidate byte equals the query byte
	// with case preserved.
	BonusCaseMatch int
}

// Config selects the algorithm and the minimum-score gate for a prepared
// query. The zero value is not valid; use DefaultConfig.
type Config struct {
	// Algorithm selects the scoring engine.
	Algorithm Algorithm

	// MinScore gates emitted matches: results scoring below it are dropped.
	// Must be in [0, 1].
	MinScore float64

	// Edit configures the edit-distance engine.
	Edit EditDistanceConfig

	// SW configures the Smith-Waterman engine.
	SW SmithWatermanConfig
}

// DefaultEditDistanceConfig returns the edit-distance defaults: bound 2,
// neutral prefix and substring weights.
func DefaultEditDistanceConfig() EditDistanceConfig {
	return EditDistanceConfig{
		MaxEditDistance: 2,
		PrefixWeight:    1.0,
		SubstringWeight: 1.0,
	}
}

// DefaultSmithWatermanConfig returns the local-alignment defaults.
func DefaultSmithWatermanConfig() SmithWatermanConfig {
	return SmithWatermanConfig{
		MatchScore:       16,
		MismatchPenalty:  4,
		GapStartPenalty:  3,
		GapExtendPenalty: 1,
		SplitSpaces:      true,
		BonusConsecutive: 4,
		BonusWordStart:   8,
		BonusCaseMatch:   2,
	}
}

// DefaultConfig returns the default configuration: edit-distance scoring
// with no minimum-score gate.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgoEditDistance,
		MinScore:  0.0,
		Edit:      DefaultEditDistanceConfig(),
		SW:        DefaultSmithWatermanConfig(),
	}
}

// Validate checks the construction-time preconditions. Violations are
// programmer errors; they are reported once here so the per-candidate hot
// path never re-checks them.
func (c Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("query: MinScore %v out of range [0, 1]", c.MinScore)
	}
	if c.Algorithm != AlgoEditDistance && c.Algorithm != AlgoSmithWaterman {
		return fmt.Errorf("query: unknown algorithm %d", int(c.Algorithm))
	}
	if c.Edit.MaxEditDistance < 0 {
		return fmt.Errorf("query: MaxEditDistance %d must be >= 0", c.Edit.MaxEditDistance)
	}
	if c.Edit.PrefixWeight < 0 || c.Edit.SubstringWeight < 0 {
		return fmt.Errorf("query: prefix/substring weights must be >= 0")
	}
	if c.SW.MatchScore <= 0 {
		return fmt.Errorf("query: MatchScore %d must be > 0", c.SW.MatchScore)
	}
	if c.SW.MismatchPenalty < 0 || c.SW.GapStartPenalty < 0 || c.SW.GapExtendPenalty < 0 {
		return fmt.Errorf("query: SW penalties must be >= 0")
	}
	if c.SW.BonusConsecutive < 0 || c.SW.BonusWordStart < 0 || c.SW.BonusCaseMatch < 0 {
		return fmt.Errorf("query: SW bonuses must be >= 0")
	}
	return nil
}
