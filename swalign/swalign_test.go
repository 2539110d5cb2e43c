package swalign

import (
	"testing"

	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
)

func swConfig() query.Config {
	cfg := query.DefaultConfig()
	cfg.Algorithm = query.AlgoSmithWaterman
	return cfg
}

func run(t *testing.T, qs, cand string, cfg query.Config) Result {
	t.Helper()
	q, err := query.New(qs, cfg)
	if err != nil {
		t.Fatal(err)
	}
	buf := scratch.New()
	buf.Reset()
	orig := []byte(cand)
	buf.Folded = query.AppendFolded(buf.Folded[:0], orig)
	return Run(q, orig, buf)
}

func TestRunExactRunScore(t *testing.T) {
	// "user" lands at the word start of "xx_user": first byte collects
	// match+wordStart+case = 26, the remaining three collect
	// match+consecutive+case = 22 each.
	res := run(t, "user", "xx_user", swConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	if res.Raw != 92 {
		t.Errorf("Raw = %d, want 92", res.Raw)
	}
	if res.QEff != 4 {
		t.Errorf("QEff = %d, want 4", res.QEff)
	}
}

func TestRunGapCostsStartPenalty(t *testing.T) {
	// "ur" against "u_r": two bonus-laden matches minus one opened gap.
	// u: 16+8+2 = 26; r: 16+8+2 = 26 (word start after '_'); gap: -3.
	res := run(t, "ur", "u_r", swConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	if res.Raw != 49 {
		t.Errorf("Raw = %d, want 49", res.Raw)
	}
}

func TestRunSplitSpacesSumsTerms(t *testing.T) {
	res := run(t, "get user", "getUserById", swConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	// get: 26+22+22 = 70. user: 24+22+22+22 = 90 (the 'U' loses the case
	// bonus but gains the camelCase word start).
	if res.Raw != 160 {
		t.Errorf("Raw = %d, want 160", res.Raw)
	}
	if res.QEff != 7 {
		t.Errorf("QEff = %d, want 7 (space excluded)", res.QEff)
	}
}

func TestRunSplitBeatsWholeQueryAlignment(t *testing.T) {
	cand := "getUserById"

	split := run(t, "get user", cand, swConfig())
	if !split.OK {
		t.Fatal("split: expected match")
	}

	noSplit := swConfig()
	noSplit.SW.SplitSpaces = false
	whole := run(t, "get user", cand, noSplit)
	if !whole.OK {
		t.Fatal("whole: expected match")
	}

	if split.Raw <= whole.Raw {
		t.Errorf("split Raw = %d, want > whole Raw %d", split.Raw, whole.Raw)
	}
}

func TestRunZeroScoringTermDisqualifies(t *testing.T) {
	res := run(t, "get xqz", "getUserById", swConfig())
	if res.OK {
		t.Fatalf("expected disqualification, got %+v", res)
	}
}

func TestRunCaseBonusPrefersPreservedCase(t *testing.T) {
	cfg := swConfig()

	upper := run(t, "USR", "USERID", cfg)
	lower := run(t, "USR", "userid", cfg)
	if !upper.OK || !lower.OK {
		t.Fatal("expected both to match")
	}
	if upper.Raw <= lower.Raw {
		t.Errorf("case-preserved Raw = %d, want > folded Raw %d", upper.Raw, lower.Raw)
	}
}

func TestRunNoMatchReturnsNotOK(t *testing.T) {
	res := run(t, "xyz", "abcabc", swConfig())
	if res.OK {
		t.Fatalf("expected no match, got %+v", res)
	}
}

func TestRunRecordsAnchor(t *testing.T) {
	q, err := query.New("user", swConfig())
	if err != nil {
		t.Fatal(err)
	}
	buf := scratch.New()
	buf.Reset()
	orig := []byte("xx_user")
	buf.Folded = query.AppendFolded(buf.Folded[:0], orig)

	res := Run(q, orig, buf)
	if !res.OK {
		t.Fatal("expected match")
	}
	if buf.MaxScore != 92 {
		t.Errorf("MaxScore = %d, want 92", buf.MaxScore)
	}
	// Anchor is the end of the aligned run: query position 4, candidate
	// position 7 (1-based DP coordinates).
	if buf.MaxI != 4 || buf.MaxJ != 7 {
		t.Errorf("anchor = (%d, %d), want (4, 7)", buf.MaxI, buf.MaxJ)
	}
}
