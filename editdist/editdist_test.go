package editdist

import (
	"testing"

	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
)

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

func TestRunSingleSubstitution(t *testing.T) {
	res := run(t, "getUser", "setUser", query.DefaultConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	if res.Distance != 1 {
		t.Errorf("Distance = %d, want 1", res.Distance)
	}
	if res.End != 7 {
		t.Errorf("End = %d, want 7", res.End)
	}
	if res.GapRuns != 0 {
		t.Errorf("GapRuns = %d, want 0", res.GapRuns)
	}
	// Matched positions 1..6; position 3 is the 'U' word start (+8), and
	// five of the positions continue a consecutive run (+4 each).
	if res.BonusSum != 28 {
		t.Errorf("BonusSum = %d, want 28", res.BonusSum)
	}
}

func TestRunTransposition(t *testing.T) {
	// "gteuser" needs a single adjacent transposition to become "getuser".
	res := run(t, "gteuser", "getuser", query.DefaultConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	if res.Distance != 1 {
		t.Errorf("Distance = %d, want 1 (transposition)", res.Distance)
	}
}

func TestRunBestPrefixWindow(t *testing.T) {
	// Cost 1 is reachable against both "getuse" (delete r) and "getusex"
	// (substitute r); ties break toward the shorter prefix.
	res := run(t, "getuser", "getusexyzabc", query.DefaultConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	if res.Distance != 1 {
		t.Errorf("Distance = %d, want 1", res.Distance)
	}
	if res.End != 6 {
		t.Errorf("End = %d, want 6 (ties break toward shorter prefix)", res.End)
	}
}

func TestRunRejectsBeyondBound(t *testing.T) {
	res := run(t, "getuser", "gxyxyxy", query.DefaultConfig())
	if res.OK {
		t.Fatalf("expected rejection, got %+v", res)
	}
}

func TestRunBoundIsConfigurable(t *testing.T) {
	cfg := query.DefaultConfig()
	cfg.Edit.MaxEditDistance = 1

	// Two substitutions: out of budget under k = 1.
	res := run(t, "getuser", "gatusar", cfg)
	if res.OK {
		t.Fatalf("expected rejection under k=1, got %+v", res)
	}

	cfg.Edit.MaxEditDistance = 2
	res = run(t, "getuser", "gatusar", cfg)
	if !res.OK || res.Distance != 2 {
		t.Fatalf("expected distance 2 under k=2, got %+v", res)
	}
}

func TestRunAcronymFull(t *testing.T) {
	res := run(t, "bms", "Bristol-Myers Squibb", query.DefaultConfig())

	if !res.OK {
		t.Fatal("expected match")
	}
	if !res.AcronymFull {
		t.Errorf("AcronymFull = false, want true (%+v)", res)
	}
}

func TestRunAcronymPartialFeedsDP(t *testing.T) {
	// Initials are b, m, s: "bmx" matches two of three in order, which
	// clears the ceil(q/2) threshold and tags the DP outcome.
	res := run(t, "bmx", "Bristol-Myers Squibb", query.DefaultConfig())

	if !res.OK {
		t.Fatalf("expected match, got %+v", res)
	}
	if res.AcronymFull {
		t.Error("AcronymFull = true, want false")
	}
	if res.AcronymInitials != 2 {
		t.Errorf("AcronymInitials = %d, want 2", res.AcronymInitials)
	}
}

func TestRunAcronymRequiresEnoughWords(t *testing.T) {
	// Two words cannot spell a three-letter acronym, so the acronym path
	// never fires and the DP decides the candidate on distance alone.
	res := run(t, "bax", "big apple", query.DefaultConfig())
	if res.AcronymFull {
		t.Errorf("unexpected full acronym: %+v", res)
	}
	if res.AcronymInitials != 0 {
		t.Errorf("AcronymInitials = %d, want 0", res.AcronymInitials)
	}
}

func TestOneCharFastPath(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		wantOK    bool
		wantPos   int
		wantWord  bool
	}{
		{"interior", "x", "axb", true, 1, false},
		{"word_start", "x", "a-xb", true, 2, true},
		{"absent", "x", "abc", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.query, tt.candidate, query.DefaultConfig())
			if res.OK != tt.wantOK {
				t.Fatalf("OK = %v, want %v", res.OK, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if !res.OneChar {
				t.Error("OneChar = false, want true")
			}
			if res.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d", res.Pos, tt.wantPos)
			}
			if res.PosWordStart != tt.wantWord {
				t.Errorf("PosWordStart = %v, want %v", res.PosWordStart, tt.wantWord)
			}
		})
	}
}

func TestRunMatchPositionsAscending(t *testing.T) {
	q, err := query.New("getuser", query.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	buf := scratch.New()
	buf.Reset()
	orig := []byte("setuser")
	buf.Folded = query.AppendFolded(buf.Folded[:0], orig)

	res := Run(q, orig, buf)
	if !res.OK {
		t.Fatal("expected match")
	}
	for i := 1; i < len(buf.MatchPos); i++ {
		if buf.MatchPos[i] <= buf.MatchPos[i-1] {
			t.Fatalf("MatchPos not ascending: %v", buf.MatchPos)
		}
	}
	if len(buf.MatchPos) != 6 {
		t.Errorf("len(MatchPos) = %d, want 6", len(buf.MatchPos))
	}
}
