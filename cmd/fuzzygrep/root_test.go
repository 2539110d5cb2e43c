package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestRunFiltersAndPreservesOrder(t *testing.T) {
	in := strings.NewReader("getUserById\nfetchData\ngetUser\nsetUser\n")
	var out bytes.Buffer

	opts := options{minScore: 0.85, maxDist: 2}
	if err := run(opts, "getUser", in, &out); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	want := "getUserById\ngetUser\nsetUser\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunMinScoreFlag(t *testing.T) {
	in := strings.NewReader("getUserById\nsetUser\n")
	var out bytes.Buffer

	// setUser scores ≈0.91; a 0.95 floor keeps only the prefix hit.
	opts := options{minScore: 0.95, maxDist: 2}
	if err := run(opts, "getUser", in, &out); err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "getUserById\n" {
		t.Errorf("output = %q, want %q", got, "getUserById\n")
	}
}

func TestRunSmithWatermanFlag(t *testing.T) {
	in := strings.NewReader("getUserById\nunrelated\n")
	var out bytes.Buffer

	opts := options{sw: true, minScore: 0.5, maxDist: 2}
	if err := run(opts, "get user", in, &out); err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "getUserById\n" {
		t.Errorf("output = %q, want %q", got, "getUserById\n")
	}
}

func TestRunInvalidConfig(t *testing.T) {
	opts := options{minScore: 1.5, maxDist: 2}
	err := run(opts, "x", strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for out-of-range score")
	}
}

func TestRunHighlightPassesContentThrough(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	in := strings.NewReader("getUserById\n")
	var out bytes.Buffer

	opts := options{minScore: 0.8, maxDist: 2, highlight: true}
	if err := run(opts, "user", in, &out); err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "getUserById\n" {
		t.Errorf("output = %q, want %q", got, "getUserById\n")
	}
}

func TestRootCmdRejectsMissingQuery(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected argument error")
	}
}
