package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coregx/fuzzmatch"
)

type options struct {
	sw        bool
	minScore  float64
	maxDist   int
	highlight bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "fuzzygrep [flags] <query>",
		Short: "Filter stdin lines by fuzzy match against a query",
		Long: `fuzzygrep reads stdin line-by-line, scores each line against the query,
and writes matching lines to stdout preserving input order.

The default scorer is bounded edit distance; --sw switches to
Smith-Waterman local alignment, where a query with spaces matches its
terms independently ("get user" finds getUserById).`,
		Example: `  ls | fuzzygrep main
  cut -f2 tickers.tsv | fuzzygrep --score 0.7 aapl
  git ls-files | fuzzygrep --sw --highlight "get user"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&opts.sw, "sw", false, "score with Smith-Waterman local alignment")
	cmd.Flags().Float64Var(&opts.minScore, "score", 0.85, "minimum score in [0,1]")
	cmd.Flags().IntVar(&opts.maxDist, "max-dist", 2, "edit-distance bound (edit-distance mode)")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "color query terms inside matching lines")

	return cmd
}

func run(opts options, queryStr string, in io.Reader, out io.Writer) error {
	// A terminated downstream pager is benign: ignore SIGPIPE and treat
	// EPIPE on write as a clean exit.
	signal.Ignore(syscall.SIGPIPE)

	cfg := fuzzmatch.DefaultConfig()
	cfg.MinScore = opts.minScore
	cfg.Edit.MaxEditDistance = opts.maxDist
	if opts.sw {
		cfg.Algorithm = fuzzmatch.AlgoSmithWaterman
	}
	q, err := fuzzmatch.PrepareWithConfig(queryStr, cfg)
	if err != nil {
		return err
	}

	var hl *highlighter
	if opts.highlight {
		if hl, err = newHighlighter(queryStr); err != nil {
			return err
		}
	}

	buf := fuzzmatch.NewBuffer()
	w := bufio.NewWriter(out)
	defer w.Flush()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if _, ok := fuzzmatch.Score(line, q, buf); !ok {
			continue
		}
		if err := writeLine(w, line, hl); err != nil {
			if errors.Is(err, syscall.EPIPE) {
				return nil
			}
			return err
		}
	}
	return sc.Err()
}

func writeLine(w *bufio.Writer, line []byte, hl *highlighter) error {
	if hl != nil {
		return hl.writeLine(w, line)
	}
	if _, err := w.Write(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
