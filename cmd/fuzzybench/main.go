// Package main provides fuzzybench, a catalog benchmark driver: it loads a
// TSV catalog, scores every row against a query, and reports the top
// matches plus throughput figures.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/coregx/fuzzmatch"
)

type options struct {
	file     string
	column   int
	sw       bool
	minScore float64
	top      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fuzzybench:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "fuzzybench --file <catalog.tsv> <query>",
		Short: "Benchmark fuzzy scoring over a TSV catalog",
		Long: `fuzzybench loads one column of a TSV catalog, scores every row against
the query, and prints the top matches with throughput figures. It is the
measurement harness for tuning scoring configurations against real
catalogs (tickers, identifiers, product names).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "TSV catalog path (required)")
	cmd.Flags().IntVar(&opts.column, "col", 0, "zero-based TSV column to score")
	cmd.Flags().BoolVar(&opts.sw, "sw", false, "score with Smith-Waterman local alignment")
	cmd.Flags().Float64Var(&opts.minScore, "score", 0.0, "minimum score in [0,1]")
	cmd.Flags().IntVar(&opts.top, "top", 10, "number of top matches to report")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(opts options, queryStr string, out io.Writer) error {
	catalog, bytesRead, err := loadTSV(opts.file, opts.column)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return fmt.Errorf("no rows in column %d of %s", opts.column, opts.file)
	}

	cfg := fuzzmatch.DefaultConfig()
	cfg.MinScore = opts.minScore
	if opts.sw {
		cfg.Algorithm = fuzzmatch.AlgoSmithWaterman
	}
	q, err := fuzzmatch.PrepareWithConfig(queryStr, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	top := fuzzmatch.TopMatches(catalog, q, opts.top)
	elapsed := time.Since(start)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Candidate", "Kind", "Score"})
	for i, m := range top {
		t.AppendRow(table.Row{i + 1, m.Candidate, m.Kind.String(), fmt.Sprintf("%.4f", m.Score)})
	}
	t.Render()

	perSec := float64(len(catalog)) / elapsed.Seconds()
	fmt.Fprintf(out, "\n%s candidates (%s) in %s — %s candidates/s\n",
		humanize.Comma(int64(len(catalog))),
		humanize.Bytes(uint64(bytesRead)),
		elapsed.Round(time.Microsecond),
		humanize.CommafWithDigits(perSec, 0))
	return nil
}

// loadTSV reads one column of a TSV file, skipping blank lines and rows
// without enough columns.
func loadTSV(path string, col int) (rows []string, bytesRead int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		bytesRead += len(line) + 1
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if col >= len(fields) {
			continue
		}
		rows = append(rows, fields[col])
	}
	return rows, bytesRead, sc.Err()
}
