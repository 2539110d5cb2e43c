// Package main provides fuzzygrep, a streaming filter that reads stdin
// line-by-line, scores each line against a query, and writes matching
// lines to stdout preserving input order.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fuzzygrep:", err)
		os.Exit(1)
	}
}
