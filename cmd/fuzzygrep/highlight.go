package main

import (
	"bufio"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/fatih/color"

	"github.com/coregx/fuzzmatch/query"
)

// highlighter colors verbatim occurrences of the query's space-separated
// terms inside matching lines. Occurrences are found case-insensitively
// with an Aho-Corasick automaton over the folded terms, one pass per line
// regardless of term count.
//
// Highlighting is display-only: a line can match fuzzily without any term
// occurring verbatim, in which case it is printed unstyled.
type highlighter struct {
	auto   *ahocorasick.Automaton
	style  *color.Color
	folded []byte
}

func newHighlighter(queryStr string) (*highlighter, error) {
	terms := strings.Fields(queryStr)
	if len(terms) == 0 {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, t := range terms {
		builder.AddPattern(query.AppendFolded(nil, []byte(t)))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &highlighter{
		auto:  auto,
		style: color.New(color.FgHiYellow, color.Bold),
	}, nil
}

func (h *highlighter) writeLine(w *bufio.Writer, line []byte) error {
	h.folded = query.AppendFolded(h.folded[:0], line)

	pos := 0
	for pos < len(h.folded) {
		m := h.auto.Find(h.folded, pos)
		if m == nil {
			break
		}
		if _, err := w.Write(line[pos:m.Start]); err != nil {
			return err
		}
		if _, err := h.style.Fprint(w, string(line[m.Start:m.End])); err != nil {
			return err
		}
		pos = m.End
	}
	if _, err := w.Write(line[pos:]); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
