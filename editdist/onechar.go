package editdist

import (
	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
	"github.com/coregx/fuzzmatch/simd"
)

// oneChar handles single-byte queries without touching the DP. Any
// candidate containing the byte would match with distance zero, so the
// only signal worth computing is where the first occurrence sits and
// whether it begins a word. For very short queries this path dominates
// benchmarks; it must stay allocation- and DP-free.
func oneChar(qb byte, cand []byte, buf *scratch.Buffer) Result {
	idx := simd.Memchr(buf.Folded, qb)
	if idx < 0 {
		return Result{}
	}
	return Result{
		OK:           true,
		OneChar:      true,
		Pos:          idx,
		PosWordStart: query.IsWordStart(cand, buf.Folded, idx),
	}
}
