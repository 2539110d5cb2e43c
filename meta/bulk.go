package meta

import (
	"container/heap"
	"sort"

	"github.com/coregx/fuzzmatch/query"
	"github.com/coregx/fuzzmatch/scratch"
)

// Bulk wrappers over the core. They are convenience surface, not hot path:
// each owns a private buffer and runs candidates sequentially. Callers that
// want parallelism shard the candidate slice and merge, one buffer per
// goroutine.

// CandidateMatch pairs a matching candidate with its score and kind.
type CandidateMatch struct {
	Candidate string
	Match
}

// Matches scores every candidate and returns the matches sorted by
// descending score. Candidates with equal scores keep their input order.
func Matches(candidates []string, q *query.Query) []CandidateMatch {
	buf := scratch.New()
	var out []CandidateMatch
	for _, c := range candidates {
		if m, ok := Score([]byte(c), q, buf); ok {
			out = append(out, CandidateMatch{Candidate: c, Match: m})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// TopMatches returns the limit best matches sorted by descending score,
// maintaining a min-heap of size limit so memory stays O(limit) however
// large the candidate stream is. Equal scores keep input order.
func TopMatches(candidates []string, q *query.Query, limit int) []CandidateMatch {
	if limit <= 0 {
		return nil
	}

	buf := scratch.New()
	h := make(matchHeap, 0, limit)
	for i, c := range candidates {
		m, ok := Score([]byte(c), q, buf)
		if !ok {
			continue
		}
		item := heapItem{cm: CandidateMatch{Candidate: c, Match: m}, idx: i}
		if len(h) < limit {
			heap.Push(&h, item)
			continue
		}
		// Replace the worst kept match when the newcomer beats it.
		if worse(h[0], item) {
			h[0] = item
			heap.Fix(&h, 0)
		}
	}

	out := make([]CandidateMatch, len(h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(heapItem).cm
	}
	return out
}

type heapItem struct {
	cm  CandidateMatch
	idx int
}

// worse reports whether a ranks below b: lower score, or equal score and
// later input position.
func worse(a, b heapItem) bool {
	if a.cm.Score != b.cm.Score {
		return a.cm.Score < b.cm.Score
	}
	return a.idx > b.idx
}

// matchHeap is a min-heap with the worst kept match at the root.
type matchHeap []heapItem

func (h matchHeap) Len() int           { return len(h) }
func (h matchHeap) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h matchHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *matchHeap) Push(x any)        { *h = append(*h, x.(heapItem)) }
func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
