package editdist

// acronym tests the query against the candidate's word initials. full is
// true when the first len(qf) initials spell the query exactly ("bms"
// against "Bristol-Myers Squibb"). n is the greedy in-order count of query
// characters found among all initials, which feeds the partial-acronym
// bonus when the full test fails.
//
// The caller guarantees len(starts) >= len(qf).
func acronym(qf, c []byte, starts []int32) (full bool, n int) {
	full = true
	for i := 0; i < len(qf); i++ {
		if c[starts[i]] != qf[i] {
			full = false
			break
		}
	}
	if full {
		return true, len(qf)
	}

	// Greedy subsequence match of query characters against the initial
	// sequence.
	qi := 0
	for _, s := range starts {
		if qi == len(qf) {
			break
		}
		if c[s] == qf[qi] {
			qi++
		}
	}
	return false, qi
}
