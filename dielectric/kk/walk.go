package kk

// pairWalk yields index pairs (s-itr, s+itr) for itr = 1 .. max(s, n-s)-1.
// An index outside [0, n) is reported as -1; the bound guarantees that at
// least one index of every pair is in range.
type pairWalk struct {
	s, n  int
	itr   int
	limit int
}

func newPairWalk(s, n int) pairWalk {
	return pairWalk{s: s, n: n, limit: max(s, n-s)}
}

func (w *pairWalk) next() (lo, hi int, ok bool) {
	w.itr++
	if w.itr >= w.limit {
		return -1, -1, false
	}

	lo, hi = w.s-w.itr, w.s+w.itr
	if lo < 0 {
		lo = -1
	}

	if hi >= w.n {
		hi = -1
	}

	return lo, hi, true
}
