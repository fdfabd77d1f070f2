package rewrite

import "github.com/libsemigroups/libsemigroups-sub005/present"

// CriticalPair is a pair of words produced by overlapping two active
// rules' left-hand sides; if they rewrite to different normal forms the
// system is not confluent at this overlap.
type CriticalPair struct {
	U, V present.Word
}

// Overlaps enumerates every overlap between the active rules' left-hand
// sides whose overlap length is at most maxOverlapLength (0 means
// unbounded), including a rule overlapping with itself. For an overlap of
// length k between the suffix of rule i's lhs and the prefix of rule j's
// lhs, the combined word w = lhs_i ++ lhs_j[k:] rewrites two ways: via
// rule i at the front, or via rule j at the offset where it occurs in w;
// these two one-step reductions are returned as a CriticalPair's inputs
// to Rewrite by the caller (see Confluent).
func (s *System) Overlaps(maxOverlapLength int) []CriticalPair {
	active := s.ActiveRules()
	var pairs []CriticalPair
	for _, ri := range active {
		for _, rj := range active {
			maxK := len(ri.Lhs)
			if len(rj.Lhs) < maxK {
				maxK = len(rj.Lhs)
			}
			if maxOverlapLength > 0 && maxOverlapLength < maxK {
				maxK = maxOverlapLength
			}
			for k := 1; k <= maxK; k++ {
				if !suffixEqualsPrefix(ri.Lhs, rj.Lhs, k) {
					continue
				}
				n1 := len(ri.Lhs)
				u := make(present.Word, 0, len(rj.Rhs)+n1-k)
				u = append(u, ri.Rhs...)
				u = append(u, rj.Lhs[k:]...)
				v := make(present.Word, 0, n1-k+len(rj.Rhs))
				v = append(v, ri.Lhs[:n1-k]...)
				v = append(v, rj.Rhs...)
				pairs = append(pairs, CriticalPair{U: u, V: v})
			}
		}
	}
	return pairs
}

func suffixEqualsPrefix(a, b present.Word, k int) bool {
	if k > len(a) || k > len(b) {
		return false
	}
	for i := 0; i < k; i++ {
		if a[len(a)-k+i] != b[i] {
			return false
		}
	}
	return true
}

// Confluent reports whether every critical pair (bounded by
// maxOverlapLength) reduces to a single normal form under the current
// active rules; for the first pair that fails to do so it also returns
// the two distinct normal forms that pair reduces to (zero value if
// confluent).
func (s *System) Confluent(maxOverlapLength int) (bool, CriticalPair) {
	for _, p := range s.Overlaps(maxOverlapLength) {
		ru := s.Rewrite(p.U)
		rv := s.Rewrite(p.V)
		if !ru.Equal(rv) {
			return false, CriticalPair{U: ru, V: rv}
		}
	}
	return true, CriticalPair{}
}
