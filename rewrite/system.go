package rewrite

import "github.com/libsemigroups/libsemigroups-sub005/present"

// System is a string-rewriting system: an active/inactive multiset of
// Rules, ordered by Ordering, backed by a trie of active left-hand sides
// for one-pass rewriting.
type System struct {
	ordering   Ordering
	rules      []*Rule
	freeList   []int
	trie       *trie
	trieDirty bool
	maxLhsLen int
}

// New returns an empty rewriting system ordered by ord.
func New(ord Ordering) *System {
	return &System{ordering: ord, trie: newTrie(), trieDirty: true}
}

// Ordering returns the system's reduction ordering.
func (s *System) Ordering() Ordering { return s.ordering }

// NumberOfActiveRules returns the number of currently active rules.
func (s *System) NumberOfActiveRules() int {
	n := 0
	for _, r := range s.rules {
		if r.Active {
			n++
		}
	}
	return n
}

// NumberOfInactiveRules returns the number of rules on the free list.
func (s *System) NumberOfInactiveRules() int { return len(s.freeList) }

// ActiveRules returns a snapshot of the currently active rules.
func (s *System) ActiveRules() []*Rule {
	out := make([]*Rule, 0, s.NumberOfActiveRules())
	for _, r := range s.rules {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

// deactivate marks a rule inactive and returns its slot to the free list.
func (s *System) deactivate(idx int) {
	s.rules[idx].Active = false
	s.freeList = append(s.freeList, idx)
	s.trieDirty = true
}

// activate installs (lhs, rhs) as a new active rule, reusing a free slot
// when one is available, and invalidates the trie.
func (s *System) activate(lhs, rhs present.Word) *Rule {
	r := &Rule{Lhs: lhs, Rhs: rhs, Active: true}
	if len(s.freeList) > 0 {
		idx := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.rules[idx] = r
	} else {
		s.rules = append(s.rules, r)
	}
	if len(lhs) > s.maxLhsLen {
		s.maxLhsLen = len(lhs)
	}
	s.trieDirty = true
	return r
}

// ensureTrie rebuilds the Aho-Corasick automaton over the active rules'
// left-hand sides if it has been invalidated since the last Rewrite.
func (s *System) ensureTrie() {
	if !s.trieDirty {
		return
	}
	t := newTrie()
	for i, r := range s.rules {
		if r.Active {
			t.insert(r.Lhs, i)
		}
	}
	t.build()
	s.trie = t
	s.trieDirty = false
}

// AddRule reduces lhs and rhs against the current active rules, and if
// they differ, orients the surviving pair by Ordering and installs it as
// a new active rule. It returns false, nil if the rule was redundant
// (both sides already reduce to the same word), and false, ErrUnorientable
// if the reduced sides are incomparable under Ordering.
//
// Installing the rule may cause some existing active rules to become
// reducible by it; those are deactivated and re-queued by the caller
// (ordinarily a knuthbendix completion loop) via Reduce.
func (s *System) AddRule(lhs, rhs present.Word) (bool, error) {
	u := s.Rewrite(lhs)
	v := s.Rewrite(rhs)
	if u.Equal(v) {
		return false, nil
	}
	c := s.ordering.Compare(u, v)
	switch {
	case c > 0:
		s.activate(u, v)
	case c < 0:
		s.activate(v, u)
	default:
		return false, ErrUnorientable
	}
	return true, nil
}

// Reduce deactivates every active rule whose left-hand side is reducible
// by some other active rule, re-deriving its replacement by rewriting its
// right-hand side; this keeps the rule set interreduced, as a Knuth-Bendix
// completion pass requires. It returns the set of (lhs, rhs) pairs that
// were displaced and must be re-added via AddRule.
func (s *System) Reduce() [][2]present.Word {
	var displaced [][2]present.Word
	for i, r := range s.rules {
		if !r.Active {
			continue
		}
		r.Active = false
		s.trieDirty = true
		reducedLhs := s.Rewrite(r.Lhs)
		if !reducedLhs.Equal(r.Lhs) {
			displaced = append(displaced, [2]present.Word{r.Lhs, r.Rhs})
			s.deactivate(i)
			continue
		}
		reducedRhs := s.Rewrite(r.Rhs)
		r.Active = true
		s.trieDirty = true
		if !reducedRhs.Equal(r.Rhs) {
			r.Rhs = reducedRhs
		}
	}
	return displaced
}
