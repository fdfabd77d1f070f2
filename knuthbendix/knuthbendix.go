package knuthbendix

import (
	"math"

	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/libsemigroups/libsemigroups-sub005/rewrite"
	"github.com/libsemigroups/libsemigroups-sub005/runner"
)

// KnuthBendix completes a presentation into a confluent rewriting
// system. Construct with New, then drive it with Run, RunFor, or
// RunUntil (inherited from the embedded Runner's semantics) before
// calling NormalForm, EqualTo, or Size.
type KnuthBendix struct {
	*runner.Runner

	opts         options
	sys          *rewrite.System
	alphabetSize int
	unorientable []error
}

// New builds a KnuthBendix instance seeded with pres's relations as
// initial rules, oriented by the configured Ordering (ShortLex by
// default). Relations whose sides are incomparable are recorded (see
// Unorientable) and excluded from the starting rule set; completion
// still proceeds with the remaining orientable rules.
func New(pres *present.Presentation, opts ...Option) *KnuthBendix {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	kb := &KnuthBendix{
		Runner:       runner.New(),
		opts:         o,
		sys:          rewrite.New(o.ordering),
		alphabetSize: int(pres.AlphabetSize),
	}
	for _, rel := range pres.Relations {
		kb.addSeedRule(rel.Lhs, rel.Rhs)
	}
	kb.Runner.Init(kb.runImpl)
	return kb
}

func (kb *KnuthBendix) addSeedRule(u, v present.Word) {
	_, err := kb.sys.AddRule(u, v)
	if err != nil {
		kb.unorientable = append(kb.unorientable, err)
	}
}

// Unorientable returns the errors recorded for relations or critical
// pairs that could not be oriented under the current ordering; these do
// not stop completion (spec'd open-question resolution: completion
// continues with the remaining orientable overlaps).
func (kb *KnuthBendix) Unorientable() []error {
	return append([]error(nil), kb.unorientable...)
}

// NumberOfActiveRules returns the number of active rules in the current
// rewriting system.
func (kb *KnuthBendix) NumberOfActiveRules() int { return kb.sys.NumberOfActiveRules() }

// NumberOfInactiveRules returns the number of rules on the free list.
func (kb *KnuthBendix) NumberOfInactiveRules() int { return kb.sys.NumberOfInactiveRules() }

// Confluent reports whether the current rule set is confluent, bounded
// by the configured WithMaxOverlap.
func (kb *KnuthBendix) Confluent() bool {
	confluent, _ := kb.sys.Confluent(kb.opts.maxOverlap)
	return confluent
}

// NormalForm rewrites w to its irreducible form under the current rule
// set.
func (kb *KnuthBendix) NormalForm(w present.Word) present.Word {
	return kb.sys.Rewrite(w)
}

// EqualTo reports whether u and v reduce to the same normal form, i.e.
// represent the same element of the presented semigroup or monoid (only
// reliable once Confluent is true).
func (kb *KnuthBendix) EqualTo(u, v present.Word) bool {
	return kb.NormalForm(u).Equal(kb.NormalForm(v))
}

// Size returns the number of elements of the presented semigroup or
// monoid, computed by counting the nodes of the confluent system's
// Gilman digraph of irreducible words. err is non-nil if the system is
// not yet confluent. ok is false when the Gilman digraph contains a
// reachable cycle, meaning the semigroup is infinite; size is then
// math.MaxInt as a sentinel and should not be used.
func (kb *KnuthBendix) Size() (size int, ok bool, err error) {
	g, gerr := kb.sys.GilmanDigraph(kb.alphabetSize)
	if gerr != nil {
		return 0, false, gerr
	}
	if !g.IsAcyclic() {
		return math.MaxInt, false, nil
	}
	return g.NumberOfNodes(), true, nil
}

// runImpl drives one full Knuth-Bendix completion: repeated passes over
// the active rules' critical pairs, adding an oriented rule for each
// pair that does not already rewrite to a single normal form, until a
// pass makes no further progress (confluent) or the Runner is stopped.
func (kb *KnuthBendix) runImpl(r *runner.Runner) error {
	batches := 0
	for {
		if r.Stopped() {
			return nil
		}
		progressed := false
		for _, p := range kb.sys.Overlaps(kb.opts.maxOverlap) {
			if r.Stopped() {
				return nil
			}
			u := kb.sys.Rewrite(p.U)
			v := kb.sys.Rewrite(p.V)
			if u.Equal(v) {
				continue
			}
			added, err := kb.sys.AddRule(u, v)
			if err != nil {
				kb.unorientable = append(kb.unorientable, err)
				continue
			}
			if added {
				progressed = true
			}
			if kb.opts.maxRules > 0 && kb.sys.NumberOfActiveRules() > kb.opts.maxRules {
				return ErrTooManyRules
			}
		}
		batches++
		if kb.opts.checkConfluence && kb.opts.reportEvery > 0 && batches%kb.opts.reportEvery == 0 {
			if confluent, _ := kb.sys.Confluent(kb.opts.maxOverlap); confluent {
				return nil
			}
		}
		for _, pair := range kb.sys.Reduce() {
			added, err := kb.sys.AddRule(pair[0], pair[1])
			if err != nil {
				kb.unorientable = append(kb.unorientable, err)
				continue
			}
			if added {
				progressed = true
			}
		}
		if !progressed {
			return nil
		}
	}
}
