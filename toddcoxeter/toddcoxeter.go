package toddcoxeter

import (
	"github.com/libsemigroups/libsemigroups-sub005/digraph"
	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/libsemigroups/libsemigroups-sub005/runner"
)

// ToddCoxeter performs coset enumeration for a presentation: starting
// from the single coset representing the identity (coset 0), it defines
// new cosets as generator images are forced and records a coincidence
// whenever two defining relations trace to different cosets that must in
// fact coincide, until the coset table reaches a fixed point.
//
// The coset table is a digraph.WordGraph whose nodes are "raw" coset ids
// (never reused or renumbered during enumeration) and whose canonical
// identity is tracked separately by a growingUF: reading any table entry
// always resolves through the union-find, so a coincidence never needs
// to eagerly patch edges pointing at the coset it just absorbed.
type ToddCoxeter struct {
	*runner.Runner

	pres *present.Presentation
	opts options

	table  *digraph.WordGraph
	uf     *growingUF
	active []bool
	wordOf []present.Word

	cursor int

	standardized  bool
	standardOrder StandardOrder
	order         []int       // canonical root ids, in current numbering order
	indexOfRoot   map[int]int // canonical root id -> index into order
}

// New constructs a ToddCoxeter for pres, with coset 0 as the identity
// coset (the trivial-subgroup / whole-semigroup starting point).
func New(pres *present.Presentation, opts ...Option) *ToddCoxeter {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	tc := &ToddCoxeter{
		pres:   pres,
		opts:   o,
		table:  digraph.New(1, int(pres.AlphabetSize)),
		uf:     newGrowingUF(),
		active: []bool{true},
		wordOf: []present.Word{{}},
	}
	tc.uf.add()
	tc.Runner = runner.New()
	tc.Runner.Init(tc.runImpl)
	return tc
}

// Strategy returns the configured expansion strategy.
func (tc *ToddCoxeter) Strategy() Strategy { return tc.opts.strategy }

// define ensures coset c (already canonical) has a defined image under
// generator a, creating a new coset if necessary, and returns the
// canonical id of that image.
func (tc *ToddCoxeter) define(c, a int) int {
	c = tc.uf.find(c)
	if t := tc.table.Target(c, a); t != digraph.Undefined {
		return tc.uf.find(int(t))
	}
	n := tc.uf.add()
	tc.table.AddNodes(1)
	tc.active = append(tc.active, true)
	tc.wordOf = append(tc.wordOf, tc.wordOf[c].Append(present.Word{present.Letter(a)}))
	tc.table.SetTarget(c, a, uint32(n))
	if tc.pres.InverseLetters != nil {
		inv := int(tc.pres.InverseLetters[a])
		tc.table.SetTarget(n, inv, uint32(c))
	}
	return n
}

// traceDefine walks w from coset c, defining any missing edge along the
// way ("scan and fill"), and returns the canonical id of the coset
// reached.
func (tc *ToddCoxeter) traceDefine(c int, w present.Word) int {
	cur := tc.uf.find(c)
	for _, l := range w {
		cur = tc.define(cur, int(l))
	}
	return cur
}

// trace walks w from coset c without defining anything, returning
// (target, true) or (-1, false) as soon as an undefined edge is hit.
func (tc *ToddCoxeter) trace(c int, w present.Word) (int, bool) {
	cur := tc.uf.find(c)
	for _, l := range w {
		t := tc.table.Target(cur, int(l))
		if t == digraph.Undefined {
			return -1, false
		}
		cur = tc.uf.find(int(t))
	}
	return cur, true
}

// coincide records that x and y name the same coset, merging their
// classes and cascading any further coincidences forced by conflicting
// generator images, draining a single shared work-list.
func (tc *ToddCoxeter) coincide(x, y int) {
	queue := [][2]int{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		a, b := tc.uf.find(p[0]), tc.uf.find(p[1])
		if a == b {
			continue
		}
		survivor, absorbed, merged := tc.uf.unite(a, b)
		if !merged {
			continue
		}
		tc.active[absorbed] = false
		for g := 0; g < int(tc.pres.AlphabetSize); g++ {
			at := tc.table.Target(absorbed, g)
			if at == digraph.Undefined {
				continue
			}
			st := tc.table.Target(survivor, g)
			if st == digraph.Undefined {
				tc.table.SetTarget(survivor, g, at)
				continue
			}
			queue = append(queue, [2]int{int(st), int(at)})
		}
	}
}

// runImpl is the coset-enumeration loop: each active coset in discovery
// order is expanded (eagerly under HLT, lazily under Felsch) and every
// relation is scanned from it, merging cosets whenever a relation's two
// sides trace to different places.
func (tc *ToddCoxeter) runImpl(r *runner.Runner) error {
	for tc.cursor < len(tc.active) {
		if r.Stopped() {
			return nil
		}
		c := tc.cursor
		if !tc.active[c] || tc.uf.find(c) != c {
			tc.cursor++
			continue
		}
		if tc.opts.strategy == HLT {
			for a := 0; a < int(tc.pres.AlphabetSize); a++ {
				tc.define(c, a)
			}
		}
		for _, rel := range tc.pres.Relations {
			if r.Stopped() {
				return nil
			}
			tL := tc.traceDefine(c, rel.Lhs)
			tR := tc.traceDefine(c, rel.Rhs)
			if tL != tR {
				tc.coincide(tL, tR)
			}
		}
		tc.cursor++
	}
	return nil
}

// canonicalRoots returns every still-active canonical coset id, in
// ascending raw-id order.
func (tc *ToddCoxeter) canonicalRoots() []int {
	var roots []int
	for c := 0; c < len(tc.active); c++ {
		if tc.active[c] && tc.uf.find(c) == c {
			roots = append(roots, c)
		}
	}
	return roots
}

// ensureOrder lazily builds the default (discovery-order) numbering the
// first time a class-numbering operation is needed, if Standardize has
// not already established one.
func (tc *ToddCoxeter) ensureOrder() {
	if tc.order != nil {
		return
	}
	roots := tc.canonicalRoots()
	tc.order = roots
	tc.indexOfRoot = make(map[int]int, len(roots))
	for i, root := range roots {
		tc.indexOfRoot[root] = i
	}
}

// NumberOfClasses runs enumeration to completion and returns the number
// of distinct cosets (classes) found.
func (tc *ToddCoxeter) NumberOfClasses() (int, error) {
	if err := tc.Run(); err != nil {
		return 0, err
	}
	if !tc.Runner.Finished() {
		return 0, ErrNotEnumerated
	}
	tc.ensureOrder()
	return len(tc.order), nil
}

// ClassIndexOf returns the class index (in the current numbering; see
// Standardize) that w reaches from the identity coset. Enumeration must
// have completed; the word is traced by scan-and-fill, so it succeeds
// even for a generator letter no relation happened to force an image for.
func (tc *ToddCoxeter) ClassIndexOf(w present.Word) (int, error) {
	if !tc.Runner.Finished() {
		if _, err := tc.NumberOfClasses(); err != nil {
			return 0, err
		}
	}
	tc.ensureOrder()
	target := tc.traceDefine(0, w)
	idx, ok := tc.indexOfRoot[target]
	if !ok {
		// A coset defined by this trace after enumeration "finished"
		// (possible under Felsch, whose table need not be total): fold
		// it into the existing numbering lazily.
		idx = len(tc.order)
		tc.order = append(tc.order, target)
		tc.indexOfRoot[target] = idx
	}
	return idx, nil
}

// WordOf returns the word first used, during enumeration, to reach class
// k (the "discovery word"): this is a witness word, not necessarily the
// shortlex-least one, unless Standardize(ShortLex) was called first and
// k's class root is still the one originally discovered at index k (see
// the package doc and DESIGN.md's Open Question (a) note).
func (tc *ToddCoxeter) WordOf(k int) (present.Word, error) {
	if _, err := tc.NumberOfClasses(); err != nil {
		return nil, err
	}
	if k < 0 || k >= len(tc.order) {
		return nil, ErrNotEnumerated
	}
	return tc.wordOf[tc.order[k]].Clone(), nil
}

// NonTrivialClasses returns the class indices whose coset absorbed at
// least one coincidence during enumeration, i.e. classes discovered more
// than once under different words before being identified.
func (tc *ToddCoxeter) NonTrivialClasses() ([]int, error) {
	if _, err := tc.NumberOfClasses(); err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for c := 0; c < len(tc.active); c++ {
		counts[tc.uf.find(c)]++
	}
	var out []int
	for root, idx := range tc.indexOfRoot {
		if counts[root] > 1 {
			out = append(out, idx)
		}
	}
	return out, nil
}

// Table returns the underlying coset table (raw ids; resolve through
// ClassIndexOf/canonical lookups rather than reading it directly unless
// you also account for coincidence aliasing).
func (tc *ToddCoxeter) Table() *digraph.WordGraph { return tc.table }
