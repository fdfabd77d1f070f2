package froidurepin

import (
	"github.com/libsemigroups/libsemigroups-sub005/digraph"
	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/libsemigroups/libsemigroups-sub005/runner"
)

// FroidurePin enumerates the elements of the semigroup (or, if one
// generator equals the identity element, monoid) generated by a finite
// set of generators of element type E, via breadth-first closure under
// multiplication by each generator. Construct with New, then call
// Run/RunFor/RunUntil (inherited from the embedded Runner) to drive
// enumeration; partial results are available at any point via the
// cursor-based accessors below, matching spec.md's resumable-enumeration
// requirement.
type FroidurePin[E element.Element[E]] struct {
	*runner.Runner

	gens []E

	elements []E
	index    map[uint64][]int // hash bucket -> element indices with that hash
	wordOf   [][]int          // wordOf[i] = sequence of generator indices producing elements[i]

	left, right *digraph.WordGraph // Cayley graphs, degree = len(gens)

	cursor int // next unprocessed element index (the resumable cursor)

	tid int // thread-id hint passed to Product, fixed per instance
}

// New constructs a FroidurePin seeded with gens. Every generator keeps its
// own label in the Cayley graphs, duplicates included; equal generators
// yield a single element, whose word is the first occurrence's.
func New[E element.Element[E]](gens ...E) *FroidurePin[E] {
	fp := &FroidurePin[E]{
		gens:  append([]E(nil), gens...),
		index: make(map[uint64][]int),
	}
	fp.left = digraph.New(0, len(gens))
	fp.right = digraph.New(0, len(gens))
	for gi, g := range fp.gens {
		if _, existing := fp.find(g); existing >= 0 {
			continue
		}
		fp.addElement(g, []int{gi})
	}
	fp.Runner = runner.New()
	fp.Runner.Init(fp.runImpl)
	return fp
}

// find returns the index of x among the already-discovered elements, or
// (zero value, -1) if not present.
func (fp *FroidurePin[E]) find(x E) (E, int) {
	for _, i := range fp.index[x.Hash()] {
		if fp.elements[i].Equal(x) {
			return fp.elements[i], i
		}
	}
	var zero E
	return zero, -1
}

// addElement appends x as a newly discovered element with factorisation
// word, growing both Cayley graphs by one node. x is cloned into
// independent storage before being stored: callers (runImpl, the left
// Cayley fill-in, New) reuse a single scratch Product-destination across
// the whole enumeration, and every Product implementation here is free
// to reuse *out's backing array when its shape already matches, so
// storing x itself would alias that scratch and be silently overwritten
// by the next Product call.
func (fp *FroidurePin[E]) addElement(x E, word []int) int {
	var clone E
	x.Product(&clone, x, x.One(x.Degree()), fp.tid)
	i := len(fp.elements)
	fp.elements = append(fp.elements, clone)
	fp.wordOf = append(fp.wordOf, word)
	fp.index[clone.Hash()] = append(fp.index[clone.Hash()], i)
	fp.left.AddNodes(1)
	fp.right.AddNodes(1)
	return i
}

// NumberOfGenerators returns the number of generators, duplicates
// included.
func (fp *FroidurePin[E]) NumberOfGenerators() int { return len(fp.gens) }

// CurrentSize returns the number of elements discovered so far, without
// forcing further enumeration.
func (fp *FroidurePin[E]) CurrentSize() int { return len(fp.elements) }

// Enumerated reports whether the enumeration cursor has reached a fixed
// point (every discovered element has been expanded by every
// generator).
func (fp *FroidurePin[E]) Enumerated() bool {
	return fp.cursor >= len(fp.elements) && fp.Runner.Started()
}

// Size runs enumeration to completion and returns the total element
// count; it is the caller's responsibility to ensure the semigroup is
// finite (an infinite one never returns).
func (fp *FroidurePin[E]) Size() (int, error) {
	if err := fp.Run(); err != nil {
		return 0, err
	}
	return len(fp.elements), nil
}

// Element returns the i-th discovered element (discovery order).
func (fp *FroidurePin[E]) Element(i int) E { return fp.elements[i] }

// Factorisation returns the generator-index word that produces
// Element(i) under repeated Product.
func (fp *FroidurePin[E]) Factorisation(i int) []int {
	return append([]int(nil), fp.wordOf[i]...)
}

// IndexOf returns the discovery index of x, or -1 if x has not been
// discovered (possibly because enumeration has not yet finished).
func (fp *FroidurePin[E]) IndexOf(x E) int {
	_, i := fp.find(x)
	return i
}

// LeftCayleyGraph and RightCayleyGraph return the Cayley digraphs built
// so far: node i, label g has target j iff gens[g] * elements[i] = elements[j]
// (left) or elements[i] * gens[g] = elements[j] (right).
func (fp *FroidurePin[E]) LeftCayleyGraph() *digraph.WordGraph  { return fp.left }
func (fp *FroidurePin[E]) RightCayleyGraph() *digraph.WordGraph { return fp.right }

// Idempotents returns the indices i with Element(i)*Element(i) == Element(i).
func (fp *FroidurePin[E]) Idempotents() []int {
	var out []int
	// prod is only ever compared, never stored, so reusing one scratch
	// buffer across iterations is safe here — unlike addElement, nothing
	// keeps a reference to it past the Equal check below.
	var prod E
	for i, x := range fp.elements {
		x.Product(&prod, x, x, fp.tid)
		if prod.Equal(x) {
			out = append(out, i)
		}
	}
	return out
}

// SortedView returns the discovery indices ordered by the element type's
// Less.
func (fp *FroidurePin[E]) SortedView() []int {
	idx := make([]int, len(fp.elements))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && fp.elements[idx[j]].Less(fp.elements[idx[j-1]]); j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	return idx
}

// Relations returns a defining presentation for the semigroup: one
// relation per non-tree Cayley edge, expressed as generator-index words
// via Factorisation, suitable as knuthbendix/toddcoxeter input.
func (fp *FroidurePin[E]) Relations() []present.Relation {
	var rels []present.Relation
	for i := range fp.elements {
		for g := 0; g < len(fp.gens); g++ {
			j := fp.right.Target(i, g)
			if j == digraph.Undefined {
				continue
			}
			lhs := toWord(append(fp.Factorisation(i), g))
			rhs := toWord(fp.Factorisation(int(j)))
			if lhs.Equal(rhs) {
				continue // tree edge: j was discovered as i*g
			}
			rels = append(rels, present.Relation{Lhs: lhs, Rhs: rhs})
		}
	}
	return rels
}

func toWord(idx []int) present.Word {
	w := make(present.Word, len(idx))
	for i, v := range idx {
		w[i] = present.Letter(v)
	}
	return w
}

// AddGenerators adds new generators and resets the cursor so the next
// Run expands the existing element set under the enlarged generating
// set (spec.md's Closure/AddGenerators operation).
func (fp *FroidurePin[E]) AddGenerators(gens ...E) {
	base := len(fp.gens)
	fp.gens = append(fp.gens, gens...)
	fp.left.AddToOutDegree(len(gens))
	fp.right.AddToOutDegree(len(gens))
	for gi, g := range gens {
		if _, existing := fp.find(g); existing >= 0 {
			continue
		}
		fp.addElement(g, []int{base + gi})
	}
	fp.cursor = 0 // re-scan all known elements against the enlarged generator set
	fp.Runner.Init(fp.runImpl)
}

// Closure is an alias for Size that emphasises the semigroup-closure
// reading of full enumeration.
func (fp *FroidurePin[E]) Closure() (int, error) { return fp.Size() }

// runImpl is the breadth-first enumeration loop: for each unprocessed
// element, multiply by each generator on the right, discovering new
// elements or recording an existing one as a Cayley-graph edge.
func (fp *FroidurePin[E]) runImpl(r *runner.Runner) error {
	var prod E
	for fp.cursor < len(fp.elements) {
		if r.Stopped() {
			return nil
		}
		i := fp.cursor
		x := fp.elements[i]
		for g, gen := range fp.gens {
			x.Product(&prod, x, gen, fp.tid)
			if _, existing := fp.find(prod); existing >= 0 {
				fp.right.SetTarget(i, g, uint32(existing))
				continue
			}
			word := append(append([]int(nil), fp.wordOf[i]...), g)
			j := fp.addElement(prod, word)
			fp.right.SetTarget(i, g, uint32(j))
		}
		fp.cursor++
	}
	// Right multiplication alone discovers every element of the
	// semigroup (any generator word is some right-associated chain), so
	// once the cursor reaches a fixed point every left product gen*x is
	// guaranteed already present; fill in the left Cayley graph now.
	for i, x := range fp.elements {
		if r.Stopped() {
			return nil
		}
		for g, gen := range fp.gens {
			var lprod E
			gen.Product(&lprod, gen, x, fp.tid)
			if _, existing := fp.find(lprod); existing >= 0 {
				fp.left.SetTarget(i, g, uint32(existing))
			}
		}
	}
	return nil
}
