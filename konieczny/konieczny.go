package konieczny

import (
	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/froidurepin"
	"github.com/libsemigroups/libsemigroups-sub005/runner"
	"github.com/libsemigroups/libsemigroups-sub005/schreiersims"
	"github.com/libsemigroups/libsemigroups-sub005/uf"
)

// DClass is one Green's D-class of the semigroup: the set of elements
// mutually reachable via some combination of right and left
// multiplication. Every element of a D-class shares the same rank.
type DClass struct {
	Rank        int
	Elements    []int // element indices into the Konieczny's FroidurePin
	Idempotents []int // the subset of Elements that are idempotent

	group *schreiersims.SchreierSims // nil unless regular (has an idempotent)
}

// IsRegular reports whether this D-class contains an idempotent (and so
// has a well-defined maximal subgroup).
func (d *DClass) IsRegular() bool { return len(d.Idempotents) > 0 }

// Konieczny decomposes the finite transformation semigroup generated by
// gens into D-classes, representing each regular D-class's maximal
// subgroup via schreiersims.
type Konieczny struct {
	*runner.Runner

	fp       *froidurepin.FroidurePin[element.Transf]
	dClasses []*DClass
	classOf  []int // element index -> index into dClasses
}

// New constructs a Konieczny decomposition engine for the transformation
// semigroup generated by gens.
func New(gens ...element.Transf) *Konieczny {
	k := &Konieczny{fp: froidurepin.New(gens...)}
	k.Runner = runner.New()
	k.Runner.Init(k.runImpl)
	return k
}

// Element returns the i-th element of the underlying enumerated
// semigroup, by discovery index, once enumeration has completed.
func (k *Konieczny) Element(i int) element.Transf { return k.fp.Element(i) }

func (k *Konieczny) runImpl(r *runner.Runner) error {
	if err := k.fp.Run(); err != nil {
		return err
	}
	if r.Stopped() {
		return nil
	}
	n := k.fp.CurrentSize()
	right := k.fp.RightCayleyGraph()
	left := k.fp.LeftCayleyGraph()
	rID, _ := right.SCC()
	lID, _ := left.SCC()

	merge := uf.New(n)
	firstOfR := make(map[int]int)
	firstOfL := make(map[int]int)
	for i := 0; i < n; i++ {
		if j, ok := firstOfR[rID[i]]; ok {
			merge.Unite(i, j)
		} else {
			firstOfR[rID[i]] = i
		}
		if j, ok := firstOfL[lID[i]]; ok {
			merge.Unite(i, j)
		} else {
			firstOfL[lID[i]] = i
		}
	}

	dOf := make(map[int]int) // uf root -> DClass index
	k.classOf = make([]int, n)
	idems := make(map[int]bool)
	for _, idx := range k.fp.Idempotents() {
		idems[idx] = true
	}
	for i := 0; i < n; i++ {
		root := merge.Find(i)
		ci, ok := dOf[root]
		if !ok {
			ci = len(k.dClasses)
			dOf[root] = ci
			k.dClasses = append(k.dClasses, &DClass{Rank: k.fp.Element(i).Rank()})
		}
		k.classOf[i] = ci
		dc := k.dClasses[ci]
		dc.Elements = append(dc.Elements, i)
		if idems[i] {
			dc.Idempotents = append(dc.Idempotents, i)
		}
	}

	for _, dc := range k.dClasses {
		if !dc.IsRegular() {
			continue
		}
		e := k.fp.Element(dc.Idempotents[0])
		hclassIdx := k.hClassOf(dc, dc.Idempotents[0], rID, lID)
		dc.group = buildGroup(e, hclassIdx, k.fp)
	}
	return nil
}

// hClassOf returns the element indices sharing both i's R-class and
// L-class, restricted to dc's elements (dc.Elements is exactly that D-class).
func (k *Konieczny) hClassOf(dc *DClass, i int, rID, lID []int) []int {
	var out []int
	for _, j := range dc.Elements {
		if rID[j] == rID[i] && lID[j] == lID[i] {
			out = append(out, j)
		}
	}
	return out
}

// buildGroup represents the group H-class hclassIdx (containing
// idempotent e) as a permutation group acting on e's image: for h in the
// H-class, h restricted to Im(e) is a bijection of Im(e) onto itself
// (the standard faithful representation of a maximal subgroup of a
// finite transformation semigroup).
func buildGroup(e element.Transf, hclassIdx []int, fp *froidurepin.FroidurePin[element.Transf]) *schreiersims.SchreierSims {
	image := e.Image()
	r := len(image)
	pointIndex := make(map[uint32]int, r)
	for idx, v := range image {
		pointIndex[v] = idx
	}
	ss := schreiersims.New(r)
	for _, hi := range hclassIdx {
		h := fp.Element(hi)
		perm := make(element.Perm, r)
		for idx, v := range image {
			perm[idx] = uint32(pointIndex[h[v]])
		}
		_ = ss.AddGenerator(perm)
	}
	return ss
}

// NumberOfDClasses runs the decomposition to completion and returns the
// number of D-classes found.
func (k *Konieczny) NumberOfDClasses() (int, error) {
	if err := k.Run(); err != nil {
		return 0, err
	}
	return len(k.dClasses), nil
}

// DClasses returns every D-class, completing the decomposition first if
// necessary.
func (k *Konieczny) DClasses() ([]*DClass, error) {
	if _, err := k.NumberOfDClasses(); err != nil {
		return nil, err
	}
	return k.dClasses, nil
}

// DClassOf returns the D-class containing x, or nil if x is not an
// element of the semigroup.
func (k *Konieczny) DClassOf(x element.Transf) (*DClass, error) {
	if _, err := k.NumberOfDClasses(); err != nil {
		return nil, err
	}
	i := k.fp.IndexOf(x)
	if i < 0 {
		return nil, nil
	}
	return k.dClasses[k.classOf[i]], nil
}

// GroupOfDClass returns the SchreierSims permutation group representing
// dc's maximal subgroup (acting on its idempotent's image), or
// ErrNotRegular if dc has no idempotent.
func (k *Konieczny) GroupOfDClass(dc *DClass) (*schreiersims.SchreierSims, error) {
	if !dc.IsRegular() {
		return nil, ErrNotRegular
	}
	return dc.group, nil
}

// Idempotents returns every idempotent element of the semigroup.
func (k *Konieczny) Idempotents() ([]element.Transf, error) {
	if _, err := k.NumberOfDClasses(); err != nil {
		return nil, err
	}
	var out []element.Transf
	for _, i := range k.fp.Idempotents() {
		out = append(out, k.fp.Element(i))
	}
	return out, nil
}

// Size returns the total number of elements in the semigroup.
func (k *Konieczny) Size() (int, error) {
	return k.fp.Size()
}
