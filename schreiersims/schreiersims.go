package schreiersims

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/runner"
)

// ssLevel is one level of the stabilizer chain: the subgroup fixing
// base[0..i-1] pointwise, its known generators, and the orbit of
// base[i] under those generators with a Schreier transversal.
type ssLevel struct {
	basePoint      int
	generators     []element.Perm
	orbit          []int
	transversal    map[int]element.Perm
	transversalInv map[int]element.Perm
}

// SchreierSims holds a stabilizer chain for a permutation group of fixed
// degree, built incrementally from AddGenerator/AddBasePoint calls and
// completed to a genuine base and strong generating set on demand (via
// Run, or implicitly by Contains/Size). Sift does not complete the
// chain; it sifts through the chain as it stands.
type SchreierSims struct {
	*runner.Runner

	degree  int
	levels  []*ssLevel
	pending []element.Perm
}

// New constructs an empty chain over permutations of the given degree
// (points 0..degree-1).
func New(degree int) *SchreierSims {
	s := &SchreierSims{degree: degree}
	s.Runner = runner.New()
	s.Runner.Init(s.runImpl)
	return s
}

// Degree returns the fixed permutation degree.
func (s *SchreierSims) Degree() int { return s.degree }

// AddGenerator adds g to the generating set and marks the chain for
// recomputation (the next Run/Contains/Size call will incorporate it).
func (s *SchreierSims) AddGenerator(g element.Perm) error {
	if g.Degree() != s.degree {
		return fmt.Errorf("schreiersims: AddGenerator: %w", ErrDegreeMismatch)
	}
	s.pending = append(s.pending, g)
	s.Runner.Init(s.runImpl)
	return nil
}

// AddBasePoint appends pt to the end of the current base, seeding an
// empty level there; this lets a caller fix a preferred base prefix
// before (or between) AddGenerator calls.
func (s *SchreierSims) AddBasePoint(pt int) error {
	if pt < 0 || pt >= s.degree {
		return fmt.Errorf("schreiersims: AddBasePoint(%d): %w", pt, ErrDegreeMismatch)
	}
	for _, lvl := range s.levels {
		if lvl.basePoint == pt {
			return fmt.Errorf("schreiersims: AddBasePoint(%d): %w", pt, ErrDuplicateBasePoint)
		}
	}
	s.levels = append(s.levels, newLevel(pt))
	s.Runner.Init(s.runImpl)
	return nil
}

func newLevel(pt int) *ssLevel {
	return &ssLevel{basePoint: pt}
}

// Base returns the current base points, in chain order.
func (s *SchreierSims) Base() []int {
	out := make([]int, len(s.levels))
	for i, lvl := range s.levels {
		out[i] = lvl.basePoint
	}
	return out
}

// StrongGenerators returns every generator recorded across the chain
// (duplicates across levels are possible and harmless).
func (s *SchreierSims) StrongGenerators() []element.Perm {
	var out []element.Perm
	for _, lvl := range s.levels {
		out = append(out, lvl.generators...)
	}
	return out
}

func (s *SchreierSims) identity() element.Perm {
	id := make(element.Perm, s.degree)
	for i := range id {
		id[i] = uint32(i)
	}
	return id
}

func isIdentityPerm(g element.Perm) bool {
	for i, v := range g {
		if int(v) != i {
			return false
		}
	}
	return true
}

// baseSet returns the current base points as a membership set.
func (s *SchreierSims) baseSet() map[int]bool {
	m := make(map[int]bool, len(s.levels))
	for _, lvl := range s.levels {
		m[lvl.basePoint] = true
	}
	return m
}

func firstMovedPointExcluding(g element.Perm, exclude map[int]bool) int {
	for p := 0; p < g.Degree(); p++ {
		if int(g[p]) != p && !exclude[p] {
			return p
		}
	}
	return -1
}

// buildOrbitTransversal recomputes lvl's orbit and Schreier transversal
// from its current generator set via BFS from lvl.basePoint.
func (s *SchreierSims) buildOrbitTransversal(lvl *ssLevel) {
	id := s.identity()
	lvl.orbit = []int{lvl.basePoint}
	lvl.transversal = map[int]element.Perm{lvl.basePoint: id}
	lvl.transversalInv = map[int]element.Perm{lvl.basePoint: id}
	visited := map[int]bool{lvl.basePoint: true}
	queue := []int{lvl.basePoint}
	for len(queue) > 0 {
		pt := queue[0]
		queue = queue[1:]
		for _, gen := range lvl.generators {
			img := gen.OnPoint(pt)
			if visited[img] {
				continue
			}
			visited[img] = true
			var rep element.Perm
			lvl.transversal[pt].Product(&rep, lvl.transversal[pt], gen, 0)
			lvl.transversal[img] = rep
			lvl.transversalInv[img] = rep.Inverse()
			lvl.orbit = append(lvl.orbit, img)
			queue = append(queue, img)
		}
	}
}

// Sift reduces g through the stabilizer chain, returning the residue
// (identity iff g belongs to the group described by the *completed*
// chain) and the level at which reduction stopped (len(levels) iff it
// ran the whole chain).
func (s *SchreierSims) Sift(g element.Perm) (element.Perm, int) {
	residue := append(element.Perm(nil), g...)
	for i, lvl := range s.levels {
		pt := residue.OnPoint(lvl.basePoint)
		invRep, ok := lvl.transversalInv[pt]
		if !ok {
			return residue, i
		}
		var next element.Perm
		residue.Product(&next, residue, invRep, 0)
		residue = next
	}
	return residue, len(s.levels)
}

// runImpl runs the Schreier generator closure to a fixed point: for
// every orbit point and generator at every level, the corresponding
// Schreier generator is sifted; any non-identity residue is a new strong
// generator (possibly at a freshly discovered base point), and the
// process repeats until nothing changes.
func (s *SchreierSims) runImpl(r *runner.Runner) error {
	var nonIdentity []element.Perm
	for _, g := range s.pending {
		if !isIdentityPerm(g) {
			nonIdentity = append(nonIdentity, g)
		}
	}
	if len(s.levels) == 0 && len(nonIdentity) > 0 {
		s.levels = append(s.levels, newLevel(firstMovedPointExcluding(nonIdentity[0], nil)))
	}
	if len(s.levels) > 0 {
		s.levels[0].generators = append(s.levels[0].generators, nonIdentity...)
	}
	s.pending = nil

	changed := true
	for changed {
		if r.Stopped() {
			return nil
		}
		changed = false
		for _, lvl := range s.levels {
			s.buildOrbitTransversal(lvl)
		}
		for i := 0; i < len(s.levels); i++ {
			if r.Stopped() {
				return nil
			}
			lvl := s.levels[i]
			for _, pt := range lvl.orbit {
				for _, gen := range lvl.generators {
					img := gen.OnPoint(pt)
					var tmp, sg element.Perm
					lvl.transversal[pt].Product(&tmp, lvl.transversal[pt], gen, 0)
					tmp.Product(&sg, tmp, lvl.transversalInv[img], 0)
					res, lvl2 := s.Sift(sg)
					if isIdentityPerm(res) {
						continue
					}
					if lvl2 == len(s.levels) {
						newPt := firstMovedPointExcluding(res, s.baseSet())
						s.levels = append(s.levels, newLevel(newPt))
					} else {
						s.levels[lvl2].generators = append(s.levels[lvl2].generators, res)
					}
					changed = true
				}
			}
		}
	}
	return nil
}

// Contains reports whether g belongs to the group, completing the chain
// first if necessary.
func (s *SchreierSims) Contains(g element.Perm) (bool, error) {
	if g.Degree() != s.degree {
		return false, fmt.Errorf("schreiersims: Contains: %w", ErrDegreeMismatch)
	}
	if err := s.Run(); err != nil {
		return false, err
	}
	res, lvl := s.Sift(g)
	return lvl == len(s.levels) && isIdentityPerm(res), nil
}

// Size returns the group order, the product of each level's orbit size,
// completing the chain first if necessary.
func (s *SchreierSims) Size() (int, error) {
	if err := s.Run(); err != nil {
		return 0, err
	}
	total := 1
	for _, lvl := range s.levels {
		total *= len(lvl.orbit)
	}
	return total, nil
}
