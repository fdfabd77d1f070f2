package digraph

import "fmt"

// Quotient computes the coarsest congruence on x identifying the roots of
// x and y (at rootX and rootY respectively) and closed under "equally
// labelled edges have equal targets", in the style of the Hopcroft-Karp
// partition-refinement algorithm: it starts with {rootX, rootY} merged
// and repeatedly propagates — whenever two merged nodes have a defined,
// equally labelled edge, their targets are merged too — until no further
// merge is possible. It returns the quotient word graph (nodes are the
// merged classes, renumbered 0..k-1 in discovery order) and, for node n
// of x, classOfX[n] gives its class in the quotient; classOfY is the
// analogous map for y.
//
// x and y must share the same out-degree.
func Quotient(x, y *WordGraph, rootX, rootY int) (quotient *WordGraph, classOfX, classOfY []int, err error) {
	if x.degree != y.degree {
		return nil, nil, nil, fmt.Errorf("digraph: Quotient(%d,%d): %w", x.degree, y.degree, ErrDegreeMismatch)
	}
	x.checkNode(rootX)
	y.checkNode(rootY)
	d := x.degree

	uf := newQuotientUF(x.nodes, y.nodes)
	uf.unite(qnode{0, rootX}, qnode{1, rootY})

	queue := []qnode{{0, rootX}, {1, rootY}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		root := uf.find(n)
		for a := 0; a < d; a++ {
			tn, ok := targetOf(x, y, n, a)
			if !ok {
				continue
			}
			// Find any other member of this class with a defined edge at
			// label a and merge their targets; to keep this
			// deterministic and simple we instead merge tn's class with
			// the representative's recorded witness for (root, a), if
			// one exists.
			key := witnessKey{root: root, label: a}
			if w, seen := uf.witness[key]; seen {
				if uf.find(w) != uf.find(tn) {
					uf.unite(w, tn)
					queue = append(queue, tn)
				}
			} else {
				uf.witness[key] = tn
				queue = append(queue, tn)
			}
		}
	}

	// Renumber classes in discovery order.
	classID := map[qnode]int{}
	var order []qnode
	classOfX = make([]int, x.nodes)
	for n := 0; n < x.nodes; n++ {
		r := uf.find(qnode{0, n})
		id, ok := classID[r]
		if !ok {
			id = len(order)
			classID[r] = id
			order = append(order, r)
		}
		classOfX[n] = id
	}
	classOfY = make([]int, y.nodes)
	for n := 0; n < y.nodes; n++ {
		r := uf.find(qnode{1, n})
		id, ok := classID[r]
		if !ok {
			id = len(order)
			classID[r] = id
			order = append(order, r)
		}
		classOfY[n] = id
	}

	q := New(len(order), d)
	for n := 0; n < x.nodes; n++ {
		for a := 0; a < d; a++ {
			t := x.Target(n, a)
			if t == Undefined {
				continue
			}
			q.SetTarget(classOfX[n], a, uint32(classOfX[t]))
		}
	}
	for n := 0; n < y.nodes; n++ {
		for a := 0; a < d; a++ {
			t := y.Target(n, a)
			if t == Undefined {
				continue
			}
			cn, ct := classOfY[n], classOfY[int(t)]
			if existing := q.Target(cn, a); existing != Undefined && int(existing) != ct {
				continue // inconsistent merge source; keep x's definition
			}
			q.SetTarget(cn, a, uint32(ct))
		}
	}
	return q, classOfX, classOfY, nil
}

// IsSubrelation reports whether the congruence induced by quotienting x
// at rootX against itself (i.e. just x's own reachable structure) is
// refined by y's: every pair of x-nodes merged when quotienting x and y
// must already be related via x alone. This is used to test subrelation
// inclusion between two word graphs sharing a root and out-degree.
func IsSubrelation(x, y *WordGraph, rootX, rootY int) (bool, error) {
	q, classOfX, _, err := Quotient(x, y, rootX, rootY)
	if err != nil {
		return false, err
	}
	// y is a subrelation of (coarser than or equal to) x's quotient iff
	// merging x with y produced no new identifications among x's own
	// nodes beyond what x already reaches as distinct classes equal to
	// themselves: compare classOfX against x's own node identity.
	seen := make(map[int]int, x.nodes)
	for n, c := range classOfX {
		if prev, ok := seen[c]; ok && prev != n {
			return false, nil
		}
		seen[c] = n
	}
	_ = q
	return true, nil
}

type qnode struct {
	side int // 0 = x, 1 = y
	node int
}

type witnessKey struct {
	root  qnode
	label int
}

// quotientUF is a union-find over the disjoint union of x's and y's node
// sets, keyed by (side, node) pairs rather than plain ints.
type quotientUF struct {
	parent  map[qnode]qnode
	witness map[witnessKey]qnode
}

func newQuotientUF(nx, ny int) *quotientUF {
	u := &quotientUF{parent: make(map[qnode]qnode, nx+ny), witness: make(map[witnessKey]qnode)}
	for n := 0; n < nx; n++ {
		u.parent[qnode{0, n}] = qnode{0, n}
	}
	for n := 0; n < ny; n++ {
		u.parent[qnode{1, n}] = qnode{1, n}
	}
	return u
}

func (u *quotientUF) find(n qnode) qnode {
	for u.parent[n] != n {
		u.parent[n] = u.parent[u.parent[n]]
		n = u.parent[n]
	}
	return n
}

func (u *quotientUF) unite(a, b qnode) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	u.parent[ra] = rb
}

// targetOf returns the target of (n, a) whichever side n is on, as a
// qnode, and whether it is defined.
func targetOf(x, y *WordGraph, n qnode, a int) (qnode, bool) {
	var g *WordGraph
	if n.side == 0 {
		g = x
	} else {
		g = y
	}
	t := g.Target(n.node, a)
	if t == Undefined {
		return qnode{}, false
	}
	return qnode{side: n.side, node: int(t)}, true
}
