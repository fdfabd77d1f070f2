package digraph

// sccCache holds the memoized strongly-connected-component decomposition,
// invalidated by any mutation (see invalidate in types.go).
type sccCache struct {
	id    []int // id[n] is the SCC index of node n
	comps [][]int
}

// sccState is the mutable state of one iterative Tarjan run.
type sccState struct {
	g       *WordGraph
	index   []int
	low     []int
	onStack []bool
	stack   []int
	counter int
	comps   [][]int
}

// frame is one level of the explicit DFS stack used to avoid recursion
// on long chains (the iterative style the teacher's dfs package uses for
// cycle detection / topological sort).
type frame struct {
	node  int
	label int
}

// SCC returns, for every node, the index of its strongly connected
// component, and the list of components themselves, each listed in
// reverse topological order (every out-edge of a component stays inside
// it or leads to a component listed before it, Tarjan's natural output
// order). The result is cached until the next mutation.
//
// Complexity: O(N*d) time and space.
func (g *WordGraph) SCC() (id []int, comps [][]int) {
	if g.scc != nil {
		return g.scc.id, g.scc.comps
	}
	s := &sccState{
		g:       g,
		index:   make([]int, g.nodes),
		low:     make([]int, g.nodes),
		onStack: make([]bool, g.nodes),
	}
	for i := range s.index {
		s.index[i] = -1
	}
	for n := 0; n < g.nodes; n++ {
		if s.index[n] == -1 {
			s.strongConnect(n)
		}
	}
	idArr := make([]int, g.nodes)
	for ci, comp := range s.comps {
		for _, n := range comp {
			idArr[n] = ci
		}
	}
	g.scc = &sccCache{id: idArr, comps: s.comps}
	return g.scc.id, g.scc.comps
}

// strongConnect runs iterative Tarjan rooted at start, appending any
// completed components (in discovery-completion order, which is reverse
// topological) to s.comps.
func (s *sccState) strongConnect(start int) {
	var stack []frame
	push := func(n int) {
		s.index[n] = s.counter
		s.low[n] = s.counter
		s.counter++
		s.stack = append(s.stack, n)
		s.onStack[n] = true
		stack = append(stack, frame{node: n, label: 0})
	}
	push(start)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := top.node
		advanced := false
		for top.label < s.g.degree {
			a := top.label
			top.label++
			target := s.g.Target(n, a)
			if target == Undefined {
				continue
			}
			m := int(target)
			if s.index[m] == -1 {
				push(m)
				advanced = true
				break
			} else if s.onStack[m] {
				if s.index[m] < s.low[n] {
					s.low[n] = s.index[m]
				}
			}
		}
		if advanced {
			continue
		}
		// n is done: pop it, propagate low-link to parent, and if n is a
		// root, pop its SCC off s.stack.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			if s.low[n] < s.low[parent.node] {
				s.low[parent.node] = s.low[n]
			}
		}
		if s.low[n] == s.index[n] {
			var comp []int
			for {
				m := s.stack[len(s.stack)-1]
				s.stack = s.stack[:len(s.stack)-1]
				s.onStack[m] = false
				comp = append(comp, m)
				if m == n {
					break
				}
			}
			s.comps = append(s.comps, comp)
		}
	}
}

// NumberOfSCC returns the number of strongly connected components.
func (g *WordGraph) NumberOfSCC() int {
	_, comps := g.SCC()
	return len(comps)
}

// SCCID returns the SCC index of node n.
func (g *WordGraph) SCCID(n int) int {
	g.checkNode(n)
	id, _ := g.SCC()
	return id[n]
}
