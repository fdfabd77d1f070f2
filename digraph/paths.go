package digraph

// Order selects the enumeration order used by a PathIterator.
type Order int

const (
	// Lex enumerates words in plain lexicographic order.
	Lex Order = iota
	// ShortLex enumerates words shortest-first, then lexicographically
	// among words of equal length.
	ShortLex
)

// pathFrame is one partial path on the iterator's explicit search stack.
type pathFrame struct {
	node  int
	label int
	word  []int
}

// PathIterator lazily enumerates (word, final node) pairs reachable from
// a root, under a bound on the number of pairs returned. It is
// restartable via Reset and safe to abandon at any point (it holds no
// resources beyond its own stack).
type PathIterator struct {
	g       *WordGraph
	root    int
	order   Order
	max     int
	emitted int
	stack   []pathFrame
	queue   []pathPair // used only in ShortLex mode (BFS by length)
	started bool
}

type pathPair struct {
	node int
	word []int
}

// Paths returns a PathIterator rooted at root, yielding at most max pairs
// in the given order. max <= 0 means unbounded.
func (g *WordGraph) Paths(root int, order Order, max int) *PathIterator {
	g.checkNode(root)
	it := &PathIterator{g: g, root: root, order: order, max: max}
	it.Reset()
	return it
}

// Reset rewinds the iterator back to its root, so Next can be called
// again from the beginning.
func (it *PathIterator) Reset() {
	it.emitted = 0
	it.started = false
	switch it.order {
	case Lex:
		it.stack = []pathFrame{{node: it.root, label: 0, word: nil}}
	case ShortLex:
		it.queue = []pathPair{{node: it.root, word: nil}}
	}
}

// Next returns the next (word, node) pair, or ok=false once the bound is
// reached or the graph has no more reachable nodes to report.
func (it *PathIterator) Next() (word []int, node int, ok bool) {
	if it.max > 0 && it.emitted >= it.max {
		return nil, 0, false
	}
	var w []int
	var n int
	var found bool
	switch it.order {
	case Lex:
		w, n, found = it.nextLex()
	case ShortLex:
		w, n, found = it.nextShortLex()
	}
	if !found {
		return nil, 0, false
	}
	it.emitted++
	return w, n, true
}

// nextLex performs a pre-order DFS: every node visited (including the
// root, on the very first call) is emitted once, in the order a
// depth-first, lowest-label-first walk discovers it.
func (it *PathIterator) nextLex() ([]int, int, bool) {
	if !it.started {
		it.started = true
		return append([]int(nil), it.stack[0].word...), it.stack[0].node, true
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.label >= it.g.degree {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		a := top.label
		top.label++
		t := it.g.Target(top.node, a)
		if t == Undefined {
			continue
		}
		word := append(append([]int(nil), top.word...), a)
		it.stack = append(it.stack, pathFrame{node: int(t), label: 0, word: word})
		return append([]int(nil), word...), int(t), true
	}
	return nil, 0, false
}

// nextShortLex performs a BFS, so nodes are emitted in increasing path
// length, then lexicographically by the labels spelling the path.
func (it *PathIterator) nextShortLex() ([]int, int, bool) {
	if !it.started {
		it.started = true
		return append([]int(nil), it.queue[0].word...), it.queue[0].node, true
	}
	for len(it.queue) > 0 {
		cur := it.queue[0]
		it.queue = it.queue[1:]
		for a := 0; a < it.g.degree; a++ {
			t := it.g.Target(cur.node, a)
			if t == Undefined {
				continue
			}
			word := append(append([]int(nil), cur.word...), a)
			it.queue = append(it.queue, pathPair{node: int(t), word: word})
		}
		if len(it.queue) > 0 {
			nxt := it.queue[0]
			return append([]int(nil), nxt.word...), nxt.node, true
		}
	}
	return nil, 0, false
}
