package toddcoxeter

import "github.com/libsemigroups/libsemigroups-sub005/digraph"

// Standardize recomputes the class numbering by traversing the complete
// coset table from the identity coset in the given order, replacing
// whatever numbering NumberOfClasses/ClassIndexOf/WordOf/NonTrivialClasses
// report. Enumeration must have completed first.
func (tc *ToddCoxeter) Standardize(order StandardOrder) error {
	if _, err := tc.NumberOfClasses(); err != nil {
		return err
	}
	root := tc.uf.find(0)
	var visitOrder []int
	switch order {
	case ShortLex:
		visitOrder = tc.standardizeBFS(root)
	case Lex:
		visitOrder = tc.standardizeDFS(root, false)
	case Recursive:
		visitOrder = tc.standardizeDFS(root, true)
	default:
		visitOrder = tc.standardizeBFS(root)
	}

	seen := make(map[int]bool, len(visitOrder))
	for _, r := range visitOrder {
		seen[r] = true
	}
	for _, r := range tc.canonicalRoots() {
		if !seen[r] {
			visitOrder = append(visitOrder, r)
		}
	}

	tc.order = visitOrder
	tc.indexOfRoot = make(map[int]int, len(visitOrder))
	for i, r := range visitOrder {
		tc.indexOfRoot[r] = i
	}
	tc.standardized = true
	tc.standardOrder = order
	return nil
}

// Standardized reports whether Standardize has been called, and with
// which order.
func (tc *ToddCoxeter) Standardized() (bool, StandardOrder) {
	return tc.standardized, tc.standardOrder
}

func (tc *ToddCoxeter) standardizeBFS(root int) []int {
	visited := map[int]bool{root: true}
	queue := []int{root}
	var order []int
	d := int(tc.pres.AlphabetSize)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		order = append(order, c)
		for a := 0; a < d; a++ {
			t := tc.table.Target(c, a)
			if t == digraph.Undefined {
				continue
			}
			ct := tc.uf.find(int(t))
			if !visited[ct] {
				visited[ct] = true
				queue = append(queue, ct)
			}
		}
	}
	return order
}

func (tc *ToddCoxeter) standardizeDFS(root int, descending bool) []int {
	d := int(tc.pres.AlphabetSize)
	labels := make([]int, d)
	for i := range labels {
		labels[i] = i
	}
	if descending {
		for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
			labels[i], labels[j] = labels[j], labels[i]
		}
	}
	visited := make(map[int]bool)
	var order []int
	var visit func(c int)
	visit = func(c int) {
		c = tc.uf.find(c)
		if visited[c] {
			return
		}
		visited[c] = true
		order = append(order, c)
		for _, a := range labels {
			t := tc.table.Target(c, a)
			if t == digraph.Undefined {
				continue
			}
			visit(int(t))
		}
	}
	visit(root)
	return order
}
