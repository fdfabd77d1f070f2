// Package libsemigroups computes with finitely presented semigroups,
// monoids, and groups: it enumerates elements, decides the word problem,
// computes normal forms, classifies congruences, and analyzes structural
// decompositions.
//
// The module is organized as a flat set of top-level packages, each
// owning one concern:
//
//	present/      — alphabets, words, relations, presentations
//	runner/       — cooperative long-running job state machine
//	uf/           — union-find (disjoint set)
//	element/      — fixed-degree value types: Transf, PPerm, Perm, BMat,
//	                MatSemiring, Bipartition, KBE
//	digraph/      — row-major word graph (action digraph): SCC, reachability,
//	                path enumeration, Hopcroft-Karp quotient
//	rewrite/      — active/inactive rewriting rules, trie, confluence
//	knuthbendix/  — Knuth-Bendix completion engine
//	froidurepin/  — Froidure-Pin element enumerator
//	toddcoxeter/  — Todd-Coxeter coset/congruence enumerator
//	konieczny/    — Green's-relation (D-class) decomposition
//	schreiersims/ — base + strong generating set for permutation groups
//	race/         — concurrent engine race
//	report/       — progress reporting, tickers, duration formatting
//
// A user supplies either a finite generating set of concrete elements
// (consumed by froidurepin/konieczny/schreiersims) or a presentation — a
// pair (alphabet, defining relations) — consumed by knuthbendix/toddcoxeter.
// Those two engines can produce a quotient word graph that is then fed to
// froidurepin for enumeration. race runs several engines concurrently
// against the same problem and keeps the first result. Every engine is a
// runner.Runner.
package libsemigroups
