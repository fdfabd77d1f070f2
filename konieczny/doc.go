// Package konieczny decomposes a finite transformation semigroup into
// its Green's D-classes, and represents each regular D-class's maximal
// subgroup (a group H-class) as a schreiersims.SchreierSims permutation
// group acting on the idempotent's image.
//
// The full element set is obtained from froidurepin; D-, R-, L- and
// H-classes are then computed directly from the resulting left/right
// Cayley graphs' strongly-connected components, rather than via
// Konieczny's original lambda/rho orbit traversal (see DESIGN.md) — the
// public shape (D-class list, idempotents, group H-classes) matches
// Konieczny's algorithm either way.
package konieczny
