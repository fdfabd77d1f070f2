// Package element defines the capability set every element type backing
// a froidurepin.FroidurePin, konieczny.Konieczny, or schreiersims.SchreierSims
// must satisfy, and provides concrete element types: Transf (full
// transformation), PPerm (partial permutation), Perm (permutation), BMat
// (boolean matrix), MatSemiring (generic semiring matrix),
// Bipartition, and KBE (Knuth-Bendix word class).
package element
