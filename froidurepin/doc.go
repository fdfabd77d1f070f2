// Package froidurepin implements the Froidure-Pin algorithm: breadth-first
// enumeration of the elements of a finitely generated semigroup or
// monoid, building left/right Cayley graphs, factorisations, and the
// defining relations a presentation engine (knuthbendix, toddcoxeter)
// can consume.
package froidurepin
