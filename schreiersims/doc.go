// Package schreiersims implements the (deterministic, non-randomized)
// Schreier-Sims algorithm over element.Perm: given a generating set for
// a permutation group of fixed degree, it builds a base and strong
// generating set (a stabilizer chain with an orbit and transversal at
// each level), from which group membership (Sift/Contains) and order
// (Size) follow directly.
package schreiersims
