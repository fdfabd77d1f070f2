// Package uf implements a disjoint-set (union-find) forest over the
// ground set 0..n-1, with path-compressed Find and ranked Union.
//
// Complexity: Find and Unite run in O(α(n)) amortized time; Join of two
// union-finds over the same ground set runs in O(n·α(n)).
package uf
