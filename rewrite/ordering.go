package rewrite

import "github.com/libsemigroups/libsemigroups-sub005/present"

// Ordering totally orders words over a fixed alphabet; Compare returns a
// negative number if u < v, zero if equal, positive if u > v. A rule
// (lhs, rhs) is stored oriented so that Compare(lhs, rhs) > 0.
type Ordering interface {
	Compare(u, v present.Word) int
}

// ShortLex orders words first by length, then lexicographically by
// letter value; it is the default reduction ordering.
type ShortLex struct{}

func (ShortLex) Compare(u, v present.Word) int {
	if len(u) != len(v) {
		if len(u) < len(v) {
			return -1
		}
		return 1
	}
	for i := range u {
		if u[i] != v[i] {
			if u[i] < v[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Recursive implements a simplified recursive path ordering (RPO) with a
// fixed precedence equal to letter value (larger letter index = higher
// precedence): u > v by comparing their maximal letters first, falling
// back to a ShortLex-style recursive decomposition when the maximal
// letters tie, matching the alternate reduction order the original
// implementation exposes alongside ShortLex.
type Recursive struct{}

func (Recursive) Compare(u, v present.Word) int {
	return recursiveCompare(u, v)
}

func recursiveCompare(u, v present.Word) int {
	if len(u) == 0 && len(v) == 0 {
		return 0
	}
	if len(u) == 0 {
		return -1
	}
	if len(v) == 0 {
		return 1
	}
	mu, iu := maxLetter(u)
	mv, iv := maxLetter(v)
	if mu != mv {
		if mu < mv {
			return -1
		}
		return 1
	}
	// Same maximal letter: compare the words with that letter's first
	// occurrence stripped out, recursively, then fall back to the
	// remaining prefix/suffix structure.
	ru := removeAt(u, iu)
	rv := removeAt(v, iv)
	if c := recursiveCompare(ru, rv); c != 0 {
		return c
	}
	if iu != iv {
		if iu < iv {
			return -1
		}
		return 1
	}
	return 0
}

func maxLetter(w present.Word) (present.Letter, int) {
	best := w[0]
	idx := 0
	for i, l := range w {
		if l > best {
			best = l
			idx = i
		}
	}
	return best, idx
}

func removeAt(w present.Word, i int) present.Word {
	out := make(present.Word, 0, len(w)-1)
	out = append(out, w[:i]...)
	out = append(out, w[i+1:]...)
	return out
}
