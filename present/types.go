package present

import (
	"fmt"
	"sort"
)

// Letter is a small unsigned index into a presentation's alphabet,
// 0 .. AlphabetSize-1.
type Letter = uint32

// Word is an ordered finite sequence of letters.
type Word []Letter

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	if w == nil {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// Equal reports whether w and other contain the same letters in the same
// order.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders w as a bracketed list of letter indices, e.g. "[0 1 0]".
func (w Word) String() string {
	return fmt.Sprint([]Letter(w))
}

// Append returns a new word formed by concatenating w and other; neither
// argument is mutated.
func (w Word) Append(other Word) Word {
	out := make(Word, 0, len(w)+len(other))
	out = append(out, w...)
	out = append(out, other...)
	return out
}

// Relation is an ordered pair of words asserting Lhs == Rhs.
type Relation struct {
	Lhs Word
	Rhs Word
}

// Presentation is a generating alphabet together with a multiset of
// defining relations. ContainsEmptyWord records whether the empty word is
// explicitly a generator identity (semigroup vs. monoid presentations).
// InverseLetters, when non-nil, maps each letter to the index of its
// formal inverse (group presentations); it has length AlphabetSize and is
// an involution (a letter may be its own inverse), or is nil for a plain
// semigroup presentation.
type Presentation struct {
	AlphabetSize      uint32
	ContainsEmptyWord bool
	Relations         []Relation
	InverseLetters    []int32
}

// AddRelation appends the relation (u, v) to the presentation.
func (p *Presentation) AddRelation(u, v Word) {
	p.Relations = append(p.Relations, Relation{Lhs: u.Clone(), Rhs: v.Clone()})
}

// Validate checks internal consistency: every letter referenced by every
// relation is within range, and InverseLetters (if present) is an
// involution over the alphabet; self-inverse letters are accepted.
func (p *Presentation) Validate() error {
	for ri, r := range p.Relations {
		for _, w := range [2]Word{r.Lhs, r.Rhs} {
			for _, l := range w {
				if l >= p.AlphabetSize {
					return fmt.Errorf("present: relation %d references out-of-range letter %d (alphabet size %d): %w", ri, l, p.AlphabetSize, ErrLetterOutOfRange)
				}
			}
		}
	}
	if p.InverseLetters == nil {
		return nil
	}
	if uint32(len(p.InverseLetters)) != p.AlphabetSize {
		return fmt.Errorf("present: inverse-letter map has length %d, want %d: %w", len(p.InverseLetters), p.AlphabetSize, ErrBadInverseMap)
	}
	for l, inv := range p.InverseLetters {
		if inv < 0 || uint32(inv) >= p.AlphabetSize {
			return fmt.Errorf("present: inverse of letter %d is out of range: %w", l, ErrBadInverseMap)
		}
		if p.InverseLetters[inv] != int32(l) {
			return fmt.Errorf("present: inverse-letter map is not an involution at letter %d: %w", l, ErrBadInverseMap)
		}
	}
	return nil
}

// Alphabet returns the letters 0..AlphabetSize-1 in order, useful for
// generator iteration.
func (p *Presentation) Alphabet() []Letter {
	out := make([]Letter, p.AlphabetSize)
	for i := range out {
		out[i] = Letter(i)
	}
	return out
}

// SortedRelations returns a copy of p.Relations sorted lexicographically by
// (Lhs, Rhs); useful for deterministic test output and for engines that
// want a canonical processing order.
func (p *Presentation) SortedRelations() []Relation {
	out := make([]Relation, len(p.Relations))
	copy(out, p.Relations)
	sort.Slice(out, func(i, j int) bool {
		return lessWordPair(out[i], out[j])
	})
	return out
}

func lessWordPair(a, b Relation) bool {
	if c := compareWords(a.Lhs, b.Lhs); c != 0 {
		return c < 0
	}
	return compareWords(a.Rhs, b.Rhs) < 0
}

func compareWords(a, b Word) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
