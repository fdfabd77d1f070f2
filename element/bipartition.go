package element

import (
	"hash/fnv"
	"sync"

	"github.com/libsemigroups/libsemigroups-sub005/uf"
)

// Bipartition is a set partition of {0, ..., n-1} union {0', ..., n-1'}
// (n "top" points and n "bottom" points), represented as a block-id
// array of length 2n: blocks[i] for i < n is the block of top point i,
// blocks[n+i] is the block of bottom point i.
type Bipartition struct {
	degree int
	blocks []int32
}

// NewBipartition builds a Bipartition of degree n from a block-id slice
// of length 2n (block ids need not be normalised; Equal/Hash/Less
// normalise internally via a canonical relabelling).
func NewBipartition(n int, blocks []int32) Bipartition {
	return Bipartition{degree: n, blocks: append([]int32(nil), blocks...)}
}

func (b Bipartition) Degree() int { return b.degree }

// canonical returns blocks relabelled so that block ids appear in the
// order their first point is encountered scanning left to right; this
// makes Equal/Hash/Less independent of arbitrary block-id choice.
func (b Bipartition) canonical() []int32 {
	relabel := make(map[int32]int32)
	out := make([]int32, len(b.blocks))
	next := int32(0)
	for i, v := range b.blocks {
		id, ok := relabel[v]
		if !ok {
			id = next
			relabel[v] = id
			next++
		}
		out[i] = id
	}
	return out
}

func (b Bipartition) Equal(other Bipartition) bool {
	if b.degree != other.degree {
		return false
	}
	ca, cb := b.canonical(), other.canonical()
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}

func (b Bipartition) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range b.canonical() {
		h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	}
	return h.Sum64()
}

func (b Bipartition) Less(other Bipartition) bool {
	ca, cb := b.canonical(), other.canonical()
	n := len(ca)
	if len(cb) < n {
		n = len(cb)
	}
	for i := 0; i < n; i++ {
		if ca[i] != cb[i] {
			return ca[i] < cb[i]
		}
	}
	return len(ca) < len(cb)
}

func (b Bipartition) One(n int) Bipartition {
	blocks := make([]int32, 2*n)
	for i := 0; i < n; i++ {
		blocks[i] = int32(i)
		blocks[n+i] = int32(i)
	}
	return Bipartition{degree: n, blocks: blocks}
}

// Rank is the number of blocks that contain at least one top point
// (a standard bipartition-semigroup rank notion).
func (b Bipartition) Rank() int {
	seen := make(map[int32]struct{})
	for i := 0; i < b.degree; i++ {
		seen[b.blocks[i]] = struct{}{}
	}
	return len(seen)
}

// scratch holds a reusable union-find buffer, sized lazily to 3*degree
// points, so repeated Product calls on the same goroutine avoid
// reallocating the join-construction work area.
type scratch struct {
	mu sync.Mutex
	uf *uf.UnionFind
	n  int
}

// slab is the fixed-size thread-local scratch area indexed by tid; Go
// has no native TLS, so this plays the role spec.md's "tid is a hint
// into a thread-local scratch area" describes, sized generously enough
// that unrelated goroutines rarely collide (a collision only costs a
// mutex wait, never correctness, since each Product call fully
// reinitialises its slot before use).
var slab [64]scratch

// getScratch returns the scratch slot for tid, already locked; the
// caller must unlock it once done reading the union-find results.
func getScratch(tid int, n int) *scratch {
	s := &slab[tid%len(slab)]
	s.mu.Lock()
	if s.uf == nil || s.n != n {
		s.uf = uf.New(n)
		s.n = n
	} else {
		*s.uf = *uf.New(n)
	}
	return s
}

// Product computes the bipartition join construction: points are laid
// out in three rows (x's top, the shared middle row, y's bottom); x's
// blocks merge top with middle, y's blocks merge middle with bottom, and
// the result's blocks are the merged components restricted to the top
// and bottom rows (components touching only the middle row are
// discarded, as they do not constrain the top-bottom relation).
func (b Bipartition) Product(out *Bipartition, x, y Bipartition, tid int) {
	n := x.degree
	s := getScratch(tid, 3*n)
	u := s.uf
	// x connects top (0..n-1) with middle (n..2n-1) per its own blocks.
	byBlock := make(map[int32]int)
	for i := 0; i < 2*n; i++ {
		row := i // 0..n-1 top, n..2n-1 middle (x's bottom row)
		blk := x.blocks[i]
		if first, ok := byBlock[blk]; ok {
			u.Unite(first, row)
		} else {
			byBlock[blk] = row
		}
	}
	// y connects middle (n..2n-1, relabelled via its own top row 0..n-1)
	// with bottom (2n..3n-1) per its own blocks.
	byBlockY := make(map[int32]int)
	for i := 0; i < 2*n; i++ {
		row := i + n // y's top row maps onto the shared middle (n..2n-1);
		// y's bottom row maps onto the result's bottom (2n..3n-1).
		blk := y.blocks[i]
		if first, ok := byBlockY[blk]; ok {
			u.Unite(first, row)
		} else {
			byBlockY[blk] = row
		}
	}

	blocks := make([]int32, 2*n)
	for i := 0; i < n; i++ {
		blocks[i] = int32(u.Find(i))
	}
	for i := 0; i < n; i++ {
		blocks[n+i] = int32(u.Find(2*n + i))
	}
	s.mu.Unlock()
	*out = Bipartition{degree: n, blocks: blocks}
}
