package element

import "hash/fnv"

// Perm is a permutation of {0, ..., len(p)-1}: p[i] is the image of i,
// and p is a bijection. Composition is left-to-right, as for Transf.
type Perm []uint32

func (p Perm) Degree() int { return len(p) }

func (p Perm) Product(out *Perm, x, y Perm, tid int) {
	o := *out
	if len(o) != len(x) {
		o = make(Perm, len(x))
	}
	for i, xi := range x {
		o[i] = y[xi]
	}
	*out = o
}

func (p Perm) One(n int) Perm {
	id := make(Perm, n)
	for i := range id {
		id[i] = uint32(i)
	}
	return id
}

func (p Perm) Equal(other Perm) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Perm) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, v := range p {
		buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(buf)
	}
	return h.Sum64()
}

func (p Perm) Less(other Perm) bool {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if p[i] != other[i] {
			return p[i] < other[i]
		}
	}
	return len(p) < len(other)
}

// Rank is always the degree for a permutation (it is a bijection).
func (p Perm) Rank() int { return len(p) }

// Inverse returns the permutation q with q[p[i]] = i for all i.
func (p Perm) Inverse() Perm {
	inv := make(Perm, len(p))
	for i, v := range p {
		inv[v] = uint32(i)
	}
	return inv
}

// OnPoint returns the image of pt under p.
func (p Perm) OnPoint(pt int) int { return int(p[pt]) }
