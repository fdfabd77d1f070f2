package element

import "hash/fnv"

// Undefined marks a point outside a PPerm's domain or image.
const Undefined = ^uint32(0)

// PPerm is a partial permutation of {0, ..., len(p)-1}: p[i] is the
// image of i, or Undefined if i is outside the domain. Composition
// propagates Undefined: (x*y)(i) is Undefined whenever x(i) is Undefined
// or y(x(i)) is Undefined.
type PPerm []uint32

func (p PPerm) Degree() int { return len(p) }

func (p PPerm) Product(out *PPerm, x, y PPerm, tid int) {
	o := *out
	if len(o) != len(x) {
		o = make(PPerm, len(x))
	}
	for i, xi := range x {
		if xi == Undefined {
			o[i] = Undefined
			continue
		}
		o[i] = y[xi]
	}
	*out = o
}

func (p PPerm) One(n int) PPerm {
	id := make(PPerm, n)
	for i := range id {
		id[i] = uint32(i)
	}
	return id
}

func (p PPerm) Equal(other PPerm) bool {
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

func (p PPerm) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, v := range p {
		buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(buf)
	}
	return h.Sum64()
}

func (p PPerm) Less(other PPerm) bool {
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

// Rank is the number of points in the domain (defined entries).
func (p PPerm) Rank() int {
	n := 0
	for _, v := range p {
		if v != Undefined {
			n++
		}
	}
	return n
}

// Inverse returns the partial permutation mapping each defined image
// point back to its preimage, undefined elsewhere.
func (p PPerm) Inverse() PPerm {
	inv := make(PPerm, len(p))
	for i := range inv {
		inv[i] = Undefined
	}
	for i, v := range p {
		if v != Undefined {
			inv[v] = uint32(i)
		}
	}
	return inv
}
