package element

import "hash/fnv"

// Transf is a full transformation of {0, ..., len(t)-1}: t[i] is the
// image of point i. Composition is left-to-right: (x*y)(i) = y(x(i)).
type Transf []uint32

// IdentityTransf returns the identity transformation of degree n.
func IdentityTransf(n int) Transf {
	return Transf(nil).One(n)
}

func (t Transf) Degree() int { return len(t) }

// Product writes the composition x then y into *out, reusing *out's
// storage when it already has x's length and allocating a new
// transformation otherwise.
func (t Transf) Product(out *Transf, x, y Transf, tid int) {
	o := *out
	if len(o) != len(x) {
		o = make(Transf, len(x))
	}
	for i, xi := range x {
		o[i] = y[xi]
	}
	*out = o
}

func (t Transf) One(n int) Transf {
	id := make(Transf, n)
	for i := range id {
		id[i] = uint32(i)
	}
	return id
}

func (t Transf) Equal(other Transf) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

func (t Transf) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, v := range t {
		buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(buf)
	}
	return h.Sum64()
}

func (t Transf) Less(other Transf) bool {
	n := len(t)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if t[i] != other[i] {
			return t[i] < other[i]
		}
	}
	return len(t) < len(other)
}

// Rank is the size of the image of t, i.e. the number of distinct values
// among t[0..Degree()-1].
func (t Transf) Rank() int {
	seen := make(map[uint32]struct{}, len(t))
	for _, v := range t {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Image returns the sorted set of distinct image points.
func (t Transf) Image() []uint32 {
	seen := make(map[uint32]struct{}, len(t))
	for _, v := range t {
		seen[v] = struct{}{}
	}
	out := make([]uint32, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
