package froidurepin_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/froidurepin"
)

// fullTransformationMonoidGenerators returns a standard three-generator
// set for the full transformation monoid of degree n: a cycle and a
// transposition (together generating the symmetric group on n points)
// plus a single rank-(n-1) idempotent, which together generate all of
// T_n.
func fullTransformationMonoidGenerators(n int) []element.Transf {
	cycle := make(element.Transf, n)
	for i := range cycle {
		cycle[i] = uint32((i + 1) % n)
	}
	transposition := element.IdentityTransf(n)
	transposition[0], transposition[1] = transposition[1], transposition[0]
	collapse := element.IdentityTransf(n)
	collapse[n-1] = 0
	return []element.Transf{cycle, transposition, collapse}
}

// BenchmarkFroidurePin_Size measures full breadth-first enumeration of
// the full transformation monoid T_n for increasing degree, the
// asymptotically dominant cost (n^n elements) in every engine that
// consumes a FroidurePin's Cayley graphs.
func BenchmarkFroidurePin_Size(b *testing.B) {
	cases := []struct {
		name string
		n    int
	}{
		{"T3", 3},
		{"T4", 4},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			gens := fullTransformationMonoidGenerators(tc.n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fp := froidurepin.New(gens...)
				if _, err := fp.Size(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
