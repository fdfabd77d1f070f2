package froidurepin_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/froidurepin"
	"github.com/stretchr/testify/require"
)

func TestFroidurePin_CyclicGroupSize(t *testing.T) {
	// A single 3-cycle transformation generates the cyclic group of
	// order 3 as a transformation semigroup.
	gen := element.Transf{1, 2, 0}
	fp := froidurepin.New(gen)
	size, err := fp.Size()
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestFroidurePin_IdempotentSemigroup(t *testing.T) {
	// A constant map to 0 is idempotent and absorbing: {x} is the whole
	// semigroup.
	gen := element.Transf{0, 0, 0}
	fp := froidurepin.New(gen)
	size, err := fp.Size()
	require.NoError(t, err)
	require.Equal(t, 1, size)
	require.Equal(t, []int{0}, fp.Idempotents())
}

func TestFroidurePin_RightCayleyGraphIsConsistent(t *testing.T) {
	gen := element.Transf{1, 2, 0}
	fp := froidurepin.New(gen)
	_, err := fp.Size()
	require.NoError(t, err)

	g := fp.RightCayleyGraph()
	require.Equal(t, 3, g.NumberOfNodes())
	for i := 0; i < 3; i++ {
		require.NotEqual(t, ^uint32(0), g.Target(i, 0))
	}
}

func TestFroidurePin_Factorisation(t *testing.T) {
	gen := element.Transf{1, 2, 0}
	fp := froidurepin.New(gen)
	_, err := fp.Size()
	require.NoError(t, err)

	for i := 0; i < fp.CurrentSize(); i++ {
		word := fp.Factorisation(i)
		require.NotEmpty(t, word)
		cur := gen
		for range word[1:] {
			cur = applyGen(cur, gen)
		}
		require.True(t, fp.Element(i).Equal(cur))
	}
}

func applyGen(x, gen element.Transf) element.Transf {
	var out element.Transf
	x.Product(&out, x, gen, 0)
	return out
}

func TestFroidurePin_SortedView(t *testing.T) {
	gen := element.Transf{1, 2, 0}
	fp := froidurepin.New(gen)
	_, err := fp.Size()
	require.NoError(t, err)

	order := fp.SortedView()
	require.Len(t, order, 3)
	for i := 1; i < len(order); i++ {
		require.False(t, fp.Element(order[i]).Less(fp.Element(order[i-1])))
	}
}
