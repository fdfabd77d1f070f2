package uf_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/uf"
	"github.com/stretchr/testify/require"
)

func TestUnionFind_Singletons(t *testing.T) {
	u := uf.New(5)
	require.Equal(t, 5, u.NumberOfBlocks())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, u.Find(i))
	}
}

func TestUnionFind_UniteAndFind(t *testing.T) {
	u := uf.New(5)
	require.True(t, u.Unite(0, 1))
	require.Equal(t, u.Find(0), u.Find(1))
	require.Equal(t, 4, u.NumberOfBlocks())

	require.False(t, u.Unite(0, 1), "uniting within the same block is a no-op")
	require.Equal(t, 4, u.NumberOfBlocks())
}

func TestUnionFind_FindIdempotent(t *testing.T) {
	u := uf.New(8)
	u.Unite(0, 1)
	u.Unite(1, 2)
	u.Unite(6, 7)
	for i := 0; i < 8; i++ {
		r := u.Find(i)
		require.Equal(t, r, u.Find(r), "find(find(x)) == find(x)")
	}
}

func TestUnionFind_NumberOfBlocksMonotone(t *testing.T) {
	u := uf.New(10)
	prev := u.NumberOfBlocks()
	for i := 1; i < 10; i++ {
		u.Unite(0, i)
		cur := u.NumberOfBlocks()
		require.LessOrEqual(t, cur, prev)
		prev = cur
	}
	require.Equal(t, 1, u.NumberOfBlocks())
}

func TestUnionFind_Join(t *testing.T) {
	a := uf.New(6)
	a.Unite(0, 1)
	a.Unite(2, 3)

	b := uf.New(6)
	b.Unite(1, 2)
	b.Unite(4, 5)

	a.Join(b)
	require.Equal(t, a.Find(0), a.Find(3), "0-1 joined with 1-2 joined with 2-3 must merge")
	require.Equal(t, a.Find(4), a.Find(5))
}

func TestUnionFind_Contains(t *testing.T) {
	coarse := uf.New(4)
	coarse.Unite(0, 1)
	coarse.Unite(1, 2)
	coarse.Unite(2, 3)

	fine := uf.New(4)
	fine.Unite(0, 1)

	require.True(t, coarse.Contains(fine), "fine refines coarse")
	require.False(t, fine.Contains(coarse), "coarse does not refine fine")
}

func TestUnionFind_Blocks(t *testing.T) {
	u := uf.New(4)
	u.Unite(0, 1)
	require.Len(t, u.Blocks(), 3)
}

func TestUnionFind_OutOfRangePanics(t *testing.T) {
	u := uf.New(3)
	require.Panics(t, func() { u.Find(3) })
	require.Panics(t, func() { u.Find(-1) })
}
