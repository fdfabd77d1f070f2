package schreiersims_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/schreiersims"
	"github.com/stretchr/testify/require"
)

func symmetricGroup3(t *testing.T) *schreiersims.SchreierSims {
	t.Helper()
	s := schreiersims.New(3)
	require.NoError(t, s.AddGenerator(element.Perm{1, 0, 2})) // (0 1)
	require.NoError(t, s.AddGenerator(element.Perm{1, 2, 0})) // (0 1 2)
	return s
}

func TestSchreierSims_SymmetricGroupSize(t *testing.T) {
	s := symmetricGroup3(t)
	size, err := s.Size()
	require.NoError(t, err)
	require.Equal(t, 6, size)
}

func TestSchreierSims_ContainsEveryPermutationOfS3(t *testing.T) {
	s := symmetricGroup3(t)
	all := []element.Perm{
		{0, 1, 2}, {1, 0, 2}, {0, 2, 1},
		{2, 1, 0}, {1, 2, 0}, {2, 0, 1},
	}
	for _, p := range all {
		ok, err := s.Contains(p)
		require.NoError(t, err)
		require.True(t, ok, "expected %v in S3", p)
	}
}

func TestSchreierSims_CyclicGroupRejectsOddPermutation(t *testing.T) {
	s := schreiersims.New(3)
	require.NoError(t, s.AddGenerator(element.Perm{1, 2, 0})) // (0 1 2), order 3
	size, err := s.Size()
	require.NoError(t, err)
	require.Equal(t, 3, size)

	ok, err := s.Contains(element.Perm{1, 0, 2}) // a transposition, not in <3-cycle>
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSchreierSims_DegreeMismatchIsAnError(t *testing.T) {
	s := schreiersims.New(3)
	err := s.AddGenerator(element.Perm{0, 1})
	require.ErrorIs(t, err, schreiersims.ErrDegreeMismatch)
}

func TestSchreierSims_AddBasePointSeedsPreferredPrefix(t *testing.T) {
	s := schreiersims.New(3)
	require.NoError(t, s.AddBasePoint(2))
	require.NoError(t, s.AddGenerator(element.Perm{1, 0, 2}))
	require.NoError(t, s.AddGenerator(element.Perm{1, 2, 0}))

	size, err := s.Size()
	require.NoError(t, err)
	require.Equal(t, 6, size)
	require.Equal(t, 2, s.Base()[0])

	err = s.AddBasePoint(2)
	require.ErrorIs(t, err, schreiersims.ErrDuplicateBasePoint)
}

func TestSchreierSims_SiftIdentityReachesEndOfChain(t *testing.T) {
	s := symmetricGroup3(t)
	_, err := s.Size()
	require.NoError(t, err)

	res, lvl := s.Sift(element.Perm{0, 1, 2})
	require.Equal(t, len(s.Base()), lvl)
	require.Equal(t, element.Perm{0, 1, 2}, res)
}
