package toddcoxeter_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/libsemigroups/libsemigroups-sub005/toddcoxeter"
	"github.com/stretchr/testify/require"
)

// cyclicGroup3 presents the cyclic group of order 3 as a single
// generator a subject to a^3 = identity.
func cyclicGroup3() *present.Presentation {
	p := &present.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}
	p.AddRelation(present.Word{0, 0, 0}, present.Word{})
	return p
}

func TestToddCoxeter_CyclicGroupSize(t *testing.T) {
	tc := toddcoxeter.New(cyclicGroup3())
	n, err := tc.NumberOfClasses()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestToddCoxeter_FelschStrategyAgrees(t *testing.T) {
	tc := toddcoxeter.New(cyclicGroup3(), toddcoxeter.WithStrategy(toddcoxeter.Felsch))
	n, err := tc.NumberOfClasses()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestToddCoxeter_IdempotentMonoidHasTwoClasses(t *testing.T) {
	// The monoid {1, a | a^2 = a}: a is idempotent but is not the
	// identity, so there are two congruence classes.
	p := &present.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}
	p.AddRelation(present.Word{0, 0}, present.Word{0})
	tc := toddcoxeter.New(p)
	n, err := tc.NumberOfClasses()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestToddCoxeter_ClassIndexOfIsStableAndInRange(t *testing.T) {
	tc := toddcoxeter.New(cyclicGroup3())
	n, err := tc.NumberOfClasses()
	require.NoError(t, err)

	idx, err := tc.ClassIndexOf(present.Word{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, n)

	idxA, err := tc.ClassIndexOf(present.Word{0})
	require.NoError(t, err)
	idxAAA, err := tc.ClassIndexOf(present.Word{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, idx, idxAAA, "a^3 must land back in the identity class")
	require.NotEqual(t, idx, idxA)
}

func TestToddCoxeter_NonTrivialClassesNonEmptyForCyclicGroup(t *testing.T) {
	tc := toddcoxeter.New(cyclicGroup3())
	_, err := tc.NumberOfClasses()
	require.NoError(t, err)

	nt, err := tc.NonTrivialClasses()
	require.NoError(t, err)
	require.NotEmpty(t, nt, "the identity class absorbs a coincidence during enumeration")
}

func TestToddCoxeter_StandardizeShortLexPutsIdentityFirst(t *testing.T) {
	tc := toddcoxeter.New(cyclicGroup3())
	_, err := tc.NumberOfClasses()
	require.NoError(t, err)

	require.NoError(t, tc.Standardize(toddcoxeter.ShortLex))
	idx, err := tc.ClassIndexOf(present.Word{})
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	standardized, order := tc.Standardized()
	require.True(t, standardized)
	require.Equal(t, toddcoxeter.ShortLex, order)
}

func TestToddCoxeter_StandardizeAllThreeOrdersAgreeOnCount(t *testing.T) {
	for _, order := range []toddcoxeter.StandardOrder{toddcoxeter.ShortLex, toddcoxeter.Lex, toddcoxeter.Recursive} {
		tc := toddcoxeter.New(cyclicGroup3())
		n, err := tc.NumberOfClasses()
		require.NoError(t, err)
		require.NoError(t, tc.Standardize(order))
		n2, err := tc.NumberOfClasses()
		require.NoError(t, err)
		require.Equal(t, n, n2)
	}
}

func TestToddCoxeter_WordOfRoundTrips(t *testing.T) {
	tc := toddcoxeter.New(cyclicGroup3())
	n, err := tc.NumberOfClasses()
	require.NoError(t, err)

	for k := 0; k < n; k++ {
		w, err := tc.WordOf(k)
		require.NoError(t, err)
		idx, err := tc.ClassIndexOf(w)
		require.NoError(t, err)
		require.Equal(t, k, idx)
	}
}
