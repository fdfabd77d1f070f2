package knuthbendix_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/knuthbendix"
	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/stretchr/testify/require"
)

// idempotentPresentation is a 1-generator semigroup presentation with
// a*a = a: the trivial (one-element) semigroup once completed.
func idempotentPresentation() *present.Presentation {
	p := &present.Presentation{AlphabetSize: 1}
	p.AddRelation(present.Word{0, 0}, present.Word{0})
	return p
}

func TestKnuthBendix_CompletesTrivialMonoid(t *testing.T) {
	kb := knuthbendix.New(idempotentPresentation())
	require.NoError(t, kb.Run())
	require.True(t, kb.Confluent())
	require.Equal(t, 1, kb.NumberOfActiveRules())

	size, ok, err := kb.Size()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, size)
}

func TestKnuthBendix_EqualTo(t *testing.T) {
	kb := knuthbendix.New(idempotentPresentation())
	require.NoError(t, kb.Run())
	require.True(t, kb.EqualTo(present.Word{0, 0, 0}, present.Word{0}))
	require.True(t, kb.EqualTo(present.Word{}, present.Word{}))
}

func TestKnuthBendix_FreeMonoidIsAlreadyConfluent(t *testing.T) {
	p := &present.Presentation{AlphabetSize: 2}
	kb := knuthbendix.New(p)
	require.NoError(t, kb.Run())
	require.True(t, kb.Confluent())
	require.Zero(t, kb.NumberOfActiveRules())

	_, ok, err := kb.Size()
	require.NoError(t, err)
	require.False(t, ok, "the free monoid on 2 generators is infinite")
}

func TestKnuthBendix_UnorientableRelationIsRecordedNotFatal(t *testing.T) {
	p := &present.Presentation{AlphabetSize: 2}
	p.AddRelation(present.Word{0}, present.Word{1})

	kb := knuthbendix.New(p, knuthbendix.WithOrdering(tiedOrderingImpl{}))
	require.NotEmpty(t, kb.Unorientable())
}

type tiedOrderingImpl struct{}

func (tiedOrderingImpl) Compare(u, v present.Word) int { return 0 }

func TestKnuthBendix_MaxRulesBoundsCompletion(t *testing.T) {
	p := &present.Presentation{AlphabetSize: 2}
	p.AddRelation(present.Word{0, 1}, present.Word{1, 0})
	p.AddRelation(present.Word{0, 0, 0}, present.Word{0})
	p.AddRelation(present.Word{1, 1, 1}, present.Word{1})

	kb := knuthbendix.New(p, knuthbendix.WithMaxRules(1))
	err := kb.Run()
	if err != nil {
		require.ErrorIs(t, err, knuthbendix.ErrTooManyRules)
	}
}
