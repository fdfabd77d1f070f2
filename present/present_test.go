package present_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/stretchr/testify/require"
)

func TestPresentation_Validate(t *testing.T) {
	p := present.Presentation{AlphabetSize: 2}
	p.AddRelation(present.Word{0, 1, 0, 1}, present.Word{0, 1})
	require.NoError(t, p.Validate())

	p.AddRelation(present.Word{2}, present.Word{0})
	require.ErrorIs(t, p.Validate(), present.ErrLetterOutOfRange)
}

func TestPresentation_InverseLetters(t *testing.T) {
	p := present.Presentation{AlphabetSize: 2, InverseLetters: []int32{1, 0}}
	require.NoError(t, p.Validate())

	p.InverseLetters = []int32{1, 1}
	require.ErrorIs(t, p.Validate(), present.ErrBadInverseMap)

	p.InverseLetters = []int32{0}
	require.ErrorIs(t, p.Validate(), present.ErrBadInverseMap)
}

func TestWord_EqualAndClone(t *testing.T) {
	w := present.Word{0, 1, 2}
	clone := w.Clone()
	require.True(t, w.Equal(clone))

	clone[0] = 9
	require.False(t, w.Equal(clone), "mutating the clone must not affect the original")
}

func TestWord_Append(t *testing.T) {
	a := present.Word{0, 1}
	b := present.Word{2, 3}
	got := a.Append(b)
	require.Equal(t, present.Word{0, 1, 2, 3}, got)
	require.Equal(t, present.Word{0, 1}, a, "Append must not mutate its receiver")
}

func TestPresentation_SortedRelations(t *testing.T) {
	p := present.Presentation{AlphabetSize: 2}
	p.AddRelation(present.Word{1}, present.Word{0})
	p.AddRelation(present.Word{0}, present.Word{1})
	sorted := p.SortedRelations()
	require.True(t, sorted[0].Lhs.Equal(present.Word{0}))
}
