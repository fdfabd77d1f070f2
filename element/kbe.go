package element

import (
	"hash/fnv"

	"github.com/libsemigroups/libsemigroups-sub005/knuthbendix"
	"github.com/libsemigroups/libsemigroups-sub005/present"
)

// KBE is an element of the semigroup or monoid presented to a
// knuthbendix.KnuthBendix: a present.Word normal form, with
// multiplication defined as concatenation followed by rewriting. All
// KBEs sharing a single KnuthBendix instance are comparable; Product
// rewrites with x's KnuthBendix only and does not check that y comes from
// the same instance.
type KBE struct {
	kb   *knuthbendix.KnuthBendix
	Word present.Word
}

// NewKBE wraps w (already assumed reduced, or not — Product always
// re-rewrites) as an element over kb.
func NewKBE(kb *knuthbendix.KnuthBendix, w present.Word) KBE {
	return KBE{kb: kb, Word: kb.NormalForm(w)}
}

func (e KBE) Degree() int { return 0 } // unused: KBE has no fixed point-set degree

func (e KBE) Product(out *KBE, x, y KBE, tid int) {
	*out = KBE{kb: x.kb, Word: x.kb.NormalForm(x.Word.Append(y.Word))}
}

func (e KBE) One(n int) KBE {
	return KBE{kb: e.kb, Word: e.kb.NormalForm(present.Word{})}
}

func (e KBE) Equal(other KBE) bool { return e.Word.Equal(other.Word) }

func (e KBE) Hash() uint64 {
	h := fnv.New64a()
	for _, l := range e.Word {
		h.Write([]byte{byte(l), byte(l >> 8), byte(l >> 16), byte(l >> 24)})
	}
	return h.Sum64()
}

// Less orders KBEs by ShortLex on their normal-form words, which is a
// total order on normal forms regardless of whether the underlying
// system has finished completing.
func (e KBE) Less(other KBE) bool {
	if len(e.Word) != len(other.Word) {
		return len(e.Word) < len(other.Word)
	}
	for i := range e.Word {
		if e.Word[i] != other.Word[i] {
			return e.Word[i] < other.Word[i]
		}
	}
	return false
}

func (e KBE) Rank() int { return len(e.Word) }
