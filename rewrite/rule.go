package rewrite

import "github.com/libsemigroups/libsemigroups-sub005/present"

// Rule is an oriented rewriting rule lhs -> rhs, with lhs strictly
// greater than rhs under the system's Ordering. Active rules currently
// participate in rewriting; inactive rules are kept on a free list so
// their storage can be reused without repeated allocation.
type Rule struct {
	Lhs, Rhs present.Word
	Active   bool
}
