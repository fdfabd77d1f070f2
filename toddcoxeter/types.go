package toddcoxeter

// Strategy selects how newly discovered cosets are expanded during
// enumeration.
type Strategy int

const (
	// HLT (Hazelgrove-Leech-Trotter) eagerly defines every generator
	// image of a coset as soon as it is processed, then scans every
	// relation from it; this keeps the coset table total, at the cost
	// of defining coset images that no relation ever forces.
	HLT Strategy = iota

	// Felsch only defines a coset's generator images on demand, as
	// relation-scanning requires them; it tends to define fewer cosets
	// per relation pass at the cost of more passes to reach closure.
	Felsch
)

// String renders the strategy name.
func (s Strategy) String() string {
	switch s {
	case HLT:
		return "HLT"
	case Felsch:
		return "Felsch"
	default:
		return "unknown"
	}
}

// StandardOrder selects the traversal used by Standardize to assign the
// final, canonical 0..n-1 numbering to the classes discovered during
// enumeration.
type StandardOrder int

const (
	// ShortLex numbers classes in breadth-first discovery order over the
	// complete coset table, ascending generator label at each node: the
	// resulting numbering matches the order in which shortlex-least
	// words reach each class.
	ShortLex StandardOrder = iota

	// Lex numbers classes in depth-first discovery order, ascending
	// generator label at each node: the numbering matches the order in
	// which lexicographically-least words reach each class.
	Lex

	// Recursive numbers classes in depth-first discovery order,
	// descending generator label at each node, giving a numbering
	// distinct from both ShortLex and Lex (the libsemigroups "recursive"
	// standardisation order).
	Recursive
)

// String renders the order name.
func (o StandardOrder) String() string {
	switch o {
	case ShortLex:
		return "ShortLex"
	case Lex:
		return "Lex"
	case Recursive:
		return "Recursive"
	default:
		return "unknown"
	}
}
