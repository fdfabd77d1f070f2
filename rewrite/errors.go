package rewrite

import "errors"

// Sentinel errors for rewriting-system operations. Messages are prefixed
// "rewrite: " for consistent grepping; match with errors.Is.
var (
	// ErrUnorientable is returned by AddRule when neither side of a
	// candidate rule is greater than the other under the current
	// Ordering; the rule is discarded. knuthbendix records the error (see
	// KnuthBendix.Unorientable) and completion continues with the
	// remaining orientable rules.
	ErrUnorientable = errors.New("rewrite: neither side of the rule is greater under the current ordering")

	// ErrNotConfluent is returned by operations (GilmanDigraph) that
	// require a confluent rewriting system to produce a meaningful
	// result.
	ErrNotConfluent = errors.New("rewrite: system is not confluent")
)
