package konieczny

import "errors"

// ErrNotRegular indicates GroupOfDClass was called on a D-class with no
// idempotent: it has no maximal subgroup to represent.
var ErrNotRegular = errors.New("konieczny: D-class is not regular")
