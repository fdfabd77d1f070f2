package toddcoxeter

import "errors"

// ErrNotEnumerated indicates an operation requiring a completed
// enumeration (NumberOfClasses, ClassIndexOf, Standardize, ...) found
// that Run did not reach a fixed point, e.g. because the ToddCoxeter was
// killed. WordOf also returns it for a class index outside
// 0..NumberOfClasses()-1.
var ErrNotEnumerated = errors.New("toddcoxeter: enumeration has not completed")
