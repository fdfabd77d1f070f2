package schreiersims

import "errors"

// ErrDegreeMismatch indicates a permutation's length does not match the
// chain's fixed degree.
var ErrDegreeMismatch = errors.New("schreiersims: permutation degree mismatch")

// ErrDuplicateBasePoint indicates AddBasePoint was called with a point
// already present in the base.
var ErrDuplicateBasePoint = errors.New("schreiersims: point is already a base point")
