package element

import "math"

// BoolOrAnd is the boolean semiring (Add = or, Mul = and), matching BMat
// entries but usable with the generic MatSemiring.
type BoolOrAnd bool

func (a BoolOrAnd) Add(b BoolOrAnd) BoolOrAnd   { return a || b }
func (a BoolOrAnd) Mul(b BoolOrAnd) BoolOrAnd   { return a && b }
func (a BoolOrAnd) Zero() BoolOrAnd             { return false }
func (a BoolOrAnd) One() BoolOrAnd              { return true }
func (a BoolOrAnd) Equal(b BoolOrAnd) bool      { return a == b }
func (a BoolOrAnd) Less(b BoolOrAnd) bool       { return !bool(a) && bool(b) }

// NegInf is MaxPlus's additive identity (semiring "zero"): any finite
// value dominates it under Add (max), and Mul with it saturates to
// NegInf (the usual tropical-semiring convention).
const NegInf = MaxPlus(math.MinInt64)

// MaxPlus is the max-plus (tropical) semiring: Add = max, Mul = +.
type MaxPlus int64

func (a MaxPlus) Add(b MaxPlus) MaxPlus {
	if a > b {
		return a
	}
	return b
}

func (a MaxPlus) Mul(b MaxPlus) MaxPlus {
	if a == NegInf || b == NegInf {
		return NegInf
	}
	return a + b
}

func (a MaxPlus) Zero() MaxPlus        { return NegInf }
func (a MaxPlus) One() MaxPlus         { return 0 }
func (a MaxPlus) Equal(b MaxPlus) bool { return a == b }
func (a MaxPlus) Less(b MaxPlus) bool  { return a < b }

// PosInf is MinPlus's additive identity.
const PosInf = MinPlus(math.MaxInt64)

// MinPlus is the min-plus (tropical) semiring: Add = min, Mul = +.
type MinPlus int64

func (a MinPlus) Add(b MinPlus) MinPlus {
	if a < b {
		return a
	}
	return b
}

func (a MinPlus) Mul(b MinPlus) MinPlus {
	if a == PosInf || b == PosInf {
		return PosInf
	}
	return a + b
}

func (a MinPlus) Zero() MinPlus        { return PosInf }
func (a MinPlus) One() MinPlus         { return 0 }
func (a MinPlus) Equal(b MinPlus) bool { return a == b }
func (a MinPlus) Less(b MinPlus) bool  { return a < b }

// IntRing is the ordinary integer semiring (ring): Add = +, Mul = *.
type IntRing int64

func (a IntRing) Add(b IntRing) IntRing  { return a + b }
func (a IntRing) Mul(b IntRing) IntRing  { return a * b }
func (a IntRing) Zero() IntRing          { return 0 }
func (a IntRing) One() IntRing           { return 1 }
func (a IntRing) Equal(b IntRing) bool   { return a == b }
func (a IntRing) Less(b IntRing) bool    { return a < b }
