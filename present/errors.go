package present

import "errors"

// Sentinel errors for presentation validation. Every message is prefixed
// with "present: " for consistent grepping across logs; callers should
// match with errors.Is rather than string comparison.
var (
	// ErrLetterOutOfRange indicates a relation references a letter not in
	// the declared alphabet.
	ErrLetterOutOfRange = errors.New("present: letter out of range")

	// ErrBadInverseMap indicates InverseLetters is not an involution of
	// the correct length.
	ErrBadInverseMap = errors.New("present: inverse-letter map is invalid")
)
