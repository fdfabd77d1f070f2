package race

import "errors"

// ErrNoContestants indicates Run was called with zero contestants.
var ErrNoContestants = errors.New("race: no contestants")
