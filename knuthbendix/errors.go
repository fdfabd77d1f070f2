package knuthbendix

import "errors"

var (
	// ErrTooManyRules is returned by Run when the active rule count
	// exceeds a WithMaxRules bound before confluence is reached.
	ErrTooManyRules = errors.New("knuthbendix: active rule count exceeded configured maximum")
)
