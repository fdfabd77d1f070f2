package runner

import "errors"

// Sentinel errors for Runner misuse. Messages are prefixed "runner: " for
// consistent grepping; match with errors.Is.
var (
	// ErrNotInitialized is returned by a run_* call when Init has never
	// been called to supply a RunFunc.
	ErrNotInitialized = errors.New("runner: not initialized, call Init first")
)
