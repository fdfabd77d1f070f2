// Package report provides the uniform progress-reporting layer shared by
// every engine: a scoped enable/disable guard, a periodic ticker, a
// logging sink interface, and human-readable duration formatting.
//
// Engines never read global state beyond the package-level report guard;
// all other configuration (the Logger to write to, the ticker interval)
// is passed in explicitly by the caller, in keeping with this module's
// functional-options convention.
package report
