// Package runner implements the cooperative long-running job shared by
// every engine in this module: a state machine with start/run/run_for/
// run_until/kill, timeout handling, predicate-based stopping, and
// exception capture.
//
// A Runner does not know how to do the engine's work; it is driven by a
// RunFunc supplied via Init, which the engine implements as a loop that
// periodically calls Stopped() to decide whether to yield early. At most
// one goroutine may drive a given Runner at a time; Kill and the
// deadline/predicate checks read atomic/mutex-guarded state so they are
// safe to call concurrently from other goroutines (in particular, from a
// race.Race coordinator).
package runner
