package runner

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// RunFunc is implemented by an engine: it should perform work in small
// increments, calling r.Stopped() at a bounded step count (every outer
// iteration, and every N inner iterations of a tight loop) to decide
// whether to yield early. Returning nil means either "work is done" or
// "yielded cooperatively"; Runner itself distinguishes the two by
// comparing wall-clock/predicate/kill state once RunFunc returns.
// Returning a non-nil error marks the Runner as having failed with an
// exception.
type RunFunc func(r *Runner) error

// Runner is a cooperative long-running job. The zero value is not usable;
// construct one with New.
type Runner struct {
	mu          sync.Mutex
	state       State
	impl        RunFunc
	hasDeadline bool
	deadline    time.Time
	pred        func() bool
	err         error
	reportEvery time.Duration
	lastReport  time.Time
	killed      atomic.Bool
	running     atomic.Bool
}

// New returns a Runner in state NeverRun with no RunFunc; call Init
// before the first Run/RunFor/RunUntil.
func New() *Runner {
	return &Runner{state: NeverRun}
}

// Init (re)supplies the RunFunc this Runner drives and resets all
// terminal state (error, kill flag, state machine) back to NeverRun. This
// is the only way to recover a Runner from Dead or
// NotRunningAfterException.
func (r *Runner) Init(impl RunFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.impl = impl
	r.state = NeverRun
	r.err = nil
	r.hasDeadline = false
	r.pred = nil
	r.killed.Store(false)
}

// Run drives the engine to completion with no deadline or predicate.
func (r *Runner) Run() error {
	r.mu.Lock()
	r.hasDeadline = false
	r.pred = nil
	r.mu.Unlock()
	return r.drive(RunningToFinish)
}

// RunFor drives the engine until either it finishes or the wall-clock
// duration d elapses, whichever comes first.
func (r *Runner) RunFor(d time.Duration) error {
	r.mu.Lock()
	r.hasDeadline = true
	r.deadline = time.Now().Add(d)
	r.pred = nil
	r.mu.Unlock()
	return r.drive(RunningFor)
}

// RunUntil drives the engine until either it finishes or pred() returns
// true, whichever comes first. pred is polled cooperatively, at the same
// points the engine checks Stopped().
func (r *Runner) RunUntil(pred func() bool) error {
	r.mu.Lock()
	r.hasDeadline = false
	r.pred = pred
	r.mu.Unlock()
	return r.drive(RunningUntil)
}

// drive is the shared driving logic for Run/RunFor/RunUntil.
func (r *Runner) drive(initial State) error {
	r.mu.Lock()
	switch r.state {
	case Dead:
		r.mu.Unlock()
		return nil // permanent: further run_* calls silently no-op
	case NotRunningAfterException:
		err := r.err
		r.mu.Unlock()
		return err // rethrow until Init() is called
	case Finished:
		r.mu.Unlock()
		return nil // already done: no-op
	}
	impl := r.impl
	r.state = initial
	r.mu.Unlock()

	if impl == nil {
		r.mu.Lock()
		r.state = NotRunningAfterException
		r.err = ErrNotInitialized
		r.mu.Unlock()
		return ErrNotInitialized
	}

	if !r.running.CompareAndSwap(false, true) {
		panic("runner: concurrent Run/RunFor/RunUntil on the same Runner")
	}
	defer r.running.Store(false)

	err := r.runCaptured(impl)

	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case err != nil:
		r.state = NotRunningAfterException
		r.err = err
		return err
	case r.killed.Load():
		r.state = Dead
	case r.hasDeadline && !time.Now().Before(r.deadline):
		r.state = TimedOut
	case r.pred != nil && r.pred():
		r.state = StoppedByPredicate
	default:
		r.state = Finished
	}
	return nil
}

// runCaptured runs impl, converting any panic into an error so that a
// failing engine transitions to NotRunningAfterException rather than
// crashing its driving goroutine.
func (r *Runner) runCaptured(impl RunFunc) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = fmt.Errorf("runner: panic in run_impl: %w", e)
			} else {
				err = fmt.Errorf("runner: panic in run_impl: %v", p)
			}
		}
	}()
	return impl(r)
}

// Stopped reports whether the engine driving loop should yield now: it is
// true once Kill has been called, once a RunFor deadline has elapsed,
// once a RunUntil predicate returns true, or once the Runner has already
// settled into one of the terminal stopped states (Dead, TimedOut,
// StoppedByPredicate). Engines call this at bounded step counts inside
// run_impl.
func (r *Runner) Stopped() bool {
	if r.killed.Load() {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case Dead, TimedOut, StoppedByPredicate:
		return true
	}
	if r.hasDeadline && !time.Now().Before(r.deadline) {
		return true
	}
	if r.pred != nil && r.pred() {
		return true
	}
	return false
}

// Kill permanently requests abandonment of this Runner. Kill is
// idempotent and safe to call from any goroutine, including before the
// first Run/RunFor/RunUntil call.
func (r *Runner) Kill() {
	r.killed.Store(true)
}

// Started reports whether any Run/RunFor/RunUntil call has ever been
// made since construction or the last Init.
func (r *Runner) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state != NeverRun
}

// Finished reports whether the engine's work completed normally.
func (r *Runner) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == Finished
}

// TimedOut reports whether the Runner stopped because a RunFor deadline
// elapsed.
func (r *Runner) TimedOut() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == TimedOut
}

// StoppedByPredicate reports whether the Runner stopped because a
// RunUntil predicate returned true.
func (r *Runner) StoppedByPredicate() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == StoppedByPredicate
}

// Dead reports whether Kill was called on this Runner.
func (r *Runner) Dead() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == Dead
}

// Success reports whether the Runner finished normally (equivalent to
// Finished(); provided as a separate, clearer name for call sites that
// only care about overall success).
func (r *Runner) Success() bool {
	return r.Finished()
}

// CurrentState returns the Runner's current state.
func (r *Runner) CurrentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the captured exception, if the Runner is in state
// NotRunningAfterException; otherwise nil.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// ReportEvery sets the minimum interval between periodic progress
// callbacks; ShouldReport uses it to throttle reporting.
func (r *Runner) ReportEvery(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reportEvery = d
}

// ShouldReport reports whether at least ReportEvery has elapsed since the
// last call that returned true, and if so, resets the internal clock.
// Engines call this before emitting a progress log line so that two
// engines with different report intervals don't spam the sink.
func (r *Runner) ShouldReport() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if r.lastReport.IsZero() || now.Sub(r.lastReport) >= r.reportEvery {
		r.lastReport = now
		return true
	}
	return false
}
