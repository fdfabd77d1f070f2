package runner

// State is the Runner's lifecycle state, per spec.md §3/§4.1.
type State int

const (
	// NeverRun is the initial state before any Run/RunFor/RunUntil call.
	NeverRun State = iota
	// RunningToFinish means a Run() call is currently driving the engine
	// to completion with no deadline or predicate.
	RunningToFinish
	// RunningFor means a RunFor(d) call is currently driving the engine
	// with a wall-clock deadline.
	RunningFor
	// RunningUntil means a RunUntil(pred) call is currently driving the
	// engine until pred() returns true.
	RunningUntil
	// StoppedByPredicate means the engine yielded because the predicate
	// passed to RunUntil returned true before the work completed.
	StoppedByPredicate
	// TimedOut means the engine yielded because the RunFor deadline
	// elapsed before the work completed.
	TimedOut
	// Dead means Kill() was called; this is a permanent terminal state.
	Dead
	// Finished means the engine's work completed normally.
	Finished
	// NotRunningAfterException means the RunFunc returned a non-nil
	// error (or panicked); the error is captured and re-thrown by every
	// subsequent run_* call until Init is called again.
	NotRunningAfterException
)

// String renders the state using the same names as spec.md §3.
func (s State) String() string {
	switch s {
	case NeverRun:
		return "never_run"
	case RunningToFinish:
		return "running_to_finish"
	case RunningFor:
		return "running_for"
	case RunningUntil:
		return "running_until"
	case StoppedByPredicate:
		return "stopped_by_predicate"
	case TimedOut:
		return "timed_out"
	case Dead:
		return "dead"
	case Finished:
		return "finished"
	case NotRunningAfterException:
		return "not_running_after_exception"
	default:
		return "unknown"
	}
}
