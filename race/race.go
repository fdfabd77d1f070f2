package race

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runnable is anything race can run concurrently: every engine package in
// this module (knuthbendix.KnuthBendix, froidurepin.FroidurePin,
// toddcoxeter.ToddCoxeter, schreiersims.SchreierSims, konieczny.Konieczny)
// satisfies this via its embedded *runner.Runner.
type Runnable interface {
	Run() error
	Kill()
}

// Race runs a fixed set of Runnables concurrently, capped at threadLimit
// simultaneous goroutines (0 means unbounded), and reports whichever
// finishes first.
//
// Race determinism is explicitly NOT guaranteed: which contestant "wins"
// depends on goroutine scheduling and each engine's intrinsic speed on
// the input at hand, not on contestant order. Callers that need a
// reproducible choice between equally-valid strategies should not rely
// on Race; they should pick one deterministically instead.
type Race struct {
	threadLimit int
}

// New returns a Race capped at threadLimit concurrent contestants (0 for
// unbounded, i.e. every contestant starts immediately).
func New(threadLimit int) *Race {
	return &Race{threadLimit: threadLimit}
}

// Result is the outcome of one Race.Run call.
type Result struct {
	// Winner is the index into the contestants slice of the first
	// Runnable to return from Run, or -1 if ctx was cancelled before any
	// contestant finished.
	Winner int

	// IDs assigns a correlation id to each contestant, in the same
	// order as the contestants argument, for log correlation across the
	// concurrently running engines.
	IDs []uuid.UUID
}

// Run starts every contestant's Run method concurrently, waits for the
// first to return, kills every other contestant, and waits for them all
// to unwind before returning. An error is returned only if some
// contestant's Run returned a genuine error (not mere cancellation via
// Kill); a non-nil error does not prevent Result from being populated, so
// callers can distinguish "a loser errored on the way out" from
// "the winner itself errored" by checking Result.Winner.
func (r *Race) Run(ctx context.Context, contestants ...Runnable) (Result, error) {
	if len(contestants) == 0 {
		return Result{Winner: -1}, ErrNoContestants
	}

	ids := make([]uuid.UUID, len(contestants))
	for i := range ids {
		ids[i] = uuid.New()
	}

	var g errgroup.Group
	if r.threadLimit > 0 {
		g.SetLimit(r.threadLimit)
	}
	done := make(chan int, len(contestants))
	for i, c := range contestants {
		i, c := i, c
		g.Go(func() error {
			err := c.Run()
			select {
			case done <- i:
			default:
			}
			return err
		})
	}

	winner := -1
	select {
	case winner = <-done:
	case <-ctx.Done():
	}
	for i, c := range contestants {
		if i != winner {
			c.Kill()
		}
	}

	err := g.Wait()
	return Result{Winner: winner, IDs: ids}, err
}
