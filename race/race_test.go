package race_test

import (
	"context"
	"testing"
	"time"

	"github.com/libsemigroups/libsemigroups-sub005/race"
	"github.com/libsemigroups/libsemigroups-sub005/runner"
	"github.com/stretchr/testify/require"
)

// fastContestant finishes immediately.
func fastContestant() *runner.Runner {
	r := runner.New()
	r.Init(func(r *runner.Runner) error { return nil })
	return r
}

// slowContestant spins checking Stopped() until killed, simulating an
// engine racing against a faster strategy that never finishes on its
// own within the test's lifetime.
func slowContestant() *runner.Runner {
	r := runner.New()
	r.Init(func(r *runner.Runner) error {
		for !r.Stopped() {
			time.Sleep(time.Millisecond)
		}
		return nil
	})
	return r
}

func TestRace_FastContestantWins(t *testing.T) {
	fast := fastContestant()
	slow := slowContestant()

	rc := race.New(0)
	res, err := rc.Run(context.Background(), fast, slow)
	require.NoError(t, err)
	require.Equal(t, 0, res.Winner)
	require.Len(t, res.IDs, 2)

	require.Eventually(t, slow.Dead, time.Second, time.Millisecond, "loser must be killed")
	require.True(t, fast.Finished())
}

func TestRace_NoContestantsIsAnError(t *testing.T) {
	rc := race.New(0)
	_, err := rc.Run(context.Background())
	require.ErrorIs(t, err, race.ErrNoContestants)
}

func TestRace_ContextCancelledBeforeAnyFinishYieldsNoWinner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slowA := slowContestant()
	slowB := slowContestant()
	rc := race.New(0)
	res, err := rc.Run(ctx, slowA, slowB)
	require.NoError(t, err)
	require.Equal(t, -1, res.Winner)

	require.Eventually(t, slowA.Dead, time.Second, time.Millisecond)
	require.Eventually(t, slowB.Dead, time.Second, time.Millisecond)
}
