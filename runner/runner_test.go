package runner_test

import (
	"errors"
	"testing"
	"time"

	"github.com/libsemigroups/libsemigroups-sub005/runner"
	"github.com/stretchr/testify/require"
)

func TestRunner_NeverRunInitially(t *testing.T) {
	r := runner.New()
	require.Equal(t, runner.NeverRun, r.CurrentState())
	require.False(t, r.Started())
}

func TestRunner_RunToCompletion(t *testing.T) {
	r := runner.New()
	calls := 0
	r.Init(func(r *runner.Runner) error {
		calls++
		return nil
	})
	require.NoError(t, r.Run())
	require.True(t, r.Finished())
	require.True(t, r.Success())
	require.Equal(t, 1, calls)
}

func TestRunner_RunForTimesOut(t *testing.T) {
	r := runner.New()
	r.Init(func(r *runner.Runner) error {
		for !r.Stopped() {
			time.Sleep(time.Millisecond)
		}
		return nil
	})
	err := r.RunFor(10 * time.Millisecond)
	require.NoError(t, err)
	require.True(t, r.TimedOut())
	require.False(t, r.Success())
}

func TestRunner_RunUntilPredicate(t *testing.T) {
	r := runner.New()
	iterations := 0
	r.Init(func(r *runner.Runner) error {
		for !r.Stopped() {
			iterations++
		}
		return nil
	})
	err := r.RunUntil(func() bool { return iterations >= 5 })
	require.NoError(t, err)
	require.True(t, r.StoppedByPredicate())
	require.GreaterOrEqual(t, iterations, 5)
}

func TestRunner_Kill(t *testing.T) {
	r := runner.New()
	started := make(chan struct{})
	r.Init(func(r *runner.Runner) error {
		close(started)
		for !r.Stopped() {
			time.Sleep(time.Millisecond)
		}
		return nil
	})
	go func() {
		<-started
		r.Kill()
	}()
	err := r.Run()
	require.NoError(t, err)
	require.True(t, r.Dead())
}

func TestRunner_KillIsIdempotent(t *testing.T) {
	r := runner.New()
	r.Kill()
	require.NotPanics(t, func() { r.Kill() })
}

func TestRunner_InitAfterKillResetsAndRuns(t *testing.T) {
	r := runner.New()
	r.Kill()
	calls := 0
	r.Init(func(r *runner.Runner) error { calls++; return nil })
	// Init resets the kill flag, so a run after Init proceeds normally.
	require.NoError(t, r.Run())
	require.Equal(t, 1, calls)
}

func TestRunner_ExceptionCapturedAndRethrown(t *testing.T) {
	r := runner.New()
	boom := errors.New("boom")
	r.Init(func(r *runner.Runner) error { return boom })

	err := r.Run()
	require.ErrorIs(t, err, boom)
	require.Equal(t, runner.NotRunningAfterException, r.CurrentState())

	// Subsequent run_* calls rethrow without re-running impl.
	err = r.Run()
	require.ErrorIs(t, err, boom)

	// Init clears the exception state.
	r.Init(func(r *runner.Runner) error { return nil })
	require.NoError(t, r.Run())
	require.True(t, r.Success())
}

func TestRunner_PanicCapturedAsException(t *testing.T) {
	r := runner.New()
	r.Init(func(r *runner.Runner) error { panic("kaboom") })
	err := r.Run()
	require.Error(t, err)
	require.Equal(t, runner.NotRunningAfterException, r.CurrentState())
}

func TestRunner_FinishedIsPermanentNoOp(t *testing.T) {
	r := runner.New()
	calls := 0
	r.Init(func(r *runner.Runner) error { calls++; return nil })
	require.NoError(t, r.Run())
	require.NoError(t, r.Run())
	require.Equal(t, 1, calls, "a finished runner must not re-run its impl")
}

func TestRunner_NotInitialized(t *testing.T) {
	r := runner.New()
	err := r.Run()
	require.ErrorIs(t, err, runner.ErrNotInitialized)
}

func TestRunner_ShouldReportThrottles(t *testing.T) {
	r := runner.New()
	r.ReportEvery(20 * time.Millisecond)
	require.True(t, r.ShouldReport(), "first call always reports")
	require.False(t, r.ShouldReport(), "immediate second call is throttled")
	time.Sleep(25 * time.Millisecond)
	require.True(t, r.ShouldReport())
}

func TestRunner_ConcurrentDriveIsRejected(t *testing.T) {
	r := runner.New()
	release := make(chan struct{})
	r.Init(func(r *runner.Runner) error {
		<-release
		return nil
	})
	go func() { _ = r.Run() }()
	time.Sleep(5 * time.Millisecond)
	require.Panics(t, func() { _ = r.Run() })
	close(release)
}
