package report_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/libsemigroups/libsemigroups-sub005/report"
	"github.com/stretchr/testify/require"
)

func TestGuard_EnabledWhileOpen(t *testing.T) {
	require.False(t, report.Enabled())
	g := report.NewGuard()
	require.True(t, report.Enabled())
	g.Close()
	require.False(t, report.Enabled())
}

func TestGuard_Nesting(t *testing.T) {
	g1 := report.NewGuard()
	g2 := report.NewGuard()
	g1.Close()
	require.True(t, report.Enabled(), "one guard still open")
	g2.Close()
	require.False(t, report.Enabled())
}

func TestGuard_CloseIdempotent(t *testing.T) {
	g := report.NewGuard()
	g.Close()
	require.NotPanics(t, func() { g.Close() })
}

func TestDiscard_IsNoOp(t *testing.T) {
	var l report.Logger = report.Discard{}
	l = l.WithField("k", "v").WithFields(map[string]any{"a": 1}).WithError(nil)
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ns"},
		{500 * time.Nanosecond, "500.0ns"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1.5min"},
		{36 * time.Hour, "1.5d"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, report.FormatDuration(c.d))
	}
}

func TestTicker_FiresAndStops(t *testing.T) {
	var count atomic.Int32
	ticker := report.NewTicker(context.Background(), 5*time.Millisecond, func() {
		count.Add(1)
	})
	time.Sleep(30 * time.Millisecond)
	ticker.Close()
	got := count.Load()
	require.GreaterOrEqual(t, got, int32(2))

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, got, count.Load(), "no further ticks after Close")
}

func TestTicker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var count atomic.Int32
	ticker := report.NewTicker(ctx, 5*time.Millisecond, func() { count.Add(1) })
	cancel()
	ticker.Close()
}
