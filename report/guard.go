package report

import "sync/atomic"

// enabled is the process-wide reporting switch. It defaults to disabled:
// engines must not emit progress messages unless a Guard has been opened.
var enabled atomic.Bool

// Guard is a scoped reporting enabler. While at least one Guard is open,
// Enabled reports true; closing the last open Guard disables reporting
// again. Guards nest: opening a second Guard while one is already open is
// harmless and closing either one independently is safe.
//
//	g := report.NewGuard()
//	defer g.Close()
//	// engines started in this scope will emit progress messages
type Guard struct {
	closed atomic.Bool
}

// NewGuard opens a new reporting scope, incrementing the global guard
// count, and returns a handle that must be Close-d to release it.
func NewGuard() *Guard {
	guardCount.Add(1)
	enabled.Store(true)
	return &Guard{}
}

// guardCount tracks how many Guards are currently open, so that Close on
// one Guard does not disable reporting while others remain open.
var guardCount atomic.Int64

// Close releases this Guard. Once the last open Guard is closed,
// Enabled reports false again. Close is idempotent.
func (g *Guard) Close() {
	if g.closed.CompareAndSwap(false, true) {
		if guardCount.Add(-1) <= 0 {
			enabled.Store(false)
		}
	}
}

// Enabled reports whether reporting is currently switched on by at least
// one open Guard anywhere in the process.
func Enabled() bool {
	return enabled.Load()
}
