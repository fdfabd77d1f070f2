package report

import (
	"fmt"
	"time"
)

// unit pairs a threshold duration with its display name; the table is
// ordered smallest to largest so FormatDuration can pick the largest unit
// that keeps the leading component >= 1.
type unit struct {
	name string
	size time.Duration
}

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var units = []unit{
	{"ns", time.Nanosecond},
	{"µs", time.Microsecond},
	{"ms", time.Millisecond},
	{"s", time.Second},
	{"min", time.Minute},
	{"h", time.Hour},
	{"d", day},
	{"wk", week},
	{"mon", month},
	{"yr", year},
}

// FormatDuration renders d using the largest unit (ns, µs, ms, s, min, h,
// d, wk, mon, yr) that keeps the leading component >= 1, with one decimal
// place of precision, e.g. "1.5s", "3.2min", "250.0ms".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDuration(-d)
	}
	if d == 0 {
		return "0ns"
	}
	chosen := units[0]
	for _, u := range units {
		if d < u.size {
			break
		}
		chosen = u
	}
	value := float64(d) / float64(chosen.size)
	return fmt.Sprintf("%.1f%s", value, chosen.name)
}
