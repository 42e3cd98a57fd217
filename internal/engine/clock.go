package engine

import "time"

// Clock is the pluggable "now" source. Rollover and streak accrual are
// driven through it so tests can simulate day boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// DayString formats t as the canonical local day (YYYY-MM-DD).
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}
