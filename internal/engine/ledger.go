package engine

import (
	"fmt"
	"time"

	"lockin/internal/storage"
)

// Ledger owns the mutable point state. It mutates in memory only; the
// Service decides when to persist, so every rule here is testable without
// touching storage.
type Ledger struct {
	state *storage.LedgerState
	clock Clock
}

// NewLedger wraps an already-decoded state.
func NewLedger(state *storage.LedgerState, clock Clock) *Ledger {
	if clock == nil {
		clock = SystemClock()
	}
	return &Ledger{state: state, clock: clock}
}

// NewDefaultLedger builds a fresh-state ledger.
func NewDefaultLedger(clock Clock) *Ledger {
	if clock == nil {
		clock = SystemClock()
	}
	return &Ledger{state: storage.NewDefault(clock.Now()), clock: clock}
}

// AddPoints applies a signed delta to the running totals and, when category
// is known, to its subtotal. An unknown category is tolerated: the points
// still count, the category bookkeeping is skipped. A non-empty description
// prepends an activity record; amount 0 with no description is a no-op and
// creates no record.
func (l *Ledger) AddPoints(amount int, category Category, description string) {
	l.state.Points += amount
	l.state.TodayPoints += amount

	if category != CategoryNone {
		if _, ok := l.state.CategoryPoints[string(category)]; ok {
			l.state.CategoryPoints[string(category)] += amount
		}
	}

	if description != "" {
		var cat *string
		if category != CategoryNone {
			c := string(category)
			cat = &c
		}
		rec := storage.ActivityRecord{
			Timestamp:   l.clock.Now().UnixMilli(),
			Description: description,
			Points:      amount,
			Category:    cat,
		}
		l.state.ActivityHistory = append([]storage.ActivityRecord{rec}, l.state.ActivityHistory...)
		if len(l.state.ActivityHistory) > storage.MaxHistory {
			l.state.ActivityHistory = l.state.ActivityHistory[:storage.MaxHistory]
		}
	}
}

// CheckDayRollover resets the daily counters and applies the daily debt when
// the stored day differs from the current one. Idempotent within a day.
func (l *Ledger) CheckDayRollover() bool {
	today := DayString(l.clock.Now())
	if l.state.TodayDate == today {
		return false
	}

	l.state.TodayDate = today
	l.state.PrayersLoggedToday = 0
	l.state.TodayPoints = -storage.DailyDebt
	l.state.Points -= storage.DailyDebt
	l.state.TodayStudyHours = 0
	l.state.CategoryPoints[string(CategoryStudy)] = -storage.DailyDebt
	l.AddPoints(0, CategoryNone, "New day started (daily penalty applied)")
	return true
}

// AccrueCleanDays credits one reward per whole clean day elapsed since the
// streak anchor and advances the anchor by exactly the consumed days, so a
// fractional remainder is never lost and never double-credited.
func (l *Ledger) AccrueCleanDays() int {
	elapsed := l.clock.Now().UnixMilli() - l.state.StreakAnchor
	days := int(elapsed / (24 * time.Hour).Milliseconds())
	if days <= 0 {
		return 0
	}

	perDay := l.CustomPoint("cleanPerDay")
	plural := ""
	if days > 1 {
		plural = "s"
	}
	l.AddPoints(days*perDay, CategoryClean, fmt.Sprintf("%d clean day%s", days, plural))
	l.state.StreakAnchor += int64(days) * (24 * time.Hour).Milliseconds()
	return days
}

// ResetStreakAnchor moves the anchor to now, zeroing the accrual base.
// Called when a relapse is confirmed.
func (l *Ledger) ResetStreakAnchor() {
	l.state.StreakAnchor = l.clock.Now().UnixMilli()
}

// CleanDays returns the whole clean days elapsed since the anchor, for
// display; it does not credit anything.
func (l *Ledger) CleanDays() int {
	elapsed := l.clock.Now().UnixMilli() - l.state.StreakAnchor
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour).Milliseconds())
}

func (l *Ledger) bumpCount(key string) {
	l.state.Counts[key]++
}

func (l *Ledger) doneToday(key string) bool {
	return l.state.LastDone[key] == DayString(l.clock.Now())
}

// DoneToday reports whether a once-per-day action was already logged on the
// current day.
func (l *Ledger) DoneToday(key string) bool { return l.doneToday(key) }

func (l *Ledger) markDoneToday(key string) {
	l.state.LastDone[key] = DayString(l.clock.Now())
}

// CustomPoint returns the tuned value for a reward/penalty key, falling back
// to the default table for keys missing from older states.
func (l *Ledger) CustomPoint(key string) int {
	if v, ok := l.state.CustomPoints[key]; ok {
		return v
	}
	return storage.DefaultCustomPoints[key]
}

// Read-only accessors for the UI layer.

func (l *Ledger) TotalPoints() int        { return l.state.Points }
func (l *Ledger) TodayPoints() int        { return l.state.TodayPoints }
func (l *Ledger) TodayDate() string       { return l.state.TodayDate }
func (l *Ledger) PrayersLoggedToday() int { return l.state.PrayersLoggedToday }
func (l *Ledger) TodayStudyHours() float64 {
	return l.state.TodayStudyHours
}

func (l *Ledger) CategoryTotal(c Category) int {
	return l.state.CategoryPoints[string(c)]
}

func (l *Ledger) Count(key string) int { return l.state.Counts[key] }

// History returns a copy of the bounded activity feed, newest first.
func (l *Ledger) History() []storage.ActivityRecord {
	out := make([]storage.ActivityRecord, len(l.state.ActivityHistory))
	copy(out, l.state.ActivityHistory)
	return out
}

// CustomPoints returns a copy of the tuned reward/penalty table.
func (l *Ledger) CustomPoints() map[string]int {
	out := make(map[string]int, len(l.state.CustomPoints))
	for k, v := range l.state.CustomPoints {
		out[k] = v
	}
	return out
}

// State exposes the underlying document for encoding. Callers other than the
// Service must treat it as read-only.
func (l *Ledger) State() *storage.LedgerState { return l.state }
