package engine

import (
	"testing"
	"time"

	"lockin/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestLedger(t *testing.T) (*Ledger, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	return NewDefaultLedger(clock), clock
}

func TestAddPointsUpdatesTotals(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddPoints(25, CategoryPrayer, "Fajr on time")

	if got := led.TotalPoints(); got != -storage.DailyDebt+25 {
		t.Fatalf("total = %d, want %d", got, -storage.DailyDebt+25)
	}
	if got := led.TodayPoints(); got != -storage.DailyDebt+25 {
		t.Fatalf("today = %d, want %d", got, -storage.DailyDebt+25)
	}
	if got := led.CategoryTotal(CategoryPrayer); got != 25 {
		t.Fatalf("prayer subtotal = %d, want 25", got)
	}
	if got := len(led.History()); got != 1 {
		t.Fatalf("history len = %d, want 1", got)
	}
}

func TestAddPointsUnknownCategoryStillCounts(t *testing.T) {
	led, _ := newTestLedger(t)
	before := led.TotalPoints()

	led.AddPoints(10, Category("mystery"), "odd one")

	if got := led.TotalPoints(); got != before+10 {
		t.Fatalf("total = %d, want %d", got, before+10)
	}
	if _, ok := led.State().CategoryPoints["mystery"]; ok {
		t.Fatal("unknown category must not gain a subtotal slot")
	}
}

func TestAddPointsZeroWithoutDescriptionIsNoop(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddPoints(0, CategoryNone, "")

	if got := len(led.History()); got != 0 {
		t.Fatalf("history len = %d, want 0", got)
	}
}

func TestHistoryCapNewestFirst(t *testing.T) {
	led, _ := newTestLedger(t)

	for i := 0; i < storage.MaxHistory+5; i++ {
		led.AddPoints(1, CategoryGood, "entry")
	}
	led.AddPoints(7, CategoryGood, "latest")

	history := led.History()
	if got := len(history); got != storage.MaxHistory {
		t.Fatalf("history len = %d, want %d", got, storage.MaxHistory)
	}
	if history[0].Description != "latest" {
		t.Fatalf("head = %q, want the newest record", history[0].Description)
	}
}

func TestDayRolloverAppliesDebtOnce(t *testing.T) {
	led, clock := newTestLedger(t)
	led.AddPoints(200, CategoryPrayer, "progress")
	before := led.TotalPoints()

	if led.CheckDayRollover() {
		t.Fatal("rollover on the same day must be a no-op")
	}

	clock.advance(24 * time.Hour)
	if !led.CheckDayRollover() {
		t.Fatal("expected rollover after day change")
	}
	if got := led.TotalPoints(); got != before-storage.DailyDebt {
		t.Fatalf("total = %d, want %d", got, before-storage.DailyDebt)
	}
	if got := led.TodayPoints(); got != -storage.DailyDebt {
		t.Fatalf("today = %d, want %d", got, -storage.DailyDebt)
	}
	if got := led.PrayersLoggedToday(); got != 0 {
		t.Fatalf("prayers = %d, want 0", got)
	}
	if got := led.TodayStudyHours(); got != 0 {
		t.Fatalf("study hours = %g, want 0", got)
	}
	if got := led.CategoryTotal(CategoryStudy); got != -storage.DailyDebt {
		t.Fatalf("study subtotal = %d, want %d", got, -storage.DailyDebt)
	}
	if led.History()[0].Description != "New day started (daily penalty applied)" {
		t.Fatalf("missing day marker, head = %q", led.History()[0].Description)
	}

	// Idempotent within the day.
	if led.CheckDayRollover() {
		t.Fatal("second rollover on the same day must be a no-op")
	}
}

func TestAccrueCleanDaysWholeDaysOnly(t *testing.T) {
	led, clock := newTestLedger(t)
	perDay := led.CustomPoint("cleanPerDay")
	before := led.TotalPoints()

	clock.advance(12 * time.Hour)
	if got := led.AccrueCleanDays(); got != 0 {
		t.Fatalf("accrued %d days before a full day elapsed", got)
	}

	clock.advance(2 * 24 * time.Hour) // 2.5 days since anchor
	if got := led.AccrueCleanDays(); got != 2 {
		t.Fatalf("accrued %d days, want 2", got)
	}
	if got := led.TotalPoints(); got != before+2*perDay {
		t.Fatalf("total = %d, want %d", got, before+2*perDay)
	}

	// The half-day remainder stays banked: no double credit now, one more
	// day after another 12 hours.
	if got := led.AccrueCleanDays(); got != 0 {
		t.Fatalf("double-credited %d days", got)
	}
	clock.advance(12 * time.Hour)
	if got := led.AccrueCleanDays(); got != 1 {
		t.Fatalf("accrued %d days, want 1 after remainder filled", got)
	}
}

func TestCleanDaysReadOnly(t *testing.T) {
	led, clock := newTestLedger(t)
	clock.advance(49 * time.Hour)

	if got := led.CleanDays(); got != 2 {
		t.Fatalf("clean days = %d, want 2", got)
	}
	// Reading must not consume the days.
	if got := led.AccrueCleanDays(); got != 2 {
		t.Fatalf("accrued %d days after read, want 2", got)
	}
}

func TestResetStreakAnchor(t *testing.T) {
	led, clock := newTestLedger(t)
	clock.advance(3 * 24 * time.Hour)

	led.ResetStreakAnchor()
	if got := led.CleanDays(); got != 0 {
		t.Fatalf("clean days = %d after reset, want 0", got)
	}
}

func TestCustomPointFallsBackToDefault(t *testing.T) {
	led, _ := newTestLedger(t)
	delete(led.State().CustomPoints, "quran")

	if got := led.CustomPoint("quran"); got != storage.DefaultCustomPoints["quran"] {
		t.Fatalf("quran = %d, want default %d", got, storage.DefaultCustomPoints["quran"])
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	led, _ := newTestLedger(t)
	led.AddPoints(1, CategoryGood, "first")

	history := led.History()
	history[0].Description = "tampered"

	if led.History()[0].Description != "first" {
		t.Fatal("History must not expose the backing slice")
	}
}
