package engine

import (
	"math"
	"testing"
	"time"
)

func TestLogPrayerSequenceAndGate(t *testing.T) {
	led, _ := newTestLedger(t)

	wantDesc := []string{
		"Fajr Qadaa logged",
		"Duhr on time",
		"Asr in mosque",
		"Maghrib on time",
		"Isha on time",
	}
	kinds := []PrayerKind{PrayerQadaa, PrayerOnTime, PrayerInMosque, PrayerOnTime, PrayerOnTime}

	for i, kind := range kinds {
		res, err := led.logPrayer(kind)
		if err != nil {
			t.Fatalf("prayer %d: %v", i, err)
		}
		if res.Description != wantDesc[i] {
			t.Fatalf("prayer %d desc = %q, want %q", i, res.Description, wantDesc[i])
		}
		if res.Points != led.CustomPoint(kind.PointsKey()) {
			t.Fatalf("prayer %d points = %d, want %d", i, res.Points, led.CustomPoint(kind.PointsKey()))
		}
	}

	if _, err := led.logPrayer(PrayerOnTime); !IsGateClosed(err) {
		t.Fatalf("sixth prayer: got %v, want gate closed", err)
	}
	if got := led.Count(string(PrayerOnTime)); got != 3 {
		t.Fatalf("onTime count = %d, want 3", got)
	}
}

func TestLogPrayerGateReopensNextDay(t *testing.T) {
	led, clock := newTestLedger(t)
	for i := 0; i < MaxPrayersPerDay; i++ {
		if _, err := led.logPrayer(PrayerOnTime); err != nil {
			t.Fatal(err)
		}
	}

	clock.advance(24 * time.Hour)
	led.CheckDayRollover()

	res, err := led.logPrayer(PrayerQadaa)
	if err != nil {
		t.Fatal(err)
	}
	if res.Description != "Fajr Qadaa logged" {
		t.Fatalf("desc = %q, want the sequence to restart at Fajr", res.Description)
	}
}

func TestStudyReward(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, -20},
		{1.9, -20},
		{2, 16},
		{3, 24},
		{2.5, 20},
		{24, 192},
	}
	for _, c := range cases {
		if got := StudyReward(c.hours, 8, 20); got != c.want {
			t.Fatalf("StudyReward(%g) = %d, want %d", c.hours, got, c.want)
		}
	}
}

func TestSubmitStudyDifferential(t *testing.T) {
	led, _ := newTestLedger(t)
	before := led.TotalPoints()

	res, err := led.submitStudy(3)
	if err != nil {
		t.Fatal(err)
	}
	// R(3)=24 against the implicit R(0)=-20 baseline.
	if res.Delta != 44 {
		t.Fatalf("first delta = %d, want 44", res.Delta)
	}

	res, err = led.submitStudy(5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Delta != 16 || res.DayTotal != 40 {
		t.Fatalf("correction delta = %d total = %d, want 16 and 40", res.Delta, res.DayTotal)
	}

	// Correcting downward takes the points back; the running total carries
	// exactly one R(5) relative to the baseline.
	if got := led.TotalPoints(); got != before+44+16 {
		t.Fatalf("total = %d, want %d", got, before+44+16)
	}

	res, err = led.submitStudy(1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.BelowThreshold || res.Delta != -60 {
		t.Fatalf("downgrade delta = %d below = %v, want -60 and true", res.Delta, res.BelowThreshold)
	}
}

func TestSubmitStudyRejectsInvalidHours(t *testing.T) {
	led, _ := newTestLedger(t)

	for _, hours := range []float64{-1, 24.5, math.NaN(), math.Inf(1)} {
		if _, err := led.submitStudy(hours); !IsValidation(err) {
			t.Fatalf("submitStudy(%v): got %v, want validation error", hours, err)
		}
	}
	if got := led.TodayStudyHours(); got != 0 {
		t.Fatalf("hours mutated to %g on rejected input", got)
	}
}

func TestLogGoodDeedOncePerDay(t *testing.T) {
	led, clock := newTestLedger(t)

	res, err := led.logGoodDeed(DeedQuran)
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != led.CustomPoint("quran") || res.Count != 1 {
		t.Fatalf("res = %+v, want quran reward and count 1", res)
	}

	if _, err := led.logGoodDeed(DeedQuran); !IsGateClosed(err) {
		t.Fatalf("second quran same day: got %v, want gate closed", err)
	}
	// Other deeds stay independent.
	if _, err := led.logGoodDeed(DeedExercise); err != nil {
		t.Fatalf("exercise blocked by quran gate: %v", err)
	}

	clock.advance(24 * time.Hour)
	led.CheckDayRollover()
	if _, err := led.logGoodDeed(DeedQuran); err != nil {
		t.Fatalf("quran still gated after rollover: %v", err)
	}
	if got := led.Count(string(DeedQuran)); got != 2 {
		t.Fatalf("quran count = %d, want 2", got)
	}
}

func TestRelapsePenaltyScalesWithSeverity(t *testing.T) {
	led, _ := newTestLedger(t)
	base := led.CustomPoint("exercise") + led.CustomPoint("quran") + led.CustomPoint("ghusl")

	if got := led.RelapsePenalty(RelapseMinor); got != base*2 {
		t.Fatalf("minor penalty = %d, want %d", got, base*2)
	}
	if got := led.RelapsePenalty(RelapseMajor); got != base*4 {
		t.Fatalf("major penalty = %d, want %d", got, base*4)
	}
}

func TestRelapsePreviewMutatesNothing(t *testing.T) {
	led, _ := newTestLedger(t)
	before := led.TotalPoints()

	p := led.previewRelapse(RelapseMajor)
	if p.Penalty != led.RelapsePenalty(RelapseMajor) {
		t.Fatalf("preview penalty = %d, want %d", p.Penalty, led.RelapsePenalty(RelapseMajor))
	}
	if led.TotalPoints() != before || len(led.History()) != 0 {
		t.Fatal("preview must not mutate the ledger")
	}
}

func TestConfirmRelapseDeductsAndResetsStreak(t *testing.T) {
	led, clock := newTestLedger(t)
	clock.advance(5 * 24 * time.Hour)
	led.AccrueCleanDays()
	before := led.TotalPoints()

	res, err := led.confirmRelapse(RelapseMinor)
	if err != nil {
		t.Fatal(err)
	}
	if res.Points != -led.RelapsePenalty(RelapseMinor) {
		t.Fatalf("points = %d, want %d", res.Points, -led.RelapsePenalty(RelapseMinor))
	}
	if got := led.TotalPoints(); got != before+res.Points {
		t.Fatalf("total = %d, want %d", got, before+res.Points)
	}
	if got := led.CleanDays(); got != 0 {
		t.Fatalf("clean days = %d after relapse, want 0", got)
	}
	if got := led.Count(string(RelapseMinor)); got != 1 {
		t.Fatalf("relapse count = %d, want 1", got)
	}
}
