package storage

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestNewDefaultStartsInDebt(t *testing.T) {
	st := NewDefault(testNow)

	if st.Version != StateVersion {
		t.Fatalf("version = %d, want %d", st.Version, StateVersion)
	}
	if st.Points != -DailyDebt || st.TodayPoints != -DailyDebt {
		t.Fatalf("points = %d/%d, want -%d each", st.Points, st.TodayPoints, DailyDebt)
	}
	if st.CategoryPoints["study"] != -DailyDebt {
		t.Fatalf("study subtotal = %d, want -%d", st.CategoryPoints["study"], DailyDebt)
	}
	if st.TodayDate != "2025-06-01" {
		t.Fatalf("todayDate = %q", st.TodayDate)
	}
	for key, want := range DefaultCustomPoints {
		if st.CustomPoints[key] != want {
			t.Fatalf("customPoints[%s] = %d, want %d", key, st.CustomPoints[key], want)
		}
	}
}

func TestDecodeOrDefaultCorruptBlob(t *testing.T) {
	st, err := DecodeOrDefault([]byte(`{{not json`), testNow)
	if err == nil {
		t.Fatal("expected decode error for corrupt blob")
	}
	if st == nil || st.Points != -DailyDebt {
		t.Fatalf("corrupt blob must still yield a fresh default, got %+v", st)
	}
}

func TestMigrateV1CarriesCoreFields(t *testing.T) {
	anchor := testNow.Add(-36 * time.Hour).UnixMilli()
	raw := []byte(`{
		"version": 1,
		"createdAt": 1700000000000,
		"points": 1234,
		"todayPoints": 55,
		"todayDate": "2025-05-30",
		"prayersLoggedToday": 3,
		"todayStudyHours": 2.5,
		"lastCleanHourUpdate": ` + jsonInt64(anchor) + `,
		"categoryPoints": {"prayer": 900, "junk": 1},
		"activityHistory": [{"timestamp": 1, "description": "old", "points": 5, "category": "prayer"}],
		"counts": {"quran": 7}
	}`)

	st, err := Decode(raw, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if st.Version != StateVersion {
		t.Fatalf("version = %d, want %d", st.Version, StateVersion)
	}
	if st.Points != 1234 || st.TodayPoints != 55 || st.PrayersLoggedToday != 3 {
		t.Fatalf("core fields lost: %+v", st)
	}
	if st.StreakAnchor != anchor {
		t.Fatalf("anchor = %d, want the v1 lastCleanHourUpdate %d", st.StreakAnchor, anchor)
	}
	if st.CategoryPoints["prayer"] != 900 {
		t.Fatalf("prayer subtotal = %d, want 900", st.CategoryPoints["prayer"])
	}
	if _, ok := st.CategoryPoints["junk"]; ok {
		t.Fatal("unknown category copied through migration")
	}
	// Fields the old generation lacked get defaults.
	if st.CustomPoints["cleanPerDay"] != DefaultCustomPoints["cleanPerDay"] {
		t.Fatalf("cleanPerDay = %d, want default", st.CustomPoints["cleanPerDay"])
	}
	if st.LastDone == nil || len(st.LastDone) != 0 {
		t.Fatalf("lastDone = %v, want empty map", st.LastDone)
	}
	if st.Counts["quran"] != 7 {
		t.Fatalf("quran count = %d, want 7", st.Counts["quran"])
	}
	if len(st.ActivityHistory) != 1 || st.ActivityHistory[0].Description != "old" {
		t.Fatalf("history lost: %+v", st.ActivityHistory)
	}
}

func TestMigrateTruncatesOversizedHistory(t *testing.T) {
	history := make([]ActivityRecord, MaxHistory+10)
	for i := range history {
		history[i] = ActivityRecord{Timestamp: int64(i), Description: "x", Points: 1}
	}
	doc, err := json.Marshal(map[string]any{
		"version":         2,
		"points":          0,
		"customPoints":    map[string]int{"quran": 15},
		"activityHistory": history,
	})
	if err != nil {
		t.Fatal(err)
	}

	st, err := Decode(doc, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(st.ActivityHistory); got != MaxHistory {
		t.Fatalf("history len = %d, want %d", got, MaxHistory)
	}
	// Newest-first order keeps the head.
	if st.ActivityHistory[0].Timestamp != 0 {
		t.Fatalf("truncation dropped the head: %+v", st.ActivityHistory[0])
	}
}

func TestMigrateIgnoresInvalidValues(t *testing.T) {
	raw := []byte(`{
		"version": 2,
		"points": 10,
		"prayersLoggedToday": 9,
		"todayStudyHours": -3,
		"customPoints": {"quran": -5, "bogus": 99}
	}`)

	st, err := Decode(raw, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if st.PrayersLoggedToday != 0 {
		t.Fatalf("out-of-range prayers copied: %d", st.PrayersLoggedToday)
	}
	if st.TodayStudyHours != 0 {
		t.Fatalf("negative hours copied: %g", st.TodayStudyHours)
	}
	if st.CustomPoints["quran"] != DefaultCustomPoints["quran"] {
		t.Fatalf("non-positive setting copied: %d", st.CustomPoints["quran"])
	}
	if _, ok := st.CustomPoints["bogus"]; ok {
		t.Fatal("unknown setting copied through migration")
	}
}

func TestValidateImport(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"not json", `garbage`, false},
		{"missing points", `{"version": 3, "customPoints": {}}`, false},
		{"missing version", `{"points": 10}`, false},
		{"v2 without customPoints", `{"version": 2, "points": 10}`, false},
		{"future version", `{"version": 4, "points": 10, "customPoints": {}}`, false},
		{"valid v1", `{"version": 1, "points": 10}`, true},
		{"valid v3", `{"version": 3, "points": 10, "customPoints": {"quran": 15}}`, true},
	}
	for _, c := range cases {
		err := ValidateImport([]byte(c.raw))
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidImport) {
			t.Fatalf("%s: got %v, want ErrInvalidImport", c.name, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	st := NewDefault(testNow)
	st.Points = 4321
	st.PrayersLoggedToday = 4
	st.TodayStudyHours = 3.5
	st.Counts["exercise"] = 12
	st.LastDone["exercise"] = "2025-06-01"
	cat := "good"
	st.ActivityHistory = []ActivityRecord{{Timestamp: testNow.UnixMilli(), Description: "Exercise completed", Points: 10, Category: &cat}}

	doc, err := Encode(st)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(doc, testNow.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	if got.Points != st.Points || got.PrayersLoggedToday != st.PrayersLoggedToday || got.TodayStudyHours != st.TodayStudyHours {
		t.Fatalf("round trip lost scalars: %+v", got)
	}
	if got.LastDone["exercise"] != "2025-06-01" || got.Counts["exercise"] != 12 {
		t.Fatalf("round trip lost maps: %+v", got)
	}
	if len(got.ActivityHistory) != 1 || got.ActivityHistory[0].Category == nil || *got.ActivityHistory[0].Category != "good" {
		t.Fatalf("round trip lost history: %+v", got.ActivityHistory)
	}
}

func jsonInt64(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
