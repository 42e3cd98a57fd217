package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StateVersion is the current schema generation.
const StateVersion = 3

// DailyDebt is the fixed negative point adjustment applied at each day
// rollover and seeded into a fresh state.
const DailyDebt = 100

// KnownCategories is the fixed set of categories that get subtotal
// bookkeeping. Points tagged with anything else still apply to the totals but
// skip the per-category accounting.
var KnownCategories = []string{"prayer", "study", "good", "relapse", "clean"}

// DefaultCustomPoints holds the default reward/penalty table. Every key is a
// tunable setting; unknown keys are rejected by the settings layer.
var DefaultCustomPoints = map[string]int{
	"qadaa":        20,
	"onTime":       25,
	"inMosque":     35,
	"ghusl":        25,
	"quran":        15,
	"exercise":     10,
	"studyPerHour": 8,
	"studyPenalty": 20,
	"cleanPerDay":  24,
}

// ErrInvalidImport marks a payload rejected before any state was touched.
var ErrInvalidImport = errors.New("invalid or outdated backup file")

// DayFormat is the canonical day-string layout (YYYY-MM-DD).
const DayFormat = "2006-01-02"

// NewDefault builds a fresh current-schema state anchored at now. The day
// starts in debt: totals and the study subtotal are seeded at -DailyDebt.
func NewDefault(now time.Time) *LedgerState {
	cp := make(map[string]int, len(DefaultCustomPoints))
	for k, v := range DefaultCustomPoints {
		cp[k] = v
	}
	return &LedgerState{
		Version:         StateVersion,
		CreatedAt:       now.UnixMilli(),
		Points:          -DailyDebt,
		TodayPoints:     -DailyDebt,
		TodayDate:       now.Format(DayFormat),
		TodayStudyHours: 0,
		StreakAnchor:    now.UnixMilli(),
		CustomPoints:    cp,
		CategoryPoints: map[string]int{
			"prayer":  0,
			"study":   -DailyDebt,
			"good":    0,
			"relapse": 0,
			"clean":   0,
		},
		ActivityHistory: []ActivityRecord{},
		Counts:          map[string]int{},
		LastDone:        map[string]string{},
	}
}

// partialState is the loose shape used for migration and import validation.
// Pointer fields distinguish "absent" from zero so the allow-list copy can
// keep defaults for missing fields.
type partialState struct {
	Version            *int               `json:"version"`
	CreatedAt          *int64             `json:"createdAt"`
	Points             *int               `json:"points"`
	TodayPoints        *int               `json:"todayPoints"`
	TodayDate          *string            `json:"todayDate"`
	PrayersLoggedToday *int               `json:"prayersLoggedToday"`
	TodayStudyHours    *float64           `json:"todayStudyHours"`
	StreakAnchor       *int64             `json:"streakAnchor"`
	LastCleanUpdate    *int64             `json:"lastCleanHourUpdate"` // v1/v2 anchor name
	CustomPoints       map[string]int     `json:"customPoints"`
	CategoryPoints     map[string]int     `json:"categoryPoints"`
	ActivityHistory    []ActivityRecord   `json:"activityHistory"`
	Counts             map[string]int     `json:"counts"`
	LastDone           map[string]string  `json:"lastDone"`
}

// Decode parses a stored or imported blob into a current-schema state,
// migrating older generations. The caller decides whether a failure is
// absorbed (load) or surfaced (import).
func Decode(raw []byte, now time.Time) (*LedgerState, error) {
	var p partialState
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return Migrate(&p, now), nil
}

// DecodeOrDefault parses a stored blob and falls back to a fresh default on
// any failure. The error is returned alongside so the caller can log it; the
// returned state is always usable.
func DecodeOrDefault(raw []byte, now time.Time) (*LedgerState, error) {
	st, err := Decode(raw, now)
	if err != nil {
		return NewDefault(now), err
	}
	return st, nil
}

// ValidateImport rejects payloads that are not structurally a ledger
// document: it must be a JSON object with a version and a points field, and
// for generations that carry it (v2+) a customPoints table. Anything else is
// refused without attempting migration.
func ValidateImport(raw []byte) error {
	var p partialState
	if err := json.Unmarshal(raw, &p); err != nil {
		return ErrInvalidImport
	}
	if p.Version == nil || p.Points == nil {
		return ErrInvalidImport
	}
	if *p.Version >= 2 && p.CustomPoints == nil {
		return ErrInvalidImport
	}
	if *p.Version > StateVersion {
		return ErrInvalidImport
	}
	return nil
}

// Migrate builds a fresh default state and selectively copies forward the
// known-compatible fields: keep the old value if present, else keep the new
// default. An explicit allow-list, not a blind merge, so fields introduced by
// a schema bump always get their default.
func Migrate(p *partialState, now time.Time) *LedgerState {
	st := NewDefault(now)

	if p.CreatedAt != nil && *p.CreatedAt > 0 {
		st.CreatedAt = *p.CreatedAt
	}
	if p.Points != nil {
		st.Points = *p.Points
	}
	if p.TodayPoints != nil {
		st.TodayPoints = *p.TodayPoints
	}
	if p.TodayDate != nil && *p.TodayDate != "" {
		st.TodayDate = *p.TodayDate
	}
	if p.PrayersLoggedToday != nil && *p.PrayersLoggedToday >= 0 && *p.PrayersLoggedToday <= 5 {
		st.PrayersLoggedToday = *p.PrayersLoggedToday
	}
	if p.TodayStudyHours != nil && *p.TodayStudyHours >= 0 {
		st.TodayStudyHours = *p.TodayStudyHours
	}

	// The streak anchor kept its meaning across generations but changed name
	// when accrual moved from hour to day granularity.
	switch {
	case p.StreakAnchor != nil && *p.StreakAnchor > 0:
		st.StreakAnchor = *p.StreakAnchor
	case p.LastCleanUpdate != nil && *p.LastCleanUpdate > 0:
		st.StreakAnchor = *p.LastCleanUpdate
	}

	for key := range DefaultCustomPoints {
		if v, ok := p.CustomPoints[key]; ok && v > 0 {
			st.CustomPoints[key] = v
		}
	}
	for _, cat := range KnownCategories {
		if v, ok := p.CategoryPoints[cat]; ok {
			st.CategoryPoints[cat] = v
		}
	}
	if len(p.ActivityHistory) > 0 {
		n := len(p.ActivityHistory)
		if n > MaxHistory {
			n = MaxHistory
		}
		st.ActivityHistory = append(st.ActivityHistory[:0], p.ActivityHistory[:n]...)
	}
	for k, v := range p.Counts {
		if v > 0 {
			st.Counts[k] = v
		}
	}
	for k, v := range p.LastDone {
		if v != "" {
			st.LastDone[k] = v
		}
	}

	st.Version = StateVersion
	return st
}

// Encode serializes a state to the persisted blob form. Round-trips through
// Decode losslessly for every schema field.
func Encode(st *LedgerState) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// EncodeIndent is the export form: same document, human-readable.
func EncodeIndent(st *LedgerState) ([]byte, error) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}
