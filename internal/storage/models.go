package storage

// LedgerState is the persisted root document. One instance exists at a time;
// it is owned by the engine's Ledger and serialized here as a single JSON blob.
// Timestamps are Unix milliseconds so exports from older installs round-trip
// through import unchanged.
type LedgerState struct {
	Version            int               `json:"version"`
	CreatedAt          int64             `json:"createdAt"`
	Points             int               `json:"points"`
	TodayPoints        int               `json:"todayPoints"`
	TodayDate          string            `json:"todayDate"`
	PrayersLoggedToday int               `json:"prayersLoggedToday"`
	TodayStudyHours    float64           `json:"todayStudyHours"`
	StreakAnchor       int64             `json:"streakAnchor"`
	CustomPoints       map[string]int    `json:"customPoints"`
	CategoryPoints     map[string]int    `json:"categoryPoints"`
	ActivityHistory    []ActivityRecord  `json:"activityHistory"`
	Counts             map[string]int    `json:"counts"`
	LastDone           map[string]string `json:"lastDone"`
}

// ActivityRecord is one entry of the bounded activity feed, newest first.
type ActivityRecord struct {
	Timestamp   int64   `json:"timestamp"`
	Description string  `json:"description"`
	Points      int     `json:"points"`
	Category    *string `json:"category"`
}

// MaxHistory bounds the activity feed; oldest entries are dropped first.
const MaxHistory = 50
