package engine

import (
	"fmt"
	"math"
)

// ActionResult reports a completed discrete action.
type ActionResult struct {
	Description string
	Points      int
	Count       int // lifetime count for this action
}

// StudyResult reports a study-hours submission.
type StudyResult struct {
	Hours          float64
	Delta          int // applied point difference vs the previous submission
	DayTotal       int // R(hours), the day's full study value
	BelowThreshold bool
}

// RelapsePreview carries the computed penalty and message for the confirm
// step; producing it mutates nothing.
type RelapsePreview struct {
	Kind    RelapseKind
	Penalty int
	Message string
}

// StudyThresholdHours is the minimum daily study time before the penalty
// flips to a per-hour reward.
const StudyThresholdHours = 2.0

// StudyReward computes R(h): the day's study point value for h hours under
// the given point table.
func StudyReward(hours float64, perHour, penalty int) int {
	if hours < StudyThresholdHours {
		return -penalty
	}
	return int(math.Floor(hours * float64(perHour)))
}

// logPrayer applies one prayer slot of the given kind. Gate: the three
// prayer actions share the five daily slots.
func (l *Ledger) logPrayer(kind PrayerKind) (*ActionResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid prayer kind: %q", kind)
	}
	if l.state.PrayersLoggedToday >= MaxPrayersPerDay {
		return nil, GateClosedError{Reason: "All 5 prayers already logged today!"}
	}

	name := PrayerNames[l.state.PrayersLoggedToday]
	points := l.CustomPoint(kind.PointsKey())
	desc := fmt.Sprintf("%s %s", name, kind.Suffix())

	l.AddPoints(points, CategoryPrayer, desc)
	l.state.PrayersLoggedToday++
	l.bumpCount(string(kind))

	return &ActionResult{Description: desc, Points: points, Count: l.Count(string(kind))}, nil
}

// submitStudy records the day's study hours as a differential update: the
// applied delta is R(new) - R(old), so correcting the same day's value never
// double-counts.
func (l *Ledger) submitStudy(hours float64) (*StudyResult, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 || hours > 24 {
		return nil, ValidationError{Msg: "Please enter valid hours (0-24)"}
	}

	perHour := l.CustomPoint("studyPerHour")
	penalty := l.CustomPoint("studyPenalty")
	oldPoints := StudyReward(l.state.TodayStudyHours, perHour, penalty)
	newPoints := StudyReward(hours, perHour, penalty)

	l.state.TodayStudyHours = hours
	l.AddPoints(newPoints-oldPoints, CategoryStudy, fmt.Sprintf("Study updated: %gh", hours))

	return &StudyResult{
		Hours:          hours,
		Delta:          newPoints - oldPoints,
		DayTotal:       newPoints,
		BelowThreshold: hours < StudyThresholdHours,
	}, nil
}

// logGoodDeed applies a once-per-day deed. The gate is an explicit
// last-completed date per action, not a scan of the activity descriptions.
func (l *Ledger) logGoodDeed(deed GoodDeed) (*ActionResult, error) {
	if !deed.IsValid() {
		return nil, fmt.Errorf("invalid deed: %q", deed)
	}
	if l.doneToday(string(deed)) {
		return nil, GateClosedError{Reason: deed.Description() + " already logged today!"}
	}

	points := l.CustomPoint(deed.PointsKey())
	l.AddPoints(points, CategoryGood, deed.Description())
	l.markDoneToday(string(deed))
	l.bumpCount(string(deed))

	return &ActionResult{Description: deed.Description(), Points: points, Count: l.Count(string(deed))}, nil
}

// RelapsePenalty derives the penalty from the tuned good-deed rewards:
// undoing a relapse should cost what the daily good acts earn, scaled by
// severity.
func (l *Ledger) RelapsePenalty(kind RelapseKind) int {
	base := l.CustomPoint("exercise") + l.CustomPoint("quran") + l.CustomPoint("ghusl")
	return base * kind.Multiplier()
}

// previewRelapse computes the penalty and confirmation message without
// mutating state; confirmRelapse performs the mutation. The split lets the
// UI interpose a yes/no prompt.
func (l *Ledger) previewRelapse(kind RelapseKind) RelapsePreview {
	penalty := l.RelapsePenalty(kind)
	return RelapsePreview{
		Kind:    kind,
		Penalty: penalty,
		Message: fmt.Sprintf("Log %s relapse? This will deduct %d points.", relapseNoun(kind), penalty),
	}
}

func (l *Ledger) confirmRelapse(kind RelapseKind) (*ActionResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid relapse kind: %q", kind)
	}

	penalty := l.RelapsePenalty(kind)
	l.AddPoints(-penalty, CategoryRelapse, kind.Description())
	l.bumpCount(string(kind))
	l.ResetStreakAnchor()

	return &ActionResult{Description: kind.Description(), Points: -penalty, Count: l.Count(string(kind))}, nil
}

func relapseNoun(kind RelapseKind) string {
	if kind == RelapseMajor {
		return "porn"
	}
	return "masturbation"
}
