package engine

import (
	"fmt"
	"strings"
)

// ParsePrayerKind parses user input to a PrayerKind.
// Supported: qadaa, ontime, mosque (plus a few aliases).
func ParsePrayerKind(input string) (PrayerKind, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "qadaa", "qada":
		return PrayerQadaa, nil
	case "ontime", "on-time", "time":
		return PrayerOnTime, nil
	case "mosque", "inmosque", "in-mosque", "jamaah":
		return PrayerInMosque, nil
	default:
		return "", fmt.Errorf("invalid prayer kind: %q (want qadaa|ontime|mosque)", input)
	}
}

// ParseGoodDeed parses user input to a GoodDeed.
func ParseGoodDeed(input string) (GoodDeed, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "ghusl":
		return DeedGhusl, nil
	case "quran":
		return DeedQuran, nil
	case "exercise", "workout":
		return DeedExercise, nil
	default:
		return "", fmt.Errorf("invalid deed: %q (want ghusl|quran|exercise)", input)
	}
}

// ParseRelapseKind parses user input to a RelapseKind.
func ParseRelapseKind(input string) (RelapseKind, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "minor", "masturbation":
		return RelapseMinor, nil
	case "major", "porn":
		return RelapseMajor, nil
	default:
		return "", fmt.Errorf("invalid relapse kind: %q (want minor|major)", input)
	}
}
