package engine

// Category classifies a point-affecting action for subtotal reporting.
type Category string

const (
	CategoryPrayer  Category = "prayer"
	CategoryStudy   Category = "study"
	CategoryGood    Category = "good"
	CategoryRelapse Category = "relapse"
	CategoryClean   Category = "clean"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPrayer, CategoryStudy, CategoryGood, CategoryRelapse, CategoryClean:
		return true
	default:
		return false
	}
}

// CategoryNone marks records that carry no category (e.g. day markers).
const CategoryNone Category = ""

// PrayerNames is the daily prayer sequence; the slot counter indexes into it.
var PrayerNames = [5]string{"Fajr", "Duhr", "Asr", "Maghrib", "Isha"}

// MaxPrayersPerDay is the shared daily gate for the three prayer actions.
const MaxPrayersPerDay = 5

type PrayerKind string

const (
	PrayerQadaa    PrayerKind = "qadaa"
	PrayerOnTime   PrayerKind = "onTime"
	PrayerInMosque PrayerKind = "inMosque"
)

func (k PrayerKind) IsValid() bool {
	switch k {
	case PrayerQadaa, PrayerOnTime, PrayerInMosque:
		return true
	default:
		return false
	}
}

// PointsKey returns the customPoints key holding this kind's reward.
func (k PrayerKind) PointsKey() string { return string(k) }

// Suffix is appended to the prayer name in the activity description.
func (k PrayerKind) Suffix() string {
	switch k {
	case PrayerQadaa:
		return "Qadaa logged"
	case PrayerInMosque:
		return "in mosque"
	default:
		return "on time"
	}
}

type GoodDeed string

const (
	DeedGhusl    GoodDeed = "ghusl"
	DeedQuran    GoodDeed = "quran"
	DeedExercise GoodDeed = "exercise"
)

func (d GoodDeed) IsValid() bool {
	switch d {
	case DeedGhusl, DeedQuran, DeedExercise:
		return true
	default:
		return false
	}
}

func (d GoodDeed) PointsKey() string { return string(d) }

func (d GoodDeed) Description() string {
	switch d {
	case DeedGhusl:
		return "Ghusl performed"
	case DeedQuran:
		return "Quran reading"
	default:
		return "Exercise completed"
	}
}

type RelapseKind string

const (
	RelapseMinor RelapseKind = "masturbation"
	RelapseMajor RelapseKind = "porn"
)

func (k RelapseKind) IsValid() bool {
	return k == RelapseMinor || k == RelapseMajor
}

// Multiplier scales the base penalty (sum of the good-deed rewards).
func (k RelapseKind) Multiplier() int {
	if k == RelapseMajor {
		return 4
	}
	return 2
}

func (k RelapseKind) Description() string {
	if k == RelapseMajor {
		return "Porn relapse"
	}
	return "Masturbation relapse"
}
