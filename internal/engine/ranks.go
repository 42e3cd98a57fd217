package engine

import (
	"fmt"
	"math"
)

// Rank is one labeled point-total range with an associated display asset.
// Ranges are contiguous and non-overlapping by construction; the last tier's
// Max is unbounded.
type Rank struct {
	Label string
	Min   int
	Max   int
	Image string
}

// RankMaxInfinity marks the top tier's open upper bound.
const RankMaxInfinity = math.MaxInt

// Ranks is the static tier table, ordered ascending.
var Ranks = []Rank{
	{Label: "Iron III", Min: 0, Max: 119, Image: "IronIII.png"},
	{Label: "Iron II", Min: 120, Max: 299, Image: "IronII.png"},
	{Label: "Iron I", Min: 300, Max: 549, Image: "IronI.png"},
	{Label: "Bronze III", Min: 550, Max: 849, Image: "BronzeIII.png"},
	{Label: "Bronze II", Min: 850, Max: 1299, Image: "BronzeII.png"},
	{Label: "Bronze I", Min: 1300, Max: 1849, Image: "BronzeI.png"},
	{Label: "Silver III", Min: 1850, Max: 2499, Image: "SilverIII.png"},
	{Label: "Silver II", Min: 2500, Max: 3299, Image: "SilverII.png"},
	{Label: "Silver I", Min: 3300, Max: 4199, Image: "SilverI.png"},
	{Label: "Gold III", Min: 4200, Max: 5499, Image: "GoldIII.png"},
	{Label: "Gold II", Min: 5500, Max: 6999, Image: "GoldII.png"},
	{Label: "Gold I", Min: 7000, Max: 8999, Image: "GoldI.png"},
	{Label: "Platinum III", Min: 9000, Max: 11499, Image: "PlatinumIII.png"},
	{Label: "Platinum II", Min: 11500, Max: 14499, Image: "PlatinumII.png"},
	{Label: "Platinum I", Min: 14500, Max: 18699, Image: "PlatinumI.png"},
	{Label: "Emerald III", Min: 18700, Max: 24399, Image: "EmeraldIII.png"},
	{Label: "Emerald II", Min: 24400, Max: 30799, Image: "EmeraldII.png"},
	{Label: "Emerald I", Min: 30800, Max: 38899, Image: "EmeraldI.png"},
	{Label: "Diamond III", Min: 38900, Max: 48499, Image: "DiamondIII.png"},
	{Label: "Diamond II", Min: 48500, Max: 59999, Image: "DiamondII.png"},
	{Label: "Diamond I", Min: 60000, Max: 73999, Image: "DiamondI.png"},
	{Label: "Master II", Min: 74000, Max: 90999, Image: "MasterII.png"},
	{Label: "Master I", Min: 91000, Max: 111999, Image: "MasterI.png"},
	{Label: "Grand Master II", Min: 112000, Max: 137999, Image: "GrandmasterII.png"},
	{Label: "Grand Master I", Min: 138000, Max: 169999, Image: "GrandmasterI.png"},
	{Label: "Challenger II", Min: 170000, Max: 209999, Image: "ChallengerII.png"},
	{Label: "Challenger I", Min: 210000, Max: RankMaxInfinity, Image: "ChallengerI.png"},
}

func init() {
	if err := validateRanks(Ranks); err != nil {
		panic(err)
	}
}

func validateRanks(ranks []Rank) error {
	if len(ranks) == 0 {
		return fmt.Errorf("empty rank table")
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i].Min != ranks[i-1].Max+1 {
			return fmt.Errorf("rank table gap between %q and %q", ranks[i-1].Label, ranks[i].Label)
		}
	}
	if ranks[len(ranks)-1].Max != RankMaxInfinity {
		return fmt.Errorf("top rank %q must be unbounded", ranks[len(ranks)-1].Label)
	}
	return nil
}

// ResolveRank maps a point total to its tier and the tier above (nil at the
// top). Scans from the highest tier downward; totals below the lowest tier's
// declared minimum (negative totals under the daily debt) still resolve to
// the lowest tier.
func ResolveRank(points int) (current Rank, next *Rank) {
	for i := len(Ranks) - 1; i >= 0; i-- {
		if points >= Ranks[i].Min && points <= Ranks[i].Max {
			if i+1 < len(Ranks) {
				return Ranks[i], &Ranks[i+1]
			}
			return Ranks[i], nil
		}
	}
	return Ranks[0], &Ranks[1]
}

// RankProgress returns the progress through the current tier as a whole
// percentage in [0,100]. 100 at the top tier, 0 at or below the tier floor.
func RankProgress(points int) int {
	current, next := ResolveRank(points)
	if next == nil {
		return 100
	}
	if points <= current.Min {
		return 0
	}
	span := next.Min - current.Min
	pct := (points - current.Min) * 100 / span
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
