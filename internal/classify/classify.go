// Package classify assigns profile and form-trend tags.
//
// Both cascades are evaluated top to bottom and the first matching rule
// wins; rule order is significant and must not be rearranged.
package classify

import (
	"github.com/shopspring/decimal"

	"fplthreats/internal/player"
)

var (
	one          = decimal.NewFromInt(1)
	three        = decimal.NewFromInt(3)
	four5        = decimal.RequireFromString("4.5")
	four7        = decimal.RequireFromString("4.7")
	five         = decimal.NewFromInt(5)
	five5        = decimal.RequireFromString("5.5")
	six          = decimal.NewFromInt(6)
	ten          = decimal.NewFromInt(10)
	twenty       = decimal.NewFromInt(20)
	twentyFive   = decimal.NewFromInt(25)
	keeperOwned  = decimal.RequireFromString("3.75")
	decliningMin = decimal.RequireFromString("0.70")
)

// Profile picks the profile tag for a player in the given cohort.
func Profile(c player.Cohort, p player.Player) player.Profile {
	profile, _ := profileRule(c, p)
	return profile
}

// profileRule also reports whether the goalkeeper branch fired.
func profileRule(c player.Cohort, p player.Player) (player.Profile, bool) {
	switch c {
	case player.Candidate:
		return candidateProfile(p)
	case player.Owned:
		return ownedProfile(p), false
	default:
		return player.ProfileNone, false
	}
}

func candidateProfile(p player.Player) (player.Profile, bool) {
	ppg, own := p.PointsPerGame, p.Ownership
	switch {
	case ppg.GreaterThan(six) && own.GreaterThan(twenty):
		return player.ProfileRankKiller, false
	case ppg.GreaterThan(six) && own.GreaterThanOrEqual(ten):
		return player.ProfileRankThreat, false
	case ppg.GreaterThan(six) && own.GreaterThan(one):
		return player.ProfileRisingStar, false
	case p.Position == player.Goalkeeper && ppg.GreaterThan(four5):
		return player.ProfileRankThreat, true
	case ppg.GreaterThanOrEqual(five) && own.GreaterThanOrEqual(ten):
		return player.ProfileRankThreat, false
	case own.GreaterThan(twentyFive):
		return player.ProfileHighOwnership, false
	default:
		return player.ProfileRisingStar, false
	}
}

func ownedProfile(p player.Player) player.Profile {
	ppg, price := p.PointsPerGame, p.Price()
	switch {
	case ppg.GreaterThan(five5):
		return player.ProfileStarPerformer
	case p.Position == player.Goalkeeper && ppg.GreaterThan(keeperOwned):
		return player.ProfileStarPerformer
	case price.LessThan(four7):
		return player.ProfileFodder
	case p.Position == player.Midfielder && price.LessThanOrEqual(five5):
		return player.ProfileFodder
	case ppg.LessThan(four5):
		return player.ProfileUnderperformer
	case p.Ownership.GreaterThan(twentyFive):
		return player.ProfileHighOwnership
	default:
		return player.ProfileUnclassified
	}
}

// Trend compares recent form against season points per game. A PPG of
// exactly zero short-circuits to a dead trend with a zero ratio.
func Trend(ppg decimal.Decimal, f player.Form) player.Trend {
	if ppg.IsZero() {
		return player.Trend{Ratio: decimal.Zero, Tag: player.TrendDead}
	}

	recent := f.Average
	ratio := recent.Div(ppg)
	switch {
	case ratio.GreaterThan(one):
		return player.Trend{Ratio: ratio, Tag: player.TrendRising}
	case recent.LessThan(three):
		return player.Trend{Ratio: ratio, Tag: player.TrendDead}
	case ratio.GreaterThan(decliningMin):
		return player.Trend{Ratio: ratio, Tag: player.TrendDeclining}
	default:
		return player.Trend{Ratio: ratio, Tag: player.TrendDead}
	}
}

// Classify attaches cohort, form and both tags to p.
func Classify(c player.Cohort, p player.Player, f player.Form) player.Classified {
	profile, keeper := profileRule(c, p)
	return player.Classified{
		Player:     p,
		Cohort:     c,
		Form:       f,
		Profile:    profile,
		KeeperRule: keeper,
		Trend:      Trend(p.PointsPerGame, f),
	}
}
