package cohort

import (
	"sort"

	"github.com/shopspring/decimal"

	"fplthreats/internal/player"
)

// Thresholds bound the Candidate cohort.
type Thresholds struct {
	GameweeksWindow int
	PPGThreshold    decimal.Decimal
	MinOwnership    decimal.Decimal
	MinPrice        decimal.Decimal
	MaxPrice        decimal.Decimal
}

// DefaultThresholds returns the stock filter settings.
func DefaultThresholds() Thresholds {
	return Thresholds{
		GameweeksWindow: 8,
		PPGThreshold:    decimal.RequireFromString("3.5"),
		MinOwnership:    decimal.RequireFromString("7.5"),
		MinPrice:        decimal.NewFromInt(4),
		MaxPrice:        decimal.NewFromInt(15),
	}
}

// MinPoints is the season total a candidate needs: PPG threshold sustained
// over the gameweek window.
func (t Thresholds) MinPoints() decimal.Decimal {
	return t.PPGThreshold.Mul(decimal.NewFromInt(int64(t.GameweeksWindow)))
}

// Accepts reports whether p passes every numeric and status predicate. It
// does not consult exclusion lists.
func (t Thresholds) Accepts(p player.Player) bool {
	price := p.Price()
	return p.Ownership.GreaterThanOrEqual(t.MinOwnership) &&
		decimal.NewFromInt(int64(p.TotalPoints)).GreaterThanOrEqual(t.MinPoints()) &&
		p.Status == player.StatusActive &&
		p.PointsPerGame.GreaterThanOrEqual(t.PPGThreshold) &&
		price.GreaterThanOrEqual(t.MinPrice) &&
		price.LessThanOrEqual(t.MaxPrice)
}

// SelectCandidates returns the threat candidates ordered by ownership,
// highest first. Ties keep catalog order.
func SelectCandidates(catalog []player.Player, exclusions player.ExclusionSet, t Thresholds) []player.Player {
	out := make([]player.Player, 0)
	for _, p := range catalog {
		if exclusions.Contains(p.ID) {
			continue
		}
		if t.Accepts(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ownership.GreaterThan(out[j].Ownership)
	})
	return out
}

// SelectByIDs projects the catalog onto ids, preserving catalog order.
func SelectByIDs(catalog []player.Player, ids map[int]struct{}) []player.Player {
	out := make([]player.Player, 0, len(ids))
	for _, p := range catalog {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
