package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"fplthreats/internal/classify"
	"fplthreats/internal/player"
)

// DefaultMinRecentForm is the recent-form floor for the presented table.
var DefaultMinRecentForm = decimal.RequireFromString("4.5")

// Cohorts groups the three player sets fed into a report.
type Cohorts struct {
	Owned      []player.Player
	Excluded   []player.Player
	Candidates []player.Player
}

// All returns owned, excluded and candidate players in that order.
func (c Cohorts) All() []player.Player {
	out := make([]player.Player, 0, len(c.Owned)+len(c.Excluded)+len(c.Candidates))
	out = append(out, c.Owned...)
	out = append(out, c.Excluded...)
	return append(out, c.Candidates...)
}

// Build classifies every player of every cohort and sorts the combined set by
// season points per game, highest first. Players missing from forms are
// treated as having no recent appearances.
func Build(c Cohorts, forms map[int]player.Form) []player.Classified {
	rows := make([]player.Classified, 0, len(c.Owned)+len(c.Excluded)+len(c.Candidates))
	add := func(cohort player.Cohort, players []player.Player) {
		for _, p := range players {
			rows = append(rows, classify.Classify(cohort, p, forms[p.ID]))
		}
	}
	add(player.Owned, c.Owned)
	add(player.Excluded, c.Excluded)
	add(player.Candidate, c.Candidates)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Player.PointsPerGame.GreaterThan(rows[j].Player.PointsPerGame)
	})
	return rows
}

// Present keeps candidates whose recent form is at least minForm.
func Present(rows []player.Classified, minForm decimal.Decimal) []player.Classified {
	out := make([]player.Classified, 0, len(rows))
	for _, r := range rows {
		if r.Cohort != player.Candidate || r.Form.Empty() {
			continue
		}
		if r.Form.Average.GreaterThanOrEqual(minForm) {
			out = append(out, r)
		}
	}
	return out
}
