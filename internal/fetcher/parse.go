package fetcher

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"fplthreats/internal/player"
)

var hundred = decimal.NewFromInt(100)

type bootstrapResponse struct {
	Elements []elementPayload `json:"elements"`
}

// elementPayload keeps the string-typed numeric fields raw so they can be
// validated explicitly instead of coerced.
type elementPayload struct {
	ID                int    `json:"id"`
	WebName           string `json:"web_name"`
	Team              int    `json:"team"`
	ElementType       int    `json:"element_type"`
	Status            string `json:"status"`
	SelectedByPercent string `json:"selected_by_percent"`
	PointsPerGame     string `json:"points_per_game"`
	TotalPoints       int    `json:"total_points"`
	NowCost           int    `json:"now_cost"`
}

type summaryResponse struct {
	History []historyPayload `json:"history"`
}

type historyPayload struct {
	Element     int `json:"element"`
	Round       int `json:"round"`
	TotalPoints int `json:"total_points"`
}

func parseElement(e elementPayload) (player.Player, error) {
	ownership, err := decimal.NewFromString(e.SelectedByPercent)
	if err != nil {
		return player.Player{}, &ParseError{PlayerID: e.ID, Field: "selected_by_percent", Value: e.SelectedByPercent, Err: err}
	}
	if ownership.IsNegative() || ownership.GreaterThan(hundred) {
		return player.Player{}, &ParseError{PlayerID: e.ID, Field: "selected_by_percent", Value: e.SelectedByPercent, Err: errors.New("out of range 0..100")}
	}

	ppg, err := decimal.NewFromString(e.PointsPerGame)
	if err != nil {
		return player.Player{}, &ParseError{PlayerID: e.ID, Field: "points_per_game", Value: e.PointsPerGame, Err: err}
	}

	if e.NowCost <= 0 {
		return player.Player{}, &ParseError{PlayerID: e.ID, Field: "now_cost", Value: strconv.Itoa(e.NowCost), Err: errors.New("must be positive")}
	}

	pos := player.Position(e.ElementType)
	if !pos.Valid() {
		return player.Player{}, &ParseError{PlayerID: e.ID, Field: "element_type", Value: strconv.Itoa(e.ElementType), Err: errors.New("unknown position")}
	}

	return player.Player{
		ID:            e.ID,
		WebName:       e.WebName,
		TeamID:        e.Team,
		Position:      pos,
		Status:        player.Status(e.Status),
		Ownership:     ownership,
		PointsPerGame: ppg,
		TotalPoints:   e.TotalPoints,
		PriceTenths:   e.NowCost,
	}, nil
}

func parseHistory(playerID int, rows []historyPayload) []player.HistoryRow {
	out := make([]player.HistoryRow, 0, len(rows))
	for _, r := range rows {
		id := r.Element
		if id == 0 {
			id = playerID
		}
		out = append(out, player.HistoryRow{PlayerID: id, Round: r.Round, TotalPoints: r.TotalPoints})
	}
	return out
}
