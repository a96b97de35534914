package player

import (
	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// Position is the FPL element_type code.
type Position int

const (
	Goalkeeper Position = 1
	Defender   Position = 2
	Midfielder Position = 3
	Forward    Position = 4
)

// String returns the display name used in reports.
func (p Position) String() string {
	switch p {
	case Goalkeeper:
		return "Goalkeeper"
	case Defender:
		return "Defender"
	case Midfielder:
		return "Midfielder"
	case Forward:
		return "Forward"
	default:
		return ""
	}
}

// Valid reports whether p is one of the four known positions.
func (p Position) Valid() bool {
	return p >= Goalkeeper && p <= Forward
}

// Status mirrors the single-letter availability flag of the catalog.
type Status string

const (
	StatusActive      Status = "a"
	StatusDoubtful    Status = "d"
	StatusInjured     Status = "i"
	StatusSuspended   Status = "s"
	StatusUnavailable Status = "u"
	StatusNotInSquad  Status = "n"
)

// Player is one catalog record.
type Player struct {
	ID            int
	WebName       string
	TeamID        int
	Position      Position
	Status        Status
	Ownership     decimal.Decimal
	PointsPerGame decimal.Decimal
	TotalPoints   int
	PriceTenths   int
}

// Price returns the price in millions.
func (p Player) Price() decimal.Decimal {
	return decimal.NewFromInt(int64(p.PriceTenths)).Div(ten)
}

// HistoryRow is a single gameweek score for a player.
type HistoryRow struct {
	PlayerID    int
	Round       int
	TotalPoints int
}
