package fetcher

import (
	"context"
	"errors"
	"fmt"

	"fplthreats/internal/player"
)

// ErrFetch marks a transport or HTTP failure talking to the stats API.
var ErrFetch = errors.New("fetch failed")

// CatalogFetcher retrieves the full current player catalog.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]player.Player, error)
}

// HistoryFetcher retrieves per-gameweek history for one player.
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, playerID int) ([]player.HistoryRow, error)
}

// ParseError reports a malformed field in an API payload.
type ParseError struct {
	PlayerID int
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s=%q for player %d: %v", e.Field, e.Value, e.PlayerID, e.Err)
	}
	return fmt.Sprintf("parse %s=%q for player %d", e.Field, e.Value, e.PlayerID)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
