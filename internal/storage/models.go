package storage

import "time"

const (
	// ListHeld names the list of players already in the squad.
	ListHeld = "held"
	// ListUnwanted names the list of players never to recommend.
	ListUnwanted = "unwanted"
)

// ListEntry is a persisted membership of a player in a named list.
type ListEntry struct {
	ListName  string
	PlayerID  int
	CreatedAt time.Time
}
