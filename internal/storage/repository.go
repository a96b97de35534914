package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"fplthreats/internal/idlist"
	"fplthreats/internal/player"
)

var (
	// ErrNotConfigured indicates the storage pool was not initialised.
	ErrNotConfigured = errors.New("storage: pool not configured")
)

const (
	createPlayerListsSQL = `CREATE TABLE IF NOT EXISTS player_lists (
        list_name  TEXT        NOT NULL,
        player_id  INTEGER     NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        PRIMARY KEY (list_name, player_id)
    );`

	listIDsSQL = `SELECT player_id
    FROM player_lists
    WHERE list_name = $1
    ORDER BY player_id;`

	listEntriesSQL = `SELECT list_name, player_id, created_at
    FROM player_lists
    ORDER BY list_name, player_id;`

	deleteListSQL = `DELETE FROM player_lists WHERE list_name = $1;`

	insertListEntrySQL = `INSERT INTO player_lists (list_name, player_id)
    VALUES ($1, $2)
    ON CONFLICT (list_name, player_id) DO NOTHING;`
)

// ListStore defines operations on persisted player id lists.
type ListStore interface {
	ListIDs(ctx context.Context, listName string) ([]int, error)
	ListEntries(ctx context.Context) ([]ListEntry, error)
	ReplaceList(ctx context.Context, listName string, ids []int) error
}

// Store persists player id lists in PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStore wires a pgx pool into a Store.
func NewStore(pool *pgxpool.Pool, logger zerolog.Logger) *Store {
	return &Store{pool: pool, logger: logger.With().Str("component", "storage").Logger()}
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

func (s *Store) getPool() (*pgxpool.Pool, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNotConfigured
	}
	return s.pool, nil
}

// EnsureSchema creates the player_lists table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, createPlayerListsSQL); err != nil {
		return fmt.Errorf("create player_lists: %w", err)
	}
	return nil
}

// ListIDs returns the ids stored under listName.
func (s *Store) ListIDs(ctx context.Context, listName string) ([]int, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listIDsSQL, listName)
	if queryErr != nil {
		return nil, fmt.Errorf("list ids %s: %w", listName, queryErr)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, int(id))
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

// ListEntries returns every stored list membership.
func (s *Store) ListEntries(ctx context.Context) ([]ListEntry, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listEntriesSQL)
	if queryErr != nil {
		return nil, fmt.Errorf("list entries: %w", queryErr)
	}
	defer rows.Close()

	entries := make([]ListEntry, 0)
	for rows.Next() {
		var (
			entry ListEntry
			id    int32
		)
		if err := rows.Scan(&entry.ListName, &id, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.PlayerID = int(id)
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return entries, nil
}

// ReplaceList atomically swaps the contents of listName for ids.
func (s *Store) ReplaceList(ctx context.Context, listName string, ids []int) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteListSQL, listName); err != nil {
			return fmt.Errorf("clear list %s: %w", listName, err)
		}
		batch := &pgx.Batch{}
		for _, id := range ids {
			batch.Queue(insertListEntrySQL, listName, id)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert list %s: %w", listName, err)
		}
		return nil
	})
}

// Load reads the held and unwanted lists as an exclusion set.
func (s *Store) Load(ctx context.Context) (player.ExclusionSet, error) {
	held, err := s.ListIDs(ctx, ListHeld)
	if err != nil {
		return player.ExclusionSet{}, err
	}
	unwanted, err := s.ListIDs(ctx, ListUnwanted)
	if err != nil {
		return player.ExclusionSet{}, err
	}
	if len(held) == 0 && len(unwanted) == 0 {
		s.logger.Warn().Msg("player_lists is empty; no players excluded")
	}
	return player.NewExclusionSet(held, unwanted), nil
}

var (
	_ ListStore     = (*Store)(nil)
	_ idlist.Source = (*Store)(nil)
)
