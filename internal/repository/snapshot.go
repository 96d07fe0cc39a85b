package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"lotto-stats/internal/domain"
)

// SnapshotRepository owns the statistics_cache table: one entry per game,
// overwritten on each update cycle.
type SnapshotRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSnapshotRepository(db *sql.DB, logger zerolog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, logger: logger}
}

// Put persists a cache entry, replacing any prior entry for the game. The
// write is a single statement so a cancelled run never leaves a partial entry.
func (r *SnapshotRepository) Put(ctx context.Context, entry domain.CacheEntry) error {
	snapshot, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO statistics_cache (game_id, snapshot, origin, persisted_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (game_id) DO UPDATE SET
			snapshot = excluded.snapshot,
			origin = excluded.origin,
			persisted_at = excluded.persisted_at`,
		entry.GameID, string(snapshot), entry.Origin, entry.PersistedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to persist cache entry: %w", err)
	}

	r.logger.Debug().
		Str("game_id", entry.GameID).
		Str("origin", entry.Origin).
		Msg("cache entry persisted")
	return nil
}

// Get returns the cached entry for a game, or (nil, nil) when none exists.
func (r *SnapshotRepository) Get(ctx context.Context, gameID string) (*domain.CacheEntry, error) {
	entry := domain.CacheEntry{GameID: gameID}
	var snapshot string

	err := r.db.QueryRowContext(ctx, `
		SELECT snapshot, origin, persisted_at
		FROM statistics_cache WHERE game_id = ?`, gameID,
	).Scan(&snapshot, &entry.Origin, &entry.PersistedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal([]byte(snapshot), &entry.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &entry, nil
}
