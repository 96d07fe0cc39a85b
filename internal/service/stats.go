package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"lotto-stats/internal/baseline"
	"lotto-stats/internal/constants"
	"lotto-stats/internal/domain"
	"lotto-stats/internal/games"
	"lotto-stats/internal/repository"
)

// StatsService serves statistics for registered games. The read chain is
// cached entry first, bundled baseline second; it never comes back empty for
// a known game identifier.
type StatsService struct {
	repo     *repository.SnapshotRepository
	registry *games.Registry
	logger   zerolog.Logger
}

func NewStatsService(repo *repository.SnapshotRepository, registry *games.Registry, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, registry: registry, logger: logger}
}

// Get returns the freshest available entry for a game. The only error is an
// unknown game identifier; cache failures degrade to the baseline.
func (s *StatsService) Get(ctx context.Context, gameID string) (domain.CacheEntry, error) {
	profile, err := s.registry.Get(gameID)
	if err != nil {
		return domain.CacheEntry{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	entry, err := s.repo.Get(ctx, gameID)
	if err != nil {
		s.logger.Warn().Err(err).Str("game_id", gameID).Msg("cache read failed, serving baseline")
	}
	if entry != nil {
		s.logger.Debug().Str("game_id", gameID).Str("origin", entry.Origin).Msg("serving cached statistics")
		return *entry, nil
	}

	now := time.Now()
	s.logger.Info().Str("game_id", gameID).Msg("no cached statistics, serving baseline")
	return domain.CacheEntry{
		GameID:      gameID,
		Snapshot:    baseline.Snapshot(profile, now),
		PersistedAt: now,
		Origin:      domain.OriginSynthesized,
	}, nil
}

// Games lists the registered game profiles in update order.
func (s *StatsService) Games() []domain.GameProfile {
	return s.registry.Profiles()
}
