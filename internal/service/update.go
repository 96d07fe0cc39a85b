package service

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"lotto-stats/internal/baseline"
	"lotto-stats/internal/config"
	"lotto-stats/internal/domain"
	"lotto-stats/internal/draws"
	"lotto-stats/internal/extract"
	"lotto-stats/internal/games"
	"lotto-stats/internal/render"
	"lotto-stats/internal/repository"
	"lotto-stats/internal/stats"
)

// UpdateService is the acquisition orchestrator. It runs each game's
// render → extract → validate → compute → persist pipeline sequentially, and
// on any stage failure persists the baseline snapshot instead so downstream
// consumers never observe an absence of data.
type UpdateService struct {
	renderer render.Renderer
	engine   *extract.Engine
	repo     *repository.SnapshotRepository
	registry *games.Registry
	cfg      *config.Config
	logger   zerolog.Logger
	group    singleflight.Group
}

func NewUpdateService(
	renderer render.Renderer,
	engine *extract.Engine,
	repo *repository.SnapshotRepository,
	registry *games.Registry,
	cfg *config.Config,
	logger zerolog.Logger,
) *UpdateService {
	return &UpdateService{
		renderer: renderer,
		engine:   engine,
		repo:     repo,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// UpdateAll refreshes every registered game in order, pausing between games
// to bound load on the source. A game's failure never aborts the batch;
// cancelling ctx stops before the next game without touching entries already
// persisted.
func (s *UpdateService) UpdateAll(ctx context.Context) domain.UpdateReport {
	runID, err := gonanoid.New()
	if err != nil {
		runID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	report := domain.UpdateReport{RunID: runID, StartedAt: time.Now()}
	ids := s.registry.IDs()

	s.logger.Info().Str("run_id", runID).Int("games", len(ids)).Msg("starting update run")

	for i, gameID := range ids {
		if ctx.Err() != nil {
			s.logger.Warn().Str("run_id", runID).Str("game_id", gameID).Msg("update run cancelled, skipping remaining games")
			break
		}

		game, err := s.UpdateGame(ctx, gameID)
		if err != nil {
			// Registry and batch come from the same source; only a
			// racing registry change could get us here.
			s.logger.Error().Err(err).Str("game_id", gameID).Msg("skipping unknown game")
			continue
		}
		report.Games = append(report.Games, game)

		if i < len(ids)-1 {
			select {
			case <-time.After(s.cfg.UpdateDelay):
			case <-ctx.Done():
			}
		}
	}

	report.FinishedAt = time.Now()
	s.logger.Info().
		Str("run_id", runID).
		Int("games", len(report.Games)).
		Bool("partial", report.Partial()).
		Msg("update run finished")
	return report
}

// UpdateGame refreshes a single game. Concurrent refreshes of the same game
// collapse into one pipeline run.
func (s *UpdateService) UpdateGame(ctx context.Context, gameID string) (domain.GameReport, error) {
	profile, err := s.registry.Get(gameID)
	if err != nil {
		return domain.GameReport{}, err
	}

	v, err, _ := s.group.Do(gameID, func() (any, error) {
		return s.runPipeline(ctx, profile), nil
	})
	if err != nil {
		return domain.GameReport{}, err
	}
	return v.(domain.GameReport), nil
}

func (s *UpdateService) runPipeline(ctx context.Context, profile domain.GameProfile) domain.GameReport {
	logger := s.logger.With().Str("game_id", profile.ID).Logger()
	url := fmt.Sprintf("%s/results/%s", s.cfg.SourceBaseURL, profile.ID)

	logger.Info().Str("url", url).Msg("acquiring draw history")

	page, err := s.renderer.Render(ctx, url, s.cfg.RenderTimeout)
	if err != nil {
		logger.Warn().Err(err).Msg("render failed")
		return s.fallback(ctx, profile, domain.StageRendering, err.Error())
	}
	defer func() {
		if err := page.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close rendered page")
		}
	}()

	// Diagnostic only; extraction proceeds regardless.
	if err := page.Snapshot(s.cfg.SnapshotDir); err != nil {
		logger.Warn().Err(err).Msg("failed to save page snapshot")
	}

	doc := page.Document()
	groups := s.engine.Extract(doc, extract.Pool{Size: profile.DrawSize, Max: profile.MaxNumber})
	if len(groups) == 0 {
		logger.Info().Msg("extraction found no draw groups")
		return s.fallback(ctx, profile, domain.StageExtracting, "no draw groups found")
	}

	acquiredAt := time.Now()
	results := draws.ToDraws(groups, profile, acquiredAt)
	if profile.HasSecondary() {
		secondary := s.engine.Extract(doc, extract.Pool{Size: profile.SecondaryDrawSize, Max: profile.SecondaryMaxNumber})
		results = draws.MergeSecondary(results, secondary, profile)
	}
	if len(results) == 0 {
		logger.Info().Int("raw_groups", len(groups)).Msg("no raw groups survived validation")
		return s.fallback(ctx, profile, domain.StageValidating, "no valid draws")
	}

	snapshot := stats.Compute(results, profile, time.Now())

	report := domain.GameReport{
		GameID: profile.ID,
		Stage:  domain.StagePersisted,
		Origin: domain.OriginLive,
		Draws:  len(results),
	}
	entry := domain.CacheEntry{
		GameID:      profile.ID,
		Snapshot:    snapshot,
		PersistedAt: time.Now(),
		Origin:      domain.OriginLive,
	}
	if err := s.repo.Put(ctx, entry); err != nil {
		// The computed statistics are still returned to the caller;
		// only durability is lost.
		logger.Error().Err(err).Msg("failed to persist live snapshot")
		report.Reason = err.Error()
	}

	logger.Info().Int("draws", len(results)).Msg("statistics updated from live data")
	return report
}

// fallback persists the baseline snapshot tagged as synthesized and records
// which stage failed and why.
func (s *UpdateService) fallback(ctx context.Context, profile domain.GameProfile, stage, reason string) domain.GameReport {
	now := time.Now()
	entry := domain.CacheEntry{
		GameID:      profile.ID,
		Snapshot:    baseline.Snapshot(profile, now),
		PersistedAt: now,
		Origin:      domain.OriginSynthesized,
	}
	if err := s.repo.Put(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("game_id", profile.ID).Msg("failed to persist fallback snapshot")
	}

	return domain.GameReport{
		GameID: profile.ID,
		Stage:  domain.StageFallbackPersisted,
		Origin: domain.OriginSynthesized,
		Reason: fmt.Sprintf("%s: %s", stage, reason),
	}
}
