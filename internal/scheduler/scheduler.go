// Package scheduler runs the full statistics refresh on a cron schedule so
// cached snapshots stay warm without manual triggers.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"lotto-stats/internal/config"
	"lotto-stats/internal/service"
)

type Scheduler struct {
	cron      *cron.Cron
	updateSvc *service.UpdateService
	cfg       *config.Config
	logger    zerolog.Logger
}

func New(updateSvc *service.UpdateService, cfg *config.Config, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		updateSvc: updateSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.UpdateCron, func() {
		s.logger.Info().Str("schedule", s.cfg.UpdateCron).Msg("scheduled statistics refresh starting")
		report := s.updateSvc.UpdateAll(context.Background())
		s.logger.Info().
			Str("run_id", report.RunID).
			Bool("partial", report.Partial()).
			Msg("scheduled statistics refresh finished")
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", s.cfg.UpdateCron).Msg("update scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("update scheduler stopped")
}
