package fx

import (
	"lotto-stats/internal/config"
	"lotto-stats/internal/database"
	"lotto-stats/internal/extract"
	"lotto-stats/internal/games"
	"lotto-stats/internal/logger"
	"lotto-stats/internal/render"
	"lotto-stats/internal/repository"
	"lotto-stats/internal/scheduler"
	"lotto-stats/internal/server"
	"lotto-stats/internal/service"

	"go.uber.org/fx"
)

func ProvideRenderer(r *render.HTTPRenderer) render.Renderer {
	return r
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(games.NewRegistry),
	// acquisition
	fx.Provide(render.NewHTTPRenderer),
	fx.Provide(ProvideRenderer),
	fx.Provide(extract.NewEngine),
	// repos
	fx.Provide(repository.NewSnapshotRepository),
	// svc
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewUpdateService),
	fx.Provide(scheduler.New),
	// server
	fx.Provide(server.NewStatsServer),
)
