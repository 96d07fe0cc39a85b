package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	SourceBaseURL string
	DBPath        string
	ServerPort    string
	LogLevel      string
	SnapshotDir   string
	UpdateCron    string
	RenderTimeout time.Duration
	UpdateDelay   time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		SourceBaseURL: getEnv("SOURCE_BASE_URL", "https://www.lottery-results.example.com"),
		DBPath:        getEnv("DB_PATH", "lotto.db"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SnapshotDir:   getEnv("SNAPSHOT_DIR", "snapshots"),
		UpdateCron:    getEnv("UPDATE_CRON", "0 3 * * *"),
		RenderTimeout: getDuration("RENDER_TIMEOUT", 30*time.Second),
		UpdateDelay:   getDuration("UPDATE_DELAY", 3*time.Second),
	}

	logger.Info().
		Str("source_base_url", cfg.SourceBaseURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("update_cron", cfg.UpdateCron).
		Dur("render_timeout", cfg.RenderTimeout).
		Dur("update_delay", cfg.UpdateDelay).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
