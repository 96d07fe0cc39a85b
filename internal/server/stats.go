package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"lotto-stats/internal/domain"
	"lotto-stats/internal/service"
)

// StatsServer exposes the statistics retrieval and update trigger endpoints.
type StatsServer struct {
	statsSvc  *service.StatsService
	updateSvc *service.UpdateService
	logger    zerolog.Logger
}

func NewStatsServer(statsSvc *service.StatsService, updateSvc *service.UpdateService, logger zerolog.Logger) *StatsServer {
	return &StatsServer{statsSvc: statsSvc, updateSvc: updateSvc, logger: logger}
}

// Register mounts all routes on mux.
func (s *StatsServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /statistics", s.handleListGames)
	mux.HandleFunc("GET /statistics/{gameId}", s.handleGetStatistics)
	mux.HandleFunc("POST /statistics/update", s.handleUpdate)
}

type statisticsResponse struct {
	Success     bool                      `json:"success"`
	Statistics  domain.StatisticsSnapshot `json:"statistics"`
	Origin      string                    `json:"origin"`
	LastUpdated time.Time                 `json:"last_updated"`
}

func (s *StatsServer) handleGetStatistics(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")

	entry, err := s.statsSvc.Get(r.Context(), gameID)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, statisticsResponse{
		Success:     true,
		Statistics:  entry.Snapshot,
		Origin:      entry.Origin,
		LastUpdated: entry.PersistedAt,
	})
}

type listGamesResponse struct {
	Success bool                 `json:"success"`
	Games   []domain.GameProfile `json:"games"`
}

func (s *StatsServer) handleListGames(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, listGamesResponse{Success: true, Games: s.statsSvc.Games()})
}

type updateRequest struct {
	GameID string `json:"game_id"`
}

type updateGameResponse struct {
	Success bool              `json:"success"`
	Report  domain.GameReport `json:"report"`
}

type updateAllResponse struct {
	Success bool                `json:"success"`
	Partial bool                `json:"partial"`
	Report  domain.UpdateReport `json:"report"`
}

func (s *StatsServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if req.GameID == "" {
		report := s.updateSvc.UpdateAll(r.Context())
		s.writeJSON(w, http.StatusOK, updateAllResponse{
			Success: true,
			Partial: report.Partial(),
			Report:  report,
		})
		return
	}

	report, err := s.updateSvc.UpdateGame(r.Context(), req.GameID)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, updateGameResponse{Success: !report.Fallback(), Report: report})
}

func (s *StatsServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *StatsServer) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
