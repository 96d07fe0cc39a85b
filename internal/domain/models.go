package domain

import (
	"time"
)

// GameProfile defines the draw shape of a lottery variant. Profiles are
// declared once in the games registry and never mutated.
type GameProfile struct {
	ID                 string `json:"id"`
	DrawSize           int    `json:"draw_size"`
	MaxNumber          int    `json:"max_number"`
	SecondaryDrawSize  int    `json:"secondary_draw_size,omitempty"`
	SecondaryMaxNumber int    `json:"secondary_max_number,omitempty"`
}

// HasSecondary reports whether the game draws from a second number pool.
func (p GameProfile) HasSecondary() bool {
	return p.SecondaryDrawSize > 0 && p.SecondaryMaxNumber > 0
}

// DrawResult is one validated historical draw. Numbers are distinct, sorted
// ascending and within the game's domain. SequenceIndex is the position in
// extraction order. DrawDate is stamped at acquisition time because the source
// exposes no reliable per-draw date; statistics are date-agnostic aggregates.
type DrawResult struct {
	Numbers          []int     `json:"numbers"`
	SecondaryNumbers []int     `json:"secondary_numbers,omitempty"`
	DrawDate         time.Time `json:"draw_date"`
	SequenceIndex    int       `json:"sequence_index"`
}

// SumRange is the min/max of per-draw number sums.
type SumRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Patterns holds display-oriented aggregate ratios.
type Patterns struct {
	EvenOddRatio  string `json:"even_odd_ratio"`
	LowHighRatio  string `json:"low_high_ratio"`
	SumRangeLabel string `json:"sum_range_label"`
}

// StatisticsSnapshot is the full set of descriptive statistics for one game,
// recomputed wholesale on every successful acquisition.
//
// The frequency map covers the whole domain [1, MaxNumber] and its counts sum
// to TotalDraws * DrawSize. AvgSum and SumRange are nil when no draws exist.
type StatisticsSnapshot struct {
	FrequencyMap   map[int]int         `json:"frequency_map"`
	TotalDraws     int                 `json:"total_draws"`
	AvgSum         *int                `json:"avg_sum"`
	SumRange       *SumRange           `json:"sum_range"`
	HotNumbers     []int               `json:"hot_numbers"`
	ColdNumbers    []int               `json:"cold_numbers"`
	Patterns       Patterns            `json:"patterns"`
	SecondaryStats *StatisticsSnapshot `json:"secondary_stats,omitempty"`
	ComputedAt     time.Time           `json:"computed_at"`
}

// Cache entry origins.
const (
	OriginLive        = "live"
	OriginSynthesized = "synthesized"
)

// CacheEntry is the single persisted snapshot slot for a game, overwritten on
// every update cycle.
type CacheEntry struct {
	GameID      string             `json:"game_id"`
	Snapshot    StatisticsSnapshot `json:"snapshot"`
	PersistedAt time.Time          `json:"persisted_at"`
	Origin      string             `json:"origin"`
}

// Acquisition pipeline stages, reported per game.
const (
	StageRendering  = "rendering"
	StageExtracting = "extracting"
	StageValidating = "validating"
	StageComputing  = "computing"
	StagePersisted  = "persisted"

	StageFallbackPersisted = "fallback_persisted"
)

// GameReport describes the outcome of one game's acquisition pipeline.
type GameReport struct {
	GameID string `json:"game_id"`
	Stage  string `json:"stage"`
	Origin string `json:"origin"`
	Draws  int    `json:"draws"`
	Reason string `json:"reason,omitempty"`
}

// Fallback reports whether the game ended in the fallback-persisted state.
func (r GameReport) Fallback() bool {
	return r.Stage == StageFallbackPersisted
}

// UpdateReport summarizes one orchestrator run over a batch of games.
type UpdateReport struct {
	RunID      string       `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Games      []GameReport `json:"games"`
}

// Partial reports whether at least one game fell back to synthesized data.
func (r UpdateReport) Partial() bool {
	for _, g := range r.Games {
		if g.Fallback() {
			return true
		}
	}
	return false
}
