package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto-stats/internal/domain"
	"lotto-stats/internal/games"
)

func TestStatsService_FallbackTotality(t *testing.T) {
	// Empty cache and a permanently failing render capability: every
	// registered game must still yield a snapshot.
	registry := games.NewRegistry()
	repo := newTestRepo(t)
	svc := NewStatsService(repo, registry, zerolog.Nop())

	updateSvc := newUpdateService(t, &fakeRenderer{err: errors.New("source is down")}, repo)
	updateSvc.UpdateAll(context.Background())

	for _, id := range registry.IDs() {
		entry, err := svc.Get(context.Background(), id)
		require.NoError(t, err, id)
		assert.Equal(t, id, entry.GameID)
		assert.Equal(t, domain.OriginSynthesized, entry.Origin)
		assert.NotEmpty(t, entry.Snapshot.FrequencyMap, id)
	}
}

func TestStatsService_BaselineWithoutAnyUpdate(t *testing.T) {
	registry := games.NewRegistry()
	svc := NewStatsService(newTestRepo(t), registry, zerolog.Nop())

	entry, err := svc.Get(context.Background(), games.Lotto)
	require.NoError(t, err)
	assert.Equal(t, domain.OriginSynthesized, entry.Origin)
	assert.Positive(t, entry.Snapshot.TotalDraws)
}

func TestStatsService_PrefersCachedEntry(t *testing.T) {
	registry := games.NewRegistry()
	repo := newTestRepo(t)
	svc := NewStatsService(repo, registry, zerolog.Nop())

	renderer := &fakeRenderer{pages: map[string]*fakePage{
		"http://source.test/results/lotto": {
			doc: textDocument{body: "7 13 23 31 37 42"},
		},
	}}
	updateSvc := newUpdateService(t, renderer, repo)
	_, err := updateSvc.UpdateGame(context.Background(), games.Lotto)
	require.NoError(t, err)

	entry, err := svc.Get(context.Background(), games.Lotto)
	require.NoError(t, err)
	assert.Equal(t, domain.OriginLive, entry.Origin)
	assert.Equal(t, 1, entry.Snapshot.TotalDraws)
}

func TestStatsService_UnknownGame(t *testing.T) {
	svc := NewStatsService(newTestRepo(t), games.NewRegistry(), zerolog.Nop())
	_, err := svc.Get(context.Background(), "powerball")
	assert.Error(t, err)
}

func TestStatsService_Games(t *testing.T) {
	svc := NewStatsService(newTestRepo(t), games.NewRegistry(), zerolog.Nop())
	profiles := svc.Games()
	require.Len(t, profiles, 3)
	assert.Equal(t, games.Lotto, profiles[0].ID)
}
