package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto-stats/internal/domain"
)

var lotto = domain.GameProfile{ID: "lotto", DrawSize: 6, MaxNumber: 49}

var euroJackpot = domain.GameProfile{
	ID: "eurojackpot", DrawSize: 5, MaxNumber: 50,
	SecondaryDrawSize: 2, SecondaryMaxNumber: 12,
}

var fixedTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func drawsOf(groups ...[]int) []domain.DrawResult {
	out := make([]domain.DrawResult, len(groups))
	for i, g := range groups {
		out[i] = domain.DrawResult{Numbers: g, DrawDate: fixedTime, SequenceIndex: i}
	}
	return out
}

func TestCompute_FrequencyAndTotals(t *testing.T) {
	snapshot := Compute(drawsOf(
		[]int{7, 13, 23, 31, 37, 42},
		[]int{1, 2, 3, 4, 5, 6},
	), lotto, fixedTime)

	assert.Equal(t, 2, snapshot.TotalDraws)
	assert.Equal(t, 1, snapshot.FrequencyMap[7])
	assert.Equal(t, 0, snapshot.FrequencyMap[8])
	assert.Len(t, snapshot.FrequencyMap, lotto.MaxNumber)

	total := 0
	for _, c := range snapshot.FrequencyMap {
		total += c
	}
	assert.Equal(t, snapshot.TotalDraws*lotto.DrawSize, total)
}

func TestCompute_SumStatistics(t *testing.T) {
	snapshot := Compute(drawsOf(
		[]int{7, 13, 23, 31, 37, 42}, // sum 153
		[]int{1, 2, 3, 4, 5, 6},      // sum 21
	), lotto, fixedTime)

	require.NotNil(t, snapshot.AvgSum)
	require.NotNil(t, snapshot.SumRange)
	assert.Equal(t, 87, *snapshot.AvgSum)
	assert.Equal(t, domain.SumRange{Min: 21, Max: 153}, *snapshot.SumRange)
	assert.Equal(t, "21-153", snapshot.Patterns.SumRangeLabel)
}

func TestCompute_Patterns(t *testing.T) {
	snapshot := Compute(drawsOf([]int{2, 4, 6, 25, 27, 29}), lotto, fixedTime)

	assert.Equal(t, "3:3", snapshot.Patterns.EvenOddRatio)
	// Low is n <= 24 for a 49 domain.
	assert.Equal(t, "3:3", snapshot.Patterns.LowHighRatio)
}

func TestCompute_EmptyInput(t *testing.T) {
	snapshot := Compute(nil, lotto, fixedTime)

	assert.Equal(t, 0, snapshot.TotalDraws)
	assert.Nil(t, snapshot.AvgSum)
	assert.Nil(t, snapshot.SumRange)
	assert.Empty(t, snapshot.HotNumbers)
	assert.Empty(t, snapshot.ColdNumbers)
	assert.Equal(t, "0:0", snapshot.Patterns.EvenOddRatio)
	assert.Equal(t, "no data", snapshot.Patterns.SumRangeLabel)
	assert.Len(t, snapshot.FrequencyMap, lotto.MaxNumber)
}

func TestCompute_Idempotent(t *testing.T) {
	input := drawsOf(
		[]int{7, 13, 23, 31, 37, 42},
		[]int{1, 2, 3, 4, 5, 6},
		[]int{5, 14, 23, 29, 40, 47},
	)

	first := Compute(input, lotto, fixedTime)
	second := Compute(input, lotto, fixedTime)

	assert.Equal(t, first, second)
}

func TestCompute_HotColdWindowEqualsListAt50(t *testing.T) {
	single := domain.GameProfile{ID: "single", DrawSize: 1, MaxNumber: 10}

	var groups [][]int
	for range 50 {
		groups = append(groups, []int{7})
	}
	snapshot := Compute(drawsOf(groups...), single, fixedTime)

	require.NotEmpty(t, snapshot.HotNumbers)
	assert.Equal(t, 7, snapshot.HotNumbers[0])
	assert.NotContains(t, snapshot.ColdNumbers, 7)
}

func TestCompute_HotColdIgnoresDrawsBeyondWindow(t *testing.T) {
	single := domain.GameProfile{ID: "single", DrawSize: 1, MaxNumber: 10}

	// 7 dominates the 50-draw window; 3 dominates overall but appears
	// only beyond it.
	var groups [][]int
	for range 50 {
		groups = append(groups, []int{7})
	}
	for range 150 {
		groups = append(groups, []int{3})
	}
	snapshot := Compute(drawsOf(groups...), single, fixedTime)

	assert.Equal(t, 150, snapshot.FrequencyMap[3])
	require.NotEmpty(t, snapshot.HotNumbers)
	assert.Equal(t, 7, snapshot.HotNumbers[0])
	// Within the window 3 has zero hits, so it ranks with the other
	// zero-count numbers, tie-broken by ascending value.
	assert.Equal(t, []int{1, 2, 3, 4}, snapshot.HotNumbers[1:])
}

func TestCompute_HotColdTieBreakIsReproducible(t *testing.T) {
	input := drawsOf([]int{1, 2, 3, 4, 5, 6})

	first := Compute(input, lotto, fixedTime)
	second := Compute(input, lotto, fixedTime)

	assert.Equal(t, first.HotNumbers, second.HotNumbers)
	assert.Equal(t, first.ColdNumbers, second.ColdNumbers)
	// All six drawn numbers share count 1; ascending ties put 1-5 first.
	assert.Equal(t, []int{1, 2, 3, 4, 5}, first.HotNumbers)
}

func TestCompute_DualPool(t *testing.T) {
	input := []domain.DrawResult{{
		Numbers:          []int{3, 11, 23, 34, 49},
		SecondaryNumbers: []int{4, 9},
		DrawDate:         fixedTime,
	}}

	snapshot := Compute(input, euroJackpot, fixedTime)

	require.NotNil(t, snapshot.SecondaryStats)
	assert.Equal(t, 1, snapshot.SecondaryStats.TotalDraws)
	assert.Equal(t, 1, snapshot.SecondaryStats.FrequencyMap[4])
	assert.Len(t, snapshot.SecondaryStats.FrequencyMap, euroJackpot.SecondaryMaxNumber)
	assert.Contains(t, snapshot.Patterns.SumRangeLabel, "main ")
	assert.Contains(t, snapshot.Patterns.SumRangeLabel, "bonus ")

	total := 0
	for _, c := range snapshot.SecondaryStats.FrequencyMap {
		total += c
	}
	assert.Equal(t, snapshot.SecondaryStats.TotalDraws*euroJackpot.SecondaryDrawSize, total)
}

func TestCompute_DualPoolWithoutSecondaryDraws(t *testing.T) {
	snapshot := Compute(drawsOf([]int{3, 11, 23, 34, 49}), euroJackpot, fixedTime)

	require.NotNil(t, snapshot.SecondaryStats)
	assert.Equal(t, 0, snapshot.SecondaryStats.TotalDraws)
	assert.Nil(t, snapshot.SecondaryStats.AvgSum)
}
