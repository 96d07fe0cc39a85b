package draws

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

func TestToDraws_ValidGroups(t *testing.T) {
	acquiredAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	raw := [][]int{
		{7, 13, 23, 31, 37, 42},
		{1, 2, 3, 4, 5, 6},
	}

	results := ToDraws(raw, lotto, acquiredAt)

	require.Len(t, results, 2)
	assert.Equal(t, []int{7, 13, 23, 31, 37, 42}, results[0].Numbers)
	assert.Equal(t, 0, results[0].SequenceIndex)
	assert.Equal(t, 1, results[1].SequenceIndex)
	assert.Equal(t, acquiredAt, results[0].DrawDate)
}

func TestToDraws_DropsInvalidGroups(t *testing.T) {
	raw := [][]int{
		{7, 13, 23, 31, 37, 52}, // out of range
		{7, 13, 23, 31, 37},     // wrong size
		{7, 7, 23, 31, 37, 42},  // repeated
		{0, 13, 23, 31, 37, 42}, // below domain
		{1, 8, 15, 22, 29, 36},  // valid
	}

	results := ToDraws(raw, lotto, time.Now())

	require.Len(t, results, 1)
	assert.Equal(t, []int{1, 8, 15, 22, 29, 36}, results[0].Numbers)
	assert.Equal(t, 0, results[0].SequenceIndex)
}

func TestToDraws_SatisfiesProfileInvariants(t *testing.T) {
	raw := [][]int{
		{3, 11, 23, 34, 49},
		{1, 2, 3, 4, 50},
		{10, 20, 30, 40, 50},
	}

	for _, d := range ToDraws(raw, euroJackpot, time.Now()) {
		assert.Len(t, d.Numbers, euroJackpot.DrawSize)
		seen := make(map[int]bool)
		for _, n := range d.Numbers {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, euroJackpot.MaxNumber)
			assert.False(t, seen[n])
			seen[n] = true
		}
	}
}

func TestMergeSecondary_PairsByIndex(t *testing.T) {
	primary := ToDraws([][]int{{3, 11, 23, 34, 49}}, euroJackpot, time.Now())
	merged := MergeSecondary(primary, [][]int{{4, 9}}, euroJackpot)

	require.Len(t, merged, 1)
	assert.Equal(t, []int{4, 9}, merged[0].SecondaryNumbers)
}

func TestMergeSecondary_SkipsInvalidSecondary(t *testing.T) {
	primary := ToDraws([][]int{
		{3, 11, 23, 34, 49},
		{1, 9, 20, 31, 44},
	}, euroJackpot, time.Now())

	merged := MergeSecondary(primary, [][]int{{4, 15}, {2, 11}}, euroJackpot)

	require.Len(t, merged, 2)
	assert.Nil(t, merged[0].SecondaryNumbers) // 15 exceeds the bonus domain
	assert.Equal(t, []int{2, 11}, merged[1].SecondaryNumbers)
}

func TestMergeSecondary_NoSecondaryProfile(t *testing.T) {
	primary := ToDraws([][]int{{7, 13, 23, 31, 37, 42}}, lotto, time.Now())
	merged := MergeSecondary(primary, [][]int{{4, 9}}, lotto)

	require.Len(t, merged, 1)
	assert.Nil(t, merged[0].SecondaryNumbers)
}
