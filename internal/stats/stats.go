// Package stats computes descriptive statistics over historical draws. All
// functions are pure: identical inputs yield identical snapshots.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"lotto-stats/internal/constants"
	"lotto-stats/internal/domain"
)

const noDataLabel = "no data"

// Compute builds a full snapshot from draws in extraction order. Empty input
// yields a structurally complete snapshot with zero counts and nil sum fields.
// For dual-pool games an independent nested snapshot is computed over the
// secondary numbers of draws that carry them.
func Compute(draws []domain.DrawResult, profile domain.GameProfile, computedAt time.Time) domain.StatisticsSnapshot {
	groups := make([][]int, len(draws))
	for i, d := range draws {
		groups[i] = d.Numbers
	}
	snapshot := computePool(groups, profile.DrawSize, profile.MaxNumber, computedAt)

	if profile.HasSecondary() {
		var secondary [][]int
		for _, d := range draws {
			if len(d.SecondaryNumbers) > 0 {
				secondary = append(secondary, d.SecondaryNumbers)
			}
		}
		nested := computePool(secondary, profile.SecondaryDrawSize, profile.SecondaryMaxNumber, computedAt)
		snapshot.SecondaryStats = &nested
		snapshot.Patterns.SumRangeLabel = fmt.Sprintf("main %s / bonus %s",
			snapshot.Patterns.SumRangeLabel, nested.Patterns.SumRangeLabel)
	}

	return snapshot
}

func computePool(groups [][]int, drawSize, maxNumber int, computedAt time.Time) domain.StatisticsSnapshot {
	// Zero counts are representable, not omitted: the whole domain is
	// always present in the map.
	frequency := make(map[int]int, maxNumber)
	for n := 1; n <= maxNumber; n++ {
		frequency[n] = 0
	}

	var sums []int
	evens, odds, lows, highs := 0, 0, 0, 0
	for _, group := range groups {
		sum := 0
		for _, n := range group {
			frequency[n]++
			sum += n
			if n%2 == 0 {
				evens++
			} else {
				odds++
			}
			if n <= maxNumber/2 {
				lows++
			} else {
				highs++
			}
		}
		sums = append(sums, sum)
	}

	snapshot := domain.StatisticsSnapshot{
		FrequencyMap: frequency,
		TotalDraws:   len(groups),
		Patterns: domain.Patterns{
			EvenOddRatio:  fmt.Sprintf("%d:%d", evens, odds),
			LowHighRatio:  fmt.Sprintf("%d:%d", lows, highs),
			SumRangeLabel: noDataLabel,
		},
		ComputedAt: computedAt,
	}

	if len(sums) > 0 {
		total, min, max := 0, sums[0], sums[0]
		for _, s := range sums {
			total += s
			if s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}
		avg := int(math.Round(float64(total) / float64(len(sums))))
		snapshot.AvgSum = &avg
		snapshot.SumRange = &domain.SumRange{Min: min, Max: max}
		snapshot.Patterns.SumRangeLabel = fmt.Sprintf("%d-%d", min, max)
	}

	snapshot.HotNumbers, snapshot.ColdNumbers = hotCold(groups, maxNumber)

	return snapshot
}

// hotCold ranks the domain by frequency within the most recent window of
// draws (list order is extraction order, newest first). Ties break by
// ascending number so repeated runs over identical draws are reproducible.
func hotCold(groups [][]int, maxNumber int) (hot, cold []int) {
	if len(groups) == 0 {
		return nil, nil
	}
	window := groups
	if len(window) > constants.HotColdWindow {
		window = window[:constants.HotColdWindow]
	}

	frequency := make(map[int]int, maxNumber)
	for _, group := range window {
		for _, n := range group {
			frequency[n]++
		}
	}

	ranked := make([]int, 0, maxNumber)
	for n := 1; n <= maxNumber; n++ {
		ranked = append(ranked, n)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return frequency[ranked[i]] > frequency[ranked[j]]
	})

	count := constants.HotColdCount
	if count > len(ranked) {
		count = len(ranked)
	}
	hot = append(hot, ranked[:count]...)

	// Coldest first: reverse tail of the same ranking.
	for i := len(ranked) - 1; i >= len(ranked)-count; i-- {
		cold = append(cold, ranked[i])
	}
	return hot, cold
}
