// Package draws converts raw extracted number groups into validated draw
// records.
package draws

import (
	"time"

	"lotto-stats/internal/domain"
)

// ToDraws re-validates each raw group against the game profile and assigns
// sequence indices in extraction order. Groups failing validation are dropped,
// not surfaced: extraction may be reused across games with different domains.
// DrawDate is the acquisition timestamp for every draw in the batch.
func ToDraws(rawGroups [][]int, profile domain.GameProfile, acquiredAt time.Time) []domain.DrawResult {
	var out []domain.DrawResult
	for _, group := range rawGroups {
		if !valid(group, profile.DrawSize, profile.MaxNumber) {
			continue
		}
		numbers := make([]int, len(group))
		copy(numbers, group)
		out = append(out, domain.DrawResult{
			Numbers:       numbers,
			DrawDate:      acquiredAt,
			SequenceIndex: len(out),
		})
	}
	return out
}

// MergeSecondary pairs secondary-pool groups with primary draws by sequence
// index. Dual-pool games invoke extraction once per pool; draws without a
// matching valid secondary group keep a nil secondary set.
func MergeSecondary(primary []domain.DrawResult, secondaryGroups [][]int, profile domain.GameProfile) []domain.DrawResult {
	if !profile.HasSecondary() {
		return primary
	}
	for i := range primary {
		if i >= len(secondaryGroups) {
			break
		}
		group := secondaryGroups[i]
		if !valid(group, profile.SecondaryDrawSize, profile.SecondaryMaxNumber) {
			continue
		}
		secondary := make([]int, len(group))
		copy(secondary, group)
		primary[i].SecondaryNumbers = secondary
	}
	return primary
}

func valid(group []int, size, max int) bool {
	if len(group) != size {
		return false
	}
	seen := make(map[int]bool, size)
	for _, n := range group {
		if n < 1 || n > max || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
