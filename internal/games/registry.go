// Package games holds the static registry of supported lottery variants.
package games

import (
	"fmt"

	"lotto-stats/internal/domain"
)

// Game identifiers.
const (
	Lotto       = "lotto"
	MiniLotto   = "minilotto"
	EuroJackpot = "eurojackpot"
)

// profiles is ordered: the orchestrator updates games in this order.
var profiles = []domain.GameProfile{
	{ID: Lotto, DrawSize: 6, MaxNumber: 49},
	{ID: MiniLotto, DrawSize: 5, MaxNumber: 42},
	{ID: EuroJackpot, DrawSize: 5, MaxNumber: 50, SecondaryDrawSize: 2, SecondaryMaxNumber: 12},
}

// Registry maps game identifiers to their immutable profiles.
type Registry struct {
	byID  map[string]domain.GameProfile
	order []string
}

func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]domain.GameProfile, len(profiles))}
	for _, p := range profiles {
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Get returns the profile for id, or an error for unknown games.
func (r *Registry) Get(id string) (domain.GameProfile, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.GameProfile{}, fmt.Errorf("unknown game: %s", id)
	}
	return p, nil
}

// IDs returns all registered game identifiers in update order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Profiles returns all registered profiles in update order.
func (r *Registry) Profiles() []domain.GameProfile {
	out := make([]domain.GameProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
