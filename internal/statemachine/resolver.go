package statemachine

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
)

// Resolver infers a state for a member the manager has no record of
type Resolver struct {
	registry *Registry
	guild    platform.Badges
}

// NewResolver creates a resolver over registry
func NewResolver(registry *Registry, guild platform.Badges) (*Resolver, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if guild == nil {
		return nil, ErrNilGuild
	}
	return &Resolver{registry: registry, guild: guild}, nil
}

// Resolve picks a state for event.Member. Joins land in the default state.
// Otherwise the member's held badges are matched against each state's badge
// set: a state qualifies when all its badges are held, and the qualifying
// state leaving the fewest held badges unexplained wins, first registered on
// ties.
func (r *Resolver) Resolve(ctx context.Context, event *Event) (models.PlayerState, error) {
	if event == nil {
		return "", ErrNilEvent
	}
	if r.registry.Len() == 0 {
		return "", ErrNoStates
	}

	if event.Type == EventMemberJoin {
		return r.registry.DefaultState(), nil
	}

	badges, err := r.guild.MemberBadges(ctx, event.Member)
	if err != nil {
		return "", fmt.Errorf("read badges for %s: %w", event.Member, err)
	}

	return r.Match(badges)
}

// Match runs the badge matching half of Resolve
func (r *Resolver) Match(badges []string) (models.PlayerState, error) {
	known := r.registry.KnownBadges()
	held := make(map[string]bool)
	for _, badge := range badges {
		if known[badge] {
			held[badge] = true
		}
	}
	if len(held) == 0 {
		return r.registry.DefaultState(), nil
	}

	var (
		best     models.PlayerState
		bestDiff = -1
	)
	for _, state := range r.registry.States() {
		stateBadges := make(map[string]bool)
		subset := true
		for _, badge := range state.Badges() {
			stateBadges[badge] = true
			if !held[badge] {
				subset = false
				break
			}
		}
		if !subset {
			continue
		}

		diff := 0
		for badge := range held {
			if !stateBadges[badge] {
				diff++
			}
		}
		if diff == 0 {
			return state.Name(), nil
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = state.Name(), diff
		}
	}

	if bestDiff < 0 {
		return "", ErrStateNotFound
	}
	return best, nil
}
