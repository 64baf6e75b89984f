package statemachine

import (
	"context"

	"github.com/KirkDiggler/surety/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_manager.go github.com/KirkDiggler/surety/internal/statemachine Manager

// Manager owns the member → state map and drives transitions
type Manager interface {
	// ProcessEvent resolves the member if needed, lets their state handle the
	// event and applies any resulting transition
	ProcessEvent(ctx context.Context, event *Event) error

	// Transition moves a member into target, running exit and enter hooks
	Transition(ctx context.Context, memberID string, target models.PlayerState) error

	// Override applies an operator request, forcing target even when no rule yields it
	Override(ctx context.Context, memberID string, target models.PlayerState) error

	// CurrentState returns the member's recorded state
	CurrentState(memberID string) (models.PlayerState, bool)

	// Snapshot returns a copy of the member → state map
	Snapshot() map[string]models.PlayerState

	// Remove forgets a member who left the guild without touching their
	// badges. It reports whether the member had a recorded state.
	Remove(memberID string) bool

	// TickElapsed sends a TimeElapsed event to every member with a recorded state
	TickElapsed(ctx context.Context) *TickResult

	// Reconcile re-asserts each recorded member's badges
	Reconcile(ctx context.Context) *ReconcileResult

	// Registry exposes the configured states
	Registry() *Registry
}

// TickResult summarizes one elapsed-time tick
type TickResult struct {
	// Checked is the number of members that received an event
	Checked int

	// Transitioned is the number of members whose state changed
	Transitioned int

	// Failed is the number of members whose event returned an error
	Failed int
}

// ReconcileResult summarizes one reconciliation pass
type ReconcileResult struct {
	// Checked is the number of members inspected
	Checked int

	// Granted is the number of badges granted
	Granted int

	// Revoked is the number of badges revoked
	Revoked int

	// Removed is the number of members forgotten because they left the guild
	Removed int

	// Failed counts badge reads or mutations that failed
	Failed int
}
