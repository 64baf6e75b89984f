package statemachine

import (
	"fmt"

	"github.com/KirkDiggler/surety/internal/models"
)

// Registry is the ordered set of configured states. It is filled once at
// startup and only read afterwards.
type Registry struct {
	order        []models.PlayerState
	states       map[models.PlayerState]RoleState
	defaultState models.PlayerState
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		states: make(map[models.PlayerState]RoleState),
	}
}

// Register adds a state. The first state registered becomes the default
// state until SetDefault says otherwise, and every state must share its
// default badge.
func (r *Registry) Register(state RoleState) error {
	if state == nil {
		return ErrInvalidState
	}
	badges := state.Badges()
	if len(badges) == 0 {
		return ErrEmptyBadges
	}
	if _, exists := r.states[state.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateState, state.Name())
	}
	if len(r.order) > 0 && badges[0] != r.DefaultBadge() {
		return fmt.Errorf("%w: %s", ErrDefaultBadgeMismatch, state.Name())
	}

	r.states[state.Name()] = state
	r.order = append(r.order, state.Name())
	if r.defaultState == "" {
		r.defaultState = state.Name()
	}
	return nil
}

// SetDefault chooses the state unresolved members fall back to
func (r *Registry) SetDefault(name models.PlayerState) error {
	if !r.Has(name) {
		return fmt.Errorf("%w: %s", ErrInvalidState, name)
	}
	r.defaultState = name
	return nil
}

// DefaultState returns the fallback state
func (r *Registry) DefaultState() models.PlayerState {
	return r.defaultState
}

// DefaultBadge returns the badge shared by every state
func (r *Registry) DefaultBadge() string {
	if len(r.order) == 0 {
		return ""
	}
	return r.states[r.order[0]].Badges()[0]
}

// Get returns the state registered under name
func (r *Registry) Get(name models.PlayerState) (RoleState, bool) {
	state, ok := r.states[name]
	return state, ok
}

// Has reports whether name is registered
func (r *Registry) Has(name models.PlayerState) bool {
	_, ok := r.states[name]
	return ok
}

// States returns the states in registration order
func (r *Registry) States() []RoleState {
	out := make([]RoleState, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.states[name])
	}
	return out
}

// Len returns the number of registered states
func (r *Registry) Len() int {
	return len(r.order)
}

// KnownBadges returns every badge used by any state
func (r *Registry) KnownBadges() map[string]bool {
	known := make(map[string]bool)
	for _, name := range r.order {
		for _, badge := range r.states[name].Badges() {
			known[badge] = true
		}
	}
	return known
}
