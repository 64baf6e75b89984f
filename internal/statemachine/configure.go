package statemachine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/KirkDiggler/surety/internal/common/clock"
	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
)

// Settings describes one deployment's badges and thresholds
type Settings struct {
	// DefaultBadge is the badge every member holds (the guild's everyone role)
	DefaultBadge string

	// NewMemberBadge marks members on probation
	NewMemberBadge string

	// ActiveMemberBadge marks members in the game
	ActiveMemberBadge string

	// EliminatedBadge marks eliminated members; empty falls back to ActiveMemberBadge
	EliminatedBadge string

	// MessageThreshold is the message count that promotes a new member
	MessageThreshold int64

	// Probation is how long a new member waits before being promoted
	Probation time.Duration

	// EliminationCooldown is how long an eliminated member sits out
	EliminationCooldown time.Duration

	// InactivityDays demotes active members quiet for longer than this
	InactivityDays int64

	// ProofChannel is where pledges are posted
	ProofChannel string

	// HitChannel is where hits are confirmed
	HitChannel string

	// HitEmoji is the reaction that confirms a hit
	HitEmoji string

	Guild  platform.Badges
	Clock  clock.Clock
	Logger *slog.Logger
}

// Configure builds the registry of the four lifecycle states and their rules:
//
//	Default       --proof posted-->            New Member
//	New Member    --message count/probation--> Active Member
//	Active Member --hit confirmed-->           Eliminated
//	Active Member --inactivity-->              New Member
//	Eliminated    --cool-down-->               Active Member
//
// Every state also accepts manual overrides.
func Configure(settings *Settings) (*Registry, error) {
	if settings == nil {
		return nil, ErrNilConfig
	}
	if settings.DefaultBadge == "" || settings.NewMemberBadge == "" || settings.ActiveMemberBadge == "" {
		return nil, errors.New("default, new member and active member badges are required")
	}

	eliminatedBadge := settings.EliminatedBadge
	if eliminatedBadge == "" {
		eliminatedBadge = settings.ActiveMemberBadge
	}

	stateConfig := func(name models.PlayerState, badges ...string) *StateConfig {
		return &StateConfig{
			Name:   name,
			Badges: append([]string{settings.DefaultBadge}, badges...),
			Guild:  settings.Guild,
			Clock:  settings.Clock,
			Logger: settings.Logger,
		}
	}

	defaultState, err := NewState(stateConfig(models.PlayerStateDefault))
	if err != nil {
		return nil, err
	}
	newMember, err := NewElapsedState(stateConfig(models.PlayerStateNewMember, settings.NewMemberBadge))
	if err != nil {
		return nil, err
	}
	activeMember, err := NewState(stateConfig(models.PlayerStateActiveMember, settings.ActiveMemberBadge))
	if err != nil {
		return nil, err
	}
	eliminated, err := NewElapsedState(stateConfig(models.PlayerStateEliminated, eliminatedBadge))
	if err != nil {
		return nil, err
	}

	transitions := []struct {
		state RoleState
		event EventType
		rule  Rule
	}{
		{defaultState, EventMessage, ProofPosted(settings.ProofChannel, models.PlayerStateNewMember)},
		{defaultState, EventManualUpdate, ManualOverride()},

		{newMember, EventMessage, MessageCountAtLeast(settings.MessageThreshold, models.PlayerStateActiveMember)},
		{newMember, EventTimeElapsed, ElapsedAtLeast(settings.Probation, models.PlayerStateActiveMember)},
		{newMember, EventManualUpdate, ManualOverride()},

		{activeMember, EventInactivity, InactiveLongerThan(settings.InactivityDays, models.PlayerStateNewMember)},
		{activeMember, EventManualUpdate, ManualOverride()},
		{activeMember, EventReactionAdd, HitConfirmed(settings.HitEmoji, settings.HitChannel, models.PlayerStateEliminated)},

		{eliminated, EventTimeElapsed, ElapsedAtLeast(settings.EliminationCooldown, models.PlayerStateActiveMember)},
		{eliminated, EventManualUpdate, ManualOverride()},
	}
	for _, t := range transitions {
		if err := t.state.AddTransition(t.event, t.rule); err != nil {
			return nil, err
		}
	}

	registry := NewRegistry()
	for _, state := range []RoleState{defaultState, newMember, activeMember, eliminated} {
		if err := registry.Register(state); err != nil {
			return nil, err
		}
	}
	if err := registry.SetDefault(models.PlayerStateDefault); err != nil {
		return nil, err
	}

	return registry, nil
}
