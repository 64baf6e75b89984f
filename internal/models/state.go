package models

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerState identifies one of the lifecycle states a member can be in
type PlayerState string

const (
	// PlayerStateDefault is the state every member starts in, backed only by the everyone badge
	PlayerStateDefault PlayerState = "Default"

	// PlayerStateNewMember is the probation state for members who have pledged
	PlayerStateNewMember PlayerState = "New Member"

	// PlayerStateActiveMember is the state for members taking part in the game
	PlayerStateActiveMember PlayerState = "Active Member"

	// PlayerStateEliminated is the cool-down state for members who have been hit
	PlayerStateEliminated PlayerState = "Eliminated"
)

// ErrUnknownPlayerState is returned when a string does not name a known state
var ErrUnknownPlayerState = errors.New("unknown player state")

// PlayerStates lists every state in its canonical order
func PlayerStates() []PlayerState {
	return []PlayerState{
		PlayerStateDefault,
		PlayerStateNewMember,
		PlayerStateActiveMember,
		PlayerStateEliminated,
	}
}

// String returns the display name of the state
func (s PlayerState) String() string {
	return string(s)
}

// IsValid reports whether s is one of the canonical states
func (s PlayerState) IsValid() bool {
	for _, known := range PlayerStates() {
		if s == known {
			return true
		}
	}
	return false
}

// ParsePlayerState maps a configured or typed state name onto a PlayerState.
// Matching ignores case, spaces, dashes and underscores so "active_member",
// "ActiveMember" and "Active Member" are all accepted.
func ParsePlayerState(name string) (PlayerState, error) {
	wanted := normalizeStateName(name)
	if wanted == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownPlayerState)
	}

	for _, state := range PlayerStates() {
		if normalizeStateName(string(state)) == wanted {
			return state, nil
		}
	}

	// "everyone" is how the default badge shows up in the guild
	if wanted == "everyone" {
		return PlayerStateDefault, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPlayerState, name)
}

func normalizeStateName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '@':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
