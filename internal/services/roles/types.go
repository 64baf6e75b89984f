package roles

import (
	"time"

	"github.com/KirkDiggler/surety/internal/models"
)

// TransitionOutput describes where an event left the member
type TransitionOutput struct {
	MemberID string

	// Previous is empty when the member was unresolved
	Previous models.PlayerState
	Current  models.PlayerState
}

// Changed reports whether the member moved to a different state
func (o *TransitionOutput) Changed() bool {
	return o != nil && o.Previous != o.Current
}

// HandleMemberJoinInput contains parameters for a member join
type HandleMemberJoinInput struct {
	MemberID string
}

// HandleMemberLeaveInput contains parameters for a member leaving
type HandleMemberLeaveInput struct {
	MemberID string
}

// HandleMemberLeaveOutput reports whether the member had a recorded state
type HandleMemberLeaveOutput struct {
	MemberID string
	Removed  bool
}

// HandleMessageInput contains parameters for a posted message
type HandleMessageInput struct {
	MemberID       string
	ChannelName    string
	HasAttachments bool
	IsBot          bool
	PostedAt       time.Time
}

// HandleMessageOutput contains the result of handling a message
type HandleMessageOutput struct {
	TransitionOutput

	// Ignored is set for bot messages
	Ignored bool

	// MessageCount is the author's running message count, zero if it could not be recorded
	MessageCount int64
}

// HandleReactionInput contains parameters for an added reaction
type HandleReactionInput struct {
	MemberID       string
	Emoji          string
	ChannelName    string
	HasAttachments bool
	IsBot          bool

	// Mentions are the member IDs mentioned by the reacted-to message
	Mentions []string
}

// SetMemberStateInput contains parameters for an override
type SetMemberStateInput struct {
	MemberID string

	// StateName is parsed leniently, e.g. "active member" or "Active_Member"
	StateName string
}

// GetMemberStateInput contains parameters for looking up a member's state
type GetMemberStateInput struct {
	MemberID string
}

// GetMemberStateOutput contains the member's state
type GetMemberStateOutput struct {
	State    models.PlayerState
	Resolved bool

	// EnteredAt is set for states that track how long the member has been in them
	EnteredAt time.Time

	// Activity is nil when no message was ever recorded
	Activity *models.Activity
}

// StateSummary describes one configured state
type StateSummary struct {
	Name      models.PlayerState
	Badges    []string
	IsDefault bool

	// Rules are human readable rule descriptions in evaluation order
	Rules []RuleSummary
}

// RuleSummary describes one transition rule
type RuleSummary struct {
	Event       string
	Description string
}

// ListStatesOutput contains every configured state in registration order
type ListStatesOutput struct {
	States []*StateSummary
}

// CheckElapsedOutput contains the result of an elapsed-time tick
type CheckElapsedOutput struct {
	Checked      int
	Transitioned int
	Failed       int
}

// CheckInactivityOutput contains the result of an inactivity sweep
type CheckInactivityOutput struct {
	Checked int
	Demoted int
	Failed  int
}

// ReconcileBadgesOutput contains the result of a reconciliation pass
type ReconcileBadgesOutput struct {
	Checked int
	Granted int
	Revoked int
	Removed int
	Failed  int
}
