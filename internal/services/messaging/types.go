package messaging

import (
	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneNoir is a hard-boiled tone
	ToneNoir MessageTone = "noir"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// ErrorType names the failures commands report to members
type ErrorType string

const (
	ErrorTypeUnknownState      ErrorType = "unknown_state"
	ErrorTypeMissingPermission ErrorType = "missing_permission"
	ErrorTypeNoContract        ErrorType = "no_contract"
	ErrorTypeNotEnoughMembers  ErrorType = "not_enough_members"
	ErrorTypePoolExhausted     ErrorType = "pool_exhausted"
	ErrorTypeUnresolvedMember  ErrorType = "unresolved_member"
	ErrorTypeNoProof           ErrorType = "no_proof"
)

// GetContractBriefingInput contains parameters for a contract briefing
type GetContractBriefingInput struct {
	// AssignerName is the member receiving the contract
	AssignerName string

	// TargetName is the display name of the target
	TargetName string

	// Kind is the pass that produced the contract
	Kind models.ContractKind

	// HasProof indicates a photo of the target is attached
	HasProof bool

	// PreferredTone is optional, defaults to ToneNoir
	PreferredTone MessageTone
}

// GetContractBriefingOutput contains a contract briefing
type GetContractBriefingOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetStateChangeMessageInput contains parameters for a state change announcement
type GetStateChangeMessageInput struct {
	MemberName string

	// Previous is empty for members who had no recorded state
	Previous models.PlayerState
	Current  models.PlayerState

	// Overridden indicates an operator set the state
	Overridden bool
}

// GetStateChangeMessageOutput contains a state change announcement
type GetStateChangeMessageOutput struct {
	Message string
}

// GetCycleSummaryMessageInput contains parameters for a cycle summary
type GetCycleSummaryMessageInput struct {
	Skipped      bool
	NewCohort    int
	ActiveCohort int
	Contracts    int
	Delivered    int
	Undelivered  int
}

// GetCycleSummaryMessageOutput contains a cycle summary
type GetCycleSummaryMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType     ErrorType
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks among message variants, defaults to a time-seeded roller
	Roller random.Roller
}
