package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetContractBriefing returns the private message that hands a member their target
	GetContractBriefing(ctx context.Context, input *GetContractBriefingInput) (*GetContractBriefingOutput, error)

	// GetStateChangeMessage returns a line announcing a member's new state
	GetStateChangeMessage(ctx context.Context, input *GetStateChangeMessageInput) (*GetStateChangeMessageOutput, error)

	// GetCycleSummaryMessage returns a summary of a contract cycle for operators
	GetCycleSummaryMessage(ctx context.Context, input *GetCycleSummaryMessageInput) (*GetCycleSummaryMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
