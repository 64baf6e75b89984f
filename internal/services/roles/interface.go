package roles

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/surety/internal/services/roles Service

// Service turns guild activity into lifecycle events
type Service interface {
	// HandleMemberJoin places a new guild member in the default state
	HandleMemberJoin(ctx context.Context, input *HandleMemberJoinInput) (*TransitionOutput, error)

	// HandleMemberLeave forgets a member who left the guild
	HandleMemberLeave(ctx context.Context, input *HandleMemberLeaveInput) (*HandleMemberLeaveOutput, error)

	// HandleMessage counts the message and lets the author's state react to it
	HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error)

	// HandleReaction lets the reacting member's state react to the reaction
	HandleReaction(ctx context.Context, input *HandleReactionInput) (*TransitionOutput, error)

	// SetMemberState applies an operator's override
	SetMemberState(ctx context.Context, input *SetMemberStateInput) (*TransitionOutput, error)

	// GetMemberState returns the member's recorded state
	GetMemberState(ctx context.Context, input *GetMemberStateInput) (*GetMemberStateOutput, error)

	// ListStates describes the configured states and their rules
	ListStates(ctx context.Context) (*ListStatesOutput, error)

	// CheckElapsed runs the elapsed-time tick
	CheckElapsed(ctx context.Context) (*CheckElapsedOutput, error)

	// CheckInactivity demotes members who have gone quiet
	CheckInactivity(ctx context.Context) (*CheckInactivityOutput, error)

	// ReconcileBadges re-asserts every recorded member's badges
	ReconcileBadges(ctx context.Context) (*ReconcileBadgesOutput, error)
}
