package activity

import (
	"context"

	"github.com/KirkDiggler/surety/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/surety/internal/repositories/activity Repository

// Repository defines the interface for member activity persistence
type Repository interface {
	// RecordMessage counts a message and moves the member's last activity forward
	RecordMessage(ctx context.Context, input *RecordMessageInput) (*models.Activity, error)

	// GetActivity retrieves a member's activity
	GetActivity(ctx context.Context, input *GetActivityInput) (*models.Activity, error)

	// ListActivity retrieves the activity of every tracked member
	ListActivity(ctx context.Context) (*ListActivityOutput, error)

	// ResetMessageCount zeroes a member's running count, keeping the last activity time
	ResetMessageCount(ctx context.Context, input *ResetMessageCountInput) error
}
