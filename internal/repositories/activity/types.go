package activity

import (
	"time"

	"github.com/KirkDiggler/surety/internal/models"
)

// RecordMessageInput contains parameters for recording a message
type RecordMessageInput struct {
	MemberID string
	PostedAt time.Time
}

// GetActivityInput contains parameters for retrieving a member's activity
type GetActivityInput struct {
	MemberID string
}

// ListActivityOutput contains the activity of every tracked member, ordered by member ID
type ListActivityOutput struct {
	Activities []*models.Activity
}

// ResetMessageCountInput contains parameters for resetting a member's count
type ResetMessageCountInput struct {
	MemberID string
}
