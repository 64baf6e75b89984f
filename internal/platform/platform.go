// Package platform describes what the core needs from the chat platform.
// The Discord handler implements these; tests use the generated mocks.
package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_guild.go github.com/KirkDiggler/surety/internal/platform Guild

import (
	"context"

	"github.com/KirkDiggler/surety/internal/models"
)

// Badges reads and mutates the badges (guild roles) a member holds
type Badges interface {
	// MemberBadges returns the badge IDs the member currently holds, including the default badge
	MemberBadges(ctx context.Context, memberID string) ([]string, error)

	// GrantBadge gives the member a badge
	GrantBadge(ctx context.Context, memberID, badgeID string) error

	// RevokeBadge takes a badge away from the member
	RevokeBadge(ctx context.Context, memberID, badgeID string) error
}

// Directory looks up guild members
type Directory interface {
	// GetMember returns ErrMemberNotFound when the member left the guild
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
}

// ProofSource reads the proof channel
type ProofSource interface {
	// ProofHistory returns up to limit recent posts in channel, newest first
	ProofHistory(ctx context.Context, channel string, limit int) ([]*models.ProofPost, error)
}

// Notifier delivers private messages
type Notifier interface {
	// SendContract privately tells the assigner about their target
	SendContract(ctx context.Context, contract *models.Contract) error
}

// Guild is everything the bot consumes from one guild
type Guild interface {
	Badges
	Directory
	ProofSource
	Notifier
}
