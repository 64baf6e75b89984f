package models

// Member is the slice of a guild member the bot cares about
type Member struct {
	// ID is the Discord user ID of the member
	ID string

	// DisplayName is the nickname if set, otherwise the username
	DisplayName string

	// Mention is the markup that pings the member
	Mention string

	// IsBot indicates the account belongs to a bot
	IsBot bool
}
