package models

import "time"

// Activity is what the bot tracks about a member's chat activity
type Activity struct {
	// MemberID is the Discord user ID of the member
	MemberID string

	// MessageCount is the number of messages seen from the member
	MessageCount int64

	// LastMessageAt is when the member last posted, zero if never
	LastMessageAt time.Time
}

// DaysSinceLastMessage returns whole days between the last message and now.
// Members with no recorded message report -1.
func (a *Activity) DaysSinceLastMessage(now time.Time) int {
	if a == nil || a.LastMessageAt.IsZero() {
		return -1
	}
	return int(now.Sub(a.LastMessageAt).Hours() / 24)
}
