package models

import "time"

// ProofPost is a message from the proof channel as seen by the bot
type ProofPost struct {
	// MessageID is the Discord message ID
	MessageID string

	// AuthorID is the Discord user ID of the author
	AuthorID string

	// ImageURL is the URL of the first image attachment, empty when there is none
	ImageURL string

	// PostedAt is when the message was sent
	PostedAt time.Time
}

// HasImage reports whether the post qualifies as proof
func (p *ProofPost) HasImage() bool {
	return p != nil && p.ImageURL != ""
}

// Proof is the most recent qualifying photo recorded for a member
type Proof struct {
	// MemberID is the Discord user ID of the member
	MemberID string

	// URL is the image URL
	URL string

	// MessageID is the message the image was attached to
	MessageID string

	// PostedAt is when the image was posted
	PostedAt time.Time
}
