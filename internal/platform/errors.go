package platform

// PlatformError is returned by platform collaborators
type PlatformError string

// Error implements the error interface
func (e PlatformError) Error() string {
	return string(e)
}

const (
	ErrMemberNotFound       PlatformError = "member not found"
	ErrChannelNotFound      PlatformError = "channel not found"
	ErrPermissionDenied     PlatformError = "missing permission"
	ErrRecipientUnreachable PlatformError = "recipient cannot receive direct messages"
)
