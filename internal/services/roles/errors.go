package roles

// RoleError is a custom error type for role service errors
type RoleError string

// Error implements the error interface
func (e RoleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyMemberID   RoleError = "member ID cannot be empty"
	ErrUnknownState    RoleError = "state does not exist"
	ErrNilConfig       RoleError = "config cannot be nil"
	ErrNilManager      RoleError = "state manager cannot be nil"
	ErrNilActivityRepo RoleError = "activity repository cannot be nil"
	ErrNilClock        RoleError = "clock cannot be nil"
)
