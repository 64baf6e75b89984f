package statemachine

// StateError is the error type for state machine failures
type StateError string

// Error implements the error interface
func (e StateError) Error() string {
	return string(e)
}

const (
	ErrStateNotFound        StateError = "state not found"
	ErrInvalidState         StateError = "invalid state"
	ErrDuplicateState       StateError = "state already registered"
	ErrNoStates             StateError = "registry has no states"
	ErrEmptyBadges          StateError = "state must have at least one badge"
	ErrDefaultBadgeMismatch StateError = "state badges must begin with the default badge"
	ErrRuleWithoutTarget    StateError = "only manual update rules may omit a target"
	ErrNilConfig            StateError = "config cannot be nil"
	ErrNilRegistry          StateError = "registry cannot be nil"
	ErrNilGuild             StateError = "guild cannot be nil"
	ErrNilEvent             StateError = "event cannot be nil"
	ErrEmptyMemberID        StateError = "member ID cannot be empty"
)
