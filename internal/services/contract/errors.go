package contract

// BrokerError is a custom error type for contract broker errors
type BrokerError string

// Error implements the error interface
func (e BrokerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTargetPoolExhausted BrokerError = "not enough active members to give every new member a unique target"
	ErrNoActiveContract    BrokerError = "member has no active contract"
	ErrEmptyMemberID       BrokerError = "member ID cannot be empty"
	ErrNilConfig           BrokerError = "config cannot be nil"
	ErrNilGuild            BrokerError = "guild cannot be nil"
	ErrNilStateReader      BrokerError = "state reader cannot be nil"
	ErrNilLedger           BrokerError = "contract ledger cannot be nil"
	ErrNilRoller           BrokerError = "roller cannot be nil"
	ErrNilClock            BrokerError = "clock cannot be nil"
	ErrNilUUIDGenerator    BrokerError = "UUID generator cannot be nil"
	ErrEmptyProofChannel   BrokerError = "proof channel cannot be empty"
)
