package contract

import "github.com/KirkDiggler/surety/internal/models"

// RefreshProofsOutput contains the result of a proof refresh
type RefreshProofsOutput struct {
	// Scanned is the number of channel posts inspected
	Scanned int

	// Updated is the number of members whose proof changed
	Updated int

	// Tracked is the number of members with recorded proof
	Tracked int
}

// DistributeContractsInput contains parameters for a contract cycle
type DistributeContractsInput struct {
	// SkipRefresh reuses the recorded proofs without scanning the channel
	SkipRefresh bool
}

// DistributeContractsOutput contains the result of a contract cycle
type DistributeContractsOutput struct {
	// Cycle is the completed cycle, nil when skipped
	Cycle *models.ContractCycle

	// Skipped indicates fewer than two eligible members
	Skipped bool

	// NewCohort is the number of eligible new members
	NewCohort int

	// ActiveCohort is the number of eligible active members
	ActiveCohort int

	// Delivered is the number of notifications sent
	Delivered int

	// Undelivered is the number of notifications that failed
	Undelivered int
}

// GetActiveContractInput contains parameters for looking up a contract
type GetActiveContractInput struct {
	MemberID string
}

// GetActiveContractOutput contains the member's contract
type GetActiveContractOutput struct {
	Contract *models.Contract
	CycleID  string
}

// GetProofInput contains parameters for looking up proof
type GetProofInput struct {
	MemberID string
}

// GetProofOutput contains the member's proof
type GetProofOutput struct {
	// Proof is nil when nothing was recorded
	Proof *models.Proof
}

// ListCyclesInput contains parameters for listing cycles
type ListCyclesInput struct {
	// Limit defaults to DefaultCycleListLimit and is capped at MaxCycleListLimit
	Limit int
}

// ListCyclesOutput contains recorded cycles, newest first
type ListCyclesOutput struct {
	Cycles []*models.ContractCycle
}
