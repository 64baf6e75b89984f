package contract

import (
	"context"

	"github.com/KirkDiggler/surety/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/surety/internal/services/contract Service

// Service hands out contracts to members who have posted proof
type Service interface {
	// RefreshProofs scans the proof channel and records each author's newest image
	RefreshProofs(ctx context.Context) (*RefreshProofsOutput, error)

	// DistributeContracts runs one contract cycle
	DistributeContracts(ctx context.Context, input *DistributeContractsInput) (*DistributeContractsOutput, error)

	// GetActiveContract returns the member's contract from the latest cycle
	GetActiveContract(ctx context.Context, input *GetActiveContractInput) (*GetActiveContractOutput, error)

	// ListCycles returns recent recorded cycles, newest first
	ListCycles(ctx context.Context, input *ListCyclesInput) (*ListCyclesOutput, error)

	// GetProof returns the member's recorded proof, if any
	GetProof(ctx context.Context, input *GetProofInput) (*GetProofOutput, error)
}

// StateReader exposes the member states a cycle is built from
type StateReader interface {
	// Snapshot returns a copy of every resolved member's state
	Snapshot() map[string]models.PlayerState
}
