package contract_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/surety/internal/repositories/contract_ledger Repository

import (
	"context"

	"github.com/KirkDiggler/surety/internal/models"
)

// Repository defines the interface for contract cycle persistence
type Repository interface {
	// SaveCycle records a completed contract cycle
	SaveCycle(ctx context.Context, input *SaveCycleInput) error

	// GetCycle retrieves a cycle by ID
	GetCycle(ctx context.Context, input *GetCycleInput) (*models.ContractCycle, error)

	// GetLatestCycle retrieves the most recently started cycle
	GetLatestCycle(ctx context.Context) (*models.ContractCycle, error)

	// ListCycles retrieves recent cycles, newest first
	ListCycles(ctx context.Context, input *ListCyclesInput) (*ListCyclesOutput, error)
}
