package contract_ledger

import "github.com/KirkDiggler/surety/internal/models"

// SaveCycleInput contains parameters for saving a cycle
type SaveCycleInput struct {
	Cycle *models.ContractCycle
}

// GetCycleInput contains parameters for retrieving a cycle
type GetCycleInput struct {
	CycleID string
}

// ListCyclesInput contains parameters for listing cycles
type ListCyclesInput struct {
	// Limit caps the number of cycles returned, zero means all
	Limit int64
}

// ListCyclesOutput contains the listed cycles, newest first
type ListCyclesOutput struct {
	Cycles []*models.ContractCycle
}
