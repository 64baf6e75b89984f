package models

import "time"

// ContractKind describes which assignment pass produced a contract
type ContractKind string

const (
	// ContractKindUnique is a contract from the new-member pass, no other new member shares the target
	ContractKindUnique ContractKind = "unique"

	// ContractKindShared is a contract from the active-member pass, targets may repeat
	ContractKindShared ContractKind = "shared"
)

// Contract pairs an assigner with the target they are hunting
type Contract struct {
	// ID is the unique identifier for the contract
	ID string

	// CycleID is the cycle that issued the contract
	CycleID string

	// Kind is the pass that produced the contract
	Kind ContractKind

	// AssignerID is the member who received the contract
	AssignerID string

	// AssignerName is the display name of the assigner
	AssignerName string

	// TargetID is the member to be hunted
	TargetID string

	// TargetName is the display name of the target
	TargetName string

	// TargetMention is the markup that pings the target
	TargetMention string

	// ProofURL is the target's most recent proof photo, empty if none
	ProofURL string

	// IssuedAt is when the contract was issued
	IssuedAt time.Time

	// Delivered indicates the private notification went through
	Delivered bool
}

// ContractCycle is one completed run of the assignment job
type ContractCycle struct {
	// ID is the unique identifier for the cycle
	ID string

	// StartedAt is when the cycle began
	StartedAt time.Time

	// Contracts are the contracts issued by the cycle
	Contracts []*Contract
}

// ContractFor returns the contract issued to memberID in this cycle, or nil
func (c *ContractCycle) ContractFor(memberID string) *Contract {
	if c == nil {
		return nil
	}
	for _, contract := range c.Contracts {
		if contract.AssignerID == memberID {
			return contract
		}
	}
	return nil
}
