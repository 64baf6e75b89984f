package contract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/surety/internal/common/clock"
	"github.com/KirkDiggler/surety/internal/common/uuid"
	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
	"github.com/KirkDiggler/surety/internal/random"
	ledgerRepo "github.com/KirkDiggler/surety/internal/repositories/contract_ledger"
)

const (
	// DefaultHistoryLimit is how many proof channel posts a refresh scans
	DefaultHistoryLimit = 1000

	// DefaultCycleListLimit is how many cycles ListCycles returns by default
	DefaultCycleListLimit = 5

	// MaxCycleListLimit caps ListCycles
	MaxCycleListLimit = 25
)

// Config holds configuration for the contract broker
type Config struct {
	// Guild looks up members, reads the proof channel and delivers contracts
	Guild platform.Guild

	// States is read once per cycle to build the cohorts
	States StateReader

	// Ledger records completed cycles
	Ledger ledgerRepo.Repository

	// Roller shuffles the pool and draws targets
	Roller random.Roller

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// ProofChannel is the channel name scanned for proof posts
	ProofChannel string

	// HistoryLimit caps the posts scanned per refresh, defaults to DefaultHistoryLimit
	HistoryLimit int

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// service implements the Service interface
type service struct {
	guild         platform.Guild
	states        StateReader
	ledger        ledgerRepo.Repository
	roller        random.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	proofChannel  string
	historyLimit  int
	logger        *slog.Logger

	// cycleMu serializes cycles and refreshes. lastProof is only written
	// with both cycleMu and proofMu held, so lookups outside a cycle need
	// only proofMu.
	cycleMu   sync.Mutex
	proofMu   sync.RWMutex
	lastProof map[string]*models.Proof
}

// NewService creates a new contract broker
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Guild == nil {
		return nil, ErrNilGuild
	}
	if cfg.States == nil {
		return nil, ErrNilStateReader
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.ProofChannel == "" {
		return nil, ErrEmptyProofChannel
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		guild:         cfg.Guild,
		states:        cfg.States,
		ledger:        cfg.Ledger,
		roller:        cfg.Roller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		proofChannel:  cfg.ProofChannel,
		historyLimit:  historyLimit,
		logger:        logger,
		lastProof:     make(map[string]*models.Proof),
	}, nil
}

// RefreshProofs records the newest image per author from the proof channel
func (s *service) RefreshProofs(ctx context.Context) (*RefreshProofsOutput, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	return s.refreshLocked(ctx)
}

// refreshLocked expects cycleMu to be held
func (s *service) refreshLocked(ctx context.Context) (*RefreshProofsOutput, error) {
	posts, err := s.guild.ProofHistory(ctx, s.proofChannel, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof history: %w", err)
	}

	output := &RefreshProofsOutput{Scanned: len(posts)}
	seen := make(map[string]bool)

	// Posts arrive newest first, so the first image per author is the one to keep
	for _, post := range posts {
		if !post.HasImage() || post.AuthorID == "" || seen[post.AuthorID] {
			continue
		}
		seen[post.AuthorID] = true

		existing, ok := s.lastProof[post.AuthorID]
		if ok && (existing.MessageID == post.MessageID || post.PostedAt.Before(existing.PostedAt)) {
			continue
		}

		s.proofMu.Lock()
		s.lastProof[post.AuthorID] = &models.Proof{
			MemberID:  post.AuthorID,
			URL:       post.ImageURL,
			MessageID: post.MessageID,
			PostedAt:  post.PostedAt,
		}
		s.proofMu.Unlock()
		output.Updated++
	}

	output.Tracked = len(s.lastProof)
	return output, nil
}

// DistributeContracts runs one cycle. A unique pass gives every new member a
// target no other new member holds; a shared pass gives every active member
// any other active member. Exhausting the unique pool aborts the whole cycle
// before anything is sent.
func (s *service) DistributeContracts(ctx context.Context, input *DistributeContractsInput) (*DistributeContractsOutput, error) {
	if input == nil {
		input = &DistributeContractsInput{}
	}

	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	if !input.SkipRefresh {
		// Recorded proofs are never cleared, so a failed scan still leaves a usable set
		if _, err := s.refreshLocked(ctx); err != nil {
			s.logger.Warn("proof refresh failed, using recorded proofs", "channel", s.proofChannel, "error", err)
		}
	}

	newCohort, activeCohort := s.buildCohorts(ctx)
	output := &DistributeContractsOutput{
		NewCohort:    len(newCohort),
		ActiveCohort: len(activeCohort),
	}

	if len(newCohort)+len(activeCohort) < 2 {
		output.Skipped = true
		s.logger.Info("not enough eligible members for a contract cycle",
			"new", len(newCohort), "active", len(activeCohort))
		return output, nil
	}

	pool := make([]*models.Member, len(activeCohort))
	copy(pool, activeCohort)
	s.roller.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	now := s.clock.Now()
	cycle := &models.ContractCycle{
		ID:        s.uuidGenerator.NewUUID(),
		StartedAt: now,
	}

	remaining := make([]*models.Member, len(pool))
	copy(remaining, pool)
	for _, assigner := range newCohort {
		target, index, ok := random.Pick(s.roller, remaining)
		if !ok {
			s.logger.Warn("contract cycle aborted: target pool exhausted",
				"new", len(newCohort), "active", len(activeCohort))
			return nil, fmt.Errorf("%w: %d new members, %d targets", ErrTargetPoolExhausted, len(newCohort), len(pool))
		}
		remaining = append(remaining[:index], remaining[index+1:]...)
		cycle.Contracts = append(cycle.Contracts, s.newContract(cycle, models.ContractKindUnique, assigner, target))
	}

	// TODO: exclude targets already claimed by the unique pass once the
	// active cohort is large enough to spare them
	for _, assigner := range activeCohort {
		candidates := make([]*models.Member, 0, len(pool))
		for _, member := range pool {
			if member.ID != assigner.ID {
				candidates = append(candidates, member)
			}
		}

		target, _, ok := random.Pick(s.roller, candidates)
		if !ok {
			s.logger.Info("no target available for active member", "member", assigner.ID)
			continue
		}
		cycle.Contracts = append(cycle.Contracts, s.newContract(cycle, models.ContractKindShared, assigner, target))
	}

	for _, contract := range cycle.Contracts {
		if err := s.guild.SendContract(ctx, contract); err != nil {
			output.Undelivered++
			s.logger.Warn("failed to deliver contract",
				"recipient", contract.AssignerID, "target", contract.TargetID, "error", err)
			continue
		}
		contract.Delivered = true
		output.Delivered++
	}

	if err := s.ledger.SaveCycle(ctx, &ledgerRepo.SaveCycleInput{Cycle: cycle}); err != nil {
		s.logger.Warn("failed to record contract cycle", "cycle", cycle.ID, "error", err)
	}

	s.logger.Info("contract cycle complete",
		"cycle", cycle.ID,
		"contracts", len(cycle.Contracts),
		"delivered", output.Delivered,
		"undelivered", output.Undelivered)

	output.Cycle = cycle
	return output, nil
}

// GetActiveContract returns the member's contract from the latest recorded cycle
func (s *service) GetActiveContract(ctx context.Context, input *GetActiveContractInput) (*GetActiveContractOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}

	cycle, err := s.ledger.GetLatestCycle(ctx)
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrCycleNotFound) {
			return nil, ErrNoActiveContract
		}
		return nil, fmt.Errorf("failed to get latest cycle: %w", err)
	}

	contract := cycle.ContractFor(input.MemberID)
	if contract == nil {
		return nil, ErrNoActiveContract
	}

	return &GetActiveContractOutput{
		Contract: contract,
		CycleID:  cycle.ID,
	}, nil
}

// ListCycles returns recent cycles from the ledger, newest first
func (s *service) ListCycles(ctx context.Context, input *ListCyclesInput) (*ListCyclesOutput, error) {
	limit := DefaultCycleListLimit
	if input != nil && input.Limit > 0 {
		limit = min(input.Limit, MaxCycleListLimit)
	}

	output, err := s.ledger.ListCycles(ctx, &ledgerRepo.ListCyclesInput{Limit: int64(limit)})
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	return &ListCyclesOutput{Cycles: output.Cycles}, nil
}

// GetProof returns a copy of the member's recorded proof
func (s *service) GetProof(ctx context.Context, input *GetProofInput) (*GetProofOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrEmptyMemberID
	}

	s.proofMu.RLock()
	defer s.proofMu.RUnlock()

	proof, ok := s.lastProof[input.MemberID]
	if !ok {
		return &GetProofOutput{}, nil
	}
	copied := *proof
	return &GetProofOutput{Proof: &copied}, nil
}

// buildCohorts returns the eligible new and active members ordered by ID.
// Eligible members have recorded proof and can still be found in the guild.
func (s *service) buildCohorts(ctx context.Context) (newCohort, activeCohort []*models.Member) {
	snapshot := s.states.Snapshot()

	memberIDs := make([]string, 0, len(snapshot))
	for memberID := range snapshot {
		memberIDs = append(memberIDs, memberID)
	}
	sort.Strings(memberIDs)

	for _, memberID := range memberIDs {
		state := snapshot[memberID]
		if state != models.PlayerStateNewMember && state != models.PlayerStateActiveMember {
			continue
		}
		if _, ok := s.lastProof[memberID]; !ok {
			continue
		}

		member, err := s.guild.GetMember(ctx, memberID)
		if err != nil {
			if !errors.Is(err, platform.ErrMemberNotFound) {
				s.logger.Warn("failed to look up member", "member", memberID, "error", err)
			}
			continue
		}
		if member == nil || member.IsBot {
			continue
		}

		if state == models.PlayerStateNewMember {
			newCohort = append(newCohort, member)
		} else {
			activeCohort = append(activeCohort, member)
		}
	}

	return newCohort, activeCohort
}

func (s *service) newContract(cycle *models.ContractCycle, kind models.ContractKind, assigner, target *models.Member) *models.Contract {
	contract := &models.Contract{
		ID:            s.uuidGenerator.NewUUID(),
		CycleID:       cycle.ID,
		Kind:          kind,
		AssignerID:    assigner.ID,
		AssignerName:  assigner.DisplayName,
		TargetID:      target.ID,
		TargetName:    target.DisplayName,
		TargetMention: target.Mention,
		IssuedAt:      cycle.StartedAt,
	}
	if proof, ok := s.lastProof[target.ID]; ok {
		contract.ProofURL = proof.URL
	}
	return contract
}
