package contract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"testing"
	"time"

	"github.com/KirkDiggler/surety/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/surety/internal/common/uuid/mocks"
	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
	platformMocks "github.com/KirkDiggler/surety/internal/platform/mocks"
	"github.com/KirkDiggler/surety/internal/random"
	ledgerRepo "github.com/KirkDiggler/surety/internal/repositories/contract_ledger"
	ledgerMocks "github.com/KirkDiggler/surety/internal/repositories/contract_ledger/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testProofChannel = "pledge-and-surety"

type stubStates map[string]models.PlayerState

func (s stubStates) Snapshot() map[string]models.PlayerState {
	return maps.Clone(s)
}

// firstRoller never shuffles and always draws index 0
type firstRoller struct{}

func (firstRoller) Intn(int) int { return 0 }

func (firstRoller) Shuffle(int, func(i, j int)) {}

type ContractServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockGuild  *platformMocks.MockGuild
	mockLedger *ledgerMocks.MockRepository
	mockClock  *mocks.MockClock
	mockUUID   *uuidMocks.MockUUID
	ctx        context.Context

	testTime time.Time
	states   stubStates
	members  map[string]*models.Member
	posts    []*models.ProofPost
	sent     []*models.Contract
	uuids    int
}

func (s *ContractServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGuild = platformMocks.NewMockGuild(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.states = stubStates{}
	s.members = map[string]*models.Member{}
	s.posts = nil
	s.sent = nil
	s.uuids = 0

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.uuids++
		return fmt.Sprintf("uuid-%d", s.uuids)
	}).AnyTimes()
	s.mockGuild.EXPECT().ProofHistory(gomock.Any(), testProofChannel, DefaultHistoryLimit).
		DoAndReturn(func(context.Context, string, int) ([]*models.ProofPost, error) {
			return s.posts, nil
		}).AnyTimes()
	s.mockGuild.EXPECT().GetMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, memberID string) (*models.Member, error) {
			member, ok := s.members[memberID]
			if !ok {
				return nil, platform.ErrMemberNotFound
			}
			return member, nil
		}).AnyTimes()
}

func (s *ContractServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContractServiceSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}

func (s *ContractServiceTestSuite) newService(roller random.Roller) *service {
	svc, err := NewService(&Config{
		Guild:         s.mockGuild,
		States:        s.states,
		Ledger:        s.mockLedger,
		Roller:        roller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		ProofChannel:  testProofChannel,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	return svc
}

// enroll adds a guild member in state with a proof post
func (s *ContractServiceTestSuite) enroll(memberID string, state models.PlayerState) {
	s.states[memberID] = state
	s.members[memberID] = &models.Member{
		ID:          memberID,
		DisplayName: "name-" + memberID,
		Mention:     "<@" + memberID + ">",
	}
	s.posts = append(s.posts, &models.ProofPost{
		MessageID: "msg-" + memberID,
		AuthorID:  memberID,
		ImageURL:  "https://cdn.example/" + memberID + ".png",
		PostedAt:  s.testTime.Add(-time.Duration(len(s.posts)) * time.Minute),
	})
}

func (s *ContractServiceTestSuite) expectDeliveries() {
	s.mockGuild.EXPECT().SendContract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contract *models.Contract) error {
			s.sent = append(s.sent, contract)
			return nil
		}).AnyTimes()
}

func (s *ContractServiceTestSuite) expectSavedCycle() {
	s.mockLedger.EXPECT().SaveCycle(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *ContractServiceTestSuite) targetsByAssigner(cycle *models.ContractCycle) map[string]*models.Contract {
	out := make(map[string]*models.Contract)
	for _, contract := range cycle.Contracts {
		s.Require().NotContains(out, contract.AssignerID, "assigner received two contracts")
		out[contract.AssignerID] = contract
	}
	return out
}

func (s *ContractServiceTestSuite) TestNewValidation() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	valid := Config{
		Guild:         s.mockGuild,
		States:        s.states,
		Ledger:        s.mockLedger,
		Roller:        firstRoller{},
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		ProofChannel:  testProofChannel,
	}

	cases := map[error]func(cfg *Config){
		ErrNilGuild:          func(cfg *Config) { cfg.Guild = nil },
		ErrNilStateReader:    func(cfg *Config) { cfg.States = nil },
		ErrNilLedger:         func(cfg *Config) { cfg.Ledger = nil },
		ErrNilRoller:         func(cfg *Config) { cfg.Roller = nil },
		ErrNilClock:          func(cfg *Config) { cfg.Clock = nil },
		ErrNilUUIDGenerator:  func(cfg *Config) { cfg.UUIDGenerator = nil },
		ErrEmptyProofChannel: func(cfg *Config) { cfg.ProofChannel = "" },
	}
	for expected, mutate := range cases {
		cfg := valid
		mutate(&cfg)
		_, err := NewService(&cfg)
		s.ErrorIs(err, expected)
	}
}

func (s *ContractServiceTestSuite) TestRefreshKeepsNewestImagePerAuthor() {
	s.posts = []*models.ProofPost{
		{MessageID: "m4", AuthorID: "member-a", PostedAt: s.testTime},
		{MessageID: "m3", AuthorID: "member-a", ImageURL: "https://cdn.example/a-new.png", PostedAt: s.testTime.Add(-time.Minute)},
		{MessageID: "m2", AuthorID: "member-b", ImageURL: "https://cdn.example/b.png", PostedAt: s.testTime.Add(-2 * time.Minute)},
		{MessageID: "m1", AuthorID: "member-a", ImageURL: "https://cdn.example/a-old.png", PostedAt: s.testTime.Add(-3 * time.Minute)},
	}
	svc := s.newService(firstRoller{})

	output, err := svc.RefreshProofs(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, output.Scanned)
	s.Equal(2, output.Updated)
	s.Equal(2, output.Tracked)

	proof, err := svc.GetProof(s.ctx, &GetProofInput{MemberID: "member-a"})
	s.Require().NoError(err)
	s.Require().NotNil(proof.Proof)
	s.Equal("https://cdn.example/a-new.png", proof.Proof.URL)
	s.Equal("m3", proof.Proof.MessageID)

	// a rescan of the same history changes nothing
	output, err = svc.RefreshProofs(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, output.Updated)
}

func (s *ContractServiceTestSuite) TestRecordedProofSurvivesShorterHistory() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	svc := s.newService(firstRoller{})

	_, err := svc.RefreshProofs(s.ctx)
	s.Require().NoError(err)

	s.posts = nil
	output, err := svc.RefreshProofs(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Tracked)

	proof, err := svc.GetProof(s.ctx, &GetProofInput{MemberID: "member-a"})
	s.Require().NoError(err)
	s.NotNil(proof.Proof)

	proof, err = svc.GetProof(s.ctx, &GetProofInput{MemberID: "member-z"})
	s.Require().NoError(err)
	s.Nil(proof.Proof)

	_, err = svc.GetProof(s.ctx, &GetProofInput{})
	s.ErrorIs(err, ErrEmptyMemberID)
}

func (s *ContractServiceTestSuite) TestSkipsCycleWithFewerThanTwoEligibleMembers() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	// no proof
	s.states["member-b"] = models.PlayerStateActiveMember
	s.members["member-b"] = &models.Member{ID: "member-b"}
	svc := s.newService(firstRoller{})

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)
	s.True(output.Skipped)
	s.Nil(output.Cycle)
	s.Equal(1, output.ActiveCohort)
}

func (s *ContractServiceTestSuite) TestPoolExhaustionAbortsWithoutNotifications() {
	for _, id := range []string{"new-1", "new-2", "new-3"} {
		s.enroll(id, models.PlayerStateNewMember)
	}
	for _, id := range []string{"active-1", "active-2"} {
		s.enroll(id, models.PlayerStateActiveMember)
	}
	svc := s.newService(random.New(&random.Config{Seed: 7}))

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.ErrorIs(err, ErrTargetPoolExhausted)
	s.Nil(output)
	s.Empty(s.sent)
}

func (s *ContractServiceTestSuite) TestNewMembersGetDistinctTargets() {
	for seed := int64(1); seed <= 25; seed++ {
		s.SetupTest()
		s.enroll("member-a", models.PlayerStateNewMember)
		s.enroll("member-b", models.PlayerStateNewMember)
		for _, id := range []string{"member-x", "member-y", "member-z"} {
			s.enroll(id, models.PlayerStateActiveMember)
		}
		s.expectDeliveries()
		s.expectSavedCycle()
		svc := s.newService(random.New(&random.Config{Seed: seed}))

		output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
		s.Require().NoError(err)
		s.Require().Len(output.Cycle.Contracts, 5)

		contracts := s.targetsByAssigner(output.Cycle)
		a, b := contracts["member-a"], contracts["member-b"]
		s.Require().NotNil(a)
		s.Require().NotNil(b)
		s.Equal(models.ContractKindUnique, a.Kind)
		s.NotEqual(a.TargetID, b.TargetID, "seed %d", seed)
		s.Contains([]string{"member-x", "member-y", "member-z"}, a.TargetID)
		s.Contains([]string{"member-x", "member-y", "member-z"}, b.TargetID)

		for _, contract := range output.Cycle.Contracts {
			s.NotEqual(contract.AssignerID, contract.TargetID, "seed %d", seed)
		}
	}
}

func (s *ContractServiceTestSuite) TestActiveMembersMayShareTargets() {
	s.enroll("member-p", models.PlayerStateActiveMember)
	s.enroll("member-q", models.PlayerStateActiveMember)
	s.expectDeliveries()
	s.expectSavedCycle()
	svc := s.newService(random.New(&random.Config{Seed: 3}))

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)

	contracts := s.targetsByAssigner(output.Cycle)
	s.Equal("member-q", contracts["member-p"].TargetID)
	s.Equal("member-p", contracts["member-q"].TargetID)
	s.Equal(models.ContractKindShared, contracts["member-p"].Kind)
	s.Equal(2, output.Delivered)
	s.Len(s.sent, 2)
}

func (s *ContractServiceTestSuite) TestNeverAssignsSelf() {
	compositions := []struct{ newMembers, activeMembers int }{
		{0, 2}, {1, 1}, {1, 3}, {2, 2}, {3, 5}, {0, 6},
	}
	for _, composition := range compositions {
		for seed := int64(1); seed <= 10; seed++ {
			s.SetupTest()
			for i := 0; i < composition.newMembers; i++ {
				s.enroll(fmt.Sprintf("new-%d", i), models.PlayerStateNewMember)
			}
			for i := 0; i < composition.activeMembers; i++ {
				s.enroll(fmt.Sprintf("active-%d", i), models.PlayerStateActiveMember)
			}
			s.expectDeliveries()
			s.expectSavedCycle()
			svc := s.newService(random.New(&random.Config{Seed: seed}))

			output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
			s.Require().NoError(err)
			for _, contract := range output.Cycle.Contracts {
				s.NotEqual(contract.AssignerID, contract.TargetID)
			}
		}
	}
}

func (s *ContractServiceTestSuite) TestLoneActiveMemberOnlyServesAsTarget() {
	s.enroll("member-new", models.PlayerStateNewMember)
	s.enroll("member-active", models.PlayerStateActiveMember)
	s.expectDeliveries()
	s.expectSavedCycle()
	svc := s.newService(firstRoller{})

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Cycle.Contracts, 1)
	s.Equal("member-new", output.Cycle.Contracts[0].AssignerID)
	s.Equal("member-active", output.Cycle.Contracts[0].TargetID)
}

func (s *ContractServiceTestSuite) TestContractCarriesTargetIdentityAndProof() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	s.enroll("member-b", models.PlayerStateActiveMember)
	s.expectDeliveries()

	var saved *models.ContractCycle
	s.mockLedger.EXPECT().SaveCycle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.SaveCycleInput) error {
			saved = input.Cycle
			return nil
		})
	svc := s.newService(firstRoller{})

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)
	s.Same(output.Cycle, saved)
	s.Equal("uuid-1", saved.ID)
	s.True(s.testTime.Equal(saved.StartedAt))

	contract := saved.ContractFor("member-a")
	s.Require().NotNil(contract)
	s.Equal("uuid-1", contract.CycleID)
	s.Equal("member-b", contract.TargetID)
	s.Equal("name-member-b", contract.TargetName)
	s.Equal("<@member-b>", contract.TargetMention)
	s.Equal("https://cdn.example/member-b.png", contract.ProofURL)
	s.Equal("name-member-a", contract.AssignerName)
	s.True(contract.Delivered)
}

func (s *ContractServiceTestSuite) TestDeliveryFailureDoesNotBlockOthers() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	s.enroll("member-b", models.PlayerStateActiveMember)
	s.enroll("member-c", models.PlayerStateActiveMember)
	s.mockGuild.EXPECT().SendContract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contract *models.Contract) error {
			if contract.AssignerID == "member-b" {
				return platform.ErrRecipientUnreachable
			}
			s.sent = append(s.sent, contract)
			return nil
		}).Times(3)
	s.expectSavedCycle()
	svc := s.newService(firstRoller{})

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Delivered)
	s.Equal(1, output.Undelivered)
	s.False(output.Cycle.ContractFor("member-b").Delivered)
}

func (s *ContractServiceTestSuite) TestIneligibleMembersAreExcluded() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	s.enroll("member-b", models.PlayerStateActiveMember)
	s.enroll("member-default", models.PlayerStateDefault)
	s.enroll("member-out", models.PlayerStateEliminated)
	s.enroll("member-bot", models.PlayerStateActiveMember)
	s.members["member-bot"].IsBot = true
	s.enroll("member-left", models.PlayerStateNewMember)
	delete(s.members, "member-left")
	s.expectDeliveries()
	s.expectSavedCycle()
	svc := s.newService(random.New(&random.Config{Seed: 11}))

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)
	s.Equal(0, output.NewCohort)
	s.Equal(2, output.ActiveCohort)

	for _, contract := range output.Cycle.Contracts {
		s.Contains([]string{"member-a", "member-b"}, contract.AssignerID)
		s.Contains([]string{"member-a", "member-b"}, contract.TargetID)
	}
}

func (s *ContractServiceTestSuite) TestMemberLookupWithoutMemberIsSkipped() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	s.enroll("member-b", models.PlayerStateActiveMember)
	s.enroll("member-c", models.PlayerStateActiveMember)
	s.members["member-c"] = nil
	s.expectDeliveries()
	s.expectSavedCycle()
	svc := s.newService(firstRoller{})

	var output *DistributeContractsOutput
	s.Require().NotPanics(func() {
		var err error
		output, err = svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
		s.Require().NoError(err)
	})
	s.Equal(2, output.ActiveCohort)
	s.Nil(output.Cycle.ContractFor("member-c"))
	for _, contract := range output.Cycle.Contracts {
		s.NotEqual("member-c", contract.TargetID)
	}
}

func (s *ContractServiceTestSuite) TestFailedRefreshUsesRecordedProofs() {
	failing := platformMocks.NewMockGuild(s.mockCtrl)
	s.mockGuild = failing
	failing.EXPECT().ProofHistory(gomock.Any(), testProofChannel, DefaultHistoryLimit).
		Return([]*models.ProofPost{
			{MessageID: "m1", AuthorID: "member-a", ImageURL: "https://cdn.example/a.png", PostedAt: s.testTime},
			{MessageID: "m2", AuthorID: "member-b", ImageURL: "https://cdn.example/b.png", PostedAt: s.testTime},
		}, nil)
	failing.EXPECT().ProofHistory(gomock.Any(), testProofChannel, DefaultHistoryLimit).
		Return(nil, errors.New("gateway timeout"))
	failing.EXPECT().GetMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, memberID string) (*models.Member, error) {
			return &models.Member{ID: memberID}, nil
		}).AnyTimes()
	failing.EXPECT().SendContract(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.expectSavedCycle()

	s.states["member-a"] = models.PlayerStateActiveMember
	s.states["member-b"] = models.PlayerStateActiveMember
	svc := s.newService(firstRoller{})

	_, err := svc.RefreshProofs(s.ctx)
	s.Require().NoError(err)

	output, err := svc.DistributeContracts(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(output.Cycle.Contracts, 2)
}

func (s *ContractServiceTestSuite) TestLedgerFailureStillCompletesCycle() {
	s.enroll("member-a", models.PlayerStateActiveMember)
	s.enroll("member-b", models.PlayerStateActiveMember)
	s.expectDeliveries()
	s.mockLedger.EXPECT().SaveCycle(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	svc := s.newService(firstRoller{})

	output, err := svc.DistributeContracts(s.ctx, &DistributeContractsInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Delivered)
}

func (s *ContractServiceTestSuite) TestGetActiveContract() {
	cycle := &models.ContractCycle{
		ID:        "cycle-1",
		StartedAt: s.testTime,
		Contracts: []*models.Contract{
			{ID: "c-1", CycleID: "cycle-1", AssignerID: "member-a", TargetID: "member-b"},
		},
	}
	s.mockLedger.EXPECT().GetLatestCycle(gomock.Any()).Return(cycle, nil).Times(2)
	svc := s.newService(firstRoller{})

	output, err := svc.GetActiveContract(s.ctx, &GetActiveContractInput{MemberID: "member-a"})
	s.Require().NoError(err)
	s.Equal("cycle-1", output.CycleID)
	s.Equal("member-b", output.Contract.TargetID)

	_, err = svc.GetActiveContract(s.ctx, &GetActiveContractInput{MemberID: "member-b"})
	s.ErrorIs(err, ErrNoActiveContract)

	_, err = svc.GetActiveContract(s.ctx, &GetActiveContractInput{})
	s.ErrorIs(err, ErrEmptyMemberID)
}

func (s *ContractServiceTestSuite) TestGetActiveContractWithoutCycles() {
	s.mockLedger.EXPECT().GetLatestCycle(gomock.Any()).Return(nil, ledgerRepo.ErrCycleNotFound)
	s.mockLedger.EXPECT().GetLatestCycle(gomock.Any()).Return(nil, errors.New("redis down"))
	svc := s.newService(firstRoller{})

	_, err := svc.GetActiveContract(s.ctx, &GetActiveContractInput{MemberID: "member-a"})
	s.ErrorIs(err, ErrNoActiveContract)

	_, err = svc.GetActiveContract(s.ctx, &GetActiveContractInput{MemberID: "member-a"})
	s.Error(err)
	s.NotErrorIs(err, ErrNoActiveContract)
}

func (s *ContractServiceTestSuite) TestListCyclesAppliesDefaultAndCap() {
	cycles := []*models.ContractCycle{{ID: "cycle-2"}, {ID: "cycle-1"}}
	s.mockLedger.EXPECT().ListCycles(gomock.Any(), &ledgerRepo.ListCyclesInput{Limit: DefaultCycleListLimit}).
		Return(&ledgerRepo.ListCyclesOutput{Cycles: cycles}, nil)
	s.mockLedger.EXPECT().ListCycles(gomock.Any(), &ledgerRepo.ListCyclesInput{Limit: MaxCycleListLimit}).
		Return(&ledgerRepo.ListCyclesOutput{Cycles: cycles}, nil)
	s.mockLedger.EXPECT().ListCycles(gomock.Any(), &ledgerRepo.ListCyclesInput{Limit: 2}).
		Return(nil, errors.New("redis down"))
	svc := s.newService(firstRoller{})

	output, err := svc.ListCycles(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(cycles, output.Cycles)

	_, err = svc.ListCycles(s.ctx, &ListCyclesInput{Limit: 500})
	s.Require().NoError(err)

	_, err = svc.ListCycles(s.ctx, &ListCyclesInput{Limit: 2})
	s.Error(err)
}
