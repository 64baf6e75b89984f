package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/random"
	"github.com/KirkDiggler/surety/internal/services/contract"
	contractMocks "github.com/KirkDiggler/surety/internal/services/contract/mocks"
	"github.com/KirkDiggler/surety/internal/services/messaging"
	"github.com/KirkDiggler/surety/internal/services/roles"
	rolesMocks "github.com/KirkDiggler/surety/internal/services/roles/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testInteractionID = "interaction-1"
	testToken         = "token-1"
	testAppID         = "app-1"
)

type CommandTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRoles     *rolesMocks.MockService
	mockContracts *contractMocks.MockService
	discord       *fakeDiscord
	session       *discordgo.Session
	stateCmd      *StateCommand
	contractsCmd  *ContractsCommand

	// last interaction callback and deferred edit bodies
	response *discordgo.InteractionResponse
	edit     *discordgo.WebhookEdit
}

func (s *CommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoles = rolesMocks.NewMockService(s.ctrl)
	s.mockContracts = contractMocks.NewMockService(s.ctrl)
	s.discord = newFakeDiscord()
	s.session = newTestSession(s.discord)
	s.response = nil
	s.edit = nil

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: random.New(&random.Config{Seed: 42}),
	})
	s.Require().NoError(err)

	s.stateCmd = NewStateCommand(s.mockRoles, messagingService, testGuildID, nil)
	s.contractsCmd = NewContractsCommand(s.mockContracts, messagingService, nil)

	s.discord.on(http.MethodPost, apiPath("interactions", testInteractionID, testToken, "callback"),
		func(req *http.Request) (int, any) {
			s.response = &discordgo.InteractionResponse{}
			s.Require().NoError(json.NewDecoder(req.Body).Decode(s.response))
			return http.StatusNoContent, nil
		})
	s.discord.on(http.MethodPatch, apiPath("webhooks", testAppID, testToken, "messages", "@original"),
		func(req *http.Request) (int, any) {
			s.edit = &discordgo.WebhookEdit{}
			s.Require().NoError(json.NewDecoder(req.Body).Decode(s.edit))
			return http.StatusOK, map[string]any{"id": "msg-1"}
		})
}

func (s *CommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CommandTestSuite) interaction(command string, permissions int64, sub *discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      testInteractionID,
			AppID:   testAppID,
			Token:   testToken,
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: testGuildID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    command,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{sub},
			},
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: "mod-1", Username: "mod"},
				Permissions: permissions,
			},
		},
	}
}

func subcommand(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

func userOption(name, userID string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: userID,
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func (s *CommandTestSuite) TestStateCommandDefinition() {
	cmd := s.stateCmd.GetCommand()
	s.Equal("state", cmd.Name)
	s.Require().Len(cmd.Options, 3)

	set := cmd.Options[0]
	s.Equal("set", set.Name)
	s.Require().Len(set.Options, 2)
	s.Len(set.Options[1].Choices, len(models.PlayerStates()))
}

func (s *CommandTestSuite) TestStateSetRequiresManageRoles() {
	i := s.interaction("state", discordgo.PermissionSendMessages,
		subcommand("set", userOption("member", "u2"), stringOption("state", "Active Member")))

	s.Require().NoError(s.stateCmd.Handle(s.session, i))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.MessageFlagsEphemeral, s.response.Data.Flags)
	s.Require().Len(s.response.Data.Embeds, 1)
	s.Contains(s.response.Data.Embeds[0].Description, "Manage Roles")
}

func (s *CommandTestSuite) TestStateSetOverridesMember() {
	s.mockRoles.EXPECT().SetMemberState(gomock.Any(), &roles.SetMemberStateInput{
		MemberID:  "u2",
		StateName: "Active Member",
	}).Return(&roles.TransitionOutput{
		MemberID: "u2",
		Previous: models.PlayerStateNewMember,
		Current:  models.PlayerStateActiveMember,
	}, nil)

	i := s.interaction("state", discordgo.PermissionManageRoles,
		subcommand("set", userOption("member", "u2"), stringOption("state", "Active Member")))

	s.Require().NoError(s.stateCmd.Handle(s.session, i))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.response.Type)
	s.Require().NotNil(s.edit)
	s.Require().NotNil(s.edit.Content)
	s.Equal("Set <@u2> to Active Member state", *s.edit.Content)
}

func (s *CommandTestSuite) TestStateSetDefersBeforeChangingBadges() {
	s.mockRoles.EXPECT().SetMemberState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roles.SetMemberStateInput) (*roles.TransitionOutput, error) {
			s.Require().NotNil(s.response, "interaction acknowledged before badges change")
			s.Nil(s.edit)
			return &roles.TransitionOutput{MemberID: input.MemberID, Current: models.PlayerStateEliminated}, nil
		})

	i := s.interaction("state", discordgo.PermissionManageRoles,
		subcommand("set", userOption("member", "u2"), stringOption("state", "Eliminated")))

	s.Require().NoError(s.stateCmd.Handle(s.session, i))
	s.NotNil(s.edit)
}

func (s *CommandTestSuite) TestStateSetFailureEditsDeferredResponse() {
	s.mockRoles.EXPECT().SetMemberState(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))

	i := s.interaction("state", discordgo.PermissionManageRoles,
		subcommand("set", userOption("member", "u2"), stringOption("state", "Eliminated")))

	s.Require().NoError(s.stateCmd.Handle(s.session, i))

	s.Require().NotNil(s.edit)
	s.Require().NotNil(s.edit.Embeds)
	embeds := *s.edit.Embeds
	s.Require().Len(embeds, 1)
	s.Equal("Error", embeds[0].Title)
	s.Contains(embeds[0].Description, "gateway timeout")
}

func (s *CommandTestSuite) TestStateSetUnknownState() {
	s.mockRoles.EXPECT().SetMemberState(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %q", roles.ErrUnknownState, "Ghost"))

	i := s.interaction("state", discordgo.PermissionAdministrator,
		subcommand("set", userOption("member", "u2"), stringOption("state", "Ghost")))

	s.Require().NoError(s.stateCmd.Handle(s.session, i))

	s.Require().NotNil(s.edit)
	s.Require().NotNil(s.edit.Embeds)
	embeds := *s.edit.Embeds
	s.Require().Len(embeds, 1)
	s.Contains(embeds[0].Description, "/state list")
}

func (s *CommandTestSuite) TestStateList() {
	s.mockRoles.EXPECT().ListStates(gomock.Any()).Return(&roles.ListStatesOutput{
		States: []*roles.StateSummary{
			{Name: models.PlayerStateDefault, Badges: []string{testGuildID}, IsDefault: true,
				Rules: []roles.RuleSummary{{Event: "Message", Description: "proof posted in #pledge-and-surety"}}},
			{Name: models.PlayerStateNewMember, Badges: []string{testGuildID, "role-new"}},
		},
	}, nil)

	s.Require().NoError(s.stateCmd.Handle(s.session, s.interaction("state", 0, subcommand("list"))))

	s.Require().NotNil(s.response)
	s.Require().Len(s.response.Data.Embeds, 1)
	fields := s.response.Data.Embeds[0].Fields
	s.Require().Len(fields, 2)
	s.Equal("Default (default)", fields[0].Name)
	s.Contains(fields[0].Value, "@everyone")
	s.Contains(fields[0].Value, "proof posted")
	s.Contains(fields[1].Value, "<@&role-new>")
}

func (s *CommandTestSuite) TestStateShowDefaultsToInvoker() {
	entered := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockRoles.EXPECT().GetMemberState(gomock.Any(), &roles.GetMemberStateInput{MemberID: "mod-1"}).
		Return(&roles.GetMemberStateOutput{
			State:     models.PlayerStateNewMember,
			Resolved:  true,
			EnteredAt: entered,
			Activity:  &models.Activity{MemberID: "mod-1", MessageCount: 3},
		}, nil)

	s.Require().NoError(s.stateCmd.Handle(s.session, s.interaction("state", 0, subcommand("show"))))

	s.Require().NotNil(s.response)
	s.Require().Len(s.response.Data.Embeds, 1)
	fields := s.response.Data.Embeds[0].Fields
	s.Require().Len(fields, 3)
	s.Equal("New Member", fields[0].Value)
	s.Equal(fmt.Sprintf("<t:%d:R>", entered.Unix()), fields[1].Value)
	s.Equal("3", fields[2].Value)
}

func (s *CommandTestSuite) TestStateShowUnresolved() {
	s.mockRoles.EXPECT().GetMemberState(gomock.Any(), &roles.GetMemberStateInput{MemberID: "u5"}).
		Return(&roles.GetMemberStateOutput{}, nil)

	s.Require().NoError(s.stateCmd.Handle(s.session,
		s.interaction("state", 0, subcommand("show", userOption("member", "u5")))))

	s.Require().NotNil(s.response)
	s.Require().Len(s.response.Data.Embeds, 1)
	s.Contains(s.response.Data.Embeds[0].Description, "state")
}

func (s *CommandTestSuite) TestContractsMine() {
	s.mockContracts.EXPECT().GetActiveContract(gomock.Any(), &contract.GetActiveContractInput{MemberID: "mod-1"}).
		Return(&contract.GetActiveContractOutput{
			CycleID: "cycle-1",
			Contract: &models.Contract{
				ID:            "c1",
				Kind:          models.ContractKindShared,
				AssignerID:    "mod-1",
				TargetID:      "u2",
				TargetName:    "bob",
				TargetMention: "<@u2>",
				ProofURL:      "https://cdn/u2.png",
			},
		}, nil)

	s.Require().NoError(s.contractsCmd.Handle(s.session, s.interaction("contracts", 0, subcommand("mine"))))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.MessageFlagsEphemeral, s.response.Data.Flags)
	s.Require().Len(s.response.Data.Embeds, 1)
	embed := s.response.Data.Embeds[0]
	s.Equal("bob (<@u2>)", embed.Fields[0].Value)
	s.Require().NotNil(embed.Image)
	s.Equal("https://cdn/u2.png", embed.Image.URL)
}

func (s *CommandTestSuite) TestContractsMineWithoutContract() {
	s.mockContracts.EXPECT().GetActiveContract(gomock.Any(), gomock.Any()).Return(nil, contract.ErrNoActiveContract)

	s.Require().NoError(s.contractsCmd.Handle(s.session, s.interaction("contracts", 0, subcommand("mine"))))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.MessageFlagsEphemeral, s.response.Data.Flags)
	s.Require().Len(s.response.Data.Embeds, 1)
	s.Equal("Error", s.response.Data.Embeds[0].Title)
}

func (s *CommandTestSuite) TestContractsDistributeRequiresAdministrator() {
	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", discordgo.PermissionManageRoles, subcommand("distribute"))))

	s.Require().NotNil(s.response)
	s.Nil(s.edit)
}

func (s *CommandTestSuite) TestContractsDistributeSummarizesCycle() {
	s.mockContracts.EXPECT().DistributeContracts(gomock.Any(), &contract.DistributeContractsInput{}).
		Return(&contract.DistributeContractsOutput{
			Cycle: &models.ContractCycle{
				ID:        "cycle-1",
				Contracts: []*models.Contract{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
			},
			NewCohort:    1,
			ActiveCohort: 2,
			Delivered:    2,
			Undelivered:  1,
		}, nil)

	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", discordgo.PermissionAdministrator, subcommand("distribute"))))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.response.Type)
	s.Require().NotNil(s.edit)
	s.Require().NotNil(s.edit.Embeds)
	embeds := *s.edit.Embeds
	s.Require().Len(embeds, 1)
	s.Equal("Contracts Distributed", embeds[0].Title)
	s.Contains(embeds[0].Description, "Issued 3 contract(s) to 1 new and 2 active member(s).")
	s.Contains(embeds[0].Description, "1 could not be delivered")
}

func (s *CommandTestSuite) TestContractsDistributePoolExhausted() {
	s.mockContracts.EXPECT().DistributeContracts(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("cycle aborted: %w", contract.ErrTargetPoolExhausted))

	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", discordgo.PermissionAdministrator, subcommand("distribute"))))

	s.Require().NotNil(s.edit)
	s.Require().NotNil(s.edit.Embeds)
	embeds := *s.edit.Embeds
	s.Require().Len(embeds, 1)
	s.Equal("Error", embeds[0].Title)
	s.Contains(embeds[0].Description, "new member")
}

func (s *CommandTestSuite) TestContractsDistributeUnexpectedFailure() {
	s.mockContracts.EXPECT().DistributeContracts(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", discordgo.PermissionAdministrator, subcommand("distribute"))))

	s.Require().NotNil(s.edit)
	embeds := *s.edit.Embeds
	s.Contains(embeds[0].Description, "redis down")
}

func (s *CommandTestSuite) TestContractsProofDefaultsToInvoker() {
	postedAt := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockContracts.EXPECT().GetProof(gomock.Any(), &contract.GetProofInput{MemberID: "mod-1"}).
		Return(&contract.GetProofOutput{Proof: &models.Proof{
			MemberID:  "mod-1",
			URL:       "https://cdn/mod.png",
			MessageID: "m1",
			PostedAt:  postedAt,
		}}, nil)

	s.Require().NoError(s.contractsCmd.Handle(s.session, s.interaction("contracts", 0, subcommand("proof"))))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.MessageFlagsEphemeral, s.response.Data.Flags)
	s.Require().Len(s.response.Data.Embeds, 1)
	embed := s.response.Data.Embeds[0]
	s.Require().NotNil(embed.Image)
	s.Equal("https://cdn/mod.png", embed.Image.URL)
	s.Contains(embed.Description, fmt.Sprintf("<t:%d:R>", postedAt.Unix()))
}

func (s *CommandTestSuite) TestContractsProofMissing() {
	s.mockContracts.EXPECT().GetProof(gomock.Any(), &contract.GetProofInput{MemberID: "u2"}).
		Return(&contract.GetProofOutput{}, nil)

	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", 0, subcommand("proof", userOption("member", "u2")))))

	s.Require().NotNil(s.response)
	s.Require().Len(s.response.Data.Embeds, 1)
	s.Equal("Error", s.response.Data.Embeds[0].Title)
	s.Contains(s.response.Data.Embeds[0].Description, "proof channel")
}

func (s *CommandTestSuite) TestContractsRefreshRequiresAdministrator() {
	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", discordgo.PermissionManageRoles, subcommand("refresh"))))

	s.Require().NotNil(s.response)
	s.Nil(s.edit)
}

func (s *CommandTestSuite) TestContractsRefreshSummarizesScan() {
	s.mockContracts.EXPECT().RefreshProofs(gomock.Any()).
		Return(&contract.RefreshProofsOutput{Scanned: 40, Updated: 3, Tracked: 12}, nil)

	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", discordgo.PermissionAdministrator, subcommand("refresh"))))

	s.Require().NotNil(s.response)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.response.Type)
	s.Require().NotNil(s.edit)
	embeds := *s.edit.Embeds
	s.Require().Len(embeds, 1)
	s.Equal("Scanned 40 post(s). 3 member(s) updated, 12 on file.", embeds[0].Description)
}

func (s *CommandTestSuite) TestContractsHistoryPassesCount() {
	started := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockContracts.EXPECT().ListCycles(gomock.Any(), &contract.ListCyclesInput{Limit: 2}).
		Return(&contract.ListCyclesOutput{Cycles: []*models.ContractCycle{
			{
				ID:        "cycle-2",
				StartedAt: started,
				Contracts: []*models.Contract{{ID: "c1", Delivered: true}, {ID: "c2"}},
			},
			{ID: "cycle-1", StartedAt: started.Add(-time.Hour)},
		}}, nil)

	count := &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "count",
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(2),
	}
	s.Require().NoError(s.contractsCmd.Handle(s.session,
		s.interaction("contracts", 0, subcommand("history", count))))

	s.Require().NotNil(s.response)
	s.Require().Len(s.response.Data.Embeds, 1)
	fields := s.response.Data.Embeds[0].Fields
	s.Require().Len(fields, 2)
	s.Equal("2025-04-19 12:00 UTC", fields[0].Name)
	s.Contains(fields[0].Value, "2 contract(s), 1 delivered")
	s.Contains(fields[0].Value, "cycle-2")
}

func (s *CommandTestSuite) TestContractsHistoryEmpty() {
	s.mockContracts.EXPECT().ListCycles(gomock.Any(), &contract.ListCyclesInput{}).
		Return(&contract.ListCyclesOutput{}, nil)

	s.Require().NoError(s.contractsCmd.Handle(s.session, s.interaction("contracts", 0, subcommand("history"))))

	s.Require().NotNil(s.response)
	s.Require().Len(s.response.Data.Embeds, 1)
	s.Equal("No cycles have run yet.", s.response.Data.Embeds[0].Description)
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}
