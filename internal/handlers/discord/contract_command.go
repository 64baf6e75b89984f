package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/surety/internal/services/contract"
	"github.com/KirkDiggler/surety/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

var minHistoryCount = 1.0

// ContractsCommand handles the /contracts command
type ContractsCommand struct {
	BaseCommand
	contractService  contract.Service
	messagingService messaging.Service
	logger           *slog.Logger
}

// NewContractsCommand creates a new contracts command handler
func NewContractsCommand(contractService contract.Service, messagingService messaging.Service, logger *slog.Logger) *ContractsCommand {
	if logger == nil {
		logger = slog.Default()
	}

	return &ContractsCommand{
		BaseCommand: BaseCommand{
			Name:        "contracts",
			Description: "Contract commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "distribute",
					Description: "Run a contract cycle now",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mine",
					Description: "Show your current contract",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "proof",
					Description: "Show the pledge photo the broker has on file",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "The member to look up, defaults to you",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "refresh",
					Description: "Rescan the proof channel now",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "List recent contract cycles",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many cycles to show",
							MinValue:    &minHistoryCount,
							MaxValue:    contract.MaxCycleListLimit,
						},
					},
				},
			},
		},
		contractService:  contractService,
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the contracts command
func (c *ContractsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	subcommand := data.Options[0]
	switch subcommand.Name {
	case "distribute":
		return c.handleDistribute(s, i)
	case "mine":
		return c.handleMine(s, i)
	case "proof":
		return c.handleProof(s, i, optionMap(subcommand.Options))
	case "refresh":
		return c.handleRefresh(s, i)
	case "history":
		return c.handleHistory(s, i, optionMap(subcommand.Options))
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *ContractsCommand) handleDistribute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	if !hasPermission(i, discordgo.PermissionAdministrator) {
		return respondWithErrorType(ctx, c.messagingService, s, i, messaging.ErrorTypeMissingPermission)
	}

	// Delivering every contract can take longer than the interaction window
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	output, err := c.contractService.DistributeContracts(ctx, &contract.DistributeContractsInput{})
	if err != nil {
		errorType := messaging.ErrorType("")
		if errors.Is(err, contract.ErrTargetPoolExhausted) {
			errorType = messaging.ErrorTypePoolExhausted
		}
		c.logger.Warn("manual contract cycle failed", "error", err)
		return EditResponseWithEmbed(s, i, renderErrorEmbed(c.errorText(ctx, errorType, err)))
	}

	summary, err := c.messagingService.GetCycleSummaryMessage(ctx, cycleSummaryInput(output))
	if err != nil {
		return EditResponseWithEmbed(s, i, renderErrorEmbed(err.Error()))
	}

	return EditResponseWithEmbed(s, i, renderCycleSummaryEmbed(summary.Title, summary.Message, output.Skipped))
}

func (c *ContractsCommand) handleMine(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	user := invoker(i)
	if user == nil {
		return RespondWithError(s, i, "Could not tell who asked.")
	}

	output, err := c.contractService.GetActiveContract(ctx, &contract.GetActiveContractInput{MemberID: user.ID})
	if err != nil {
		if errors.Is(err, contract.ErrNoActiveContract) {
			return respondWithErrorType(ctx, c.messagingService, s, i, messaging.ErrorTypeNoContract)
		}
		c.logger.Error("failed to get active contract", "member", user.ID, "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Could not look up your contract: %v", err))
	}

	return RespondWithEphemeralEmbed(s, i, renderActiveContractEmbed(output.Contract))
}

func (c *ContractsCommand) handleProof(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	memberID := ""
	if opt, ok := options["member"]; ok {
		memberID = opt.UserValue(nil).ID
	} else if user := invoker(i); user != nil {
		memberID = user.ID
	}

	output, err := c.contractService.GetProof(ctx, &contract.GetProofInput{MemberID: memberID})
	if err != nil {
		c.logger.Error("failed to get proof", "member", memberID, "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Could not look up the proof: %v", err))
	}
	if output.Proof == nil {
		return respondWithErrorType(ctx, c.messagingService, s, i, messaging.ErrorTypeNoProof)
	}

	return RespondWithEphemeralEmbed(s, i, renderProofEmbed(output.Proof))
}

func (c *ContractsCommand) handleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	if !hasPermission(i, discordgo.PermissionAdministrator) {
		return respondWithErrorType(ctx, c.messagingService, s, i, messaging.ErrorTypeMissingPermission)
	}

	// Paging through the proof channel takes several requests
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	output, err := c.contractService.RefreshProofs(ctx)
	if err != nil {
		c.logger.Warn("manual proof refresh failed", "error", err)
		return EditResponseWithEmbed(s, i, renderErrorEmbed(fmt.Sprintf("Could not read the proof channel: %v", err)))
	}

	return EditResponseWithEmbed(s, i, renderRefreshEmbed(output))
}

func (c *ContractsCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	input := &contract.ListCyclesInput{}
	if opt, ok := options["count"]; ok {
		input.Limit = int(opt.IntValue())
	}

	output, err := c.contractService.ListCycles(ctx, input)
	if err != nil {
		c.logger.Error("failed to list cycles", "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Could not list cycles: %v", err))
	}

	return RespondWithEmbed(s, i, renderCycleHistoryEmbed(output.Cycles))
}

// errorText falls back to the raw error when there is no friendly line for it
func (c *ContractsCommand) errorText(ctx context.Context, errorType messaging.ErrorType, err error) string {
	if errorType == "" {
		return fmt.Sprintf("The contract cycle failed: %v", err)
	}
	output, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if msgErr != nil {
		return err.Error()
	}
	return output.Message
}

func cycleSummaryInput(output *contract.DistributeContractsOutput) *messaging.GetCycleSummaryMessageInput {
	input := &messaging.GetCycleSummaryMessageInput{
		Skipped:      output.Skipped,
		NewCohort:    output.NewCohort,
		ActiveCohort: output.ActiveCohort,
		Delivered:    output.Delivered,
		Undelivered:  output.Undelivered,
	}
	if output.Cycle != nil {
		input.Contracts = len(output.Cycle.Contracts)
	}
	return input
}
