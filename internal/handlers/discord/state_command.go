package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/services/messaging"
	"github.com/KirkDiggler/surety/internal/services/roles"
	"github.com/bwmarrin/discordgo"
)

// StateCommand handles the /state command
type StateCommand struct {
	BaseCommand
	roleService      roles.Service
	messagingService messaging.Service
	guildID          string
	logger           *slog.Logger
}

// NewStateCommand creates a new state command handler
func NewStateCommand(roleService roles.Service, messagingService messaging.Service, guildID string, logger *slog.Logger) *StateCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.PlayerStates()))
	for _, state := range models.PlayerStates() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  state.String(),
			Value: state.String(),
		})
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StateCommand{
		BaseCommand: BaseCommand{
			Name:        "state",
			Description: "Inspect and manage member states",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Force a member into a state",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "The member to update",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "state",
							Description: "The state to put them in",
							Required:    true,
							Choices:     choices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List the states, their roles and what moves members between them",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show a member's state",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "The member to look up, defaults to you",
						},
					},
				},
			},
		},
		roleService:      roleService,
		messagingService: messagingService,
		guildID:          guildID,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the state command
func (c *StateCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	subcommand := data.Options[0]
	switch subcommand.Name {
	case "set":
		return c.handleSet(ctx, s, i, optionMap(subcommand.Options))
	case "list":
		return c.handleList(ctx, s, i)
	case "show":
		return c.handleShow(ctx, s, i, optionMap(subcommand.Options))
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *StateCommand) handleSet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if !hasPermission(i, discordgo.PermissionManageRoles) {
		return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeMissingPermission)
	}

	memberOpt, ok := options["member"]
	stateOpt, ok2 := options["state"]
	if !ok || !ok2 {
		return RespondWithError(s, i, "Both a member and a state are required.")
	}
	member := memberOpt.UserValue(nil)

	// Swapping badges takes several REST calls
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	output, err := c.roleService.SetMemberState(ctx, &roles.SetMemberStateInput{
		MemberID:  member.ID,
		StateName: stateOpt.StringValue(),
	})
	if err != nil {
		if errors.Is(err, roles.ErrUnknownState) {
			return EditResponseWithEmbed(s, i, renderErrorEmbed(errorLine(ctx, c.messagingService, messaging.ErrorTypeUnknownState)))
		}
		c.logger.Error("failed to set member state", "member", member.ID, "error", err)
		return EditResponseWithEmbed(s, i, renderErrorEmbed(fmt.Sprintf("Could not update the member: %v", err)))
	}

	message, err := c.messagingService.GetStateChangeMessage(ctx, &messaging.GetStateChangeMessageInput{
		MemberName: member.Mention(),
		Previous:   output.Previous,
		Current:    output.Current,
		Overridden: true,
	})
	if err != nil {
		return EditResponseWithMessage(s, i, fmt.Sprintf("Set %s to %s state", member.Mention(), output.Current))
	}

	return EditResponseWithMessage(s, i, message.Message)
}

func (c *StateCommand) handleList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.roleService.ListStates(ctx)
	if err != nil {
		c.logger.Error("failed to list states", "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Could not list states: %v", err))
	}

	return RespondWithEmbed(s, i, renderStateListEmbed(c.guildID, output))
}

func (c *StateCommand) handleShow(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	memberID := ""
	if opt, ok := options["member"]; ok {
		memberID = opt.UserValue(nil).ID
	} else if user := invoker(i); user != nil {
		memberID = user.ID
	}

	output, err := c.roleService.GetMemberState(ctx, &roles.GetMemberStateInput{MemberID: memberID})
	if err != nil {
		c.logger.Error("failed to get member state", "member", memberID, "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Could not look up the member: %v", err))
	}
	if !output.Resolved {
		return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeUnresolvedMember)
	}

	return RespondWithEphemeralEmbed(s, i, renderMemberStateEmbed(memberID, output))
}

func (c *StateCommand) respondWithErrorType(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, errorType messaging.ErrorType) error {
	return respondWithErrorType(ctx, c.messagingService, s, i, errorType)
}

// respondWithErrorType answers with the messaging service's line for errorType
func respondWithErrorType(ctx context.Context, messagingService messaging.Service, s *discordgo.Session, i *discordgo.InteractionCreate, errorType messaging.ErrorType) error {
	return RespondWithError(s, i, errorLine(ctx, messagingService, errorType))
}

// errorLine is the messaging service's line for errorType, or the type itself
func errorLine(ctx context.Context, messagingService messaging.Service, errorType messaging.ErrorType) string {
	output, err := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if err != nil {
		return string(errorType)
	}
	return output.Message
}
