package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/surety/internal/services/contract"
	"github.com/KirkDiggler/surety/internal/services/messaging"
	"github.com/KirkDiggler/surety/internal/services/roles"
	"github.com/bwmarrin/discordgo"
)

const (
	eventTimeout   = 10 * time.Second
	commandTimeout = 10 * time.Second
	cycleTimeout   = 2 * time.Minute
)

// MessageLookup resolves the channels and messages gateway events refer to
type MessageLookup interface {
	ChannelName(ctx context.Context, channelID string) (string, error)
	Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)
}

// Announcer posts state changes where the guild can see them
type Announcer interface {
	Announce(ctx context.Context, content string) error
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is shared with the guild adapter
	Session *discordgo.Session

	// Application ID for the bot, falls back to the session user
	ApplicationID string

	// GuildID is the one guild the bot manages. Events from other guilds are ignored.
	GuildID string

	RoleService      roles.Service
	ContractService  contract.Service
	MessagingService messaging.Service

	// Lookup resolves channel names and reacted-to messages
	Lookup MessageLookup

	// Announcer is optional
	Announcer Announcer

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// NewSession creates a discordgo session with the intents the bot listens on
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}
	if cfg.RoleService == nil {
		return nil, errors.New("role service cannot be nil")
	}
	if cfg.ContractService == nil {
		return nil, errors.New("contract service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Lookup == nil {
		return nil, errors.New("message lookup cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMemberAdd)
	cfg.Session.AddHandler(bot.handleMemberRemove)
	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleReactionAdd)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{
		NewStateCommand(b.config.RoleService, b.config.MessagingService, b.config.GuildID, b.logger),
		NewContractsCommand(b.config.ContractService, b.config.MessagingService, b.logger),
	} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is now running", "guild", b.config.GuildID)
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a guild command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID)

	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction dispatches slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.logger.Error("error handling command", "command", name, "error", err)
		}
	}
}

func (b *Bot) handleMemberAdd(_ *discordgo.Session, e *discordgo.GuildMemberAdd) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	b.onMemberJoin(ctx, e.Member)
}

func (b *Bot) handleMemberRemove(_ *discordgo.Session, e *discordgo.GuildMemberRemove) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	b.onMemberLeave(ctx, e.Member)
}

func (b *Bot) handleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	b.onMessage(ctx, m.Message)
}

func (b *Bot) handleReactionAdd(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()
	b.onReaction(ctx, r)
}

// onMemberJoin places a new member in the default state
func (b *Bot) onMemberJoin(ctx context.Context, member *discordgo.Member) {
	if member == nil || member.User == nil || member.User.Bot || member.GuildID != b.config.GuildID {
		return
	}

	output, err := b.config.RoleService.HandleMemberJoin(ctx, &roles.HandleMemberJoinInput{MemberID: member.User.ID})
	if err != nil {
		b.logger.Error("failed to handle member join", "member", member.User.ID, "error", err)
		return
	}
	b.announce(ctx, output)
}

// onMemberLeave stops tracking a member who left the guild
func (b *Bot) onMemberLeave(ctx context.Context, member *discordgo.Member) {
	if member == nil || member.User == nil || member.GuildID != b.config.GuildID {
		return
	}

	output, err := b.config.RoleService.HandleMemberLeave(ctx, &roles.HandleMemberLeaveInput{MemberID: member.User.ID})
	if err != nil {
		b.logger.Error("failed to handle member leave", "member", member.User.ID, "error", err)
		return
	}
	if output.Removed {
		b.logger.Info("member left", "member", member.User.ID)
	}
}

// onMessage counts a guild message and lets the author's state react to it
func (b *Bot) onMessage(ctx context.Context, message *discordgo.Message) {
	if message == nil || message.Author == nil || message.GuildID != b.config.GuildID {
		return
	}

	channelName, err := b.config.Lookup.ChannelName(ctx, message.ChannelID)
	if err != nil {
		b.logger.Warn("failed to resolve channel", "channel", message.ChannelID, "error", err)
	}

	output, err := b.config.RoleService.HandleMessage(ctx, &roles.HandleMessageInput{
		MemberID:       message.Author.ID,
		ChannelName:    channelName,
		HasAttachments: len(message.Attachments) > 0,
		IsBot:          message.Author.Bot,
		PostedAt:       message.Timestamp,
	})
	if err != nil {
		b.logger.Error("failed to handle message", "member", message.Author.ID, "error", err)
		return
	}
	b.announce(ctx, &output.TransitionOutput)
}

// onReaction lets the reacting member's state react to the reaction and the message it is on
func (b *Bot) onReaction(ctx context.Context, reaction *discordgo.MessageReactionAdd) {
	if reaction == nil || reaction.MessageReaction == nil || reaction.GuildID != b.config.GuildID {
		return
	}
	if reaction.Member != nil && reaction.Member.User != nil && reaction.Member.User.Bot {
		return
	}

	message, err := b.config.Lookup.Message(ctx, reaction.ChannelID, reaction.MessageID)
	if err != nil {
		b.logger.Warn("failed to fetch reacted message", "message", reaction.MessageID, "error", err)
		return
	}

	channelName, err := b.config.Lookup.ChannelName(ctx, reaction.ChannelID)
	if err != nil {
		b.logger.Warn("failed to resolve channel", "channel", reaction.ChannelID, "error", err)
	}

	mentions := make([]string, 0, len(message.Mentions))
	for _, user := range message.Mentions {
		mentions = append(mentions, user.ID)
	}

	output, err := b.config.RoleService.HandleReaction(ctx, &roles.HandleReactionInput{
		MemberID:       reaction.UserID,
		Emoji:          reaction.Emoji.Name,
		ChannelName:    channelName,
		HasAttachments: len(message.Attachments) > 0,
		Mentions:       mentions,
	})
	if err != nil {
		b.logger.Error("failed to handle reaction", "member", reaction.UserID, "error", err)
		return
	}
	b.announce(ctx, output)
}

// announce posts a line when a member changed state
func (b *Bot) announce(ctx context.Context, output *roles.TransitionOutput) {
	if !output.Changed() {
		return
	}
	b.logger.Info("member changed state", "member", output.MemberID, "from", output.Previous.String(), "to", output.Current.String())

	if b.config.Announcer == nil || output.Previous == "" {
		return
	}

	message, err := b.config.MessagingService.GetStateChangeMessage(ctx, &messaging.GetStateChangeMessageInput{
		MemberName: "<@" + output.MemberID + ">",
		Previous:   output.Previous,
		Current:    output.Current,
	})
	if err != nil {
		b.logger.Warn("failed to write announcement", "member", output.MemberID, "error", err)
		return
	}

	if err := b.config.Announcer.Announce(ctx, message.Message); err != nil {
		b.logger.Warn("failed to announce state change", "member", output.MemberID, "error", err)
	}
}
