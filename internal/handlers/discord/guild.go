package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/platform"
	"github.com/KirkDiggler/surety/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// maxMessagesPerPage is the page size Discord allows for channel history
const maxMessagesPerPage = 100

// GuildConfig holds configuration for the guild adapter
type GuildConfig struct {
	Session *discordgo.Session

	// GuildID is the guild the bot manages. It doubles as the everyone role ID.
	GuildID string

	// Messaging writes contract briefings
	Messaging messaging.Service

	// AnnounceChannel receives state change announcements, empty disables them
	AnnounceChannel string

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Guild adapts a discordgo session to the platform collaborators
type Guild struct {
	session         *discordgo.Session
	guildID         string
	messaging       messaging.Service
	announceChannel string
	logger          *slog.Logger
}

// NewGuild creates a guild adapter
func NewGuild(cfg *GuildConfig) (*Guild, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Guild{
		session:         cfg.Session,
		guildID:         cfg.GuildID,
		messaging:       cfg.Messaging,
		announceChannel: cfg.AnnounceChannel,
		logger:          logger,
	}, nil
}

var _ platform.Guild = (*Guild)(nil)

// MemberBadges returns the member's roles with the everyone role first
func (g *Guild) MemberBadges(ctx context.Context, memberID string) ([]string, error) {
	member, err := g.session.GuildMember(g.guildID, memberID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, translateError(err))
	}

	badges := make([]string, 0, len(member.Roles)+1)
	badges = append(badges, g.guildID)
	for _, role := range member.Roles {
		if role != g.guildID {
			badges = append(badges, role)
		}
	}
	return badges, nil
}

// GrantBadge adds a role to the member
func (g *Guild) GrantBadge(ctx context.Context, memberID, badgeID string) error {
	if err := g.session.GuildMemberRoleAdd(g.guildID, memberID, badgeID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role %s to %s: %w", badgeID, memberID, translateError(err))
	}
	return nil
}

// RevokeBadge removes a role from the member
func (g *Guild) RevokeBadge(ctx context.Context, memberID, badgeID string) error {
	if err := g.session.GuildMemberRoleRemove(g.guildID, memberID, badgeID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to remove role %s from %s: %w", badgeID, memberID, translateError(err))
	}
	return nil
}

// GetMember returns the member, or platform.ErrMemberNotFound once they left
func (g *Guild) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	member, err := g.session.GuildMember(g.guildID, memberID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, translateError(err))
	}

	out := toMember(member)
	if out == nil {
		return nil, fmt.Errorf("member %s has no user: %w", memberID, platform.ErrMemberNotFound)
	}
	return out, nil
}

// ProofHistory pages back through the named channel, newest first
func (g *Guild) ProofHistory(ctx context.Context, channel string, limit int) ([]*models.ProofPost, error) {
	if limit <= 0 {
		return nil, nil
	}

	channelID, err := g.channelID(ctx, channel)
	if err != nil {
		return nil, err
	}

	posts := make([]*models.ProofPost, 0, limit)
	before := ""
	for len(posts) < limit {
		page := min(limit-len(posts), maxMessagesPerPage)

		messages, err := g.session.ChannelMessages(channelID, page, before, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s history: %w", channel, translateError(err))
		}

		for _, message := range messages {
			if post := toProofPost(message); post != nil {
				posts = append(posts, post)
			}
		}

		if len(messages) < page {
			break
		}
		before = messages[len(messages)-1].ID
	}

	return posts, nil
}

// SendContract delivers the briefing to the assigner by direct message
func (g *Guild) SendContract(ctx context.Context, contract *models.Contract) error {
	if contract == nil {
		return errors.New("contract cannot be nil")
	}

	briefing, err := g.messaging.GetContractBriefing(ctx, &messaging.GetContractBriefingInput{
		AssignerName: contract.AssignerName,
		TargetName:   contract.TargetName,
		Kind:         contract.Kind,
		HasProof:     contract.ProofURL != "",
	})
	if err != nil {
		return fmt.Errorf("failed to write briefing: %w", err)
	}

	dm, err := g.session.UserChannelCreate(contract.AssignerID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM with %s: %w", contract.AssignerID, translateError(err))
	}

	embed := renderContractEmbed(briefing.Title, briefing.Message, contract)
	if _, err := g.session.ChannelMessageSendEmbed(dm.ID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to DM %s: %w", contract.AssignerID, translateError(err))
	}

	return nil
}

// ChannelName returns the name of a channel, preferring the gateway cache
func (g *Guild) ChannelName(ctx context.Context, channelID string) (string, error) {
	if channel, err := g.session.State.Channel(channelID); err == nil {
		return channel.Name, nil
	}

	channel, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to get channel %s: %w", channelID, translateError(err))
	}
	return channel.Name, nil
}

// Message fetches a single message
func (g *Guild) Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	message, err := g.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, translateError(err))
	}
	return message, nil
}

// Announce posts to the announcement channel. It is a no-op when none is configured.
func (g *Guild) Announce(ctx context.Context, content string) error {
	if g.announceChannel == "" {
		return nil
	}

	channelID, err := g.channelID(ctx, g.announceChannel)
	if err != nil {
		return err
	}

	if _, err := g.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to announce: %w", translateError(err))
	}
	return nil
}

// channelID finds a text channel by name
func (g *Guild) channelID(ctx context.Context, name string) (string, error) {
	name = normalizeChannelName(name)

	channels, err := g.session.GuildChannels(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to list channels: %w", translateError(err))
	}

	for _, channel := range channels {
		if channel.Type == discordgo.ChannelTypeGuildText && normalizeChannelName(channel.Name) == name {
			return channel.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %s", platform.ErrChannelNotFound, name)
}

func normalizeChannelName(name string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "#"))
}

// translateError maps Discord REST failures onto the platform errors
func translateError(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownUser:
			return fmt.Errorf("%w: %s", platform.ErrMemberNotFound, restErr.Message.Message)
		case discordgo.ErrCodeUnknownChannel:
			return fmt.Errorf("%w: %s", platform.ErrChannelNotFound, restErr.Message.Message)
		case discordgo.ErrCodeCannotSendMessagesToThisUser:
			return fmt.Errorf("%w: %s", platform.ErrRecipientUnreachable, restErr.Message.Message)
		case discordgo.ErrCodeMissingPermissions:
			return fmt.Errorf("%w: %s", platform.ErrPermissionDenied, restErr.Message.Message)
		}
	}

	if restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", platform.ErrPermissionDenied, err)
	}
	return err
}

func toMember(member *discordgo.Member) *models.Member {
	if member == nil || member.User == nil {
		return nil
	}
	return &models.Member{
		ID:          member.User.ID,
		DisplayName: displayName(member),
		Mention:     member.User.Mention(),
		IsBot:       member.User.Bot,
	}
}

// displayName prefers the guild nickname, then the global name, then the username
func displayName(member *discordgo.Member) string {
	switch {
	case member.Nick != "":
		return member.Nick
	case member.User.GlobalName != "":
		return member.User.GlobalName
	default:
		return member.User.Username
	}
}

// toProofPost returns nil for messages without an author
func toProofPost(message *discordgo.Message) *models.ProofPost {
	if message == nil || message.Author == nil {
		return nil
	}
	return &models.ProofPost{
		MessageID: message.ID,
		AuthorID:  message.Author.ID,
		ImageURL:  firstImageURL(message.Attachments),
		PostedAt:  message.Timestamp,
	}
}

// firstImageURL returns the first attachment that is an image
func firstImageURL(attachments []*discordgo.MessageAttachment) string {
	for _, attachment := range attachments {
		if attachment == nil || attachment.URL == "" {
			continue
		}
		if strings.HasPrefix(attachment.ContentType, "image/") {
			return attachment.URL
		}
		// Older uploads carry no content type but do carry dimensions
		if attachment.ContentType == "" && attachment.Width > 0 && attachment.Height > 0 {
			return attachment.URL
		}
	}
	return ""
}
