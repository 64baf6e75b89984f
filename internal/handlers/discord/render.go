package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/services/contract"
	"github.com/KirkDiggler/surety/internal/services/roles"
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorInfo    = 0x3498db
	colorNoir    = 0x2c2f33
)

func renderErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}

// renderContractEmbed is the direct message an assigner receives
func renderContractEmbed(title, message string, contract *models.Contract) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorNoir,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Target", Value: targetLabel(contract), Inline: true},
			{Name: "Kind", Value: string(contract.Kind), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Contract " + contract.ID},
	}
	if !contract.IssuedAt.IsZero() {
		embed.Timestamp = contract.IssuedAt.UTC().Format(time.RFC3339)
	}
	if contract.ProofURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: contract.ProofURL}
	}
	return embed
}

func targetLabel(contract *models.Contract) string {
	switch {
	case contract.TargetMention != "" && contract.TargetName != "":
		return fmt.Sprintf("%s (%s)", contract.TargetName, contract.TargetMention)
	case contract.TargetMention != "":
		return contract.TargetMention
	case contract.TargetName != "":
		return contract.TargetName
	default:
		return "<@" + contract.TargetID + ">"
	}
}

// renderStateListEmbed lists states in evaluation order with their badges and rules
func renderStateListEmbed(guildID string, output *roles.ListStatesOutput) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(output.States))
	for _, state := range output.States {
		name := state.Name.String()
		if state.IsDefault {
			name += " (default)"
		}

		var value strings.Builder
		value.WriteString("Badges: ")
		value.WriteString(badgeMentions(guildID, state.Badges))
		for _, rule := range state.Rules {
			fmt.Fprintf(&value, "\n• **%s**: %s", rule.Event, rule.Description)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: value.String(),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Member States",
		Color:  colorInfo,
		Fields: fields,
	}
}

// badgeMentions renders role IDs as role mentions. The everyone role cannot be mentioned that way.
func badgeMentions(guildID string, badges []string) string {
	if len(badges) == 0 {
		return "none"
	}
	mentions := make([]string, 0, len(badges))
	for _, badge := range badges {
		if badge == guildID {
			mentions = append(mentions, "@everyone")
			continue
		}
		mentions = append(mentions, "<@&"+badge+">")
	}
	return strings.Join(mentions, ", ")
}

// renderMemberStateEmbed shows what the bot knows about one member
func renderMemberStateEmbed(memberID string, output *roles.GetMemberStateOutput) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "State", Value: output.State.String(), Inline: true},
	}

	if !output.EnteredAt.IsZero() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Since",
			Value:  fmt.Sprintf("<t:%d:R>", output.EnteredAt.Unix()),
			Inline: true,
		})
	}

	if output.Activity != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Messages",
			Value:  fmt.Sprintf("%d", output.Activity.MessageCount),
			Inline: true,
		})
		if !output.Activity.LastMessageAt.IsZero() {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   "Last message",
				Value:  fmt.Sprintf("<t:%d:R>", output.Activity.LastMessageAt.Unix()),
				Inline: true,
			})
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "Member State",
		Description: "<@" + memberID + ">",
		Color:       colorInfo,
		Fields:      fields,
	}
}

// renderActiveContractEmbed is the private reply to /contracts mine
func renderActiveContractEmbed(contract *models.Contract) *discordgo.MessageEmbed {
	embed := renderContractEmbed("Your Contract", "", contract)
	if contract.IssuedAt.IsZero() {
		return embed
	}
	embed.Description = fmt.Sprintf("Issued <t:%d:R>.", contract.IssuedAt.Unix())
	return embed
}

func renderCycleSummaryEmbed(title, message string, skipped bool) *discordgo.MessageEmbed {
	color := colorSuccess
	if skipped {
		color = colorInfo
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
	}
}

// renderProofEmbed shows a member's recorded pledge photo
func renderProofEmbed(proof *models.Proof) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Proof On File",
		Description: "<@" + proof.MemberID + ">",
		Color:       colorInfo,
		Image:       &discordgo.MessageEmbedImage{URL: proof.URL},
	}
	if !proof.PostedAt.IsZero() {
		embed.Description += fmt.Sprintf(", posted <t:%d:R>", proof.PostedAt.Unix())
	}
	return embed
}

func renderRefreshEmbed(output *contract.RefreshProofsOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Proof Refreshed",
		Description: fmt.Sprintf("Scanned %d post(s). %d member(s) updated, %d on file.",
			output.Scanned, output.Updated, output.Tracked),
		Color: colorSuccess,
	}
}

// renderCycleHistoryEmbed lists cycles newest first
func renderCycleHistoryEmbed(cycles []*models.ContractCycle) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Contract Cycles",
		Color: colorInfo,
	}
	if len(cycles) == 0 {
		embed.Description = "No cycles have run yet."
		return embed
	}

	for _, cycle := range cycles {
		delivered := 0
		for _, c := range cycle.Contracts {
			if c.Delivered {
				delivered++
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: cycle.StartedAt.UTC().Format("2006-01-02 15:04 UTC"),
			Value: fmt.Sprintf("%d contract(s), %d delivered\nCycle %s",
				len(cycle.Contracts), delivered, cycle.ID),
		})
	}
	return embed
}
