package discord

import (
	"fmt"
	"strings"

	"participantbot/internal/domain/entities"
	"participantbot/internal/ports/output"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x5865F2
	// Lines shown by the list embed; the rest is summarized in the footer.
	maxListLines = 25
)

// BuildParticipantEmbed shows every non-empty attribute of a participant.
func BuildParticipantEmbed(t output.T, locale string, p *entities.Participant) *discordgo.MessageEmbed {
	fields := []struct{ key, value string }{
		{"field.name", p.Name},
		{"field.gender", p.Gender},
		{"field.email", p.Email},
		{"field.contact", p.Contact},
		{"field.event", p.EventName},
		{"field.role", p.Role},
		{"field.organization", p.Organization},
	}
	embed := &discordgo.MessageEmbed{
		Title: t.T(locale, "participant.details_title", map[string]any{"ID": p.ID}),
		Color: embedColor,
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   t.T(locale, f.key, nil),
			Value:  f.value,
			Inline: true,
		})
	}
	return embed
}

// BuildParticipantListEmbed lists participants one per line, in the order given.
func BuildParticipantListEmbed(t output.T, locale string, participants []entities.Participant) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: t.T(locale, "participant.list_title", map[string]any{"Count": len(participants)}),
		Color: embedColor,
	}
	if len(participants) == 0 {
		embed.Description = t.T(locale, "participant.list_empty", nil)
		return embed
	}

	shown := participants
	if len(shown) > maxListLines {
		shown = shown[:maxListLines]
	}
	lines := make([]string, 0, len(shown))
	for i := range shown {
		lines = append(lines, FormatParticipantLine(&shown[i]))
	}
	embed.Description = strings.Join(lines, "\n")

	if hidden := len(participants) - len(shown); hidden > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: t.T(locale, "participant.list_truncated", map[string]any{"Count": hidden}),
		}
	}
	return embed
}

// FormatParticipantLine renders "`#id` name • email • contact", skipping empty parts.
func FormatParticipantLine(p *entities.Participant) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{p.Name, p.Email, p.Contact} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("`#%d`", p.ID)
	}
	return fmt.Sprintf("`#%d` %s", p.ID, strings.Join(parts, " • "))
}
