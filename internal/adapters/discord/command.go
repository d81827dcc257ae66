package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "participantbot/pkg/discord"
)

const (
	commandName = "participant"

	subAdd    = "add"
	subUpdate = "update"
	subGet    = "get"
	subList   = "list"
	subDelete = "delete"
	subFind   = "find"
)

// Discord integer options are limited to ±2^53.
var (
	minID = 1.0
	maxID = float64(1<<53 - 1)
)

func idOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        pkgdiscord.OptionID,
		Description: "Participant ID",
		Required:    required,
		MinValue:    &minID,
		MaxValue:    maxID,
	}
}

func stringOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
	}
}

func attributeOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		stringOption(pkgdiscord.OptionName, "Full name"),
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        pkgdiscord.OptionGender,
			Description: "Gender",
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "MALE", Value: "MALE"},
				{Name: "FEMALE", Value: "FEMALE"},
			},
		},
		stringOption(pkgdiscord.OptionEmail, "Email address"),
		stringOption(pkgdiscord.OptionContact, "Phone or other contact"),
		stringOption(pkgdiscord.OptionEvent, "Event name"),
		stringOption(pkgdiscord.OptionRole, "Attendee, Speaker, ..."),
		stringOption(pkgdiscord.OptionOrganization, "Organization"),
	}
}

// participantCommand describes /participant and its subcommands.
func participantCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Manage participants",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subAdd,
				Description: "Add a participant",
				Options:     append([]*discordgo.ApplicationCommandOption{idOption(false)}, attributeOptions()...),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subUpdate,
				Description: "Update a participant",
				Options:     append([]*discordgo.ApplicationCommandOption{idOption(true)}, attributeOptions()...),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subGet,
				Description: "Show a participant",
				Options:     []*discordgo.ApplicationCommandOption{idOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subList,
				Description: "List all participants",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subDelete,
				Description: "Delete a participant",
				Options:     []*discordgo.ApplicationCommandOption{idOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subFind,
				Description: "Find a participant by email or contact",
				Options: []*discordgo.ApplicationCommandOption{
					stringOption(pkgdiscord.OptionEmail, "Email address"),
					stringOption(pkgdiscord.OptionContact, "Phone or other contact"),
				},
			},
		},
	}
}
