package discord

import (
	"participantbot/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// Option names shared by the participant subcommands.
const (
	OptionID           = "id"
	OptionName         = "name"
	OptionGender       = "gender"
	OptionEmail        = "email"
	OptionContact      = "contact"
	OptionEvent        = "event"
	OptionRole         = "role"
	OptionOrganization = "organization"
)

type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// OptionMap indexes command options by name.
func OptionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) Options {
	m := make(Options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (o Options) StringOption(name string) (string, bool) {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	return opt.StringValue(), true
}

func (o Options) IntOption(name string) (int, bool) {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	return int(opt.IntValue()), true
}

// ApplyToParticipant copies every provided option onto p; absent options leave
// the corresponding field untouched.
func (o Options) ApplyToParticipant(p *entities.Participant) {
	if id, ok := o.IntOption(OptionID); ok {
		p.ID = id
	}
	targets := map[string]*string{
		OptionName:         &p.Name,
		OptionGender:       &p.Gender,
		OptionEmail:        &p.Email,
		OptionContact:      &p.Contact,
		OptionEvent:        &p.EventName,
		OptionRole:         &p.Role,
		OptionOrganization: &p.Organization,
	}
	for name, dst := range targets {
		if v, ok := o.StringOption(name); ok {
			*dst = v
		}
	}
}
