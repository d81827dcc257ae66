package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"participantbot/internal/domain/entities"
	"participantbot/internal/ports/input"
	"participantbot/internal/ports/output"
	pkgdiscord "participantbot/pkg/discord"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	participantUseCase input.ParticipantUseCase
	translator         output.T
}

// NewHandler creates a Handler.
func NewHandler(participantUseCase input.ParticipantUseCase, translator output.T) *Handler {
	return &Handler{
		participantUseCase: participantUseCase,
		translator:         translator,
	}
}

func (h *Handler) translate(locale, key string, data map[string]any) string {
	return h.translator.T(locale, key, data)
}

// HandleCommand answers /participant with an ephemeral message.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	resp := h.execute(context.Background(), locale, i.ApplicationCommandData())
	respondEphemeral(s, i.Interaction, resp)
}

// execute runs the subcommand and builds the response, without touching the session.
func (h *Handler) execute(ctx context.Context, locale string, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponseData {
	if len(data.Options) == 0 {
		return message(h.translate(locale, "errors.generic", nil))
	}
	sub := data.Options[0]
	opts := pkgdiscord.OptionMap(sub.Options)

	switch sub.Name {
	case subAdd:
		return h.add(ctx, locale, opts)
	case subUpdate:
		return h.update(ctx, locale, opts)
	case subGet:
		return h.get(ctx, locale, opts)
	case subList:
		return h.list(ctx, locale)
	case subDelete:
		return h.delete(ctx, locale, opts)
	case subFind:
		return h.find(ctx, locale, opts)
	default:
		log.Printf("⚠️ Sous-commande inconnue: %s", sub.Name)
		return message(h.translate(locale, "errors.generic", nil))
	}
}

func (h *Handler) add(ctx context.Context, locale string, opts pkgdiscord.Options) *discordgo.InteractionResponseData {
	var participant entities.Participant
	opts.ApplyToParticipant(&participant)

	saved, err := h.participantUseCase.AddParticipant(ctx, &participant)
	if err != nil {
		return h.failure(locale, subAdd, err)
	}
	return message(
		h.translate(locale, "participant.added", map[string]any{"ID": saved.ID}),
		pkgdiscord.BuildParticipantEmbed(h.translator, locale, saved),
	)
}

// update overlays the provided options on the stored participant so that
// omitted options keep their current value.
func (h *Handler) update(ctx context.Context, locale string, opts pkgdiscord.Options) *discordgo.InteractionResponseData {
	id, ok := opts.IntOption(pkgdiscord.OptionID)
	if !ok || id <= 0 {
		return message(h.translate(locale, "errors.invalid_id", nil))
	}
	participant, err := h.participantUseCase.GetParticipantByID(ctx, id)
	if err != nil {
		return h.failure(locale, subUpdate, err)
	}
	if participant == nil {
		participant = &entities.Participant{}
	}
	opts.ApplyToParticipant(participant)

	saved, err := h.participantUseCase.UpdateParticipant(ctx, participant)
	if err != nil {
		return h.failure(locale, subUpdate, err)
	}
	return message(
		h.translate(locale, "participant.updated", map[string]any{"ID": saved.ID}),
		pkgdiscord.BuildParticipantEmbed(h.translator, locale, saved),
	)
}

func (h *Handler) get(ctx context.Context, locale string, opts pkgdiscord.Options) *discordgo.InteractionResponseData {
	id, ok := opts.IntOption(pkgdiscord.OptionID)
	if !ok || id <= 0 {
		return message(h.translate(locale, "errors.invalid_id", nil))
	}
	participant, err := h.participantUseCase.GetParticipantByID(ctx, id)
	if err != nil {
		return h.failure(locale, subGet, err)
	}
	if participant == nil {
		return message(h.translate(locale, "participant.not_found_id", map[string]any{"ID": id}))
	}
	return message("", pkgdiscord.BuildParticipantEmbed(h.translator, locale, participant))
}

func (h *Handler) list(ctx context.Context, locale string) *discordgo.InteractionResponseData {
	participants, err := h.participantUseCase.GetAllParticipants(ctx)
	if err != nil {
		return h.failure(locale, subList, err)
	}
	return message("", pkgdiscord.BuildParticipantListEmbed(h.translator, locale, participants))
}

func (h *Handler) delete(ctx context.Context, locale string, opts pkgdiscord.Options) *discordgo.InteractionResponseData {
	id, ok := opts.IntOption(pkgdiscord.OptionID)
	if !ok || id <= 0 {
		return message(h.translate(locale, "errors.invalid_id", nil))
	}
	if err := h.participantUseCase.DeleteParticipantByID(ctx, id); err != nil {
		return h.failure(locale, subDelete, err)
	}
	return message(h.translate(locale, "participant.deleted", map[string]any{"ID": id}))
}

// find looks up by email first, then by contact.
func (h *Handler) find(ctx context.Context, locale string, opts pkgdiscord.Options) *discordgo.InteractionResponseData {
	var (
		participant *entities.Participant
		err         error
	)
	if email, ok := opts.StringOption(pkgdiscord.OptionEmail); ok {
		participant, err = h.participantUseCase.GetParticipantByEmail(ctx, email)
	} else if contact, ok := opts.StringOption(pkgdiscord.OptionContact); ok {
		participant, err = h.participantUseCase.GetParticipantByContact(ctx, contact)
	} else {
		return message(h.translate(locale, "errors.missing_lookup", nil))
	}
	if err != nil {
		return h.failure(locale, subFind, err)
	}
	if participant == nil {
		return message(h.translate(locale, "participant.not_found", nil))
	}
	return message("", pkgdiscord.BuildParticipantEmbed(h.translator, locale, participant))
}

func (h *Handler) failure(locale, sub string, err error) *discordgo.InteractionResponseData {
	log.Printf("❌ /%s %s: %v", commandName, sub, err)
	return message(pkgdiscord.DomainErrorMessage(h.translator, locale, err))
}
