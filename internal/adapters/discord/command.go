package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"confirmbot/internal/domain"
	pkgdiscord "confirmbot/pkg/discord"
)

const (
	commandConfirm = "confirm"
	commandCancel  = "confirm-cancel"
	optionDialog   = "dialog"

	// Discord caps static option choices.
	maxCommandChoices = 25
)

// Commands returns the slash commands to register.
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	ids := h.dialogs.Dialogs()
	if len(ids) > maxCommandChoices {
		h.logger.Warn("too many dialogs for command choices", zap.Int("dialogs", len(ids)))
		ids = ids[:maxCommandChoices]
	}
	dialogChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(ids))
	for _, id := range ids {
		dialogChoices = append(dialogChoices, &discordgo.ApplicationCommandOptionChoice{Name: id, Value: id})
	}
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandConfirm,
			Description: "Ask a yes/no question",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionDialog,
				Description: "Dialog to start",
				Required:    true,
				Choices:     dialogChoices,
			}},
		},
		{
			Name:        commandCancel,
			Description: "Drop the pending question and everything remembered here",
		},
	}
}

func (h *Handler) HandleConfirmCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i.Interaction)
	if user == nil {
		return
	}
	locale := string(i.Locale)

	var dialogID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == optionDialog {
			dialogID = opt.StringValue()
		}
	}

	result, err := h.dialogs.Begin(ctx, dialogID, newActivity(i.ChannelID, user.ID, locale, ""))
	if err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	h.respondActivities(s, i.Interaction, h.outgoing(result))
}

func (h *Handler) HandleCancelCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i.Interaction)
	if user == nil {
		return
	}
	locale := string(i.Locale)

	err := h.dialogs.Cancel(ctx, conversationID(i.ChannelID, user.ID))
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "dialog_cancelled", nil))
}
