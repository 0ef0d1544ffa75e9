package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "confirmbot/pkg/discord"
)

// HandleChoiceButton posts the clicked choice back as the user's reply, the
// same way typing it would.
func (h *Handler) HandleChoiceButton(s *discordgo.Session, i *discordgo.InteractionCreate, value string) {
	ctx := context.Background()
	user := interactionUser(i.Interaction)
	if user == nil {
		return
	}
	locale := string(i.Locale)

	result, err := h.dialogs.Continue(ctx, newActivity(i.ChannelID, user.ID, locale, value))
	if err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	h.respondActivities(s, i.Interaction, h.outgoing(result))
}
