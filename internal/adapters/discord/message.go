package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"confirmbot/internal/domain"
	pkgdiscord "confirmbot/pkg/discord"
)

// HandleMessage treats a plain message as the reply to the question pending
// for its author in that channel. Messages outside a dialog are ignored.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx := context.Background()
	result, err := h.dialogs.Continue(ctx, newActivity(m.ChannelID, m.Author.ID, "", m.Content))
	if errors.Is(err, domain.ErrNoActiveDialog) {
		return
	}
	if err != nil {
		h.logger.Error("message reply failed", zap.String("channel_id", m.ChannelID), zap.Error(err))
		_, _ = s.ChannelMessageSendReply(m.ChannelID, pkgdiscord.DomainErrorMessage(h.translator, "", err), m.Reference())
		return
	}
	h.sendActivities(s, m.ChannelID, m.Reference(), h.outgoing(result))
}
