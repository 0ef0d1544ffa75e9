package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"confirmbot/internal/domain"
)

// replyEmojis are reactions treated as an answer to the pending question.
var replyEmojis = map[string]bool{
	"✅": true,
	"❌": true,
	"👍": true,
	"👎": true,
}

// HandleReactionAdd feeds a 👍/👎 style reaction to the dialog waiting for
// the reacting user in that channel.
func (h *Handler) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State != nil && s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}
	if !replyEmojis[r.Emoji.Name] {
		return
	}

	ctx := context.Background()
	result, err := h.dialogs.Continue(ctx, newActivity(r.ChannelID, r.UserID, "", r.Emoji.Name))
	if errors.Is(err, domain.ErrNoActiveDialog) {
		return
	}
	if err != nil {
		h.logger.Error("reaction reply failed", zap.String("channel_id", r.ChannelID), zap.Error(err))
		return
	}
	ref := &discordgo.MessageReference{MessageID: r.MessageID, ChannelID: r.ChannelID, GuildID: r.GuildID}
	h.sendActivities(s, r.ChannelID, ref, h.outgoing(result))
}
