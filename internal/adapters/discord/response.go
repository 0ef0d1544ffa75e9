package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"confirmbot/internal/domain/entities"
	"confirmbot/pkg/choices"
	pkgdiscord "confirmbot/pkg/discord"
)

// conversationID scopes dialog state to one user in one channel.
func conversationID(channelID, userID string) string {
	return channelID + ":" + userID
}

func newActivity(channelID, userID, locale, text string) *entities.Activity {
	return &entities.Activity{
		Type:           entities.ActivityMessage,
		ChannelID:      choices.ChannelDiscord,
		ConversationID: conversationID(channelID, userID),
		From:           userID,
		Locale:         locale,
		Text:           text,
	}
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// outgoing returns the activities to send for a turn, followed by a
// confirmation once the dialog has completed.
func (h *Handler) outgoing(result *entities.TurnResult) []*entities.Activity {
	out := result.Activities
	locale := result.Locale
	if result.Status != entities.DialogComplete {
		return out
	}
	if result.Value == nil {
		return append(out, entities.NewMessage(h.translator.T(locale, "dialog_cancelled", nil)))
	}
	text := h.translator.T(locale, "dialog_complete", map[string]any{"Value": fmt.Sprint(result.Value)})
	return append(out, entities.NewMessage(text))
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondActivities answers the interaction with the first activity and
// sends the rest as follow-ups.
func (h *Handler) respondActivities(s *discordgo.Session, i *discordgo.Interaction, activities []*entities.Activity) {
	if len(activities) == 0 {
		_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
		return
	}
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: pkgdiscord.InteractionData(activities[0]),
	})
	if err != nil {
		h.logger.Error("interaction respond failed", zap.String("interaction_id", i.ID), zap.Error(err))
		return
	}
	for _, a := range activities[1:] {
		if _, err := s.FollowupMessageCreate(i, true, pkgdiscord.WebhookParams(a)); err != nil {
			h.logger.Error("followup failed", zap.String("interaction_id", i.ID), zap.Error(err))
		}
	}
}

// sendActivities posts activities to a channel, the first one as a reply to
// replyTo when given.
func (h *Handler) sendActivities(s *discordgo.Session, channelID string, replyTo *discordgo.MessageReference, activities []*entities.Activity) {
	for n, a := range activities {
		msg := pkgdiscord.MessageFromActivity(a)
		if n == 0 {
			msg.Reference = replyTo
		}
		if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
			h.logger.Error("send message failed", zap.String("channel_id", channelID), zap.Error(err))
		}
	}
}
