package discord

import (
	"github.com/bwmarrin/discordgo"

	"confirmbot/internal/domain/entities"
)

// MessageFromActivity converts an outgoing activity into a Discord message.
// Suggested actions and hero card buttons both become button rows.
func MessageFromActivity(a *entities.Activity) *discordgo.MessageSend {
	embeds, components := render(a)
	return &discordgo.MessageSend{
		Content:    a.Text,
		Embeds:     embeds,
		Components: components,
	}
}

// InteractionData converts an outgoing activity into interaction response data.
func InteractionData(a *entities.Activity) *discordgo.InteractionResponseData {
	embeds, components := render(a)
	return &discordgo.InteractionResponseData{
		Content:    a.Text,
		Embeds:     embeds,
		Components: components,
	}
}

// WebhookParams converts an outgoing activity into a follow-up message.
func WebhookParams(a *entities.Activity) *discordgo.WebhookParams {
	embeds, components := render(a)
	return &discordgo.WebhookParams{
		Content:    a.Text,
		Embeds:     embeds,
		Components: components,
	}
}

func render(a *entities.Activity) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	actions := append([]entities.CardAction(nil), a.SuggestedActions...)
	var embeds []*discordgo.MessageEmbed
	for _, card := range heroCards(a) {
		embeds = append(embeds, HeroCardEmbed(card))
		actions = append(actions, card.Buttons...)
	}
	return embeds, ActionButtons(actions)
}
