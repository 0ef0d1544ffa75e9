package discord

import (
	"github.com/bwmarrin/discordgo"

	"confirmbot/internal/domain/entities"
)

const embedColor = 0x5865F2

// Discord rejects embeds whose description exceeds this length.
const maxEmbedDescription = 4096

// HeroCardEmbed renders the text part of a hero card. Its buttons are sent
// as message components, see ActionButtons.
func HeroCardEmbed(card entities.HeroCard) *discordgo.MessageEmbed {
	desc := card.Text
	if r := []rune(desc); len(r) > maxEmbedDescription {
		desc = string(r[:maxEmbedDescription-1]) + "…"
	}
	return &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: desc,
		Color:       embedColor,
	}
}

// heroCards returns the hero cards attached to a, skipping other content.
func heroCards(a *entities.Activity) []entities.HeroCard {
	var cards []entities.HeroCard
	for _, att := range a.Attachments {
		if att.ContentType != entities.ContentTypeHeroCard {
			continue
		}
		switch c := att.Content.(type) {
		case entities.HeroCard:
			cards = append(cards, c)
		case *entities.HeroCard:
			if c != nil {
				cards = append(cards, *c)
			}
		}
	}
	return cards
}
