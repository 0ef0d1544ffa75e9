package application

import (
	"context"

	"confirmbot/internal/domain/culture"
	"confirmbot/internal/domain/entities"
	"confirmbot/pkg/choices"
)

// RenderConfirm appends the confirm choice set to a copy of base. custom and
// override replace the locale defaults when set.
func RenderConfirm(base *entities.Activity, channelID, locale string, custom []entities.Choice, override *entities.ChoiceOptions, style entities.ListStyle) *entities.Activity {
	entry := culture.MustLookup(locale)
	return choices.Append(base, channelID, effectiveChoices(custom, entry), style, effectiveOptions(override, entry))
}

// RenderPrompt decorates base with the choices resolved for this turn.
func (c *ConfirmInput) RenderPrompt(_ context.Context, turn *entities.Turn, base *entities.Activity) (*entities.Activity, error) {
	s, err := c.snapshot(turn)
	if err != nil {
		return nil, err
	}
	channelID := ""
	if turn.Activity != nil {
		channelID = turn.Activity.ChannelID
	}
	return RenderConfirm(base, channelID, s.locale, s.custom, s.override, s.style), nil
}
