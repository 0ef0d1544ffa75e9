package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"confirmbot/internal/domain/entities"
)

// ChoiceCustomIDPrefix marks buttons that post a choice back as a reply.
const ChoiceCustomIDPrefix = "confirm_choice:"

// Discord component limits.
const (
	maxButtonsPerRow = 5
	maxRows          = 5
	maxCustomID      = 100
	maxButtonLabel   = 80
)

// ActionButtons lays card actions out as rows of buttons. Actions beyond
// what a message can hold are dropped.
func ActionButtons(actions []entities.CardAction) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for i, a := range actions {
		if len(rows) == maxRows {
			break
		}
		row = append(row, discordgo.Button{
			Label:    truncate(buttonLabel(a), maxButtonLabel),
			Style:    buttonStyle(i),
			CustomID: ChoiceCustomID(a.Value),
		})
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 && len(rows) < maxRows {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}

// ChoiceCustomID encodes a posted-back value into a button custom ID.
func ChoiceCustomID(value any) string {
	return truncate(ChoiceCustomIDPrefix+fmt.Sprint(value), maxCustomID)
}

// ParseChoiceCustomID returns the value encoded by ChoiceCustomID.
func ParseChoiceCustomID(customID string) (string, bool) {
	return strings.CutPrefix(customID, ChoiceCustomIDPrefix)
}

func buttonLabel(a entities.CardAction) string {
	if a.Title != "" {
		return a.Title
	}
	return fmt.Sprint(a.Value)
}

// The first choice is the affirmative one.
func buttonStyle(i int) discordgo.ButtonStyle {
	switch i {
	case 0:
		return discordgo.SuccessButton
	case 1:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
