// Package choices renders a choice set onto an outgoing activity.
package choices

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"confirmbot/internal/domain/entities"
)

func withDefaults(o entities.ChoiceOptions) entities.ChoiceOptions {
	if o.InlineSeparator == "" {
		o.InlineSeparator = ", "
	}
	if o.InlineOr == "" {
		o.InlineOr = " or "
	}
	if o.InlineOrMore == "" {
		o.InlineOrMore = ", or "
	}
	return o
}

// Inline renders "text (1) Yes or (2) No".
func Inline(choices []entities.Choice, text, speak string, opts entities.ChoiceOptions) *entities.Activity {
	opts = withDefaults(opts)
	var b strings.Builder
	b.WriteString(text)
	b.WriteString(" ")
	connector := ""
	for i, c := range choices {
		if i == len(choices)-1 && len(choices) > 1 {
			if len(choices) == 2 {
				connector = opts.InlineOr
			} else {
				connector = opts.InlineOrMore
			}
		}
		b.WriteString(connector)
		if opts.IncludeNumbers {
			b.WriteString("(" + strconv.Itoa(i+1) + ") ")
		}
		b.WriteString(c.Title())
		connector = opts.InlineSeparator
	}
	return message(b.String(), speak)
}

// List renders one choice per line, numbered or bulleted.
func List(choices []entities.Choice, text, speak string, opts entities.ChoiceOptions) *entities.Activity {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n   ")
	connector := ""
	for i, c := range choices {
		b.WriteString(connector)
		if opts.IncludeNumbers {
			b.WriteString(strconv.Itoa(i+1) + ". ")
		} else {
			b.WriteString("- ")
		}
		b.WriteString(c.Title())
		connector = "\n   "
	}
	return message(b.String(), speak)
}

// SuggestedAction renders the choices as channel-native quick replies.
func SuggestedAction(choices []entities.Choice, text, speak string) *entities.Activity {
	msg := message(text, speak)
	msg.SuggestedActions = toActions(choices)
	return msg
}

// HeroCard renders the choices as buttons on a card attachment.
func HeroCard(choices []entities.Choice, text, speak string) *entities.Activity {
	msg := message("", speak)
	msg.Attachments = []entities.Attachment{{
		ContentType: entities.ContentTypeHeroCard,
		Content:     entities.HeroCard{Text: text, Buttons: toActions(choices)},
	}}
	return msg
}

// ForChannel picks the richest style channelID can display for choices.
func ForChannel(channelID string, choices []entities.Choice, text, speak string, opts entities.ChoiceOptions) *entities.Activity {
	maxTitle := 0
	for _, c := range choices {
		maxTitle = max(maxTitle, utf8.RuneCountInString(c.Title()))
	}
	longTitles := maxTitle > MaxActionTitleLength(channelID)
	suggested := SupportsSuggestedActions(channelID, len(choices))
	cards := SupportsCardActions(channelID, len(choices))

	switch {
	case !longTitles && !suggested && cards:
		return HeroCard(choices, text, speak)
	case !longTitles && suggested:
		return SuggestedAction(choices, text, speak)
	case !longTitles && len(choices) <= 3:
		return Inline(choices, text, speak, opts)
	default:
		return List(choices, text, speak, opts)
	}
}

// Append renders choices with style and merges the result into a copy of
// prompt. prompt itself is left untouched.
func Append(prompt *entities.Activity, channelID string, choices []entities.Choice, style entities.ListStyle, opts entities.ChoiceOptions) *entities.Activity {
	out := prompt.Clone()
	if out == nil {
		out = message("", "")
	}

	var msg *entities.Activity
	switch style {
	case entities.ListStyleInline:
		msg = Inline(choices, out.Text, out.Speak, opts)
	case entities.ListStyleList:
		msg = List(choices, out.Text, out.Speak, opts)
	case entities.ListStyleSuggestedAction:
		msg = SuggestedAction(choices, out.Text, out.Speak)
	case entities.ListStyleHeroCard:
		msg = HeroCard(choices, out.Text, out.Speak)
	case entities.ListStyleNone:
		msg = message(out.Text, out.Speak)
	default:
		msg = ForChannel(channelID, choices, out.Text, out.Speak, opts)
	}

	out.Text = msg.Text
	if msg.Speak != "" {
		out.Speak = msg.Speak
	}
	if len(msg.Attachments) > 0 {
		out.Attachments = append(out.Attachments, msg.Attachments...)
	}
	if len(msg.SuggestedActions) > 0 {
		out.SuggestedActions = msg.SuggestedActions
	}
	out.InputHint = entities.InputHintExpectingInput
	return out
}

func toActions(choices []entities.Choice) []entities.CardAction {
	actions := make([]entities.CardAction, 0, len(choices))
	for _, c := range choices {
		if c.Action != nil {
			actions = append(actions, *c.Action)
			continue
		}
		actions = append(actions, entities.CardAction{Type: entities.ActionImBack, Title: c.Value, Value: c.Value})
	}
	return actions
}

func message(text, speak string) *entities.Activity {
	msg := entities.NewMessage(text)
	msg.Speak = speak
	return msg
}
