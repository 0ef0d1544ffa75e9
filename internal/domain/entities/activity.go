package entities

import "slices"

// Activity types.
const (
	ActivityMessage = "message"
	ActivityEvent   = "event"
)

// InputHintExpectingInput marks an outgoing activity as waiting for a reply.
const InputHintExpectingInput = "expectingInput"

// ContentTypeHeroCard identifies a HeroCard attachment.
const ContentTypeHeroCard = "application/vnd.microsoft.card.hero"

// Activity is a single incoming or outgoing conversational message.
type Activity struct {
	Type             string       `json:"type"`
	ChannelID        string       `json:"channel_id"`
	ConversationID   string       `json:"conversation_id"`
	From             string       `json:"from,omitempty"`
	Locale           string       `json:"locale,omitempty"`
	Text             string       `json:"text,omitempty"`
	Speak            string       `json:"speak,omitempty"`
	Value            any          `json:"value,omitempty"`
	InputHint        string       `json:"input_hint,omitempty"`
	SuggestedActions []CardAction `json:"suggested_actions,omitempty"`
	Attachments      []Attachment `json:"attachments,omitempty"`
}

// Attachment is rich content carried by an activity.
type Attachment struct {
	ContentType string `json:"content_type"`
	Content     any    `json:"content"`
}

// HeroCard is a card with a text body and a row of buttons.
type HeroCard struct {
	Title   string       `json:"title,omitempty"`
	Text    string       `json:"text,omitempty"`
	Buttons []CardAction `json:"buttons,omitempty"`
}

// NewMessage returns a message activity with the given text.
func NewMessage(text string) *Activity {
	return &Activity{Type: ActivityMessage, Text: text}
}

// Clone returns a copy whose slices can be modified without touching a.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	c := *a
	c.SuggestedActions = slices.Clone(a.SuggestedActions)
	c.Attachments = slices.Clone(a.Attachments)
	return &c
}
