package entities

// ActionImBack is the card action type that posts its value back as if the
// user had typed it.
const ActionImBack = "imBack"

// CardAction is a clickable action attached to a message.
type CardAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Value any    `json:"value,omitempty"`
}

// Choice is one selectable option of a choice set.
type Choice struct {
	Value    string      `json:"value"`
	Action   *CardAction `json:"action,omitempty"`
	Synonyms []string    `json:"synonyms,omitempty"`
}

// Title is the label shown to the user: the action title when present,
// otherwise the value.
func (c Choice) Title() string {
	if c.Action != nil && c.Action.Title != "" {
		return c.Action.Title
	}
	return c.Value
}

// ToChoices builds a choice set from plain labels, preserving order.
func ToChoices(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Value: v})
	}
	return out
}

// ChoiceOptions controls how a choice set is rendered as text.
type ChoiceOptions struct {
	InlineSeparator string `json:"inline_separator"`
	InlineOr        string `json:"inline_or"`
	InlineOrMore    string `json:"inline_or_more"`
	IncludeNumbers  bool   `json:"include_numbers"`
}
