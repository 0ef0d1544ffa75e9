package application

import (
	"bytes"
	"text/template"

	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

// countingBooleans returns fixed candidates and counts calls.
type countingBooleans struct {
	candidates []output.BooleanCandidate
	calls      int
}

func (f *countingBooleans) RecognizeBoolean(string, string) []output.BooleanCandidate {
	f.calls++
	return f.candidates
}

// countingChoices returns fixed candidates and records the choice set it saw.
type countingChoices struct {
	candidates []output.ChoiceCandidate
	calls      int
	seen       []entities.Choice
	opts       output.ChoiceRecognizeOptions
}

func (f *countingChoices) RecognizeChoices(_ string, choices []entities.Choice, opts output.ChoiceRecognizeOptions) []output.ChoiceCandidate {
	f.calls++
	f.seen = choices
	f.opts = opts
	return f.candidates
}

func boolean(v bool) output.BooleanCandidate {
	return output.BooleanCandidate{Resolution: &output.BooleanResolution{Value: v, Score: 1}}
}

func choiceAt(i int) output.ChoiceCandidate {
	return output.ChoiceCandidate{Resolution: output.ChoiceResolution{Index: i, Score: 1}}
}

// textPrompts renders templates with text/template, ignoring the locale.
type textPrompts struct{}

func (textPrompts) RenderPrompt(_ string, tmpl output.PromptTemplate, data map[string]any) string {
	t, err := template.New(tmpl.ID).Parse(tmpl.Text)
	if err != nil {
		return tmpl.Text
	}
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return tmpl.Text
	}
	return b.String()
}

func message(text, locale string) *entities.Activity {
	return &entities.Activity{
		Type:           entities.ActivityMessage,
		ChannelID:      "console",
		ConversationID: "c1",
		Locale:         locale,
		Text:           text,
	}
}

// turnWithSlot returns a turn whose active dialog holds v in its input slot.
func turnWithSlot(v any, locale string) *entities.Turn {
	state := entities.NewConversationState("c1")
	state.Active = &entities.DialogState{DialogID: "confirm"}
	state.Active.SetInput(v)
	return &entities.Turn{Activity: message("", locale), State: state}
}
