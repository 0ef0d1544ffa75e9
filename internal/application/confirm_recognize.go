package application

import (
	"context"
	"fmt"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/culture"
	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

// ConfirmRecognizer maps free text to a boolean: boolean phrases first, then
// the confirm choice set.
type ConfirmRecognizer struct {
	booleans output.BooleanRecognizer
	choices  output.ChoiceRecognizer
}

func NewConfirmRecognizer(booleans output.BooleanRecognizer, choices output.ChoiceRecognizer) *ConfirmRecognizer {
	return &ConfirmRecognizer{booleans: booleans, choices: choices}
}

// Recognize returns Recognized(bool) or Unrecognized. custom replaces the
// locale's default choices when non-empty, override its formatting options.
// A reply whose boolean phrases are all unresolved, such as a hedge, is
// Unrecognized without consulting the choices.
func (r *ConfirmRecognizer) Recognize(text, locale string, custom []entities.Choice, override *entities.ChoiceOptions) entities.Recognition {
	spotted := r.booleans.RecognizeBoolean(text, locale)
	for _, c := range spotted {
		if c.Resolution != nil {
			return entities.Recognized(c.Resolution.Value)
		}
	}
	if len(spotted) > 0 {
		return entities.Unrecognized()
	}

	entry := culture.MustLookup(locale)
	opts := output.ChoiceRecognizeOptions{AllowNumbers: effectiveOptions(override, entry).IncludeNumbers}
	if found := r.choices.RecognizeChoices(text, effectiveChoices(custom, entry), opts); len(found) > 0 {
		return entities.Recognized(found[0].Resolution.Index == 0)
	}
	return entities.Unrecognized()
}

// RecognizeInput recognizes the input slot. A slot already holding a boolean
// is accepted as is. A fresh recognition is written back to the slot, then
// replaced by the output format when one is configured.
func (c *ConfirmInput) RecognizeInput(_ context.Context, turn *entities.Turn) (entities.Recognition, error) {
	dialog := turn.State.Active
	if dialog == nil {
		return entities.Unrecognized(), domain.ErrNoActiveDialog
	}

	raw, _ := dialog.Input()
	if v, isBool := raw.(bool); isBool {
		return entities.Recognized(v), nil
	}

	scope := scopeFor(turn)
	locale, err := c.locale(turn, scope)
	if err != nil {
		return entities.Unrecognized(), err
	}
	custom, err := c.customChoices(scope)
	if err != nil {
		return entities.Unrecognized(), err
	}
	override, err := c.choiceOptions(scope)
	if err != nil {
		return entities.Unrecognized(), err
	}
	result := c.recognizer.Recognize(inputText(raw), locale, custom, override)
	if !result.Valid() {
		return result, nil
	}
	dialog.SetInput(result.Value())

	if err := c.applyOutputFormat(turn); err != nil {
		return entities.Unrecognized(), err
	}
	v, _ := dialog.Input()
	return entities.Recognized(v), nil
}

func (c *ConfirmInput) applyOutputFormat(turn *entities.Turn) error {
	if c.spec.OutputFormat == nil {
		return nil
	}
	v, err := c.spec.OutputFormat.Evaluate(scopeFor(turn))
	if err != nil {
		return fmt.Errorf("evaluate output format %s: %w", c.spec.OutputFormat, err)
	}
	turn.State.Active.SetInput(v)
	return nil
}

func inputText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
