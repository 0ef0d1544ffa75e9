package application

import (
	"fmt"

	"confirmbot/internal/domain/culture"
	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/input"
	"confirmbot/internal/ports/output"
)

var _ input.InputRecognizer = (*ConfirmInput)(nil)

// ConfirmSpec configures a ConfirmInput. Every expression is optional and is
// evaluated against memory each time it is needed.
type ConfirmSpec struct {
	// ID overrides the identity derived from Prompt.
	ID     string
	Prompt string

	DefaultLocale  output.Expression
	Style          output.Expression
	ChoiceOptions  output.Expression
	ConfirmChoices output.Expression
	OutputFormat   output.Expression
}

// ConfirmInput recognizes yes/no answers and renders confirm prompts.
type ConfirmInput struct {
	spec       ConfirmSpec
	recognizer *ConfirmRecognizer
}

func NewConfirmInput(spec ConfirmSpec, booleans output.BooleanRecognizer, choices output.ChoiceRecognizer) *ConfirmInput {
	return &ConfirmInput{
		spec:       spec,
		recognizer: NewConfirmRecognizer(booleans, choices),
	}
}

// ID is "ConfirmInput[<prompt>]" unless an explicit ID was configured.
func (c *ConfirmInput) ID() string {
	if c.spec.ID != "" {
		return c.spec.ID
	}
	return fmt.Sprintf("ConfirmInput[%s]", c.spec.Prompt)
}

// snapshot is the configuration resolved for one turn. It is never cached.
type snapshot struct {
	locale   string
	style    entities.ListStyle
	override *entities.ChoiceOptions
	custom   []entities.Choice
}

func (c *ConfirmInput) locale(turn *entities.Turn, scope map[string]any) (string, error) {
	defaultLocale, err := resolveOr(c.spec.DefaultLocale, scope, asString, "")
	if err != nil {
		return "", err
	}
	activityLocale := ""
	if turn.Activity != nil {
		activityLocale = turn.Activity.Locale
	}
	return culture.Resolve(activityLocale, defaultLocale), nil
}

func (c *ConfirmInput) customChoices(scope map[string]any) ([]entities.Choice, error) {
	return resolveOr(c.spec.ConfirmChoices, scope, asChoices, nil)
}

func (c *ConfirmInput) choiceOptions(scope map[string]any) (*entities.ChoiceOptions, error) {
	return resolveOr(c.spec.ChoiceOptions, scope, asChoiceOptionsRef, nil)
}

func (c *ConfirmInput) snapshot(turn *entities.Turn) (snapshot, error) {
	scope := scopeFor(turn)
	var (
		s   snapshot
		err error
	)
	if s.locale, err = c.locale(turn, scope); err != nil {
		return snapshot{}, err
	}
	if s.custom, err = c.customChoices(scope); err != nil {
		return snapshot{}, err
	}
	if s.override, err = c.choiceOptions(scope); err != nil {
		return snapshot{}, err
	}
	if s.style, err = resolveOr(c.spec.Style, scope, asListStyle, entities.ListStyleAuto); err != nil {
		return snapshot{}, err
	}
	return s, nil
}

// effectiveChoices prefers a non-empty custom set over the locale defaults.
// Custom sets are used as given: index 0 is always read as the affirmative.
func effectiveChoices(custom []entities.Choice, entry culture.Entry) []entities.Choice {
	if len(custom) > 0 {
		return custom
	}
	return entry.DefaultChoices()
}

func effectiveOptions(override *entities.ChoiceOptions, entry culture.Entry) entities.ChoiceOptions {
	if override != nil {
		return *override
	}
	return entry.Options
}
