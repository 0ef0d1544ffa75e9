// Package dialogs loads confirm dialog definitions from a TOML file.
//
// Any field documented as a property accepts either a literal TOML value or
// a string starting with "=" holding an expression, e.g.
//
//	style = "=user.prefers_buttons ? \"suggestedAction\" : \"auto\""
package dialogs

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"confirmbot/internal/application"
	"confirmbot/internal/infrastructure/expression"
	"confirmbot/internal/ports/output"
)

// File is the root of a dialogs file.
type File struct {
	Confirm []ConfirmDefinition `toml:"confirm"`
}

// ConfirmDefinition is one [[confirm]] table.
type ConfirmDefinition struct {
	ID       string `toml:"id"`
	Property string `toml:"property"`

	Prompt               string `toml:"prompt"`
	UnrecognizedPrompt   string `toml:"unrecognized_prompt"`
	InvalidPrompt        string `toml:"invalid_prompt"`
	DefaultValueResponse string `toml:"default_value_response"`

	MaxTurnCount int      `toml:"max_turn_count"`
	AlwaysPrompt bool     `toml:"always_prompt"`
	Validations  []string `toml:"validations"`

	// Properties.
	DefaultValue   any `toml:"default_value"`
	DefaultLocale  any `toml:"default_locale"`
	Style          any `toml:"style"`
	ChoiceOptions  any `toml:"choice_options"`
	ConfirmChoices any `toml:"confirm_choices"`
	OutputFormat   any `toml:"output_format"`
}

// Definition is a compiled dialog, ready to be wrapped in an InputDialog.
type Definition struct {
	Input   application.InputSpec
	Confirm application.ConfirmSpec
}

// LoadFile reads and compiles the dialogs file at path.
func LoadFile(path string, parser output.ExpressionParser) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dialogs %s: %w", path, err)
	}
	return Load(data, parser)
}

// Load compiles dialog definitions from TOML bytes.
func Load(data []byte, parser output.ExpressionParser) ([]Definition, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode dialogs: %w", err)
	}
	seen := map[string]bool{}
	out := make([]Definition, 0, len(f.Confirm))
	for i, def := range f.Confirm {
		d, err := def.compile(parser)
		if err != nil {
			return nil, fmt.Errorf("confirm[%d] %s: %w", i, def.ID, err)
		}
		if seen[d.Confirm.ID] {
			return nil, fmt.Errorf("confirm[%d]: duplicate id %q", i, d.Confirm.ID)
		}
		seen[d.Confirm.ID] = true
		out = append(out, d)
	}
	return out, nil
}

func (c ConfirmDefinition) compile(parser output.ExpressionParser) (Definition, error) {
	if strings.TrimSpace(c.ID) == "" {
		return Definition{}, fmt.Errorf("id is required")
	}
	if c.MaxTurnCount < 0 {
		return Definition{}, fmt.Errorf("max_turn_count must not be negative")
	}

	props := map[string]any{
		"default_value":   c.DefaultValue,
		"default_locale":  c.DefaultLocale,
		"style":           c.Style,
		"choice_options":  c.ChoiceOptions,
		"confirm_choices": c.ConfirmChoices,
		"output_format":   c.OutputFormat,
	}
	exprs := make(map[string]output.Expression, len(props))
	for name, raw := range props {
		e, err := expression.Property(parser, raw)
		if err != nil {
			return Definition{}, fmt.Errorf("%s: %w", name, err)
		}
		exprs[name] = e
	}

	validations := make([]output.Expression, 0, len(c.Validations))
	for _, src := range c.Validations {
		e, err := parser.Parse(strings.TrimPrefix(strings.TrimSpace(src), "="))
		if err != nil {
			return Definition{}, fmt.Errorf("validation: %w", err)
		}
		validations = append(validations, e)
	}

	return Definition{
		Input: application.InputSpec{
			Property:             c.Property,
			Prompt:               c.template("prompt", c.Prompt),
			UnrecognizedPrompt:   c.template("unrecognized_prompt", c.UnrecognizedPrompt),
			InvalidPrompt:        c.template("invalid_prompt", c.InvalidPrompt),
			DefaultValueResponse: c.template("default_value_response", c.DefaultValueResponse),
			MaxTurnCount:         c.MaxTurnCount,
			DefaultValue:         exprs["default_value"],
			AlwaysPrompt:         c.AlwaysPrompt,
			Validations:          validations,
		},
		Confirm: application.ConfirmSpec{
			ID:             c.ID,
			Prompt:         c.Prompt,
			DefaultLocale:  exprs["default_locale"],
			Style:          exprs["style"],
			ChoiceOptions:  exprs["choice_options"],
			ConfirmChoices: exprs["confirm_choices"],
			OutputFormat:   exprs["output_format"],
		},
	}, nil
}

// template names prompts "<id>_<field>" so translations can target them.
func (c ConfirmDefinition) template(field, text string) output.PromptTemplate {
	if text == "" {
		return output.PromptTemplate{}
	}
	return output.PromptTemplate{ID: c.ID + "_" + field, Text: text}
}
