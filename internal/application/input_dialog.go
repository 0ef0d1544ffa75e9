package application

import (
	"context"
	"fmt"

	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/input"
	"confirmbot/internal/ports/output"
)

// InputSpec configures the retry loop around an input recognizer.
type InputSpec struct {
	// Property is the memory path that receives the final value, e.g. "user.confirmed".
	Property string

	Prompt               output.PromptTemplate
	UnrecognizedPrompt   output.PromptTemplate
	InvalidPrompt        output.PromptTemplate
	DefaultValueResponse output.PromptTemplate

	// MaxTurnCount bounds the number of replies; 0 means unlimited.
	MaxTurnCount int
	DefaultValue output.Expression
	AlwaysPrompt bool
	// Validations must all evaluate to true for a recognized value to be accepted.
	Validations []output.Expression
}

// InputDialog drives an InputRecognizer across turns: it decides when to
// prompt, counts retries and runs validations.
type InputDialog struct {
	spec    InputSpec
	input   input.InputRecognizer
	prompts output.PromptRenderer
}

func NewInputDialog(spec InputSpec, in input.InputRecognizer, prompts output.PromptRenderer) *InputDialog {
	return &InputDialog{spec: spec, input: in, prompts: prompts}
}

func (d *InputDialog) ID() string { return d.input.ID() }

// Begin starts the dialog. A value already stored at Property is recognized
// first so that a previously answered question is not asked again; when it
// fails, the matching retry prompt is used.
func (d *InputDialog) Begin(ctx context.Context, turn *entities.Turn) (*entities.TurnResult, error) {
	dialog := &entities.DialogState{DialogID: d.ID()}
	turn.State.Active = dialog
	if !d.spec.AlwaysPrompt && d.spec.Property != "" {
		if v, ok := turn.State.GetPath(d.spec.Property); ok && v != nil {
			dialog.SetInput(v)
		}
	}

	state, err := d.recognize(ctx, turn)
	if err != nil {
		return nil, err
	}
	if state == entities.InputValid {
		return d.end(turn), nil
	}
	return d.prompt(ctx, turn, state)
}

// Continue handles a reply. Non-message activities leave the dialog waiting.
func (d *InputDialog) Continue(ctx context.Context, turn *entities.Turn) (*entities.TurnResult, error) {
	if turn.Activity == nil || turn.Activity.Type != entities.ActivityMessage {
		return &entities.TurnResult{Status: entities.DialogWaiting}, nil
	}
	dialog := turn.State.Active
	dialog.TurnCount++
	if turn.Activity.Value != nil {
		dialog.SetInput(turn.Activity.Value)
	} else {
		dialog.SetInput(turn.Activity.Text)
	}

	state, err := d.recognize(ctx, turn)
	if err != nil {
		return nil, err
	}
	if state == entities.InputValid {
		return d.end(turn), nil
	}
	if d.spec.MaxTurnCount == 0 || dialog.TurnCount < d.spec.MaxTurnCount {
		return d.prompt(ctx, turn, state)
	}
	return d.exhausted(turn)
}

func (d *InputDialog) recognize(ctx context.Context, turn *entities.Turn) (entities.InputState, error) {
	if _, ok := turn.State.Active.Input(); !ok {
		return entities.InputMissing, nil
	}
	result, err := d.input.RecognizeInput(ctx, turn)
	if err != nil {
		return entities.InputMissing, fmt.Errorf("recognize %s: %w", d.ID(), err)
	}
	if !result.Valid() {
		return entities.InputUnrecognized, nil
	}
	scope := scopeFor(turn)
	for _, v := range d.spec.Validations {
		raw, err := v.Evaluate(scope)
		if err != nil {
			return entities.InputMissing, fmt.Errorf("validation %s: %w", v, err)
		}
		ok, err := asBool(raw)
		if err != nil {
			return entities.InputMissing, fmt.Errorf("validation %s: %w", v, err)
		}
		if !ok {
			return entities.InputInvalid, nil
		}
	}
	return entities.InputValid, nil
}

// prompt picks the template for state and lets the recognizer add its
// choices. Retry prompts fall back to the main prompt when unset.
func (d *InputDialog) prompt(ctx context.Context, turn *entities.Turn, state entities.InputState) (*entities.TurnResult, error) {
	tmpl := d.spec.Prompt
	switch {
	case state == entities.InputUnrecognized && !d.spec.UnrecognizedPrompt.IsZero():
		tmpl = d.spec.UnrecognizedPrompt
	case state == entities.InputInvalid && !d.spec.InvalidPrompt.IsZero():
		tmpl = d.spec.InvalidPrompt
	}

	base := d.render(turn, tmpl)
	msg, err := d.input.RenderPrompt(ctx, turn, base)
	if err != nil {
		return nil, fmt.Errorf("render prompt %s: %w", d.ID(), err)
	}
	return &entities.TurnResult{Status: entities.DialogWaiting, Activities: []*entities.Activity{msg}}, nil
}

func (d *InputDialog) exhausted(turn *entities.Turn) (*entities.TurnResult, error) {
	if d.spec.DefaultValue == nil {
		turn.State.Active = nil
		return &entities.TurnResult{Status: entities.DialogComplete}, nil
	}
	v, err := d.spec.DefaultValue.Evaluate(scopeFor(turn))
	if err != nil {
		return nil, fmt.Errorf("default value %s: %w", d.spec.DefaultValue, err)
	}
	turn.State.Active.SetInput(v)

	var activities []*entities.Activity
	if !d.spec.DefaultValueResponse.IsZero() {
		activities = append(activities, d.render(turn, d.spec.DefaultValueResponse))
	}
	result := d.end(turn)
	result.Activities = activities
	return result, nil
}

// end stores the slot value at Property and clears the active dialog.
func (d *InputDialog) end(turn *entities.Turn) *entities.TurnResult {
	v, _ := turn.State.Active.Input()
	if d.spec.Property != "" {
		turn.State.SetPath(d.spec.Property, v)
	}
	turn.State.Active = nil
	return &entities.TurnResult{Status: entities.DialogComplete, Value: v}
}

func (d *InputDialog) render(turn *entities.Turn, tmpl output.PromptTemplate) *entities.Activity {
	locale := ""
	if turn.Activity != nil {
		locale = turn.Activity.Locale
	}
	return entities.NewMessage(d.prompts.RenderPrompt(locale, tmpl, scopeFor(turn)))
}
