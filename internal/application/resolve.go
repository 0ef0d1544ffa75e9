package application

import (
	"fmt"
	"strings"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

// resolveOr evaluates expr against scope and converts the result. convert
// reports ok=false for empty results; an absent expression or an empty result
// yields fallback.
func resolveOr[T any](expr output.Expression, scope map[string]any, convert func(any) (T, bool, error), fallback T) (T, error) {
	if expr == nil {
		return fallback, nil
	}
	v, err := expr.Evaluate(scope)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("evaluate %s: %w", expr, err)
	}
	t, ok, err := convert(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("convert %s: %w", expr, err)
	}
	if !ok {
		return fallback, nil
	}
	return t, nil
}

func asString(v any) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	return s, s != "", nil
}

func asListStyle(v any) (entities.ListStyle, bool, error) {
	s, ok, _ := asString(v)
	if !ok {
		return "", false, nil
	}
	style, err := entities.ParseListStyle(s)
	if err != nil {
		return "", false, err
	}
	return style, true, nil
}

func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %v is not a boolean", domain.ErrInvalidExpression, v)
}

// asChoices accepts a list of labels or of {value, title, synonyms} objects.
func asChoices(v any) ([]entities.Choice, bool, error) {
	items, ok := v.([]any)
	if !ok {
		if v == nil {
			return nil, false, nil
		}
		if ss, isStrings := v.([]string); isStrings {
			return entities.ToChoices(ss...), len(ss) > 0, nil
		}
		return nil, false, fmt.Errorf("%w: choices must be a list, got %T", domain.ErrInvalidExpression, v)
	}
	out := make([]entities.Choice, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case string:
			out = append(out, entities.Choice{Value: it})
		case map[string]any:
			c := entities.Choice{}
			c.Value, _, _ = asString(it["value"])
			if title, ok, _ := asString(it["title"]); ok {
				c.Action = &entities.CardAction{Type: entities.ActionImBack, Title: title, Value: c.Value}
			}
			if syn, ok := it["synonyms"].([]any); ok {
				for _, s := range syn {
					if str, ok, _ := asString(s); ok {
						c.Synonyms = append(c.Synonyms, str)
					}
				}
			}
			out = append(out, c)
		default:
			return nil, false, fmt.Errorf("%w: unsupported choice %T", domain.ErrInvalidExpression, item)
		}
	}
	return out, len(out) > 0, nil
}

// asChoiceOptions reads an options object; include_numbers defaults to true.
func asChoiceOptions(v any) (entities.ChoiceOptions, bool, error) {
	m, ok := v.(map[string]any)
	if !ok {
		if v == nil {
			return entities.ChoiceOptions{}, false, nil
		}
		return entities.ChoiceOptions{}, false, fmt.Errorf("%w: choice options must be an object, got %T", domain.ErrInvalidExpression, v)
	}
	if len(m) == 0 {
		return entities.ChoiceOptions{}, false, nil
	}
	opts := entities.ChoiceOptions{IncludeNumbers: true}
	if s, ok := m["inline_separator"].(string); ok {
		opts.InlineSeparator = s
	}
	if s, ok := m["inline_or"].(string); ok {
		opts.InlineOr = s
	}
	if s, ok := m["inline_or_more"].(string); ok {
		opts.InlineOrMore = s
	}
	if raw, ok := m["include_numbers"]; ok {
		b, err := asBool(raw)
		if err != nil {
			return entities.ChoiceOptions{}, false, err
		}
		opts.IncludeNumbers = b
	}
	return opts, true, nil
}

func asChoiceOptionsRef(v any) (*entities.ChoiceOptions, bool, error) {
	opts, ok, err := asChoiceOptions(v)
	if !ok || err != nil {
		return nil, false, err
	}
	return &opts, true, nil
}
