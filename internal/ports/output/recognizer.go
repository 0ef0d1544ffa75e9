package output

import "confirmbot/internal/domain/entities"

// BooleanResolution is the resolved value of a boolean phrase.
type BooleanResolution struct {
	Value bool
	Score float64
}

// BooleanCandidate is one boolean phrase found in the input. Resolution is nil
// when the phrase was spotted but could not be resolved, as with a hedge.
type BooleanCandidate struct {
	Text       string
	Start, End int
	Resolution *BooleanResolution
}

// BooleanRecognizer finds yes/no phrases in free text for a locale.
// Candidates are ordered best first.
type BooleanRecognizer interface {
	RecognizeBoolean(text, locale string) []BooleanCandidate
}

// ChoiceResolution identifies the matched choice by position.
type ChoiceResolution struct {
	Value string
	Index int
	Score float64
}

// ChoiceCandidate is one choice found in the input.
type ChoiceCandidate struct {
	Text       string
	Start, End int
	Resolution ChoiceResolution
}

// ChoiceRecognizeOptions tunes choice matching.
type ChoiceRecognizeOptions struct {
	// AllowNumbers accepts the 1-based position of a choice, for prompts
	// that render numbered choices.
	AllowNumbers bool
}

// ChoiceRecognizer matches free text against an ordered choice set.
// Candidates are ordered best first.
type ChoiceRecognizer interface {
	RecognizeChoices(text string, choices []entities.Choice, opts ChoiceRecognizeOptions) []ChoiceCandidate
}
