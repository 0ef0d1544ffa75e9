package recognizers

import (
	"sort"
	"strconv"

	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

var _ output.ChoiceRecognizer = (*ChoiceRecognizer)(nil)

// ChoiceRecognizer matches text against choice values, titles and synonyms,
// and optionally accepts the 1-based position of a choice.
type ChoiceRecognizer struct{}

func NewChoiceRecognizer() *ChoiceRecognizer {
	return &ChoiceRecognizer{}
}

// RecognizeChoices returns at most one candidate per choice, best score
// first; equal scores keep choice order.
func (r *ChoiceRecognizer) RecognizeChoices(text string, choices []entities.Choice, opts output.ChoiceRecognizeOptions) []output.ChoiceCandidate {
	norm := []rune(normalize(text))
	if len(norm) == 0 || len(choices) == 0 {
		return nil
	}

	if n, err := strconv.Atoi(string(norm)); err == nil && opts.AllowNumbers && n >= 1 && n <= len(choices) {
		return []output.ChoiceCandidate{{
			Text:       string(norm),
			End:        len(norm),
			Resolution: output.ChoiceResolution{Value: choices[n-1].Value, Index: n - 1, Score: 1},
		}}
	}

	var out []output.ChoiceCandidate
	for i, c := range choices {
		best, found := output.ChoiceCandidate{}, false
		for _, term := range terms(c) {
			phrase := []rune(normalize(term))
			for _, s := range findPhrase(norm, phrase) {
				score := float64(s.end-s.start) / float64(len(norm))
				if found && score <= best.Resolution.Score {
					continue
				}
				best, found = output.ChoiceCandidate{
					Text:       string(norm[s.start:s.end]),
					Start:      s.start,
					End:        s.end,
					Resolution: output.ChoiceResolution{Value: c.Value, Index: i, Score: score},
				}, true
			}
		}
		if found {
			out = append(out, best)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Resolution.Score > out[j].Resolution.Score
	})
	return out
}

func terms(c entities.Choice) []string {
	out := make([]string, 0, 2+len(c.Synonyms))
	out = append(out, c.Value)
	if c.Action != nil && c.Action.Title != "" {
		out = append(out, c.Action.Title)
	}
	return append(out, c.Synonyms...)
}
