// Package culture holds the per-locale confirm defaults and the resolver that
// maps arbitrary locale tags onto them.
package culture

import (
	"slices"

	"confirmbot/internal/domain/entities"
)

// Supported locale keys.
const (
	Spanish           = "es-es"
	Dutch             = "nl-nl"
	English           = "en-us"
	French            = "fr-fr"
	German            = "de-de"
	Japanese          = "ja-jp"
	Portuguese        = "pt-br"
	ChineseSimplified = "zh-cn"
	Fallback          = English
)

// Entry is the catalog row for one locale. Choices[0] is the affirmative label.
type Entry struct {
	Locale  string
	Choices [2]string
	Options entities.ChoiceOptions
}

// DefaultChoices returns a fresh choice set built from the entry labels.
func (e Entry) DefaultChoices() []entities.Choice {
	return entities.ToChoices(e.Choices[0], e.Choices[1])
}

func latinOptions(or string) entities.ChoiceOptions {
	return entities.ChoiceOptions{
		InlineSeparator: ", ",
		InlineOr:        " " + or + " ",
		InlineOrMore:    ", " + or + " ",
		IncludeNumbers:  true,
	}
}

// catalog is built once at package init and never written afterwards.
var catalog = map[string]Entry{
	Spanish:    {Locale: Spanish, Choices: [2]string{"Sí", "No"}, Options: latinOptions("o")},
	Dutch:      {Locale: Dutch, Choices: [2]string{"Ja", "Nee"}, Options: latinOptions("of")},
	English:    {Locale: English, Choices: [2]string{"Yes", "No"}, Options: latinOptions("or")},
	French:     {Locale: French, Choices: [2]string{"Oui", "Non"}, Options: latinOptions("ou")},
	German:     {Locale: German, Choices: [2]string{"Ja", "Nein"}, Options: latinOptions("oder")},
	Portuguese: {Locale: Portuguese, Choices: [2]string{"Sim", "Não"}, Options: latinOptions("ou")},
	Japanese: {
		Locale:  Japanese,
		Choices: [2]string{"はい", "いいえ"},
		Options: entities.ChoiceOptions{
			InlineSeparator: "、 ",
			InlineOr:        " または ",
			InlineOrMore:    "、 または ",
			IncludeNumbers:  true,
		},
	},
	ChineseSimplified: {
		Locale:  ChineseSimplified,
		Choices: [2]string{"是的", "不"},
		Options: entities.ChoiceOptions{
			InlineSeparator: "， ",
			InlineOr:        " 要么 ",
			InlineOrMore:    "， 要么 ",
			IncludeNumbers:  true,
		},
	},
}

// Lookup returns the entry for an exact locale key.
func Lookup(locale string) (Entry, bool) {
	e, ok := catalog[locale]
	return e, ok
}

// MustLookup returns the entry for locale, or the fallback entry.
func MustLookup(locale string) Entry {
	if e, ok := catalog[locale]; ok {
		return e
	}
	return catalog[Fallback]
}

// Locales lists every catalog key in sorted order.
func Locales() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
