// Package recognizers provides keyword-based boolean and choice recognizers.
package recognizers

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// accentMark matches combining marks except the kana voicing marks, which
// change the meaning of a word rather than its spelling.
var accentMark = runes.Predicate(func(r rune) bool {
	return unicode.Is(unicode.Mn, r) && r != '\u3099' && r != '\u309A'
})

// normalize case-folds s and strips accents so that "Sí", "SI" and "si"
// compare equal.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(accentMark), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.ReplaceAll(out, "’", "'")
	return folder.String(strings.TrimSpace(out))
}

// isWordRune reports runes that continue a word in space-delimited scripts.
func isWordRune(r rune) bool {
	if isCJK(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

// span is a match of a phrase inside normalized text, in rune offsets.
type span struct {
	start, end int
}

// findPhrase returns every occurrence of phrase in text that sits on word
// boundaries. Both arguments must already be normalized.
func findPhrase(text, phrase []rune) []span {
	if len(phrase) == 0 || len(phrase) > len(text) {
		return nil
	}
	var out []span
	for i := 0; i+len(phrase) <= len(text); i++ {
		if !equalRunes(text[i:i+len(phrase)], phrase) {
			continue
		}
		end := i + len(phrase)
		if i > 0 && isWordRune(text[i-1]) && isWordRune(phrase[0]) {
			continue
		}
		if end < len(text) && isWordRune(text[end]) && isWordRune(phrase[len(phrase)-1]) {
			continue
		}
		out = append(out, span{start: i, end: end})
	}
	return out
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
