package recognizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  Sí  ":   "si",
		"NÃO":      "nao",
		"Bien Sûr": "bien sur",
		"d’accord": "d'accord",
		"ダメ":       "ダメ",
		"":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalize(in), in)
	}
}

func TestFindPhrase(t *testing.T) {
	find := func(text, phrase string) []span {
		return findPhrase([]rune(normalize(text)), []rune(normalize(phrase)))
	}
	assert.Equal(t, []span{{0, 3}}, find("yes please", "yes"))
	assert.Empty(t, find("yesterday", "yes"))
	assert.Empty(t, find("eyes", "yes"))
	assert.Equal(t, []span{{4, 6}}, find("say ok!", "ok"))
	// CJK text has no spaces between words.
	assert.Equal(t, []span{{0, 2}}, find("はいお願いします", "はい"))
	assert.Empty(t, find("no", "no way"))
}

// answers renders candidates as "yes", "no" or "?" for unresolved ones.
func answers(t *testing.T, got []output.BooleanCandidate) []string {
	t.Helper()
	var out []string
	for _, c := range got {
		switch {
		case c.Resolution == nil:
			out = append(out, "?")
		case c.Resolution.Value:
			out = append(out, "yes")
		default:
			out = append(out, "no")
		}
		if c.Resolution != nil {
			assert.Greater(t, c.Resolution.Score, 0.0)
			assert.LessOrEqual(t, c.Resolution.Score, 1.0)
		}
	}
	return out
}

func TestBooleanRecognizer(t *testing.T) {
	r := NewBooleanRecognizer()

	tests := []struct {
		name   string
		text   string
		locale string
		want   []string
	}{
		{name: "english yes", text: "yes", locale: "en-us", want: []string{"yes"}},
		{name: "english no", text: "No.", locale: "en-us", want: []string{"no"}},
		{name: "synonym in sentence", text: "sure, go ahead", locale: "en-us", want: []string{"yes"}},
		{name: "longest overlap wins", text: "that is not ok", locale: "en-us", want: []string{"no"}},
		{name: "spanish accent folded", text: "SI", locale: "es-es", want: []string{"yes"}},
		{name: "french", text: "Bien sûr !", locale: "fr-fr", want: []string{"yes"}},
		{name: "french negative phrase", text: "pas d'accord", locale: "fr-fr", want: []string{"no"}},
		{name: "german", text: "Nein danke", locale: "de-de", want: []string{"no"}},
		{name: "dutch", text: "ja hoor", locale: "nl-nl", want: []string{"yes"}},
		{name: "portuguese without accent", text: "nao", locale: "pt-br", want: []string{"no"}},
		{name: "japanese", text: "いいえ", locale: "ja-jp", want: []string{"no"}},
		{name: "chinese", text: "不是", locale: "zh-cn", want: []string{"no"}},
		{name: "chinese yes", text: "是的", locale: "zh-cn", want: []string{"yes"}},
		{name: "emoji any locale", text: "👍", locale: "ja-jp", want: []string{"yes"}},
		{name: "unknown locale uses english", text: "nope", locale: "tlh", want: []string{"no"}},
		{name: "region ignored", text: "oui", locale: "fr-CA", want: []string{"yes"}},
		{name: "agreeing twice", text: "yes, sure", locale: "en-us", want: []string{"yes", "yes"}},
		{name: "nothing", text: "later please", locale: "en-us", want: nil},
		{name: "empty", text: "   ", locale: "en-us", want: nil},
		{name: "word inside word", text: "yesterday", locale: "en-us", want: nil},

		// Negated and hedged replies never read as yes.
		{name: "not sure", text: "not sure", locale: "en-us", want: []string{"?"}},
		{name: "i'm not sure", text: "I'm not sure", locale: "en-us", want: []string{"?"}},
		{name: "curly apostrophe", text: "I’m not sure", locale: "en-us", want: []string{"?"}},
		{name: "maybe", text: "maybe later", locale: "en-us", want: []string{"?"}},
		{name: "don't agree", text: "I don't agree", locale: "en-us", want: []string{"no"}},
		{name: "do not agree", text: "I do not agree", locale: "en-us", want: []string{"no"}},
		{name: "negator before yes", text: "never okay", locale: "en-us", want: []string{"no", "no"}},
		{name: "negator one word away", text: "not really sure", locale: "en-us", want: []string{"no"}},
		{name: "negator inside a word ignored", text: "knot yes", locale: "en-us", want: []string{"yes"}},
		{name: "punctuation ends negation", text: "not me, yes", locale: "en-us", want: []string{"yes"}},
		{name: "contradiction", text: "yes, no", locale: "en-us", want: []string{"?", "?"}},
		{name: "german negated", text: "nicht ja", locale: "de-de", want: []string{"no"}},
		{name: "german hedge", text: "Ich bin mir nicht sicher", locale: "de-de", want: []string{"?"}},
		{name: "spanish contradiction", text: "si no", locale: "es-es", want: []string{"?", "?"}},
		{name: "spanish hedge", text: "no sé", locale: "es-es", want: []string{"?"}},
		{name: "french hedge", text: "pas sûr", locale: "fr-fr", want: []string{"?"}},
		{name: "dutch negated", text: "niet goed", locale: "nl-nl", want: []string{"no"}},
		{name: "portuguese hedge", text: "não sei", locale: "pt-br", want: []string{"?"}},
		{name: "chinese negated", text: "不可以", locale: "zh-cn", want: []string{"no", "no"}},
		{name: "chinese no problem", text: "没问题", locale: "zh-cn", want: []string{"yes"}},
		{name: "chinese hedge", text: "不确定", locale: "zh-cn", want: []string{"?"}},
		{name: "japanese hedge", text: "わからない", locale: "ja-jp", want: []string{"?"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, answers(t, r.RecognizeBoolean(tt.text, tt.locale)))
		})
	}
}

func TestChoiceRecognizer(t *testing.T) {
	r := NewChoiceRecognizer()
	choices := []entities.Choice{
		{Value: "Sign me up", Synonyms: []string{"subscribe"}},
		{Value: "No thanks", Action: &entities.CardAction{Title: "Skip"}},
	}

	tests := []struct {
		name      string
		text      string
		noNumbers bool
		wantIndex []int
	}{
		{name: "value", text: "no thanks", wantIndex: []int{1}},
		{name: "synonym", text: "please subscribe me", wantIndex: []int{0}},
		{name: "action title", text: "SKIP", wantIndex: []int{1}},
		{name: "position", text: "2", wantIndex: []int{1}},
		{name: "position out of range", text: "3", wantIndex: nil},
		{name: "position when unnumbered", text: "1", noNumbers: true, wantIndex: nil},
		{name: "best score first", text: "skip, or sign me up", wantIndex: []int{0, 1}},
		{name: "nothing", text: "what?", wantIndex: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			opts := output.ChoiceRecognizeOptions{AllowNumbers: !tt.noNumbers}
			for _, c := range r.RecognizeChoices(tt.text, choices, opts) {
				assert.Equal(t, choices[c.Resolution.Index].Value, c.Resolution.Value)
				got = append(got, c.Resolution.Index)
			}
			assert.Equal(t, tt.wantIndex, got)
		})
	}

	assert.Nil(t, r.RecognizeChoices("yes", nil, output.ChoiceRecognizeOptions{}))
}

func TestChoiceRecognizer_LocaleDefaults(t *testing.T) {
	r := NewChoiceRecognizer()
	got := r.RecognizeChoices("いいえ", entities.ToChoices("はい", "いいえ"), output.ChoiceRecognizeOptions{AllowNumbers: true})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Resolution.Index)
}
