package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AlwaysReturnsCatalogKey(t *testing.T) {
	inputs := []struct{ activity, def string }{
		{"", ""},
		{"", "xx-invalid-!!"},
		{"tlh", ""},
		{"en-US", ""},
		{"", "fr-CA"},
		{"zh-Hant-TW", ""},
		{"ja_JP", "de-de"},
	}
	for _, l := range Locales() {
		inputs = append(inputs, struct{ activity, def string }{"", l}, struct{ activity, def string }{l, ""})
	}
	for _, in := range inputs {
		got := Resolve(in.activity, in.def)
		_, ok := Lookup(got)
		assert.True(t, ok, "Resolve(%q, %q) = %q", in.activity, in.def, got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		def      string
		want     string
	}{
		{name: "nothing set", want: English},
		{name: "activity wins", activity: "fr-fr", def: "de-de", want: French},
		{name: "default when activity absent", def: "nl-NL", want: Dutch},
		{name: "region variant", activity: "es-MX", want: Spanish},
		{name: "language only", activity: "ja", want: Japanese},
		{name: "underscore tag", activity: "pt_BR", want: Portuguese},
		{name: "discord chinese", activity: "zh-CN", want: ChineseSimplified},
		{name: "unsupported language", activity: "tlh", want: English},
		{name: "garbage", activity: "!!", def: "fr-fr", want: English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.activity, tt.def))
		})
	}
}

func TestNearest(t *testing.T) {
	assert.Equal(t, "", Nearest(""))
	assert.Equal(t, "", Nearest("tlh"))
	assert.Equal(t, German, Nearest("DE-AT"))
	assert.Equal(t, English, Nearest("en-GB"))
}

func TestCatalog_Entries(t *testing.T) {
	affirmative := map[string]string{
		Spanish:           "Sí",
		Dutch:             "Ja",
		English:           "Yes",
		French:            "Oui",
		German:            "Ja",
		Japanese:          "はい",
		Portuguese:        "Sim",
		ChineseSimplified: "是的",
	}
	require.ElementsMatch(t, Locales(), keys(affirmative))

	for _, l := range Locales() {
		e := MustLookup(l)
		assert.Equal(t, l, e.Locale)
		assert.Len(t, e.Choices, 2)
		assert.Equal(t, affirmative[l], e.Choices[0], l)
		assert.NotEmpty(t, e.Choices[1], l)
		assert.True(t, e.Options.IncludeNumbers, l)
		assert.NotEmpty(t, e.Options.InlineOr, l)

		choices := e.DefaultChoices()
		require.Len(t, choices, 2)
		assert.Equal(t, e.Choices[0], choices[0].Value)
	}
}

func TestMustLookup_FallsBack(t *testing.T) {
	assert.Equal(t, English, MustLookup("xx-yy").Locale)
	_, ok := Lookup("xx-yy")
	assert.False(t, ok)
}

func TestDefaultChoices_AreFresh(t *testing.T) {
	a := MustLookup(English).DefaultChoices()
	a[0].Value = "changed"
	assert.Equal(t, "Yes", MustLookup(English).DefaultChoices()[0].Value)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
