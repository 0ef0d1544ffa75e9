package culture

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	// supported is ordered with the fallback first so that a no-confidence
	// match never lands on another language.
	supported = []string{English, Spanish, Dutch, French, German, Japanese, Portuguese, ChineseSimplified}
	matcher   = newMatcher(supported)
)

func newMatcher(keys []string) language.Matcher {
	tags := make([]language.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, language.MustParse(k))
	}
	return language.NewMatcher(tags)
}

// Nearest maps a locale tag onto the closest catalog key, or "" when no
// supported culture is a reasonable match.
func Nearest(locale string) string {
	locale = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if locale == "" {
		return ""
	}
	if _, ok := catalog[locale]; ok {
		return locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return ""
	}
	return supported[idx]
}

// Resolve picks the effective locale for a turn. The activity locale wins over
// the configured default; whatever cannot be mapped falls back to English.
// The result is always a catalog key.
func Resolve(activityLocale, defaultLocale string) string {
	candidate := activityLocale
	if strings.TrimSpace(candidate) == "" {
		candidate = defaultLocale
	}
	key := Nearest(candidate)
	if _, ok := catalog[key]; !ok {
		return Fallback
	}
	return key
}
