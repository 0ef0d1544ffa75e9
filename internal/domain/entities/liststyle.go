package entities

import (
	"fmt"
	"strings"

	"confirmbot/internal/domain"
)

// ListStyle is the rendering mode of a choice set.
type ListStyle string

const (
	ListStyleNone            ListStyle = "none"
	ListStyleAuto            ListStyle = "auto"
	ListStyleInline          ListStyle = "inline"
	ListStyleList            ListStyle = "list"
	ListStyleSuggestedAction ListStyle = "suggestedAction"
	ListStyleHeroCard        ListStyle = "heroCard"
)

var listStyles = []ListStyle{
	ListStyleNone,
	ListStyleAuto,
	ListStyleInline,
	ListStyleList,
	ListStyleSuggestedAction,
	ListStyleHeroCard,
}

// ParseListStyle accepts the canonical names case-insensitively.
func ParseListStyle(s string) (ListStyle, error) {
	s = strings.TrimSpace(s)
	for _, style := range listStyles {
		if strings.EqualFold(s, string(style)) {
			return style, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownListStyle, s)
}
