package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// PromptTemplate is a configured prompt. Text is the default wording; a
// translation registered under ID for the turn locale takes precedence.
type PromptTemplate struct {
	ID   string
	Text string
}

func (p PromptTemplate) IsZero() bool { return p.Text == "" }

// PromptRenderer renders prompt templates into plain text.
type PromptRenderer interface {
	RenderPrompt(locale string, tmpl PromptTemplate, data map[string]any) string
}
