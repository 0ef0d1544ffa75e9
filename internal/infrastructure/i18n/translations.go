package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"confirmbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output ports.
var (
	_ output.T              = (*Translator)(nil)
	_ output.PromptRenderer = (*Translator)(nil)
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *zap.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en-us"). It loads every embedded active.*.toml file, then
// any extra message files given.
//
// Message files are keyed by base language, so the default locale is
// reduced to its base too.
func NewTranslator(defaultLocale string, logger *zap.Logger, extraFiles ...string) *Translator {
	tag := language.English
	if parsed, err := language.Parse(defaultLocale); err == nil {
		base, _ := parsed.Base()
		tag = language.Make(base.String())
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Warn("i18n: failed to load embedded messages", zap.String("file", file), zap.Error(err))
		}
	}
	for _, file := range extraFiles {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			logger.Warn("i18n: failed to load messages", zap.String("file", file), zap.Error(err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())
	return i18n.NewLocalizer(t.bundle, languages...)
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: localize failed", zap.String("key", key), zap.String("locale", locale), zap.Error(err))
		return key
	}
	return msg
}

// RenderPrompt renders tmpl.Text as a template, unless a translation for
// tmpl.ID exists for the locale.
func (t *Translator) RenderPrompt(locale string, tmpl output.PromptTemplate, data map[string]any) string {
	if tmpl.ID == "" {
		tmpl.ID = "prompt"
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: tmpl.ID, Other: tmpl.Text},
		TemplateData:   data,
	})
	if err != nil && msg == "" {
		t.logger.Warn("i18n: render prompt failed", zap.String("id", tmpl.ID), zap.String("locale", locale), zap.Error(err))
		return tmpl.Text
	}
	return msg
}
