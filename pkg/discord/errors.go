package discord

import (
	"confirmbot/internal/domain"
	"confirmbot/internal/ports/output"
)

// TranslateDomainError maps a domain error code to a user-facing message in
// locale. Unknown codes get the generic message.
func TranslateDomainError(t output.T, locale, code string) string {
	if code == "" {
		code = "generic"
	}
	key := "error_" + code
	msg := t.T(locale, key, nil)
	if msg == key {
		return t.T(locale, "error_generic", nil)
	}
	return msg
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(t, locale, domain.Code(err))
}
