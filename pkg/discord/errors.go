package discord

import (
	"participantbot/internal/domain"
	"participantbot/internal/ports/output"
)

// DomainErrorMessage resolves err to a user-facing message through its domain
// code, or to the generic error message when it has none.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, "errors."+code, nil)
	}
	return t.T(locale, "errors.generic", nil)
}
