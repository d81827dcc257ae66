package i18n

import (
	"embed"
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"participantbot/internal/ports/output"
)

//go:embed active.*.toml
var catalogFS embed.FS

// DefaultCatalogs lists the embedded catalogs loaded when none are requested.
var DefaultCatalogs = []string{"active.en.toml", "active.fr.toml"}

var _ output.T = (*Translator)(nil)

// Translator renders participant messages from TOML catalogs.
type Translator struct {
	bundle   *i18n.Bundle
	fallback language.Tag
}

// NewTranslator loads the named embedded catalogs. Messages missing from the
// requested locale are rendered in defaultLocale.
func NewTranslator(defaultLocale string, catalogs ...string) (*Translator, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: default locale %q: %w", defaultLocale, err)
	}
	if len(catalogs) == 0 {
		catalogs = DefaultCatalogs
	}

	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, name := range catalogs {
		if _, err := bundle.LoadMessageFileFS(catalogFS, name); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", name, err)
		}
	}

	return &Translator{bundle: bundle, fallback: fallback}, nil
}

// T renders key in locale, then in the default locale, and returns the key
// itself when neither has it.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: %s introuvable (locale=%q): %v", key, locale, err)
		return key
	}
	return msg
}

// localizer prefers the Discord locale of the interaction ("fr", "en-US", ...).
func (t *Translator) localizer(locale string) *i18n.Localizer {
	if locale == "" {
		return i18n.NewLocalizer(t.bundle, t.fallback.String())
	}
	return i18n.NewLocalizer(t.bundle, locale, t.fallback.String())
}
