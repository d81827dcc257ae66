package discord

import (
	"testing"

	"github.com/stretchr/testify/require"

	"participantbot/internal/infrastructure/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator("en")
	require.NoError(t, err)
	return tr
}
