package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"migrations/000001_create_participants.down.sql",
		"migrations/000001_create_participants.up.sql",
		"migrations/000002_widen_participant_id.down.sql",
		"migrations/000002_widen_participant_id.up.sql",
	}, names)
}
