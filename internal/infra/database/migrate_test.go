package database

import (
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	require.NoError(t, setupGoose())
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	for i, m := range migrations {
		assert.Equal(t, int64(i+1), m.Version)
	}
}

func TestFavoriteMigrationCascades(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/00003_create_favorites.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "ON DELETE CASCADE")
	assert.Contains(t, string(body), "-- +goose Down")
}

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	err := RunMigrations(nil, "sideways")
	assert.EqualError(t, err, "unknown migration command: sideways")
}
