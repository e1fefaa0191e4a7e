package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/telemetry"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 3)

	var all strings.Builder
	for _, name := range files {
		body, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)

		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
		all.WriteString(text)
	}

	for _, table := range []string{"clients", "projects", "environments", "servers", "monitors", "settings", "secrets"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(config.Config{}, telemetry.Discard())
	assert.Error(t, err)

	_, err = New(config.Config{SupabaseURL: "postgres://%zz"}, telemetry.Discard())
	assert.Error(t, err)
}

func TestNew_DoesNotConnect(t *testing.T) {
	r, err := New(config.Config{
		SupabaseURL: "postgresql://postgres@127.0.0.1:1/postgres",
		SupabaseKey: "secret",
	}, nil)
	require.NoError(t, err)
	assert.NoError(t, r.Close())
}
