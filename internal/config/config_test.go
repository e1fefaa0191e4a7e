package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")
	t.Setenv("API_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("DATASTORE_TIMEOUT", "")

	cfg := Load("")

	assert.Equal(t, "", cfg.SupabaseURL)
	assert.Equal(t, "", cfg.SupabaseKey)
	assert.Equal(t, DefaultDatastoreTimeout, cfg.DatastoreTimeout)
	assert.Empty(t, cfg.EnvFile)
	assert.Contains(t, cfg.Warnings(), "SUPABASE_URL or SUPABASE_KEY not set")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SUPABASE_URL", "postgresql://postgres@db.example.supabase.co:5432/postgres")
	t.Setenv("SUPABASE_KEY", "secret")
	t.Setenv("API_PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("DATASTORE_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load("")

	assert.Equal(t, "postgresql://postgres@db.example.supabase.co:5432/postgres", cfg.SupabaseURL)
	assert.Equal(t, "secret", cfg.SupabaseKey)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.DatastoreTimeout)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.NotContains(t, cfg.Warnings(), "SUPABASE_URL or SUPABASE_KEY not set")
}

func TestLoad_EnvFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "SUPABASE_URL=postgresql://from-file\nSUPABASE_KEY=file-key\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "env-key")

	cfg := Load(path)

	assert.Equal(t, path, cfg.EnvFile)
	assert.Equal(t, "postgresql://from-file", cfg.SupabaseURL)
	// Окружение имеет приоритет над файлом
	assert.Equal(t, "env-key", cfg.SupabaseKey)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Empty(t, cfg.EnvFile)
	assert.Equal(t, DefaultDatastoreTimeout, cfg.DatastoreTimeout)
}

func TestLoad_NonPositiveTimeoutFallsBack(t *testing.T) {
	t.Setenv("DATASTORE_TIMEOUT", "-1s")
	cfg := Load("")
	assert.Equal(t, DefaultDatastoreTimeout, cfg.DatastoreTimeout)
}
