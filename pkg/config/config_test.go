package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/env"
)

// clearEnv unsets every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER",
		"JWT_ACCESS_TTL_MINUTES", "JWT_REFRESH_TTL_HOURS", "GROQ_API_KEY",
		"GROQ_BASE_URL", "GROQ_MODEL", "GEMINI_API_KEY", "GEMINI_BASE_URL",
		"GEMINI_MODEL", "LLM_TIMEOUT_SECONDS", "LOG_LEVEL", "LOG_FORMAT",
		"CORS_ALLOW_ORIGINS",
	} {
		env.Patch(t, key, "")
		os.Unsetenv(key)
	}
	// keep godotenv from picking up a developer .env
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NilError(t, err)
	assert.NilError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg, Defaults())
	assert.Equal(t, cfg.AccessTTL(), time.Hour)
	assert.Equal(t, cfg.RefreshTTL(), 7*24*time.Hour)
	assert.Equal(t, cfg.LLMTimeout(), time.Minute)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("port: \"9000\"\ngroq_api_key: from-file\ngemini_model: gemini-2.0-flash\n"), 0o600))

	env.PatchAll(t, map[string]string{
		"CONFIG_FILE":  path,
		"GROQ_API_KEY": "from-env",
		"LOG_LEVEL":    "debug",
	})

	cfg, err := Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.Port, "9000")
	assert.Equal(t, cfg.GroqAPIKey, "from-env")
	assert.Equal(t, cfg.GeminiModel, "gemini-2.0-flash")
	assert.Equal(t, cfg.LogLevel, "debug")
	assert.Equal(t, cfg.GeminiAPIKey, "")
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	env.Patch(t, "JWT_ACCESS_TTL_MINUTES", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "parse environment")

	env.Patch(t, "JWT_ACCESS_TTL_MINUTES", "0")
	_, err = Load()
	assert.ErrorContains(t, err, "token lifetimes")
}

func TestDatabase(t *testing.T) {
	cases := []struct {
		url, driver, dsn string
		wantErr          bool
	}{
		{url: "postgres://u:p@localhost:5432/db", driver: DriverPostgres, dsn: "postgres://u:p@localhost:5432/db"},
		{url: "postgresql://localhost/db", driver: DriverPostgres, dsn: "postgresql://localhost/db"},
		{url: "sqlite://data/app.db", driver: DriverSQLite, dsn: "data/app.db"},
		{url: "file::memory:", driver: DriverSQLite, dsn: "file::memory:"},
		{url: "sqlite://", wantErr: true},
		{url: "mysql://x", wantErr: true},
	}
	for _, tc := range cases {
		driver, dsn, err := Config{DatabaseURL: tc.url}.Database()
		if tc.wantErr {
			assert.Check(t, err != nil, tc.url)
			continue
		}
		assert.NilError(t, err)
		assert.Check(t, is.Equal(driver, tc.driver))
		assert.Check(t, is.Equal(dsn, tc.dsn))
	}
}
