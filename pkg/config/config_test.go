package config

import (
	"os"
	"path/filepath"
	"testing"

	"skydash/pkg/consts"
	"skydash/pkg/repository"

	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{consts.EnvAppEnv, consts.EnvLogLevel, consts.EnvAppPort, consts.EnvApiKey, consts.EnvBaseURL, consts.EnvJournalDriver} {
		t.Setenv(k, "")
	}

	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.AppEnv)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, consts.DefaultApiKey, cfg.APIKey)
	require.Equal(t, consts.DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, "", cfg.Journal.Driver)
	require.Equal(t, "skydash.db", cfg.Journal.SQLitePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(consts.EnvAppEnv, "PROD")
	t.Setenv(consts.EnvLogLevel, "debug")
	t.Setenv(consts.EnvAppPort, "9090")
	t.Setenv(consts.EnvApiKey, "secret")
	t.Setenv(consts.EnvBaseURL, "http://localhost:1234/")
	t.Setenv(consts.EnvJournalDriver, "sqlite3")
	t.Setenv(consts.EnvSQLitePath, "/tmp/journal.db")
	t.Setenv("DB_HOST", "db")

	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.AppEnv)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "secret", cfg.APIKey)
	require.Equal(t, "http://localhost:1234", cfg.BaseURL)
	require.Equal(t, repository.DriverSQLite, cfg.Journal.Driver)
	require.Equal(t, "/tmp/journal.db", cfg.Journal.SQLitePath)
	require.Equal(t, "db", cfg.Journal.Host)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "app env", key: consts.EnvAppEnv, val: "staging"},
		{name: "log level", key: consts.EnvLogLevel, val: "loud"},
		{name: "journal driver", key: consts.EnvJournalDriver, val: "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			cfg, err := LoadFile(missingEnvFile(t))
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	// register restore, then unset so the file value is picked up
	t.Setenv(consts.EnvApiKey, "")
	require.NoError(t, os.Unsetenv(consts.EnvApiKey))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(consts.EnvApiKey+"=from-file\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.APIKey)
}
