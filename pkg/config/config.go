package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"skydash/pkg/consts"
	"skydash/pkg/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	APIKey  string
	BaseURL string

	Journal repository.Config
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	c := &Config{
		AppEnv:   strings.ToLower(getEnv(consts.EnvAppEnv, "dev")),
		LogLevel: getEnv(consts.EnvLogLevel, "info"),
		Port:     getEnv(consts.EnvAppPort, "8080"),
		APIKey:   getEnv(consts.EnvApiKey, ""),
		BaseURL:  strings.TrimRight(getEnv(consts.EnvBaseURL, consts.DefaultBaseURL), "/"),
		Journal: repository.Config{
			Driver:     strings.ToLower(getEnv(consts.EnvJournalDriver, "")),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			Username:   getEnv("DB_USERNAME", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "skydash"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv(consts.EnvSQLitePath, "skydash.db"),
		},
	}

	switch c.AppEnv {
	case "dev", "prod":
	default:
		return nil, fmt.Errorf("invalid %s %q (allowed: dev, prod)", consts.EnvAppEnv, c.AppEnv)
	}

	switch c.Journal.Driver {
	case "", repository.DriverPostgres, repository.DriverSQLite:
	default:
		return nil, fmt.Errorf("invalid %s %q (allowed: postgres, sqlite3 or empty)", consts.EnvJournalDriver, c.Journal.Driver)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", consts.EnvLogLevel, c.LogLevel, err)
	}

	if c.APIKey == "" {
		logrus.Warnf("%s is not set, falling back to %s", consts.EnvApiKey, consts.DefaultApiKey)
		c.APIKey = consts.DefaultApiKey
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
