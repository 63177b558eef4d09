package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Driver string

	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string

	SQLitePath string
}

// Enabled reports whether a journal database is configured at all.
func (c Config) Enabled() bool {
	return c.Driver != ""
}

// Open connects to the configured journal database and makes sure the schema exists.
func Open(ctx context.Context, c Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch c.Driver {
	case DriverPostgres:
		db, err = newPostgresDB(ctx, c)
	case DriverSQLite:
		db, err = newSQLiteDB(ctx, c)
	default:
		return nil, fmt.Errorf("unsupported journal driver %q", c.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newPostgresDB(ctx context.Context, c Config) (*sqlx.DB, error) {

	connStr := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s", c.Host, c.Port, c.Username, c.DBName, c.Password, c.SSLMode)
	db, err := sqlx.Open(DriverPostgres, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	db.SetConnMaxIdleTime(10 * time.Second)
	db.SetConnMaxLifetime(10 * time.Second)
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(5)

	return db, nil
}

func newSQLiteDB(ctx context.Context, c Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, sqliteDSN(c.SQLitePath))
	if err != nil {
		return nil, err
	}

	// single connection, an in-memory database lives only as long as it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	return db, nil
}

func sqliteDSN(path string) string {
	params := []string{"_busy_timeout=5000"}

	if path == "" || path == ":memory:" {
		return "file::memory:?" + strings.Join(params, "&")
	}

	params = append(params, "_journal_mode=WAL")
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + strings.Join(params, "&")
	}

	return fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&"))
}
