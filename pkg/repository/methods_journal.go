package repository

import (
	"context"
	"time"

	"skydash"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	schemaPostgres = `CREATE TABLE IF NOT EXISTS fetch_journal (
					  id          TEXT PRIMARY KEY,
					  endpoint    TEXT NOT NULL,
					  url         TEXT NOT NULL,
					  status      INTEGER NOT NULL,
					  error       TEXT NOT NULL DEFAULT '',
					  duration_ms BIGINT NOT NULL,
					  created_at  TIMESTAMPTZ NOT NULL)`

	schemaSQLite = `CREATE TABLE IF NOT EXISTS fetch_journal (
					id          TEXT PRIMARY KEY,
					endpoint    TEXT NOT NULL,
					url         TEXT NOT NULL,
					status      INTEGER NOT NULL,
					error       TEXT NOT NULL DEFAULT '',
					duration_ms INTEGER NOT NULL,
					created_at  TIMESTAMP NOT NULL)`

	queryInsert = `INSERT INTO fetch_journal
				   (id, endpoint, url, status, error, duration_ms, created_at)
				   VALUES(?, ?, ?, ?, ?, ?, ?)`

	queryRecent = `SELECT id, endpoint, url, status, error, duration_ms, created_at
				   FROM fetch_journal ORDER BY created_at DESC LIMIT ?`
)

// Migrate creates the journal table for the connected driver.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := schemaSQLite
	if db.DriverName() == DriverPostgres {
		schema = schemaPostgres
	}

	_, err := db.ExecContext(ctx, schema)
	return err
}

type Actions struct {
	db *sqlx.DB
}

func NewSQLJournal(db *sqlx.DB) *Actions {
	return &Actions{db}
}

func (r *Actions) InsertOne(ctx context.Context, e *skydash.JournalEntry) (int64, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(queryInsert), e.ID, e.Endpoint, e.URL, e.Status, e.Error, e.DurationMs, e.CreatedAt)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *Actions) Recent(ctx context.Context, limit int) ([]skydash.JournalEntry, error) {

	entries := []skydash.JournalEntry{}
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(queryRecent), limit); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Actions) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Noop is used when no journal database is configured.
type Noop struct{}

func (Noop) InsertOne(context.Context, *skydash.JournalEntry) (int64, error) {
	return 0, nil
}

func (Noop) Recent(context.Context, int) ([]skydash.JournalEntry, error) {
	return []skydash.JournalEntry{}, nil
}

func (Noop) Ping(context.Context) error {
	return nil
}
