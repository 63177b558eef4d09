package repository

import (
	"context"

	"skydash"

	"github.com/jmoiron/sqlx"
)

type Journal interface {
	InsertOne(ctx context.Context, e *skydash.JournalEntry) (int64, error)
	Recent(ctx context.Context, limit int) ([]skydash.JournalEntry, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	Journal
}

// NewRepository falls back to a no-op journal when db is nil.
func NewRepository(db *sqlx.DB) *Repository {
	if db == nil {
		return &Repository{Journal: Noop{}}
	}

	return &Repository{
		Journal: NewSQLJournal(db),
	}
}
