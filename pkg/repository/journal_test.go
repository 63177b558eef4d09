package repository

import (
	"context"
	"testing"
	"time"

	"skydash"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(context.Background(), Config{Driver: DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	return db
}

func TestJournalInsertAndRecent(t *testing.T) {
	repo := NewRepository(openMemory(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	entries := []skydash.JournalEntry{
		{Endpoint: "apod", URL: "http://x/planetary/apod?api_key=REDACTED", Status: 200, DurationMs: 12, CreatedAt: base},
		{Endpoint: "neo_feed", URL: "http://x/neo/rest/v1/feed?api_key=REDACTED", Status: 400, Error: "bad date", DurationMs: 7, CreatedAt: base.Add(time.Minute)},
		{Endpoint: "apod_range", URL: "http://x/planetary/apod?api_key=REDACTED", Status: 0, Error: "An error occurred with the NASA API.", DurationMs: 3, CreatedAt: base.Add(2 * time.Minute)},
	}

	for i := range entries {
		n, err := repo.InsertOne(ctx, &entries[i])
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
		require.NotEmpty(t, entries[i].ID)
	}

	tests := []struct {
		name      string
		limit     int
		endpoints []string
	}{
		{name: "all, newest first", limit: 10, endpoints: []string{"apod_range", "neo_feed", "apod"}},
		{name: "limited", limit: 2, endpoints: []string{"apod_range", "neo_feed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Recent(ctx, tt.limit)
			require.NoError(t, err)
			require.Len(t, got, len(tt.endpoints))

			for i, e := range tt.endpoints {
				require.Equal(t, e, got[i].Endpoint)
			}
		})
	}

	got, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, entries[2].ID, got[0].ID)
	require.Equal(t, "An error occurred with the NASA API.", got[0].Error)
	require.True(t, base.Add(2*time.Minute).Equal(got[0].CreatedAt))
}

func TestJournalDefaults(t *testing.T) {
	repo := NewRepository(openMemory(t))
	ctx := context.Background()

	e := &skydash.JournalEntry{Endpoint: "apod", URL: "u", Status: 200}
	_, err := repo.InsertOne(ctx, e)
	require.NoError(t, err)

	require.Len(t, e.ID, 36)
	require.False(t, e.CreatedAt.IsZero())
	require.NoError(t, repo.Ping(ctx))
}

func TestNoopJournal(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	n, err := repo.InsertOne(ctx, &skydash.JournalEntry{})
	require.NoError(t, err)
	require.Zero(t, n)

	got, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	require.NoError(t, repo.Ping(ctx))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "mysql"})
	require.EqualError(t, err, `unsupported journal driver "mysql"`)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: ":memory:", expected: "file::memory:?_busy_timeout=5000"},
		{path: "", expected: "file::memory:?_busy_timeout=5000"},
		{path: "data/skydash.db", expected: "file:data/skydash.db?_busy_timeout=5000&_journal_mode=WAL"},
		{path: "file:x.db?cache=shared", expected: "file:x.db?cache=shared&_busy_timeout=5000&_journal_mode=WAL"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, sqliteDSN(tt.path))
		})
	}
}
