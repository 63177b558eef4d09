package service

import (
	"context"
	"errors"
	"time"

	"skydash"
	"skydash/pkg/client"
	"skydash/pkg/repository"

	"github.com/sirupsen/logrus"
)

// JournalRecorder writes one journal row per finished upstream call.
type JournalRecorder struct {
	repo    repository.Journal
	timeout time.Duration
}

func NewJournalRecorder(repo repository.Journal) *JournalRecorder {
	return &JournalRecorder{repo: repo, timeout: 2 * time.Second}
}

func (r *JournalRecorder) Observe(ctx context.Context, c client.Call) {
	// the row is written even when the caller went away mid-fetch
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	entry := &skydash.JournalEntry{
		Endpoint:   c.Endpoint,
		URL:        c.URL,
		Status:     c.Status,
		Error:      describe(c.Err),
		DurationMs: c.Duration.Milliseconds(),
	}

	if _, err := r.repo.InsertOne(ctx, entry); err != nil {
		logrus.WithField("endpoint", c.Endpoint).Warnf("journal insert failed: %s", err)
	}
}

func describe(err error) string {
	if err == nil {
		return ""
	}

	msg := client.Message(err)
	if cause := errors.Unwrap(err); cause != nil {
		msg += ": " + cause.Error()
	}
	return msg
}
