package service

import (
	"context"
	"fmt"
	"time"

	"skydash"
	"skydash/pkg/repository"
)

const (
	DefaultJournalLimit = 20
	MaxJournalLimit     = 100
)

// RangeError rejects a date range whose start lies after its end.
type RangeError struct {
	Start time.Time
	End   time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s", e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

type AstroService struct {
	api Upstream
}

func NewAstroService(api Upstream) *AstroService {
	return &AstroService{api}
}

func (s *AstroService) DailyImage(ctx context.Context, date time.Time) (*skydash.DailyImage, error) {
	return s.api.FetchDailyImage(ctx, date)
}

func (s *AstroService) DailyImageRange(ctx context.Context, start, end time.Time) ([]skydash.DailyImage, error) {
	if end.Before(start) {
		return nil, &RangeError{Start: start, End: end}
	}
	return s.api.FetchDailyImageRange(ctx, start, end)
}

type NeoService struct {
	api Upstream
}

func NewNeoService(api Upstream) *NeoService {
	return &NeoService{api}
}

func (s *NeoService) NearEarthObjects(ctx context.Context, start, end time.Time) (skydash.NeoFeed, error) {
	if end.Before(start) {
		return nil, &RangeError{Start: start, End: end}
	}
	return s.api.FetchNearEarthObjects(ctx, start, end)
}

type JournalService struct {
	repo repository.Journal
}

func NewJournalService(repo repository.Journal) *JournalService {
	return &JournalService{repo}
}

// Recent clamps limit into [1, MaxJournalLimit], non-positive means the default.
func (s *JournalService) Recent(ctx context.Context, limit int) ([]skydash.JournalEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultJournalLimit
	case limit > MaxJournalLimit:
		limit = MaxJournalLimit
	}
	return s.repo.Recent(ctx, limit)
}

func (s *JournalService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
