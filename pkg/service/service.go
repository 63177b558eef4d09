package service

import (
	"context"
	"time"

	"skydash"
	"skydash/pkg/repository"
)

// Upstream is the subset of the API client the services need.
type Upstream interface {
	FetchDailyImage(ctx context.Context, date time.Time) (*skydash.DailyImage, error)
	FetchDailyImageRange(ctx context.Context, start, end time.Time) ([]skydash.DailyImage, error)
	FetchNearEarthObjects(ctx context.Context, start, end time.Time) (skydash.NeoFeed, error)
}

type Apod interface {
	DailyImage(ctx context.Context, date time.Time) (*skydash.DailyImage, error)
	DailyImageRange(ctx context.Context, start, end time.Time) ([]skydash.DailyImage, error)
}

type Neo interface {
	NearEarthObjects(ctx context.Context, start, end time.Time) (skydash.NeoFeed, error)
}

type Journal interface {
	Recent(ctx context.Context, limit int) ([]skydash.JournalEntry, error)
	Ping(ctx context.Context) error
}

type Service struct {
	Apod
	Neo
	Journal
}

func NewService(api Upstream, repos *repository.Repository) *Service {
	return &Service{
		Apod:    NewAstroService(api),
		Neo:     NewNeoService(api),
		Journal: NewJournalService(repos.Journal),
	}
}
