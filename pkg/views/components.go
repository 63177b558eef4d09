package views

import (
	"context"
	"sort"
	"time"

	"skydash"
	"skydash/pkg/client"
	"skydash/pkg/consts"

	"github.com/sirupsen/logrus"
)

type ApodSource interface {
	DailyImage(ctx context.Context, date time.Time) (*skydash.DailyImage, error)
	DailyImageRange(ctx context.Context, start, end time.Time) ([]skydash.DailyImage, error)
}

type NeoSource interface {
	NearEarthObjects(ctx context.Context, start, end time.Time) (skydash.NeoFeed, error)
}

// ApodView shows today's picture, the recent window below it and an optional
// enlarged record.
type ApodView struct {
	src ApodSource

	Loading  bool
	Today    *skydash.DailyImage
	Past     []skydash.DailyImage
	Selected *skydash.DailyImage
	Error    string
}

func NewApodView(src ApodSource) *ApodView {
	return &ApodView{src: src}
}

// Mount fetches today and then the recent window, one after the other.
// Any failure replaces the whole view with its message.
func (v *ApodView) Mount(ctx context.Context, now time.Time) {
	v.Loading = true
	defer func() { v.Loading = false }()

	today, err := v.src.DailyImage(ctx, time.Time{})
	if err != nil {
		v.fail(err)
		return
	}
	v.Today = today

	start, end := client.RecentWindow(now)
	past, err := v.src.DailyImageRange(ctx, start, end)
	if err != nil {
		v.fail(err)
		return
	}
	v.Past = past
}

func (v *ApodView) fail(err error) {
	logrus.Errorf("Error fetching APOD data: %s", err)
	v.Error = "Failed to fetch APOD data: " + client.Message(err)
}

// Select opens the modal for the record of the given date.
func (v *ApodView) Select(date string) bool {
	if v.Today != nil && v.Today.Date == date {
		v.Selected = v.Today
		return true
	}
	for i := range v.Past {
		if v.Past[i].Date == date {
			v.Selected = &v.Past[i]
			return true
		}
	}
	return false
}

func (v *ApodView) CloseModal() {
	v.Selected = nil
}

// PastDays is the label count of the recent window.
func (v *ApodView) PastDays() int {
	return len(v.Past)
}

// AsteroidRow is the display shape of one near earth object.
type AsteroidRow struct {
	ID           string
	Name         string
	SizeMeters   float64
	ApproachDate string
	MissKm       float64
	Hazardous    bool
	Delay        float64
}

type NeoView struct {
	src NeoSource

	Loading   bool
	Asteroids []AsteroidRow
	Error     string
}

func NewNeoView(src NeoSource) *NeoView {
	return &NeoView{src: src}
}

func (v *NeoView) Mount(ctx context.Context, now time.Time) {
	v.Loading = true
	v.Error = ""
	defer func() { v.Loading = false }()

	start, end := client.NeoWindow(now)
	feed, err := v.src.NearEarthObjects(ctx, start, end)
	if err != nil {
		logrus.Errorf("Error fetching asteroid data: %s", err)
		v.Error = "Failed to fetch asteroid data: " + client.Message(err)
		return
	}

	v.Asteroids = asteroidRows(feed, consts.NeoDisplayLimit)
}

// asteroidRows flattens the feed in date order and keeps the first limit objects.
func asteroidRows(feed skydash.NeoFeed, limit int) []AsteroidRow {
	dates := make([]string, 0, len(feed))
	for d := range feed {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	rows := make([]AsteroidRow, 0, limit)
	for _, d := range dates {
		for _, neo := range feed[d] {
			if len(rows) == limit {
				return rows
			}

			row := AsteroidRow{
				ID:         neo.ID,
				Name:       neo.Name,
				SizeMeters: neo.EstimatedDiameter.Meters.Max,
				Hazardous:  neo.Hazardous,
				Delay:      Stagger(len(rows)),
			}
			if a, ok := neo.FirstApproach(); ok {
				row.ApproachDate = a.Date
				row.MissKm = a.MissKilometers()
			}
			rows = append(rows, row)
		}
	}
	return rows
}
