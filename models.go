package skydash

import (
	"strconv"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// DailyImage is one Astronomy Picture of the Day record as returned by /planetary/apod.
type DailyImage struct {
	Date           string    `json:"date"`
	Title          string    `json:"title"`
	Explanation    string    `json:"explanation"`
	MediaType      MediaType `json:"media_type"`
	URL            string    `json:"url"`
	HDURL          string    `json:"hdurl,omitempty"`
	ThumbURL       string    `json:"thumbnail_url,omitempty"`
	Copyright      string    `json:"copyright,omitempty"`
	ServiceVersion string    `json:"service_version,omitempty"`
}

func (d DailyImage) IsVideo() bool {
	return d.MediaType == MediaVideo
}

func (d DailyImage) IsImage() bool {
	return d.MediaType == MediaImage
}

// HasHD reports whether a high definition link should be offered, only images carry one.
func (d DailyImage) HasHD() bool {
	return d.IsImage() && d.HDURL != ""
}

type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

type EstimatedDiameter struct {
	Kilometers DiameterRange `json:"kilometers"`
	Meters     DiameterRange `json:"meters"`
}

// Upstream encodes the numeric parts of an approach as strings.
type MissDistance struct {
	Astronomical string `json:"astronomical"`
	Lunar        string `json:"lunar"`
	Kilometers   string `json:"kilometers"`
	Miles        string `json:"miles"`
}

type RelativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
}

type CloseApproach struct {
	Date             string           `json:"close_approach_date"`
	DateFull         string           `json:"close_approach_date_full,omitempty"`
	EpochDate        int64            `json:"epoch_date_close_approach,omitempty"`
	RelativeVelocity RelativeVelocity `json:"relative_velocity"`
	MissDistance     MissDistance     `json:"miss_distance"`
	OrbitingBody     string           `json:"orbiting_body"`
}

// MissKilometers returns the miss distance in kilometers, 0 when upstream sent nothing parseable.
func (c CloseApproach) MissKilometers() float64 {
	v, err := strconv.ParseFloat(c.MissDistance.Kilometers, 64)
	if err != nil {
		return 0
	}
	return v
}

// NearEarthObject is one entry of the /neo/rest/v1/feed response.
type NearEarthObject struct {
	ID                string            `json:"id"`
	ReferenceID       string            `json:"neo_reference_id,omitempty"`
	Name              string            `json:"name"`
	JPLURL            string            `json:"nasa_jpl_url,omitempty"`
	AbsoluteMagnitude float64           `json:"absolute_magnitude_h"`
	EstimatedDiameter EstimatedDiameter `json:"estimated_diameter"`
	Hazardous         bool              `json:"is_potentially_hazardous_asteroid"`
	CloseApproaches   []CloseApproach   `json:"close_approach_data"`
}

// FirstApproach returns the first listed close approach, if any.
func (n *NearEarthObject) FirstApproach() (CloseApproach, bool) {
	if len(n.CloseApproaches) == 0 {
		return CloseApproach{}, false
	}
	return n.CloseApproaches[0], true
}

// NeoFeed groups objects by the approach date key exactly as upstream does.
type NeoFeed map[string][]NearEarthObject

// JournalEntry records one upstream call. It never holds upstream payloads.
type JournalEntry struct {
	ID         string    `json:"id" db:"id"`
	Endpoint   string    `json:"endpoint" db:"endpoint"`
	URL        string    `json:"url" db:"url"`
	Status     int       `json:"status" db:"status"`
	Error      string    `json:"error,omitempty" db:"error"`
	DurationMs int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
