package views

import (
	"context"
	"strings"
	"time"
)

type Tab string

const (
	TabApod Tab = "APOD"
	TabNeo  Tab = "NEO"
)

var Tabs = []Tab{TabApod, TabNeo}

var footerLinks = []FlipLink{
	{Text: "api.nasa.gov", Href: "https://api.nasa.gov"},
	{Text: "apod.nasa.gov", Href: "https://apod.nasa.gov/apod/astropix.html"},
}

// ParseTab falls back to APOD for anything unknown.
func ParseTab(s string) Tab {
	switch Tab(strings.ToUpper(strings.TrimSpace(s))) {
	case TabNeo:
		return TabNeo
	default:
		return TabApod
	}
}

// Dashboard is the page: the intro splash, the tab bar and the active tab's component.
// Its lifetime is one request; Teardown must be called when the request ends.
type Dashboard struct {
	Active Tab
	Tabs   []Tab
	Apod   *ApodView
	Neo    *NeoView
	Links  []FlipLink

	splash      *Splash
	splashDelay time.Duration
	cancel      context.CancelFunc
}

func NewDashboard(apod ApodSource, neo NeoSource, active Tab, splashDelay time.Duration) *Dashboard {
	return &Dashboard{
		Active:      active,
		Tabs:        Tabs,
		Apod:        NewApodView(apod),
		Neo:         NewNeoView(neo),
		Links:       footerLinks,
		splashDelay: splashDelay,
	}
}

// Mount starts the splash and mounts the active component. Fetches are bound
// to ctx and to the dashboard itself, so Teardown aborts whatever is in flight.
func (d *Dashboard) Mount(ctx context.Context, now time.Time) {
	ctx, d.cancel = context.WithCancel(ctx)
	d.splash = NewSplash(d.splashDelay)

	switch d.Active {
	case TabNeo:
		d.Neo.Mount(ctx, now)
	default:
		d.Apod.Mount(ctx, now)
	}
}

func (d *Dashboard) Teardown() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.splash != nil {
		d.splash.Close()
	}
}

func (d *Dashboard) SplashVisible() bool {
	return d.splash != nil && d.splash.Visible()
}

// SplashRemainingMs drives the CSS fade out of the overlay.
func (d *Dashboard) SplashRemainingMs() int64 {
	if d.splash == nil {
		return 0
	}
	return millis(d.splash.Remaining())
}

func (d *Dashboard) IsActive(t Tab) bool {
	return d.Active == t
}
