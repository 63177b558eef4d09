package client

import (
	"context"
	"slices"
	"time"

	"skydash"
	"skydash/pkg/consts"
)

// FetchDailyImage returns the picture of the given day. A zero date asks upstream for today.
func (c *Client) FetchDailyImage(ctx context.Context, date time.Time) (*skydash.DailyImage, error) {
	params := map[string]string{
		consts.ParamThumbs: consts.True,
	}
	if !date.IsZero() {
		params[consts.ParamDate] = date.Format(consts.TimeFormat)
	}

	var img skydash.DailyImage
	if err := c.getJSON(ctx, consts.EndpointApod, consts.PathApod, params, &img); err != nil {
		return nil, err
	}

	return &img, nil
}

// FetchDailyImageRange returns every picture between start and end, most recent first.
// Upstream answers oldest first.
func (c *Client) FetchDailyImageRange(ctx context.Context, start, end time.Time) ([]skydash.DailyImage, error) {
	params := map[string]string{
		consts.ParamStartDate: start.Format(consts.TimeFormat),
		consts.ParamEndDate:   end.Format(consts.TimeFormat),
		consts.ParamThumbs:    consts.True,
	}

	var imgs []skydash.DailyImage
	if err := c.getJSON(ctx, consts.EndpointApodRange, consts.PathApod, params, &imgs); err != nil {
		return nil, err
	}

	slices.Reverse(imgs)
	return imgs, nil
}

// FetchNearEarthObjects returns the feed grouped by date as upstream sends it.
func (c *Client) FetchNearEarthObjects(ctx context.Context, start, end time.Time) (skydash.NeoFeed, error) {
	params := map[string]string{
		consts.ParamStartDate: start.Format(consts.TimeFormat),
		consts.ParamEndDate:   end.Format(consts.TimeFormat),
	}

	var feed struct {
		ElementCount     int             `json:"element_count"`
		NearEarthObjects skydash.NeoFeed `json:"near_earth_objects"`
	}
	if err := c.getJSON(ctx, consts.EndpointNeoFeed, consts.PathNeoFeed, params, &feed); err != nil {
		return nil, err
	}

	if feed.NearEarthObjects == nil {
		return skydash.NeoFeed{}, nil
	}
	return feed.NearEarthObjects, nil
}
