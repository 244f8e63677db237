// Package aladhan implements the prayer-time provider against the Aladhan
// timings API.
package aladhan

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/infra/provider"
)

// requestDateLayout is the DD-MM-YYYY path segment the timings API expects.
const requestDateLayout = "02-01-2006"

type client struct {
	http    *provider.Client
	baseURL string
}

// NewClient creates the Aladhan prayer-time provider.
func NewClient(httpClient *provider.Client, cfg *config.PrayerTimesConfig) service.PrayerTimeProvider {
	return &client{http: httpClient, baseURL: cfg.BaseURL}
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

func (c *client) Timings(ctx context.Context, coord entity.Coordinate, day time.Time, method int) (service.RawTimings, error) {
	endpoint := fmt.Sprintf("%s/timings/%s?%s",
		c.baseURL,
		day.Format(requestDateLayout),
		url.Values{
			"latitude":  {fmt.Sprintf("%f", coord.Latitude)},
			"longitude": {fmt.Sprintf("%f", coord.Longitude)},
			"method":    {fmt.Sprintf("%d", method)},
		}.Encode(),
	)

	var resp timingsResponse
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch prayer timings")
	}

	if resp.Code != 200 || len(resp.Data.Timings) == 0 {
		return nil, errors.Errorf("timings API returned code %d (%s)", resp.Code, resp.Status)
	}

	return service.RawTimings(resp.Data.Timings), nil
}
