// Package bigdatacloud implements reverse geocoding against the BigDataCloud
// free client API.
package bigdatacloud

import (
	"context"
	"fmt"
	"net/url"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/infra/provider"
)

type client struct {
	http    *provider.Client
	baseURL string
}

// NewClient creates the reverse geocoder.
func NewClient(httpClient *provider.Client, cfg *config.ProvidersConfig) service.ReverseGeocoder {
	return &client{http: httpClient, baseURL: cfg.GeocodeBaseURL}
}

type reverseGeocodeResponse struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	LocalityInfo         struct {
		Administrative []struct {
			Name       string `json:"name"`
			AdminLevel int    `json:"adminLevel"`
		} `json:"administrative"`
	} `json:"localityInfo"`
}

func (c *client) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*service.GeocodedPlace, error) {
	endpoint := fmt.Sprintf("%s/data/reverse-geocode-client?%s",
		c.baseURL,
		url.Values{
			"latitude":         {fmt.Sprintf("%f", coord.Latitude)},
			"longitude":        {fmt.Sprintf("%f", coord.Longitude)},
			"localityLanguage": {"id"},
		}.Encode(),
	)

	var resp reverseGeocodeResponse
	if err := c.http.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to reverse geocode")
	}

	place := &service.GeocodedPlace{
		Province: resp.PrincipalSubdivision,
		City:     cityFrom(&resp),
	}
	if place.City == "" && place.Province == "" {
		return nil, nil
	}

	return place, nil
}

// cityFrom prefers the kabupaten/kota administrative entry (levels 4 and 5)
// over the coarse city field, which is often empty outside metro areas.
func cityFrom(resp *reverseGeocodeResponse) string {
	for _, level := range []int{5, 4} {
		for _, admin := range resp.LocalityInfo.Administrative {
			if admin.AdminLevel == level && admin.Name != "" {
				return admin.Name
			}
		}
	}
	if resp.City != "" {
		return resp.City
	}

	return resp.Locality
}
