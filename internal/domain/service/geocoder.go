package service

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// GeocodedPlace is the administrative labels for a coordinate.
type GeocodedPlace struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// ReverseGeocoder labels a coordinate with its city and province. A nil
// result with nil error means the provider could not resolve the place.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*GeocodedPlace, error)
}
