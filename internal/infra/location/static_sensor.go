package location

import (
	"context"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
)

// staticSensor always reports the configured fallback coordinate. Useful for
// development and for fixed installations such as a mosque display.
type staticSensor struct {
	coord entity.Coordinate
}

// NewStaticSensor creates a sensor pinned to the configured default coordinate.
func NewStaticSensor(cfg *config.LocationConfig) service.LocationSensor {
	return &staticSensor{coord: entity.Coordinate{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	}}
}

func (s *staticSensor) CurrentCoordinate(ctx context.Context) (entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinate{}, service.ErrLocationUnavailable
	}

	return s.coord, nil
}
