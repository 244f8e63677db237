// Package service defines the outbound ports consumed by the usecases.
package service

import (
	"context"

	"muslimhub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrLocationPermissionDenied is returned when the sensor refuses the read.
	ErrLocationPermissionDenied = errors.New("location permission denied")
	// ErrLocationUnavailable is returned when no fix is available before the deadline.
	ErrLocationUnavailable = errors.New("location unavailable")
)

// LocationSensor reads the current device coordinate. Implementations honor
// the context deadline; a timeout surfaces as ErrLocationUnavailable.
type LocationSensor interface {
	CurrentCoordinate(ctx context.Context) (entity.Coordinate, error)
}
