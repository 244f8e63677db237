// Package usecase defines the application service interfaces.
package usecase

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// LocationUsecase resolves the device location through a cache-first chain:
// fresh cache, then live sensor, then the configured default city.
type LocationUsecase interface {
	// ResolveLocation returns the best available location. Sensor and
	// permission failures never propagate; the worst case is the default
	// city tagged entity.LocationSourceDefault, which is never persisted.
	ResolveLocation(ctx context.Context) (*entity.LocationRecord, error)

	// ResolveLocationBackground is the same chain with the longer background
	// sensor timeout; used by worker-triggered pipeline runs.
	ResolveLocationBackground(ctx context.Context) (*entity.LocationRecord, error)

	// UpdateLocationInBackground refreshes the cached location with a longer
	// sensor timeout. Failures are logged and swallowed.
	UpdateLocationInBackground(ctx context.Context) error

	// ClearCachedLocation drops the cached location so the next resolve
	// re-senses.
	ClearCachedLocation(ctx context.Context) error
}
