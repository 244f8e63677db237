package repository

import (
	"context"

	"muslimhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotCached is returned when no location record is stored.
var ErrLocationNotCached = errors.New("no cached location")

// LocationRepository persists the single last-known location record.
type LocationRepository interface {
	// LastLocation returns the stored record regardless of age; staleness is
	// the caller's policy.
	LastLocation(ctx context.Context) (*entity.LocationRecord, error)
	SaveLocation(ctx context.Context, record *entity.LocationRecord) error
	ClearLocation(ctx context.Context) error
}
