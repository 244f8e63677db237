package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when a cache entry is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ContentCache is the timestamped get-or-fetch cache shared by the Quran,
// Asmaul Husna, gold price, and zakat nisab modules. A zero maxAge disables
// the freshness check (any stored entry is a hit).
type ContentCache interface {
	// GetJSON unmarshals the entry for key into dest when it exists and is
	// younger than maxAge; otherwise ErrCacheMiss.
	GetJSON(ctx context.Context, key string, dest any, maxAge time.Duration) error

	// GetStaleJSON unmarshals the entry regardless of age; used by the
	// degradation path after a network failure.
	GetStaleJSON(ctx context.Context, key string, dest any) error

	// PutJSON stores value under key stamped with the current time.
	PutJSON(ctx context.Context, key string, value any) error

	Remove(ctx context.Context, key string) error
}
