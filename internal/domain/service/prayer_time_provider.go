package service

import (
	"context"
	"time"

	"muslimhub/internal/domain/entity"
)

// RawTimings is the provider's named clock-time map for one day, before
// normalization. Keys are provider-specific spellings (Fajr/Dhuhr/Asr/...);
// values are loosely formatted time strings.
type RawTimings map[string]string

// PrayerTimeProvider fetches the daily timings for a coordinate using a fixed
// calculation method. The provider's field names never leak past the
// normalization step in the prayer-times usecase.
type PrayerTimeProvider interface {
	Timings(ctx context.Context, coord entity.Coordinate, day time.Time, method int) (RawTimings, error)
}
