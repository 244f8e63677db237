package usecase

import (
	"context"
	"time"

	"muslimhub/internal/domain/entity"
)

// NextPrayer is the upcoming prayer slot relative to a reference instant.
type NextPrayer struct {
	Name string    `json:"name"`
	Time string    `json:"time"` // HH:MM
	At   time.Time `json:"at"`
}

// PrayerTimesUsecase resolves the daily prayer schedule for a location.
type PrayerTimesUsecase interface {
	// ResolvePrayerTimes returns today's schedule for the location, reusing
	// the cached schedule when it is for today and within the cache radius.
	// force bypasses the cache gate. When the provider is unreachable it
	// degrades to the stale cached schedule, or (nil, nil) when none exists.
	ResolvePrayerTimes(ctx context.Context, location *entity.LocationRecord, force bool) (*entity.DailyPrayerSchedule, error)

	// NextPrayer returns the first of the five prayers whose time is still
	// ahead of now on the schedule's day, or tomorrow's Subuh after Isya.
	// ok is false when the schedule has no parseable times.
	NextPrayer(schedule *entity.DailyPrayerSchedule, now time.Time) (next *NextPrayer, ok bool)
}
