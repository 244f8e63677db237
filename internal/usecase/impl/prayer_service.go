package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Provider key spellings accepted for each slot. Lookup is case-insensitive.
//
//nolint:gochecknoglobals
var timingAliases = map[string][]string{
	entity.PrayerSubuh:   {"fajr", "fajar", "subuh"},
	entity.PrayerDzuhur:  {"dhuhr", "zuhr", "dhuhur", "dzuhur"},
	entity.PrayerAshar:   {"asr", "ashar"},
	entity.PrayerMaghrib: {"maghrib", "magrib"},
	entity.PrayerIsya:    {"isha", "ishaa", "isya"},
	entity.PrayerImsyak:  {"imsak", "imsyak"},
}

type prayerService struct {
	repo     repository.ScheduleRepository
	provider service.PrayerTimeProvider
	cfg      *config.PrayerTimesConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewPrayerService creates the daily prayer-time resolver.
func NewPrayerService(
	repo repository.ScheduleRepository,
	provider service.PrayerTimeProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PrayerTimesUsecase {
	return &prayerService{
		repo:     repo,
		provider: provider,
		cfg:      cfg.PrayerTimes,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *prayerService) ResolvePrayerTimes(ctx context.Context, location *entity.LocationRecord, force bool) (*entity.DailyPrayerSchedule, error) {
	now := s.now()

	cached, err := s.repo.LatestSchedule(ctx)
	if err != nil && !errors.Is(err, repository.ErrScheduleNotCached) {
		return nil, errors.Wrap(err, "failed to read cached schedule")
	}

	if !force && cached != nil && cached.IsForDay(now) && s.withinCacheRadius(cached.Origin, location.Coordinate) {
		return cached, nil
	}

	raw, err := s.provider.Timings(ctx, location.Coordinate, now, s.cfg.Method)
	if err != nil {
		s.logger.Warn("Prayer timings fetch failed", slog.Any("error", err))

		// Offline degradation: a stale schedule still beats no schedule.
		return cached, nil
	}

	schedule, err := s.normalize(raw, now, location)
	if err != nil {
		s.logger.Warn("Prayer timings unusable", slog.Any("error", err))

		return cached, nil
	}

	if err := s.repo.SaveSchedule(ctx, schedule); err != nil {
		s.logger.Warn("Failed to persist schedule", slog.Any("error", err))
	}

	return schedule, nil
}

func (s *prayerService) NextPrayer(schedule *entity.DailyPrayerSchedule, now time.Time) (*usecase.NextPrayer, bool) {
	if schedule == nil {
		return nil, false
	}

	var first *usecase.NextPrayer
	for _, slot := range schedule.PrimarySlots() {
		clock, ok := normalizeClock(slot.Time)
		if !ok {
			continue
		}

		at := atClock(now, clock)
		if first == nil {
			first = &usecase.NextPrayer{Name: slot.Name, Time: clock, At: at.AddDate(0, 0, 1)}
		}
		if at.After(now) {
			return &usecase.NextPrayer{Name: slot.Name, Time: clock, At: at}, true
		}
	}

	// Past Isya the next prayer is tomorrow's first parseable slot.
	if first != nil {
		return first, true
	}

	return nil, false
}

func (s *prayerService) withinCacheRadius(origin, current entity.Coordinate) bool {
	distance := geo.Distance(
		orb.Point{origin.Longitude, origin.Latitude},
		orb.Point{current.Longitude, current.Latitude},
	)

	return distance <= s.cfg.CacheRadiusKm*1000
}

func (s *prayerService) normalize(raw service.RawTimings, day time.Time, location *entity.LocationRecord) (*entity.DailyPrayerSchedule, error) {
	lowered := make(map[string]string, len(raw))
	for key, value := range raw {
		lowered[strings.ToLower(strings.TrimSpace(key))] = value
	}

	pick := func(slot string) (string, bool) {
		for _, alias := range timingAliases[slot] {
			if value, ok := lowered[alias]; ok {
				if clock, valid := normalizeClock(value); valid {
					return clock, true
				}
			}
		}

		return "", false
	}

	schedule := &entity.DailyPrayerSchedule{
		Date:   day.Format(entity.ScheduleDateLayout),
		City:   location.City,
		Origin: location.Coordinate,
	}

	required := []struct {
		name string
		dest *string
	}{
		{entity.PrayerSubuh, &schedule.Subuh},
		{entity.PrayerDzuhur, &schedule.Dzuhur},
		{entity.PrayerAshar, &schedule.Ashar},
		{entity.PrayerMaghrib, &schedule.Maghrib},
		{entity.PrayerIsya, &schedule.Isya},
	}
	for _, slot := range required {
		clock, ok := pick(slot.name)
		if !ok {
			return nil, errors.Errorf("missing or malformed %s timing", slot.name)
		}
		*slot.dest = clock
	}

	// Imsyak is optional; some methods omit it.
	if clock, ok := pick(entity.PrayerImsyak); ok {
		schedule.Imsyak = clock
	}

	return schedule, nil
}

// normalizeClock reduces a provider time string like "4:35 (WIB)" to a
// zero-padded "HH:MM", rejecting anything outside 00:00..23:59.
func normalizeClock(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if idx := strings.IndexByte(trimmed, ' '); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return "", false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// atClock places an HH:MM clock string on the calendar day of ref.
func atClock(ref time.Time, clock string) time.Time {
	parts := strings.Split(clock, ":")
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}
