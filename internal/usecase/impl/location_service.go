// Package impl contains the usecase implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
)

type locationService struct {
	repo     repository.LocationRepository
	sensor   service.LocationSensor
	geocoder service.ReverseGeocoder
	cfg      *config.LocationConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocationService creates the cache-first location resolver.
func NewLocationService(
	repo repository.LocationRepository,
	sensor service.LocationSensor,
	geocoder service.ReverseGeocoder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		repo:     repo,
		sensor:   sensor,
		geocoder: geocoder,
		cfg:      cfg.Location,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *locationService) ResolveLocation(ctx context.Context) (*entity.LocationRecord, error) {
	return s.resolve(ctx, s.cfg.SensorTimeout)
}

func (s *locationService) ResolveLocationBackground(ctx context.Context) (*entity.LocationRecord, error) {
	return s.resolve(ctx, s.cfg.BackgroundSensorTimeout)
}

func (s *locationService) resolve(ctx context.Context, sensorTimeout time.Duration) (*entity.LocationRecord, error) {
	now := s.now()

	var storageErr error
	cached, err := s.repo.LastLocation(ctx)
	switch {
	case err == nil:
		if !cached.StaleAfter(now, s.cfg.CacheMaxAge) {
			cached.Source = entity.LocationSourceCache

			return cached, nil
		}
	case !errors.Is(err, repository.ErrLocationNotCached):
		storageErr = errors.Wrap(err, "failed to read cached location")
		s.logger.Warn("Location cache read failed", slog.Any("error", err))
	}

	if record := s.sense(ctx, sensorTimeout); record != nil {
		if err := s.repo.SaveLocation(ctx, record); err != nil {
			s.logger.Warn("Failed to persist sensed location", slog.Any("error", err))
		}

		return record, nil
	}

	// Default is a view, never persisted, so a later sensor fix is not shadowed
	// by a stored Jakarta record.
	return s.defaultRecord(now), storageErr
}

func (s *locationService) UpdateLocationInBackground(ctx context.Context) error {
	record := s.sense(ctx, s.cfg.BackgroundSensorTimeout)
	if record == nil {
		s.logger.Debug("Background location update skipped, sensor unavailable")

		return nil
	}

	if err := s.repo.SaveLocation(ctx, record); err != nil {
		s.logger.Warn("Failed to persist background location", slog.Any("error", err))
	}

	return nil
}

func (s *locationService) ClearCachedLocation(ctx context.Context) error {
	return errors.Wrap(s.repo.ClearLocation(ctx), "failed to clear cached location")
}

// sense reads the sensor under its timeout and labels the fix with a city.
// Returns nil when no usable fix was obtained.
func (s *locationService) sense(ctx context.Context, timeout time.Duration) *entity.LocationRecord {
	sensorCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	coord, err := s.sensor.CurrentCoordinate(sensorCtx)
	if err != nil {
		if errors.Is(err, service.ErrLocationPermissionDenied) {
			s.logger.Info("Location permission denied")
		} else {
			s.logger.Debug("Location sensor read failed", slog.Any("error", err))
		}

		return nil
	}

	return &entity.LocationRecord{
		Coordinate: coord,
		City:       s.label(ctx, coord),
		Source:     entity.LocationSourceGPS,
		CapturedAt: s.now(),
	}
}

// label reverse geocodes best-effort; an unresolved place leaves it empty.
func (s *locationService) label(ctx context.Context, coord entity.Coordinate) string {
	if s.geocoder == nil {
		return ""
	}

	place, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		s.logger.Debug("Reverse geocoding failed", slog.Any("error", err))

		return ""
	}
	if place == nil {
		return ""
	}
	if place.City != "" {
		return place.City
	}

	return place.Province
}

func (s *locationService) defaultRecord(now time.Time) *entity.LocationRecord {
	return &entity.LocationRecord{
		Coordinate: entity.Coordinate{
			Latitude:  s.cfg.DefaultLatitude,
			Longitude: s.cfg.DefaultLongitude,
		},
		City:       s.cfg.DefaultCity,
		Source:     entity.LocationSourceDefault,
		CapturedAt: now,
	}
}
