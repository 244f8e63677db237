package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/domain/service"
	mockRepo "muslimhub/internal/mocks/repository"
	mockSvc "muslimhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func locationTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Location = &config.LocationConfig{
		CacheMaxAge:             30 * time.Minute,
		SensorTimeout:           5 * time.Second,
		BackgroundSensorTimeout: 10 * time.Second,
		DefaultCity:             "Jakarta",
		DefaultLatitude:         -6.2088,
		DefaultLongitude:        106.8456,
	}

	return cfg
}

func TestLocationService_ResolveLocation_FreshCacheWins(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)
	now := time.Now()
	svc.now = func() time.Time { return now }

	cached := &entity.LocationRecord{
		Coordinate: entity.Coordinate{Latitude: -6.17, Longitude: 106.82},
		City:       "Jakarta Pusat",
		CapturedAt: now.Add(-10 * time.Minute),
	}
	repoMock.EXPECT().LastLocation(mock.Anything).Return(cached, nil)

	record, err := svc.ResolveLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceCache, record.Source)
	assert.Equal(t, "Jakarta Pusat", record.City)
	// Sensor never consulted; mockery asserts no unexpected calls.
}

func TestLocationService_ResolveLocation_StaleCacheTriggersSensor(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)
	now := time.Now()
	svc.now = func() time.Time { return now }

	stale := &entity.LocationRecord{
		Coordinate: entity.Coordinate{Latitude: -6.17, Longitude: 106.82},
		CapturedAt: now.Add(-45 * time.Minute),
	}
	fix := entity.Coordinate{Latitude: -6.9, Longitude: 107.6}

	repoMock.EXPECT().LastLocation(mock.Anything).Return(stale, nil)
	sensorMock.EXPECT().CurrentCoordinate(mock.Anything).Return(fix, nil)
	geocoderMock.EXPECT().ReverseGeocode(mock.Anything, fix).
		Return(&service.GeocodedPlace{City: "Bandung", Province: "Jawa Barat"}, nil)
	repoMock.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil)

	record, err := svc.ResolveLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceGPS, record.Source)
	assert.Equal(t, fix, record.Coordinate)
	assert.Equal(t, "Bandung", record.City)
}

func TestLocationService_ResolveLocation_SensorFailureFallsBackToDefault(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	repoMock.EXPECT().LastLocation(mock.Anything).Return(nil, repository.ErrLocationNotCached)
	sensorMock.EXPECT().CurrentCoordinate(mock.Anything).
		Return(entity.Coordinate{}, service.ErrLocationUnavailable)

	record, err := svc.ResolveLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceDefault, record.Source)
	assert.Equal(t, "Jakarta", record.City)
	assert.InDelta(t, -6.2088, record.Coordinate.Latitude, 0.0001)
	// The default record is never persisted: no SaveLocation expectation.
}

func TestLocationService_ResolveLocation_PermissionDeniedFallsBackToDefault(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	repoMock.EXPECT().LastLocation(mock.Anything).Return(nil, repository.ErrLocationNotCached)
	sensorMock.EXPECT().CurrentCoordinate(mock.Anything).
		Return(entity.Coordinate{}, service.ErrLocationPermissionDenied)

	record, err := svc.ResolveLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceDefault, record.Source)
}

func TestLocationService_ResolveLocation_SaveFailureStillReturnsFix(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	fix := entity.Coordinate{Latitude: -7.25, Longitude: 112.75}
	repoMock.EXPECT().LastLocation(mock.Anything).Return(nil, repository.ErrLocationNotCached)
	sensorMock.EXPECT().CurrentCoordinate(mock.Anything).Return(fix, nil)
	geocoderMock.EXPECT().ReverseGeocode(mock.Anything, fix).Return(nil, nil)
	repoMock.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(errors.New("store down"))

	record, err := svc.ResolveLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceGPS, record.Source)
	assert.Empty(t, record.City)
}

func TestLocationService_ResolveLocationBackground_UsesLongerSensorTimeout(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	fix := entity.Coordinate{Latitude: -6.9, Longitude: 107.6}
	repoMock.EXPECT().LastLocation(mock.Anything).Return(nil, repository.ErrLocationNotCached)
	// The background path hands the sensor the 10s deadline, not the 5s
	// foreground one.
	sensorMock.EXPECT().CurrentCoordinate(mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()

		return ok && time.Until(deadline) > 8*time.Second
	})).Return(fix, nil)
	geocoderMock.EXPECT().ReverseGeocode(mock.Anything, fix).Return(nil, nil)
	repoMock.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil)

	record, err := svc.ResolveLocationBackground(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceGPS, record.Source)
}

func TestLocationService_ResolveLocation_UsesForegroundSensorTimeout(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	fix := entity.Coordinate{Latitude: -6.9, Longitude: 107.6}
	repoMock.EXPECT().LastLocation(mock.Anything).Return(nil, repository.ErrLocationNotCached)
	sensorMock.EXPECT().CurrentCoordinate(mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()

		return ok && time.Until(deadline) <= 5*time.Second
	})).Return(fix, nil)
	geocoderMock.EXPECT().ReverseGeocode(mock.Anything, fix).Return(nil, nil)
	repoMock.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil)

	record, err := svc.ResolveLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LocationSourceGPS, record.Source)
}

func TestLocationService_UpdateLocationInBackground(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	fix := entity.Coordinate{Latitude: -6.17, Longitude: 106.82}
	sensorMock.EXPECT().CurrentCoordinate(mock.Anything).Return(fix, nil)
	geocoderMock.EXPECT().ReverseGeocode(mock.Anything, fix).Return(nil, nil)
	repoMock.EXPECT().SaveLocation(mock.Anything, mock.MatchedBy(func(record *entity.LocationRecord) bool {
		return record.Source == entity.LocationSourceGPS && record.Coordinate == fix
	})).Return(nil)

	require.NoError(t, svc.UpdateLocationInBackground(context.Background()))
}

func TestLocationService_UpdateLocationInBackground_SensorFailureSwallowed(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default()).(*locationService)

	sensorMock.EXPECT().CurrentCoordinate(mock.Anything).
		Return(entity.Coordinate{}, service.ErrLocationUnavailable)

	require.NoError(t, svc.UpdateLocationInBackground(context.Background()))
}

func TestLocationService_ClearCachedLocation(t *testing.T) {
	repoMock := mockRepo.NewMockLocationRepository(t)
	sensorMock := mockSvc.NewMockLocationSensor(t)
	geocoderMock := mockSvc.NewMockReverseGeocoder(t)

	svc := NewLocationService(repoMock, sensorMock, geocoderMock, locationTestConfig(), slog.Default())

	repoMock.EXPECT().ClearLocation(mock.Anything).Return(nil)

	require.NoError(t, svc.ClearCachedLocation(context.Background()))
}
