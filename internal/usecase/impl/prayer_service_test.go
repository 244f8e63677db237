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

func prayerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.PrayerTimes = &config.PrayerTimesConfig{
		BaseURL:       "https://api.aladhan.com/v1",
		Method:        20,
		CacheRadiusKm: 10,
	}

	return cfg
}

func newPrayerService(t *testing.T) (*prayerService, *mockRepo.MockScheduleRepository, *mockSvc.MockPrayerTimeProvider) {
	t.Helper()

	repoMock := mockRepo.NewMockScheduleRepository(t)
	providerMock := mockSvc.NewMockPrayerTimeProvider(t)
	svc := NewPrayerService(repoMock, providerMock, prayerTestConfig(), slog.Default()).(*prayerService)

	return svc, repoMock, providerMock
}

func jakartaRecord() *entity.LocationRecord {
	return &entity.LocationRecord{
		Coordinate: entity.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
		City:       "Jakarta",
	}
}

func TestPrayerService_ResolvePrayerTimes_SameDayCacheHit(t *testing.T) {
	svc, repoMock, _ := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	cached := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date:   "2024-03-15",
		Origin: location.Coordinate,
	}
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(cached, nil)

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Same(t, cached, schedule)
	// Provider never called for a same-day, same-place cache hit.
}

func TestPrayerService_ResolvePrayerTimes_StaleDayRefetches(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	yesterday := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date:   "2024-03-14",
		Origin: location.Coordinate,
	}
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(yesterday, nil)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(service.RawTimings{
			"Fajr": "04:40", "Dhuhr": "12:05", "Asr": "15:13",
			"Maghrib": "18:09", "Isha": "19:18", "Imsak": "04:30",
		}, nil)
	repoMock.EXPECT().SaveSchedule(mock.Anything, mock.Anything).Return(nil)

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", schedule.Date)
	assert.Equal(t, "04:40", schedule.Subuh)
	assert.Equal(t, "04:30", schedule.Imsyak)
	assert.Equal(t, "Jakarta", schedule.City)
}

func TestPrayerService_ResolvePrayerTimes_MovedBeyondRadiusRefetches(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	// Jakarta to Bandung is well over the 10 km cache radius.
	location := &entity.LocationRecord{
		Coordinate: entity.Coordinate{Latitude: -6.9175, Longitude: 107.6191},
		City:       "Bandung",
	}
	cached := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date:   "2024-03-15",
		Origin: entity.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
	}
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(cached, nil)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(service.RawTimings{
			"Fajr": "04:45", "Dhuhr": "12:03", "Asr": "15:15",
			"Maghrib": "18:06", "Isha": "19:15",
		}, nil)
	repoMock.EXPECT().SaveSchedule(mock.Anything, mock.Anything).Return(nil)

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Equal(t, "Bandung", schedule.City)
	assert.Equal(t, "04:45", schedule.Subuh)
}

func TestPrayerService_ResolvePrayerTimes_ForceBypassesCache(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	cached := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date:   "2024-03-15",
		Origin: location.Coordinate,
	}
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(cached, nil)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(service.RawTimings{
			"Fajr": "04:40", "Dhuhr": "12:05", "Asr": "15:13",
			"Maghrib": "18:09", "Isha": "19:18",
		}, nil)
	repoMock.EXPECT().SaveSchedule(mock.Anything, mock.Anything).Return(nil)

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, true)
	require.NoError(t, err)
	assert.Equal(t, "04:40", schedule.Subuh)
}

func TestPrayerService_ResolvePrayerTimes_ProviderDownFallsBackToStaleCache(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	stale := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date:   "2024-03-14",
		Origin: location.Coordinate,
	}
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(stale, nil)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(nil, errors.New("connection refused"))

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Same(t, stale, schedule)
}

func TestPrayerService_ResolvePrayerTimes_ProviderDownNoCacheReturnsNil(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(nil, repository.ErrScheduleNotCached)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(nil, errors.New("connection refused"))

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Nil(t, schedule)
}

func TestPrayerService_ResolvePrayerTimes_MissingSlotFallsBackToCache(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	stale := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date:   "2024-03-14",
		Origin: location.Coordinate,
	}
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(stale, nil)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(service.RawTimings{
			"Fajr": "04:40", "Dhuhr": "12:05", "Asr": "15:13", "Maghrib": "18:09",
		}, nil)

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Same(t, stale, schedule)
}

func TestPrayerService_ResolvePrayerTimes_NormalizesAliasesAndPadding(t *testing.T) {
	svc, repoMock, providerMock := newPrayerService(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	location := jakartaRecord()
	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(nil, repository.ErrScheduleNotCached)
	providerMock.EXPECT().Timings(mock.Anything, location.Coordinate, now, 20).
		Return(service.RawTimings{
			"subuh":  "4:41 (WIB)",
			"dzuhur": "12:05",
			"ashar":  "15:14",
			"magrib": "18:10",
			"isya":   "19:19",
			"imsyak": "4:31",
		}, nil)
	repoMock.EXPECT().SaveSchedule(mock.Anything, mock.Anything).Return(nil)

	schedule, err := svc.ResolvePrayerTimes(context.Background(), location, false)
	require.NoError(t, err)
	assert.Equal(t, "04:41", schedule.Subuh)
	assert.Equal(t, "04:31", schedule.Imsyak)
	assert.Equal(t, "18:10", schedule.Maghrib)
}

func TestPrayerService_ResolvePrayerTimes_StorageErrorPropagates(t *testing.T) {
	svc, repoMock, _ := newPrayerService(t)

	repoMock.EXPECT().LatestSchedule(mock.Anything).Return(nil, errors.New("store down"))

	schedule, err := svc.ResolvePrayerTimes(context.Background(), jakartaRecord(), false)
	require.Error(t, err)
	assert.Nil(t, schedule)
}

func TestPrayerService_NextPrayer(t *testing.T) {
	svc, _, _ := newPrayerService(t)

	schedule := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date: "2024-03-15",
	}

	tests := []struct {
		name     string
		now      time.Time
		wantName string
		wantTime string
		nextDay  bool
	}{
		{
			name:     "before subuh",
			now:      time.Date(2024, 3, 15, 3, 0, 0, 0, time.Local),
			wantName: entity.PrayerSubuh,
			wantTime: "04:41",
		},
		{
			name:     "mid morning",
			now:      time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local),
			wantName: entity.PrayerDzuhur,
			wantTime: "12:05",
		},
		{
			name:     "between maghrib and isya",
			now:      time.Date(2024, 3, 15, 18, 30, 0, 0, time.Local),
			wantName: entity.PrayerIsya,
			wantTime: "19:19",
		},
		{
			name:     "after isya rolls to tomorrow's subuh",
			now:      time.Date(2024, 3, 15, 22, 0, 0, 0, time.Local),
			wantName: entity.PrayerSubuh,
			wantTime: "04:41",
			nextDay:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := svc.NextPrayer(schedule, tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, next.Name)
			assert.Equal(t, tt.wantTime, next.Time)
			if tt.nextDay {
				assert.Equal(t, tt.now.Day()+1, next.At.Day())
			} else {
				assert.Equal(t, tt.now.Day(), next.At.Day())
			}
			assert.True(t, next.At.After(tt.now))
		})
	}
}

func TestPrayerService_NextPrayer_NilSchedule(t *testing.T) {
	svc, _, _ := newPrayerService(t)

	next, ok := svc.NextPrayer(nil, time.Now())
	assert.False(t, ok)
	assert.Nil(t, next)
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{"04:41", "04:41", true},
		{"4:41", "04:41", true},
		{"4:5", "04:05", true},
		{"18:10 (WIB)", "18:10", true},
		{" 07:30 ", "07:30", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, valid := normalizeClock(tt.in)
		assert.Equal(t, tt.valid, valid, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
