package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"muslimhub/internal/domain/service"
	mockRepo "muslimhub/internal/mocks/repository"
	mockUsecase "muslimhub/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pipelineMocks struct {
	gate      *mockRepo.MockGateRepository
	locations *mockUsecase.MockLocationUsecase
	prayers   *mockUsecase.MockPrayerTimesUsecase
	scheduler *mockUsecase.MockSchedulerUsecase
}

func newPipelineService(t *testing.T) (*pipelineService, pipelineMocks) {
	t.Helper()

	mocks := pipelineMocks{
		gate:      mockRepo.NewMockGateRepository(t),
		locations: mockUsecase.NewMockLocationUsecase(t),
		prayers:   mockUsecase.NewMockPrayerTimesUsecase(t),
		scheduler: mockUsecase.NewMockSchedulerUsecase(t),
	}
	svc := NewPipelineService(mocks.gate, mocks.locations, mocks.prayers, mocks.scheduler, slog.Default()).(*pipelineService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 5, 0, 0, 0, time.Local) }

	return svc, mocks
}

func TestPipelineService_FullRunMarksGate(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()
	schedule := testSchedule()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("2024-03-14", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(schedule, nil)
	mocks.scheduler.EXPECT().ScheduleDailyNotifications(mock.Anything, schedule).Return(5, nil)
	mocks.gate.EXPECT().MarkScheduled(mock.Anything, "2024-03-15").Return(nil)

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, result.Scheduled)
	assert.Equal(t, 5, result.Count)
	assert.Equal(t, "2024-03-15", result.Date)
	assert.Equal(t, "Jakarta", result.City)
	assert.Empty(t, result.SkipReason)
}

func TestPipelineService_SkipsWhenAlreadyScheduledToday(t *testing.T) {
	svc, mocks := newPipelineService(t)

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("2024-03-15", nil)

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Equal(t, "already scheduled today", result.SkipReason)
}

func TestPipelineService_ForceOverridesDateGate(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()
	schedule := testSchedule()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("2024-03-15", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, true).Return(schedule, nil)
	mocks.scheduler.EXPECT().ScheduleDailyNotifications(mock.Anything, schedule).Return(5, nil)
	mocks.gate.EXPECT().MarkScheduled(mock.Anything, "2024-03-15").Return(nil)

	result, err := svc.RefreshPrayerNotifications(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, result.Scheduled)
}

func TestPipelineService_GateReadFailure(t *testing.T) {
	svc, mocks := newPipelineService(t)

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("", errors.New("store down"))

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, "gate unavailable", result.SkipReason)
}

func TestPipelineService_NoScheduleAvailableDoesNotMarkGate(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(nil, nil)

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Equal(t, "no schedule available", result.SkipReason)
	// No MarkScheduled expectation: a skipped day must be retried.
}

func TestPipelineService_PermissionDeniedIsASkipNotAnError(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()
	schedule := testSchedule()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(schedule, nil)
	mocks.scheduler.EXPECT().ScheduleDailyNotifications(mock.Anything, schedule).
		Return(0, service.ErrNotificationPermissionDenied)

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Equal(t, "notifications not permitted", result.SkipReason)
}

func TestPipelineService_SchedulingFailureIsASkip(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()
	schedule := testSchedule()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(schedule, nil)
	mocks.scheduler.EXPECT().ScheduleDailyNotifications(mock.Anything, schedule).
		Return(0, errors.New("gateway down"))

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Equal(t, "scheduling failed", result.SkipReason)
}

func TestPipelineService_PrayerResolutionFailureIsASkip(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).
		Return(nil, errors.New("store down"))

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Equal(t, "prayer times unavailable", result.SkipReason)
}

func TestPipelineService_MarkScheduledFailureStillSucceeds(t *testing.T) {
	svc, mocks := newPipelineService(t)

	location := jakartaRecord()
	schedule := testSchedule()

	mocks.gate.EXPECT().LastScheduledDate(mock.Anything).Return("", nil)
	mocks.locations.EXPECT().ResolveLocationBackground(mock.Anything).Return(location, nil)
	mocks.prayers.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(schedule, nil)
	mocks.scheduler.EXPECT().ScheduleDailyNotifications(mock.Anything, schedule).Return(5, nil)
	mocks.gate.EXPECT().MarkScheduled(mock.Anything, "2024-03-15").Return(errors.New("store down"))

	result, err := svc.RefreshPrayerNotifications(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, result.Scheduled)
}
