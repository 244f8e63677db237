package impl

import (
	"context"
	"log/slog"
	"time"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
)

type pipelineService struct {
	gate      repository.GateRepository
	locations usecase.LocationUsecase
	prayers   usecase.PrayerTimesUsecase
	scheduler usecase.SchedulerUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// NewPipelineService creates the daily refresh pipeline.
func NewPipelineService(
	gate repository.GateRepository,
	locations usecase.LocationUsecase,
	prayers usecase.PrayerTimesUsecase,
	scheduler usecase.SchedulerUsecase,
	logger *slog.Logger,
) usecase.PipelineUsecase {
	return &pipelineService{
		gate:      gate,
		locations: locations,
		prayers:   prayers,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *pipelineService) RefreshPrayerNotifications(ctx context.Context, force bool) (*usecase.RefreshResult, error) {
	today := s.now().Format(entity.ScheduleDateLayout)
	result := &usecase.RefreshResult{Date: today}

	lastDate, err := s.gate.LastScheduledDate(ctx)
	if err != nil {
		result.SkipReason = "gate unavailable"

		return result, errors.Wrap(err, "failed to read scheduling gate")
	}

	if !force && lastDate == today {
		result.SkipReason = "already scheduled today"

		return result, nil
	}

	// Pipeline runs arrive from background triggers, so the sensor gets the
	// longer background timeout.
	location, err := s.locations.ResolveLocationBackground(ctx)
	if err != nil {
		s.logger.Warn("Location resolution degraded", slog.Any("error", err))
	}
	result.City = location.City

	schedule, err := s.prayers.ResolvePrayerTimes(ctx, location, force)
	if err != nil {
		s.logger.Error("Prayer time resolution failed", slog.Any("error", err))
		result.SkipReason = "prayer times unavailable"

		return result, nil
	}
	if schedule == nil {
		// Offline with an empty cache; existing notifications stay as they are.
		result.SkipReason = "no schedule available"

		return result, nil
	}

	count, err := s.scheduler.ScheduleDailyNotifications(ctx, schedule)
	if err != nil {
		if errors.Is(err, service.ErrNotificationPermissionDenied) {
			result.SkipReason = "notifications not permitted"

			return result, nil
		}
		s.logger.Error("Notification scheduling failed", slog.Any("error", err))
		result.SkipReason = "scheduling failed"

		return result, nil
	}

	// Mark only after a successful run so a failed day is retried by the next
	// trigger.
	if err := s.gate.MarkScheduled(ctx, today); err != nil {
		s.logger.Warn("Failed to record scheduling date", slog.Any("error", err))
	}

	result.Scheduled = true
	result.Count = count

	return result, nil
}
