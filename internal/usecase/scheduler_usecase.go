package usecase

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// SchedulerUsecase converts a daily schedule into pending notifications.
type SchedulerUsecase interface {
	// ScheduleDailyNotifications cancels all pending prayer notifications and
	// submits one batch for the schedule, returning the submitted count.
	// A denied notification permission aborts before anything is cancelled.
	// Malformed times are skipped with a warning; past times fire at the same
	// clock time tomorrow.
	ScheduleDailyNotifications(ctx context.Context, schedule *entity.DailyPrayerSchedule) (int, error)
}
