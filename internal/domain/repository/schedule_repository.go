package repository

import (
	"context"

	"muslimhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrScheduleNotCached is returned when no prayer schedule is stored.
var ErrScheduleNotCached = errors.New("no cached prayer schedule")

// ScheduleRepository persists today's prayer schedule. Saving replaces any
// prior schedule; there is never more than one.
type ScheduleRepository interface {
	LatestSchedule(ctx context.Context) (*entity.DailyPrayerSchedule, error)
	SaveSchedule(ctx context.Context, schedule *entity.DailyPrayerSchedule) error
}
