package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
)

// slotProfile fixes the id, channel, and sound for one notification slot.
type slotProfile struct {
	id      int
	channel entity.NotificationChannel
	sound   string
}

//nolint:gochecknoglobals
var slotProfiles = map[string]slotProfile{
	entity.PrayerSubuh:   {entity.NotificationIDSubuh, entity.ChannelSubuh, entity.SoundAdzanSubuh},
	entity.PrayerDzuhur:  {entity.NotificationIDDzuhur, entity.ChannelPrayer, entity.SoundAdzan},
	entity.PrayerAshar:   {entity.NotificationIDAshar, entity.ChannelPrayer, entity.SoundAdzan},
	entity.PrayerMaghrib: {entity.NotificationIDMaghrib, entity.ChannelPrayer, entity.SoundAdzan},
	entity.PrayerIsya:    {entity.NotificationIDIsya, entity.ChannelPrayer, entity.SoundAdzan},
	entity.PrayerImsyak:  {entity.NotificationIDImsyak, entity.ChannelImsyak, entity.SoundNotification},
}

type schedulerService struct {
	gateway service.NotificationGateway
	cfg     *config.NotificationsConfig
	logger  *slog.Logger
	now     func() time.Time
}

// NewSchedulerService creates the daily notification scheduler.
func NewSchedulerService(
	gateway service.NotificationGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SchedulerUsecase {
	return &schedulerService{
		gateway: gateway,
		cfg:     cfg.Notifications,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *schedulerService) ScheduleDailyNotifications(ctx context.Context, schedule *entity.DailyPrayerSchedule) (int, error) {
	granted, err := s.gateway.CheckPermission(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check notification permission")
	}
	if !granted {
		// Nothing is cancelled; existing notifications stay intact.
		return 0, service.ErrNotificationPermissionDenied
	}

	pending, err := s.gateway.Pending(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list pending notifications")
	}
	if len(pending) > 0 {
		if err := s.gateway.Cancel(ctx, pending); err != nil {
			return 0, errors.Wrap(err, "failed to cancel pending notifications")
		}
	}

	batch := s.buildBatch(schedule)
	if len(batch) == 0 {
		s.logger.Warn("No valid prayer times to schedule", slog.String("date", schedule.Date))

		return 0, nil
	}

	if err := s.gateway.Schedule(ctx, batch); err != nil {
		return 0, errors.Wrap(err, "failed to schedule notifications")
	}

	s.logger.Info("Prayer notifications scheduled",
		slog.String("date", schedule.Date),
		slog.Int("count", len(batch)))

	return len(batch), nil
}

func (s *schedulerService) buildBatch(schedule *entity.DailyPrayerSchedule) []entity.ScheduledNotification {
	now := s.now()

	slots := schedule.PrimarySlots()
	if s.imsyakEnabled() && schedule.Imsyak != "" {
		slots = append(slots, entity.PrayerSlot{Name: entity.PrayerImsyak, Time: schedule.Imsyak})
	}

	batch := make([]entity.ScheduledNotification, 0, len(slots))
	for _, slot := range slots {
		clock, ok := normalizeClock(slot.Time)
		if !ok {
			s.logger.Warn("Skipping malformed prayer time",
				slog.String("prayer", slot.Name),
				slog.String("time", slot.Time))

			continue
		}

		triggerAt := atClock(now, clock)
		if !triggerAt.After(now) {
			// Already elapsed today; fire at the same clock time tomorrow.
			triggerAt = triggerAt.AddDate(0, 0, 1)
		}

		profile := slotProfiles[slot.Name]
		batch = append(batch, entity.ScheduledNotification{
			ID:        profile.id,
			Title:     notificationTitle(slot.Name),
			Body:      notificationBody(slot.Name, clock),
			TriggerAt: triggerAt,
			Channel:   profile.channel,
			Sound:     profile.sound,
			Extra:     map[string]string{"prayer": slot.Name, "time": clock},
		})
	}

	return batch
}

func (s *schedulerService) imsyakEnabled() bool {
	return s.cfg != nil && s.cfg.EnableImsyak
}

func notificationTitle(prayer string) string {
	if prayer == entity.PrayerImsyak {
		return "Waktu Imsyak"
	}

	return fmt.Sprintf("Waktu Shalat %s", prayer)
}

func notificationBody(prayer, clock string) string {
	if prayer == entity.PrayerImsyak {
		return fmt.Sprintf("Imsyak pukul %s, bersiap menahan diri", clock)
	}

	return fmt.Sprintf("Saatnya menunaikan shalat %s pukul %s", prayer, clock)
}
