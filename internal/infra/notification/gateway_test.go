package notification

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"muslimhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []entity.ScheduledNotification
}

func (s *recordingSender) Send(_ context.Context, notification entity.ScheduledNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, notification)

	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sent)
}

func TestTimerGateway_PendingAndCancel(t *testing.T) {
	ctx := context.Background()
	gateway := NewTimerGateway(&recordingSender{}, true, slog.Default())

	batch := []entity.ScheduledNotification{
		{ID: entity.NotificationIDSubuh, Title: "Waktu Subuh", TriggerAt: time.Now().Add(time.Hour)},
		{ID: entity.NotificationIDDzuhur, Title: "Waktu Dzuhur", TriggerAt: time.Now().Add(2 * time.Hour)},
	}
	require.NoError(t, gateway.Schedule(ctx, batch))

	ids, err := gateway.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	// Unknown ids are ignored.
	require.NoError(t, gateway.Cancel(ctx, []int{1, 99}))

	ids, err = gateway.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)
}

func TestTimerGateway_ScheduleSameIDReplaces(t *testing.T) {
	ctx := context.Background()
	gateway := NewTimerGateway(&recordingSender{}, true, slog.Default())

	first := entity.ScheduledNotification{ID: 1, TriggerAt: time.Now().Add(time.Hour)}
	require.NoError(t, gateway.Schedule(ctx, []entity.ScheduledNotification{first}))

	second := entity.ScheduledNotification{ID: 1, TriggerAt: time.Now().Add(2 * time.Hour)}
	require.NoError(t, gateway.Schedule(ctx, []entity.ScheduledNotification{second}))

	ids, err := gateway.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestTimerGateway_FiresThroughSender(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	gateway := NewTimerGateway(sender, true, slog.Default())

	entry := entity.ScheduledNotification{
		ID:        entity.NotificationIDMaghrib,
		Title:     "Waktu Maghrib",
		TriggerAt: time.Now().Add(10 * time.Millisecond),
		Channel:   entity.ChannelPrayer,
		Sound:     entity.SoundAdzan,
	}
	require.NoError(t, gateway.Schedule(ctx, []entity.ScheduledNotification{entry}))

	assert.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 10*time.Millisecond)

	ids, err := gateway.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTimerGateway_CloseStopsPending(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	gateway := NewTimerGateway(sender, true, slog.Default()).(*timerGateway)

	entry := entity.ScheduledNotification{ID: 1, TriggerAt: time.Now().Add(50 * time.Millisecond)}
	require.NoError(t, gateway.Schedule(ctx, []entity.ScheduledNotification{entry}))

	gateway.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, sender.count())
	assert.Error(t, gateway.Schedule(ctx, []entity.ScheduledNotification{entry}))
}

func TestTimerGateway_PermissionFlag(t *testing.T) {
	ctx := context.Background()

	granted, err := NewTimerGateway(&recordingSender{}, true, slog.Default()).CheckPermission(ctx)
	require.NoError(t, err)
	assert.True(t, granted)

	denied, err := NewTimerGateway(&recordingSender{}, false, slog.Default()).CheckPermission(ctx)
	require.NoError(t, err)
	assert.False(t, denied)
}
