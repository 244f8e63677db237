package notification

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
)

type pendingEntry struct {
	notification entity.ScheduledNotification
	timer        *time.Timer
}

// timerGateway holds the pending table and fires each entry through the
// sender at its trigger time. Ids are stable across days, so scheduling an id
// that is already pending replaces that entry.
type timerGateway struct {
	mu      sync.Mutex
	pending map[int]*pendingEntry
	sender  PushSender
	logger  *slog.Logger

	// permitted reflects whether a delivery target is configured. The
	// scheduler aborts before cancelling anything when this is false.
	permitted bool

	closed bool
}

// NewTimerGateway creates the in-process scheduling gateway.
func NewTimerGateway(sender PushSender, permitted bool, logger *slog.Logger) service.NotificationGateway {
	return &timerGateway{
		pending:   make(map[int]*pendingEntry),
		sender:    sender,
		logger:    logger,
		permitted: permitted,
	}
}

func (g *timerGateway) CheckPermission(_ context.Context) (bool, error) {
	return g.permitted, nil
}

func (g *timerGateway) Pending(_ context.Context) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]int, 0, len(g.pending))
	for id := range g.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, nil
}

func (g *timerGateway) Cancel(_ context.Context, ids []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if entry, ok := g.pending[id]; ok {
			entry.timer.Stop()
			delete(g.pending, id)
		}
	}

	return nil
}

func (g *timerGateway) Schedule(_ context.Context, batch []entity.ScheduledNotification) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return errors.New("notification gateway is closed")
	}

	now := time.Now()
	for _, notification := range batch {
		delay := notification.TriggerAt.Sub(now)
		if delay < 0 {
			delay = 0
		}

		if prior, ok := g.pending[notification.ID]; ok {
			prior.timer.Stop()
		}

		id := notification.ID
		entry := &pendingEntry{notification: notification}
		entry.timer = time.AfterFunc(delay, func() { g.fire(id) })
		g.pending[id] = entry
	}

	return nil
}

// Close stops all pending timers. Entries already firing still complete.
func (g *timerGateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true
	for id, entry := range g.pending {
		entry.timer.Stop()
		delete(g.pending, id)
	}
}

func (g *timerGateway) fire(id int) {
	g.mu.Lock()
	entry, ok := g.pending[id]
	if ok {
		delete(g.pending, id)
	}
	g.mu.Unlock()

	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := g.sender.Send(ctx, entry.notification); err != nil {
		g.logger.Error("Failed to deliver notification",
			slog.Int("id", id),
			slog.String("title", entry.notification.Title),
			slog.Any("error", err))
	}
}
