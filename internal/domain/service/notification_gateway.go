package service

import (
	"context"

	"muslimhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotificationPermissionDenied is returned when the user has not granted
// notification delivery. A scheduling run aborts before touching pending
// notifications when it sees this.
var ErrNotificationPermissionDenied = errors.New("notification permission denied")

// NotificationGateway is the platform local-notification facility: a batch of
// future-dated entries is submitted in one call, replacing nothing by itself;
// callers cancel prior entries first to get replace-all semantics.
type NotificationGateway interface {
	// CheckPermission reports whether notifications may be delivered,
	// requesting permission first if it has never been asked.
	CheckPermission(ctx context.Context) (bool, error)

	// Pending returns the ids of all not-yet-fired notifications.
	Pending(ctx context.Context) ([]int, error)

	// Cancel removes the given pending notifications. Unknown ids are ignored.
	Cancel(ctx context.Context, ids []int) error

	// Schedule submits the batch. Entries fire once at their TriggerAt.
	Schedule(ctx context.Context, batch []entity.ScheduledNotification) error
}
