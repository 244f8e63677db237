package repository

import "context"

// GateRepository persists the last-scheduled-date stamp that keeps repeated
// foreground events from re-running the notification pipeline within one day.
type GateRepository interface {
	// LastScheduledDate returns the stored YYYY-MM-DD stamp, or "" when no
	// scheduling run has completed yet.
	LastScheduledDate(ctx context.Context) (string, error)
	MarkScheduled(ctx context.Context, date string) error
}
