package service

import "context"

// Refresh triggers, recorded on events for observability.
const (
	RefreshTriggerInterval = "interval"
	RefreshTriggerManual   = "manual"
	RefreshTriggerNetwork  = "network"
)

// RefreshEvent asks the worker to run the prayer-notification pipeline.
type RefreshEvent struct {
	EventID   string `json:"event_id"`
	Trigger   string `json:"trigger"`
	Force     bool   `json:"force"`
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher hands refresh events to the worker, either through Google
// Pub/Sub or a local HTTP push endpoint during development.
type EventPublisher interface {
	PublishRefreshEvent(ctx context.Context, event *RefreshEvent) error
	Close() error
}
