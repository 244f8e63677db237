package usecase

import "context"

// RefreshResult reports what one pipeline run did.
type RefreshResult struct {
	// Scheduled is true when a new batch of notifications was submitted.
	Scheduled bool `json:"scheduled"`

	// SkipReason explains an intact run that scheduled nothing, such as
	// "already scheduled today" or "no schedule available".
	SkipReason string `json:"skip_reason,omitempty"`

	Date  string `json:"date,omitempty"`
	City  string `json:"city,omitempty"`
	Count int    `json:"count,omitempty"`
}

// PipelineUsecase is the daily refresh entry point: gate, resolve location,
// resolve prayer times, schedule notifications, mark the day done.
type PipelineUsecase interface {
	// RefreshPrayerNotifications runs the pipeline. Stage failures are logged
	// and reported through the result; the error return is reserved for
	// storage faults that make retrying worthwhile.
	RefreshPrayerNotifications(ctx context.Context, force bool) (*RefreshResult, error)
}
