package worker

import (
	"context"
	"log/slog"
	"time"

	"muslimhub/config"
	"muslimhub/internal/delivery"
	"muslimhub/internal/domain/constants"
	"muslimhub/internal/usecase"

	"go.uber.org/fx"
)

// TickerParams holds dependencies for the refresh ticker.
type TickerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	PipelineUC usecase.PipelineUsecase
}

// refreshTicker drives the pipeline on an interval when no external scheduler
// pushes through Pub/Sub. The once-per-day gate keeps the hourly cadence from
// rescheduling anything.
type refreshTicker struct {
	interval   time.Duration
	enabled    bool
	logger     *slog.Logger
	pipelineUC usecase.PipelineUsecase
	stop       chan struct{}
}

// NewRefreshTicker creates the fallback interval trigger.
func NewRefreshTicker(params TickerParams) delivery.Delivery {
	enabled := params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderGoogle

	ticker := &refreshTicker{
		interval:   params.Cfg.Worker.RefreshInterval,
		enabled:    enabled,
		logger:     params.Logger,
		pipelineUC: params.PipelineUC,
		stop:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(ticker.stop)

			return nil
		},
	})

	return ticker
}

func (t *refreshTicker) Serve(ctx context.Context) error {
	if !t.enabled {
		t.logger.Info("Refresh ticker disabled, Google Pub/Sub drives the pipeline")

		return nil
	}

	t.logger.Info("Starting refresh ticker", slog.Duration("interval", t.interval))

	// One run at startup so a fresh deploy schedules today without waiting
	// a full interval.
	t.run(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.run(ctx)
		case <-ctx.Done():
			return nil
		case <-t.stop:
			return nil
		}
	}
}

func (t *refreshTicker) run(ctx context.Context) {
	result, err := t.pipelineUC.RefreshPrayerNotifications(ctx, false)
	if err != nil {
		t.logger.Error("Scheduled refresh failed", slog.Any("error", err))

		return
	}

	if result.Scheduled {
		t.logger.Info("Scheduled refresh completed",
			slog.String("date", result.Date),
			slog.String("city", result.City),
			slog.Int("count", result.Count),
		)
	} else {
		t.logger.Debug("Scheduled refresh skipped", slog.String("reason", result.SkipReason))
	}
}
