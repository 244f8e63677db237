package handler

import (
	"log/slog"
	"net/http"
	"time"

	"muslimhub/config"
	deliverycontext "muslimhub/internal/delivery/context"
	"muslimhub/internal/delivery/http/response"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrayerHandlerParams holds dependencies for PrayerHandler, injected by Fx.
type PrayerHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	LocationUC usecase.LocationUsecase
	PrayerUC   usecase.PrayerTimesUsecase
	PipelineUC usecase.PipelineUsecase
	Publisher  service.EventPublisher
}

// PrayerHandler serves prayer times and the refresh trigger.
type PrayerHandler struct {
	logger     *slog.Logger
	locationUC usecase.LocationUsecase
	prayerUC   usecase.PrayerTimesUsecase
	pipelineUC usecase.PipelineUsecase
	publisher  service.EventPublisher

	// publishRefresh routes POST /refresh through Pub/Sub; otherwise the
	// pipeline runs inline in the API process.
	publishRefresh bool
}

// NewPrayerHandler is the constructor for PrayerHandler.
func NewPrayerHandler(params PrayerHandlerParams) *PrayerHandler {
	publishRefresh := params.Config.PubSub != nil && params.Config.PubSub.Provider != ""

	return &PrayerHandler{
		logger:         params.Logger,
		locationUC:     params.LocationUC,
		prayerUC:       params.PrayerUC,
		pipelineUC:     params.PipelineUC,
		publisher:      params.Publisher,
		publishRefresh: publishRefresh,
	}
}

// GetTimes returns today's prayer schedule for the resolved location.
// ?force=true bypasses the same-day schedule cache.
func (h *PrayerHandler) GetTimes(c echo.Context) error {
	ctx := c.Request().Context()
	force := c.QueryParam("force") == "true"

	location, err := h.locationUC.ResolveLocation(ctx)
	if err != nil {
		h.logger.Warn("Location resolved with degraded storage", slog.Any("error", err))
	}

	schedule, err := h.prayerUC.ResolvePrayerTimes(ctx, location, force)
	if err != nil {
		return response.InternalServerError(c, "SCHEDULE_READ_FAILED", "Failed to read prayer schedule")
	}
	if schedule == nil {
		return response.ServiceUnavailable(c, "SCHEDULE_UNAVAILABLE",
			"Prayer times unavailable; provider unreachable and nothing cached")
	}

	return response.Success(c, http.StatusOK, schedule, "Prayer times resolved")
}

// GetNext returns the next upcoming prayer relative to now.
func (h *PrayerHandler) GetNext(c echo.Context) error {
	ctx := c.Request().Context()

	location, err := h.locationUC.ResolveLocation(ctx)
	if err != nil {
		h.logger.Warn("Location resolved with degraded storage", slog.Any("error", err))
	}

	schedule, err := h.prayerUC.ResolvePrayerTimes(ctx, location, false)
	if err != nil {
		return response.InternalServerError(c, "SCHEDULE_READ_FAILED", "Failed to read prayer schedule")
	}

	next, ok := h.prayerUC.NextPrayer(schedule, time.Now())
	if !ok {
		return response.ServiceUnavailable(c, "SCHEDULE_UNAVAILABLE",
			"No schedule available to compute the next prayer")
	}

	return response.Success(c, http.StatusOK, next, "Next prayer resolved")
}

// Refresh triggers the notification refresh pipeline. With Pub/Sub configured
// the event is published for the worker; otherwise the pipeline runs inline.
// ?force=true bypasses the once-per-day gate.
func (h *PrayerHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	force := c.QueryParam("force") == "true"

	if h.publishRefresh {
		event := &service.RefreshEvent{
			EventID:   uuid.New().String(),
			Trigger:   service.RefreshTriggerManual,
			Force:     force,
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		}
		if err := h.publisher.PublishRefreshEvent(ctx, event); err != nil {
			h.logger.Error("Failed to publish refresh event", slog.Any("error", err))

			return response.InternalServerError(c, "PUBLISH_FAILED", "Failed to publish refresh event")
		}

		return response.Success(c, http.StatusAccepted,
			map[string]string{"event_id": event.EventID}, "Refresh event published")
	}

	result, err := h.pipelineUC.RefreshPrayerNotifications(ctx, force)
	if err != nil {
		h.logger.Error("Inline refresh failed", slog.Any("error", err))

		return response.InternalServerError(c, "REFRESH_FAILED", "Failed to refresh prayer notifications")
	}

	return response.Success(c, http.StatusOK, result, "Refresh completed")
}
