package handler

import (
	"log/slog"
	"net/http"

	"muslimhub/internal/delivery/http/response"
	"muslimhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the resolved device location.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// GetLocation resolves the current location through the cache, the sensor,
// and the default fallback, in that order.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	record, err := h.locationUC.ResolveLocation(c.Request().Context())
	if err != nil {
		// The resolver still returned a usable record; surface it with a note.
		h.logger.Warn("Location resolved with degraded storage", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, record, "Location resolved")
}

// RefreshLocation forces a fresh sensor read and persists it.
func (h *LocationHandler) RefreshLocation(c echo.Context) error {
	if err := h.locationUC.UpdateLocationInBackground(c.Request().Context()); err != nil {
		return response.InternalServerError(c, "LOCATION_REFRESH_FAILED", "Failed to refresh location")
	}

	record, err := h.locationUC.ResolveLocation(c.Request().Context())
	if err != nil {
		h.logger.Warn("Location resolved with degraded storage", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, record, "Location refreshed")
}

// ClearLocation removes the cached location.
func (h *LocationHandler) ClearLocation(c echo.Context) error {
	if err := h.locationUC.ClearCachedLocation(c.Request().Context()); err != nil {
		return response.InternalServerError(c, "LOCATION_CLEAR_FAILED", "Failed to clear cached location")
	}

	return response.Success(c, http.StatusOK, nil, "Cached location cleared")
}
