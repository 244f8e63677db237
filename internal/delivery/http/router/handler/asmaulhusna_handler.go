package handler

import (
	"log/slog"
	"net/http"

	"muslimhub/internal/delivery/http/response"
	"muslimhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AsmaulHusnaHandlerParams holds dependencies for AsmaulHusnaHandler, injected by Fx.
type AsmaulHusnaHandlerParams struct {
	fx.In

	AsmaulHusnaUC usecase.AsmaulHusnaUsecase
	Logger        *slog.Logger
}

// AsmaulHusnaHandler serves the 99 names of Allah.
type AsmaulHusnaHandler struct {
	asmaulHusnaUC usecase.AsmaulHusnaUsecase
	logger        *slog.Logger
}

// NewAsmaulHusnaHandler is the constructor for AsmaulHusnaHandler.
func NewAsmaulHusnaHandler(params AsmaulHusnaHandlerParams) *AsmaulHusnaHandler {
	return &AsmaulHusnaHandler{
		asmaulHusnaUC: params.AsmaulHusnaUC,
		logger:        params.Logger,
	}
}

// ListNames returns the full list; a packaged subset when offline on first run.
func (h *AsmaulHusnaHandler) ListNames(c echo.Context) error {
	names, err := h.asmaulHusnaUC.Names(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "NAMES_UNAVAILABLE", "Failed to load asmaul husna")
	}

	return response.Success(c, http.StatusOK, names, "Asmaul husna retrieved")
}

// NameOfDay returns the deterministic name for today.
func (h *AsmaulHusnaHandler) NameOfDay(c echo.Context) error {
	name, err := h.asmaulHusnaUC.NameOfDay(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "NAMES_UNAVAILABLE", "Failed to pick the name of the day")
	}

	return response.Success(c, http.StatusOK, name, "Name of the day retrieved")
}
