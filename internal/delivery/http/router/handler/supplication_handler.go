package handler

import (
	"log/slog"
	"net/http"

	"muslimhub/internal/delivery/http/response"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
	"muslimhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SupplicationHandlerParams holds dependencies for SupplicationHandler, injected by Fx.
type SupplicationHandlerParams struct {
	fx.In

	SupplicationUC usecase.SupplicationUsecase
	Logger         *slog.Logger
}

// SupplicationHandler serves doa, tahlil, and prophet stories.
type SupplicationHandler struct {
	supplicationUC usecase.SupplicationUsecase
	logger         *slog.Logger
}

// NewSupplicationHandler is the constructor for SupplicationHandler.
func NewSupplicationHandler(params SupplicationHandlerParams) *SupplicationHandler {
	return &SupplicationHandler{
		supplicationUC: params.SupplicationUC,
		logger:         params.Logger,
	}
}

// ListDoa returns the full supplication collection.
func (h *SupplicationHandler) ListDoa(c echo.Context) error {
	list, err := h.supplicationUC.DoaList(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "DOA_UNAVAILABLE", "Failed to load doa list")
	}

	return response.Success(c, http.StatusOK, list, "Doa list retrieved")
}

// GetDoa returns one supplication by its id.
func (h *SupplicationHandler) GetDoa(c echo.Context) error {
	doa, err := h.supplicationUC.DoaByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, impl.ErrDoaNotFound) {
			return response.NotFound(c, "DOA_NOT_FOUND", "No doa with that id")
		}

		return response.ServiceUnavailable(c, "DOA_UNAVAILABLE", "Failed to load doa")
	}

	return response.Success(c, http.StatusOK, doa, "Doa retrieved")
}

// ListTahlil returns the tahlil reading sequence.
func (h *SupplicationHandler) ListTahlil(c echo.Context) error {
	items, err := h.supplicationUC.Tahlil(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "TAHLIL_UNAVAILABLE", "Failed to load tahlil")
	}

	return response.Success(c, http.StatusOK, items, "Tahlil retrieved")
}

// ListKisahNabi returns the prophet stories.
func (h *SupplicationHandler) ListKisahNabi(c echo.Context) error {
	stories, err := h.supplicationUC.KisahNabiList(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "KISAH_NABI_UNAVAILABLE", "Failed to load kisah nabi")
	}

	return response.Success(c, http.StatusOK, stories, "Kisah nabi retrieved")
}
