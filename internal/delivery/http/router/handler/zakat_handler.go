package handler

import (
	"log/slog"
	"net/http"

	"muslimhub/internal/delivery/http/response"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ZakatHandlerParams holds dependencies for ZakatHandler, injected by Fx.
type ZakatHandlerParams struct {
	fx.In

	ZakatUC usecase.ZakatUsecase
	Logger  *slog.Logger
}

// ZakatHandler serves nisab thresholds, the gold price, and assessments.
type ZakatHandler struct {
	zakatUC usecase.ZakatUsecase
	logger  *slog.Logger
}

// NewZakatHandler is the constructor for ZakatHandler.
func NewZakatHandler(params ZakatHandlerParams) *ZakatHandler {
	return &ZakatHandler{
		zakatUC: params.ZakatUC,
		logger:  params.Logger,
	}
}

// AssessRequest represents the request body for a zakat assessment.
type AssessRequest struct {
	Wealth   float64 `json:"wealth" validate:"min=0"`
	Standard string  `json:"standard,omitempty" validate:"omitempty,oneof=classical common"`
}

// GetNisab returns the nisab thresholds. ?standard=classical|common selects
// the metal weights; classical is the default.
func (h *ZakatHandler) GetNisab(c echo.Context) error {
	standard, ok := parseStandard(c.QueryParam("standard"))
	if !ok {
		return response.BadRequest(c, "INVALID_STANDARD", "Standard must be classical or common")
	}

	thresholds, err := h.zakatUC.NisabThresholds(c.Request().Context(), standard)
	if err != nil {
		return response.ServiceUnavailable(c, "NISAB_UNAVAILABLE", "Failed to compute nisab thresholds")
	}

	return response.Success(c, http.StatusOK, thresholds, "Nisab thresholds retrieved")
}

// GetGoldPrice returns the gold price in IDR per gram.
func (h *ZakatHandler) GetGoldPrice(c echo.Context) error {
	price, err := h.zakatUC.GoldPricePerGramIDR(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "GOLD_PRICE_UNAVAILABLE", "Failed to resolve gold price")
	}

	return response.Success(c, http.StatusOK, price, "Gold price retrieved")
}

// Assess applies the wealth-zakat rule against the gold nisab.
func (h *ZakatHandler) Assess(c echo.Context) error {
	var req AssessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	standard, ok := parseStandard(req.Standard)
	if !ok {
		return response.BadRequest(c, "INVALID_STANDARD", "Standard must be classical or common")
	}

	assessment, err := h.zakatUC.Assess(c.Request().Context(), req.Wealth, standard)
	if err != nil {
		return response.ServiceUnavailable(c, "ASSESSMENT_UNAVAILABLE", "Failed to assess zakat")
	}

	return response.Success(c, http.StatusOK, assessment, "Zakat assessed")
}

func parseStandard(raw string) (entity.NisabStandard, bool) {
	switch raw {
	case "", string(entity.NisabStandardClassical):
		return entity.NisabStandardClassical, true
	case string(entity.NisabStandardCommon):
		return entity.NisabStandardCommon, true
	default:
		return "", false
	}
}
