package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"muslimhub/internal/delivery/http/response"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
	"muslimhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuranHandlerParams holds dependencies for QuranHandler, injected by Fx.
type QuranHandlerParams struct {
	fx.In

	QuranUC usecase.QuranUsecase
	Logger  *slog.Logger
}

// QuranHandler serves Quran text.
type QuranHandler struct {
	quranUC usecase.QuranUsecase
	logger  *slog.Logger
}

// NewQuranHandler is the constructor for QuranHandler.
func NewQuranHandler(params QuranHandlerParams) *QuranHandler {
	return &QuranHandler{
		quranUC: params.QuranUC,
		logger:  params.Logger,
	}
}

// ListSurah returns all 114 surah summaries.
func (h *QuranHandler) ListSurah(c echo.Context) error {
	list, err := h.quranUC.SurahList(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "SURAH_LIST_UNAVAILABLE", "Failed to load surah list")
	}

	return response.Success(c, http.StatusOK, list, "Surah list retrieved")
}

// GetSurah returns one surah with all of its verses.
func (h *QuranHandler) GetSurah(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SURAH_NUMBER", "Surah number must be an integer")
	}

	detail, err := h.quranUC.SurahDetail(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, impl.ErrSurahNotFound) {
			return response.NotFound(c, "SURAH_NOT_FOUND", "Surah number must be between 1 and 114")
		}

		return response.ServiceUnavailable(c, "SURAH_UNAVAILABLE", "Failed to load surah")
	}

	return response.Success(c, http.StatusOK, detail, "Surah retrieved")
}

// PrecacheSurah fetches a surah into the store for offline reading.
func (h *QuranHandler) PrecacheSurah(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SURAH_NUMBER", "Surah number must be an integer")
	}

	if err := h.quranUC.PrecacheSurah(c.Request().Context(), number); err != nil {
		if errors.Is(err, impl.ErrSurahNotFound) {
			return response.NotFound(c, "SURAH_NOT_FOUND", "Surah number must be between 1 and 114")
		}

		return response.ServiceUnavailable(c, "SURAH_UNAVAILABLE", "Failed to precache surah")
	}

	return response.Success(c, http.StatusOK, nil, "Surah precached")
}

// RandomAyah returns one uniformly random verse.
func (h *QuranHandler) RandomAyah(c echo.Context) error {
	ayah, err := h.quranUC.RandomAyah(c.Request().Context())
	if err != nil {
		return response.ServiceUnavailable(c, "AYAH_UNAVAILABLE", "Failed to draw a random ayah")
	}

	return response.Success(c, http.StatusOK, ayah, "Random ayah retrieved")
}
