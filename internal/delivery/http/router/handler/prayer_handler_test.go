package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/usecase"
	mockSvc "muslimhub/internal/mocks/service"
	mockUsecase "muslimhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type prayerHandlerMocks struct {
	location  *mockUsecase.MockLocationUsecase
	prayer    *mockUsecase.MockPrayerTimesUsecase
	pipeline  *mockUsecase.MockPipelineUsecase
	publisher *mockSvc.MockEventPublisher
}

func newPrayerHandler(t *testing.T, cfg *config.Config) (*PrayerHandler, prayerHandlerMocks) {
	t.Helper()

	mocks := prayerHandlerMocks{
		location:  mockUsecase.NewMockLocationUsecase(t),
		prayer:    mockUsecase.NewMockPrayerTimesUsecase(t),
		pipeline:  mockUsecase.NewMockPipelineUsecase(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	h := NewPrayerHandler(PrayerHandlerParams{
		Config:     cfg,
		Logger:     slog.Default(),
		LocationUC: mocks.location,
		PrayerUC:   mocks.prayer,
		PipelineUC: mocks.pipeline,
		Publisher:  mocks.publisher,
	})

	return h, mocks
}

func testLocation() *entity.LocationRecord {
	return &entity.LocationRecord{
		Coordinate: entity.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
		City:       "Jakarta",
	}
}

func TestPrayerHandler_GetTimes(t *testing.T) {
	h, mocks := newPrayerHandler(t, &config.Config{})
	e := echo.New()

	location := testLocation()
	schedule := &entity.DailyPrayerSchedule{
		Subuh: "04:41", Dzuhur: "12:05", Ashar: "15:14", Maghrib: "18:10", Isya: "19:19",
		Date: "2024-03-15",
	}
	mocks.location.EXPECT().ResolveLocation(mock.Anything).Return(location, nil)
	mocks.prayer.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(schedule, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/prayer/times", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetTimes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                      `json:"success"`
		Data    entity.DailyPrayerSchedule `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "04:41", body.Data.Subuh)
}

func TestPrayerHandler_GetTimes_ForceQuery(t *testing.T) {
	h, mocks := newPrayerHandler(t, &config.Config{})
	e := echo.New()

	location := testLocation()
	mocks.location.EXPECT().ResolveLocation(mock.Anything).Return(location, nil)
	mocks.prayer.EXPECT().ResolvePrayerTimes(mock.Anything, location, true).
		Return(&entity.DailyPrayerSchedule{Date: "2024-03-15"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/prayer/times?force=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetTimes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrayerHandler_GetTimes_OfflineNoCache(t *testing.T) {
	h, mocks := newPrayerHandler(t, &config.Config{})
	e := echo.New()

	location := testLocation()
	mocks.location.EXPECT().ResolveLocation(mock.Anything).Return(location, nil)
	mocks.prayer.EXPECT().ResolvePrayerTimes(mock.Anything, location, false).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/prayer/times", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetTimes(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPrayerHandler_Refresh_InlineWithoutPubSub(t *testing.T) {
	h, mocks := newPrayerHandler(t, &config.Config{})
	e := echo.New()

	mocks.pipeline.EXPECT().RefreshPrayerNotifications(mock.Anything, false).
		Return(&usecase.RefreshResult{Scheduled: true, Count: 5}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/prayer/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrayerHandler_Refresh_PublishesWhenPubSubConfigured(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://worker/push"}}
	h, mocks := newPrayerHandler(t, cfg)
	e := echo.New()

	mocks.publisher.EXPECT().PublishRefreshEvent(mock.Anything, mock.MatchedBy(func(event *service.RefreshEvent) bool {
		return event.Trigger == service.RefreshTriggerManual && event.Force && event.EventID != ""
	})).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/prayer/refresh?force=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
