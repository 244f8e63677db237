package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/infra/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Timings(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": {"timings": {"Fajr": "04:35", "Dhuhr": "12:01", "Asr": "15:14", "Maghrib": "18:05", "Isha": "19:14", "Imsak": "04:25"}}
		}`))
	}))
	defer server.Close()

	httpClient := provider.NewClient(&config.ProvidersConfig{RequestTimeout: time.Second})
	client := NewClient(httpClient, &config.PrayerTimesConfig{BaseURL: server.URL})

	day := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	timings, err := client.Timings(context.Background(), entity.Coordinate{Latitude: -6.2, Longitude: 106.8}, day, 20)
	require.NoError(t, err)

	assert.Equal(t, "/timings/15-03-2024", gotPath)
	assert.Contains(t, gotQuery, "method=20")
	assert.Equal(t, "04:35", timings["Fajr"])
	assert.Equal(t, "04:25", timings["Imsak"])
}

func TestClient_Timings_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 400, "status": "Bad Request", "data": {}}`))
	}))
	defer server.Close()

	httpClient := provider.NewClient(&config.ProvidersConfig{RequestTimeout: time.Second})
	client := NewClient(httpClient, &config.PrayerTimesConfig{BaseURL: server.URL})

	_, err := client.Timings(context.Background(), entity.Coordinate{}, time.Now(), 20)
	assert.Error(t, err)
}
