// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"muslimhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler     *handler.LocationHandler
	PrayerHandler       *handler.PrayerHandler
	QuranHandler        *handler.QuranHandler
	AsmaulHusnaHandler  *handler.AsmaulHusnaHandler
	SupplicationHandler *handler.SupplicationHandler
	ZakatHandler        *handler.ZakatHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler     *handler.LocationHandler
	prayerHandler       *handler.PrayerHandler
	quranHandler        *handler.QuranHandler
	asmaulHusnaHandler  *handler.AsmaulHusnaHandler
	supplicationHandler *handler.SupplicationHandler
	zakatHandler        *handler.ZakatHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:     params.LocationHandler,
		prayerHandler:       params.PrayerHandler,
		quranHandler:        params.QuranHandler,
		asmaulHusnaHandler:  params.AsmaulHusnaHandler,
		supplicationHandler: params.SupplicationHandler,
		zakatHandler:        params.ZakatHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	locationGroup := api.Group("/location")
	{
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.POST("/refresh", r.locationHandler.RefreshLocation)
		locationGroup.DELETE("", r.locationHandler.ClearLocation)
	}

	prayerGroup := api.Group("/prayer")
	{
		prayerGroup.GET("/times", r.prayerHandler.GetTimes)
		prayerGroup.GET("/next", r.prayerHandler.GetNext)
		prayerGroup.POST("/refresh", r.prayerHandler.Refresh)
	}

	quranGroup := api.Group("/quran")
	{
		quranGroup.GET("/surah", r.quranHandler.ListSurah)
		quranGroup.GET("/surah/:number", r.quranHandler.GetSurah)
		quranGroup.GET("/random", r.quranHandler.RandomAyah)
		quranGroup.POST("/surah/:number/precache", r.quranHandler.PrecacheSurah)
	}

	asmaulHusnaGroup := api.Group("/asmaul-husna")
	{
		asmaulHusnaGroup.GET("", r.asmaulHusnaHandler.ListNames)
		asmaulHusnaGroup.GET("/today", r.asmaulHusnaHandler.NameOfDay)
	}

	doaGroup := api.Group("/doa")
	{
		doaGroup.GET("", r.supplicationHandler.ListDoa)
		doaGroup.GET("/:id", r.supplicationHandler.GetDoa)
	}

	api.GET("/tahlil", r.supplicationHandler.ListTahlil)
	api.GET("/kisah-nabi", r.supplicationHandler.ListKisahNabi)

	zakatGroup := api.Group("/zakat")
	{
		zakatGroup.GET("/nisab", r.zakatHandler.GetNisab)
		zakatGroup.POST("/assess", r.zakatHandler.Assess)
	}

	api.GET("/gold/price", r.zakatHandler.GetGoldPrice)
}
