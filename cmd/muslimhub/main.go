package main

import (
	"context"
	"log/slog"
	"os"

	"muslimhub/config"
	"muslimhub/internal/delivery"
	"muslimhub/internal/delivery/http"
	"muslimhub/internal/delivery/http/router/handler"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/infra/location"
	logs "muslimhub/internal/infra/log"
	"muslimhub/internal/infra/notification"
	"muslimhub/internal/infra/persistence/kv"
	"muslimhub/internal/infra/provider"
	"muslimhub/internal/infra/provider/aladhan"
	"muslimhub/internal/infra/provider/bigdatacloud"
	"muslimhub/internal/infra/provider/equran"
	"muslimhub/internal/infra/provider/goldprice"
	"muslimhub/internal/infra/provider/islamicapi"
	"muslimhub/internal/infra/pubsub"
	"muslimhub/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Optional .env for local development; real deployments use the platform
	// environment.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectProvider(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		kv.Module,
		location.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectProvider() fx.Option {
	return fx.Options(
		fx.Provide(
			newProvidersConfig,
			newPrayerTimesConfig,
			provider.NewClient,
			aladhan.NewClient,
			bigdatacloud.NewClient,
			equran.NewClient,
			goldprice.NewClient,
			islamicapi.NewClient,
			newQuranProvider,
			newDoaProvider,
			newAsmaulHusnaProvider,
			newTahlilProvider,
			newKisahNabiProvider,
			newNisabProvider,
		),
	)
}

func newProvidersConfig(cfg *config.Config) *config.ProvidersConfig {
	return cfg.Providers
}

func newPrayerTimesConfig(cfg *config.Config) *config.PrayerTimesConfig {
	return cfg.PrayerTimes
}

// The equran and islamicapi clients each back several ports; fx needs each
// interface bound explicitly.
func newQuranProvider(client *equran.Client) service.QuranProvider {
	return client
}

func newDoaProvider(client *equran.Client) service.DoaProvider {
	return client
}

func newAsmaulHusnaProvider(client *islamicapi.Client) service.AsmaulHusnaProvider {
	return client
}

func newTahlilProvider(client *islamicapi.Client) service.TahlilProvider {
	return client
}

func newKisahNabiProvider(client *islamicapi.Client) service.KisahNabiProvider {
	return client
}

func newNisabProvider(client *islamicapi.Client) service.NisabProvider {
	return client
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewPrayerService,
			impl.NewSchedulerService,
			impl.NewPipelineService,
			impl.NewQuranService,
			impl.NewAsmaulHusnaService,
			impl.NewSupplicationService,
			impl.NewZakatService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewPrayerHandler,
			handler.NewQuranHandler,
			handler.NewAsmaulHusnaHandler,
			handler.NewSupplicationHandler,
			handler.NewZakatHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
