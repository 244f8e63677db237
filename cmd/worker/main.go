package main

import (
	"context"
	"log/slog"
	"os"

	"muslimhub/config"
	"muslimhub/internal/delivery"
	"muslimhub/internal/delivery/worker"
	"muslimhub/internal/delivery/worker/handler"
	"muslimhub/internal/infra/location"
	logs "muslimhub/internal/infra/log"
	"muslimhub/internal/infra/notification"
	"muslimhub/internal/infra/persistence/kv"
	"muslimhub/internal/infra/provider"
	"muslimhub/internal/infra/provider/aladhan"
	"muslimhub/internal/infra/provider/bigdatacloud"
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
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectProvider(),
		injectUsecase(),
		injectDelivery(),
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
		),
	)
}

func newProvidersConfig(cfg *config.Config) *config.ProvidersConfig {
	return cfg.Providers
}

func newPrayerTimesConfig(cfg *config.Config) *config.PrayerTimesConfig {
	return cfg.PrayerTimes
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewPrayerService,
			impl.NewSchedulerService,
			impl.NewPipelineService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewRefreshTicker,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
