package kv

import (
	"log/slog"

	"muslimhub/config"
	"muslimhub/internal/domain/constants"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/errors"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the store provider, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the key-value store selected by store.provider.
func NewStore(params StoreParams) (repository.Store, error) {
	cfg := params.Config.Store
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.StoreProviderMemory {
		logger.Info("Using in-memory key-value store")

		return NewMemoryStore(), nil
	}

	switch cfg.Provider {
	case constants.StoreProviderRedis:
		return NewRedisStore(params.Lc, cfg.Redis, logger)
	case constants.StoreProviderPostgres:
		return NewPostgresStore(params.Lc, cfg, logger)
	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewLocationRepository,
		NewScheduleRepository,
		NewGateRepository,
		NewContentCache,
	),
)
