package location

import (
	"log/slog"

	"muslimhub/config"
	"muslimhub/internal/domain/constants"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"

	"go.uber.org/fx"
)

// SensorParams holds dependencies for the sensor provider, injected by Fx.
type SensorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSensor creates the location sensor selected by location.provider.
func NewSensor(params SensorParams) (service.LocationSensor, error) {
	cfg := params.Config.Location

	switch cfg.Provider {
	case constants.LocationProviderAgent:
		params.Logger.Info("Using device-agent location sensor", slog.String("url", cfg.AgentURL))

		return NewAgentSensor(cfg)
	case "", constants.LocationProviderStatic:
		params.Logger.Info("Using static location sensor",
			slog.Float64("lat", cfg.DefaultLatitude),
			slog.Float64("lng", cfg.DefaultLongitude))

		return NewStaticSensor(cfg), nil
	default:
		return nil, errors.Errorf("unknown location provider: %s", cfg.Provider)
	}
}

// Module provides the location sensor FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSensor),
)
