package notification

import (
	"context"
	"log/slog"

	"muslimhub/config"
	"muslimhub/internal/domain/lifecycle"
	"muslimhub/internal/domain/service"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the gateway provider, injected by Fx.
type GatewayParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewGateway creates the notification gateway. With Firebase credentials and
// a device token configured it pushes through FCM; otherwise it degrades to a
// log-only sender and reports delivery as not permitted.
func NewGateway(params GatewayParams) (service.NotificationGateway, error) {
	cfg := params.Config.Notifications
	logger := params.Logger

	// A missing notifications section means delivery was never granted; the
	// scheduler sees that through CheckPermission and aborts without touching
	// pending entries.
	permitted := cfg != nil

	var sender PushSender
	if cfg != nil && cfg.Firebase != nil && cfg.DeviceToken != "" {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		firebaseSender, err := NewFirebaseSender(ctx, cfg.Firebase.CredentialsPath, cfg.DeviceToken)
		if err != nil {
			return nil, err
		}
		sender = firebaseSender
		logger.Info("Using FCM notification gateway")
	} else {
		sender = NewLogSender(logger)
		logger.Warn("Firebase not configured, notifications will only be logged")
	}

	gateway := NewTimerGateway(sender, permitted, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if closer, ok := gateway.(interface{ Close() }); ok {
				closer.Close()
			}

			return nil
		},
	})

	return gateway, nil
}

// Module provides the notification FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGateway),
)
