// Package notification implements the prayer-notification gateway over FCM.
package notification

import (
	"context"
	"log/slog"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// PushSender delivers one notification to the configured device when its
// trigger time arrives.
type PushSender interface {
	Send(ctx context.Context, notification entity.ScheduledNotification) error
}

type firebaseSender struct {
	client *messaging.Client
	token  string
}

// NewFirebaseSender creates a sender pushing through Firebase Cloud Messaging.
func NewFirebaseSender(ctx context.Context, credentialsPath, deviceToken string) (PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client, token: deviceToken}, nil
}

func (s *firebaseSender) Send(ctx context.Context, notification entity.ScheduledNotification) error {
	message := &messaging.Message{
		Token: s.token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				ChannelID: string(notification.Channel),
				Sound:     notification.Sound,
			},
		},
		Data: notification.Extra,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// logSender stands in when Firebase is not configured, so development runs
// still exercise the full scheduling path.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs deliveries.
func NewLogSender(logger *slog.Logger) PushSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(_ context.Context, notification entity.ScheduledNotification) error {
	s.logger.Info("Notification fired",
		slog.Int("id", notification.ID),
		slog.String("title", notification.Title),
		slog.String("channel", string(notification.Channel)),
		slog.String("sound", notification.Sound))

	return nil
}
