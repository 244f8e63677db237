package kv

import (
	"context"
	"log/slog"

	"muslimhub/config"
	"muslimhub/internal/domain/lifecycle"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store and verifies connectivity on start.
func NewRedisStore(lc fx.Lifecycle, cfg *config.RedisConfig, logger *slog.Logger) (repository.Store, error) {
	if cfg == nil {
		return nil, errors.New("redis store requires store.redis configuration")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			logger.Info("Redis store connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	// Entries carry their own timestamps; freshness is the repositories'
	// policy, so no Redis TTL is applied.
	return errors.Wrapf(s.client.Set(ctx, key, value, 0).Err(), "redis set %s", key)
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	return errors.Wrapf(s.client.Del(ctx, key).Err(), "redis del %s", key)
}
