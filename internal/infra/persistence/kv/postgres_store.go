package kv

import (
	"context"
	"log/slog"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/lifecycle"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cacheEntry is the single-table key-value schema.
type cacheEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

func (cacheEntry) TableName() string { return "cache_entries" }

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a PostgreSQL-backed store over a single
// cache_entries table.
func NewPostgresStore(lc fx.Lifecycle, cfg *config.StoreConfig, logger *slog.Logger) (repository.Store, error) {
	if cfg == nil || cfg.Postgres == nil {
		return nil, errors.New("postgres store requires store.postgres configuration")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := db.WithContext(ctx).AutoMigrate(&cacheEntry{}); err != nil {
				return errors.Wrap(err, "failed to migrate cache_entries")
			}
			logger.Info("PostgreSQL store connected")

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry cacheEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "postgres get %s", key)
	}

	return entry.Value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	entry := cacheEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error

	return errors.Wrapf(err, "postgres set %s", key)
}

func (s *postgresStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&cacheEntry{}, "key = ?", key).Error

	return errors.Wrapf(err, "postgres del %s", key)
}
