package kv

import (
	"context"
	"encoding/json"
	"time"

	"muslimhub/config"
	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/errors"
)

// Persisted key suffixes, namespaced by store.keyPrefix.
const (
	keyCachedLocation    = "cached_location"
	keyPrayerTimes       = "prayer_times"
	keyLastScheduledDate = "last_prayer_schedule"
)

func prefixed(cfg *config.Config, suffix string) string {
	return cfg.Store.KeyPrefix + ":" + suffix
}

type locationRepository struct {
	store repository.Store
	key   string
}

// NewLocationRepository creates the last-known-location repository.
func NewLocationRepository(store repository.Store, cfg *config.Config) repository.LocationRepository {
	return &locationRepository{store: store, key: prefixed(cfg, keyCachedLocation)}
}

func (r *locationRepository) LastLocation(ctx context.Context) (*entity.LocationRecord, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrLocationNotCached
		}

		return nil, errors.Wrap(err, "failed to read cached location")
	}

	var record entity.LocationRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		// A corrupt entry behaves like a miss so the resolver re-senses.
		return nil, repository.ErrLocationNotCached
	}

	return &record, nil
}

func (r *locationRepository) SaveLocation(ctx context.Context, record *entity.LocationRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to marshal location record")
	}

	return errors.Wrap(r.store.Set(ctx, r.key, raw), "failed to save location record")
}

func (r *locationRepository) ClearLocation(ctx context.Context) error {
	return errors.Wrap(r.store.Remove(ctx, r.key), "failed to clear cached location")
}

type scheduleRepository struct {
	store repository.Store
	key   string
}

// NewScheduleRepository creates the daily-prayer-schedule repository.
func NewScheduleRepository(store repository.Store, cfg *config.Config) repository.ScheduleRepository {
	return &scheduleRepository{store: store, key: prefixed(cfg, keyPrayerTimes)}
}

func (r *scheduleRepository) LatestSchedule(ctx context.Context) (*entity.DailyPrayerSchedule, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrScheduleNotCached
		}

		return nil, errors.Wrap(err, "failed to read cached schedule")
	}

	var schedule entity.DailyPrayerSchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, repository.ErrScheduleNotCached
	}

	return &schedule, nil
}

func (r *scheduleRepository) SaveSchedule(ctx context.Context, schedule *entity.DailyPrayerSchedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return errors.Wrap(err, "failed to marshal schedule")
	}

	return errors.Wrap(r.store.Set(ctx, r.key, raw), "failed to save schedule")
}

type gateRepository struct {
	store repository.Store
	key   string
}

// NewGateRepository creates the last-scheduled-date repository.
func NewGateRepository(store repository.Store, cfg *config.Config) repository.GateRepository {
	return &gateRepository{store: store, key: prefixed(cfg, keyLastScheduledDate)}
}

func (r *gateRepository) LastScheduledDate(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to read last scheduled date")
	}

	var date string
	if err := json.Unmarshal(raw, &date); err != nil {
		return "", nil
	}

	return date, nil
}

func (r *gateRepository) MarkScheduled(ctx context.Context, date string) error {
	raw, err := json.Marshal(date)
	if err != nil {
		return errors.Wrap(err, "failed to marshal date stamp")
	}

	return errors.Wrap(r.store.Set(ctx, r.key, raw), "failed to mark scheduled")
}

// cacheEnvelope wraps a content-cache value with its write timestamp.
type cacheEnvelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type contentCache struct {
	store  repository.Store
	prefix string
	now    func() time.Time
}

// NewContentCache creates the shared timestamped content cache.
func NewContentCache(store repository.Store, cfg *config.Config) repository.ContentCache {
	return &contentCache{store: store, prefix: cfg.Store.KeyPrefix + ":", now: time.Now}
}

func (c *contentCache) GetJSON(ctx context.Context, key string, dest any, maxAge time.Duration) error {
	envelope, err := c.read(ctx, key)
	if err != nil {
		return err
	}

	if maxAge > 0 && c.now().Sub(envelope.Timestamp) > maxAge {
		return repository.ErrCacheMiss
	}

	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return repository.ErrCacheMiss
	}

	return nil
}

func (c *contentCache) GetStaleJSON(ctx context.Context, key string, dest any) error {
	envelope, err := c.read(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return repository.ErrCacheMiss
	}

	return nil
}

func (c *contentCache) PutJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal cache value for %s", key)
	}

	raw, err := json.Marshal(cacheEnvelope{Data: data, Timestamp: c.now()})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal cache envelope for %s", key)
	}

	return errors.Wrapf(c.store.Set(ctx, c.prefix+key, raw), "failed to put cache entry %s", key)
}

func (c *contentCache) Remove(ctx context.Context, key string) error {
	return errors.Wrapf(c.store.Remove(ctx, c.prefix+key), "failed to remove cache entry %s", key)
}

func (c *contentCache) read(ctx context.Context, key string) (*cacheEnvelope, error) {
	raw, err := c.store.Get(ctx, c.prefix+key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrCacheMiss
		}

		return nil, errors.Wrapf(err, "failed to read cache entry %s", key)
	}

	var envelope cacheEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, repository.ErrCacheMiss
	}

	return &envelope, nil
}
