package impl

import (
	"context"
	"log/slog"
	"time"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
)

const (
	doaCacheKey        = "doa"
	doaCacheAge        = 24 * time.Hour
	tahlilCacheKey     = "tahlil"
	kisahNabiCacheKey  = "kisah_nabi"
	recitationCacheAge = 12 * time.Hour
)

// ErrDoaNotFound is returned when no supplication carries the requested id.
var ErrDoaNotFound = errors.New("doa not found")

type supplicationService struct {
	cache  repository.ContentCache
	doa    service.DoaProvider
	tahlil service.TahlilProvider
	kisah  service.KisahNabiProvider
	logger *slog.Logger
}

// NewSupplicationService creates the doa, tahlil, and kisah nabi service.
func NewSupplicationService(
	cache repository.ContentCache,
	doa service.DoaProvider,
	tahlil service.TahlilProvider,
	kisah service.KisahNabiProvider,
	logger *slog.Logger,
) usecase.SupplicationUsecase {
	return &supplicationService{
		cache:  cache,
		doa:    doa,
		tahlil: tahlil,
		kisah:  kisah,
		logger: logger,
	}
}

func (s *supplicationService) DoaList(ctx context.Context) ([]entity.Doa, error) {
	var list []entity.Doa
	if err := s.cache.GetJSON(ctx, doaCacheKey, &list, doaCacheAge); err == nil && len(list) > 0 {
		return list, nil
	}

	list, err := s.doa.DoaList(ctx)
	if err == nil {
		if cacheErr := s.cache.PutJSON(ctx, doaCacheKey, list); cacheErr != nil {
			s.logger.Warn("Failed to cache doa list", slog.Any("error", cacheErr))
		}

		return list, nil
	}
	s.logger.Warn("Doa fetch failed", slog.Any("error", err))

	if staleErr := s.cache.GetStaleJSON(ctx, doaCacheKey, &list); staleErr == nil && len(list) > 0 {
		return list, nil
	}

	return nil, errors.Wrap(err, "failed to fetch doa list")
}

func (s *supplicationService) DoaByID(ctx context.Context, id string) (*entity.Doa, error) {
	list, err := s.DoaList(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}

	return nil, ErrDoaNotFound
}

func (s *supplicationService) Tahlil(ctx context.Context) ([]entity.TahlilItem, error) {
	var items []entity.TahlilItem
	if err := s.cache.GetJSON(ctx, tahlilCacheKey, &items, recitationCacheAge); err == nil && len(items) > 0 {
		return items, nil
	}

	items, err := s.tahlil.Tahlil(ctx)
	if err == nil {
		if cacheErr := s.cache.PutJSON(ctx, tahlilCacheKey, items); cacheErr != nil {
			s.logger.Warn("Failed to cache tahlil", slog.Any("error", cacheErr))
		}

		return items, nil
	}
	s.logger.Warn("Tahlil fetch failed", slog.Any("error", err))

	if staleErr := s.cache.GetStaleJSON(ctx, tahlilCacheKey, &items); staleErr == nil && len(items) > 0 {
		return items, nil
	}

	return nil, errors.Wrap(err, "failed to fetch tahlil")
}

func (s *supplicationService) KisahNabiList(ctx context.Context) ([]entity.KisahNabi, error) {
	var stories []entity.KisahNabi
	if err := s.cache.GetJSON(ctx, kisahNabiCacheKey, &stories, recitationCacheAge); err == nil && len(stories) > 0 {
		return stories, nil
	}

	stories, err := s.kisah.KisahNabi(ctx)
	if err == nil {
		if cacheErr := s.cache.PutJSON(ctx, kisahNabiCacheKey, stories); cacheErr != nil {
			s.logger.Warn("Failed to cache kisah nabi", slog.Any("error", cacheErr))
		}

		return stories, nil
	}
	s.logger.Warn("Kisah nabi fetch failed", slog.Any("error", err))

	if staleErr := s.cache.GetStaleJSON(ctx, kisahNabiCacheKey, &stories); staleErr == nil && len(stories) > 0 {
		return stories, nil
	}

	return nil, errors.Wrap(err, "failed to fetch kisah nabi")
}
