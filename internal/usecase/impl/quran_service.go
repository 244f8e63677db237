package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	"muslimhub/internal/domain/service"
	"muslimhub/internal/errors"
	"muslimhub/internal/usecase"
)

const (
	surahCount        = 114
	surahListCacheKey = "surah_list"
)

// ErrSurahNotFound is returned for surah numbers outside 1..114.
var ErrSurahNotFound = errors.New("surah not found")

type quranService struct {
	cache    repository.ContentCache
	provider service.QuranProvider
	logger   *slog.Logger
	randIntN func(n int) int
}

// NewQuranService creates the cache-first Quran text service. Quran text is
// immutable, so cached entries never expire.
func NewQuranService(
	cache repository.ContentCache,
	provider service.QuranProvider,
	logger *slog.Logger,
) usecase.QuranUsecase {
	return &quranService{
		cache:    cache,
		provider: provider,
		logger:   logger,
		randIntN: rand.IntN,
	}
}

func (s *quranService) SurahList(ctx context.Context) ([]entity.Surah, error) {
	var list []entity.Surah
	if err := s.cache.GetJSON(ctx, surahListCacheKey, &list, 0); err == nil && len(list) > 0 {
		return list, nil
	}

	list, err := s.provider.SurahList(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch surah list")
	}

	if err := s.cache.PutJSON(ctx, surahListCacheKey, list); err != nil {
		s.logger.Warn("Failed to cache surah list", slog.Any("error", err))
	}

	return list, nil
}

func (s *quranService) SurahDetail(ctx context.Context, number int) (*entity.SurahDetail, error) {
	if number < 1 || number > surahCount {
		return nil, ErrSurahNotFound
	}

	key := surahDetailKey(number)

	var detail entity.SurahDetail
	if err := s.cache.GetJSON(ctx, key, &detail, 0); err == nil && detail.Number == number {
		return &detail, nil
	}

	fetched, err := s.provider.SurahDetail(ctx, number)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch surah %d", number)
	}

	if err := s.cache.PutJSON(ctx, key, fetched); err != nil {
		s.logger.Warn("Failed to cache surah detail",
			slog.Int("surah", number),
			slog.Any("error", err))
	}

	return fetched, nil
}

func (s *quranService) RandomAyah(ctx context.Context) (*entity.RandomAyah, error) {
	list, err := s.SurahList(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, surah := range list {
		total += surah.AyahCount
	}
	if total == 0 {
		return nil, errors.New("surah list carries no verse counts")
	}

	// Uniform over all verses, not over surahs, so long surahs are not
	// underrepresented.
	pick := s.randIntN(total)
	for _, surah := range list {
		if pick >= surah.AyahCount {
			pick -= surah.AyahCount

			continue
		}

		detail, err := s.SurahDetail(ctx, surah.Number)
		if err != nil {
			return nil, err
		}
		if pick >= len(detail.Ayat) {
			return nil, errors.Errorf("surah %d shorter than advertised", surah.Number)
		}

		return &entity.RandomAyah{Surah: detail.Surah, Ayah: detail.Ayat[pick]}, nil
	}

	return nil, errors.New("random draw out of range")
}

func (s *quranService) PrecacheSurah(ctx context.Context, number int) error {
	_, err := s.SurahDetail(ctx, number)

	return err
}

func surahDetailKey(number int) string {
	return fmt.Sprintf("surah_%d", number)
}
