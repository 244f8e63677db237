package usecase

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// QuranUsecase serves Quran text with a cache-first, fetch-on-miss policy.
type QuranUsecase interface {
	SurahList(ctx context.Context) ([]entity.Surah, error)
	SurahDetail(ctx context.Context, number int) (*entity.SurahDetail, error)

	// RandomAyah draws a uniformly random verse across all 6236.
	RandomAyah(ctx context.Context) (*entity.RandomAyah, error)

	// PrecacheSurah fetches and stores a surah for offline reading.
	PrecacheSurah(ctx context.Context, number int) error
}
