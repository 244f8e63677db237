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
	asmaulHusnaCacheKey = "asmaul_husna"
	asmaulHusnaCacheAge = 7 * 24 * time.Hour
)

// packagedNames is the offline subset served when both the network and the
// cache are empty, so the list screen is never blank on first run.
//
//nolint:gochecknoglobals
var packagedNames = []entity.AsmaulHusnaName{
	{ID: 1, Arabic: "الرحمن", Transliteration: "Ar-Rahman", TranslationEN: "The Most Merciful", TranslationID: "Yang Maha Pengasih"},
	{ID: 2, Arabic: "الرحيم", Transliteration: "Ar-Rahim", TranslationEN: "The Most Compassionate", TranslationID: "Yang Maha Penyayang"},
	{ID: 3, Arabic: "الملك", Transliteration: "Al-Malik", TranslationEN: "The King", TranslationID: "Yang Maha Merajai"},
	{ID: 4, Arabic: "القدوس", Transliteration: "Al-Quddus", TranslationEN: "The Most Holy", TranslationID: "Yang Maha Suci"},
	{ID: 5, Arabic: "السلام", Transliteration: "As-Salam", TranslationEN: "The Source of Peace", TranslationID: "Yang Maha Memberi Kesejahteraan"},
	{ID: 6, Arabic: "المؤمن", Transliteration: "Al-Mu'min", TranslationEN: "The Guardian of Faith", TranslationID: "Yang Maha Memberi Keamanan"},
	{ID: 7, Arabic: "المهيمن", Transliteration: "Al-Muhaymin", TranslationEN: "The Protector", TranslationID: "Yang Maha Memelihara"},
	{ID: 8, Arabic: "العزيز", Transliteration: "Al-'Aziz", TranslationEN: "The Almighty", TranslationID: "Yang Maha Perkasa"},
	{ID: 9, Arabic: "الجبار", Transliteration: "Al-Jabbar", TranslationEN: "The Compeller", TranslationID: "Yang Maha Kuasa"},
	{ID: 10, Arabic: "المتكبر", Transliteration: "Al-Mutakabbir", TranslationEN: "The Supreme", TranslationID: "Yang Maha Megah"},
}

type asmaulHusnaService struct {
	cache    repository.ContentCache
	provider service.AsmaulHusnaProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewAsmaulHusnaService creates the 99-names service.
func NewAsmaulHusnaService(
	cache repository.ContentCache,
	provider service.AsmaulHusnaProvider,
	logger *slog.Logger,
) usecase.AsmaulHusnaUsecase {
	return &asmaulHusnaService{
		cache:    cache,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *asmaulHusnaService) Names(ctx context.Context) ([]entity.AsmaulHusnaName, error) {
	var names []entity.AsmaulHusnaName
	if err := s.cache.GetJSON(ctx, asmaulHusnaCacheKey, &names, asmaulHusnaCacheAge); err == nil && len(names) > 0 {
		return names, nil
	}

	names, err := s.provider.Names(ctx)
	if err == nil {
		if cacheErr := s.cache.PutJSON(ctx, asmaulHusnaCacheKey, names); cacheErr != nil {
			s.logger.Warn("Failed to cache asmaul husna", slog.Any("error", cacheErr))
		}

		return names, nil
	}
	s.logger.Warn("Asmaul husna fetch failed", slog.Any("error", err))

	if staleErr := s.cache.GetStaleJSON(ctx, asmaulHusnaCacheKey, &names); staleErr == nil && len(names) > 0 {
		return names, nil
	}

	return packagedNames, nil
}

func (s *asmaulHusnaService) NameOfDay(ctx context.Context) (*entity.AsmaulHusnaName, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.New("no names available")
	}

	// Same name for everyone on a given day.
	name := names[s.now().YearDay()%len(names)]

	return &name, nil
}
