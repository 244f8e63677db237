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
	goldPriceCacheKey = "gold_price_data"
	nisabCachePrefix  = "zakat_nisab_"
	dailyCacheAge     = 24 * time.Hour

	gramsPerTroyOunce = 31.1034768

	// defaultGoldPriceIDR backstops the calculator when every quote source
	// and the cache are unavailable.
	defaultGoldPriceIDR = 1_200_000

	zakatRate = 0.025
)

type zakatService struct {
	cache  repository.ContentCache
	nisab  service.NisabProvider
	quotes service.GoldQuoteProvider
	logger *slog.Logger
}

// NewZakatService creates the nisab and gold-price service.
func NewZakatService(
	cache repository.ContentCache,
	nisab service.NisabProvider,
	quotes service.GoldQuoteProvider,
	logger *slog.Logger,
) usecase.ZakatUsecase {
	return &zakatService{
		cache:  cache,
		nisab:  nisab,
		quotes: quotes,
		logger: logger,
	}
}

func (s *zakatService) NisabThresholds(ctx context.Context, standard entity.NisabStandard) (*entity.NisabThresholds, error) {
	key := nisabCachePrefix + string(standard)

	var cached entity.NisabThresholds
	if err := s.cache.GetJSON(ctx, key, &cached, dailyCacheAge); err == nil && cached.MatchesStandard(standard) {
		return &cached, nil
	}

	thresholds, err := s.nisab.Nisab(ctx, standard, "IDR", "g")
	if err == nil {
		if cacheErr := s.cache.PutJSON(ctx, key, thresholds); cacheErr != nil {
			s.logger.Warn("Failed to cache nisab", slog.Any("error", cacheErr))
		}

		return thresholds, nil
	}
	s.logger.Warn("Nisab fetch failed", slog.Any("error", err))

	// A stale entry written under a different standard is useless; its
	// weights no longer match.
	if staleErr := s.cache.GetStaleJSON(ctx, key, &cached); staleErr == nil && cached.MatchesStandard(standard) {
		return &cached, nil
	}

	return s.localThresholds(ctx, standard)
}

// localThresholds derives the gold nisab from the gold price when the nisab
// API is unreachable. The silver side stays zero; no silver quote exists in
// this degraded path.
func (s *zakatService) localThresholds(ctx context.Context, standard entity.NisabStandard) (*entity.NisabThresholds, error) {
	price, err := s.GoldPricePerGramIDR(ctx)
	if err != nil {
		return nil, err
	}

	goldWeight := standard.GoldWeight()

	return &entity.NisabThresholds{
		Gold: entity.MetalThreshold{
			Weight:      goldWeight,
			UnitPrice:   price.PricePerGramIDR,
			NisabAmount: goldWeight * price.PricePerGramIDR,
		},
		Silver: entity.MetalThreshold{
			Weight: standard.SilverWeight(),
		},
		Currency: "IDR",
		Standard: standard,
	}, nil
}

func (s *zakatService) GoldPricePerGramIDR(ctx context.Context) (*entity.GoldPrice, error) {
	var cached entity.GoldPrice
	if err := s.cache.GetJSON(ctx, goldPriceCacheKey, &cached, dailyCacheAge); err == nil && cached.PricePerGramIDR > 0 {
		return &cached, nil
	}

	price, err := s.fetchGoldPrice(ctx)
	if err == nil {
		if cacheErr := s.cache.PutJSON(ctx, goldPriceCacheKey, price); cacheErr != nil {
			s.logger.Warn("Failed to cache gold price", slog.Any("error", cacheErr))
		}

		return price, nil
	}
	s.logger.Warn("Gold price fetch failed", slog.Any("error", err))

	if staleErr := s.cache.GetStaleJSON(ctx, goldPriceCacheKey, &cached); staleErr == nil && cached.PricePerGramIDR > 0 {
		return &cached, nil
	}

	return &entity.GoldPrice{PricePerGramIDR: defaultGoldPriceIDR}, nil
}

func (s *zakatService) fetchGoldPrice(ctx context.Context) (*entity.GoldPrice, error) {
	perOunceUSD, err := s.quotes.XAUPricePerOunceUSD(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "gold quote")
	}

	usdToIDR, err := s.quotes.USDToIDRRate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "exchange rate")
	}

	return &entity.GoldPrice{
		PricePerGramIDR: perOunceUSD / gramsPerTroyOunce * usdToIDR,
	}, nil
}

func (s *zakatService) Assess(ctx context.Context, wealth float64, standard entity.NisabStandard) (*usecase.ZakatAssessment, error) {
	if wealth < 0 {
		return nil, errors.New("wealth must be non-negative")
	}

	thresholds, err := s.NisabThresholds(ctx, standard)
	if err != nil {
		return nil, err
	}

	assessment := &usecase.ZakatAssessment{
		Wealth:      wealth,
		NisabAmount: thresholds.Gold.NisabAmount,
		Standard:    standard,
		Thresholds:  thresholds,
	}
	if wealth >= thresholds.Gold.NisabAmount {
		assessment.Payable = true
		assessment.ZakatDue = wealth * zakatRate
	}

	return assessment, nil
}
