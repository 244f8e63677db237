package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"muslimhub/internal/domain/entity"
	"muslimhub/internal/domain/repository"
	mockRepo "muslimhub/internal/mocks/repository"
	mockSvc "muslimhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func classicalThresholds() *entity.NisabThresholds {
	return &entity.NisabThresholds{
		Gold:     entity.MetalThreshold{Weight: 87.48, UnitPrice: 1_300_000, NisabAmount: 87.48 * 1_300_000},
		Silver:   entity.MetalThreshold{Weight: 612.36, UnitPrice: 15_000, NisabAmount: 612.36 * 15_000},
		Currency: "IDR",
		Standard: entity.NisabStandardClassical,
	}
}

func newZakatService(t *testing.T) (*zakatService, *mockRepo.MockContentCache, *mockSvc.MockNisabProvider, *mockSvc.MockGoldQuoteProvider) {
	t.Helper()

	cacheMock := mockRepo.NewMockContentCache(t)
	nisabMock := mockSvc.NewMockNisabProvider(t)
	quotesMock := mockSvc.NewMockGoldQuoteProvider(t)
	svc := NewZakatService(cacheMock, nisabMock, quotesMock, slog.Default()).(*zakatService)

	return svc, cacheMock, nisabMock, quotesMock
}

func TestZakatService_NisabThresholds_CacheHit(t *testing.T) {
	svc, cacheMock, _, _ := newZakatService(t)

	cacheMock.EXPECT().GetJSON(mock.Anything, "zakat_nisab_classical", mock.Anything, 24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*entity.NisabThresholds) = *classicalThresholds()
		}).Return(nil)

	thresholds, err := svc.NisabThresholds(context.Background(), entity.NisabStandardClassical)
	require.NoError(t, err)
	assert.InDelta(t, 87.48*1_300_000, thresholds.Gold.NisabAmount, 0.01)
}

func TestZakatService_NisabThresholds_DiscardsMismatchedStandard(t *testing.T) {
	svc, cacheMock, nisabMock, _ := newZakatService(t)

	// A classical-weight entry under the common key does not satisfy a
	// common-standard request.
	cacheMock.EXPECT().GetJSON(mock.Anything, "zakat_nisab_common", mock.Anything, 24*time.Hour).
		Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
			*dest.(*entity.NisabThresholds) = *classicalThresholds()
		}).Return(nil)

	common := &entity.NisabThresholds{
		Gold:     entity.MetalThreshold{Weight: 85, UnitPrice: 1_300_000, NisabAmount: 85 * 1_300_000},
		Silver:   entity.MetalThreshold{Weight: 595, UnitPrice: 15_000, NisabAmount: 595 * 15_000},
		Currency: "IDR",
		Standard: entity.NisabStandardCommon,
	}
	nisabMock.EXPECT().Nisab(mock.Anything, entity.NisabStandardCommon, "IDR", "g").Return(common, nil)
	cacheMock.EXPECT().PutJSON(mock.Anything, "zakat_nisab_common", common).Return(nil)

	thresholds, err := svc.NisabThresholds(context.Background(), entity.NisabStandardCommon)
	require.NoError(t, err)
	assert.Equal(t, float64(85), thresholds.Gold.Weight)
}

func TestZakatService_NisabThresholds_FetchFailureServesStaleMatch(t *testing.T) {
	svc, cacheMock, nisabMock, _ := newZakatService(t)

	cacheMock.EXPECT().GetJSON(mock.Anything, "zakat_nisab_classical", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	nisabMock.EXPECT().Nisab(mock.Anything, entity.NisabStandardClassical, "IDR", "g").
		Return(nil, errors.New("connection refused"))
	cacheMock.EXPECT().GetStaleJSON(mock.Anything, "zakat_nisab_classical", mock.Anything).
		Run(func(_ context.Context, _ string, dest interface{}) {
			*dest.(*entity.NisabThresholds) = *classicalThresholds()
		}).Return(nil)

	thresholds, err := svc.NisabThresholds(context.Background(), entity.NisabStandardClassical)
	require.NoError(t, err)
	assert.Equal(t, entity.NisabStandardClassical, thresholds.Standard)
}

func TestZakatService_NisabThresholds_DegradesToLocalGoldDerivation(t *testing.T) {
	svc, cacheMock, nisabMock, quotesMock := newZakatService(t)

	cacheMock.EXPECT().GetJSON(mock.Anything, "zakat_nisab_classical", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	nisabMock.EXPECT().Nisab(mock.Anything, entity.NisabStandardClassical, "IDR", "g").
		Return(nil, errors.New("connection refused"))
	cacheMock.EXPECT().GetStaleJSON(mock.Anything, "zakat_nisab_classical", mock.Anything).
		Return(repository.ErrCacheMiss)

	cacheMock.EXPECT().GetJSON(mock.Anything, "gold_price_data", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	quotesMock.EXPECT().XAUPricePerOunceUSD(mock.Anything).Return(2000, nil)
	quotesMock.EXPECT().USDToIDRRate(mock.Anything).Return(16000, nil)
	cacheMock.EXPECT().PutJSON(mock.Anything, "gold_price_data", mock.Anything).Return(nil)

	thresholds, err := svc.NisabThresholds(context.Background(), entity.NisabStandardClassical)
	require.NoError(t, err)

	perGram := 2000.0 / 31.1034768 * 16000.0
	assert.InDelta(t, perGram, thresholds.Gold.UnitPrice, 0.01)
	assert.InDelta(t, 87.48*perGram, thresholds.Gold.NisabAmount, 0.01)
	assert.Equal(t, 612.36, thresholds.Silver.Weight)
	assert.Zero(t, thresholds.Silver.UnitPrice)
}

func TestZakatService_GoldPrice_QuoteFailureFallsBackToStaticDefault(t *testing.T) {
	svc, cacheMock, _, quotesMock := newZakatService(t)

	cacheMock.EXPECT().GetJSON(mock.Anything, "gold_price_data", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	quotesMock.EXPECT().XAUPricePerOunceUSD(mock.Anything).Return(0, errors.New("connection refused"))
	cacheMock.EXPECT().GetStaleJSON(mock.Anything, "gold_price_data", mock.Anything).
		Return(repository.ErrCacheMiss)

	price, err := svc.GoldPricePerGramIDR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(1_200_000), price.PricePerGramIDR)
}

func TestZakatService_GoldPrice_ExchangeRateFailureServesStale(t *testing.T) {
	svc, cacheMock, _, quotesMock := newZakatService(t)

	cacheMock.EXPECT().GetJSON(mock.Anything, "gold_price_data", mock.Anything, 24*time.Hour).
		Return(repository.ErrCacheMiss)
	quotesMock.EXPECT().XAUPricePerOunceUSD(mock.Anything).Return(2000, nil)
	quotesMock.EXPECT().USDToIDRRate(mock.Anything).Return(0, errors.New("connection refused"))
	cacheMock.EXPECT().GetStaleJSON(mock.Anything, "gold_price_data", mock.Anything).
		Run(func(_ context.Context, _ string, dest interface{}) {
			*dest.(*entity.GoldPrice) = entity.GoldPrice{PricePerGramIDR: 1_250_000}
		}).Return(nil)

	price, err := svc.GoldPricePerGramIDR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(1_250_000), price.PricePerGramIDR)
}

func TestZakatService_Assess(t *testing.T) {
	nisabAmount := 87.48 * 1_300_000

	tests := []struct {
		name    string
		wealth  float64
		payable bool
		due     float64
	}{
		{name: "below nisab", wealth: 50_000_000, payable: false, due: 0},
		{name: "at nisab", wealth: nisabAmount, payable: true, due: nisabAmount * 0.025},
		{name: "above nisab", wealth: 200_000_000, payable: true, due: 5_000_000},
		{name: "zero wealth", wealth: 0, payable: false, due: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cacheMock, _, _ := newZakatService(t)

			cacheMock.EXPECT().GetJSON(mock.Anything, "zakat_nisab_classical", mock.Anything, 24*time.Hour).
				Run(func(_ context.Context, _ string, dest interface{}, _ time.Duration) {
					*dest.(*entity.NisabThresholds) = *classicalThresholds()
				}).Return(nil)

			assessment, err := svc.Assess(context.Background(), tt.wealth, entity.NisabStandardClassical)
			require.NoError(t, err)
			assert.Equal(t, tt.payable, assessment.Payable)
			assert.InDelta(t, tt.due, assessment.ZakatDue, 0.01)
			assert.InDelta(t, nisabAmount, assessment.NisabAmount, 0.01)
		})
	}
}

func TestZakatService_Assess_NegativeWealth(t *testing.T) {
	svc, _, _, _ := newZakatService(t)

	assessment, err := svc.Assess(context.Background(), -1, entity.NisabStandardClassical)
	require.Error(t, err)
	assert.Nil(t, assessment)
}
