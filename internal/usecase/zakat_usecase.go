package usecase

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// ZakatAssessment is the outcome of a wealth-zakat calculation.
type ZakatAssessment struct {
	Wealth      float64                 `json:"wealth"`
	NisabAmount float64                 `json:"nisab_amount"`
	Standard    entity.NisabStandard    `json:"standard"`
	Payable     bool                    `json:"payable"`
	ZakatDue    float64                 `json:"zakat_due"`
	Thresholds  *entity.NisabThresholds `json:"thresholds"`
}

// ZakatUsecase serves nisab thresholds and the gold price backing them.
type ZakatUsecase interface {
	// NisabThresholds returns the gold and silver thresholds for the
	// standard, cached for a day per standard.
	NisabThresholds(ctx context.Context, standard entity.NisabStandard) (*entity.NisabThresholds, error)

	// GoldPricePerGramIDR returns the current gold price in IDR per gram,
	// cached for a day, degrading to the stale cache and then a static
	// default when the quote providers are unreachable.
	GoldPricePerGramIDR(ctx context.Context) (*entity.GoldPrice, error)

	// Assess applies the 2.5% wealth-zakat rule against the gold nisab.
	Assess(ctx context.Context, wealth float64, standard entity.NisabStandard) (*ZakatAssessment, error)
}
