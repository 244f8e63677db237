package service

import (
	"context"

	"muslimhub/internal/domain/entity"
)

// QuranProvider serves Quran text from the equran.id-style API.
type QuranProvider interface {
	SurahList(ctx context.Context) ([]entity.Surah, error)
	SurahDetail(ctx context.Context, number int) (*entity.SurahDetail, error)
}

// AsmaulHusnaProvider serves the 99 names list.
type AsmaulHusnaProvider interface {
	Names(ctx context.Context) ([]entity.AsmaulHusnaName, error)
}

// DoaProvider serves the supplication collection.
type DoaProvider interface {
	DoaList(ctx context.Context) ([]entity.Doa, error)
}

// TahlilProvider serves the tahlil reading sequence.
type TahlilProvider interface {
	Tahlil(ctx context.Context) ([]entity.TahlilItem, error)
}

// KisahNabiProvider serves the prophet stories.
type KisahNabiProvider interface {
	KisahNabi(ctx context.Context) ([]entity.KisahNabi, error)
}

// NisabProvider serves zakat nisab thresholds for a standard and currency.
type NisabProvider interface {
	Nisab(ctx context.Context, standard entity.NisabStandard, currency, unit string) (*entity.NisabThresholds, error)
}

// GoldQuoteProvider serves the spot gold price and the USD exchange rate
// needed to convert it, both from their respective public APIs.
type GoldQuoteProvider interface {
	// XAUPricePerOunceUSD returns the gold price in USD per troy ounce.
	XAUPricePerOunceUSD(ctx context.Context) (float64, error)
	// USDToIDRRate returns the current USD to IDR exchange rate.
	USDToIDRRate(ctx context.Context) (float64, error)
}
