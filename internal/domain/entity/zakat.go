package entity

// NisabStandard selects the metal weights used to compute nisab thresholds.
type NisabStandard string

const (
	// NisabStandardClassical uses 87.48 g gold / 612.36 g silver.
	NisabStandardClassical NisabStandard = "classical"
	// NisabStandardCommon uses 85 g gold / 595 g silver.
	NisabStandardCommon NisabStandard = "common"
)

// GoldWeight returns the gold nisab weight in grams for the standard.
func (s NisabStandard) GoldWeight() float64 {
	if s == NisabStandardCommon {
		return 85
	}

	return 87.48
}

// SilverWeight returns the silver nisab weight in grams for the standard.
func (s NisabStandard) SilverWeight() float64 {
	if s == NisabStandardCommon {
		return 595
	}

	return 612.36
}

// MetalThreshold is the nisab threshold for a single metal.
type MetalThreshold struct {
	Weight      float64 `json:"weight"`       // grams
	UnitPrice   float64 `json:"unit_price"`   // per gram, in the requested currency
	NisabAmount float64 `json:"nisab_amount"` // weight * unit price
}

// NisabThresholds holds the gold and silver nisab for one standard/currency.
type NisabThresholds struct {
	Gold     MetalThreshold `json:"gold"`
	Silver   MetalThreshold `json:"silver"`
	Currency string         `json:"currency"`
	Standard NisabStandard  `json:"standard"`
}

// MatchesStandard reports whether the cached weights belong to the standard,
// guarding against a cache written under a different setting.
func (n *NisabThresholds) MatchesStandard(standard NisabStandard) bool {
	return n.Gold.Weight == standard.GoldWeight() && n.Silver.Weight == standard.SilverWeight()
}

// GoldPrice is the cached gold price used by the zakat calculator.
type GoldPrice struct {
	PricePerGramIDR float64 `json:"price_per_gram_idr"`
}
