package models

// MarketAssumptions carries the market-wide constants used by the
// valuation models. Defaults reflect the Sri Lankan market.
type MarketAssumptions struct {
	// TaxRate is the corporate tax rate used for after-tax proxies.
	TaxRate float64 `json:"tax_rate"`
	// RiskFreeRate approximates the treasury bill rate.
	RiskFreeRate float64 `json:"risk_free_rate"`
	// BondYield is the AAA corporate bond yield (percent) for the
	// Graham intrinsic value adjustment.
	BondYield float64 `json:"bond_yield"`
	// DefaultEPSGrowth (percent) substitutes when growth history is missing.
	DefaultEPSGrowth float64 `json:"default_eps_growth"`
	// DefaultPayout (fraction) substitutes when the payout ratio is missing.
	DefaultPayout float64 `json:"default_payout"`
}

// DefaultAssumptions returns the standard Sri Lankan market assumptions.
func DefaultAssumptions() MarketAssumptions {
	return MarketAssumptions{
		TaxRate:          0.24,
		RiskFreeRate:     0.10,
		BondYield:        4.4,
		DefaultEPSGrowth: 10,
		DefaultPayout:    0.4,
	}
}
