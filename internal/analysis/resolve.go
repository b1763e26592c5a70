// Package analysis implements the ratio derivation, scoring, and
// classification pipeline for company fundamentals.
package analysis

import (
	"github.com/chandeepa/cse-research/internal/models"
)

// Resolver resolves raw inputs from a company record, substituting the
// documented proxy estimate when a field is absent. The proxy constants
// are calibrated to Colombo Stock Exchange reporting conventions and
// must not be adjusted without recalibrating the score ladders.
type Resolver struct {
	rec models.CompanyRecord
}

// NewResolver wraps a record for fallback-aware field access.
func NewResolver(rec models.CompanyRecord) *Resolver {
	return &Resolver{rec: rec}
}

// Raw returns a field with no proxy, defaulting to def.
func (r *Resolver) Raw(key string, def float64) float64 {
	return r.rec.FloatOr(key, def)
}

// Cash resolves cash, estimating 30% of operating cash flow when absent.
func (r *Resolver) Cash() float64 {
	if v, ok := r.rec.Float("cash"); ok {
		return v
	}
	return r.Raw("operating_cash_flow", 0) * 0.3
}

// CashFromCurrent resolves cash in the liquidity context, estimating 15%
// of current assets when absent.
func (r *Resolver) CashFromCurrent(currentAssets float64) float64 {
	if v, ok := r.rec.Float("cash"); ok {
		return v
	}
	return currentAssets * 0.15
}

// CurrentAssets resolves current assets, estimating 40% of total assets.
func (r *Resolver) CurrentAssets() float64 {
	if v, ok := r.rec.Float("current_assets"); ok {
		return v
	}
	return r.Raw("total_assets", 0) * 0.4
}

// CurrentLiabilities resolves current liabilities, estimating 35% of
// total liabilities.
func (r *Resolver) CurrentLiabilities() float64 {
	if v, ok := r.rec.Float("current_liabilities"); ok {
		return v
	}
	return r.Raw("total_liabilities", 0) * 0.35
}

// InventoryFromCurrent resolves inventory for liquidity ratios,
// estimating 25% of current assets.
func (r *Resolver) InventoryFromCurrent(currentAssets float64) float64 {
	if v, ok := r.rec.Float("inventory"); ok {
		return v
	}
	return currentAssets * 0.25
}

// InventoryFromTotal resolves inventory for turnover ratios, estimating
// 10% of total assets. The liquidity and efficiency chains deliberately
// use different proxies.
func (r *Resolver) InventoryFromTotal() float64 {
	if v, ok := r.rec.Float("inventory"); ok {
		return v
	}
	return r.Raw("total_assets", 0) * 0.1
}

// COGS resolves cost of goods sold, estimating 65% of revenue.
func (r *Resolver) COGS() float64 {
	if v, ok := r.rec.Float("cogs"); ok {
		return v
	}
	return r.Raw("revenue", 0) * 0.65
}

// Depreciation resolves depreciation, estimating 15% of operating income.
func (r *Resolver) Depreciation() float64 {
	if v, ok := r.rec.Float("depreciation"); ok {
		return v
	}
	return r.Raw("operating_income", 0) * 0.15
}

// Receivables resolves receivables, estimating one month of revenue.
func (r *Resolver) Receivables() float64 {
	if v, ok := r.rec.Float("receivables"); ok {
		return v
	}
	return r.Raw("revenue", 0) / 12
}

// Payables resolves payables, estimating cogs/10.
func (r *Resolver) Payables(cogs float64) float64 {
	if v, ok := r.rec.Float("payables"); ok {
		return v
	}
	return cogs / 10
}

// Shares resolves shares outstanding, estimating market cap over price.
// Returns 0 when neither is usable; callers must treat 0 as unknown.
func (r *Resolver) Shares() float64 {
	if v, ok := r.rec.Float("shares_outstanding"); ok && v > 0 {
		return v
	}
	price := r.Raw("last_traded_price", 0)
	if price <= 0 {
		return 0
	}
	return r.Raw("market_cap", 0) / price
}

// InterestExpense resolves interest expense, estimating 8% of total debt.
func (r *Resolver) InterestExpense() float64 {
	if v, ok := r.rec.Float("interest_expense"); ok {
		return v
	}
	return r.Raw("total_debt", 0) * 0.08
}

// FixedAssets resolves fixed assets, estimating 50% of total assets.
func (r *Resolver) FixedAssets() float64 {
	if v, ok := r.rec.Float("fixed_assets"); ok {
		return v
	}
	return r.Raw("total_assets", 0) * 0.5
}
