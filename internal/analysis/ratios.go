package analysis

import (
	"math"

	"github.com/chandeepa/cse-research/internal/models"
)

// DeriveRatios computes every derived ratio from a company record and
// returns an enriched copy. The function is pure and total: any input,
// including a record carrying only a symbol, yields a complete set of
// ratios built from the documented proxy estimates. Sentinels follow
// the per-ratio policy: 0 for most, NaN for valuation multiples that
// are genuinely undefined, 999 for coverage ratios with no debt.
func DeriveRatios(rec models.CompanyRecord, a models.MarketAssumptions) models.CompanyRecord {
	out := rec.Clone()
	res := NewResolver(rec)

	deriveValuation(out, res, a)
	deriveProfitability(out, res, a)
	deriveLiquidity(out, res)
	deriveLeverage(out, res)
	deriveEfficiency(out, res)
	deriveCashflow(out, res)
	deriveQuality(out, res)
	deriveBeneish(out)
	deriveDuPont(out, res)
	deriveGrowthRates(out, res, a)
	deriveDividendMetrics(out, res)

	return out
}

func deriveValuation(out models.CompanyRecord, res *Resolver, a models.MarketAssumptions) {
	pe := res.Raw("pe_ratio", 0)
	marketCap := res.Raw("market_cap", 0)
	price := res.Raw("last_traded_price", 0)
	revenue := res.Raw("revenue", 0)
	fcf := res.Raw("free_cash_flow", 0)
	totalDebt := res.Raw("total_debt", 0)

	growth := res.Raw("eps_growth", a.DefaultEPSGrowth)
	out["earnings_growth_rate"] = growth

	peg := models.Undefined()
	if growth > 0 {
		peg = models.Defined(pe / growth)
	}
	out["peg_ratio"] = peg.Float()

	cash := res.Cash()
	ev := marketCap + totalDebt - cash
	out["enterprise_value"] = ev

	ebitda := res.Raw("operating_income", 0) + res.Depreciation()
	out["ebitda"] = ebitda

	evEbitda := models.Undefined()
	if ebitda > 0 {
		evEbitda = models.Defined(ev / ebitda)
	}
	out["ev_ebitda"] = evEbitda.Float()

	shares := res.Shares()

	ps := models.Undefined()
	if shares > 0 {
		if rps := revenue / shares; rps > 0 {
			ps = models.Defined(price / rps)
		}
	}
	out["ps_ratio"] = ps.Float()

	pfcf := models.Undefined()
	if shares > 0 {
		if fcfps := fcf / shares; fcfps > 0 {
			pfcf = models.Defined(price / fcfps)
		}
	}
	out["p_fcf"] = pfcf.Float()

	if pe > 0 {
		out["earnings_yield"] = (1 / pe) * 100
	} else {
		out["earnings_yield"] = 0.0
	}

	if marketCap > 0 {
		out["fcf_yield"] = (fcf / marketCap) * 100
	} else {
		out["fcf_yield"] = 0.0
	}
}

func deriveProfitability(out models.CompanyRecord, res *Resolver, a models.MarketAssumptions) {
	revenue := res.Raw("revenue", 0)
	oi := res.Raw("operating_income", 0)
	ebitda := out.FloatOr("ebitda", 0)

	if revenue > 0 {
		out["operating_margin"] = (oi / revenue) * 100
		out["ebitda_margin"] = (ebitda / revenue) * 100
	} else {
		out["operating_margin"] = 0.0
		out["ebitda_margin"] = 0.0
	}

	nopat := oi * (1 - a.TaxRate)
	investedCapital := res.Raw("shareholders_equity", 0) + res.Raw("total_debt", 0)
	if investedCapital > 0 {
		out["roic"] = (nopat / investedCapital) * 100
	} else {
		out["roic"] = 0.0
	}

	capitalEmployed := res.Raw("total_assets", 0) - res.Raw("total_liabilities", 0)*0.3
	if capitalEmployed > 0 {
		out["roce"] = (oi / capitalEmployed) * 100
	} else {
		out["roce"] = 0.0
	}
}

func deriveLiquidity(out models.CompanyRecord, res *Resolver) {
	ca := res.CurrentAssets()
	cl := res.CurrentLiabilities()
	inventory := res.InventoryFromCurrent(ca)
	cash := res.CashFromCurrent(ca)

	if cl > 0 {
		out["quick_ratio"] = (ca - inventory) / cl
		out["cash_ratio"] = cash / cl
	} else {
		out["quick_ratio"] = 0.0
		out["cash_ratio"] = 0.0
	}

	wc := ca - cl
	out["working_capital"] = wc

	if revenue := res.Raw("revenue", 0); revenue > 0 {
		out["working_capital_ratio"] = wc / revenue
	} else {
		out["working_capital_ratio"] = 0.0
	}
}

func deriveLeverage(out models.CompanyRecord, res *Resolver) {
	oi := res.Raw("operating_income", 0)
	totalDebt := res.Raw("total_debt", 0)
	totalAssets := res.Raw("total_assets", 0)
	equity := res.Raw("shareholders_equity", 0)
	ebitda := out.FloatOr("ebitda", 0)

	coverage := models.NoLeverage()
	if ie := res.InterestExpense(); ie > 0 {
		coverage = models.Defined(oi / ie)
	}
	out["interest_coverage"] = coverage.Float()

	if totalAssets > 0 {
		out["debt_to_assets"] = totalDebt / totalAssets
	} else {
		out["debt_to_assets"] = 0.0
	}

	debtEbitda := models.Undefined()
	if ebitda > 0 {
		debtEbitda = models.Defined(totalDebt / ebitda)
	}
	out["debt_to_ebitda"] = debtEbitda.Float()

	if equity > 0 {
		out["equity_multiplier"] = totalAssets / equity
	} else {
		out["equity_multiplier"] = 0.0
	}

	netDebt := totalDebt - res.Cash()
	out["net_debt"] = netDebt

	if equity > 0 {
		out["net_debt_to_equity"] = netDebt / equity
	} else {
		out["net_debt_to_equity"] = 0.0
	}
}

func deriveEfficiency(out models.CompanyRecord, res *Resolver) {
	revenue := res.Raw("revenue", 0)
	cogs := res.COGS()

	if fixedAssets := res.FixedAssets(); fixedAssets > 0 {
		out["fixed_asset_turnover"] = revenue / fixedAssets
	} else {
		out["fixed_asset_turnover"] = 0.0
	}

	inventoryTurnover := 0.0
	if inventory := res.InventoryFromTotal(); inventory > 0 {
		inventoryTurnover = cogs / inventory
	}
	out["inventory_turnover"] = inventoryTurnover
	out["days_inventory"] = daysFromTurnover(inventoryTurnover)

	receivablesTurnover := 0.0
	if receivables := res.Receivables(); receivables > 0 {
		receivablesTurnover = revenue / receivables
	}
	out["receivables_turnover"] = receivablesTurnover
	out["days_sales_outstanding"] = daysFromTurnover(receivablesTurnover)

	payablesTurnover := 0.0
	if payables := res.Payables(cogs); payables > 0 {
		payablesTurnover = cogs / payables
	}
	out["payables_turnover"] = payablesTurnover
	out["days_payables"] = daysFromTurnover(payablesTurnover)

	// Can legitimately be negative for companies paying suppliers slowly.
	out["cash_conversion_cycle"] = out.FloatOr("days_inventory", 0) +
		out.FloatOr("days_sales_outstanding", 0) -
		out.FloatOr("days_payables", 0)
}

func daysFromTurnover(turnover float64) float64 {
	if turnover > 0 {
		return 365 / turnover
	}
	return 0
}

func deriveCashflow(out models.CompanyRecord, res *Resolver) {
	revenue := res.Raw("revenue", 0)
	ocf := res.Raw("operating_cash_flow", 0)
	fcf := res.Raw("free_cash_flow", 0)
	totalDebt := res.Raw("total_debt", 0)
	netProfit := res.Raw("net_profit", 0)
	totalAssets := res.Raw("total_assets", 0)

	if revenue > 0 {
		out["ocf_margin"] = (ocf / revenue) * 100
	} else {
		out["ocf_margin"] = 0.0
	}

	cfDebt := models.NoLeverage()
	if totalDebt > 0 {
		cfDebt = models.Defined(ocf / totalDebt)
	}
	out["cf_to_debt"] = cfDebt.Float()

	if shares := res.Shares(); shares > 0 {
		out["cfps"] = ocf / shares
		out["fcfps"] = fcf / shares
	} else {
		out["cfps"] = 0.0
		out["fcfps"] = 0.0
	}

	if netProfit > 0 {
		out["fcf_to_net_income"] = (fcf / netProfit) * 100
	} else {
		out["fcf_to_net_income"] = 0.0
	}

	if totalAssets > 0 {
		out["cash_roa"] = (ocf / totalAssets) * 100
	} else {
		out["cash_roa"] = 0.0
	}
}

func deriveQuality(out models.CompanyRecord, res *Resolver) {
	totalAssets := res.Raw("total_assets", 0)
	netProfit := res.Raw("net_profit", 0)
	ocf := res.Raw("operating_cash_flow", 0)

	accruals := 0.0
	if totalAssets > 0 {
		accruals = (netProfit - ocf) / totalAssets
	}
	out["accruals_ratio"] = accruals
	out["sloan_ratio"] = accruals

	quality := 50.0
	fcfNI := out.FloatOr("fcf_to_net_income", 0)
	if fcfNI > 80 {
		quality += 20
	}
	if fcfNI > 100 {
		quality += 10
	}
	// Low-accrual bonuses only count when there are earnings or cash
	// flows to have accrued; a company reporting neither scores the base.
	if netProfit != 0 || ocf != 0 {
		if math.Abs(accruals) < 0.05 {
			quality += 15
		}
		if math.Abs(accruals) < 0.02 {
			quality += 5
		}
	}
	out["earnings_quality"] = clamp(quality, 0, 100)
}

func deriveGrowthRates(out models.CompanyRecord, res *Resolver, a models.MarketAssumptions) {
	roe := res.Raw("roe", 0)
	roa := res.Raw("roa", 0)

	// payout_ratio here is the raw input fraction; the percentage form is
	// derived afterwards in the dividend block and does not feed back.
	payout := res.Raw("payout_ratio", a.DefaultPayout)
	retention := 1 - payout

	out["sustainable_growth_rate"] = roe * retention

	roaDecimal := roa / 100
	if denom := 1 - roaDecimal*retention; denom > 0 {
		out["internal_growth_rate"] = (roaDecimal * retention) / denom * 100
	} else {
		out["internal_growth_rate"] = 0.0
	}
}

func deriveDividendMetrics(out models.CompanyRecord, res *Resolver) {
	eps := res.Raw("eps", 0)
	dps := res.Raw("dividend_per_share", 0)
	fcf := res.Raw("free_cash_flow", 0)

	payout := 0.0
	if eps > 0 {
		payout = (dps / eps) * 100
	}
	out["payout_ratio"] = payout

	coverage := 0.0
	if dps > 0 {
		coverage = eps / dps
	}
	out["dividend_coverage"] = coverage

	fcfCoverage := 0.0
	if totalDividends := dps * res.Shares(); totalDividends > 0 {
		fcfCoverage = fcf / totalDividends
	}
	out["fcf_dividend_coverage"] = fcfCoverage

	safety := 50.0
	if payout < 60 {
		safety += 15
	}
	if payout < 40 {
		safety += 10
	}
	if coverage > 2 {
		safety += 15
	}
	if fcfCoverage > 1.5 {
		safety += 10
	}
	out["dividend_safety"] = clamp(safety, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
