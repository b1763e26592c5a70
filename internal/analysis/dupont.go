package analysis

import "github.com/chandeepa/cse-research/internal/models"

// deriveDuPont decomposes ROE into margin, turnover, and leverage
// components. The recomputed ROE is a cross-check only; the reported
// roe field stays authoritative.
func deriveDuPont(out models.CompanyRecord, res *Resolver) {
	npm := res.Raw("net_margin", 0)
	out["dupont_npm"] = npm

	at := res.Raw("asset_turnover", 0)
	if !out.Has("asset_turnover") {
		if totalAssets := res.Raw("total_assets", 0); totalAssets > 0 {
			at = res.Raw("revenue", 0) / totalAssets
		}
	}
	out["dupont_at"] = at

	em := out.FloatOr("equity_multiplier", 0)
	if em == 0 {
		if equity := res.Raw("shareholders_equity", 0); equity > 0 {
			em = res.Raw("total_assets", 0) / equity
		}
	}
	out["dupont_em"] = em

	out["dupont_roe_calc"] = (npm / 100) * at * em * 100

	// Later conditions win on overlap, matching the classification order.
	driver := "Balanced"
	if roe := res.Raw("roe", 0); npm > roe*0.5 {
		driver = "Margin Driven"
	}
	if at > 1.5 {
		driver = "Efficiency Driven"
	}
	if em > 3 {
		driver = "Leverage Driven"
	}
	out["roe_driver"] = driver
}
