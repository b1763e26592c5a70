package cse

import "github.com/chandeepa/cse-research/internal/models"

// SampleCompanies returns a small offline dataset of CSE blue chips
// with plausible fundamentals, for demos and dry runs without network
// access. Figures are illustrative, not live market data.
func SampleCompanies() []models.CompanyRecord {
	return []models.CompanyRecord{
		{
			"symbol": "JKH.N0000", "name": "John Keells Holdings PLC", "sector": "Diversified Holdings",
			"last_traded_price": 195.00, "eps": 10.8, "nav": 172.0,
			"pe_ratio": 18.1, "pb_ratio": 1.13, "dividend_yield": 1.8, "dividend_per_share": 3.5,
			"market_cap": 290_000_000_000.0, "revenue": 285_000_000_000.0,
			"net_profit": 15_200_000_000.0, "operating_income": 21_000_000_000.0,
			"total_assets": 740_000_000_000.0, "total_liabilities": 390_000_000_000.0,
			"shareholders_equity": 350_000_000_000.0, "total_debt": 190_000_000_000.0,
			"operating_cash_flow": 24_000_000_000.0, "free_cash_flow": 9_000_000_000.0,
			"roe": 4.3, "roa": 2.1, "debt_equity": 0.54, "current_ratio": 1.3,
			"gross_margin": 32.0, "net_margin": 5.3, "change_percent": 0.8,
			"52_week_high": 228.0, "52_week_low": 158.0,
		},
		{
			"symbol": "COMB.N0000", "name": "Commercial Bank of Ceylon PLC", "sector": "Banking",
			"last_traded_price": 108.50, "eps": 18.2, "nav": 155.0,
			"pe_ratio": 6.0, "pb_ratio": 0.70, "dividend_yield": 6.1, "dividend_per_share": 6.6,
			"market_cap": 145_000_000_000.0, "revenue": 210_000_000_000.0,
			"net_profit": 24_400_000_000.0,
			"total_assets": 2_600_000_000_000.0, "total_liabilities": 2_390_000_000_000.0,
			"shareholders_equity": 210_000_000_000.0,
			"operating_cash_flow": 31_000_000_000.0,
			"roe": 11.6, "roa": 0.9, "debt_equity": 0.42, "current_ratio": 1.1,
			"net_margin": 11.6, "change_percent": 1.4,
			"52_week_high": 125.0, "52_week_low": 82.0,
		},
		{
			"symbol": "HNB.N0000", "name": "Hatton National Bank PLC", "sector": "Banking",
			"last_traded_price": 201.00, "eps": 41.5, "nav": 340.0,
			"pe_ratio": 4.8, "pb_ratio": 0.59, "dividend_yield": 5.0, "dividend_per_share": 10.0,
			"market_cap": 112_000_000_000.0, "revenue": 185_000_000_000.0,
			"net_profit": 23_100_000_000.0,
			"total_assets": 2_100_000_000_000.0, "total_liabilities": 1_910_000_000_000.0,
			"shareholders_equity": 190_000_000_000.0,
			"operating_cash_flow": 27_500_000_000.0,
			"roe": 12.2, "roa": 1.1, "debt_equity": 0.38, "current_ratio": 1.1,
			"net_margin": 12.5, "change_percent": -0.3,
			"52_week_high": 215.0, "52_week_low": 142.0,
		},
		{
			"symbol": "DIAL.N0000", "name": "Dialog Axiata PLC", "sector": "Telecommunications",
			"last_traded_price": 12.10, "eps": 1.4, "nav": 11.2,
			"pe_ratio": 8.6, "pb_ratio": 1.08, "dividend_yield": 3.1, "dividend_per_share": 0.37,
			"market_cap": 99_000_000_000.0, "revenue": 180_000_000_000.0,
			"net_profit": 11_500_000_000.0, "operating_income": 22_000_000_000.0,
			"total_assets": 290_000_000_000.0, "total_liabilities": 198_000_000_000.0,
			"shareholders_equity": 92_000_000_000.0, "total_debt": 85_000_000_000.0,
			"operating_cash_flow": 45_000_000_000.0, "free_cash_flow": 14_000_000_000.0,
			"roe": 12.5, "roa": 4.0, "debt_equity": 0.92, "current_ratio": 0.8,
			"gross_margin": 58.0, "net_margin": 6.4, "change_percent": 2.5,
			"52_week_high": 13.9, "52_week_low": 8.6,
		},
		{
			"symbol": "CTC.N0000", "name": "Ceylon Tobacco Company PLC", "sector": "Beverage Food & Tobacco",
			"last_traded_price": 1205.00, "eps": 112.0, "nav": 95.0,
			"pe_ratio": 10.8, "pb_ratio": 12.7, "dividend_yield": 8.9, "dividend_per_share": 107.0,
			"market_cap": 225_000_000_000.0, "revenue": 48_000_000_000.0,
			"net_profit": 21_000_000_000.0, "operating_income": 29_000_000_000.0,
			"total_assets": 42_000_000_000.0, "total_liabilities": 24_000_000_000.0,
			"shareholders_equity": 18_000_000_000.0,
			"operating_cash_flow": 23_000_000_000.0, "free_cash_flow": 21_500_000_000.0,
			"roe": 116.0, "roa": 50.0, "debt_equity": 0.05, "current_ratio": 1.4,
			"gross_margin": 74.0, "net_margin": 43.8, "change_percent": 0.2,
			"52_week_high": 1350.0, "52_week_low": 860.0,
		},
		{
			"symbol": "LOLC.N0000", "name": "LOLC Holdings PLC", "sector": "Diversified Financials",
			"last_traded_price": 412.00, "eps": 65.0, "nav": 610.0,
			"pe_ratio": 6.3, "pb_ratio": 0.68, "dividend_yield": 0.0,
			"market_cap": 196_000_000_000.0, "revenue": 340_000_000_000.0,
			"net_profit": 31_000_000_000.0,
			"total_assets": 1_950_000_000_000.0, "total_liabilities": 1_570_000_000_000.0,
			"shareholders_equity": 380_000_000_000.0, "total_debt": 920_000_000_000.0,
			"operating_cash_flow": 52_000_000_000.0,
			"roe": 8.2, "roa": 1.6, "debt_equity": 2.42, "current_ratio": 1.2,
			"net_margin": 9.1, "change_percent": -1.2,
			"52_week_high": 520.0, "52_week_low": 355.0,
		},
		{
			"symbol": "AAIC.N0000", "name": "Softlogic Life Insurance PLC", "sector": "Insurance",
			"last_traded_price": 58.00, "eps": 8.9, "nav": 42.0,
			"pe_ratio": 6.5, "pb_ratio": 1.38, "dividend_yield": 4.3, "dividend_per_share": 2.5,
			"market_cap": 22_000_000_000.0, "revenue": 32_000_000_000.0,
			"net_profit": 3_300_000_000.0,
			"total_assets": 75_000_000_000.0, "total_liabilities": 59_000_000_000.0,
			"shareholders_equity": 16_000_000_000.0,
			"operating_cash_flow": 5_100_000_000.0,
			"roe": 20.6, "roa": 4.4, "debt_equity": 0.15, "current_ratio": 1.5,
			"net_margin": 10.3, "change_percent": 3.1,
			"52_week_high": 66.0, "52_week_low": 38.0,
		},
		{
			"symbol": "EXPO.N0000", "name": "Expolanka Holdings PLC", "sector": "Transportation",
			"last_traded_price": 145.00, "eps": -3.2, "nav": 88.0,
			"pe_ratio": -45.3, "pb_ratio": 1.65, "dividend_yield": 0.0,
			"market_cap": 283_000_000_000.0, "revenue": 210_000_000_000.0,
			"net_profit": -6_200_000_000.0,
			"total_assets": 260_000_000_000.0, "total_liabilities": 88_000_000_000.0,
			"shareholders_equity": 172_000_000_000.0, "total_debt": 41_000_000_000.0,
			"operating_cash_flow": -2_400_000_000.0,
			"roe": -3.6, "roa": -2.4, "debt_equity": 0.24, "current_ratio": 1.9,
			"net_margin": -3.0, "change_percent": -2.8,
			"52_week_high": 210.0, "52_week_low": 128.0,
		},
	}
}
