package rankings

import (
	"context"
	"testing"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewDefaultConfig(), common.NewSilentLogger())
}

func testAnalyses() []models.Analysis {
	return []models.Analysis{
		{
			Symbol: "AAA.N0000", Name: "Alpha PLC", Sector: "Banking",
			Composite: 82, Grade: models.GradeA, Recommendation: models.RecStrongBuy,
			Scores: models.ScoreSet{Value: 90, Quality: 80, Safety: 85, Dividend: 40, Growth: 70, Momentum: 60},
		},
		{
			Symbol: "BBB.N0000", Name: "Beta PLC", Sector: "Banking",
			Composite: 70, Grade: models.GradeB, Recommendation: models.RecBuy,
			Scores: models.ScoreSet{Value: 60, Quality: 65, Safety: 70, Dividend: 95, Growth: 50, Momentum: 55},
		},
		{
			Symbol: "CCC.N0000", Name: "Gamma PLC", Sector: "Manufacturing",
			Composite: 55, Grade: models.GradeC, Recommendation: models.RecHold,
			Scores: models.ScoreSet{Value: 50, Quality: 55, Safety: 60, Dividend: 30, Growth: 85, Momentum: 45},
		},
		{
			Symbol: "DDD.N0000", Name: "Delta PLC", Sector: "Hotels & Travel",
			Composite: 20, Grade: models.GradeF, Recommendation: models.RecAvoidDistress,
			Scores: models.ScoreSet{Value: 20, Quality: 10, Safety: 5, Dividend: 0, Growth: 15, Momentum: 30},
		},
	}
}

func TestTopStocksComposite(t *testing.T) {
	s := newTestService()
	res, err := s.TopStocks(context.Background(), testAnalyses(), "composite", 2)
	if err != nil {
		t.Fatalf("TopStocks: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res.Entries))
	}
	if res.Entries[0].Symbol != "AAA.N0000" || res.Entries[0].Rank != 1 {
		t.Errorf("expected AAA.N0000 at rank 1, got %s/%d", res.Entries[0].Symbol, res.Entries[0].Rank)
	}
	if res.Entries[1].Rank != 2 {
		t.Errorf("ranks must be sequential, got %d", res.Entries[1].Rank)
	}
}

func TestTopStocksByComponent(t *testing.T) {
	s := newTestService()
	res, err := s.TopStocks(context.Background(), testAnalyses(), "dividend_score", 1)
	if err != nil {
		t.Fatalf("TopStocks: %v", err)
	}
	if res.Entries[0].Symbol != "BBB.N0000" {
		t.Errorf("expected highest dividend scorer, got %s", res.Entries[0].Symbol)
	}
	if res.Entries[0].Score != 95 {
		t.Errorf("expected component score 95, got %v", res.Entries[0].Score)
	}
}

func TestTopStocksUnknownCategory(t *testing.T) {
	s := newTestService()
	if _, err := s.TopStocks(context.Background(), testAnalyses(), "vibes", 5); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestTopStocksDefaultsToComposite(t *testing.T) {
	s := newTestService()
	res, err := s.TopStocks(context.Background(), testAnalyses(), "", 0)
	if err != nil {
		t.Fatalf("TopStocks: %v", err)
	}
	if res.Category != "composite" {
		t.Errorf("expected composite category, got %s", res.Category)
	}
	if len(res.Entries) != 4 {
		t.Errorf("zero limit must return all entries, got %d", len(res.Entries))
	}
}

func TestRankBySector(t *testing.T) {
	s := newTestService()
	out, err := s.RankBySector(context.Background(), testAnalyses())
	if err != nil {
		t.Fatalf("RankBySector: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 sectors, got %d", len(out))
	}
	banking := out["Banking"]
	if banking == nil || len(banking.Entries) != 2 {
		t.Fatal("expected 2 banking entries")
	}
	if banking.Entries[0].Symbol != "AAA.N0000" {
		t.Errorf("expected AAA.N0000 top of Banking, got %s", banking.Entries[0].Symbol)
	}
}

func TestBestCategory(t *testing.T) {
	s := newTestService()
	out, err := s.BestCategory(context.Background(), testAnalyses())
	if err != nil {
		t.Fatalf("BestCategory: %v", err)
	}
	want := map[string]string{
		"AAA.N0000": "value",
		"BBB.N0000": "dividend",
		"CCC.N0000": "growth",
		"DDD.N0000": "momentum",
	}
	for sym, cat := range want {
		if out[sym] != cat {
			t.Errorf("%s best category = %s, want %s", sym, out[sym], cat)
		}
	}
}

func TestSuggestPortfolioBalancedSectorCap(t *testing.T) {
	s := newTestService()
	analyses := testAnalyses()
	out, err := s.SuggestPortfolio(context.Background(), analyses, interfaces.PortfolioOptions{
		Goal:         "balanced",
		Stocks:       3,
		MaxPerSector: 1,
	})
	if err != nil {
		t.Fatalf("SuggestPortfolio: %v", err)
	}
	// DDD is excluded (distressed); the cap admits one of the two banks.
	if len(out) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(out))
	}
	sectors := map[string]int{}
	for _, h := range out {
		sectors[h.Sector]++
	}
	for sector, n := range sectors {
		if n > 1 {
			t.Errorf("sector %s exceeds cap with %d holdings", sector, n)
		}
	}
	if out[0].Symbol != "AAA.N0000" {
		t.Errorf("expected best composite first, got %s", out[0].Symbol)
	}
}

func TestSuggestPortfolioIncome(t *testing.T) {
	s := newTestService()
	out, err := s.SuggestPortfolio(context.Background(), testAnalyses(), interfaces.PortfolioOptions{
		Goal:   "income",
		Stocks: 1,
	})
	if err != nil {
		t.Fatalf("SuggestPortfolio: %v", err)
	}
	if len(out) != 1 || out[0].Symbol != "BBB.N0000" {
		t.Fatalf("expected the dividend leader, got %v", out)
	}
	if out[0].Weight != 100 {
		t.Errorf("single holding weight = %v, want 100", out[0].Weight)
	}
}

func TestSuggestPortfolioExcludesDistressed(t *testing.T) {
	s := newTestService()
	out, err := s.SuggestPortfolio(context.Background(), testAnalyses(), interfaces.PortfolioOptions{
		Goal: "growth", Stocks: 10,
	})
	if err != nil {
		t.Fatalf("SuggestPortfolio: %v", err)
	}
	for _, h := range out {
		if h.Symbol == "DDD.N0000" {
			t.Error("distressed company must not be suggested")
		}
	}
}

func TestSuggestPortfolioUnknownGoal(t *testing.T) {
	s := newTestService()
	if _, err := s.SuggestPortfolio(context.Background(), testAnalyses(), interfaces.PortfolioOptions{Goal: "yolo"}); err == nil {
		t.Fatal("expected error for unknown goal")
	}
}

func TestSuggestPortfolioEmptyPool(t *testing.T) {
	s := newTestService()
	out, err := s.SuggestPortfolio(context.Background(), nil, interfaces.PortfolioOptions{})
	if err != nil {
		t.Fatalf("SuggestPortfolio: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty suggestion list, got %d", len(out))
	}
}
