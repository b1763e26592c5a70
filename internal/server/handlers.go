package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
	"github.com/chandeepa/cse-research/internal/services/report"
)

// handleHealth returns service health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": s.config.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion returns build information.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// universe loads the working set of company records: stored snapshots
// when present, otherwise the offline sample set. ?source=sample forces
// the sample.
func (s *Server) universe(r *http.Request) ([]models.CompanyRecord, error) {
	if r.URL.Query().Get("source") != "sample" {
		snapshots, err := s.storage.Companies().List()
		if err != nil {
			return nil, err
		}
		if len(snapshots) > 0 {
			records := make([]models.CompanyRecord, len(snapshots))
			for i, snap := range snapshots {
				records[i] = snap.Record
			}
			return records, nil
		}
	}
	return s.sample(), nil
}

// handleCompanies lists the stored company records.
func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := map[string]any{
		"count":     len(records),
		"companies": records,
	}
	var meta models.FetchMeta
	if err := s.storage.KV().Get("last_fetch", &meta); err == nil {
		payload["last_fetch"] = meta
	}
	WriteJSON(w, http.StatusOK, payload)
}

// handleCompaniesRefresh fetches the live trade summary and stores a
// snapshot per company.
func (s *Server) handleCompaniesRefresh(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	records, err := s.client.TradeSummary(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, "exchange fetch failed: "+err.Error())
		return
	}

	saved := 0
	for _, rec := range records {
		snap := &models.CompanySnapshot{
			Symbol:      rec.Symbol(),
			CollectedAt: time.Now().UTC(),
			Source:      "cse-api",
			Record:      rec,
		}
		if err := s.storage.Companies().Save(snap); err != nil {
			s.logger.Warn().Str("symbol", snap.Symbol).Err(err).Msg("Failed to save snapshot")
			continue
		}
		saved++
	}

	meta := models.FetchMeta{FetchedAt: time.Now().UTC(), Count: saved, Source: "cse-api"}
	if err := s.storage.KV().Set("last_fetch", meta); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to record fetch metadata")
	}

	WriteJSON(w, http.StatusOK, map[string]int{
		"fetched": len(records),
		"saved":   saved,
	})
}

// handleCompany returns one company, analyzed.
func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	symbol := PathParam(r, "/api/companies/", "")
	if symbol == "" || symbol == "refresh" {
		WriteError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, rec := range records {
		if rec.Symbol() != symbol {
			continue
		}
		analysis, err := s.analyzer.AnalyzeOne(r.Context(), rec)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, analysis)
		return
	}
	WriteError(w, http.StatusNotFound, "company not found: "+symbol)
}

// handleAnalyze runs the full pipeline over the universe.
// Query: strategy (comprehensive|ranker), limit, records=true.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	q := r.URL.Query()
	analyses, err := s.analyzer.AnalyzeAll(r.Context(), records, interfaces.AnalyzeOptions{
		Strategy:       q.Get("strategy"),
		IncludeRecords: q.Get("records") == "true",
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if limit := queryInt(q.Get("limit"), 0); limit > 0 && limit < len(analyses) {
		analyses = analyses[:limit]
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"count":    len(analyses),
		"analyses": analyses,
	})
}

// handleScreen runs a custom criteria screen from the request body.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.ScreenRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Criteria) == 0 {
		WriteError(w, http.StatusBadRequest, "at least one criterion is required")
		return
	}

	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Sector != "" {
		var scoped []models.CompanyRecord
		for _, rec := range records {
			if containsFold(rec.Sector(), req.Sector) {
				scoped = append(scoped, rec)
			}
		}
		records = scoped
	}

	matched, err := s.screener.Screen(r.Context(), records, req.Criteria)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Limit > 0 && req.Limit < len(matched) {
		matched = matched[:req.Limit]
	}

	name := req.Name
	if name == "" {
		name = "custom"
	}
	WriteJSON(w, http.StatusOK, models.ScreenResult{
		Strategy:    name,
		Total:       len(records),
		Matched:     len(matched),
		Companies:   matched,
		GeneratedAt: time.Now().UTC(),
	})
}

// handleStrategies lists available strategies, or runs them all with
// ?run=true.
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if r.URL.Query().Get("run") != "true" {
		WriteJSON(w, http.StatusOK, map[string]any{
			"strategies": s.screener.Strategies(),
		})
		return
	}

	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	results, err := s.screener.RunAllStrategies(r.Context(), records)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	overlap, err := s.screener.StrategyOverlap(r.Context(), records)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"overlap": overlap,
	})
}

// handleStrategy runs one named strategy, optionally scoped to a sector
// with ?sector=.
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	name := PathParam(r, "/api/strategies/", "")
	if name == "" {
		WriteError(w, http.StatusBadRequest, "strategy name is required")
		return
	}

	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var result *models.ScreenResult
	if sector := r.URL.Query().Get("sector"); sector != "" {
		result, err = s.screener.ScreenSector(r.Context(), records, sector, name)
	} else {
		result, err = s.screener.RunStrategy(r.Context(), records, name)
	}
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// handleRankings ranks analyzed companies.
// Query: category (composite or a component score), top, by_sector=true.
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	analyses, ok := s.analyzeUniverse(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("by_sector") == "true" {
		out, err := s.rankings.RankBySector(r.Context(), analyses)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, out)
		return
	}

	result, err := s.rankings.TopStocks(r.Context(), analyses, q.Get("category"), queryInt(q.Get("top"), 20))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	best, err := s.rankings.BestCategory(r.Context(), analyses)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"ranking":         result,
		"best_categories": best,
	})
}

// handleSectors aggregates analyzed metrics per sector.
func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	analyses, ok := s.analyzeUniverse(w, r)
	if !ok {
		return
	}
	out, err := s.screener.CompareSectors(r.Context(), analyses)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"sectors": out})
}

// handlePortfolio builds a portfolio suggestion.
// Query: goal (balanced|income|growth|value), stocks, max_per_sector.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	analyses, ok := s.analyzeUniverse(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	suggestions, err := s.rankings.SuggestPortfolio(r.Context(), analyses, interfaces.PortfolioOptions{
		Goal:         q.Get("goal"),
		Stocks:       queryInt(q.Get("stocks"), 0),
		MaxPerSector: queryInt(q.Get("max_per_sector"), 0),
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"portfolio": suggestions})
}

// handleReportCSV streams the analyzed universe as CSV.
func (s *Server) handleReportCSV(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	analyses, ok := s.analyzeUniverse(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="cse-analysis.csv"`)
	if err := report.CSVTo(w, analyses); err != nil {
		s.logger.Error().Err(err).Msg("CSV stream failed")
	}
}

// handleReportChart renders the composite score distribution as PNG.
func (s *Server) handleReportChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	analyses, ok := s.analyzeUniverse(w, r)
	if !ok {
		return
	}

	png, err := report.RenderScoreChart(analyses)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// analyzeUniverse loads the universe and runs the analysis pipeline,
// writing the error response on failure.
func (s *Server) analyzeUniverse(w http.ResponseWriter, r *http.Request) ([]models.Analysis, bool) {
	records, err := s.universe(r)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	analyses, err := s.analyzer.AnalyzeAll(r.Context(), records, interfaces.AnalyzeOptions{
		Strategy:       r.URL.Query().Get("strategy"),
		IncludeRecords: true,
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return analyses, true
}

func queryInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
