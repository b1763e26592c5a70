package server

import "net/http"

// registerRoutes wires all API endpoints to the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	mux.HandleFunc("/api/companies", s.handleCompanies)
	mux.HandleFunc("/api/companies/refresh", s.handleCompaniesRefresh)
	mux.HandleFunc("/api/companies/", s.handleCompany)

	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/screen", s.handleScreen)
	mux.HandleFunc("/api/strategies", s.handleStrategies)
	mux.HandleFunc("/api/strategies/", s.handleStrategy)
	mux.HandleFunc("/api/rankings", s.handleRankings)
	mux.HandleFunc("/api/sectors", s.handleSectors)
	mux.HandleFunc("/api/portfolio", s.handlePortfolio)

	mux.HandleFunc("/api/report/csv", s.handleReportCSV)
	mux.HandleFunc("/api/report/chart", s.handleReportChart)
}
