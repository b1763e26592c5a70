// Package server exposes the research toolkit over a REST API for the
// web dashboard.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chandeepa/cse-research/internal/clients/cse"
	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

// Server wraps the HTTP server and its service dependencies.
type Server struct {
	config   *common.Config
	logger   *common.Logger
	server   *http.Server
	analyzer interfaces.AnalyzerService
	screener interfaces.ScreenerService
	rankings interfaces.RankingService
	storage  interfaces.StorageManager
	client   interfaces.CSEClient
}

// NewServer creates a new HTTP REST API server.
func NewServer(
	config *common.Config,
	logger *common.Logger,
	analyzer interfaces.AnalyzerService,
	screener interfaces.ScreenerService,
	rankings interfaces.RankingService,
	storage interfaces.StorageManager,
	client interfaces.CSEClient,
) *Server {
	s := &Server{
		config:   config,
		logger:   logger,
		analyzer: analyzer,
		screener: screener,
		rankings: rankings,
		storage:  storage,
		client:   client,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      applyMiddleware(mux, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// sample returns the offline fallback universe.
func (s *Server) sample() []models.CompanyRecord {
	return cse.SampleCompanies()
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
