package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/chandeepa/cse-research/internal/clients/cse"
	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/server"
	"github.com/chandeepa/cse-research/internal/services/analyzer"
	"github.com/chandeepa/cse-research/internal/services/rankings"
	"github.com/chandeepa/cse-research/internal/services/screener"
	"github.com/chandeepa/cse-research/internal/storage"
)

func main() {
	configPath := os.Getenv("CSE_CONFIG")
	if configPath == "" {
		configPath = "cse-research.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	common.PrintBanner(config, logger)

	// Relative storage paths resolve against the config file location.
	config.Storage.Path = common.ResolveDataPath(filepath.Dir(configPath), config.Storage.Path)

	store, err := storage.NewManager(logger, &config.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	client := cse.NewClient(
		cse.WithBaseURL(config.Clients.CSE.BaseURL),
		cse.WithRateLimit(config.Clients.CSE.RateLimit),
		cse.WithTimeout(config.Clients.CSE.GetTimeout()),
		cse.WithLogger(logger),
	)

	srv := server.NewServer(
		config,
		logger,
		analyzer.NewService(config, logger),
		screener.NewService(config, logger),
		rankings.NewService(config, logger),
		store,
		client,
	)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", config.Server.Port)).
		Msg("Server ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	common.PrintShutdownBanner(logger)
}
