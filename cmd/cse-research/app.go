package main

import (
	"context"
	"fmt"

	"github.com/chandeepa/cse-research/internal/clients/cse"
	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/models"
	"github.com/chandeepa/cse-research/internal/services/analyzer"
	"github.com/chandeepa/cse-research/internal/services/rankings"
	"github.com/chandeepa/cse-research/internal/services/report"
	"github.com/chandeepa/cse-research/internal/services/screener"
	"github.com/chandeepa/cse-research/internal/storage"
)

// cliApp bundles the config, logger, and services the commands share.
type cliApp struct {
	config   *common.Config
	logger   *common.Logger
	storage  *storage.Manager
	client   *cse.Client
	analyzer *analyzer.Service
	screener *screener.Service
	rankings *rankings.Service
	report   *report.Service
}

// newCLIApp loads configuration and wires the services.
func newCLIApp() (*cliApp, error) {
	path := flagConfig
	if path == "" {
		path = "cse-research.toml"
	}

	config, err := common.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := storage.NewManager(logger, &config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	client := cse.NewClient(
		cse.WithBaseURL(config.Clients.CSE.BaseURL),
		cse.WithRateLimit(config.Clients.CSE.RateLimit),
		cse.WithTimeout(config.Clients.CSE.GetTimeout()),
		cse.WithLogger(logger),
	)

	return &cliApp{
		config:   config,
		logger:   logger,
		storage:  store,
		client:   client,
		analyzer: analyzer.NewService(config, logger),
		screener: screener.NewService(config, logger),
		rankings: rankings.NewService(config, logger),
		report:   report.NewService(config, logger),
	}, nil
}

func (a *cliApp) Close() {
	a.storage.Close()
}

// universe loads the working set: the sample dataset when --sample is
// set, otherwise stored snapshots with a sample fallback.
func (a *cliApp) universe(ctx context.Context) ([]models.CompanyRecord, error) {
	if flagSample {
		return cse.SampleCompanies(), nil
	}

	snapshots, err := a.storage.Companies().List()
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		a.logger.Warn().Msg("No stored company data, using sample dataset (run 'cse-research fetch' for live data)")
		return cse.SampleCompanies(), nil
	}

	records := make([]models.CompanyRecord, len(snapshots))
	for i, snap := range snapshots {
		records[i] = snap.Record
	}
	return records, nil
}
