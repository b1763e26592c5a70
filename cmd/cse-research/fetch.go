package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/models"
)

var fetchDetail bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [symbol...]",
	Short: "Fetch market data from the CSE and store snapshots",
	Long: `Fetch pulls the daily trade summary from the Colombo Stock Exchange
and stores a snapshot per company. Pass symbols to refresh only those
companies, or use --detail to also fetch per-company fundamentals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newCLIApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()
		records, err := app.client.TradeSummary(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch trade summary: %w", err)
		}

		wanted := make(map[string]bool, len(args))
		for _, symbol := range args {
			wanted[symbol] = true
		}

		saved := 0
		for _, rec := range records {
			symbol := rec.Symbol()
			if len(wanted) > 0 && !wanted[symbol] {
				continue
			}
			if fetchDetail {
				detail, err := app.client.CompanyInfo(ctx, symbol)
				if err != nil {
					app.logger.Warn().Err(err).Str("symbol", symbol).Msg("Company detail fetch failed, trying profile page")
					detail, err = app.client.ScrapeCompanyProfile(ctx, symbol)
				}
				if err != nil {
					app.logger.Warn().Err(err).Str("symbol", symbol).Msg("Company profile scrape failed")
				} else {
					for key, value := range detail {
						rec = rec.Set(key, value)
					}
				}
			}
			snapshot := &models.CompanySnapshot{
				Symbol: symbol,
				Source: "cse-api",
				Record: rec,
			}
			if err := app.storage.Companies().Save(snapshot); err != nil {
				app.logger.Warn().Err(err).Str("symbol", symbol).Msg("Snapshot save failed")
				continue
			}
			saved++
		}

		meta := models.FetchMeta{FetchedAt: time.Now().UTC(), Count: saved, Source: "cse-api"}
		if err := app.storage.KV().Set("last_fetch", meta); err != nil {
			app.logger.Warn().Err(err).Msg("Failed to record fetch metadata")
		}

		app.logger.Info().Int("fetched", len(records)).Int("saved", saved).Msg("Fetch complete")
		fmt.Printf("Fetched %d companies, saved %d snapshots.\n", len(records), saved)
		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchDetail, "detail", false, "also fetch per-company fundamentals")
}
