package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

var (
	analyzeStrategy string
	analyzeTop      int
	analyzeSector   string
	analyzeExport   string
	analyzeChart    string
	analyzeSummary  string
	analyzeSave     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline over the company universe",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newCLIApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()
		records, err := app.universe(ctx)
		if err != nil {
			return err
		}

		if analyzeSector != "" {
			var scoped []models.CompanyRecord
			for _, rec := range records {
				if strings.Contains(strings.ToLower(rec.Sector()), strings.ToLower(analyzeSector)) {
					scoped = append(scoped, rec)
				}
			}
			records = scoped
		}

		analyses, err := app.analyzer.AnalyzeAll(ctx, records, interfaces.AnalyzeOptions{
			Strategy: analyzeStrategy,
		})
		if err != nil {
			return err
		}

		if analyzeSave != "" {
			if err := app.storage.Analyses().SaveRun(analyzeSave, analyses); err != nil {
				return fmt.Errorf("failed to save run: %w", err)
			}
			app.logger.Info().Str("key", analyzeSave).Msg("Analysis run saved")
		}
		if analyzeExport != "" {
			if err := app.report.WriteCSV(ctx, analyses, analyzeExport); err != nil {
				return err
			}
		}
		if analyzeChart != "" {
			if err := app.report.WriteScoreChart(ctx, analyses, analyzeChart); err != nil {
				return err
			}
		}
		if analyzeSummary != "" {
			if err := app.report.WriteSummary(ctx, analyses, analyzeSummary); err != nil {
				return err
			}
		}

		printAnalyses(analyses, analyzeTop)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeStrategy, "strategy", "comprehensive", "scoring strategy (comprehensive or ranker)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 20, "number of companies to print")
	analyzeCmd.Flags().StringVar(&analyzeSector, "sector", "", "restrict to a sector (contains match)")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "write results to a CSV file")
	analyzeCmd.Flags().StringVar(&analyzeChart, "chart", "", "write the score distribution to a PNG file")
	analyzeCmd.Flags().StringVar(&analyzeSummary, "summary", "", "write a text summary to a file")
	analyzeCmd.Flags().StringVar(&analyzeSave, "save", "", "store the run under a named key")
}

func printAnalyses(analyses []models.Analysis, top int) {
	if len(analyses) == 0 {
		fmt.Println("No companies analyzed.")
		return
	}
	if top > 0 && top < len(analyses) {
		analyses = analyses[:top]
	}

	fmt.Printf("%-4s %-12s %-32s %-6s %-5s %s\n",
		"#", "SYMBOL", "NAME", "SCORE", "GRADE", "RECOMMENDATION")
	for i, a := range analyses {
		fmt.Printf("%-4d %-12s %-32s %-6d %-5s %s\n",
			i+1, a.Symbol, truncate(a.Name, 30), a.Composite, a.Grade, a.Recommendation)
	}
}
