package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

var (
	rankingsCategory string
	rankingsTop      int
	rankingsBySector bool
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Rank companies by composite or component score",
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
		analyses, err := app.analyzer.AnalyzeAll(ctx, records, interfaces.AnalyzeOptions{})
		if err != nil {
			return err
		}

		if rankingsBySector {
			bySector, err := app.rankings.RankBySector(ctx, analyses)
			if err != nil {
				return err
			}
			sectors := make([]string, 0, len(bySector))
			for sector := range bySector {
				sectors = append(sectors, sector)
			}
			sort.Strings(sectors)
			for _, sector := range sectors {
				fmt.Printf("== %s ==\n", sector)
				printRankings(bySector[sector])
				fmt.Println()
			}
			return nil
		}

		result, err := app.rankings.TopStocks(ctx, analyses, rankingsCategory, rankingsTop)
		if err != nil {
			return err
		}
		fmt.Printf("Top %d by %s\n", len(result.Entries), result.Category)
		printRankings(result)
		return nil
	},
}

func init() {
	rankingsCmd.Flags().StringVar(&rankingsCategory, "category", "composite", "ranking category (composite or a component score)")
	rankingsCmd.Flags().IntVar(&rankingsTop, "top", 20, "number of companies per listing")
	rankingsCmd.Flags().BoolVar(&rankingsBySector, "by-sector", false, "rank within each sector")
}

func printRankings(result *models.RankingResult) {
	for _, e := range result.Entries {
		fmt.Printf("%-4d %-12s %-32s %6.1f  %-2s %s\n",
			e.Rank, e.Symbol, truncate(e.Name, 30), e.Score, e.Grade, e.Recommendation)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + ".."
	}
	return s
}
