package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/interfaces"
)

var (
	portfolioGoal         string
	portfolioStocks       int
	portfolioMaxPerSector int
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Suggest a diversified portfolio from the analyzed universe",
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

		suggestions, err := app.rankings.SuggestPortfolio(ctx, analyses, interfaces.PortfolioOptions{
			Goal:         portfolioGoal,
			Stocks:       portfolioStocks,
			MaxPerSector: portfolioMaxPerSector,
		})
		if err != nil {
			return err
		}
		if len(suggestions) == 0 {
			fmt.Println("No suitable holdings found.")
			return nil
		}

		fmt.Printf("Suggested %s portfolio (%d holdings)\n\n", portfolioGoal, len(suggestions))
		fmt.Printf("%-12s %-32s %-20s %-6s %-5s %s\n",
			"SYMBOL", "NAME", "SECTOR", "SCORE", "GRADE", "WEIGHT")
		for _, s := range suggestions {
			fmt.Printf("%-12s %-32s %-20s %-6d %-5s %.1f%%\n",
				s.Symbol, truncate(s.Name, 30), truncate(s.Sector, 18), s.Composite, s.Grade, s.Weight)
		}
		if len(suggestions) > 0 && suggestions[0].Rationale != "" {
			fmt.Printf("\n%s\n", suggestions[0].Rationale)
		}
		return nil
	},
}

func init() {
	portfolioCmd.Flags().StringVar(&portfolioGoal, "goal", "balanced", "portfolio goal (balanced, income, growth, or value)")
	portfolioCmd.Flags().IntVar(&portfolioStocks, "stocks", 10, "target number of holdings")
	portfolioCmd.Flags().IntVar(&portfolioMaxPerSector, "max-per-sector", 3, "sector cap for the balanced goal")
}
