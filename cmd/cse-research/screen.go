package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/models"
)

var (
	screenAll     bool
	screenSector  string
	screenOverlap bool
)

var screenCmd = &cobra.Command{
	Use:   "screen [strategy]",
	Short: "Screen the universe with a named strategy",
	Long: `Screen runs one of the built-in screening strategies against the
company universe. Run with no arguments to list the available strategies,
or with --all to run every strategy and report which companies pass the
most screens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newCLIApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()

		if len(args) == 0 && !screenAll {
			fmt.Println("Available strategies:")
			for _, name := range app.screener.Strategies() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		}

		records, err := app.universe(ctx)
		if err != nil {
			return err
		}

		if screenAll {
			results, err := app.screener.RunAllStrategies(ctx, records)
			if err != nil {
				return err
			}
			for _, name := range app.screener.Strategies() {
				if result, ok := results[name]; ok {
					printScreenResult(result)
					fmt.Println()
				}
			}
			if screenOverlap {
				overlaps, err := app.screener.StrategyOverlap(ctx, records)
				if err != nil {
					return err
				}
				printOverlap(overlaps)
			}
			return nil
		}

		name := args[0]
		var result *models.ScreenResult
		if screenSector != "" {
			result, err = app.screener.ScreenSector(ctx, records, screenSector, name)
		} else {
			result, err = app.screener.RunStrategy(ctx, records, name)
		}
		if err != nil {
			return err
		}
		printScreenResult(result)
		return nil
	},
}

func init() {
	screenCmd.Flags().BoolVar(&screenAll, "all", false, "run every strategy")
	screenCmd.Flags().StringVar(&screenSector, "sector", "", "restrict the strategy to one sector")
	screenCmd.Flags().BoolVar(&screenOverlap, "overlap", false, "with --all, report multi-strategy matches")
}

func printScreenResult(result *models.ScreenResult) {
	fmt.Printf("%s: %d of %d matched\n", result.Strategy, result.Matched, result.Total)
	if result.Description != "" {
		fmt.Printf("  %s\n", result.Description)
	}
	for _, rec := range result.Companies {
		fmt.Printf("  %-12s %-36s %s\n", rec.Symbol(), rec.Name(), rec.Sector())
	}
}

func printOverlap(overlaps []models.StrategyOverlap) {
	fmt.Println("Multi-strategy matches:")
	for _, o := range overlaps {
		if o.Count < 2 {
			continue
		}
		fmt.Printf("  %-12s %-36s %d (%s)\n",
			o.Symbol, o.Name, o.Count, strings.Join(o.Strategies, ", "))
	}
}
