package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/clients/reportpdf"
	"github.com/chandeepa/cse-research/internal/models"
)

var importOverwrite bool

var importReportCmd = &cobra.Command{
	Use:   "import-report <symbol> <pdf>",
	Short: "Merge line items from an annual report PDF into a snapshot",
	Long: `Import-report extracts labeled financial line items from a published
annual report and merges them into the stored snapshot for a symbol.
Extraction is best-effort: items the statement layout hides stay absent.
Existing values win unless --overwrite is set.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newCLIApp()
		if err != nil {
			return err
		}
		defer app.Close()

		symbol, pdfPath := args[0], args[1]

		extractor := reportpdf.NewExtractor(app.logger)
		items, err := extractor.Extract(pdfPath)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", pdfPath, err)
		}
		if len(items) == 0 {
			fmt.Println("No recognizable line items found.")
			return nil
		}

		snapshot, err := app.storage.Companies().Get(symbol)
		if err != nil {
			snapshot = &models.CompanySnapshot{
				Symbol: symbol,
				Record: models.CompanyRecord{"symbol": symbol},
			}
		}

		merged := 0
		for key, value := range items {
			if !importOverwrite && snapshot.Record.Has(key) {
				continue
			}
			snapshot.Record = snapshot.Record.Set(key, value)
			merged++
		}
		snapshot.Source = "annual-report"
		if err := app.storage.Companies().Save(snapshot); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		keys := make([]string, 0, len(items))
		for key := range items {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Printf("Extracted %d line items for %s (%d merged):\n", len(items), symbol, merged)
		for _, key := range keys {
			fmt.Printf("  %-24s %.2f\n", key, items[key])
		}
		return nil
	},
}

func init() {
	importReportCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "replace existing snapshot values")
}
