// Command cse-research is the CLI for the Colombo Stock Exchange
// research toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chandeepa/cse-research/internal/common"
)

var (
	flagConfig string
	flagSample bool
)

var rootCmd = &cobra.Command{
	Use:   "cse-research",
	Short: "Colombo Stock Exchange research toolkit",
	Long: `cse-research derives financial ratios, investment scores, and
recommendations for CSE-listed companies, and screens and ranks them
against named strategies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default cse-research.toml)")
	rootCmd.PersistentFlags().BoolVar(&flagSample, "sample", false, "use the built-in offline sample dataset")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(importReportCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cse-research %s (build %s, commit %s)\n",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
	},
}
