// Package cmd implements the CLI commands for scpdump using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scpdump",
	Short: "scpdump — dump wiki series articles to Markdown",
	Long: `scpdump fetches a series index from the wiki, parses each listed article
into its object class and labeled sections, and writes one document per
article under <output_dir>/series-<n>/.

Usage:
  scpdump scrape [flags]
  scpdump init`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
