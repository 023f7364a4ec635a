// Package cmd — scrape command.
// This is the main command that orchestrates the batch:
// harvest index → fetch → parse → render → write, one article at a time.
//
// It handles config loading, flag overrides and the final run report.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gaurav-prasanna/scpdump/config"
	"github.com/gaurav-prasanna/scpdump/core"
	"github.com/gaurav-prasanna/scpdump/core/extract"
	"github.com/gaurav-prasanna/scpdump/core/fetch"
	"github.com/gaurav-prasanna/scpdump/core/output"
	"github.com/gaurav-prasanna/scpdump/core/pipeline"
	"github.com/gaurav-prasanna/scpdump/core/render"
	"github.com/gaurav-prasanna/scpdump/crawl"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagConfig         string
	flagSeries         int
	flagStart          int
	flagLimit          int
	flagBaseURL        string
	flagOutputDir      string
	flagFormat         string
	flagThreshold      int
	flagPreserveMarkup bool
	flagStrict         bool
	flagVerbose        bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a series and write one document per article",
	Long: `Scrape fetches the index of a series, then fetches and parses each article
in the selected slice and writes it to <output_dir>/series-<n>/<nnn>.md.

An article that fails to fetch, parse or write is reported and skipped.

Examples:
  scpdump scrape
  scpdump scrape --series 2 --limit 10
  scpdump scrape --config scpdump.yaml --format json --output_dir ./out`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (default: ./scpdump.yaml if present)")

	// Source and batch selection.
	scrapeCmd.Flags().IntVar(&flagSeries, "series", 1, "Series number to scrape")
	scrapeCmd.Flags().IntVar(&flagStart, "start", 1, "First index entry to process (0-based)")
	scrapeCmd.Flags().IntVar(&flagLimit, "limit", 49, "Maximum number of articles to process")
	scrapeCmd.Flags().StringVar(&flagBaseURL, "base_url", "", "Wiki base URL")

	// Output.
	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: dist)")
	scrapeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: markdown, json or pdf")
	scrapeCmd.Flags().IntVar(&flagThreshold, "threshold", 0, "Longest section kept on one line (Markdown)")
	scrapeCmd.Flags().BoolVar(&flagPreserveMarkup, "preserve_markup", false, "Keep links and emphasis in section text")

	scrapeCmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit non-zero if any article failed")
	scrapeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	renderer, err := render.Select(cfg.Render.Format, cfg.Render.InlineThreshold)
	if err != nil {
		return err
	}

	// Initialize pipeline components.
	fetcher := fetch.New(cfg.Timeout(), cfg.Source.UserAgent)
	harvester := crawl.NewHarvester(fetcher, cfg.Source.BaseURL, log)
	parser := extract.New(cfg.Parser.PreserveMarkup)
	writer := output.New(cfg.Output.Dir)

	driver := pipeline.New(
		pipeline.Options{
			BaseURL: cfg.Source.BaseURL,
			Start:   cfg.Batch.Start,
			Limit:   cfg.Batch.Limit,
		},
		harvester, fetcher, parser, renderer, writer, log,
	)

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	driver.OnItem = func(res core.ItemResult) {
		if res.OK() {
			fmt.Fprintf(stdout, "✓ SCP-%d → %s\n", res.Index, res.Path)
			return
		}
		fmt.Fprintf(stderr, "✗ Failed obtaining SCP-%d. Skipping. (%v)\n", res.Index, res.Err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(stdout, "Harvesting series %d from %s...\n", cfg.Source.Series, cfg.Source.BaseURL)
	report, err := driver.Run(ctx, cfg.Source.Series)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, renderReport(report, isTerminal(os.Stdout)))

	if report.Failed() > 0 {
		fmt.Fprintf(stderr, "\n%d/%d articles failed\n", report.Failed(), len(report.Items))
		if flagStrict {
			return errors.New("some articles failed (--strict)")
		}
	}
	return nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	path := flagConfig
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("series") {
		cfg.Source.Series = flagSeries
	}
	if flags.Changed("start") {
		cfg.Batch.Start = flagStart
	}
	if flags.Changed("limit") {
		cfg.Batch.Limit = flagLimit
	}
	if flags.Changed("base_url") {
		cfg.Source.BaseURL = flagBaseURL
	}
	if flags.Changed("output_dir") {
		cfg.Output.Dir = flagOutputDir
	}
	if flags.Changed("format") {
		cfg.Render.Format = flagFormat
	}
	if flags.Changed("threshold") {
		cfg.Render.InlineThreshold = flagThreshold
	}
	if flags.Changed("preserve_markup") {
		cfg.Parser.PreserveMarkup = flagPreserveMarkup
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})
	return slog.New(handler)
}
