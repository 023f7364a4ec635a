// Package pipeline runs a batch over one series:
// harvest → (fetch → parse → merge → render → write) per article.
//
// A failing article is recorded in the run report and skipped; only a
// failure to harvest the index aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/scpdump/core"
	"github.com/gaurav-prasanna/scpdump/core/extract"
	"github.com/gaurav-prasanna/scpdump/core/output"
	"github.com/gaurav-prasanna/scpdump/crawl"
)

// Harvester lists the articles of a series.
type Harvester interface {
	Harvest(ctx context.Context, series int) ([]core.ArticleSummary, error)
}

// Options configure a Driver.
type Options struct {
	BaseURL string
	Start   int // first index entry to process
	Limit   int // maximum number of entries
}

// Driver orchestrates a batch run.
type Driver struct {
	opts      Options
	harvester Harvester
	fetcher   core.Fetcher
	parser    core.Parser
	renderer  core.Renderer
	writer    *output.Writer
	log       *slog.Logger

	// OnItem, if set, is called after each item is processed.
	OnItem func(core.ItemResult)
}

// New creates a Driver from its stages.
func New(
	opts Options,
	harvester Harvester,
	fetcher core.Fetcher,
	parser core.Parser,
	renderer core.Renderer,
	writer *output.Writer,
	log *slog.Logger,
) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		opts:      opts,
		harvester: harvester,
		fetcher:   fetcher,
		parser:    parser,
		renderer:  renderer,
		writer:    writer,
		log:       log,
	}
}

// Run harvests the series index and processes the configured slice of it.
// The returned error is non-nil only when the index could not be harvested.
func (d *Driver) Run(ctx context.Context, series int) (*core.Report, error) {
	items, err := d.harvester.Harvest(ctx, series)
	if err != nil {
		return nil, fmt.Errorf("harvesting series %d: %w", series, err)
	}

	batch := Slice(items, d.opts.Start, d.opts.Limit)
	d.log.Info("processing batch", "series", series, "harvested", len(items), "selected", len(batch))
	return d.Process(ctx, series, batch), nil
}

// Process handles items one after another. Errors are collected in the
// report and never stop the batch; a canceled context does.
func (d *Driver) Process(ctx context.Context, series int, items []core.ArticleSummary) *core.Report {
	report := &core.Report{Series: series, Items: make([]core.ItemResult, 0, len(items))}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			d.log.Warn("batch interrupted", "processed", len(report.Items), "remaining", len(items)-len(report.Items), "error", err)
			break
		}

		res := core.ItemResult{Index: item.Index, Title: item.Title}
		res.Path, res.Err = d.processItem(ctx, series, item)
		if res.Err != nil {
			d.log.Error("failed obtaining article, skipping", "index", item.Index, "error", res.Err)
		} else {
			d.log.Info(fmt.Sprintf("SCP-%d done", item.Index), "path", res.Path)
		}

		report.Items = append(report.Items, res)
		if d.OnItem != nil {
			d.OnItem(res)
		}
	}

	return report
}

// processItem runs one article through the pipeline and returns the
// written path. Writing is the last step, so a failure leaves no file.
func (d *Driver) processItem(ctx context.Context, series int, item core.ArticleSummary) (string, error) {
	// 1. Resolve
	articleURL, err := crawl.ResolveLink(d.opts.BaseURL, item.Link)
	if err != nil {
		return "", fmt.Errorf("link: %w", err)
	}

	// 2. Fetch
	result, err := d.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	// 3. Parse, dropping the redundant "Item #:" section
	parsed, err := d.parser.Parse(result.HTML)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	sections, err := extract.DropItemSection(parsed.Sections)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	parsed.Sections = sections

	// 4. Merge and render
	article := item.WithParsed(parsed)
	data, err := d.renderer.Render(article)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	// 5. Write
	path, err := d.writer.Write(series, item.Index, data, d.renderer.Extension())
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return path, nil
}

// Slice returns up to limit items starting at start, clamped to the
// bounds of items.
func Slice(items []core.ArticleSummary, start, limit int) []core.ArticleSummary {
	if start < 0 {
		start = 0
	}
	if start >= len(items) || limit <= 0 {
		return nil
	}
	end := min(start+limit, len(items))
	return items[start:end]
}
